package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manchester City vs Arsenal from the embedded table. The expectations are
// golden values produced by following the expected-goals formulas precisely.
func TestPredictMatchGoldenValues(t *testing.T) {
	p := NewPredictor(nil)

	prediction, err := p.PredictMatch("Manchester City", "Arsenal")
	require.NoError(t, err)

	assert.Equal(t, "Manchester City", prediction.HomeTeam)
	assert.Equal(t, "Arsenal", prediction.AwayTeam)

	assert.InDelta(t, 3.36, prediction.ExpectedHomeGoals, 1e-9)
	assert.InDelta(t, 1.67, prediction.ExpectedAwayGoals, 1e-9)

	assert.InDelta(t, 57.8, prediction.HomeWinProbability, 1e-9)
	assert.InDelta(t, 14.1, prediction.DrawProbability, 1e-9)
	assert.InDelta(t, 15.1, prediction.AwayWinProbability, 1e-9)

	require.Len(t, prediction.MostLikelyScorelines, 5)
	assert.Equal(t, "3-1", prediction.MostLikelyScorelines[0].Score)
	assert.InDelta(t, 6.92, prediction.MostLikelyScorelines[0].Probability, 1e-9)

	assert.InDelta(t, 65.6, prediction.ConfidenceScore, 1e-9)
	assert.NotEmpty(t, prediction.PredictionTimestamp)
}

func TestExpectedGoalsWithinClamp(t *testing.T) {
	// Sweep a wide grid of statistics, including degenerate extremes, and
	// confirm the lambdas never escape the configured window
	values := []float64{0.0, 0.3, 0.9, 1.4, 1.5, 2.2, 2.8, 4.5, 9.0}
	forms := [][]int{nil, {3}, {0, 0}, {3, 3, 3, 3, 3}, {1, 1, 1, 1, 1}, {0, 1, 3}}

	for _, gpg := range values {
		for _, conceded := range values {
			for _, form := range forms {
				home := &TeamStats{GoalsPerGame: gpg, GoalsConcededPerGame: conceded, Form: form}
				away := &TeamStats{GoalsPerGame: conceded, GoalsConcededPerGame: gpg, Form: form}

				homeExpected, awayExpected := expectedGoals(home, away)
				assert.GreaterOrEqual(t, homeExpected, Config.MinExpectedGoals)
				assert.LessOrEqual(t, homeExpected, Config.MaxExpectedGoals)
				assert.GreaterOrEqual(t, awayExpected, Config.MinExpectedGoals)
				assert.LessOrEqual(t, awayExpected, Config.MaxExpectedGoals)
			}
		}
	}
}

func TestOutcomeProbabilitiesSumNearHundred(t *testing.T) {
	// The 6x6 matrix truncates the Poisson tail, so the three outcome
	// probabilities fall short of 100 by the truncated mass. At the clamp
	// extremes (lambda 4.0 both sides) roughly 38% of the mass sits outside
	// the matrix, so 60 is the practical floor.
	p := NewPredictor(nil)
	teams := []string{"Manchester City", "Arsenal", "Burnley", "Everton", "Liverpool"}

	for _, home := range teams {
		for _, away := range teams {
			if home == away {
				continue
			}
			prediction, err := p.PredictMatch(home, away)
			require.NoError(t, err)

			sum := prediction.HomeWinProbability + prediction.DrawProbability + prediction.AwayWinProbability
			assert.LessOrEqual(t, sum, 100.0+0.3, "%s vs %s", home, away)
			assert.GreaterOrEqual(t, sum, 60.0, "%s vs %s", home, away)
		}
	}
}

func TestConfidenceScoreBounds(t *testing.T) {
	p := NewPredictor(nil)

	for _, home := range NewStaticProvider().TeamNames() {
		for _, away := range []string{"Arsenal", "Burnley"} {
			if home == away {
				continue
			}
			prediction, err := p.PredictMatch(home, away)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, prediction.ConfidenceScore, Config.MinConfidence)
			assert.LessOrEqual(t, prediction.ConfidenceScore, Config.MaxConfidence)
		}
	}
}

func TestPredictionIsDeterministic(t *testing.T) {
	p := NewPredictor(nil)

	first, err := p.PredictMatch("Liverpool", "Chelsea")
	require.NoError(t, err)
	second, err := p.PredictMatch("Liverpool", "Chelsea")
	require.NoError(t, err)

	// Only the timestamp may differ between identical calls
	assert.Equal(t, first.ExpectedHomeGoals, second.ExpectedHomeGoals)
	assert.Equal(t, first.ExpectedAwayGoals, second.ExpectedAwayGoals)
	assert.Equal(t, first.HomeWinProbability, second.HomeWinProbability)
	assert.Equal(t, first.DrawProbability, second.DrawProbability)
	assert.Equal(t, first.AwayWinProbability, second.AwayWinProbability)
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
	assert.Equal(t, first.MostLikelyScorelines, second.MostLikelyScorelines)
}

func TestHomeAdvantageBreaksSymmetry(t *testing.T) {
	// Swapping the fixture must not mirror the output: the home advantage
	// multiplier and the asymmetric form influence are deliberate
	p := NewPredictor(nil)

	forward, err := p.PredictMatch("Manchester City", "Arsenal")
	require.NoError(t, err)
	reverse, err := p.PredictMatch("Arsenal", "Manchester City")
	require.NoError(t, err)

	assert.NotEqual(t, forward.HomeWinProbability, reverse.AwayWinProbability)
	assert.NotEqual(t, forward.ExpectedHomeGoals, reverse.ExpectedAwayGoals)
}

func TestPredictMatchRejectsIdenticalTeams(t *testing.T) {
	p := NewPredictor(nil)

	_, err := p.PredictMatch("Arsenal", "Arsenal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be the same")
}

func TestPredictMatchRejectsMissingTeam(t *testing.T) {
	p := NewPredictor(nil)

	_, err := p.PredictMatch("", "Arsenal")
	require.Error(t, err)

	_, err = p.PredictMatch("Arsenal", "")
	require.Error(t, err)
}

func TestPredictBatchIsolatesFailures(t *testing.T) {
	p := NewPredictor(nil)

	requests := []MatchRequest{
		{HomeTeam: "Manchester City", AwayTeam: "Arsenal"},
		{HomeTeam: "Liverpool"}, // missing away_team
		{HomeTeam: "Chelsea", AwayTeam: "Everton"},
	}

	results := p.PredictBatch(requests)
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].Prediction)
	assert.Empty(t, results[0].Error)

	assert.Nil(t, results[1].Prediction)
	assert.NotEmpty(t, results[1].Error)
	assert.Equal(t, "Liverpool", results[1].HomeTeam)

	assert.NotNil(t, results[2].Prediction)
	assert.Empty(t, results[2].Error)
	assert.Equal(t, "Chelsea", results[2].HomeTeam)
	assert.Equal(t, "Everton", results[2].AwayTeam)
}

func TestUnknownTeamsDegradeToDefaults(t *testing.T) {
	p := NewPredictor(nil)

	// Two unknown teams resolve to identical default statistics; only the
	// home advantage and form asymmetry separates the outcome
	prediction, err := p.PredictMatch("Melchester Rovers", "Walford Town")
	require.NoError(t, err)
	assert.Greater(t, prediction.HomeWinProbability, prediction.AwayWinProbability)
}
