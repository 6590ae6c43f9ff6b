package predictor

import (
	"fmt"

	"github.com/richard-senior/plp/internal/logger"
)

// Predictor estimates match outcome probability distributions from two teams'
// recent scoring and conceding statistics. It holds no mutable state beyond
// its stats provider and is safe for concurrent use.
type Predictor struct {
	provider StatsProvider
}

// NewPredictor returns a predictor resolving team statistics through the
// given provider. A nil provider falls back to the embedded static table.
func NewPredictor(provider StatsProvider) *Predictor {
	if provider == nil {
		provider = NewStaticProvider()
	}
	return &Predictor{provider: provider}
}

// PredictMatch resolves statistics for both teams and computes the full
// outcome prediction. Home and away must name distinct teams; statistics
// resolution itself cannot fail, unknown teams degrade to default stats
// inside the provider.
func (p *Predictor) PredictMatch(homeTeam, awayTeam string) (*MatchPrediction, error) {
	if homeTeam == "" || awayTeam == "" {
		return nil, fmt.Errorf("missing home_team or away_team in request")
	}
	if homeTeam == awayTeam {
		return nil, fmt.Errorf("home and away teams cannot be the same")
	}

	homeStats := p.provider.FetchTeamStats(homeTeam)
	awayStats := p.provider.FetchTeamStats(awayTeam)

	return DoPredictMatch(homeTeam, awayTeam, homeStats, awayStats), nil
}

// DoPredictMatch computes a prediction from already-resolved team statistics.
// The computation is total: given valid TeamStats there is no failure path.
func DoPredictMatch(homeTeam, awayTeam string, homeStats, awayStats *TeamStats) *MatchPrediction {
	homeExpected, awayExpected := expectedGoals(homeStats, awayStats)

	matrix := scorelineMatrix(homeExpected, awayExpected, Config.MaxGoals)
	homeWin, draw, awayWin := matchOutcomeProbabilities(matrix)

	logger.Debug("Predicted", homeTeam, "vs", awayTeam,
		"expectancy", homeExpected, awayExpected)

	return &MatchPrediction{
		HomeTeam:             homeTeam,
		AwayTeam:             awayTeam,
		ExpectedHomeGoals:    roundToDecimalPlaces(homeExpected, 2),
		ExpectedAwayGoals:    roundToDecimalPlaces(awayExpected, 2),
		HomeWinProbability:   roundToDecimalPlaces(homeWin*100.0, 1),
		DrawProbability:      roundToDecimalPlaces(draw*100.0, 1),
		AwayWinProbability:   roundToDecimalPlaces(awayWin*100.0, 1),
		MostLikelyScorelines: topScorelines(matrix, Config.TopScorelineCount),
		ConfidenceScore:      confidenceScore(homeWin, draw, awayWin),
		PredictionTimestamp:  newPredictionTimestamp(),
	}
}

// expectedGoals derives the Poisson lambdas for both sides.
// The home side carries the fixed home advantage multiplier and a stronger
// form influence, modelling the home crowd effect; GoalScale converts the
// normalized attack/defence ratios back into a goals-per-game scale.
func expectedGoals(homeStats, awayStats *TeamStats) (float64, float64) {
	homeAttack := homeStats.AttackStrength()
	homeDefence := homeStats.DefenceStrength()
	awayAttack := awayStats.AttackStrength()
	awayDefence := awayStats.DefenceStrength()

	homeForm := homeStats.FormFactor()
	awayForm := awayStats.FormFactor()

	homeExpected := homeAttack * awayDefence * GetHomeAdvantage() * Config.GoalScale * (1 + homeForm*Config.HomeFormInfluence)
	awayExpected := awayAttack * homeDefence * Config.GoalScale * (1 + awayForm*Config.AwayFormInfluence)

	return clampExpectedGoals(homeExpected), clampExpectedGoals(awayExpected)
}

// clampExpectedGoals keeps lambdas inside the configured window so the
// scoreline matrix stays numerically reasonable
func clampExpectedGoals(goals float64) float64 {
	if goals < Config.MinExpectedGoals {
		return Config.MinExpectedGoals
	}
	if goals > Config.MaxExpectedGoals {
		return Config.MaxExpectedGoals
	}
	return goals
}

// confidenceScore maps the spread between the best and worst outcome
// probability onto the configured confidence window. A wide spread means one
// outcome dominates. This is a calibration heuristic, not a statistical
// confidence interval.
func confidenceScore(homeWin, draw, awayWin float64) float64 {
	maxProb := homeWin
	minProb := homeWin
	for _, prob := range []float64{draw, awayWin} {
		if prob > maxProb {
			maxProb = prob
		}
		if prob < minProb {
			minProb = prob
		}
	}

	confidence := (maxProb - minProb) * Config.ConfidenceMultiplier
	if confidence < Config.MinConfidence {
		confidence = Config.MinConfidence
	}
	if confidence > Config.MaxConfidence {
		confidence = Config.MaxConfidence
	}
	return roundToDecimalPlaces(confidence, 1)
}

/////////////////////////////////////////////////////////////////////////
////// Batch Prediction
/////////////////////////////////////////////////////////////////////////

// MatchRequest names the two sides of a single requested prediction
type MatchRequest struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

// BatchResult is one slot of a batch prediction. Exactly one of Prediction
// and Error is set; the team names are always carried so failed slots remain
// attributable.
type BatchResult struct {
	HomeTeam   string           `json:"home_team"`
	AwayTeam   string           `json:"away_team"`
	Prediction *MatchPrediction `json:"prediction,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// PredictBatch applies PredictMatch to each request independently.
// A failing entry is recorded in its slot and never halts the remaining
// entries; the result always has one slot per request, in order.
func (p *Predictor) PredictBatch(requests []MatchRequest) []BatchResult {
	results := make([]BatchResult, 0, len(requests))

	for _, request := range requests {
		result := BatchResult{
			HomeTeam: request.HomeTeam,
			AwayTeam: request.AwayTeam,
		}

		prediction, err := p.PredictMatch(request.HomeTeam, request.AwayTeam)
		if err != nil {
			logger.Warn("Batch entry failed", request.HomeTeam, request.AwayTeam, err)
			result.Error = err.Error()
		} else {
			result.Prediction = prediction
		}

		results = append(results, result)
	}

	return results
}
