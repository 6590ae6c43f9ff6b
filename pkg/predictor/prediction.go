package predictor

import "time"

// Scoreline is one exact (home goals, away goals) outcome with its probability.
// Score uses the "H-A" wire format, e.g. "2-1". Probability is a percentage
// rounded to 2 decimal places.
type Scoreline struct {
	Score       string  `json:"score"`
	Probability float64 `json:"probability"`
}

// MatchPrediction is the immutable result of a single prediction.
// Field names and rounding are part of the wire contract: expected goals carry
// 2 decimal places, outcome probabilities are percentages with 1 decimal place
// and sum to roughly 100 (the scoreline matrix truncates the Poisson tail, so
// the sum falls short by the truncated mass).
type MatchPrediction struct {
	HomeTeam              string      `json:"home_team"`
	AwayTeam              string      `json:"away_team"`
	ExpectedHomeGoals     float64     `json:"expected_home_goals"`
	ExpectedAwayGoals     float64     `json:"expected_away_goals"`
	HomeWinProbability    float64     `json:"home_win_probability"`
	DrawProbability       float64     `json:"draw_probability"`
	AwayWinProbability    float64     `json:"away_win_probability"`
	MostLikelyScorelines  []Scoreline `json:"most_likely_scorelines"`
	ConfidenceScore       float64     `json:"confidence_score"`
	PredictionTimestamp   string      `json:"prediction_timestamp"`
}

// FavouredOutcome returns "H", "D" or "A" for the outcome carrying the
// highest probability
func (p *MatchPrediction) FavouredOutcome() string {
	if p.HomeWinProbability >= p.DrawProbability && p.HomeWinProbability >= p.AwayWinProbability {
		return "H"
	}
	if p.AwayWinProbability >= p.DrawProbability {
		return "A"
	}
	return "D"
}

// newPredictionTimestamp returns the timestamp recorded on fresh predictions
func newPredictionTimestamp() string {
	return time.Now().Format(time.RFC3339)
}
