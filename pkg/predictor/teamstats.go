package predictor

// TeamStats holds the scoring and conceding statistics a prediction is computed from.
// Instances are supplied by a StatsProvider per call; the engine never caches or owns them.
type TeamStats struct {
	GoalsPerGame         float64 `json:"goals_per_game"`
	GoalsConcededPerGame float64 `json:"goals_conceded_per_game"`
	// Form is the recent result sequence, most recent first.
	// Each entry is 0 (loss), 1 (draw) or 3 (win).
	Form []int `json:"form"`
}

// DefaultTeamStats returns the neutral statistics used for unresolvable teams
func DefaultTeamStats() *TeamStats {
	form := make([]int, len(Config.DefaultForm))
	copy(form, Config.DefaultForm)
	return &TeamStats{
		GoalsPerGame:         Config.DefaultGoalsPerGame,
		GoalsConcededPerGame: Config.DefaultGoalsConcededPerGame,
		Form:                 form,
	}
}

// AttackStrength returns goals scored relative to the league average
func (ts *TeamStats) AttackStrength() float64 {
	return ts.GoalsPerGame / makeSensible(GetLeagueAverageGoals())
}

// DefenceStrength returns goals conceded relative to the league average.
// Values above 1.0 mean the team leaks more goals than an average side.
func (ts *TeamStats) DefenceStrength() float64 {
	return ts.GoalsConcededPerGame / makeSensible(GetLeagueAverageGoals())
}

// FormFactor summarises recent results as a value in [0,1].
// The configured recency weights are applied positionally to the most recent
// results and the weighted sum is normalized by the maximum achievable score
// (a win in every weighted slot). An empty sequence is neutral and yields 1.0;
// a short sequence simply leaves the trailing weights unused.
func (ts *TeamStats) FormFactor() float64 {
	if len(ts.Form) == 0 {
		return 1.0
	}

	weights := Config.FormWeights
	var weightedPoints float64
	var maxPossible float64

	for i, w := range weights {
		maxPossible += Config.FormWinValue * w
		if i < len(ts.Form) {
			weightedPoints += float64(ts.Form[i]) * w
		}
	}

	return weightedPoints / makeSensible(maxPossible)
}
