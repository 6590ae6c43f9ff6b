package predictor

import (
	"sort"
	"time"
)

// Result is a single played match
type Result struct {
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	HomeGoals int       `json:"home_goals"`
	AwayGoals int       `json:"away_goals"`
	Date      time.Time `json:"date"`
}

// Involves reports whether the named team played in this result
func (r *Result) Involves(team string) bool {
	return r.HomeTeam == team || r.AwayTeam == team
}

// PointsFor returns the 0/1/3 points the named team took from this result
func (r *Result) PointsFor(team string) int {
	scored, conceded := r.GoalsFor(team)
	if scored > conceded {
		return 3
	}
	if scored == conceded {
		return 1
	}
	return 0
}

// GoalsFor returns goals scored and conceded by the named team
func (r *Result) GoalsFor(team string) (scored, conceded int) {
	if r.HomeTeam == team {
		return r.HomeGoals, r.AwayGoals
	}
	return r.AwayGoals, r.HomeGoals
}

// ComputeTeamStats derives a team's statistics from its played matches:
// goals per game, goals conceded per game, and the 0/1/3 form sequence with
// the most recent result first. Returns nil when the team has no results.
func ComputeTeamStats(results []Result, team string) *TeamStats {
	var played []Result
	for _, result := range results {
		if result.Involves(team) {
			played = append(played, result)
		}
	}

	if len(played) == 0 {
		return nil
	}

	// Most recent first
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].Date.After(played[j].Date)
	})

	var goals, conceded int
	form := make([]int, 0, len(played))
	for _, result := range played {
		scored, against := result.GoalsFor(team)
		goals += scored
		conceded += against
		form = append(form, result.PointsFor(team))
	}

	games := float64(len(played))
	return &TeamStats{
		GoalsPerGame:         float64(goals) / games,
		GoalsConcededPerGame: float64(conceded) / games,
		Form:                 form,
	}
}

// ResultsProvider resolves team statistics from a set of played matches,
// degrading to the default statistics for teams with no results
type ResultsProvider struct {
	results []Result
}

// NewResultsProvider returns a provider over the given results
func NewResultsProvider(results []Result) *ResultsProvider {
	return &ResultsProvider{results: results}
}

// FetchTeamStats computes the named team's statistics from its results
func (rp *ResultsProvider) FetchTeamStats(name string) *TeamStats {
	stats := ComputeTeamStats(rp.results, name)
	if stats == nil {
		return DefaultTeamStats()
	}
	return stats
}
