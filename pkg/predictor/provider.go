package predictor

// StatsProvider resolves a team name to its current statistics.
// Implementations never fail: a team that cannot be resolved degrades to
// DefaultTeamStats so the numerical pipeline downstream stays total.
type StatsProvider interface {
	FetchTeamStats(name string) *TeamStats
}

// StaticProvider serves the embedded Premier League table. It is the default
// provider and the seed source for the sqlite-backed store.
type StaticProvider struct {
	table map[string]*TeamStats
}

// staticTeamStats is the embedded 2024/25 Premier League table
var staticTeamStats = map[string]*TeamStats{
	"Manchester City":   {GoalsPerGame: 2.8, GoalsConcededPerGame: 0.9, Form: []int{3, 3, 1, 3, 3}},
	"Arsenal":           {GoalsPerGame: 2.4, GoalsConcededPerGame: 1.1, Form: []int{3, 1, 3, 3, 0}},
	"Liverpool":         {GoalsPerGame: 2.6, GoalsConcededPerGame: 1.0, Form: []int{3, 3, 3, 1, 3}},
	"Chelsea":           {GoalsPerGame: 2.1, GoalsConcededPerGame: 1.2, Form: []int{3, 0, 1, 3, 1}},
	"Manchester United": {GoalsPerGame: 1.9, GoalsConcededPerGame: 1.4, Form: []int{1, 3, 0, 1, 3}},
	"Tottenham":         {GoalsPerGame: 2.3, GoalsConcededPerGame: 1.3, Form: []int{3, 1, 3, 0, 1}},
	"Newcastle United":  {GoalsPerGame: 2.0, GoalsConcededPerGame: 1.2, Form: []int{3, 1, 1, 3, 3}},
	"Brighton":          {GoalsPerGame: 1.8, GoalsConcededPerGame: 1.3, Form: []int{1, 3, 1, 0, 3}},
	"Aston Villa":       {GoalsPerGame: 2.0, GoalsConcededPerGame: 1.1, Form: []int{3, 3, 1, 3, 1}},
	"West Ham United":   {GoalsPerGame: 1.7, GoalsConcededPerGame: 1.5, Form: []int{0, 1, 3, 1, 1}},
	"Crystal Palace":    {GoalsPerGame: 1.5, GoalsConcededPerGame: 1.4, Form: []int{1, 0, 1, 3, 0}},
	"Fulham":            {GoalsPerGame: 1.6, GoalsConcededPerGame: 1.3, Form: []int{1, 1, 3, 0, 1}},
	"Wolves":            {GoalsPerGame: 1.4, GoalsConcededPerGame: 1.6, Form: []int{0, 1, 1, 0, 3}},
	"Everton":           {GoalsPerGame: 1.3, GoalsConcededPerGame: 1.7, Form: []int{1, 0, 0, 1, 1}},
	"Brentford":         {GoalsPerGame: 1.7, GoalsConcededPerGame: 1.4, Form: []int{3, 1, 0, 3, 1}},
	"Nottingham Forest": {GoalsPerGame: 1.4, GoalsConcededPerGame: 1.5, Form: []int{1, 1, 0, 1, 3}},
	"Sheffield United":  {GoalsPerGame: 1.2, GoalsConcededPerGame: 1.8, Form: []int{0, 0, 1, 0, 1}},
	"Burnley":           {GoalsPerGame: 1.1, GoalsConcededPerGame: 1.9, Form: []int{0, 1, 0, 0, 0}},
	"Luton Town":        {GoalsPerGame: 1.3, GoalsConcededPerGame: 1.7, Form: []int{1, 0, 1, 0, 1}},
	"AFC Bournemouth":   {GoalsPerGame: 1.6, GoalsConcededPerGame: 1.5, Form: []int{1, 3, 0, 1, 1}},
}

// NewStaticProvider returns a provider over the embedded table
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{table: staticTeamStats}
}

// TeamNames returns the names known to this provider in no particular order
func (sp *StaticProvider) TeamNames() []string {
	names := make([]string, 0, len(sp.table))
	for name := range sp.table {
		names = append(names, name)
	}
	return names
}

// FetchTeamStats returns a copy of the stored statistics for the named team,
// or the default statistics when the team is unknown
func (sp *StaticProvider) FetchTeamStats(name string) *TeamStats {
	stats, ok := sp.table[name]
	if !ok {
		return DefaultTeamStats()
	}
	// Copy so callers can never mutate the embedded table
	form := make([]int, len(stats.Form))
	copy(form, stats.Form)
	return &TeamStats{
		GoalsPerGame:         stats.GoalsPerGame,
		GoalsConcededPerGame: stats.GoalsConcededPerGame,
		Form:                 form,
	}
}
