package predictor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/richard-senior/plp/internal/logger"
)

// Compile-time checks that our records implement Persistable
var _ Persistable = (*TeamRecord)(nil)
var _ Persistable = (*PredictionRecord)(nil)

// TeamRecord is the stored form of a team and its current statistics
type TeamRecord struct {
	Name                 string    `json:"name" column:"name" dbtype:"TEXT NOT NULL" primary:"true" index:"true"`
	Stadium              string    `json:"stadium" column:"stadium" dbtype:"TEXT"`
	Manager              string    `json:"manager" column:"manager" dbtype:"TEXT"`
	Founded              int       `json:"founded" column:"founded" dbtype:"INTEGER DEFAULT 0"`
	GoalsPerGame         float64   `json:"goalsPerGame" column:"goals_per_game" dbtype:"REAL DEFAULT 0.0"`
	GoalsConcededPerGame float64   `json:"goalsConcededPerGame" column:"goals_conceded_per_game" dbtype:"REAL DEFAULT 0.0"`
	Form                 string    `json:"form" column:"form" dbtype:"TEXT DEFAULT ''"`
	CreatedAt            time.Time `json:"createdAt" column:"created_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
	UpdatedAt            time.Time `json:"updatedAt" column:"updated_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

// GetTableName returns the table name for teams
func (tr *TeamRecord) GetTableName() string {
	return "teams"
}

// GetPrimaryKey returns the primary key as a map
func (tr *TeamRecord) GetPrimaryKey() map[string]any {
	return map[string]any{
		"name": tr.Name,
	}
}

// BeforeSave is called before saving the team record
func (tr *TeamRecord) BeforeSave() error {
	now := time.Now()
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = now
	}
	tr.UpdatedAt = now
	return nil
}

// Stats converts the stored row into the engine's input type
func (tr *TeamRecord) Stats() *TeamStats {
	return &TeamStats{
		GoalsPerGame:         tr.GoalsPerGame,
		GoalsConcededPerGame: tr.GoalsConcededPerGame,
		Form:                 ParseFormString(tr.Form),
	}
}

// FormString encodes a form sequence for storage, e.g. [3 3 1] -> "3,3,1"
func FormString(form []int) string {
	parts := make([]string, len(form))
	for i, points := range form {
		parts[i] = strconv.Itoa(points)
	}
	return strings.Join(parts, ",")
}

// ParseFormString decodes a stored form sequence. Unparseable or out-of-range
// entries are skipped rather than failing the read.
func ParseFormString(encoded string) []int {
	if encoded == "" {
		return nil
	}

	var form []int
	for _, part := range strings.Split(encoded, ",") {
		points, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || points < 0 || points > 3 || points == 2 {
			logger.Warn("Skipping invalid form entry", part)
			continue
		}
		form = append(form, points)
	}
	return form
}

/////////////////////////////////////////////////////////////////////////
////// Prediction Ledger
/////////////////////////////////////////////////////////////////////////

// PredictionRecord is one row of the prediction ledger. Predictions are
// recorded by whatever invokes the engine, never by the engine itself.
type PredictionRecord struct {
	ID                 string    `json:"id" column:"id" dbtype:"TEXT" primary:"true"`
	HomeTeam           string    `json:"homeTeam" column:"home_team" dbtype:"TEXT NOT NULL" index:"true"`
	AwayTeam           string    `json:"awayTeam" column:"away_team" dbtype:"TEXT NOT NULL" index:"true"`
	ExpectedHomeGoals  float64   `json:"expectedHomeGoals" column:"expected_home_goals" dbtype:"REAL DEFAULT 0.0"`
	ExpectedAwayGoals  float64   `json:"expectedAwayGoals" column:"expected_away_goals" dbtype:"REAL DEFAULT 0.0"`
	HomeWinProbability float64   `json:"homeWinProbability" column:"home_win_prob" dbtype:"REAL NOT NULL"`
	DrawProbability    float64   `json:"drawProbability" column:"draw_prob" dbtype:"REAL NOT NULL"`
	AwayWinProbability float64   `json:"awayWinProbability" column:"away_win_prob" dbtype:"REAL NOT NULL"`
	MostLikelyScore    string    `json:"mostLikelyScore" column:"most_likely_score" dbtype:"TEXT"`
	ConfidenceScore    float64   `json:"confidenceScore" column:"confidence_score" dbtype:"REAL DEFAULT 0.0"`
	PredictedAt        time.Time `json:"predictedAt" column:"predicted_at" dbtype:"DATETIME DEFAULT CURRENT_TIMESTAMP"`
}

// GetTableName returns the table name for the prediction ledger
func (pr *PredictionRecord) GetTableName() string {
	return "predictions"
}

// GetPrimaryKey returns the primary key as a map
func (pr *PredictionRecord) GetPrimaryKey() map[string]any {
	return map[string]any{
		"id": pr.ID,
	}
}

// BeforeSave is called before saving the prediction record
func (pr *PredictionRecord) BeforeSave() error {
	if pr.ID == "" {
		pr.ID = uuid.New().String()
	}
	if pr.PredictedAt.IsZero() {
		pr.PredictedAt = time.Now()
	}
	return nil
}

// RecordPrediction writes a prediction into the ledger and returns its row
func RecordPrediction(prediction *MatchPrediction) (*PredictionRecord, error) {
	mostLikelyScore := ""
	if len(prediction.MostLikelyScorelines) > 0 {
		mostLikelyScore = prediction.MostLikelyScorelines[0].Score
	}

	record := &PredictionRecord{
		ID:                 uuid.New().String(),
		HomeTeam:           prediction.HomeTeam,
		AwayTeam:           prediction.AwayTeam,
		ExpectedHomeGoals:  prediction.ExpectedHomeGoals,
		ExpectedAwayGoals:  prediction.ExpectedAwayGoals,
		HomeWinProbability: prediction.HomeWinProbability,
		DrawProbability:    prediction.DrawProbability,
		AwayWinProbability: prediction.AwayWinProbability,
		MostLikelyScore:    mostLikelyScore,
		ConfidenceScore:    prediction.ConfidenceScore,
	}

	if err := Save(record); err != nil {
		return nil, fmt.Errorf("failed to record prediction: %w", err)
	}

	logger.Debug("Recorded prediction", record.HomeTeam, "vs", record.AwayTeam, record.ID)
	return record, nil
}

// LoadPredictions returns all ledger rows for the given pairing
func LoadPredictions(homeTeam, awayTeam string) ([]*PredictionRecord, error) {
	results, err := FindWhere(&PredictionRecord{}, "home_team = ? AND away_team = ?", homeTeam, awayTeam)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions: %w", err)
	}

	records := make([]*PredictionRecord, 0, len(results))
	for _, result := range results {
		if record, ok := result.(*PredictionRecord); ok {
			records = append(records, record)
		} else {
			logger.Warn("Unexpected type in FindWhere results, expected *PredictionRecord")
		}
	}
	return records, nil
}

/////////////////////////////////////////////////////////////////////////
////// Store-backed Provider
/////////////////////////////////////////////////////////////////////////

// StoreProvider resolves team statistics from the sqlite store.
// Teams missing from the store resolve to the default statistics; database
// failures degrade the same way rather than propagating into the engine.
type StoreProvider struct{}

// NewStoreProvider creates the store tables and seeds the team table from
// the embedded static table when it is empty
func NewStoreProvider() (*StoreProvider, error) {
	if err := CreateTable(&TeamRecord{}); err != nil {
		return nil, err
	}
	if err := CreateTable(&PredictionRecord{}); err != nil {
		return nil, err
	}

	if err := seedTeams(); err != nil {
		return nil, err
	}

	return &StoreProvider{}, nil
}

// seedTeams populates the teams table from the embedded table when empty
func seedTeams() error {
	count, err := CountRows(&TeamRecord{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("Teams table already populated", count)
		return nil
	}

	for name, stats := range staticTeamStats {
		record := &TeamRecord{
			Name:                 name,
			GoalsPerGame:         stats.GoalsPerGame,
			GoalsConcededPerGame: stats.GoalsConcededPerGame,
			Form:                 FormString(stats.Form),
		}
		if err := Save(record); err != nil {
			return fmt.Errorf("failed to seed team %s: %w", name, err)
		}
	}

	logger.Info("Seeded teams table", len(staticTeamStats))
	return nil
}

// FetchTeamStats resolves the named team from the store, degrading to the
// default statistics for unknown teams or storage failures
func (sp *StoreProvider) FetchTeamStats(name string) *TeamStats {
	record := &TeamRecord{}
	err := FindByPrimaryKey(record, map[string]any{"name": name})
	if err != nil {
		logger.Warn("Could not resolve team from store, using defaults", name, err)
		return DefaultTeamStats()
	}
	return record.Stats()
}
