package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore points the store at an in-memory database for the duration
// of the test
func openTestStore(t *testing.T) *StoreProvider {
	t.Helper()
	require.NoError(t, InitDatabase(":memory:"))
	t.Cleanup(func() {
		if err := CloseDatabase(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	sp, err := NewStoreProvider()
	require.NoError(t, err)
	return sp
}

func TestStoreProviderSeedsFromEmbeddedTable(t *testing.T) {
	sp := openTestStore(t)

	count, err := CountRows(&TeamRecord{})
	require.NoError(t, err)
	assert.Equal(t, 20, count)

	stats := sp.FetchTeamStats("Liverpool")
	require.NotNil(t, stats)
	assert.InDelta(t, 2.6, stats.GoalsPerGame, 1e-9)
	assert.InDelta(t, 1.0, stats.GoalsConcededPerGame, 1e-9)
	assert.Equal(t, []int{3, 3, 3, 1, 3}, stats.Form)
}

func TestStoreProviderUnknownTeamFallsBack(t *testing.T) {
	sp := openTestStore(t)

	stats := sp.FetchTeamStats("Melchester Rovers")
	require.NotNil(t, stats)
	assert.Equal(t, DefaultTeamStats(), stats)
}

func TestStoreProviderSeedIsIdempotent(t *testing.T) {
	openTestStore(t)

	// A second provider over the same database must not duplicate the seed
	_, err := NewStoreProvider()
	require.NoError(t, err)

	count, err := CountRows(&TeamRecord{})
	require.NoError(t, err)
	assert.Equal(t, 20, count)
}

func TestTeamRecordUpdateRoundTrip(t *testing.T) {
	openTestStore(t)

	record := &TeamRecord{}
	require.NoError(t, FindByPrimaryKey(record, map[string]any{"name": "Everton"}))

	record.GoalsPerGame = 2.2
	record.Form = "3,3,3"
	require.NoError(t, Save(record))

	reloaded := &TeamRecord{}
	require.NoError(t, FindByPrimaryKey(reloaded, map[string]any{"name": "Everton"}))
	assert.InDelta(t, 2.2, reloaded.GoalsPerGame, 1e-9)
	assert.Equal(t, []int{3, 3, 3}, reloaded.Stats().Form)
}

func TestRecordAndLoadPredictions(t *testing.T) {
	sp := openTestStore(t)
	p := NewPredictor(sp)

	prediction, err := p.PredictMatch("Manchester City", "Arsenal")
	require.NoError(t, err)

	record, err := RecordPrediction(prediction)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "3-1", record.MostLikelyScore)
	assert.False(t, record.PredictedAt.IsZero())

	loaded, err := LoadPredictions("Manchester City", "Arsenal")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, record.ID, loaded[0].ID)
	assert.InDelta(t, prediction.HomeWinProbability, loaded[0].HomeWinProbability, 1e-9)
	assert.InDelta(t, prediction.ConfidenceScore, loaded[0].ConfidenceScore, 1e-9)

	// The reverse fixture is a different pairing
	reverse, err := LoadPredictions("Arsenal", "Manchester City")
	require.NoError(t, err)
	assert.Empty(t, reverse)
}

func TestFormStringRoundTrip(t *testing.T) {
	form := []int{3, 1, 0, 3, 1}
	assert.Equal(t, "3,1,0,3,1", FormString(form))
	assert.Equal(t, form, ParseFormString("3,1,0,3,1"))
}

func TestParseFormStringSkipsInvalidEntries(t *testing.T) {
	// 2 is not a valid points value and "x" is not a number
	assert.Equal(t, []int{3, 0}, ParseFormString("3,2,x,0,7"))
	assert.Nil(t, ParseFormString(""))
}
