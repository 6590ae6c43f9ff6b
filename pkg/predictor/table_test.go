package predictor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standingsHTML = `
<html><body>
<table>
  <tr><th>Team</th><th>P</th><th>GF</th><th>GA</th><th>Form</th></tr>
  <tr>
    <td class="team">Arsenal</td>
    <td class="played">10</td>
    <td class="gf">24</td>
    <td class="ga">11</td>
    <td class="form">WDWWL</td>
  </tr>
  <tr>
    <td class="team">Burnley</td>
    <td class="played">10</td>
    <td class="gf">8</td>
    <td class="ga">22</td>
    <td class="form">LLDLL</td>
  </tr>
  <tr>
    <td class="team">Newly Promoted</td>
    <td class="played">0</td>
    <td class="gf">0</td>
    <td class="ga">0</td>
    <td class="form"></td>
  </tr>
</table>
</body></html>`

func TestParseStandingsHTML(t *testing.T) {
	table, err := ParseStandingsHTML(strings.NewReader(standingsHTML))
	require.NoError(t, err)
	require.Len(t, table, 2) // the zero-played row is skipped

	arsenal := table["Arsenal"]
	require.NotNil(t, arsenal)
	assert.InDelta(t, 2.4, arsenal.GoalsPerGame, 1e-9)
	assert.InDelta(t, 1.1, arsenal.GoalsConcededPerGame, 1e-9)
	assert.Equal(t, []int{3, 1, 3, 3, 0}, arsenal.Form)

	burnley := table["Burnley"]
	require.NotNil(t, burnley)
	assert.InDelta(t, 0.8, burnley.GoalsPerGame, 1e-9)
	assert.Equal(t, []int{0, 0, 1, 0, 0}, burnley.Form)
}

func TestParseStandingsHTMLRejectsEmptyDocument(t *testing.T) {
	_, err := ParseStandingsHTML(strings.NewReader("<html><body><p>not a table</p></body></html>"))
	require.Error(t, err)
}

func TestTableProviderResolvesAndFallsBack(t *testing.T) {
	tp, err := NewTableProvider(strings.NewReader(standingsHTML))
	require.NoError(t, err)

	stats := tp.FetchTeamStats("Arsenal")
	assert.InDelta(t, 2.4, stats.GoalsPerGame, 1e-9)

	fallback := tp.FetchTeamStats("Melchester Rovers")
	assert.Equal(t, DefaultTeamStats(), fallback)
}

func TestParseFormLetters(t *testing.T) {
	assert.Equal(t, []int{3, 1, 0}, parseFormLetters("WDL"))
	assert.Equal(t, []int{3, 0}, parseFormLetters("w?l"))
	assert.Nil(t, parseFormLetters(""))
}
