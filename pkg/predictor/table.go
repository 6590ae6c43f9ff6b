package predictor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/richard-senior/plp/internal/logger"
)

// TableProvider resolves team statistics from an exported league-table HTML
// document, the kind saved to the cache directory by a separate scrape.
// It never fetches anything itself.
type TableProvider struct {
	table map[string]*TeamStats
}

// NewTableProvider parses a standings document and returns a provider over it
func NewTableProvider(r io.Reader) (*TableProvider, error) {
	table, err := ParseStandingsHTML(r)
	if err != nil {
		return nil, err
	}
	return &TableProvider{table: table}, nil
}

// FetchTeamStats resolves the named team from the parsed table, degrading to
// the default statistics for unknown teams
func (tp *TableProvider) FetchTeamStats(name string) *TeamStats {
	stats, ok := tp.table[name]
	if !ok {
		return DefaultTeamStats()
	}
	return stats
}

// ParseStandingsHTML extracts per-team statistics from a standings table.
// Expected row shape, one row per team:
//
//	<tr>
//	  <td class="team">Arsenal</td>
//	  <td class="played">10</td>
//	  <td class="gf">24</td>
//	  <td class="ga">11</td>
//	  <td class="form">WDWWL</td>
//	</tr>
//
// The form string reads left to right from the most recent result.
// Rows missing a team name or with zero games played are skipped.
func ParseStandingsHTML(r io.Reader) (map[string]*TeamStats, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %w", err)
	}

	table := make(map[string]*TeamStats)

	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find("td.team").Text())
		if name == "" {
			return // Header or malformed row
		}

		played := parseCellInt(row, "td.played")
		goalsFor := parseCellInt(row, "td.gf")
		goalsAgainst := parseCellInt(row, "td.ga")

		if played <= 0 {
			logger.Warn("Skipping standings row with no games played", name)
			return
		}

		table[name] = &TeamStats{
			GoalsPerGame:         float64(goalsFor) / float64(played),
			GoalsConcededPerGame: float64(goalsAgainst) / float64(played),
			Form:                 parseFormLetters(strings.TrimSpace(row.Find("td.form").Text())),
		}
	})

	if len(table) == 0 {
		return nil, fmt.Errorf("no team rows found in standings document")
	}

	logger.Info("Parsed standings document", len(table), "teams")
	return table, nil
}

// parseCellInt reads an integer cell from a standings row, returning 0 for
// missing or malformed cells
func parseCellInt(row *goquery.Selection, selector string) int {
	text := strings.TrimSpace(row.Find(selector).Text())
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return value
}

// parseFormLetters converts a "WDLWW" form string to the 0/1/3 sequence,
// most recent first. Unknown letters are skipped.
func parseFormLetters(letters string) []int {
	var form []int
	for _, letter := range letters {
		switch letter {
		case 'W', 'w':
			form = append(form, 3)
		case 'D', 'd':
			form = append(form, 1)
		case 'L', 'l':
			form = append(form, 0)
		}
	}
	return form
}
