package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelwdorrill/Trade-Scraper/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func sampleTrades() []models.Trade {
	signed := models.NewTrade(
		"Oct 1 2025",
		"Sharks acquire Ryan Ellis",
		"https://puckpedia.com/trade/1",
		[]models.Player{
			{
				Name:       "Ryan Ellis",
				Age:        intPtr(35),
				Position:   "D",
				CapHit:     int64Ptr(6250000),
				YearsLeft:  intPtr(7),
				TotalYears: intPtr(8),
			},
			{Name: "Nolan Allan", Age: intPtr(22), Position: "D"},
		},
	)
	picksOnly := models.NewTrade(
		"Sep 28 2025",
		"Pick swap",
		"https://puckpedia.com/trade/2",
		nil,
	)
	return []models.Trade{signed, picksOnly}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTrades()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"trade_date", "trade_summary", "trade_url",
		"highest_cap_hit", "highest_cap_player_name",
		"highest_cap_player_age", "highest_cap_player_position",
		"highest_cap_player_years_left", "highest_cap_player_total_years",
		"has_signed_players",
	}, rows[0])

	assert.Equal(t, []string{
		"Oct 1 2025", "Sharks acquire Ryan Ellis", "https://puckpedia.com/trade/1",
		"6250000", "Ryan Ellis", "35", "D", "7", "8", "true",
	}, rows[1])

	// Absent values render as empty cells.
	assert.Equal(t, []string{
		"Sep 28 2025", "Pick swap", "https://puckpedia.com/trade/2",
		"", "", "", "", "", "", "false",
	}, rows[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleTrades()))

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 2)

	signed := records[0]
	assert.Equal(t, "Oct 1 2025", signed["trade_date"])
	assert.Equal(t, float64(6250000), signed["highest_cap_hit"])
	assert.Equal(t, "Ryan Ellis", signed["highest_cap_player_name"])
	assert.Equal(t, "D", signed["highest_cap_player_position"])
	assert.Equal(t, true, signed["has_signed_players"])

	players, ok := signed["all_players"].([]interface{})
	require.True(t, ok)
	require.Len(t, players, 2)
	unsignedPlayer := players[1].(map[string]interface{})
	assert.Equal(t, "Nolan Allan", unsignedPlayer["name"])
	assert.Nil(t, unsignedPlayer["cap_hit"])

	picksOnly := records[1]
	assert.Nil(t, picksOnly["highest_cap_hit"])
	assert.Nil(t, picksOnly["highest_cap_player_name"])
	assert.Equal(t, false, picksOnly["has_signed_players"])
	emptyPlayers, ok := picksOnly["all_players"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, emptyPlayers)
}

func TestWriteFileRejectsUnknownFormat(t *testing.T) {
	path := t.TempDir() + "/out.xml"
	err := WriteFile(path, "xml", nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
