package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/michaelwdorrill/Trade-Scraper/internal/config"
	"github.com/michaelwdorrill/Trade-Scraper/internal/models"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

var csvHeader = []string{
	"trade_date",
	"trade_summary",
	"trade_url",
	"highest_cap_hit",
	"highest_cap_player_name",
	"highest_cap_player_age",
	"highest_cap_player_position",
	"highest_cap_player_years_left",
	"highest_cap_player_total_years",
	"has_signed_players",
}

// WriteFile serializes the trades to path in the given format.
func WriteFile(path, format string, trades []models.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	switch format {
	case config.FormatCSV:
		return WriteCSV(f, trades)
	case config.FormatJSON:
		return WriteJSON(f, trades)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// WriteCSV writes one row per trade. Absent values render as empty cells.
func WriteCSV(w io.Writer, trades []models.Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, t := range trades {
		if err := cw.Write(csvRow(t)); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(t models.Trade) []string {
	row := []string{t.Date, t.Summary, t.URL}
	if h := t.HighestCap; h != nil {
		row = append(row,
			strconv.FormatInt(*h.CapHit, 10),
			h.Name,
			formatIntPtr(h.Age),
			h.Position,
			formatIntPtr(h.YearsLeft),
			formatIntPtr(h.TotalYears),
		)
	} else {
		row = append(row, "", "", "", "", "", "")
	}
	return append(row, strconv.FormatBool(t.HasSignedPlayers))
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// tradeRecord is the JSON shape: the CSV columns flattened, plus every
// player of the trade under all_players.
type tradeRecord struct {
	TradeDate                  string          `json:"trade_date"`
	TradeSummary               string          `json:"trade_summary"`
	TradeURL                   string          `json:"trade_url"`
	HighestCapHit              *int64          `json:"highest_cap_hit"`
	HighestCapPlayerName       *string         `json:"highest_cap_player_name"`
	HighestCapPlayerAge        *int            `json:"highest_cap_player_age"`
	HighestCapPlayerPosition   *string         `json:"highest_cap_player_position"`
	HighestCapPlayerYearsLeft  *int            `json:"highest_cap_player_years_left"`
	HighestCapPlayerTotalYears *int            `json:"highest_cap_player_total_years"`
	HasSignedPlayers           bool            `json:"has_signed_players"`
	AllPlayers                 []models.Player `json:"all_players"`
}

// WriteJSON writes the trades as an indented JSON array.
func WriteJSON(w io.Writer, trades []models.Trade) error {
	records := make([]tradeRecord, 0, len(trades))
	for _, t := range trades {
		records = append(records, newTradeRecord(t))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func newTradeRecord(t models.Trade) tradeRecord {
	players := t.Players
	if players == nil {
		players = []models.Player{}
	}
	rec := tradeRecord{
		TradeDate:        t.Date,
		TradeSummary:     t.Summary,
		TradeURL:         t.URL,
		HasSignedPlayers: t.HasSignedPlayers,
		AllPlayers:       players,
	}
	if h := t.HighestCap; h != nil {
		rec.HighestCapHit = h.CapHit
		rec.HighestCapPlayerName = &h.Name
		rec.HighestCapPlayerAge = h.Age
		if h.Position != "" {
			rec.HighestCapPlayerPosition = &h.Position
		}
		rec.HighestCapPlayerYearsLeft = h.YearsLeft
		rec.HighestCapPlayerTotalYears = h.TotalYears
	}
	return rec
}
