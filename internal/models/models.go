package models

// Player represents one player mentioned in a trade block. Pointer fields
// are nil when the source block carried no parseable value for them.
type Player struct {
	Name       string `json:"name"`
	Age        *int   `json:"age"`
	Position   string `json:"position,omitempty"`
	CapHit     *int64 `json:"cap_hit"`
	YearsLeft  *int   `json:"years_left"`
	TotalYears *int   `json:"total_years"`
	ExpiryYear *int   `json:"expiry_year,omitempty"`
}

// Signed reports whether the player carries cap data for this trade.
// Unsigned prospects and players without a current contract are still
// listed in the trade but have no cap hit.
func (p Player) Signed() bool {
	return p.CapHit != nil
}

// Trade is one trade event as scraped from the listing. It is built once
// per trade block and never modified afterward; the same trade appearing
// on two pages produces two entries.
type Trade struct {
	Date             string   `json:"trade_date"`
	Summary          string   `json:"trade_summary"`
	URL              string   `json:"trade_url"`
	Players          []Player `json:"all_players"`
	HasSignedPlayers bool     `json:"has_signed_players"`

	// HighestCap points into Players; nil when no player is signed.
	HighestCap *Player `json:"-"`
}

// NewTrade builds a Trade from the extracted fields, deriving
// HasSignedPlayers and HighestCap from the player list.
func NewTrade(date, summary, url string, players []Player) Trade {
	highest := HighestCapPlayer(players)
	return Trade{
		Date:             date,
		Summary:          summary,
		URL:              url,
		Players:          players,
		HasSignedPlayers: highest != nil,
		HighestCap:       highest,
	}
}

// HighestCapPlayer returns the player with the maximum cap hit, or nil when
// no player in the list is signed. Ties go to the earliest player in source
// order, which the strictly-greater comparison guarantees.
func HighestCapPlayer(players []Player) *Player {
	var best *Player
	for i := range players {
		p := &players[i]
		if p.CapHit == nil {
			continue
		}
		if best == nil || *p.CapHit > *best.CapHit {
			best = p
		}
	}
	return best
}
