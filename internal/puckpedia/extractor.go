package puckpedia

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/michaelwdorrill/Trade-Scraper/internal/models"
	"github.com/michaelwdorrill/Trade-Scraper/pkg/logger"
)

// PageResult carries one page's extracted trades plus the raw block count,
// so the pagination loop can tell an empty page apart from a page whose
// blocks all failed to extract.
type PageResult struct {
	Trades []models.Trade
	Blocks int
}

// Extractor turns one listing page's Document into Trade records.
type Extractor struct {
	baseURL *url.URL
	log     *logger.Logger
}

func NewExtractor(base string, log *logger.Logger) (*Extractor, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	return &Extractor{baseURL: u, log: log}, nil
}

// ExtractTrades walks every trade block on the page. A malformed block is
// logged and skipped; one bad record never aborts the page.
func (e *Extractor) ExtractTrades(doc Document) *PageResult {
	blocks := doc.TradeBlocks()
	result := &PageResult{Blocks: len(blocks)}

	for i, block := range blocks {
		trade, err := e.extractTrade(block)
		if err != nil {
			e.log.Warnf("skipping trade block %d/%d: %v", i+1, len(blocks), err)
			continue
		}
		result.Trades = append(result.Trades, trade)
	}
	return result
}

func (e *Extractor) extractTrade(block TradeBlock) (models.Trade, error) {
	summary := block.SummaryText()
	href := block.DetailHref()
	if summary == "" && href == "" {
		return models.Trade{}, fmt.Errorf("trade block has no summary link")
	}

	var players []models.Player
	for _, pb := range block.PlayerBlocks() {
		// Pick and retention cards are not players.
		if pb.IsDraftPick() || pb.IsRetainedSalary() {
			continue
		}
		player, ok := e.extractPlayer(pb)
		if !ok {
			continue
		}
		players = append(players, player)
	}

	return models.NewTrade(CleanDate(block.DateText()), summary, e.resolveURL(href), players), nil
}

// extractPlayer reads one player card. A card with no extractable name
// carries no signal and is dropped. A player whose cap hit or contract
// notation does not parse stays in the trade as unsigned.
func (e *Extractor) extractPlayer(pb PlayerBlock) (models.Player, bool) {
	name := pb.NameText()
	if name == "" {
		return models.Player{}, false
	}

	player := models.Player{Name: name}
	if age, ok := ParseAge(pb.AgeText()); ok {
		player.Age = &age
	}
	if pos, ok := ParsePosition(pb.PositionText()); ok {
		player.Position = pos
	}

	cardText := pb.Text()
	if year, ok := ParseExpiryYear(cardText); ok {
		player.ExpiryYear = &year
	}

	if !pb.HasCurrentContract() {
		return player, true
	}

	capHit, capOK := ParseCapHit(pb.CapHitText())
	if !capOK && strings.Contains(cardText, "$") {
		// Cap hit was not in the labeled cell; scan the whole card.
		capHit, capOK = ParseCapHit(cardText)
	}
	yearsLeft, totalYears, yearsOK := ParseContractYears(cardText)

	// A signed player always has a parseable contract term; without one the
	// cap figure is unreliable and the player counts as unsigned.
	if capOK && yearsOK {
		player.CapHit = &capHit
		player.YearsLeft = &yearsLeft
		player.TotalYears = &totalYears
	}
	return player, true
}

func (e *Extractor) resolveURL(href string) string {
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		e.log.Debugf("unparseable detail href %q: %v", href, err)
		return href
	}
	return e.baseURL.ResolveReference(ref).String()
}
