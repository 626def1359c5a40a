package scraper

import (
	"context"
	"time"

	"github.com/michaelwdorrill/Trade-Scraper/internal/config"
	"github.com/michaelwdorrill/Trade-Scraper/internal/models"
	"github.com/michaelwdorrill/Trade-Scraper/internal/puckpedia"
	"github.com/michaelwdorrill/Trade-Scraper/pkg/logger"
)

// PageSource supplies one listing page's extracted trades.
type PageSource interface {
	FetchTradesPage(ctx context.Context, page int) (*puckpedia.PageResult, error)
}

// Stats summarizes a run for the end-of-run report.
type Stats struct {
	PagesVisited    int
	TradesCollected int
}

// Scraper drives page retrieval in order, accumulating trades until the
// site runs out, the page limit is hit, or a fetch fails.
type Scraper struct {
	source   PageSource
	log      *logger.Logger
	maxPages int
	delay    time.Duration
}

func New(source PageSource, cfg *config.Config, log *logger.Logger) *Scraper {
	return &Scraper{
		source:   source,
		log:      log,
		maxPages: cfg.MaxPages,
		delay:    cfg.Delay,
	}
}

// Run fetches pages strictly sequentially starting at page 1. A fetch
// failure ends the run but the trades collected so far are still returned
// alongside the error, so a partial result can be written.
func (s *Scraper) Run(ctx context.Context) ([]models.Trade, Stats, error) {
	var all []models.Trade
	var stats Stats

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return all, stats, err
		}

		s.log.Infof("fetching page %d", page)
		result, err := s.source.FetchTradesPage(ctx, page)
		if err != nil {
			s.log.Errorf("page %d failed, keeping %d trades collected so far: %v", page, len(all), err)
			return all, stats, err
		}
		stats.PagesVisited++

		if result.Blocks == 0 {
			s.log.Infof("page %d has no trade blocks, reached the end", page)
			return all, stats, nil
		}

		all = append(all, result.Trades...)
		stats.TradesCollected = len(all)
		s.log.Infof("page %d: %d trades (%d total)", page, len(result.Trades), len(all))

		if s.maxPages > 0 && page >= s.maxPages {
			s.log.Infof("reached page limit of %d", s.maxPages)
			return all, stats, nil
		}

		if s.delay > 0 {
			select {
			case <-time.After(s.delay):
			case <-ctx.Done():
				return all, stats, ctx.Err()
			}
		}
	}
}
