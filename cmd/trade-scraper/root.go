package main

import (
	"context"
	"log"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/michaelwdorrill/Trade-Scraper/internal/config"
	"github.com/michaelwdorrill/Trade-Scraper/internal/models"
	"github.com/michaelwdorrill/Trade-Scraper/internal/output"
	"github.com/michaelwdorrill/Trade-Scraper/internal/puckpedia"
	"github.com/michaelwdorrill/Trade-Scraper/internal/scraper"
	"github.com/michaelwdorrill/Trade-Scraper/pkg/logger"
)

var (
	flagOutput   string
	flagFormat   string
	flagMaxPages int
	flagDelay    time.Duration
	flagBrowser  bool
	flagDebug    bool
	flagDebugDir string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "trade-scraper",
	Short:         "Scrape NHL trade records from PuckPedia into CSV or JSON",
	Long: `trade-scraper walks the paginated PuckPedia trades listing and writes one
record per trade: date, summary, detail URL, the highest-cap-hit player's
contract details, and (in JSON) every player involved.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&flagOutput, "output", "o", "", "output file path")
	flags.StringVarP(&flagFormat, "format", "f", "", "output format: csv or json")
	flags.IntVarP(&flagMaxPages, "max-pages", "m", 0, "maximum pages to scrape (0 = all)")
	flags.DurationVarP(&flagDelay, "delay", "d", 0, "delay between page fetches (e.g. 1.5s)")
	flags.BoolVar(&flagBrowser, "browser", false, "fetch via headless Chrome (for bot-protected runs)")
	flags.BoolVar(&flagDebug, "debug", false, "dump raw per-page HTML for inspection")
	flags.StringVar(&flagDebugDir, "debug-dir", "", "directory for raw HTML dumps")
	flags.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)

	client, err := puckpedia.NewClient(cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	trades, stats, runErr := scraper.New(client, cfg, log).Run(ctx)
	if runErr != nil {
		log.Warnf("run ended early: %v", runErr)
	}

	// Whatever was collected gets written, even after an early end.
	if err := output.WriteFile(cfg.OutputPath, cfg.Format, trades); err != nil {
		return err
	}
	log.Infof("saved %d trades to %s (%s)", len(trades), cfg.OutputPath, cfg.Format)

	printSummary(log, trades, stats)
	return nil
}

// applyFlags lets explicitly-set flags override environment configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.OutputPath = flagOutput
	}
	if flags.Changed("format") {
		cfg.Format = flagFormat
	}
	if flags.Changed("max-pages") {
		cfg.MaxPages = flagMaxPages
	}
	if flags.Changed("delay") {
		cfg.Delay = flagDelay
	}
	if flags.Changed("debug-dir") {
		cfg.DebugDir = flagDebugDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	cfg.UseBrowser = cfg.UseBrowser || flagBrowser
	cfg.Debug = cfg.Debug || flagDebug
}

func printSummary(log *logger.Logger, trades []models.Trade, stats scraper.Stats) {
	signed := 0
	for _, t := range trades {
		if t.HasSignedPlayers {
			signed++
		}
	}

	log.Infof("pages visited: %d, trades collected: %d", stats.PagesVisited, len(trades))
	log.Infof("with signed players: %d, picks/prospects only: %d", signed, len(trades)-signed)

	top := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.HighestCap != nil {
			top = append(top, t)
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return *top[i].HighestCap.CapHit > *top[j].HighestCap.CapHit
	})
	if len(top) > 5 {
		top = top[:5]
	}
	for i, t := range top {
		log.Infof("top cap hit %d: $%d - %s (%s)", i+1, *t.HighestCap.CapHit, t.HighestCap.Name, t.Date)
	}
}
