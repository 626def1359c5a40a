package puckpedia

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/michaelwdorrill/Trade-Scraper/internal/config"
)

// browserSource renders pages in headless Chrome. It exists for runs where
// the plain HTTP fetcher is rejected by Cloudflare-style bot protection.
type browserSource struct {
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	pageTimeout   time.Duration
	settle        time.Duration
}

func newBrowserSource(cfg *config.Config) (*browserSource, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	return &browserSource{
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
		pageTimeout:   2 * cfg.Timeout,
		settle:        3 * time.Second,
	}, nil
}

func (s *browserSource) GetHTML(ctx context.Context, pageURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tabCtx, cancel := context.WithTimeout(s.browserCtx, s.pageTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(pageURL),
		// Give the challenge page time to clear before reading the DOM.
		chromedp.Sleep(s.settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", pageURL, err)
	}
	return html, nil
}

func (s *browserSource) Close() error {
	s.cancelBrowser()
	s.cancelAlloc()
	return nil
}
