package puckpedia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/michaelwdorrill/Trade-Scraper/internal/cache"
	"github.com/michaelwdorrill/Trade-Scraper/internal/config"
	"github.com/michaelwdorrill/Trade-Scraper/pkg/logger"
)

// ErrBlocked is returned when the site's bot protection rejects a fetch.
// Runs hitting this should retry with the browser-backed fetcher.
var ErrBlocked = errors.New("blocked by bot protection")

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// HTMLSource fetches one URL's rendered HTML.
type HTMLSource interface {
	GetHTML(ctx context.Context, pageURL string) (string, error)
	Close() error
}

// Client fetches and extracts PuckPedia trade listing pages.
type Client struct {
	cfg    *config.Config
	source HTMLSource
	cache  *cache.Cache
	ext    *Extractor
	log    *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	ext, err := NewExtractor(cfg.BaseURL, log)
	if err != nil {
		return nil, err
	}

	var source HTMLSource
	if cfg.UseBrowser {
		source, err = newBrowserSource(cfg)
		if err != nil {
			return nil, fmt.Errorf("starting browser: %w", err)
		}
	} else {
		source = newHTTPSource(cfg)
	}

	return &Client{
		cfg:    cfg,
		source: source,
		cache:  cache.New(cfg.CacheDuration),
		ext:    ext,
		log:    log,
	}, nil
}

// FetchTradesPage retrieves and extracts one listing page. Fetched HTML is
// cached per page number for the life of the process.
func (c *Client) FetchTradesPage(ctx context.Context, page int) (*PageResult, error) {
	html, found := c.cache.GetPage(page)
	if !found {
		var err error
		html, err = c.source.GetHTML(ctx, c.pageURL(page))
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}
		c.cache.SetPage(page, html)
	}

	if c.cfg.Debug {
		c.dumpPage(page, html)
	}

	doc, err := NewDocument(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page %d: %w", page, err)
	}
	return c.ext.ExtractTrades(doc), nil
}

func (c *Client) Close() error {
	return c.source.Close()
}

func (c *Client) pageURL(page int) string {
	return fmt.Sprintf("%s/trades?page=%d", strings.TrimRight(c.cfg.BaseURL, "/"), page)
}

// dumpPage writes the raw HTML to the debug directory. Dump failures are
// logged and otherwise ignored; diagnostics never affect the run.
func (c *Client) dumpPage(page int, html string) {
	if err := os.MkdirAll(c.cfg.DebugDir, 0755); err != nil {
		c.log.Warnf("creating debug dir: %v", err)
		return
	}
	path := filepath.Join(c.cfg.DebugDir, fmt.Sprintf("page_%03d.html", page))
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		c.log.Warnf("writing debug dump: %v", err)
		return
	}
	c.log.Debugf("saved raw HTML to %s", path)
}

type httpSource struct {
	client  *resty.Client
	referer string
}

func newHTTPSource(cfg *config.Config) *httpSource {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(2 * time.Second).
		SetRetryMaxWaitTime(16 * time.Second)

	client.SetHeaders(map[string]string{
		"User-Agent":                userAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.9",
		"Cache-Control":             "max-age=0",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
	})

	return &httpSource{
		client:  client,
		referer: strings.TrimRight(cfg.BaseURL, "/") + "/trades",
	}
}

func (s *httpSource) GetHTML(ctx context.Context, pageURL string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Referer", s.referer).
		Get(pageURL)
	if err != nil {
		return "", fmt.Errorf("performing request: %w", err)
	}
	if resp.StatusCode() == http.StatusForbidden {
		return "", fmt.Errorf("%w (status 403, try --browser)", ErrBlocked)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}
	return string(resp.Body()), nil
}

func (s *httpSource) Close() error {
	return nil
}
