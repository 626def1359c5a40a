package puckpedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelwdorrill/Trade-Scraper/internal/config"
	"github.com/michaelwdorrill/Trade-Scraper/pkg/logger"
)

func testClientConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:       baseURL,
		Timeout:       5 * time.Second,
		CacheDuration: time.Minute,
	}
}

func TestClientFetchTradesPage(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/trades", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.Write([]byte(fixturePage))
	}))
	defer server.Close()

	client, err := NewClient(testClientConfig(server.URL), logger.New("error"))
	require.NoError(t, err)
	defer client.Close()

	result, err := client.FetchTradesPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Blocks)
	assert.Len(t, result.Trades, 2)

	// The second fetch of the same page is served from the cache.
	_, err = client.FetchTradesPage(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestClientReportsBlocked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient(testClientConfig(server.URL), logger.New("error"))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.FetchTradesPage(context.Background(), 1)
	require.ErrorIs(t, err, ErrBlocked)
}

func TestClientDebugDump(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixturePage))
	}))
	defer server.Close()

	cfg := testClientConfig(server.URL)
	cfg.Debug = true
	cfg.DebugDir = t.TempDir()

	client, err := NewClient(cfg, logger.New("error"))
	require.NoError(t, err)
	defer client.Close()

	_, err = client.FetchTradesPage(context.Background(), 3)
	require.NoError(t, err)

	dump, err := os.ReadFile(filepath.Join(cfg.DebugDir, "page_003.html"))
	require.NoError(t, err)
	assert.Equal(t, fixturePage, string(dump))
}
