package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache holds fetched page HTML keyed by page number, so a debug re-run
// inside one process does not hit the site again.
type Cache struct {
	cache    *gocache.Cache
	duration time.Duration
}

func New(duration time.Duration) *Cache {
	return &Cache{
		cache:    gocache.New(duration, duration*2),
		duration: duration,
	}
}

func (c *Cache) SetPage(page int, html string) {
	c.cache.Set(pageKey(page), html, c.duration)
}

func (c *Cache) GetPage(page int) (string, bool) {
	if html, found := c.cache.Get(pageKey(page)); found {
		return html.(string), true
	}
	return "", false
}

func (c *Cache) Flush() {
	c.cache.Flush()
}

func pageKey(page int) string {
	return fmt.Sprintf("page:%d", page)
}
