package flush

import (
	"sync"
	"time"
)

// Cache tracks which queue IDs are waiting for each destination site.
// Safe for concurrent use by connection handlers.
type Cache struct {
	mu        sync.Mutex
	sites     map[string]*siteEntry
	retention time.Duration
	now       func() time.Time
}

type siteEntry struct {
	queueIDs map[string]struct{}
	touched  time.Time
}

// NewCache builds a cache whose entries expire after being idle for
// retention.
func NewCache(retention time.Duration) *Cache {
	return &Cache{
		sites:     make(map[string]*siteEntry),
		retention: retention,
		now:       time.Now,
	}
}

// Add records queueID as waiting for site.
func (c *Cache) Add(site, queueID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.sites[site]
	if !ok {
		entry = &siteEntry{queueIDs: make(map[string]struct{})}
		c.sites[site] = entry
	}
	entry.queueIDs[queueID] = struct{}{}
	entry.touched = c.now()
}

// Send drains and returns the queue IDs recorded for site. A site with
// nothing queued yields an empty result.
func (c *Cache) Send(site string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.sites[site]
	if !ok {
		return nil
	}
	delete(c.sites, site)
	ids := make([]string, 0, len(entry.queueIDs))
	for id := range entry.queueIDs {
		ids = append(ids, id)
	}
	return ids
}

// Purge drops entries idle past the retention period and reports how
// many sites were evicted.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cutoff := c.now().Add(-c.retention)
	dropped := 0
	for site, entry := range c.sites {
		if entry.touched.Before(cutoff) {
			delete(c.sites, site)
			dropped++
		}
	}
	return dropped
}

// Len reports how many sites currently have queued entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sites)
}
