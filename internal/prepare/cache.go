package prepare

import (
	"fmt"
	"os"
	"sync"

	"zahra/dld-analytics/internal/models"
)

// fileIdentity keys the load cache. Two loads hit the same entry only while
// the file at that path has the same size and modification time.
type fileIdentity struct {
	path    string
	size    int64
	modTime int64
}

// LoadCache memoizes parsed tables by file identity so repeated analyses of
// the same input do not re-parse it.
type LoadCache struct {
	mu      sync.Mutex
	entries map[fileIdentity][]models.Transaction
}

// NewLoadCache creates an empty load cache.
func NewLoadCache() *LoadCache {
	return &LoadCache{
		entries: make(map[fileIdentity][]models.Transaction),
	}
}

// Load returns the cached table for path, invoking loadFn and caching its
// result on a miss. A changed file (different size or mtime) is a miss.
func (c *LoadCache) Load(path string, loadFn func() ([]models.Transaction, error)) ([]models.Transaction, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file info for %s: %w", path, err)
	}

	key := fileIdentity{
		path:    path,
		size:    info.Size(),
		modTime: info.ModTime().UnixNano(),
	}

	c.mu.Lock()
	cached, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	txs, err := loadFn()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = txs
	c.mu.Unlock()
	return txs, nil
}

// Len returns the number of cached tables.
func (c *LoadCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
