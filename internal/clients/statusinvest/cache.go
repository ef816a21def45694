package statusinvest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// diskCache stores one JSON file per logical query. An entry is valid until
// ttl has elapsed since the file's modification time.
type diskCache struct {
	dir string
	ttl time.Duration
}

func newDiskCache(dir string, ttl time.Duration) *diskCache {
	return &diskCache{dir: dir, ttl: ttl}
}

func (c *diskCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// load reads a cache entry into out. Returns false for missing, expired or
// unreadable entries.
func (c *diskCache) load(key string, out interface{}) bool {
	if c.dir == "" {
		return false
	}

	path := c.path(key)
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, out) == nil
}

// save writes a cache entry.
func (c *diskCache) save(key string, value interface{}) error {
	if c.dir == "" {
		return nil
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}
