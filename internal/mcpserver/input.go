package mcpserver

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oasref/document"
	"github.com/erraggy/oasref/internal/options"
)

// specInput identifies an OpenAPI 3.1 document for a tool call. Exactly one
// of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty" jsonschema:"Absolute or relative path to an OpenAPI 3.1 spec file (YAML or JSON)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI 3.1 spec content (YAML or JSON)"`
}

// load parses the referenced document. When useCache is true and caching is
// enabled, a previously parsed document may be returned; callers that mutate
// the document tree (resolution attaches values in place) must pass false so
// they work on a fresh parse.
func (in specInput) load(useCache bool) (*document.LoadResult, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file or content must be provided",
		"exactly one of file or content must be provided",
		in.File != "", in.Content != "",
	); err != nil {
		return nil, err
	}

	if in.Content != "" && len(in.Content) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content exceeds maximum size of %d bytes", cfg.MaxInlineSize)
	}

	useCache = useCache && cfg.CacheEnabled

	var key string
	var ttl time.Duration
	if useCache {
		var err error
		key, ttl, err = in.cacheKey()
		if err != nil {
			return nil, err
		}
		if cached, ok := specCache.get(key); ok {
			return cached, nil
		}
	}

	var result *document.LoadResult
	var err error
	if in.File != "" {
		result, err = document.Load(document.WithFilePath(in.File))
	} else {
		result, err = document.Load(
			document.WithBytes([]byte(in.Content)),
			document.WithSourceName("inline"),
		)
	}
	if err != nil {
		return nil, err
	}

	if useCache {
		specCache.putWithTTL(key, result, ttl)
	}
	return result, nil
}

// cacheKey derives a cache key for the input. File keys include the absolute
// path and mtime so edits on disk invalidate naturally; content keys hash the
// bytes.
func (in specInput) cacheKey() (string, time.Duration, error) {
	if in.File != "" {
		abs, err := filepath.Abs(in.File)
		if err != nil {
			return "", 0, fmt.Errorf("resolving path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", 0, fmt.Errorf("stat spec file: %w", err)
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano()), cfg.CacheFileTTL, nil
	}
	sum := sha256.Sum256([]byte(in.Content))
	return fmt.Sprintf("content:%x", sum), cfg.CacheContentTTL, nil
}

// specCacheStore is a TTL cache of parsed documents shared by read-only
// tools. Eviction is oldest-expiry-first when the size cap is hit; a
// background sweeper drops expired entries between calls.
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

type cacheEntry struct {
	result    *document.LoadResult
	expiresAt time.Time
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

func (c *specCacheStore) get(key string) (*document.LoadResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.result, true
}

func (c *specCacheStore) putWithTTL(key string, result *document.LoadResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}
	c.entries[key] = &cacheEntry{result: result, expiresAt: time.Now().Add(ttl)}
}

// evictOldestLocked removes the entry closest to expiry. Callers hold mu.
func (c *specCacheStore) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey = k
			oldest = e.expiresAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
