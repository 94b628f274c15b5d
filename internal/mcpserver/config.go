package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds operator-tunable settings read once at startup from
// OASREF_* environment variables. Invalid values fall back to defaults with
// a warning rather than failing the server.
type serverConfig struct {
	// CacheEnabled toggles the parsed-document cache shared by read-only
	// tools. Dereferencing always parses fresh regardless of this setting.
	CacheEnabled bool
	// CacheMaxSize bounds the number of cached documents.
	CacheMaxSize int
	// CacheFileTTL is how long file-backed entries stay valid.
	CacheFileTTL time.Duration
	// CacheContentTTL is how long inline-content entries stay valid.
	CacheContentTTL time.Duration
	// CacheSweepInterval is how often expired entries are swept.
	CacheSweepInterval time.Duration
	// MaxInlineSize caps the byte length of inline spec content.
	MaxInlineSize int
	// MaxDepth caps reference nesting during resolution.
	MaxDepth int
	// RefsLimit is the default page size for the refs tool.
	RefsLimit int
}

var cfg = loadConfig()

func loadConfig() serverConfig {
	return serverConfig{
		CacheEnabled:       envBool("OASREF_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASREF_CACHE_MAX_SIZE", 50),
		CacheFileTTL:       envDuration("OASREF_CACHE_FILE_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("OASREF_CACHE_CONTENT_TTL", 30*time.Minute),
		CacheSweepInterval: envDuration("OASREF_CACHE_SWEEP_INTERVAL", time.Minute),
		MaxInlineSize:      envInt("OASREF_MAX_INLINE_SIZE", 10*1024*1024),
		MaxDepth:           envInt("OASREF_MAX_DEPTH", 100),
		RefsLimit:          envInt("OASREF_REFS_LIMIT", 100),
	}
}

func envBool(key string, def bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "var", key, "value", raw, "default", def)
		return def
	}
	return v
}

func envInt(key string, def int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid positive integer in environment, using default", "var", key, "value", raw, "default", def)
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("invalid duration in environment, using default", "var", key, "value", raw, "default", def)
		return def
	}
	return v
}
