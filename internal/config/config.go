package config

import (
	"os"
	"strconv"

	"github.com/JTruax/BOIM-WP-MCP/internal/index"
	"github.com/JTruax/BOIM-WP-MCP/internal/watcher"
)

// Config is assembled once at startup from environment variables.
// CLI flags may override individual fields before the server starts.
type Config struct {
	LogLevel  string
	LogFormat string

	// DocsDir optionally points at a directory of markdown files that
	// shadow the embedded knowledge base, topic by topic.
	DocsDir string

	// IndexPath is the sqlite database location for the search index.
	IndexPath string

	// SearchLimit caps search_docs results.
	SearchLimit int

	Watcher watcher.Config
}

func Load() *Config {
	cfg := &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		IndexPath:   index.InMemory,
		SearchLimit: 5,
		Watcher:     watcher.DefaultConfig(),
	}

	if v := os.Getenv("BOIM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BOIM_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("BOIM_DOCS_DIR"); v != "" {
		cfg.DocsDir = v
	}
	if v := os.Getenv("BOIM_INDEX_PATH"); v != "" {
		cfg.IndexPath = v
	}
	if v := os.Getenv("BOIM_SEARCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SearchLimit = n
		}
	}

	// The watcher only makes sense with an override directory.
	cfg.Watcher.Enabled = cfg.DocsDir != ""

	return cfg
}
