package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JTruax/BOIM-WP-MCP/internal/config"
	"github.com/JTruax/BOIM-WP-MCP/internal/index"
	"github.com/JTruax/BOIM-WP-MCP/internal/kb"
	"github.com/JTruax/BOIM-WP-MCP/internal/logger"
	"github.com/JTruax/BOIM-WP-MCP/internal/mcp"
	"github.com/JTruax/BOIM-WP-MCP/internal/registry"
	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
	"github.com/JTruax/BOIM-WP-MCP/internal/tools/blocks"
	"github.com/JTruax/BOIM-WP-MCP/internal/tools/search"
	"github.com/JTruax/BOIM-WP-MCP/internal/tools/wp"
	"github.com/JTruax/BOIM-WP-MCP/internal/version"
	"github.com/JTruax/BOIM-WP-MCP/internal/watcher"
)

var (
	flagLogLevel  string
	flagLogFormat string
	flagDocsDir   string
	flagIndexPath string
)

func main() {
	root := &cobra.Command{
		Use:   "boim-wp-mcp",
		Short: "WordPress/GenerateBlocks documentation and template MCP server",
		Long: `boim-wp-mcp serves GenerateBlocks markup generators, WordPress
scaffolding tools, and a searchable documentation library over the
Model Context Protocol on stdio.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text or json")
	root.Flags().StringVar(&flagDocsDir, "docs-dir", "", "directory of markdown files overriding the embedded docs")
	root.Flags().StringVar(&flagIndexPath, "index-path", "", "sqlite path for the search index (default in-memory)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s (protocol %s)\n", version.ServerName, version.Version, version.ProtocolVersion)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	cfg := config.Load()
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}
	if flagDocsDir != "" {
		cfg.DocsDir = flagDocsDir
		cfg.Watcher.Enabled = true
	}
	if flagIndexPath != "" {
		cfg.IndexPath = flagIndexPath
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.LogLevel)
	logCfg.Format = cfg.LogFormat
	logger.Init(logCfg)

	sessionID := uuid.NewString()
	logger.Info("starting server",
		"name", version.ServerName,
		"version", version.Version,
		"session", sessionID,
	)

	lib := kb.NewLibrary(cfg.DocsDir)

	store, err := index.Open(cfg.IndexPath)
	if err != nil {
		return fmt.Errorf("open search index: %w", err)
	}
	defer store.Close()

	if err := index.Build(store, lib); err != nil {
		return fmt.Errorf("build search index: %w", err)
	}

	reg, err := buildRegistry(lib, store, cfg.SearchLimit)
	if err != nil {
		return err
	}

	if cfg.Watcher.Enabled {
		w, err := watcher.New(cfg.Watcher, func(paths []string) {
			index.Reindex(store, lib, paths)
		})
		if err != nil {
			return fmt.Errorf("create docs watcher: %w", err)
		}
		if err := w.Watch(cfg.DocsDir); err != nil {
			return fmt.Errorf("watch %s: %w", cfg.DocsDir, err)
		}
		w.Start(ctx)
		defer w.Stop()
	}

	logger.Info("serving on stdio",
		"tools", len(reg.Tools()),
		"resources", len(reg.Resources()),
	)

	err = mcp.NewServer(reg).ServeStdio(ctx)
	if err == context.Canceled {
		err = nil
	}
	logger.Info("server stopped", "session", sessionID)
	return err
}

// buildRegistry assembles the full catalog. Registration order is the
// order clients see in tools/list and resources/list.
func buildRegistry(lib *kb.Library, store *index.Store, searchLimit int) (*registry.Registry, error) {
	reg := registry.New()

	var all []registry.Tool
	all = append(all, blocks.GetTools()...)
	all = append(all, wp.GetTools()...)
	all = append(all, search.GetTools(store, lib, searchLimit)...)
	all = append(all, tools.NewHealthTool())

	for _, tool := range all {
		if err := reg.Register(tool); err != nil {
			return nil, fmt.Errorf("register tool %s: %w", tool.Name(), err)
		}
	}
	for _, res := range lib.Resources() {
		if err := reg.RegisterResource(res); err != nil {
			return nil, fmt.Errorf("register resource %s: %w", res.URI(), err)
		}
	}

	reg.Freeze()
	return reg, nil
}
