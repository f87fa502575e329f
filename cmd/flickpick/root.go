package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/flickpick/internal/catalog"
	"github.com/vmunix/flickpick/internal/collections"
	"github.com/vmunix/flickpick/internal/config"
	"github.com/vmunix/flickpick/pkg/tmdb"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "flickpick",
	Short: "Movie discovery from the command line",
	Long: `flickpick - movie discovery from the command line

Look up movies and people, run filtered discovery with automatic
fallback, pick random movies and actors, and compute insights over
your collections.

Requires a TMDB API token (tmdb.api_token in config.toml, or the
TMDB_API_TOKEN environment variable referenced from it).`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("flickpick {{.Version}}\n")
}

// app bundles the wired-up engine for command handlers.
type app struct {
	engine *catalog.Service
	store  *collections.Store
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

// setup loads config and constructs the client, store and engine.
func setup() (*app, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Discover()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "config:", e)
		}
		return nil, fmt.Errorf("invalid config: %s", path)
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	log := newLogger(level)

	clientOpts := []tmdb.Option{
		tmdb.WithLogger(log),
		tmdb.WithDefaults(tmdb.Options{
			Region:       cfg.TMDB.Region,
			Language:     cfg.TMDB.Language,
			IncludeAdult: cfg.TMDB.IncludeAdult,
		}),
	}
	if cfg.TMDB.BaseURL != "" {
		clientOpts = append(clientOpts, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
	}
	client := tmdb.NewClient(cfg.TMDB.APIToken, clientOpts...)

	store, err := collections.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	engine := catalog.New(client, store,
		catalog.WithLogger(log),
		catalog.WithCacheCapacity(cfg.Cache.Capacity),
		catalog.WithPageMetadataTTL(time.Duration(cfg.Cache.PageMetadataSeconds)*time.Second),
		catalog.WithBatchSize(cfg.Engine.BatchSize),
		catalog.WithMaxRetries(cfg.Engine.MaxRetries),
	)

	return &app{engine: engine, store: store}, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
