// Package cli implements the versewall command-line interface.
//
// Commands render the daily wallpaper, advance the reading cursor,
// manage the lexical stoplist cache, and list background palettes.
// All commands support --verbose (-v) for debug-level logging; loggers
// travel through context.Context.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/versewall/versewall/pkg/buildinfo"
	"github.com/versewall/versewall/pkg/cache"
	"github.com/versewall/versewall/pkg/scripture"
)

// appName is the application name used for directories and display.
const appName = "versewall"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(level log.Level) *CLI {
	return &CLI{Logger: newLogger(os.Stderr, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Versewall renders a daily scripture-reading wallpaper",
		Long:         `Versewall composes a desktop wallpaper from a scripture passage and a reading-progress treemap, advancing one chapter or verse per day.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.advanceCommand())
	root.AddCommand(c.stoplistCommand())
	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the stoplist cache backend the config names.
func newCache(ctx context.Context, cfg *Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	}
}

// discoverDatabase scans the config directory for bible databases when
// none is named by flag, config, or state. Returns the first match by
// path order, or "" when there is nothing to find.
func discoverDatabase() string {
	dir, err := configDir()
	if err != nil {
		return ""
	}
	paths, err := scripture.AvailableDatabases(dir)
	if err != nil || len(paths) == 0 {
		return ""
	}
	return paths[0]
}

// cacheDir returns the cache directory using XDG standard (~/.cache/versewall/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory (~/.config/versewall/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
