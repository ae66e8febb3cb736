package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/versewall/versewall/pkg/scripture"
	"github.com/versewall/versewall/pkg/state"
	"github.com/versewall/versewall/pkg/strongs"
)

// stoplistCommand creates the stoplist management command.
func (c *CLI) stoplistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stoplist",
		Short: "Manage the lexical-identifier stoplist cache",
		Long: `The stoplist suppresses the most frequent lexical identifiers (articles,
conjunctions, divine names) from the chapter statistics. It is computed
once per database and cached; the cache invalidates itself when the
database file or the stoplist size changes.`,
	}

	cmd.AddCommand(c.stoplistBuildCommand())
	cmd.AddCommand(c.stoplistPathCommand())
	cmd.AddCommand(c.stoplistClearCommand())

	return cmd
}

// stoplistBuildCommand creates the "stoplist build" subcommand.
func (c *CLI) stoplistBuildCommand() *cobra.Command {
	var (
		configPath string
		dbPath     string
		topN       int
		rebuild    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compute (or refresh) the stoplist for the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("top-n") {
				cfg.TopN = topN
			}
			if cfg.DBPath == "" {
				store, err := state.NewFileStore("")
				if err != nil {
					return err
				}
				st, err := store.Load()
				if err != nil {
					return err
				}
				cfg.DBPath = st.DBPath
			}
			if cfg.DBPath == "" {
				cfg.DBPath = discoverDatabase()
			}
			if cfg.DBPath == "" {
				return fmt.Errorf("no bible database configured (set --db or db_path in the config)")
			}

			repo, err := scripture.OpenSQLite(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer repo.Close()

			backend, err := newCache(ctx, &cfg)
			if err != nil {
				return err
			}
			defer backend.Close()
			store := strongs.NewStore(backend, c.Logger)

			if rebuild {
				if err := store.Invalidate(ctx, repo.Path()); err != nil {
					c.Logger.Warnf("drop cached stoplist: %v", err)
				}
			}

			key, err := strongs.KeyForFile(repo.Path(), cfg.TopN)
			if err != nil {
				return err
			}
			track := newProgress(c.Logger)
			stop, err := store.LoadOrBuild(ctx, key, func() ([]string, error) {
				return repo.AllVerseTexts(ctx)
			})
			if err != nil {
				return err
			}
			track.done(fmt.Sprintf("Stoplist ready (%s)", stop.Provenance()))

			printSuccess("%d identifiers stoplisted (top %d)", stop.Len(), stop.TopN())
			for _, id := range stop.IDs() {
				printDetail("%s", id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/versewall/config.toml)")
	cmd.Flags().StringVar(&dbPath, "db", "", "bible database file (SQLite)")
	cmd.Flags().IntVar(&topN, "top-n", 0, "stoplist size")
	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "discard the cached stoplist first")

	return cmd
}

// stoplistPathCommand creates the "stoplist path" subcommand.
func (c *CLI) stoplistPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the stoplist cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// stoplistClearCommand creates the "stoplist clear" subcommand.
func (c *CLI) stoplistClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached stoplists",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			count := 0
			err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil || path == dir {
					return nil
				}
				if !info.IsDir() {
					if err := os.Remove(path); err == nil {
						count++
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			// Clean up empty subdirectories
			_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil || path == dir {
					return nil
				}
				if info.IsDir() {
					os.Remove(path)
				}
				return nil
			})

			printSuccess("Cleared %d cached entries", count)
			printKeyValue("Directory", dir)
			return nil
		},
	}
}
