package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/versewall/versewall/pkg/scripture"
	"github.com/versewall/versewall/pkg/state"
)

// advanceCommand creates the advance command.
func (c *CLI) advanceCommand() *cobra.Command {
	var (
		configPath string
		dbPath     string
		mode       string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance the reading cursor by one chapter or verse",
		Long: `Advance moves the cursor one step: the next chapter in chapter mode,
the next verse in verse mode. The cursor rolls into the next book at a
book boundary and wraps from Revelation back to Genesis.

The cursor moves at most once per calendar day unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}

			store, err := state.NewFileStore("")
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}
			if cfg.DBPath == "" {
				cfg.DBPath = st.DBPath
			}
			if cfg.DBPath == "" {
				cfg.DBPath = discoverDatabase()
			}
			if cfg.DBPath == "" {
				return fmt.Errorf("no bible database configured (set --db or db_path in the config)")
			}
			if m, ok := state.ParseMode(cfg.Mode); ok {
				st.Mode = m
			} else {
				return fmt.Errorf("invalid mode %q (must be chapter or verse)", cfg.Mode)
			}
			st.DBPath = cfg.DBPath

			repo, err := scripture.OpenSQLite(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer repo.Close()

			moved, err := state.AdvanceIfNeeded(ctx, &st, repo, force)
			if err != nil {
				return err
			}
			if err := store.Save(st); err != nil {
				return err
			}

			position := fmt.Sprintf("%s %d:%d",
				scripture.BookName(st.Cursor.Book), st.Cursor.Chapter, st.Cursor.Verse)
			if !moved {
				printInfo("Already advanced today, cursor stays at %s", position)
				return nil
			}
			printSuccess("Advanced to %s", position)
			printDetail("Render the wallpaper: versewall render")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.config/versewall/config.toml)")
	cmd.Flags().StringVar(&dbPath, "db", "", "bible database file (SQLite)")
	cmd.Flags().StringVar(&mode, "mode", "", "advance mode: chapter or verse")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "advance even if already advanced today")

	return cmd
}
