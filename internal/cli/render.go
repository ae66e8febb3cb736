package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/versewall/versewall/pkg/cache"
	"github.com/versewall/versewall/pkg/palette"
	"github.com/versewall/versewall/pkg/render"
	"github.com/versewall/versewall/pkg/render/treemap"
	"github.com/versewall/versewall/pkg/scripture"
	"github.com/versewall/versewall/pkg/state"
	"github.com/versewall/versewall/pkg/strongs"
)

// renderOptions collects the render command flags.
type renderOptions struct {
	configPath  string
	dbPath      string
	ref         string
	mode        string
	paletteName string
	paletteFile string
	treemapName string
	out         string
	dark        bool
	preview     bool
	interactive bool
	topN        int
	common      bool
	noCache     bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the wallpaper for the current reading position",
		Long: `Render composes the wallpaper image: the scripture passage at the
current cursor position on the right page and the reading-progress
treemap with chapter statistics on the left page.

The cursor is not advanced; use "versewall advance" for the daily step.
A one-off position can be rendered with --ref (e.g. --ref "John 3:16").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/versewall/config.toml)")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "bible database file (SQLite)")
	cmd.Flags().StringVar(&opts.ref, "ref", "", `render a specific reference (e.g. "John 3:16") instead of the cursor`)
	cmd.Flags().StringVar(&opts.mode, "mode", "", "display mode: chapter or verse")
	cmd.Flags().StringVar(&opts.paletteName, "palette", "", "background palette name")
	cmd.Flags().StringVar(&opts.paletteFile, "palette-file", "", "palette definition file (JSON)")
	cmd.Flags().StringVar(&opts.treemapName, "treemap", "", "treemap algorithm: squarified or rows")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default state dir)")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "use the dark theme")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "also write a downscaled preview image")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the palette interactively")
	cmd.Flags().IntVar(&opts.topN, "top-n", 0, "stoplist size (most frequent identifiers to suppress)")
	cmd.Flags().BoolVar(&opts.common, "include-common", false, "keep stoplisted identifiers in the statistics")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "recompute the stoplist without the cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyRenderFlags(cmd, &cfg, opts)

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
	mode, ok := state.ParseMode(cfg.Mode)
	if !ok {
		return fmt.Errorf("invalid mode %q (must be chapter or verse)", cfg.Mode)
	}

	repo, err := scripture.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	stChanged := false
	if tr, err := repo.Translation(ctx); err == nil && rememberTranslation(&st, tr) {
		stChanged = true
	}
	dark, persistDark := resolveDark(cmd.Flags().Changed("dark"), cfg.Dark, st.Dark)
	cfg.Dark = dark
	if persistDark {
		st.Dark = dark
		stChanged = true
	}

	cur := st.Cursor
	if opts.ref != "" {
		ref, err := scripture.ParseReference(opts.ref)
		if err != nil {
			return err
		}
		cur = state.Cursor{Book: ref.Book, Chapter: ref.Chapter, Verse: 1}
		if ref.HasVerse() {
			cur.Verse = ref.Verse
		}
	}

	stop, provenance, err := c.loadStoplist(ctx, repo, &cfg, opts.noCache)
	if err != nil {
		return err
	}
	logger.Debugf("stoplist ready: %d identifiers (%s)", stop.Len(), provenance)

	palettes := loadPalettes(cfg.PaletteFile)
	name := cfg.Palette
	if st.Palette != "" && !cmd.Flags().Changed("palette") {
		name = st.Palette
	}
	if opts.interactive {
		picked, err := pickPalette(palettes, name)
		if err != nil {
			return err
		}
		if picked == "" {
			printInfo("No palette selected")
			return nil
		}
		name = picked
		st.Palette = picked
		stChanged = true
	}
	if stChanged {
		if err := store.Save(st); err != nil {
			logger.Warnf("save settings: %v", err)
		}
	}
	pal, ok := palettes[name]
	if !ok {
		printWarning("Unknown palette %q, using %s", name, palette.DefaultName)
		pal = palettes[palette.DefaultName]
	}

	layouter, err := treemap.ForName(cfg.Treemap)
	if err != nil {
		return err
	}

	track := newProgress(logger)
	sc, ac, err := buildContents(ctx, repo, stop, cur, mode, cfg.IncludeCommon)
	if err != nil {
		return err
	}
	composer := render.NewComposer(render.LoadFonts(), layouter)
	img, err := composer.Render(sc, ac, pal.Colors, cfg.Dark)
	if err != nil {
		return err
	}
	path, err := render.SaveWallpaper(img, store.Dir(), cfg.Out)
	if err != nil {
		return err
	}
	track.done(fmt.Sprintf("Rendered %s", sc.Header))

	printSuccess("Wallpaper written")
	printFile(path)
	printDetail("%s · %s · %.1f%% read", translationLabel(sc), name, ac.ProgressPercent)

	if opts.preview {
		previewPath := previewPathFor(path)
		small := render.Preview(img, 860, 360)
		if _, err := render.SaveWallpaper(small, "", previewPath); err != nil {
			return err
		}
		printFile(previewPath)
	}
	return nil
}

// loadStoplist builds or loads the frequency stoplist for the database.
func (c *CLI) loadStoplist(ctx context.Context, repo *scripture.SQLiteRepository, cfg *Config, noCache bool) (*strongs.Stoplist, strongs.Provenance, error) {
	var backend cache.Cache
	var err error
	if noCache {
		backend = cache.NewNullCache()
	} else {
		backend, err = newCache(ctx, cfg)
		if err != nil {
			return nil, "", err
		}
	}
	defer backend.Close()

	key, err := strongs.KeyForFile(repo.Path(), cfg.TopN)
	if err != nil {
		return nil, "", err
	}
	store := strongs.NewStore(backend, c.Logger)
	stop, err := store.LoadOrBuild(ctx, key, func() ([]string, error) {
		return repo.AllVerseTexts(ctx)
	})
	if err != nil {
		return nil, "", err
	}
	return stop, stop.Provenance(), nil
}

// applyRenderFlags overlays changed flags onto the config.
func applyRenderFlags(cmd *cobra.Command, cfg *Config, opts *renderOptions) {
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = opts.mode
	}
	if cmd.Flags().Changed("palette") {
		cfg.Palette = opts.paletteName
	}
	if opts.paletteFile != "" {
		cfg.PaletteFile = opts.paletteFile
	}
	if cmd.Flags().Changed("treemap") {
		cfg.Treemap = opts.treemapName
	}
	if opts.out != "" {
		cfg.Out = opts.out
	}
	if cmd.Flags().Changed("dark") {
		cfg.Dark = opts.dark
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = opts.topN
	}
	if cmd.Flags().Changed("include-common") {
		cfg.IncludeCommon = opts.common
	}
}

// loadPalettes resolves the palette file and indexes palettes by name.
func loadPalettes(file string) map[string]palette.Palette {
	if file != "" {
		return palette.Map([]string{file})
	}
	return palette.Map(paletteSearchPaths())
}

// pickPalette runs the interactive palette picker and returns the
// chosen name, or "" when the user quit without choosing.
func pickPalette(palettes map[string]palette.Palette, current string) (string, error) {
	model := newPaletteListModel(palettes, current)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("palette picker: %w", err)
	}
	if m, ok := final.(paletteListModel); ok {
		return m.Choice, nil
	}
	return "", nil
}

// resolveDark reconciles the --dark flag, the config, and the persisted
// theme preference, mirroring how the palette choice resolves. A changed
// flag wins and is written back to the state; otherwise a dark setting
// from either the config or the state applies.
func resolveDark(flagChanged, requested, persisted bool) (dark, persist bool) {
	if flagChanged {
		return requested, requested != persisted
	}
	if requested {
		return true, false
	}
	return persisted, false
}

// rememberTranslation records the open database's translation on the
// state so status consumers see it without opening the database.
func rememberTranslation(st *state.AppState, tr scripture.Translation) bool {
	if tr.ID == "" || st.TranslationID == tr.ID {
		return false
	}
	st.TranslationID = tr.ID
	return true
}

func translationLabel(sc render.ScriptureContent) string {
	if sc.Translation == "" {
		return "unknown translation"
	}
	return sc.Translation
}

func previewPathFor(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_preview" + ext
}
