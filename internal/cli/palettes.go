package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/versewall/versewall/pkg/palette"
	"github.com/versewall/versewall/pkg/state"
)

// palettesCommand creates the palettes command.
func (c *CLI) palettesCommand() *cobra.Command {
	var paletteFile string

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List the available background palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palettes := loadPalettes(paletteFile)
			for _, name := range sortedPaletteNames(palettes) {
				p := palettes[name]
				fmt.Println(StyleValue.Render(name) + "  " + swatches(p))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&paletteFile, "palette-file", "", "palette definition file (JSON)")
	cmd.AddCommand(c.palettesPickCommand(&paletteFile))

	return cmd
}

// palettesPickCommand creates the "palettes pick" subcommand: an
// interactive picker whose choice is persisted for future renders.
func (c *CLI) palettesPickCommand(paletteFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively choose the palette used by render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := state.NewFileStore("")
			if err != nil {
				return err
			}
			st, err := store.Load()
			if err != nil {
				return err
			}

			palettes := loadPalettes(*paletteFile)
			current := st.Palette
			if current == "" {
				current = palette.DefaultName
			}
			choice, err := pickPalette(palettes, current)
			if err != nil {
				return err
			}
			if choice == "" {
				printInfo("No palette selected")
				return nil
			}

			st.Palette = choice
			if err := store.Save(st); err != nil {
				return err
			}
			printSuccess("Palette set to %s", choice)
			return nil
		},
	}
}

func sortedPaletteNames(palettes map[string]palette.Palette) []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
