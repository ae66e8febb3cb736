package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/versewall/versewall/pkg/palette"
)

// paletteListModel is the bubbletea model for interactive palette selection.
type paletteListModel struct {
	Names    []string
	Palettes map[string]palette.Palette
	Cursor   int
	Choice   string
}

// newPaletteListModel builds the picker with the cursor on the current palette.
func newPaletteListModel(palettes map[string]palette.Palette, current string) paletteListModel {
	names := sortedPaletteNames(palettes)
	cursor := 0
	for i, name := range names {
		if name == current {
			cursor = i
			break
		}
	}
	return paletteListModel{Names: names, Palettes: palettes, Cursor: cursor}
}

func (m paletteListModel) Init() tea.Cmd {
	return nil
}

func (m paletteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
			}
		case "enter":
			m.Choice = m.Names[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m paletteListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Palette"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.Names {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-20s %s", cursor, name, swatches(m.Palettes[name]))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Names))))

	return b.String()
}

// swatches renders a palette's colors as a row of colored blocks.
func swatches(p palette.Palette) string {
	var b strings.Builder
	for _, c := range p.Colors {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
		b.WriteString(style.Render("██"))
	}
	return b.String()
}
