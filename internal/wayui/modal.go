package wayui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/openstream/wayfind/pkg/tealayout"
)

var promptTitles = map[promptKind]string{
	promptRenamePoint: "RENAME POINT",
	promptRenameFloor: "RENAME FLOOR",
	promptAddFloor:    "NEW FLOOR",
	promptFloorImage:  "FLOOR IMAGE PATH",
}

var (
	modalBG = c("#101826")

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(c("#7ab8e8")).
			Background(modalBG).
			Bold(true)

	modalHintStyle = lipgloss.NewStyle().
			Foreground(c("#3a5a7a")).
			Background(modalBG).
			Italic(true)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#4a9fe0")).
			Background(modalBG).
			Width(44).
			Padding(1, 2)
)

// buildPromptLayer renders the text-input modal centered on the terminal.
func (m Model) buildPromptLayer() *lipgloss.Layer {
	lines := []string{
		modalTitleStyle.Render("  " + promptTitles[m.Prompt]),
		"",
		"  " + m.PromptIn.View(),
		"",
		modalHintStyle.Render("  [enter] apply  [esc] cancel"),
	}
	return tealayout.ModalLayer(strings.Join(lines, "\n"), m.Width, m.Height, modalBoxStyle)
}
