package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ToolbarLayer renders a one-line bar across its region's top row. The
// style's width is pinned to the region so the bar background is solid.
func ToolbarLayer(r Region, content string, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).
		X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(0).ID(r.Name)
}

// FooterLayer renders a one-line status bar across its region.
func FooterLayer(r Region, content string, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).
		X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(0).ID(r.Name)
}

// VerticalSeparator creates a Layer with a vertical line of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	if height < 0 {
		height = 0
	}
	col := strings.TrimSuffix(strings.Repeat("│\n", height), "\n")
	return lipgloss.NewLayer(style.Render(col)).
		X(x).Y(y).Z(0).ID("separator")
}

// ModalLayer creates a centered high-Z overlay Layer.
// The content is rendered inside boxStyle, then centered on the terminal.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := (termW - lipgloss.Width(rendered)) / 2
	cy := (termH - lipgloss.Height(rendered)) / 2
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a Layer filled with the given style at a region's
// position. Used for background layers behind a layout region.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	row := strings.Repeat(" ", w)
	block := strings.TrimSuffix(strings.Repeat(row+"\n", h), "\n")
	return lipgloss.NewLayer(style.Render(block)).
		X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
