package wayui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/openstream/wayfind/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: blueprint blues on a dark chart background.
var (
	colorBG = c("#0a0e14")

	borderColor    = c("#2a4a6a")
	borderActColor = c("#4a9fe0")
	gridColor      = c("#16202e")
	titleColor     = c("#7ab8e8")

	pathColor    = c("#13a06b")
	previewColor = c("#ffcc00")

	screenColor    = c("#4a9fe0")
	poiColor       = c("#e0884a")
	connectorColor = c("#b04ae0")
	markerSelColor = c("#ffffff")
	labelColor     = c("#5a7a9a")

	toolbarColor = c("#7ab8e8")
	footerColor  = c("#666666")
	toastColor   = c("#ffcc00")
	errColor     = c("#e05c5c")
)

// cellbuf style keys for the floor panel layer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleBorder
	styleBorderActive
	stylePath
	stylePathHot
	styleScreen
	stylePOI
	styleConnector
	styleMarkerHot
	styleLabel
	styleTitle
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:           lipgloss.NewStyle().Foreground(gridColor).Background(colorBG),
	styleGrid:         lipgloss.NewStyle().Foreground(gridColor).Background(colorBG),
	styleBorder:       lipgloss.NewStyle().Foreground(borderColor).Background(colorBG),
	styleBorderActive: lipgloss.NewStyle().Foreground(borderActColor).Background(colorBG),
	stylePath:         lipgloss.NewStyle().Foreground(pathColor).Background(colorBG),
	stylePathHot:      lipgloss.NewStyle().Foreground(previewColor).Background(colorBG).Bold(true),
	styleScreen:       lipgloss.NewStyle().Foreground(screenColor).Background(colorBG).Bold(true),
	stylePOI:          lipgloss.NewStyle().Foreground(poiColor).Background(colorBG).Bold(true),
	styleConnector:    lipgloss.NewStyle().Foreground(connectorColor).Background(colorBG).Bold(true),
	styleMarkerHot:    lipgloss.NewStyle().Foreground(markerSelColor).Background(colorBG).Bold(true),
	styleLabel:        lipgloss.NewStyle().Foreground(labelColor).Background(colorBG),
	styleTitle:        lipgloss.NewStyle().Foreground(titleColor).Background(colorBG).Bold(true),
}

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#101826")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	toastStyle = lipgloss.NewStyle().
			Foreground(toastColor).
			Bold(true)

	saveErrStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true)

	bgStyle = lipgloss.NewStyle().Background(colorBG)
)
