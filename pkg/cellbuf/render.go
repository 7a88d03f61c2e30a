package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. The caller provides
// the mapping from StyleKey to lipgloss.Style; cells whose key is absent
// from the map render unstyled.
//
// Consecutive cells sharing a StyleKey collapse into one Style.Render()
// call per run, which is far cheaper than rendering cell by cell.
//
// Rows are joined with "\n". An empty buffer (W==0 or H==0) returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	var sb strings.Builder
	run := make([]rune, 0, b.W)

	for y, row := range b.Cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.W; {
			key := row[x].Style
			run = run[:0]
			for ; x < b.W && row[x].Style == key; x++ {
				run = append(run, row[x].Ch)
			}
			if s, ok := styles[key]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
		}
	}
	return sb.String()
}
