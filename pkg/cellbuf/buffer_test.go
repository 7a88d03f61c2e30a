package cellbuf

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

// Test style keys
const (
	testBG   StyleKey = 0
	testRed  StyleKey = 1
	testBlue StyleKey = 2
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		testBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		testRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		testBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

func TestNew(t *testing.T) {
	b := New(10, 5, testBG)
	if b.W != 10 || b.H != 5 {
		t.Fatalf("expected 10x5, got %dx%d", b.W, b.H)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			c := b.Cells[y][x]
			if c.Ch != ' ' || c.Style != testBG {
				t.Fatalf("cell (%d,%d): expected space/testBG, got %q/%d", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	b := New(-5, -3, testBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", b.W, b.H)
	}
	if b.Render(testStyles()) != "" {
		t.Fatal("empty buffer should render to empty string")
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := New(10, 5, testBG)
	// These should not panic
	b.Set(-1, 0, 'X', testRed)
	b.Set(0, -1, 'X', testRed)
	b.Set(10, 0, 'X', testRed)
	b.Set(0, 5, 'X', testRed)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if b.Cells[y][x].Ch != ' ' {
				t.Fatalf("out-of-bounds Set modified cell (%d,%d)", x, y)
			}
		}
	}
}

func TestSetString(t *testing.T) {
	b := New(10, 5, testBG)
	b.SetString(2, 1, "Hello", testBlue)
	for i, ch := range "Hello" {
		c := b.Cells[1][2+i]
		if c.Ch != ch || c.Style != testBlue {
			t.Errorf("pos %d: expected %q/testBlue, got %q/%d", i, ch, c.Ch, c.Style)
		}
	}
	if b.Cells[1][1].Ch != ' ' || b.Cells[1][7].Ch != ' ' {
		t.Error("cells around string were modified")
	}
}

func TestSetStringClipsAtBounds(t *testing.T) {
	b := New(5, 1, testBG)
	b.SetString(3, 0, "Hello", testRed) // only "He" fits
	if b.Cells[0][3].Ch != 'H' || b.Cells[0][4].Ch != 'e' {
		t.Error("expected H and e at positions 3,4")
	}
}

func TestSetStringCentered(t *testing.T) {
	b := New(11, 1, testBG)
	b.SetStringCentered(5, 0, "abc", testRed)
	if b.Cells[0][4].Ch != 'a' || b.Cells[0][5].Ch != 'b' || b.Cells[0][6].Ch != 'c' {
		t.Errorf("expected abc at 4..6, got row %v", b.Cells[0])
	}
}

func TestFillRect(t *testing.T) {
	b := New(6, 4, testBG)
	b.FillRect(image.Rect(1, 1, 4, 3), '#', testRed)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := x >= 1 && x < 4 && y >= 1 && y < 3
			c := b.Cells[y][x]
			if inside && (c.Ch != '#' || c.Style != testRed) {
				t.Fatalf("cell (%d,%d) inside rect not filled: %q", x, y, c.Ch)
			}
			if !inside && c.Ch != ' ' {
				t.Fatalf("cell (%d,%d) outside rect was modified", x, y)
			}
		}
	}
}

func TestFillRectClipped(t *testing.T) {
	b := New(3, 3, testBG)
	b.FillRect(image.Rect(-2, -2, 10, 10), '#', testRed) // should not panic
	if b.Cells[0][0].Ch != '#' || b.Cells[2][2].Ch != '#' {
		t.Error("clipped fill should still cover the buffer")
	}
}

func TestDrawBorder(t *testing.T) {
	b := New(6, 4, testBG)
	b.DrawBorder(image.Rect(0, 0, 6, 4), testBlue)

	if b.Cells[0][0].Ch != '┌' || b.Cells[0][5].Ch != '┐' {
		t.Errorf("top corners: got %q %q", b.Cells[0][0].Ch, b.Cells[0][5].Ch)
	}
	if b.Cells[3][0].Ch != '└' || b.Cells[3][5].Ch != '┘' {
		t.Errorf("bottom corners: got %q %q", b.Cells[3][0].Ch, b.Cells[3][5].Ch)
	}
	if b.Cells[0][2].Ch != '─' || b.Cells[1][0].Ch != '│' {
		t.Error("expected horizontal and vertical edge chars")
	}
	if b.Cells[1][2].Ch != ' ' {
		t.Error("interior should be untouched")
	}
}

func TestDrawBorderDegenerate(t *testing.T) {
	b := New(6, 4, testBG)
	b.DrawBorder(image.Rect(2, 2, 3, 3), testBlue) // 1x1, skipped
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if b.Cells[y][x].Ch != ' ' {
				t.Fatal("degenerate border should draw nothing")
			}
		}
	}
}

func TestRenderLineCount(t *testing.T) {
	b := New(20, 5, testBG)
	lines := strings.Split(b.Render(testStyles()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestRenderContent(t *testing.T) {
	b := New(10, 1, testBG)
	b.SetString(2, 0, "Hi", testRed)
	result := b.Render(testStyles())
	if !strings.Contains(result, "Hi") {
		t.Fatalf("rendered output doesn't contain 'Hi': %q", result)
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()

	// A uniform row merges into one run, so it renders shorter than an
	// alternating row.
	b := New(50, 1, testBG)
	uniform := b.Render(styles)

	b2 := New(50, 1, testBG)
	for x := 0; x < 50; x++ {
		if x%2 == 0 {
			b2.Set(x, 0, '.', testRed)
		} else {
			b2.Set(x, 0, '.', testBlue)
		}
	}
	alternating := b2.Render(styles)

	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderMissingStyle(t *testing.T) {
	// Style key 99 is not in the map, so the text renders unstyled.
	b := New(5, 1, StyleKey(99))
	b.SetString(0, 0, "plain", StyleKey(99))
	if !strings.Contains(b.Render(testStyles()), "plain") {
		t.Fatal("missing style should still render text")
	}
}

// BenchmarkRenderPanel simulates a floor panel: mostly background, a grid
// texture, one path polyline and a handful of markers.
func BenchmarkRenderPanel(b *testing.B) {
	styles := testStyles()
	buf := New(120, 40, testBG)
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if x%6 == 0 && y%3 == 0 {
				buf.Set(x, y, '·', testRed)
			}
		}
		buf.Set(y*2%120, y, '╌', testBlue)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(styles)
	}
}
