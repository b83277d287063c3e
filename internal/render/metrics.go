package render

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CellMetrics measures text in terminal cells: one column advance per
// cell, one line advance per row. Widths come from runewidth, iterated
// per grapheme cluster so combining sequences measure as one unit.
type CellMetrics struct{}

// CharAdvance returns the cell advance (1, 1).
func (CellMetrics) CharAdvance() (x, y float64) {
	return 1, 1
}

// TextWidth returns the display width of text in cells.
func (CellMetrics) TextWidth(text string) float64 {
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		width += runewidth.StringWidth(gr.Str())
	}
	return float64(width)
}
