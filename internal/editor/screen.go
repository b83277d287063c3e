package editor

import "math"

// Metrics abstracts the measurements of the drawing surface. A terminal
// front-end reports cell counts; a pixel front-end reports pixels.
type Metrics interface {
	// CharAdvance returns the horizontal advance of one column and the
	// vertical advance of one line.
	CharAdvance() (x, y float64)
	// TextWidth measures a UTF-8 string in the same horizontal units.
	TextWidth(text string) float64
}

// TextDistance returns the horizontal offset from the line start to a
// coordinate, expanding tabs to the next tab stop in metric units.
func (e *Editor) TextDistance(from Coordinate, m Metrics) float64 {
	if from.Line < 0 || from.Line >= len(e.lines) {
		return 0
	}

	line := e.lines[from.Line]
	spaceSize := m.TextWidth(" ")
	tabWidth := float64(e.tabSize) * spaceSize
	colIndex := e.characterIndex(from)

	distance := 0.0
	for it := 0; it < len(line) && it < colIndex; {
		if line[it].Char == '\t' {
			distance = (1 + math.Floor((1+distance)/tabWidth)) * tabWidth
			it++
			continue
		}

		d := utf8CharLength(line[it].Char)
		buf := make([]byte, 0, 6)
		for ; d > 0 && it < len(line); d, it = d-1, it+1 {
			buf = append(buf, line[it].Char)
		}
		distance += m.TextWidth(string(buf))
	}

	return distance
}

// ScreenPosToCoordinates maps a position relative to the text origin
// (after the gutter) to buffer coordinates. A glyph is hit when the
// position falls left of its horizontal midpoint.
func (e *Editor) ScreenPosToCoordinates(x, y float64, m Metrics) Coordinate {
	_, advanceY := m.CharAdvance()

	lineNo := 0
	if advanceY > 0 {
		lineNo = int(math.Floor(y / advanceY))
	}
	if lineNo < 0 {
		lineNo = 0
	}

	columnCoord := 0
	if lineNo < len(e.lines) {
		line := e.lines[lineNo]
		spaceSize := m.TextWidth(" ")
		tabWidth := float64(e.tabSize) * spaceSize

		columnIndex := 0
		columnX := 0.0

		for columnIndex < len(line) {
			var columnWidth float64

			if line[columnIndex].Char == '\t' {
				newColumnX := (1 + math.Floor((1+columnX)/tabWidth)) * tabWidth
				columnWidth = newColumnX - columnX
				if columnX+columnWidth*0.5 > x {
					break
				}
				columnX = newColumnX
				columnCoord = columnCoord/e.tabSize*e.tabSize + e.tabSize
				columnIndex++
			} else {
				d := utf8CharLength(line[columnIndex].Char)
				buf := make([]byte, 0, 6)
				for d > 0 && columnIndex < len(line) {
					buf = append(buf, line[columnIndex].Char)
					columnIndex++
					d--
				}
				columnWidth = m.TextWidth(string(buf))
				if columnX+columnWidth*0.5 > x {
					break
				}
				columnX += columnWidth
				columnCoord++
			}
		}
	}

	return e.SanitizeCoordinates(Coordinate{Line: lineNo, Column: columnCoord})
}
