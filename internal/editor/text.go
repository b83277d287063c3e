package editor

import "strings"

// isStrippedOnInput reports bytes SetText/SetTextLines silently drop:
// carriage returns and control bytes other than newline and tab.
func isStrippedOnInput(b byte) bool {
	if b == '\n' || b == '\t' {
		return false
	}
	return b == '\r' || b < 0x20 || b == 0x7F
}

// SetText replaces the whole buffer, resets cursor and selection and
// clears the undo log. Not undoable.
func (e *Editor) SetText(text string) {
	e.lines = e.lines[:0]
	e.resetState()
	e.lines = append(e.lines, Line{})

	for i := 0; i < len(text); i++ {
		chr := text[i]
		switch {
		case isStrippedOnInput(chr):
			// Drop carriage returns and stray control bytes.
		case chr == '\n':
			e.lines = append(e.lines, Line{})
		default:
			last := len(e.lines) - 1
			e.lines[last] = append(e.lines[last], Glyph{Char: chr, Color: TagDefault})
		}
	}

	e.markTextChanged()
	e.undoBuffer = e.undoBuffer[:0]
	e.undoIndex = 0
}

// SetTextLines replaces the buffer with the given lines. Embedded
// newlines split further; control bytes are stripped. Not undoable.
func (e *Editor) SetTextLines(lines []string) {
	e.SetText(strings.Join(lines, "\n"))
}

// Text returns the whole buffer joined with newlines.
func (e *Editor) Text() string {
	return e.textRange(Coordinate{}, Coordinate{Line: len(e.lines), Column: 0})
}

// TextLines returns a copy of every line's text.
func (e *Editor) TextLines() []string {
	result := make([]string, 0, len(e.lines))
	for _, line := range e.lines {
		result = append(result, line.text())
	}
	return result
}

// SelectedText returns the text covered by the selection.
func (e *Editor) SelectedText() string {
	return e.textRange(e.state.SelectionStart, e.state.SelectionEnd)
}

// CurrentLineText returns the full text of the cursor's line.
func (e *Editor) CurrentLineText() string {
	line := e.actualCursorCoordinates().Line
	return e.textRange(
		Coordinate{Line: line},
		Coordinate{Line: line, Column: e.LineMaxColumn(line)},
	)
}

// ClearText removes all text. Undoable, unlike SetText.
func (e *Editor) ClearText() {
	if e.readOnly {
		return
	}
	// Nothing to clear.
	if len(e.lines) == 1 && len(e.lines[0]) == 0 {
		return
	}

	var u UndoRecord
	u.storeBeforeState(e)

	maxLine := len(e.lines) - 1
	u.Removed = e.Text()
	u.RemovedStart = Coordinate{}
	u.RemovedEnd = Coordinate{Line: maxLine, Column: e.LineMaxColumn(maxLine)}

	e.lines = []Line{{}}
	e.resetState()
	e.markTextChanged()

	u.storeAfterState(e)
	e.addUndo(u)
}

// textRange collects the text between two coordinates, exclusive of end.
func (e *Editor) textRange(start, end Coordinate) string {
	var b strings.Builder

	lstart, lend := start.Line, end.Line
	istart := e.characterIndex(start)
	iend := e.characterIndex(end)

	if lstart < 0 || lstart >= len(e.lines) {
		return ""
	}

	var size int
	for i := lstart; i < lend && i < len(e.lines); i++ {
		size += len(e.lines[i])
	}
	b.Grow(size + size/8)

	for istart < iend || lstart < lend {
		if lstart >= len(e.lines) {
			break
		}
		line := e.lines[lstart]
		if istart < len(line) {
			b.WriteByte(line[istart].Char)
			istart++
		} else {
			istart = 0
			lstart++
			if lstart != len(e.lines) {
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}
