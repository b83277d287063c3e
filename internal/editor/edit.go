package editor

import (
	"github.com/dlxed/dlxed/internal/logger"
)

// Editing primitives. All mutating entry points no-op when the editor is
// read-only. Range arguments use visual columns; the walk to byte
// indices happens once per primitive.

// insertTextAt inserts value at *where, advancing *where past the
// inserted text, and returns the number of line breaks inserted.
func (e *Editor) insertTextAt(where *Coordinate, value string) int {
	cindex := e.characterIndex(*where)
	totalLines := 0

	for pos := 0; pos < len(value); {
		c := value[pos]
		switch {
		case c == '\n':
			if cindex < len(e.lines[where.Line]) {
				e.insertLine(where.Line + 1)
				line := e.lines[where.Line]
				e.lines[where.Line+1] = append(Line{}, line[cindex:]...)
				e.lines[where.Line] = line[:cindex]
			} else {
				e.insertLine(where.Line + 1)
			}
			where.Line++
			where.Column = 0
			cindex = 0
			totalLines++
			pos++

		case c == '\t':
			line := e.lines[where.Line]
			e.lines[where.Line] = insertGlyphs(line, cindex, Glyph{Char: c, Color: TagDefault})
			cindex++
			where.Column += e.tabSizeAt(where.Column)
			pos++

		default:
			d := utf8CharLength(c)
			glyphs := make([]Glyph, 0, d)
			for ; d > 0 && pos < len(value); d, pos = d-1, pos+1 {
				glyphs = append(glyphs, Glyph{Char: value[pos], Color: TagDefault})
			}
			e.lines[where.Line] = insertGlyphs(e.lines[where.Line], cindex, glyphs...)
			cindex += len(glyphs)
			where.Column++
		}

		e.markTextChanged()
	}

	return totalLines
}

// insertGlyphs splices glyphs into line at index.
func insertGlyphs(line Line, index int, glyphs ...Glyph) Line {
	if index > len(line) {
		index = len(line)
	}
	out := make(Line, 0, len(line)+len(glyphs))
	out = append(out, line[:index]...)
	out = append(out, glyphs...)
	out = append(out, line[index:]...)
	return out
}

// deleteRange erases [start, end). In a single-line deletion, selection
// columns on that line are clamped to the deletion start or shifted left
// by the deleted width; a multi-line deletion leaves selection columns as
// they are. The cursor is sanitized afterwards.
func (e *Editor) deleteRange(start, end Coordinate) {
	if !start.Less(end) || e.readOnly {
		return
	}
	if start.Line >= len(e.lines) || end.Line >= len(e.lines) {
		return
	}

	startIndex := e.characterIndex(start)
	endIndex := e.characterIndex(end)

	if start.Line == end.Line {
		line := e.lines[start.Line]
		startColumn := e.characterColumn(start.Line, startIndex)
		endColumn := e.characterColumn(end.Line, endIndex)
		if end.Column >= e.LineMaxColumn(start.Line) {
			endIndex = len(line)
			endColumn = e.LineMaxColumn(start.Line)
		}
		e.lines[start.Line] = append(append(Line{}, line[:startIndex]...), line[endIndex:]...)

		width := endColumn - startColumn
		fix := func(c *Coordinate) {
			if c.Line != start.Line || c.Column <= startColumn {
				return
			}
			if c.Column <= endColumn {
				c.Column = startColumn
			} else {
				c.Column -= width
			}
		}
		fix(&e.state.SelectionStart)
		fix(&e.state.SelectionEnd)
	} else {
		firstLine := e.lines[start.Line]
		lastLine := e.lines[end.Line]

		merged := append(append(Line{}, firstLine[:startIndex]...), lastLine[endIndex:]...)
		e.lines[start.Line] = merged
		e.removeLines(start.Line+1, end.Line+1)
	}

	if e.state.SelectionStart.Greater(e.state.SelectionEnd) {
		e.state.SelectionStart, e.state.SelectionEnd = e.state.SelectionEnd, e.state.SelectionStart
	}
	e.state.CursorPosition = e.SanitizeCoordinates(e.state.CursorPosition)

	e.markTextChanged()
}

// insertLine inserts an empty line at index; markers and breakpoints at
// or past it shift down one line.
func (e *Editor) insertLine(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(e.lines) {
		index = len(e.lines)
	}

	e.lines = append(e.lines, nil)
	copy(e.lines[index+1:], e.lines[index:])
	e.lines[index] = Line{}

	e.errorMarkers = shiftMarkers(e.errorMarkers, func(idx int) (int, bool) {
		if idx >= index {
			return idx + 1, true
		}
		return idx, true
	})
	e.breakpoints = shiftBreakpoints(e.breakpoints, func(idx int) (int, bool) {
		if idx >= index {
			return idx + 1, true
		}
		return idx, true
	})
}

// removeLines erases lines [start, end), renumbering markers,
// breakpoints and selection. Entries inside the range are dropped.
func (e *Editor) removeLines(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(e.lines) {
		end = len(e.lines)
	}
	if start >= end {
		return
	}
	count := end - start

	e.errorMarkers = shiftMarkers(e.errorMarkers, func(idx int) (int, bool) {
		if idx >= start && idx < end {
			return 0, false
		}
		if idx >= end {
			return idx - count, true
		}
		return idx, true
	})
	e.breakpoints = shiftBreakpoints(e.breakpoints, func(idx int) (int, bool) {
		if idx >= start && idx < end {
			return 0, false
		}
		if idx >= end {
			return idx - count, true
		}
		return idx, true
	})

	e.lines = append(e.lines[:start], e.lines[end:]...)
	if len(e.lines) == 0 {
		e.lines = append(e.lines, Line{})
	}

	fix := func(c *Coordinate) {
		if c.Line >= end {
			c.Line -= count
		} else if c.Line >= start {
			c.Line = start
		}
	}
	fix(&e.state.SelectionStart)
	fix(&e.state.SelectionEnd)
	if e.state.SelectionStart.Greater(e.state.SelectionEnd) {
		e.state.SelectionStart, e.state.SelectionEnd = e.state.SelectionEnd, e.state.SelectionStart
	}

	e.markTextChanged()
}

// removeLine erases a single line.
func (e *Editor) removeLine(index int) {
	e.removeLines(index, index+1)
}

// shiftMarkers rebuilds a marker map through a renumbering function
// operating on 0-based line indices. Keys stay 1-based.
func shiftMarkers(markers map[int]string, renumber func(idx int) (int, bool)) map[int]string {
	out := make(map[int]string, len(markers))
	for key, msg := range markers {
		idx, keep := renumber(key - 1)
		if !keep {
			continue
		}
		if prev, dup := out[idx+1]; dup {
			out[idx+1] = prev + "\n" + msg
		} else {
			out[idx+1] = msg
		}
	}
	return out
}

// shiftBreakpoints is the breakpoint-set analog of shiftMarkers.
func shiftBreakpoints(points map[int]struct{}, renumber func(idx int) (int, bool)) map[int]struct{} {
	out := make(map[int]struct{}, len(points))
	for key := range points {
		idx, keep := renumber(key - 1)
		if !keep {
			continue
		}
		out[idx+1] = struct{}{}
	}
	return out
}

// deleteSelection removes the selected range and collapses the
// selection to its start.
func (e *Editor) deleteSelection() {
	if e.state.SelectionEnd == e.state.SelectionStart {
		return
	}

	e.deleteRange(e.state.SelectionStart, e.state.SelectionEnd)
	e.SetSelection(e.state.SelectionStart, e.state.SelectionStart, SelectionNormal)
	e.SetCursorPosition(e.state.SelectionStart)
}

// InsertText replaces the selection (if any) with the given text and
// advances the cursor past it. Undoable as a single record.
func (e *Editor) InsertText(value string) {
	if e.readOnly || value == "" {
		return
	}

	var u UndoRecord
	u.storeBeforeState(e)

	if e.HasSelection() {
		u.Removed = e.SelectedText()
		u.RemovedStart = e.state.SelectionStart
		u.RemovedEnd = e.state.SelectionEnd
		e.deleteSelection()
	}

	pos := e.actualCursorCoordinates()
	u.Added = value
	u.AddedStart = pos

	e.insertTextAt(&pos, value)

	e.SetSelection(pos, pos, SelectionNormal)
	e.SetCursorPosition(pos)

	u.AddedEnd = e.actualCursorCoordinates()
	u.storeAfterState(e)
	e.addUndo(u)
}

// EnterCharacter handles one typed code point. Tab with a multi-line
// selection indents (or, with shift, dedents) the selected lines.
func (e *Editor) EnterCharacter(character rune, shift bool) {
	if e.readOnly || character == 0 || !isValidCodePoint(uint32(character)) {
		return
	}
	e.enterCharacter(character, shift)
}

func (e *Editor) enterCharacter(character rune, shift bool) {
	var u UndoRecord
	u.storeBeforeState(e)

	if e.HasSelection() {
		if character == '\t' &&
			(e.state.SelectionStart.Column == 0 || e.state.SelectionStart.Line != e.state.SelectionEnd.Line) {
			e.indentSelection(&u, shift)
			return
		}

		u.Removed = e.SelectedText()
		u.RemovedStart = e.state.SelectionStart
		u.RemovedEnd = e.state.SelectionEnd
		e.deleteSelection()
	}

	coord := e.actualCursorCoordinates()
	u.AddedStart = coord

	if character == '\n' {
		e.insertLine(coord.Line + 1)
		added := []byte{'\n'}

		line := e.lines[coord.Line]
		cindex := e.characterIndex(coord)

		// Auto-indent: carry the leading blank run onto the new line.
		newLine := Line{}
		for it := 0; it < len(line) && it < cindex && isBlankByte(line[it].Char); it++ {
			newLine = append(newLine, line[it])
			added = append(added, line[it].Char)
		}

		whitespaceSize := len(newLine)
		newLine = append(newLine, line[cindex:]...)
		e.lines[coord.Line+1] = newLine
		e.lines[coord.Line] = line[:cindex]

		u.Added = string(added)
		e.SetCursorPosition(Coordinate{
			Line:   coord.Line + 1,
			Column: e.characterColumn(coord.Line+1, whitespaceSize),
		})
		if !e.HasSelection() {
			e.ClearSelection()
		}
	} else {
		var buf [7]byte
		length := encodeCodePoint(buf[:], uint32(character))
		if length == 0 {
			return
		}

		cindex := e.characterIndex(coord)
		if e.overwrite && cindex < len(e.lines[coord.Line]) {
			line := e.lines[coord.Line]
			d := utf8CharLength(line[cindex].Char)

			u.RemovedStart = coord
			u.RemovedEnd = Coordinate{Line: coord.Line, Column: e.characterColumn(coord.Line, cindex+d)}

			removed := make([]byte, 0, d)
			for j := 0; j < d && cindex+j < len(line); j++ {
				removed = append(removed, line[cindex+j].Char)
			}
			u.Removed = string(removed)
			e.lines[coord.Line] = append(append(Line{}, line[:cindex]...), line[cindex+len(removed):]...)
		}

		glyphs := make([]Glyph, length)
		for j := 0; j < length; j++ {
			glyphs[j] = Glyph{Char: buf[j], Color: TagDefault}
		}
		e.lines[coord.Line] = insertGlyphs(e.lines[coord.Line], cindex, glyphs...)
		cindex += length
		u.Added = string(buf[:length])

		e.SetCursorPosition(Coordinate{Line: coord.Line, Column: e.characterColumn(coord.Line, cindex)})
	}

	e.markTextChanged()

	u.AddedEnd = e.actualCursorCoordinates()
	u.storeAfterState(e)
	e.addUndo(u)
}

// indentSelection adds or removes one indent level on every selected
// line. The undo record carries the full before/after text of the block.
func (e *Editor) indentSelection(u *UndoRecord, shift bool) {
	start := e.state.SelectionStart
	end := e.state.SelectionEnd
	originalEnd := end

	start.Column = 0
	if end.Column == 0 && end.Line > 0 {
		end.Line--
	}
	if end.Line >= len(e.lines) {
		end.Line = len(e.lines) - 1
	}
	end.Column = e.LineMaxColumn(end.Line)

	u.RemovedStart = start
	u.RemovedEnd = end
	u.Removed = e.textRange(start, end)

	modified := false
	for lineIndex := start.Line; lineIndex <= end.Line; lineIndex++ {
		line := e.lines[lineIndex]
		if shift {
			if len(line) == 0 {
				continue
			}
			if line[0].Char == '\t' {
				e.lines[lineIndex] = line[1:]
				modified = true
			} else {
				for j := 0; j < e.tabSize && len(e.lines[lineIndex]) > 0 && e.lines[lineIndex][0].Char == ' '; j++ {
					e.lines[lineIndex] = e.lines[lineIndex][1:]
					modified = true
				}
			}
		} else {
			e.lines[lineIndex] = insertGlyphs(line, 0, Glyph{Char: '\t', Color: TagBackground})
			modified = true
		}
	}

	if !modified {
		return
	}

	start = Coordinate{Line: start.Line, Column: e.characterColumn(start.Line, 0)}
	var rangeEnd Coordinate
	if originalEnd.Column != 0 {
		end = Coordinate{Line: end.Line, Column: e.LineMaxColumn(end.Line)}
		rangeEnd = end
		u.Added = e.textRange(start, end)
	} else {
		end = Coordinate{Line: originalEnd.Line, Column: 0}
		rangeEnd = Coordinate{Line: end.Line - 1, Column: e.LineMaxColumn(end.Line - 1)}
		u.Added = e.textRange(start, rangeEnd)
	}

	u.AddedStart = start
	u.AddedEnd = rangeEnd
	e.state.SelectionStart = start
	e.state.SelectionEnd = end

	u.storeAfterState(e)
	e.addUndo(*u)

	e.markTextChanged()
}

// Backspace deletes the selection, or the code point before the cursor,
// merging with the previous line at column zero.
func (e *Editor) Backspace() {
	if e.readOnly {
		return
	}

	var u UndoRecord
	u.storeBeforeState(e)

	if e.HasSelection() {
		u.Removed = e.SelectedText()
		u.RemovedStart = e.state.SelectionStart
		u.RemovedEnd = e.state.SelectionEnd
		e.deleteSelection()
	} else {
		pos := e.actualCursorCoordinates()
		e.SetCursorPosition(pos)

		if e.state.CursorPosition.Column == 0 {
			if e.state.CursorPosition.Line == 0 {
				return
			}

			u.Removed = "\n"
			u.RemovedStart = Coordinate{Line: pos.Line - 1, Column: e.LineMaxColumn(pos.Line - 1)}
			u.RemovedEnd = e.advance(u.RemovedStart)

			cursorLine := e.state.CursorPosition.Line
			prevSize := e.LineMaxColumn(cursorLine - 1)
			e.lines[cursorLine-1] = append(e.lines[cursorLine-1], e.lines[cursorLine]...)
			e.removeLine(cursorLine)

			e.state.CursorPosition.Line--
			e.state.CursorPosition.Column = prevSize
		} else {
			line := e.lines[e.state.CursorPosition.Line]
			cindex := e.characterIndex(pos) - 1
			if cindex < 0 {
				return
			}

			if line[cindex].Char == '\t' {
				u.Removed = "\t"
				u.RemovedEnd = e.actualCursorCoordinates()

				e.lines[pos.Line] = append(append(Line{}, line[:cindex]...), line[cindex+1:]...)

				col := e.characterColumn(pos.Line, cindex)
				e.state.CursorPosition.Column = col
				u.RemovedStart = Coordinate{Line: pos.Line, Column: col}
			} else {
				cend := cindex + 1
				for cindex > 0 && isUTFContinuation(line[cindex].Char) {
					cindex--
				}

				u.RemovedStart = e.actualCursorCoordinates()
				u.RemovedEnd = u.RemovedStart
				u.RemovedStart.Column--
				e.state.CursorPosition.Column--

				removed := make([]byte, 0, cend-cindex)
				for j := cindex; j < cend && j < len(line); j++ {
					removed = append(removed, line[j].Char)
				}
				u.Removed = string(removed)
				e.lines[pos.Line] = append(append(Line{}, line[:cindex]...), line[cindex+len(removed):]...)
			}
		}

		e.markTextChanged()
	}

	e.state.SelectionStart = e.SanitizeCoordinates(e.state.SelectionStart)
	e.state.SelectionEnd = e.SanitizeCoordinates(e.state.SelectionEnd)
	e.state.CursorPosition = e.SanitizeCoordinates(e.state.CursorPosition)

	u.storeAfterState(e)
	e.addUndo(u)
}

// Delete removes the selection, or the code point at the cursor, merging
// the next line at line end.
func (e *Editor) Delete() {
	if e.readOnly {
		return
	}

	var u UndoRecord
	u.storeBeforeState(e)

	if e.HasSelection() {
		u.Removed = e.SelectedText()
		u.RemovedStart = e.state.SelectionStart
		u.RemovedEnd = e.state.SelectionEnd
		e.deleteSelection()
	} else {
		pos := e.actualCursorCoordinates()
		e.SetCursorPosition(pos)

		if pos.Column == e.LineMaxColumn(pos.Line) {
			if pos.Line == len(e.lines)-1 {
				return
			}

			u.Removed = "\n"
			u.RemovedStart = e.actualCursorCoordinates()
			u.RemovedEnd = e.advance(u.RemovedStart)

			e.lines[pos.Line] = append(e.lines[pos.Line], e.lines[pos.Line+1]...)
			e.removeLine(pos.Line + 1)
		} else {
			line := e.lines[pos.Line]
			if len(line) == 0 {
				return
			}

			cindex := e.characterIndex(pos)
			u.RemovedStart = pos
			u.RemovedEnd = Coordinate{Line: pos.Line, Column: pos.Column + 1}
			u.Removed = e.textRange(u.RemovedStart, u.RemovedEnd)

			d := utf8CharLength(line[cindex].Char)
			if cindex+d > len(line) {
				d = len(line) - cindex
			}
			e.lines[pos.Line] = append(append(Line{}, line[:cindex]...), line[cindex+d:]...)

			e.state.SelectionStart = e.SanitizeCoordinates(e.state.SelectionStart)
			e.state.SelectionEnd = e.SanitizeCoordinates(e.state.SelectionEnd)
		}

		e.markTextChanged()
	}

	u.storeAfterState(e)
	e.addUndo(u)
}

// Cut removes the selection after copying it; read-only editors copy only.
func (e *Editor) Cut() {
	if e.readOnly {
		e.Copy()
		return
	}
	if !e.HasSelection() {
		return
	}

	var u UndoRecord
	u.storeBeforeState(e)
	u.Removed = e.SelectedText()
	u.RemovedStart = e.state.SelectionStart
	u.RemovedEnd = e.state.SelectionEnd

	e.Copy()
	e.deleteSelection()

	u.storeAfterState(e)
	e.addUndo(u)
	logger.Debugf("editor: cut %d bytes", len(u.Removed))
}

// isBlankByte reports a horizontal whitespace byte.
func isBlankByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// isSpaceByte reports any ASCII whitespace byte.
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// isAlphaNumericByte reports an ASCII letter or digit.
func isAlphaNumericByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

