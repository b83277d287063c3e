package editor

// Cursor motions. Every motion records the old cursor, computes a new
// one clamped to the buffer, then updates the interactive selection
// anchors: when the old cursor sat on one anchor that anchor follows the
// cursor, otherwise the opposite side becomes the anchor.

// MoveUp moves the cursor up by amount lines.
func (e *Editor) MoveUp(amount int, selecting bool) {
	if amount <= 0 {
		return
	}

	oldPos := e.state.CursorPosition
	newLine := e.state.CursorPosition.Line - amount
	if newLine < 0 {
		newLine = 0
	}
	e.state.CursorPosition.Line = newLine

	// Past the top the cursor snaps to the beginning of the line.
	if amount > oldPos.Line {
		e.state.CursorPosition.Column = 0
	}

	if selecting {
		switch {
		case oldPos == e.interactiveStart:
			e.interactiveStart = e.state.CursorPosition
		case oldPos == e.interactiveEnd:
			e.interactiveEnd = e.state.CursorPosition
		default:
			e.interactiveStart = e.state.CursorPosition
			e.interactiveEnd = oldPos
		}
	} else {
		e.interactiveStart = e.state.CursorPosition
		e.interactiveEnd = e.state.CursorPosition
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, SelectionNormal)
}

// MoveDown moves the cursor down by amount lines.
func (e *Editor) MoveDown(amount int, selecting bool) {
	if amount <= 0 {
		return
	}

	oldPos := e.state.CursorPosition
	newLine := e.state.CursorPosition.Line + amount
	if newLine > len(e.lines)-1 {
		newLine = len(e.lines) - 1
	}
	if newLine < 0 {
		newLine = 0
	}
	e.state.CursorPosition.Line = newLine

	// Moving down from the last line snaps the cursor to its end.
	if oldPos.Line == len(e.lines)-1 {
		e.state.CursorPosition.Column = e.LineMaxColumn(e.state.CursorPosition.Line)
	}

	if selecting {
		switch {
		case oldPos == e.interactiveEnd:
			e.interactiveEnd = e.state.CursorPosition
		case oldPos == e.interactiveStart:
			e.interactiveStart = e.state.CursorPosition
		default:
			e.interactiveStart = oldPos
			e.interactiveEnd = e.state.CursorPosition
		}
	} else {
		e.interactiveStart = e.state.CursorPosition
		e.interactiveEnd = e.state.CursorPosition
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, SelectionNormal)
}

// MoveLeft moves the cursor left by amount code points, crossing line
// boundaries. With wordMode each step lands on a word start.
func (e *Editor) MoveLeft(amount int, selecting bool, wordMode bool) {
	if amount <= 0 {
		return
	}

	oldPos := e.state.CursorPosition
	e.state.CursorPosition = e.actualCursorCoordinates()
	line := e.state.CursorPosition.Line
	cindex := e.characterIndex(e.state.CursorPosition)

	for ; amount > 0; amount-- {
		if cindex == 0 {
			if line > 0 {
				line--
				cindex = len(e.lines[line])
			}
		} else {
			cindex--
			for cindex > 0 && isUTFContinuation(e.lines[line][cindex].Char) {
				cindex--
			}
		}

		e.state.CursorPosition = Coordinate{Line: line, Column: e.characterColumn(line, cindex)}
		if wordMode {
			e.state.CursorPosition = e.FindWordStart(e.state.CursorPosition)
			cindex = e.characterIndex(e.state.CursorPosition)
		}
	}

	e.state.CursorPosition = Coordinate{Line: line, Column: e.characterColumn(line, cindex)}

	mode := SelectionNormal
	if selecting && wordMode {
		mode = SelectionWord
	}
	if selecting {
		switch {
		case oldPos == e.interactiveStart:
			e.interactiveStart = e.state.CursorPosition
		case oldPos == e.interactiveEnd:
			e.interactiveEnd = e.state.CursorPosition
		default:
			e.interactiveStart = e.state.CursorPosition
			e.interactiveEnd = oldPos
		}
	} else {
		e.interactiveStart = e.state.CursorPosition
		e.interactiveEnd = e.state.CursorPosition
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, mode)
}

// MoveRight moves the cursor right by amount code points, crossing line
// boundaries. With wordMode each step lands on the next word.
func (e *Editor) MoveRight(amount int, selecting bool, wordMode bool) {
	oldPos := e.state.CursorPosition
	if oldPos.Line >= len(e.lines) || amount <= 0 {
		return
	}

	cindex := e.characterIndex(e.state.CursorPosition)
	for ; amount > 0; amount-- {
		lindex := e.state.CursorPosition.Line
		line := e.lines[lindex]

		if cindex >= len(line) {
			if e.state.CursorPosition.Line < len(e.lines)-1 {
				e.state.CursorPosition.Line++
				e.state.CursorPosition.Column = 0
				cindex = 0
			} else {
				return
			}
		} else {
			cindex += utf8CharLength(line[cindex].Char)
			e.state.CursorPosition = Coordinate{Line: lindex, Column: e.characterColumn(lindex, cindex)}
			if wordMode {
				e.state.CursorPosition = e.FindNextWord(e.state.CursorPosition)
				cindex = e.characterIndex(e.state.CursorPosition)
			}
		}
	}

	mode := SelectionNormal
	if selecting && wordMode {
		mode = SelectionWord
	}
	if selecting {
		switch {
		case oldPos == e.interactiveEnd:
			e.interactiveEnd = e.SanitizeCoordinates(e.state.CursorPosition)
		case oldPos == e.interactiveStart:
			e.interactiveStart = e.state.CursorPosition
		default:
			e.interactiveStart = oldPos
			e.interactiveEnd = e.state.CursorPosition
		}
	} else {
		e.interactiveStart = e.state.CursorPosition
		e.interactiveEnd = e.state.CursorPosition
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, mode)
}

// MoveTop moves the cursor to the start of the buffer.
func (e *Editor) MoveTop(selecting bool) {
	oldPos := e.state.CursorPosition
	e.SetCursorPosition(Coordinate{})

	if selecting {
		e.interactiveEnd = oldPos
		e.interactiveStart = e.state.CursorPosition
	} else {
		e.interactiveStart = e.state.CursorPosition
		e.interactiveEnd = e.state.CursorPosition
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, SelectionNormal)
}

// MoveBottom moves the cursor to the end of the buffer.
func (e *Editor) MoveBottom(selecting bool) {
	oldPos := e.CursorPosition()
	endLine := len(e.lines) - 1
	newPos := Coordinate{Line: endLine, Column: e.LineMaxColumn(endLine)}

	e.SetCursorPosition(newPos)
	if selecting {
		e.interactiveStart = oldPos
		e.interactiveEnd = newPos
	} else {
		e.interactiveStart = newPos
		e.interactiveEnd = newPos
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, SelectionNormal)
}

// MoveHome moves the cursor to column zero of the current line.
func (e *Editor) MoveHome(selecting bool) {
	oldPos := e.state.CursorPosition
	e.SetCursorPosition(Coordinate{Line: e.state.CursorPosition.Line, Column: 0})

	if selecting {
		switch {
		case oldPos == e.interactiveStart:
			e.interactiveStart = e.state.CursorPosition
		case oldPos == e.interactiveEnd:
			e.interactiveEnd = e.state.CursorPosition
		default:
			e.interactiveStart = e.state.CursorPosition
			e.interactiveEnd = oldPos
		}
	} else {
		e.interactiveStart = e.state.CursorPosition
		e.interactiveEnd = e.state.CursorPosition
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, SelectionNormal)
}

// MoveEnd moves the cursor to the last column of the current line.
func (e *Editor) MoveEnd(selecting bool) {
	oldPos := e.state.CursorPosition
	e.SetCursorPosition(Coordinate{Line: oldPos.Line, Column: e.LineMaxColumn(oldPos.Line)})

	if selecting {
		switch {
		case oldPos == e.interactiveEnd:
			e.interactiveEnd = e.state.CursorPosition
		case oldPos == e.interactiveStart:
			e.interactiveStart = e.state.CursorPosition
		default:
			e.interactiveStart = oldPos
			e.interactiveEnd = e.state.CursorPosition
		}
	} else {
		e.interactiveStart = e.state.CursorPosition
		e.interactiveEnd = e.state.CursorPosition
	}

	e.SetSelection(e.interactiveStart, e.interactiveEnd, SelectionNormal)
}
