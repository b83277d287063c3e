package editor

// SetSelectionStart moves the selection start, swapping ends if needed.
func (e *Editor) SetSelectionStart(position Coordinate) {
	e.state.SelectionStart = e.SanitizeCoordinates(position)
	if e.state.SelectionStart.Greater(e.state.SelectionEnd) {
		e.state.SelectionStart, e.state.SelectionEnd = e.state.SelectionEnd, e.state.SelectionStart
	}
}

// SetSelectionEnd moves the selection end, swapping ends if needed.
func (e *Editor) SetSelectionEnd(position Coordinate) {
	e.state.SelectionEnd = e.SanitizeCoordinates(position)
	if e.state.SelectionStart.Greater(e.state.SelectionEnd) {
		e.state.SelectionStart, e.state.SelectionEnd = e.state.SelectionEnd, e.state.SelectionStart
	}
}

// SetSelection sets both ends, sanitized and ordered, then applies the
// selection mode's rounding: none, word boundaries, or whole lines.
func (e *Editor) SetSelection(start, end Coordinate, mode SelectionMode) {
	oldStart := e.state.SelectionStart
	oldEnd := e.state.SelectionEnd

	e.state.SelectionStart = e.SanitizeCoordinates(start)
	e.state.SelectionEnd = e.SanitizeCoordinates(end)
	if e.state.SelectionStart.Greater(e.state.SelectionEnd) {
		e.state.SelectionStart, e.state.SelectionEnd = e.state.SelectionEnd, e.state.SelectionStart
	}

	switch mode {
	case SelectionNormal:
	case SelectionWord:
		e.state.SelectionStart = e.FindWordStart(e.state.SelectionStart)
		if !e.IsOnWordBoundary(e.state.SelectionEnd) {
			e.state.SelectionEnd = e.FindWordEnd(e.FindWordStart(e.state.SelectionEnd))
		}
	case SelectionLine:
		lineNo := e.state.SelectionEnd.Line
		e.state.SelectionStart = Coordinate{Line: e.state.SelectionStart.Line, Column: 0}
		e.state.SelectionEnd = Coordinate{Line: lineNo, Column: e.LineMaxColumn(lineNo)}
	}

	if e.state.SelectionStart != oldStart || e.state.SelectionEnd != oldEnd {
		e.cursorChanged = true
		e.notifyCursorMoved()
	}
}

// SelectWordUnderCursor selects the word around the cursor.
func (e *Editor) SelectWordUnderCursor() {
	c := e.CursorPosition()
	e.SetSelection(e.FindWordStart(c), e.FindWordEnd(c), SelectionNormal)
}

// SelectAll selects the entire buffer.
func (e *Editor) SelectAll() {
	e.SetSelection(Coordinate{}, Coordinate{Line: len(e.lines), Column: 0}, SelectionNormal)
}

// ClearSelection collapses the selection to the origin.
func (e *Editor) ClearSelection() {
	e.SetSelection(Coordinate{}, Coordinate{}, SelectionNormal)
}

// HasSelection reports whether a non-empty range is selected.
func (e *Editor) HasSelection() bool {
	return e.state.SelectionEnd.Greater(e.state.SelectionStart)
}

// SelectionStart returns the ordered selection start.
func (e *Editor) SelectionStart() Coordinate {
	return e.state.SelectionStart
}

// SelectionEnd returns the ordered selection end.
func (e *Editor) SelectionEnd() Coordinate {
	return e.state.SelectionEnd
}
