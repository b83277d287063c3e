package editor

import "github.com/dlxed/dlxed/internal/logger"

// UndoRecord captures one public operation: the text it added and
// removed with their ranges, plus the editor state on both sides.
// Ranges use visual columns; Before/After states store byte-index
// columns so replay survives tab-size changes in between.
type UndoRecord struct {
	Added      string
	AddedStart Coordinate
	AddedEnd   Coordinate

	Removed      string
	RemovedStart Coordinate
	RemovedEnd   Coordinate

	Before EditorState
	After  EditorState
}

// storeBeforeState captures the current state with byte-index columns.
func (u *UndoRecord) storeBeforeState(e *Editor) {
	u.Before = e.snapshotState()
}

// storeAfterState captures the current state with byte-index columns.
func (u *UndoRecord) storeAfterState(e *Editor) {
	u.After = e.snapshotState()
}

// snapshotState converts the live state's visual columns to byte indices.
func (e *Editor) snapshotState() EditorState {
	cursor := e.CursorPosition()
	start := e.state.SelectionStart
	end := e.state.SelectionEnd

	return EditorState{
		CursorPosition: Coordinate{Line: cursor.Line, Column: e.characterIndex(cursor)},
		SelectionStart: Coordinate{Line: start.Line, Column: e.characterIndex(start)},
		SelectionEnd:   Coordinate{Line: end.Line, Column: e.characterIndex(end)},
	}
}

// applyState translates a byte-index state back to visual columns at
// the current tab size and installs it.
func (e *Editor) applyState(s EditorState) {
	restore := func(c Coordinate) Coordinate {
		return Coordinate{Line: c.Line, Column: e.characterColumn(c.Line, c.Column)}
	}
	e.state.CursorPosition = restore(s.CursorPosition)
	e.state.SelectionStart = restore(s.SelectionStart)
	e.state.SelectionEnd = restore(s.SelectionEnd)
	e.cursorChanged = true
}

// undo reverses the record: deletes what was added, re-inserts what was
// removed, then restores the before state.
func (u *UndoRecord) undo(e *Editor) {
	if u.Added != "" {
		e.deleteRange(u.AddedStart, u.AddedEnd)
	}
	if u.Removed != "" {
		start := u.RemovedStart
		e.insertTextAt(&start, u.Removed)
	}
	e.applyState(u.Before)
}

// redo reapplies the record: deletes what was removed, re-inserts what
// was added, then restores the after state.
func (u *UndoRecord) redo(e *Editor) {
	if u.Removed != "" {
		e.deleteRange(u.RemovedStart, u.RemovedEnd)
	}
	if u.Added != "" {
		start := u.AddedStart
		e.insertTextAt(&start, u.Added)
	}
	e.applyState(u.After)
}

// addUndo appends a record, discarding any redo tail and evicting the
// oldest records past the size cap.
func (e *Editor) addUndo(record UndoRecord) {
	if e.readOnly {
		return
	}

	e.undoBuffer = append(e.undoBuffer[:e.undoIndex], record)
	e.undoIndex = len(e.undoBuffer)

	if len(e.undoBuffer) > e.maxUndoSize {
		evicted := len(e.undoBuffer) - e.maxUndoSize
		e.undoBuffer = append(e.undoBuffer[:0:0], e.undoBuffer[evicted:]...)
		e.undoIndex -= evicted
	}

	logger.Debugf("editor: recorded undo %d (added %d, removed %d bytes)",
		e.undoIndex, len(record.Added), len(record.Removed))
}

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool {
	return !e.readOnly && e.undoIndex > 0
}

// Undo reverts up to steps records.
func (e *Editor) Undo(steps int) {
	for e.CanUndo() && steps > 0 {
		e.undoIndex--
		e.undoBuffer[e.undoIndex].undo(e)
		steps--
	}
}

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool {
	return !e.readOnly && e.undoIndex < len(e.undoBuffer)
}

// Redo reapplies up to steps undone records.
func (e *Editor) Redo(steps int) {
	for e.CanRedo() && steps > 0 {
		e.undoBuffer[e.undoIndex].redo(e)
		e.undoIndex++
		steps--
	}
}
