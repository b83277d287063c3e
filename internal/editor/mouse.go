package editor

import (
	"time"

	"github.com/dlxed/dlxed/internal/config"
)

// Click state machine. A second press inside the double-click window
// promotes to a double click (word mode), a third to a triple click
// (line mode). Dragging moves only the interactive end.

// HandleMouseDown processes a primary-button press at a position
// relative to the text origin.
func (e *Editor) HandleMouseDown(x, y float64, now time.Time, ctrl bool, m Metrics) {
	pos := e.ScreenPosToCoordinates(x, y, m)

	if !e.lastClick.IsZero() && now.Sub(e.lastClick) < config.DoubleClickInterval {
		e.clickStreak++
	} else {
		e.clickStreak = 1
	}
	e.lastClick = now

	switch {
	case e.clickStreak >= 3:
		// Triple click selects the whole line.
		if !ctrl {
			e.state.CursorPosition = pos
			e.interactiveStart = pos
			e.interactiveEnd = pos
			e.selectionMode = SelectionLine
			e.SetSelection(e.interactiveStart, e.interactiveEnd, e.selectionMode)
		}
		e.lastClick = time.Time{}
		e.clickStreak = 0

	case e.clickStreak == 2:
		// Double click selects the word, unless the previous gesture
		// already was a line selection.
		if !ctrl {
			e.state.CursorPosition = pos
			e.interactiveStart = pos
			e.interactiveEnd = pos
			if e.selectionMode == SelectionLine {
				e.selectionMode = SelectionNormal
			} else {
				e.selectionMode = SelectionWord
			}
			e.SetSelection(e.interactiveStart, e.interactiveEnd, e.selectionMode)
		}

	default:
		e.state.CursorPosition = pos
		e.interactiveStart = pos
		e.interactiveEnd = pos
		if ctrl {
			e.selectionMode = SelectionWord
		} else {
			e.selectionMode = SelectionNormal
		}
		e.SetSelection(e.interactiveStart, e.interactiveEnd, e.selectionMode)
	}

	e.cursorChanged = true
}

// HandleMouseDrag extends the selection's moving end while the primary
// button is held.
func (e *Editor) HandleMouseDrag(x, y float64, m Metrics) {
	pos := e.ScreenPosToCoordinates(x, y, m)
	e.state.CursorPosition = pos
	e.interactiveEnd = pos
	e.SetSelection(e.interactiveStart, e.interactiveEnd, e.selectionMode)
}

// SelectionModeState returns the mode of the last interactive gesture.
func (e *Editor) SelectionModeState() SelectionMode {
	return e.selectionMode
}
