package editor

import "github.com/dlxed/dlxed/internal/event"

// Error markers and breakpoints are keyed by 1-based line numbers, the
// numbering the assembler reports and the gutter displays.

// SetErrorMarkers replaces all error markers.
func (e *Editor) SetErrorMarkers(markers map[int]string) {
	e.errorMarkers = make(map[int]string, len(markers))
	for line, msg := range markers {
		e.errorMarkers[line] = msg
	}
	e.notifyMarkersChanged()
}

// AddErrorMarker records a message for a line. A line that already has a
// marker gets the new message appended after a newline.
func (e *Editor) AddErrorMarker(lineNumber int, message string) {
	if existing, ok := e.errorMarkers[lineNumber]; ok {
		e.errorMarkers[lineNumber] = existing + "\n" + message
	} else {
		e.errorMarkers[lineNumber] = message
	}
}

// ClearErrorMarkers removes all error markers.
func (e *Editor) ClearErrorMarkers() {
	e.errorMarkers = make(map[int]string)
}

// ErrorMarkers returns the live marker map. Callers must not mutate it.
func (e *Editor) ErrorMarkers() map[int]string {
	return e.errorMarkers
}

// ErrorMarker returns the message for a 1-based line, if any.
func (e *Editor) ErrorMarker(lineNumber int) (string, bool) {
	msg, ok := e.errorMarkers[lineNumber]
	return msg, ok
}

func (e *Editor) notifyMarkersChanged() {
	if e.events != nil {
		e.events.Dispatch(event.TypeMarkersChanged, event.MarkersChangedData{Count: len(e.errorMarkers)})
	}
}

// --- Breakpoints ---

// SetBreakpoints replaces the breakpoint set.
func (e *Editor) SetBreakpoints(lines map[int]struct{}) {
	e.breakpoints = make(map[int]struct{}, len(lines))
	for line := range lines {
		e.breakpoints[line] = struct{}{}
	}
}

// AddBreakpoint sets a breakpoint; reports whether it was newly added.
func (e *Editor) AddBreakpoint(lineNumber int) bool {
	if _, ok := e.breakpoints[lineNumber]; ok {
		return false
	}
	e.breakpoints[lineNumber] = struct{}{}
	return true
}

// RemoveBreakpoint clears a breakpoint; reports whether one was present.
func (e *Editor) RemoveBreakpoint(lineNumber int) bool {
	if _, ok := e.breakpoints[lineNumber]; !ok {
		return false
	}
	delete(e.breakpoints, lineNumber)
	return true
}

// ToggleBreakpoint flips a breakpoint and returns the resulting state.
func (e *Editor) ToggleBreakpoint(lineNumber int) bool {
	if _, ok := e.breakpoints[lineNumber]; ok {
		delete(e.breakpoints, lineNumber)
		return false
	}
	e.breakpoints[lineNumber] = struct{}{}
	return true
}

// ClearBreakpoints removes all breakpoints.
func (e *Editor) ClearBreakpoints() {
	e.breakpoints = make(map[int]struct{})
}

// HasBreakpoint reports a breakpoint on a 1-based line.
func (e *Editor) HasBreakpoint(lineNumber int) bool {
	_, ok := e.breakpoints[lineNumber]
	return ok
}

// Breakpoints returns the live breakpoint set. Callers must not mutate it.
func (e *Editor) Breakpoints() map[int]struct{} {
	return e.breakpoints
}
