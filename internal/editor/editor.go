// Package editor implements the interactive code-editor core: a per-glyph
// colored text buffer with cursor, selection, undo/redo, breakpoints,
// error markers and tokenizer-driven recoloring.
package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlxed/dlxed/internal/config"
	"github.com/dlxed/dlxed/internal/event"
)

// SelectionMode controls how a range selection is rounded.
type SelectionMode int

const (
	// SelectionNormal keeps exact coordinates.
	SelectionNormal SelectionMode = iota
	// SelectionWord rounds to word boundaries.
	SelectionWord
	// SelectionLine rounds to whole lines.
	SelectionLine
)

// EditorState is the cursor plus selection. After every public operation
// SelectionStart <= SelectionEnd holds. Undo records store states with
// byte-index columns; the live state always uses visual columns.
type EditorState struct {
	CursorPosition Coordinate
	SelectionStart Coordinate
	SelectionEnd   Coordinate
}

// Clipboard is the external clipboard contract. Get returns the current
// contents, false when empty or unavailable.
type Clipboard interface {
	Get() (string, bool)
	Set(text string)
}

// Editor owns the glyph buffer and all interactive state. It is
// single-threaded; callers invoke it from one goroutine.
type Editor struct {
	lines []Line

	state            EditorState
	interactiveStart Coordinate
	interactiveEnd   Coordinate
	selectionMode    SelectionMode

	undoBuffer  []UndoRecord
	undoIndex   int
	maxUndoSize int

	tabSize          int
	overwrite        bool
	readOnly         bool
	colorizerEnabled bool
	showWhitespaces  bool

	textChanged   bool
	cursorChanged bool

	// errorMarkers and breakpoints are keyed by 1-based line numbers, the
	// numbering the assembler reports.
	errorMarkers map[int]string
	breakpoints  map[int]struct{}

	clipboard Clipboard
	tokenizer Tokenizer
	events    *event.Manager

	lastClick   time.Time
	clickStreak int
}

// New creates an editor holding a single empty line.
func New() *Editor {
	return &Editor{
		lines:            []Line{{}},
		tabSize:          config.DefaultTabSize,
		maxUndoSize:      config.DefaultMaxUndoSize,
		colorizerEnabled: true,
		errorMarkers:     make(map[int]string),
		breakpoints:      make(map[int]struct{}),
	}
}

// SetClipboard injects the clipboard used by Copy/Cut/Paste.
func (e *Editor) SetClipboard(c Clipboard) {
	e.clipboard = c
}

// SetTokenizer injects the tokenizer driving the colorizer.
func (e *Editor) SetTokenizer(t Tokenizer) {
	e.tokenizer = t
}

// SetEventManager injects the event bus for change notifications.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.events = mgr
}

// SetMaxUndoSize bounds the undo buffer; oldest records are evicted.
func (e *Editor) SetMaxUndoSize(n int) {
	if n > 0 {
		e.maxUndoSize = n
	}
}

// TotalLines returns the number of lines in the buffer, always >= 1.
func (e *Editor) TotalLines() int {
	return len(e.lines)
}

// Lines exposes the glyph buffer for rendering. Callers must not mutate it.
func (e *Editor) Lines() []Line {
	return e.lines
}

// --- Option toggles ---

// SetOverwrite switches between insert and overwrite mode.
func (e *Editor) SetOverwrite(overwrite bool) { e.overwrite = overwrite }

// ToggleOverwrite flips overwrite mode.
func (e *Editor) ToggleOverwrite() { e.overwrite = !e.overwrite }

// IsOverwrite reports overwrite mode.
func (e *Editor) IsOverwrite() bool { return e.overwrite }

// SetReadOnly controls whether mutating operations are allowed.
func (e *Editor) SetReadOnly(value bool) { e.readOnly = value }

// ToggleReadOnly flips the read-only flag.
func (e *Editor) ToggleReadOnly() { e.readOnly = !e.readOnly }

// IsReadOnly reports the read-only flag.
func (e *Editor) IsReadOnly() bool { return e.readOnly }

// SetColorizerEnabled controls whether glyph tags are honored.
func (e *Editor) SetColorizerEnabled(value bool) { e.colorizerEnabled = value }

// ToggleColorizerEnabled flips the colorizer flag.
func (e *Editor) ToggleColorizerEnabled() { e.colorizerEnabled = !e.colorizerEnabled }

// IsColorizerEnabled reports the colorizer flag.
func (e *Editor) IsColorizerEnabled() bool { return e.colorizerEnabled }

// SetShowWhitespaces controls whitespace visualization in the render pass.
func (e *Editor) SetShowWhitespaces(value bool) { e.showWhitespaces = value }

// ToggleShowWhitespaces flips whitespace visualization.
func (e *Editor) ToggleShowWhitespaces() { e.showWhitespaces = !e.showWhitespaces }

// IsShowingWhitespaces reports whitespace visualization.
func (e *Editor) IsShowingWhitespaces() bool { return e.showWhitespaces }

// IsTextChanged reports whether the buffer mutated since the last
// Retokenize. The render pass consumes this flag.
func (e *Editor) IsTextChanged() bool { return e.textChanged }

// IsCursorPositionChanged reports cursor/selection movement this frame.
func (e *Editor) IsCursorPositionChanged() bool { return e.cursorChanged }

// ClearCursorPositionChanged resets the per-frame cursor flag.
func (e *Editor) ClearCursorPositionChanged() { e.cursorChanged = false }

// SetTabSize clamps n into [MinTabSize, MaxTabSize] and converts the
// cursor and selection so they keep pointing at the same bytes.
func (e *Editor) SetTabSize(n int) {
	if n < config.MinTabSize {
		n = config.MinTabSize
	}
	if n > config.MaxTabSize {
		n = config.MaxTabSize
	}
	if n == e.tabSize {
		return
	}

	cursorIndex := e.characterIndex(e.state.CursorPosition)
	startIndex := e.characterIndex(e.state.SelectionStart)
	endIndex := e.characterIndex(e.state.SelectionEnd)

	e.tabSize = n

	e.state.CursorPosition.Column = e.characterColumn(e.state.CursorPosition.Line, cursorIndex)
	e.state.SelectionStart.Column = e.characterColumn(e.state.SelectionStart.Line, startIndex)
	e.state.SelectionEnd.Column = e.characterColumn(e.state.SelectionEnd.Line, endIndex)
}

// TabSize returns the current tab size.
func (e *Editor) TabSize() int {
	return e.tabSize
}

// CursorPosition returns the sanitized cursor coordinates.
func (e *Editor) CursorPosition() Coordinate {
	return e.actualCursorCoordinates()
}

// SetCursorPosition moves the cursor to the sanitized position.
func (e *Editor) SetCursorPosition(position Coordinate) {
	newPos := e.SanitizeCoordinates(position)
	if e.state.CursorPosition != newPos {
		e.state.CursorPosition = newPos
		e.cursorChanged = true
		e.notifyCursorMoved()
	}
}

// resetState collapses cursor and selection to the origin.
func (e *Editor) resetState() {
	e.state.CursorPosition = Coordinate{}
	e.state.SelectionStart = Coordinate{}
	e.state.SelectionEnd = Coordinate{}
}

// markTextChanged records a buffer mutation. Subscribers are notified only
// on the first mutation since the flag was last cleared by Retokenize.
func (e *Editor) markTextChanged() {
	first := !e.textChanged
	e.textChanged = true
	if first && e.events != nil {
		e.events.Dispatch(event.TypeTextChanged, event.TextChangedData{TotalLines: len(e.lines)})
	}
}

func (e *Editor) notifyCursorMoved() {
	if e.events != nil {
		e.events.Dispatch(event.TypeCursorMoved, event.CursorMovedData{
			Line:   e.state.CursorPosition.Line,
			Column: e.state.CursorPosition.Column,
		})
	}
}

// DebugDump renders the full editor state as text, for diagnostics and
// bug reports.
func (e *Editor) DebugDump() string {
	var b strings.Builder

	cursor := e.CursorPosition()
	fmt.Fprintf(&b, "State:\n")
	fmt.Fprintf(&b, "Cursor position: %d, %d\n", e.state.CursorPosition.Line, e.state.CursorPosition.Column)
	fmt.Fprintf(&b, "Actual cursor position: %d, %d\n", cursor.Line, cursor.Column)
	fmt.Fprintf(&b, "Selection start: %d, %d\n", e.state.SelectionStart.Line, e.state.SelectionStart.Column)
	fmt.Fprintf(&b, "Selection end: %d, %d\n", e.state.SelectionEnd.Line, e.state.SelectionEnd.Column)
	fmt.Fprintf(&b, "Has selection: %t\n", e.HasSelection())

	fmt.Fprintf(&b, "\nOptions:\n")
	fmt.Fprintf(&b, "Tab size: %d\n", e.tabSize)
	fmt.Fprintf(&b, "Overwrite: %t\n", e.overwrite)
	fmt.Fprintf(&b, "Read only: %t\n", e.readOnly)
	fmt.Fprintf(&b, "Show whitespaces: %t\n", e.showWhitespaces)

	fmt.Fprintf(&b, "\nText:\n")
	fmt.Fprintf(&b, "Total lines: %d\n", len(e.lines))
	fmt.Fprintf(&b, "%q\n", e.Text())
	if e.HasSelection() {
		fmt.Fprintf(&b, "Selected text: %q\n", e.SelectedText())
	}

	fmt.Fprintf(&b, "\nError markers:\n")
	for line, msg := range e.errorMarkers {
		fmt.Fprintf(&b, "%02d: %s\n", line, msg)
	}
	fmt.Fprintf(&b, "\nBreakpoints:\n")
	for line := range e.breakpoints {
		fmt.Fprintf(&b, "%02d\n", line)
	}

	fmt.Fprintf(&b, "\nUndo/Redo:\n")
	fmt.Fprintf(&b, "Can undo: %t\n", e.CanUndo())
	fmt.Fprintf(&b, "Can redo: %t\n", e.CanRedo())
	fmt.Fprintf(&b, "Undo index: %d of %d\n", e.undoIndex, len(e.undoBuffer))

	return b.String()
}
