package editor

import "github.com/dlxed/dlxed/internal/logger"

// Copy writes the selection, or the whole current line when nothing is
// selected, to the clipboard. Always allowed, read-only included.
func (e *Editor) Copy() {
	if e.clipboard == nil {
		return
	}

	if e.HasSelection() {
		e.clipboard.Set(e.SelectedText())
		return
	}

	line := e.lines[e.actualCursorCoordinates().Line]
	e.clipboard.Set(line.text())
}

// Paste replaces the selection with the clipboard contents. No-op when
// read-only or the clipboard is empty.
func (e *Editor) Paste() {
	if e.readOnly || e.clipboard == nil {
		return
	}

	text, ok := e.clipboard.Get()
	if !ok || text == "" {
		return
	}

	logger.Debugf("editor: pasting %d bytes", len(text))
	e.InsertText(text)
}
