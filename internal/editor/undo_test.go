package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryClipboard is a test double for the clipboard contract.
type memoryClipboard struct {
	content string
}

func (m *memoryClipboard) Get() (string, bool) { return m.content, m.content != "" }
func (m *memoryClipboard) Set(text string)     { m.content = text }

func TestUndoAfterPaste(t *testing.T) {
	e := New()
	clip := &memoryClipboard{content: "BC"}
	e.SetClipboard(clip)

	e.SetText("a")
	e.SetCursorPosition(Coordinate{0, 1})
	e.Paste()
	require.Equal(t, "aBC", e.Text())

	e.Undo(1)
	assert.Equal(t, "a", e.Text())
	assert.Equal(t, Coordinate{0, 1}, e.CursorPosition())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := New()
	e.SetText("base")
	e.SetCursorPosition(Coordinate{0, 4})

	e.InsertText(" one")
	e.InsertText(" two")
	after := e.Text()
	afterCursor := e.CursorPosition()

	e.Undo(2)
	assert.Equal(t, "base", e.Text())

	e.Redo(2)
	assert.Equal(t, after, e.Text())
	assert.Equal(t, afterCursor, e.CursorPosition())
}

func TestUndoRestoresSelection(t *testing.T) {
	e := New()
	e.SetText("hello world")
	e.SetSelection(Coordinate{0, 0}, Coordinate{0, 5}, SelectionNormal)
	e.Delete()
	require.Equal(t, " world", e.Text())

	e.Undo(1)
	assert.Equal(t, "hello world", e.Text())
	assert.Equal(t, Coordinate{0, 0}, e.SelectionStart())
	assert.Equal(t, Coordinate{0, 5}, e.SelectionEnd())
}

func TestRedoTailDiscardedOnNewEdit(t *testing.T) {
	e := New()
	e.SetText("")
	e.InsertText("a")
	e.InsertText("b")
	e.Undo(1)
	require.True(t, e.CanRedo())

	e.InsertText("c")
	assert.False(t, e.CanRedo())
	assert.Equal(t, "ac", e.Text())

	e.Undo(2)
	assert.Equal(t, "", e.Text())
}

func TestUndoPastEmptyLogIsNoop(t *testing.T) {
	e := New()
	e.SetText("x")
	e.Undo(5)
	e.Redo(5)
	assert.Equal(t, "x", e.Text())
}

func TestUndoEnterCharacterNewline(t *testing.T) {
	e := New()
	e.SetText("ab")
	e.SetCursorPosition(Coordinate{0, 1})
	e.EnterCharacter('\n', false)
	require.Equal(t, "a\nb", e.Text())

	e.Undo(1)
	assert.Equal(t, "ab", e.Text())
	assert.Equal(t, Coordinate{0, 1}, e.CursorPosition())

	e.Redo(1)
	assert.Equal(t, "a\nb", e.Text())
	assert.Equal(t, Coordinate{1, 0}, e.CursorPosition())
}

func TestUndoOverwrite(t *testing.T) {
	e := New()
	e.SetText("abc")
	e.SetCursorPosition(Coordinate{0, 1})
	e.SetOverwrite(true)
	e.EnterCharacter('Z', false)
	require.Equal(t, "aZc", e.Text())

	e.Undo(1)
	assert.Equal(t, "abc", e.Text())
}

func TestUndoBackspaceLineMerge(t *testing.T) {
	e := New()
	e.SetText("ab\ncd")
	e.SetCursorPosition(Coordinate{1, 0})
	e.Backspace()
	require.Equal(t, "abcd", e.Text())

	e.Undo(1)
	assert.Equal(t, "ab\ncd", e.Text())
	assert.Equal(t, Coordinate{1, 0}, e.CursorPosition())
}

func TestUndoCut(t *testing.T) {
	e := New()
	clip := &memoryClipboard{}
	e.SetClipboard(clip)
	e.SetText("cut me out")
	e.SetSelection(Coordinate{0, 4}, Coordinate{0, 7}, SelectionNormal)

	e.Cut()
	require.Equal(t, "cut out", e.Text())
	assert.Equal(t, "me ", clip.content)

	e.Undo(1)
	assert.Equal(t, "cut me out", e.Text())
}

func TestUndoSurvivesTabSizeChange(t *testing.T) {
	e := New()
	e.SetText("start")
	e.SetCursorPosition(Coordinate{0, 5})
	e.InsertText(" middle")
	after := e.Text()

	e.SetTabSize(8)
	e.Undo(1)
	assert.Equal(t, "start", e.Text())

	e.SetTabSize(2)
	e.Redo(1)
	assert.Equal(t, after, e.Text())
}

func TestUndoIndentRoundTrip(t *testing.T) {
	e := New()
	e.SetText("a\nb")
	e.SelectAll()
	e.EnterCharacter('\t', false)
	require.Equal(t, "\ta\n\tb", e.Text())

	e.Undo(1)
	assert.Equal(t, "a\nb", e.Text())

	e.Redo(1)
	assert.Equal(t, "\ta\n\tb", e.Text())
}

func TestUndoEviction(t *testing.T) {
	e := New()
	e.SetMaxUndoSize(3)
	e.SetText("")
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		e.InsertText(s)
	}

	// Only the newest three records survive.
	e.Undo(100)
	assert.Equal(t, "ab", e.Text())
	assert.False(t, e.CanUndo())
}

func TestReadOnlyBlocksUndo(t *testing.T) {
	e := New()
	e.SetText("")
	e.InsertText("abc")
	e.SetReadOnly(true)
	e.Undo(1)
	assert.Equal(t, "abc", e.Text())
}
