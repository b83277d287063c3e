package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditorHasOneEmptyLine(t *testing.T) {
	e := New()
	require.Equal(t, 1, e.TotalLines())
	assert.Equal(t, "", e.Text())
}

func TestSetTextSplitsLines(t *testing.T) {
	e := New()
	e.SetText("one\ntwo\nthree")

	require.Equal(t, 3, e.TotalLines())
	assert.Equal(t, []string{"one", "two", "three"}, e.TextLines())
	assert.Equal(t, "one\ntwo\nthree", e.Text())
}

func TestSetTextStripsControlBytes(t *testing.T) {
	e := New()
	e.SetText("a\r\nb\x00c\x1bd\ttab")

	assert.Equal(t, "a\nbcd\ttab", e.Text())
}

func TestSetTextClearsUndo(t *testing.T) {
	e := New()
	e.InsertText("hello")
	require.True(t, e.CanUndo())

	e.SetText(e.Text())
	assert.False(t, e.CanUndo())
	assert.False(t, e.CanRedo())
	assert.Equal(t, "hello", e.Text())
}

func TestSetTextIdempotent(t *testing.T) {
	e := New()
	e.SetText("foo\nbar\nbaz")
	text := e.Text()
	e.SetText(text)
	assert.Equal(t, text, e.Text())
}

func TestTextMatchesJoinedLines(t *testing.T) {
	e := New()
	e.SetText("alpha\n\tbeta\n\ngamma")
	assert.Equal(t, strings.Join(e.TextLines(), "\n"), e.Text())
}

func TestSetTextLines(t *testing.T) {
	e := New()
	e.SetTextLines([]string{"LW R1 R0", "ADD R2 R1 R1"})
	assert.Equal(t, "LW R1 R0\nADD R2 R1 R1", e.Text())
	assert.False(t, e.CanUndo())
}

func TestSetTextLinesEmbeddedNewline(t *testing.T) {
	e := New()
	e.SetTextLines([]string{"a\nb", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, e.TextLines())
}

func TestClearTextIsUndoable(t *testing.T) {
	e := New()
	e.SetText("keep\nme")
	e.ClearText()
	require.Equal(t, "", e.Text())
	require.Equal(t, 1, e.TotalLines())

	e.Undo(1)
	assert.Equal(t, "keep\nme", e.Text())
}

func TestClearTextOnEmptyBufferDoesNothing(t *testing.T) {
	e := New()
	e.ClearText()
	assert.Equal(t, 1, e.TotalLines())
	assert.False(t, e.CanUndo())
}

func TestSelectedText(t *testing.T) {
	e := New()
	e.SetText("foo\nbar")
	e.SetSelection(Coordinate{0, 1}, Coordinate{1, 2}, SelectionNormal)
	assert.Equal(t, "oo\nba", e.SelectedText())
}

func TestCurrentLineText(t *testing.T) {
	e := New()
	e.SetText("first\nsecond")
	e.SetCursorPosition(Coordinate{1, 3})
	assert.Equal(t, "second", e.CurrentLineText())
}

func TestReadOnlyBlocksMutation(t *testing.T) {
	e := New()
	e.SetText("locked")
	e.SetReadOnly(true)

	e.InsertText("x")
	e.Backspace()
	e.Delete()
	e.EnterCharacter('y', false)
	e.ClearText()

	assert.Equal(t, "locked", e.Text())
}
