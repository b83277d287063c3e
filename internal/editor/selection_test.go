package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlxed/dlxed/internal/dlx"
)

func TestWordModeSelectionGrowsToBoundaries(t *testing.T) {
	e := New()
	e.SetText("foo bar")
	e.SetCursorPosition(Coordinate{0, 1})

	e.SetSelection(Coordinate{0, 1}, Coordinate{0, 5}, SelectionWord)

	assert.Equal(t, Coordinate{0, 0}, e.SelectionStart())
	assert.Equal(t, Coordinate{0, 7}, e.SelectionEnd())
	assert.Equal(t, "foo bar", e.SelectedText())
}

func TestLineModeSelection(t *testing.T) {
	e := New()
	e.SetText("one\ntwo\nthree")
	e.SetSelection(Coordinate{0, 2}, Coordinate{1, 1}, SelectionLine)

	assert.Equal(t, Coordinate{0, 0}, e.SelectionStart())
	assert.Equal(t, Coordinate{1, 3}, e.SelectionEnd())
	assert.Equal(t, "one\ntwo", e.SelectedText())
}

func TestSetSelectionSwapsEnds(t *testing.T) {
	e := New()
	e.SetText("abcdef")
	e.SetSelection(Coordinate{0, 4}, Coordinate{0, 1}, SelectionNormal)

	assert.Equal(t, Coordinate{0, 1}, e.SelectionStart())
	assert.Equal(t, Coordinate{0, 4}, e.SelectionEnd())
}

func TestSelectAllCoversBuffer(t *testing.T) {
	e := New()
	e.SetText("ab\ncd\nef")
	e.SelectAll()

	assert.Equal(t, Coordinate{0, 0}, e.SelectionStart())
	assert.Equal(t, Coordinate{2, 2}, e.SelectionEnd())
	assert.Equal(t, e.Text(), e.SelectedText())
}

func TestSelectWordUnderCursor(t *testing.T) {
	e := New()
	e.SetTokenizer(dlx.NewTokenizer())
	e.SetText("LW R21 1000")
	e.Retokenize() // word boundaries follow token colors

	e.SetCursorPosition(Coordinate{0, 4})
	e.SelectWordUnderCursor()
	assert.Equal(t, "R21", e.SelectedText())
}

func TestMoveRightExtendsSelection(t *testing.T) {
	e := New()
	e.SetText("abc")

	e.MoveRight(1, true, false)
	assert.Equal(t, Coordinate{0, 0}, e.SelectionStart())
	assert.Equal(t, Coordinate{0, 1}, e.SelectionEnd())

	e.MoveRight(1, true, false)
	assert.Equal(t, Coordinate{0, 2}, e.SelectionEnd())

	// Moving back shrinks the same anchored selection.
	e.MoveLeft(1, true, false)
	assert.Equal(t, Coordinate{0, 0}, e.SelectionStart())
	assert.Equal(t, Coordinate{0, 1}, e.SelectionEnd())
}

func TestMoveWithoutSelectCollapses(t *testing.T) {
	e := New()
	e.SetText("abc\ndef")
	e.MoveRight(2, true, false)
	require.True(t, e.HasSelection())

	e.MoveRight(1, false, false)
	assert.False(t, e.HasSelection())
}

func TestMoveLeftCrossesLineBoundary(t *testing.T) {
	e := New()
	e.SetText("ab\ncd")
	e.SetCursorPosition(Coordinate{1, 0})
	e.MoveLeft(1, false, false)
	assert.Equal(t, Coordinate{0, 2}, e.CursorPosition())
}

func TestMoveRightCrossesLineBoundary(t *testing.T) {
	e := New()
	e.SetText("ab\ncd")
	e.SetCursorPosition(Coordinate{0, 2})
	e.MoveRight(1, false, false)
	assert.Equal(t, Coordinate{1, 0}, e.CursorPosition())
}

func TestMoveUpPastTopSnapsToLineStart(t *testing.T) {
	e := New()
	e.SetText("abcd\nxyz")
	e.SetCursorPosition(Coordinate{1, 3})
	e.MoveUp(5, false)
	assert.Equal(t, Coordinate{0, 0}, e.CursorPosition())
}

func TestMoveDownPastBottomSnapsToLineEnd(t *testing.T) {
	e := New()
	e.SetText("abcd\nxyz")
	e.SetCursorPosition(Coordinate{1, 1})
	e.MoveDown(5, false)
	assert.Equal(t, Coordinate{1, 3}, e.CursorPosition())
}

func TestMoveTopBottom(t *testing.T) {
	e := New()
	e.SetText("first\nlast line")

	e.MoveBottom(false)
	assert.Equal(t, Coordinate{1, 9}, e.CursorPosition())

	e.MoveTop(true)
	assert.Equal(t, Coordinate{0, 0}, e.CursorPosition())
	assert.Equal(t, e.Text(), e.SelectedText())
}

func TestMoveHomeEnd(t *testing.T) {
	e := New()
	e.SetText("some line")
	e.SetCursorPosition(Coordinate{0, 4})

	e.MoveEnd(false)
	assert.Equal(t, Coordinate{0, 9}, e.CursorPosition())

	e.MoveHome(true)
	assert.Equal(t, Coordinate{0, 0}, e.CursorPosition())
	assert.Equal(t, "some line", e.SelectedText())
}

func TestMoveRightWordwise(t *testing.T) {
	e := New()
	e.SetText("foo bar baz")
	e.MoveRight(1, false, true)
	assert.Equal(t, Coordinate{0, 4}, e.CursorPosition())
	e.MoveRight(1, false, true)
	assert.Equal(t, Coordinate{0, 8}, e.CursorPosition())
}
