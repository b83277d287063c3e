package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindWordStart(t *testing.T) {
	e := New()
	e.SetText("alpha beta")

	assert.Equal(t, Coordinate{0, 0}, e.FindWordStart(Coordinate{0, 3}))
	assert.Equal(t, Coordinate{0, 6}, e.FindWordStart(Coordinate{0, 8}))
}

func TestFindWordEndConsumesTrailingSpaces(t *testing.T) {
	e := New()
	e.SetText("alpha  beta")

	// The word end walks over the trailing space run.
	assert.Equal(t, Coordinate{0, 7}, e.FindWordEnd(Coordinate{0, 1}))
}

func TestFindNextWordCrossesLines(t *testing.T) {
	e := New()
	e.SetText("one\n  two")

	assert.Equal(t, Coordinate{1, 2}, e.FindNextWord(Coordinate{0, 3}))
}

func TestFindNextWordAtBufferEnd(t *testing.T) {
	e := New()
	e.SetText("last")
	got := e.FindNextWord(Coordinate{0, 4})
	assert.Equal(t, Coordinate{0, 4}, got)
}

func TestWordAt(t *testing.T) {
	e := New()
	e.SetText("ADD R1 R2")

	assert.Equal(t, "ADD ", e.WordAt(Coordinate{0, 1}))
}

func TestWordUnderCursorEmptyLine(t *testing.T) {
	e := New()
	e.SetText("")
	assert.Equal(t, "", e.WordUnderCursor())
}
