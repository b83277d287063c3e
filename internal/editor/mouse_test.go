package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asciiMetrics measures one unit per byte, for deterministic tests.
type asciiMetrics struct{}

func (asciiMetrics) CharAdvance() (x, y float64) { return 1, 1 }
func (asciiMetrics) TextWidth(text string) float64 {
	return float64(len([]rune(text)))
}

func TestScreenPosToCoordinates(t *testing.T) {
	e := New()
	e.SetText("abcdef\nxyz")
	m := asciiMetrics{}

	assert.Equal(t, Coordinate{0, 2}, e.ScreenPosToCoordinates(2.2, 0.5, m))
	assert.Equal(t, Coordinate{1, 3}, e.ScreenPosToCoordinates(40, 1.5, m))
	// A hit on the right half of a glyph lands past it.
	assert.Equal(t, Coordinate{0, 1}, e.ScreenPosToCoordinates(0.9, 0, m))
	// Below the buffer clamps to the last line.
	assert.Equal(t, Coordinate{1, 3}, e.ScreenPosToCoordinates(0, 99, m))
}

func TestScreenPosToCoordinatesTab(t *testing.T) {
	e := New()
	e.SetText("\tA")
	m := asciiMetrics{}

	// Inside the left half of the tab's span.
	assert.Equal(t, Coordinate{0, 0}, e.ScreenPosToCoordinates(1.0, 0, m))
	// Past the tab's midpoint snaps to the stop.
	assert.Equal(t, Coordinate{0, 4}, e.ScreenPosToCoordinates(3.8, 0, m))
}

func TestClickPromotions(t *testing.T) {
	e := New()
	e.SetText("foo bar\nsecond line")
	m := asciiMetrics{}
	base := time.Now()

	// Single click: collapsed cursor, normal mode.
	e.HandleMouseDown(5, 0, base, false, m)
	assert.False(t, e.HasSelection())
	assert.Equal(t, Coordinate{0, 5}, e.CursorPosition())

	// Double click inside the window: word selection.
	e.HandleMouseDown(5, 0, base.Add(100*time.Millisecond), false, m)
	require.True(t, e.HasSelection())
	assert.Equal(t, SelectionWord, e.SelectionModeState())
	assert.Equal(t, "bar", e.SelectedText())

	// Triple click: line selection.
	e.HandleMouseDown(5, 0, base.Add(200*time.Millisecond), false, m)
	assert.Equal(t, SelectionLine, e.SelectionModeState())
	assert.Equal(t, "foo bar", e.SelectedText())
}

func TestSlowClicksStayNormal(t *testing.T) {
	e := New()
	e.SetText("foo bar")
	m := asciiMetrics{}
	base := time.Now()

	e.HandleMouseDown(1, 0, base, false, m)
	e.HandleMouseDown(1, 0, base.Add(5*time.Second), false, m)
	assert.Equal(t, SelectionNormal, e.SelectionModeState())
	assert.False(t, e.HasSelection())
}

func TestCtrlClickSelectsWord(t *testing.T) {
	e := New()
	e.SetText("foo bar")
	m := asciiMetrics{}

	e.HandleMouseDown(5, 0, time.Now(), true, m)
	assert.Equal(t, SelectionWord, e.SelectionModeState())
	assert.Equal(t, "bar", e.SelectedText())
}

func TestDragExtendsSelection(t *testing.T) {
	e := New()
	e.SetText("abcdef")
	m := asciiMetrics{}

	e.HandleMouseDown(1, 0, time.Now(), false, m)
	e.HandleMouseDrag(4, 0, m)

	assert.Equal(t, Coordinate{0, 1}, e.SelectionStart())
	assert.Equal(t, Coordinate{0, 4}, e.SelectionEnd())
	assert.Equal(t, Coordinate{0, 4}, e.CursorPosition())
}
