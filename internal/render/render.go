// Package render builds the per-frame draw list for the editor. It is a
// pure projection of buffer, selection, palette and viewport; it owns no
// pixels and performs no drawing itself.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/dlxed/dlxed/internal/config"
	"github.com/dlxed/dlxed/internal/editor"
	"github.com/dlxed/dlxed/internal/theme"
)

// Op is the kind of a draw command.
type Op int

const (
	// OpRectFill fills a rectangle.
	OpRectFill Op = iota
	// OpRectOutline strokes a rectangle.
	OpRectOutline
	// OpText draws a text run at a position.
	OpText
	// OpTabArrow draws the whitespace arrow spanning a tab.
	OpTabArrow
	// OpSpaceDot draws the whitespace dot over a space.
	OpSpaceDot
)

// Command is one ordered draw instruction. Positions are relative to the
// editor origin in metric units (cells for CellMetrics).
type Command struct {
	Op    Op
	X, Y  float64
	W, H  float64
	Color theme.Color
	Text  string
	Tag   editor.ColorTag
}

// Tooltip carries the error message to show when the pointer hovers an
// error band.
type Tooltip struct {
	Line    int // 1-based
	Message string
}

// Frame is a complete ordered draw list for one render pass.
type Frame struct {
	Commands    []Command
	Tooltip     *Tooltip
	Background  theme.Color
	GutterWidth float64
	LongestLine float64
}

// Viewport selects the visible slice of the buffer.
type Viewport struct {
	FirstLine int
	Height    int     // visible line count
	Width     float64 // visible width in metric units, gutter included
}

// Options carries per-frame inputs that are not editor state.
type Options struct {
	Focused bool
	Now     time.Time
	// MouseX/MouseY are relative to the editor origin; MouseValid gates
	// tooltip hit tests.
	MouseX, MouseY float64
	MouseValid     bool
}

// Blinker tracks the cursor blink phase. The cursor is visible in the
// second half of each period; any keystroke restarts the phase.
type Blinker struct {
	start time.Time
}

// Reset restarts the blink phase; the cursor stays hidden until
// CursorBlinkOn has elapsed.
func (b *Blinker) Reset(now time.Time) {
	b.start = now
}

// Visible reports whether the cursor shows at the given instant.
func (b *Blinker) Visible(now time.Time) bool {
	if b.start.IsZero() {
		b.start = now
	}
	elapsed := now.Sub(b.start)
	if elapsed > config.CursorBlinkPeriod {
		b.start = now.Add(-(elapsed % config.CursorBlinkPeriod))
		elapsed = now.Sub(b.start)
	}
	return elapsed > config.CursorBlinkOn
}

// GutterWidth returns the width of the line-number gutter for a buffer
// of lineCount lines.
func GutterWidth(lineCount int, m editor.Metrics) float64 {
	return m.TextWidth(fmt.Sprintf(" %d ", lineCount)) + 1
}

// Build assembles the ordered draw list for the visible lines: for each
// line the selection background, breakpoint and error bands, the
// right-aligned line number, the current-line fill and blinking cursor,
// then the color-segmented text runs.
func Build(e *editor.Editor, palette *theme.Palette, m editor.Metrics, vp Viewport, blinker *Blinker, opts Options) Frame {
	var frame Frame
	frame.Background = palette.Get(editor.TagBackground)

	advanceX, advanceY := m.CharAdvance()
	spaceSize := m.TextWidth(" ")
	tabWidth := float64(e.TabSize()) * spaceSize

	lineCount := e.TotalLines()
	frame.GutterWidth = GutterWidth(lineCount, m)
	textStart := frame.GutterWidth

	lineNo := vp.FirstLine
	if lineNo < 0 {
		lineNo = 0
	}
	lineMax := lineNo + vp.Height
	if lineMax > lineCount {
		lineMax = lineCount
	}

	selStart := e.SelectionStart()
	selEnd := e.SelectionEnd()
	cursor := e.CursorPosition()
	lines := e.Lines()

	longest := textStart

	for ; lineNo < lineMax; lineNo++ {
		lineY := float64(lineNo-vp.FirstLine) * advanceY
		line := lines[lineNo]

		lineStartCoord := editor.Coordinate{Line: lineNo}
		lineEndCoord := editor.Coordinate{Line: lineNo, Column: e.LineMaxColumn(lineNo)}

		if d := textStart + e.TextDistance(lineEndCoord, m); d > longest {
			longest = d
		}

		// Selection background.
		sstart, ssend := -1.0, -1.0
		if selStart.LessEq(lineEndCoord) {
			if selStart.Greater(lineStartCoord) {
				sstart = e.TextDistance(selStart, m)
			} else {
				sstart = 0
			}
		}
		if selEnd.Greater(lineStartCoord) {
			if selEnd.Less(lineEndCoord) {
				ssend = e.TextDistance(selEnd, m)
			} else {
				ssend = e.TextDistance(lineEndCoord, m)
			}
		}
		if selEnd.Line > lineNo {
			ssend += advanceX
		}
		if sstart != -1 && ssend != -1 && sstart < ssend {
			frame.Commands = append(frame.Commands, Command{
				Op: OpRectFill, Tag: editor.TagSelection,
				X: textStart + sstart, Y: lineY,
				W: ssend - sstart, H: advanceY,
				Color: palette.Get(editor.TagSelection),
			})
		}

		// Breakpoint band.
		if e.HasBreakpoint(lineNo + 1) {
			frame.Commands = append(frame.Commands, Command{
				Op: OpRectFill, Tag: editor.TagBreakpoint,
				X: 0, Y: lineY, W: vp.Width, H: advanceY,
				Color: palette.Get(editor.TagBreakpoint),
			})
		}

		// Error band and hover tooltip.
		if msg, ok := e.ErrorMarker(lineNo + 1); ok {
			frame.Commands = append(frame.Commands, Command{
				Op: OpRectFill, Tag: editor.TagErrorMarker,
				X: 0, Y: lineY, W: vp.Width, H: advanceY,
				Color: palette.Get(editor.TagErrorMarker),
			})
			if opts.MouseValid && opts.MouseY >= lineY && opts.MouseY < lineY+advanceY {
				frame.Tooltip = &Tooltip{Line: lineNo + 1, Message: msg}
			}
		}

		// Right-aligned line number.
		lineNumText := fmt.Sprintf("%d  ", lineNo+1)
		frame.Commands = append(frame.Commands, Command{
			Op: OpText, Tag: editor.TagLineNumber,
			X: textStart - m.TextWidth(lineNumText), Y: lineY,
			Text:  lineNumText,
			Color: palette.Get(editor.TagLineNumber),
		})

		if cursor.Line == lineNo {
			// Current-line highlight, suppressed while a selection exists.
			if !e.HasSelection() {
				fillTag := editor.TagCurrentLineFill
				if !opts.Focused {
					fillTag = editor.TagCurrentLineFillInactive
				}
				frame.Commands = append(frame.Commands, Command{
					Op: OpRectFill, Tag: fillTag,
					X: 0, Y: lineY, W: vp.Width, H: advanceY,
					Color: palette.Get(fillTag),
				})
				frame.Commands = append(frame.Commands, Command{
					Op: OpRectOutline, Tag: editor.TagCurrentLineEdge,
					X: 0, Y: lineY, W: vp.Width, H: advanceY,
					Color: palette.Get(editor.TagCurrentLineEdge),
				})
			}

			// Cursor rectangle, blinking.
			if opts.Focused && blinker.Visible(opts.Now) {
				cx := e.TextDistance(cursor, m)
				width := advanceX

				cindex := e.CharacterIndex(cursor)
				if e.IsOverwrite() && cindex < len(line) {
					if line[cindex].Char == '\t' {
						x := (1 + math.Floor((1+cx)/tabWidth)) * tabWidth
						width = x - cx
					} else {
						end := cindex + editor.UTF8CharLength(line[cindex].Char)
						if end > len(line) {
							end = len(line)
						}
						cell := make([]byte, 0, end-cindex)
						for _, g := range line[cindex:end] {
							cell = append(cell, g.Char)
						}
						width = m.TextWidth(string(cell))
					}
				}
				frame.Commands = append(frame.Commands, Command{
					Op: OpRectFill, Tag: editor.TagCursor,
					X: textStart + cx, Y: lineY, W: width, H: advanceY,
					Color: palette.Get(editor.TagCursor),
				})
			}
		}

		// Colorized text runs, split on tag changes and whitespace.
		appendLineRuns(&frame, e, palette, m, line, textStart, lineY, spaceSize, tabWidth, advanceY)
	}

	frame.LongestLine = longest
	return frame
}

// appendLineRuns emits the text of one line as color-segmented runs,
// with whitespace glyphs when enabled.
func appendLineRuns(frame *Frame, e *editor.Editor, palette *theme.Palette, m editor.Metrics, line editor.Line, textStart, lineY, spaceSize, tabWidth, advanceY float64) {
	var (
		buf     []byte
		runTag  editor.ColorTag
		offsetX float64
		runX    float64
	)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		text := string(buf)
		frame.Commands = append(frame.Commands, Command{
			Op: OpText, Tag: runTag,
			X: textStart + runX, Y: lineY,
			Text:  text,
			Color: palette.Get(runTag),
		})
		offsetX = runX + m.TextWidth(text)
		buf = buf[:0]
	}

	for i := 0; i < len(line); {
		glyph := line[i]
		tag := e.GlyphColor(glyph)

		if (tag != runTag || glyph.Char == '\t' || glyph.Char == ' ') && len(buf) > 0 {
			flush()
		}

		switch glyph.Char {
		case '\t':
			oldX := offsetX
			offsetX = (1 + math.Floor((1+offsetX)/tabWidth)) * tabWidth
			if e.IsShowingWhitespaces() {
				frame.Commands = append(frame.Commands, Command{
					Op: OpTabArrow, Tag: editor.TagDefault,
					X: textStart + oldX, Y: lineY,
					W: offsetX - oldX, H: advanceY,
					Color: palette.Get(editor.TagDefault),
				})
			}
			i++
		case ' ':
			if e.IsShowingWhitespaces() {
				frame.Commands = append(frame.Commands, Command{
					Op: OpSpaceDot, Tag: editor.TagDefault,
					X: textStart + offsetX, Y: lineY,
					W: spaceSize, H: advanceY,
					Color: palette.Get(editor.TagDefault),
				})
			}
			offsetX += spaceSize
			i++
		default:
			if len(buf) == 0 {
				runTag = tag
				runX = offsetX
			}
			l := editor.UTF8CharLength(glyph.Char)
			for ; l > 0 && i < len(line); l-- {
				buf = append(buf, line[i].Char)
				i++
			}
		}
	}
	flush()
}

