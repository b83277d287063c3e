package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dlxed/dlxed/internal/editor"
	"github.com/dlxed/dlxed/internal/render"
	"github.com/dlxed/dlxed/internal/theme"
)

// cell is one terminal cell in the compositing grid.
type cell struct {
	ch rune
	fg theme.Color
	bg theme.Color
}

// executeFrame composites the ordered draw list into a cell grid and
// flushes it to the screen. Background rectangles alpha-blend over each
// other; text runs keep whatever background is beneath them.
func executeFrame(screen tcell.Screen, frame *render.Frame, palette theme.Palette) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	grid := make([]cell, w*h)
	foreground := palette.Get(editor.TagDefault)
	for i := range grid {
		grid[i] = cell{ch: ' ', fg: foreground, bg: frame.Background}
	}

	at := func(x, y int) *cell {
		if x < 0 || y < 0 || x >= w || y >= h {
			return nil
		}
		return &grid[y*w+x]
	}

	fillRect := func(cmd render.Command) {
		x0, y0 := int(cmd.X), int(cmd.Y)
		x1, y1 := int(cmd.X+cmd.W), int(cmd.Y+cmd.H)
		alpha := float64(cmd.Color.A()) / 255
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if c := at(x, y); c != nil {
					c.bg = c.bg.Blend(cmd.Color.WithAlpha(255), alpha)
				}
			}
		}
	}

	putText := func(cmd render.Command) {
		x := int(cmd.X)
		y := int(cmd.Y)
		gr := uniseg.NewGraphemes(cmd.Text)
		for gr.Next() {
			cluster := gr.Str()
			width := runewidth.StringWidth(cluster)
			if c := at(x, y); c != nil {
				runes := gr.Runes()
				c.ch = runes[0]
				c.fg = cmd.Color
			}
			// Wide clusters blank their continuation cell.
			for i := 1; i < width; i++ {
				if c := at(x+i, y); c != nil {
					c.ch = 0
				}
			}
			x += width
		}
	}

	for _, cmd := range frame.Commands {
		switch cmd.Op {
		case render.OpRectFill:
			fillRect(cmd)
		case render.OpRectOutline:
			// No sub-cell strokes on a terminal; the fill carries the
			// current-line emphasis.
		case render.OpText:
			putText(cmd)
		case render.OpTabArrow:
			if c := at(int(cmd.X), int(cmd.Y)); c != nil {
				c.ch = '→'
				c.fg = cmd.Color.Darken(0.3)
			}
		case render.OpSpaceDot:
			if c := at(int(cmd.X), int(cmd.Y)); c != nil {
				c.ch = '·'
				c.fg = cmd.Color.Darken(0.3)
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid[y*w+x]
			if c.ch == 0 {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(toTcell(c.fg)).
				Background(toTcell(c.bg))
			screen.SetContent(x, y, c.ch, nil, style)
		}
	}
}

func toTcell(c theme.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// drawStatusBar renders the single status line under the buffer area.
func (a *App) drawStatusBar(width, y int) {
	cursor := a.editor.CursorPosition()

	name := a.filePath
	if name == "" {
		name = "[scratch]"
	}
	flag := ""
	if a.dirty {
		flag = " [+]"
	}
	if a.editor.IsReadOnly() {
		flag += " [ro]"
	}
	mode := "INS"
	if a.editor.IsOverwrite() {
		mode = "OVR"
	}

	left := fmt.Sprintf(" %s%s  %s", name, flag, a.statusMsg)
	right := fmt.Sprintf("%d errors  %d:%d %s ",
		len(a.editor.ErrorMarkers()), cursor.Line+1, cursor.Column+1, mode)

	style := tcell.StyleDefault.
		Foreground(toTcell(a.palette.Get(editor.TagDefault))).
		Background(toTcell(a.palette.Get(editor.TagBackground))).
		Reverse(true)

	col := 0
	for _, r := range left {
		if col >= width {
			break
		}
		screenSet(a.screen, col, y, r, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < width-len(right); col++ {
		screenSet(a.screen, col, y, ' ', style)
	}
	for _, r := range right {
		if col >= width {
			break
		}
		screenSet(a.screen, col, y, r, style)
		col += runewidth.RuneWidth(r)
	}
}

func screenSet(s tcell.Screen, x, y int, r rune, style tcell.Style) {
	s.SetContent(x, y, r, nil, style)
}
