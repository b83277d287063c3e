// Package tui runs the terminal front-end: it feeds key and mouse
// events into the editor and executes the render frames on a tcell
// screen.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dlxed/dlxed/internal/config"
	"github.com/dlxed/dlxed/internal/editor"
	"github.com/dlxed/dlxed/internal/event"
	"github.com/dlxed/dlxed/internal/input"
	"github.com/dlxed/dlxed/internal/logger"
	"github.com/dlxed/dlxed/internal/render"
	"github.com/dlxed/dlxed/internal/theme"
)

// App owns the terminal session and the per-frame loop.
type App struct {
	screen  tcell.Screen
	editor  *editor.Editor
	palette theme.Palette
	metrics render.CellMetrics
	blinker render.Blinker

	filePath  string
	statusMsg string
	dirty     bool

	firstLine int
	mouseDown bool
	mouseX    int
	mouseY    int
	quit      bool
}

// New prepares the terminal. The caller must call Run, which restores
// the terminal on exit.
func New(ed *editor.Editor, palette theme.Palette, events *event.Manager, filePath string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()

	app := &App{
		screen:   screen,
		editor:   ed,
		palette:  palette,
		filePath: filePath,
	}

	if events != nil {
		events.Subscribe(event.TypeTextChanged, func(event.Event) bool {
			app.dirty = true
			return false
		})
	}

	return app, nil
}

// Run drives the event loop until quit.
func (a *App) Run() error {
	defer a.screen.Fini()

	// Wake the loop for cursor blinking.
	ticker := time.NewTicker(config.CursorBlinkOn / 2)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	for !a.quit {
		a.draw()

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			// Blink tick; redraw happens at loop top.
		case nil:
			return nil
		}
	}
	return nil
}

// viewHeight is the buffer area height, excluding the status bar.
func (a *App) viewHeight() int {
	_, h := a.screen.Size()
	h -= config.StatusBarHeight
	if h < 0 {
		h = 0
	}
	return h
}

func (a *App) pageSize() int {
	n := a.viewHeight() - config.PageOverlap
	if n < 1 {
		n = 1
	}
	return n
}

func (a *App) handleKey(ev *tcell.EventKey) {
	ke := input.Translate(ev)
	a.blinker.Reset(time.Now())

	switch ke.Action {
	case input.ActionQuit:
		a.quit = true
	case input.ActionSave:
		a.save()
	case input.ActionUndo:
		a.editor.Undo(1)
	case input.ActionRedo:
		a.editor.Redo(1)
	case input.ActionCopy:
		a.editor.Copy()
	case input.ActionCut:
		a.editor.Cut()
	case input.ActionPaste:
		a.editor.Paste()
	case input.ActionSelectAll:
		a.editor.SelectAll()
	case input.ActionMoveUp:
		a.editor.MoveUp(1, ke.Shift)
	case input.ActionMoveDown:
		a.editor.MoveDown(1, ke.Shift)
	case input.ActionMoveLeft:
		a.editor.MoveLeft(1, ke.Shift, ke.Ctrl)
	case input.ActionMoveRight:
		a.editor.MoveRight(1, ke.Shift, ke.Ctrl)
	case input.ActionPageUp:
		a.editor.MoveUp(a.pageSize(), ke.Shift)
	case input.ActionPageDown:
		a.editor.MoveDown(a.pageSize(), ke.Shift)
	case input.ActionMoveTop:
		a.editor.MoveTop(ke.Shift)
	case input.ActionMoveBottom:
		a.editor.MoveBottom(ke.Shift)
	case input.ActionMoveHome:
		a.editor.MoveHome(ke.Shift)
	case input.ActionMoveEnd:
		a.editor.MoveEnd(ke.Shift)
	case input.ActionBackspace:
		a.editor.Backspace()
	case input.ActionDelete:
		a.editor.Delete()
	case input.ActionToggleOverwrite:
		a.editor.ToggleOverwrite()
	case input.ActionEnter:
		a.editor.EnterCharacter('\n', ke.Shift)
	case input.ActionTab:
		a.editor.EnterCharacter('\t', ke.Shift)
	case input.ActionChar:
		a.editor.EnterCharacter(ke.Rune, ke.Shift)
	}

	a.scrollToCursor()
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.mouseX, a.mouseY = x, y
	gutter := int(render.GutterWidth(a.editor.TotalLines(), a.metrics))
	localX := float64(x - gutter)
	localY := float64(y + a.firstLine)

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.firstLine -= 3
		if a.firstLine < 0 {
			a.firstLine = 0
		}
	case ev.Buttons()&tcell.WheelDown != 0:
		a.firstLine += 3
		if max := a.editor.TotalLines() - 1; a.firstLine > max {
			a.firstLine = max
		}
	case ev.Buttons()&tcell.Button1 != 0:
		ctrl := ev.Modifiers()&tcell.ModCtrl != 0
		if x < gutter && !a.mouseDown {
			// Gutter click toggles a breakpoint.
			line := y + a.firstLine + 1
			if line <= a.editor.TotalLines() {
				on := a.editor.ToggleBreakpoint(line)
				logger.Debugf("tui: breakpoint line %d -> %t", line, on)
			}
			a.mouseDown = true
			return
		}
		if a.mouseDown {
			a.editor.HandleMouseDrag(localX, localY, a.metrics)
		} else {
			a.editor.HandleMouseDown(localX, localY, time.Now(), ctrl, a.metrics)
			a.mouseDown = true
		}
		a.scrollToCursor()
	default:
		a.mouseDown = false
	}
}

// scrollToCursor keeps the cursor inside the visible line range.
func (a *App) scrollToCursor() {
	height := a.viewHeight()
	if height <= 0 {
		return
	}
	cursor := a.editor.CursorPosition()
	if cursor.Line < a.firstLine {
		a.firstLine = cursor.Line
	} else if cursor.Line >= a.firstLine+height {
		a.firstLine = cursor.Line - height + 1
	}
}

func (a *App) save() {
	if a.filePath == "" {
		a.statusMsg = "no file to save"
		return
	}
	if err := os.WriteFile(a.filePath, []byte(a.editor.Text()), 0o644); err != nil {
		a.statusMsg = fmt.Sprintf("save failed: %v", err)
		logger.Errorf("tui: save failed: %v", err)
		return
	}
	a.dirty = false
	a.statusMsg = fmt.Sprintf("saved %s", a.filePath)
	logger.Infof("tui: saved %s", a.filePath)
}

func (a *App) draw() {
	// The render pass is the re-tokenization trigger: all mutations of
	// this frame are visible to the tokenizer here.
	a.editor.Retokenize()

	w, _ := a.screen.Size()
	height := a.viewHeight()

	frame := render.Build(a.editor, &a.palette, a.metrics, render.Viewport{
		FirstLine: a.firstLine,
		Height:    height,
		Width:     float64(w),
	}, &a.blinker, render.Options{
		Focused:    true,
		Now:        time.Now(),
		MouseValid: true,
		MouseX:     float64(a.mouseX),
		MouseY:     float64(a.mouseY),
	})

	a.screen.Clear()
	executeFrame(a.screen, &frame, a.palette)

	// Hovering an error band surfaces its message on the status line.
	status := a.statusMsg
	if frame.Tooltip != nil {
		a.statusMsg = fmt.Sprintf("line %d: %s", frame.Tooltip.Line, frame.Tooltip.Message)
	}
	a.drawStatusBar(w, height)
	a.statusMsg = status

	a.screen.Show()
}
