// Package input translates terminal key events into editor actions.
package input

import "github.com/gdamore/tcell/v2"

// Action is a resolved editor command.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveTop
	ActionMoveBottom
	ActionMoveHome
	ActionMoveEnd
	ActionPageUp
	ActionPageDown
	ActionBackspace
	ActionDelete
	ActionToggleOverwrite
	ActionEnter
	ActionTab
	ActionChar
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll
	ActionSave
	ActionQuit
)

// KeyEvent is a translated key press.
type KeyEvent struct {
	Action Action
	Rune   rune
	Shift  bool
	Ctrl   bool
}

// Translate maps a tcell key event onto an editor action following the
// conventional bindings: Ctrl+Z/Y undo/redo, Ctrl+C/X/V clipboard,
// Ctrl+A select-all, arrows with Shift extending and Ctrl word-wise.
func Translate(ev *tcell.EventKey) KeyEvent {
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	alt := ev.Modifiers()&tcell.ModAlt != 0

	out := KeyEvent{Shift: shift, Ctrl: ctrl}

	switch ev.Key() {
	case tcell.KeyCtrlZ:
		out.Action = ActionUndo
	case tcell.KeyCtrlY:
		out.Action = ActionRedo
	case tcell.KeyCtrlC:
		out.Action = ActionCopy
	case tcell.KeyCtrlX:
		out.Action = ActionCut
	case tcell.KeyCtrlV:
		out.Action = ActionPaste
	case tcell.KeyCtrlA:
		out.Action = ActionSelectAll
	case tcell.KeyCtrlS:
		out.Action = ActionSave
	case tcell.KeyCtrlQ, tcell.KeyEscape:
		out.Action = ActionQuit
	case tcell.KeyUp:
		out.Action = ActionMoveUp
	case tcell.KeyDown:
		out.Action = ActionMoveDown
	case tcell.KeyLeft:
		out.Action = ActionMoveLeft
	case tcell.KeyRight:
		out.Action = ActionMoveRight
	case tcell.KeyPgUp:
		out.Action = ActionPageUp
	case tcell.KeyPgDn:
		out.Action = ActionPageDown
	case tcell.KeyHome:
		if ctrl {
			out.Action = ActionMoveTop
		} else {
			out.Action = ActionMoveHome
		}
	case tcell.KeyEnd:
		if ctrl {
			out.Action = ActionMoveBottom
		} else {
			out.Action = ActionMoveEnd
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if alt {
			out.Action = ActionUndo
		} else {
			out.Action = ActionBackspace
		}
	case tcell.KeyDelete:
		if shift {
			out.Action = ActionCut
		} else {
			out.Action = ActionDelete
		}
	case tcell.KeyInsert:
		switch {
		case ctrl:
			out.Action = ActionCopy
		case shift:
			out.Action = ActionPaste
		default:
			out.Action = ActionToggleOverwrite
		}
	case tcell.KeyEnter:
		out.Action = ActionEnter
	case tcell.KeyTab, tcell.KeyBacktab:
		out.Action = ActionTab
		if ev.Key() == tcell.KeyBacktab {
			out.Shift = true
		}
	case tcell.KeyRune:
		r := ev.Rune()
		// Filter control characters; newline arrives as KeyEnter.
		if r >= 32 {
			out.Action = ActionChar
			out.Rune = r
		}
	}

	return out
}
