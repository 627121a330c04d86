package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/glyphcrawl/internal/entity"
)

// ActionKind tells what a key press asks for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionQuit
)

// Action is one player request.
type Action struct {
	Kind ActionKind
	Dir  entity.Direction
}

// Move returns a move action in the given direction.
func Move(d entity.Direction) Action {
	return Action{Kind: ActionMove, Dir: d}
}

// ActionForKey maps a key event to an action. Unrecognized keys are a no-op.
func ActionForKey(ev *tcell.EventKey) Action {
	return actionFor(ev.Key(), ev.Rune())
}

func actionFor(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyUp:
		return Move(entity.Up)
	case tcell.KeyDown:
		return Move(entity.Down)
	case tcell.KeyLeft:
		return Move(entity.Left)
	case tcell.KeyRight:
		return Move(entity.Right)
	case tcell.KeyRune:
		return actionForRune(r)
	}
	return Action{}
}

func actionForRune(r rune) Action {
	if r == 'q' || r == 'Q' {
		return Action{Kind: ActionQuit}
	}
	if d, ok := entity.DirectionForRune(r); ok {
		return Move(d)
	}
	return Action{}
}
