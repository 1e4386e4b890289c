package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/santa-catch/internal/core"
)

// maxLaneKeys is the number of lanes reachable from the digit row.
const maxLaneKeys = 9

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	lanes int
}

// NewKeyMapper creates a key mapper for a field with the given lane count.
func NewKeyMapper(lanes int) *KeyMapper {
	return &KeyMapper{lanes: min(lanes, maxLaneKeys)}
}

// MapKey translates a key message to a game action.
// For ActionSelectLane the zero-based lane is returned as well.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, lane int) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, 0
	case "+", "=":
		return core.ActionConfirm, 0
	case " ", "space":
		return core.ActionRestart, 0
	case "esc":
		return core.ActionBack, 0
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		lane := int(key[0] - '1')
		if lane < km.lanes {
			return core.ActionSelectLane, lane
		}
	}

	return core.ActionNone, 0
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns the mapped action so the caller can react to quit and back.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action, lane := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionSelectLane:
		frame.SelectLane(lane)
	default:
		frame.Set(action)
	}
	return action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space", "+":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
