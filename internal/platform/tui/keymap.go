package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumper/internal/core"
)

// MenuAction is what a key does in the level picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionRuns
	MenuActionQuit
)

// KeyMapper translates Bubble Tea key strings to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns the default bindings: arrows, WASD and vim keys move.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
	}

	bindGame := func(a core.Action, keys ...string) {
		for _, k := range keys {
			km.game[k] = a
		}
	}
	bindGame(core.ActionQuit, "ctrl+c", "q")
	bindGame(core.ActionLeft, "left", "a", "h")
	bindGame(core.ActionRight, "right", "d", "l")
	bindGame(core.ActionUp, "up", "w", "k")
	bindGame(core.ActionDown, "down", "s", "j")
	bindGame(core.ActionConfirm, "enter")
	bindGame(core.ActionBack, "b")
	bindGame(core.ActionPause, "p", "esc")
	bindGame(core.ActionRestart, "r")

	bindMenu := func(a MenuAction, keys ...string) {
		for _, k := range keys {
			km.menu[k] = a
		}
	}
	bindMenu(MenuActionQuit, "ctrl+c", "q")
	bindMenu(MenuActionUp, "up", "w", "k")
	bindMenu(MenuActionDown, "down", "s", "j")
	bindMenu(MenuActionSelect, "enter", " ")
	bindMenu(MenuActionBack, "b", "esc")
	bindMenu(MenuActionRuns, "tab")

	return km
}

// MapKey returns the game action for a key and whether it ends the program.
// Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToMenuAction returns the menu action for a key.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
