package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// Command is a platform-level control derived from input, as opposed to a
// game key that flows into the input state.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
	CmdRestart
	CmdScreenshot
)

// KeyMapper translates Bubble Tea key messages into the bitmask input state.
//
// Terminals only report key-down events, never releases, so holds are
// emulated: every mapped keypress arms a per-key countdown and the key is
// released when the countdown expires without a repeat. Terminal auto-repeat
// keeps the countdown topped up while the physical key stays down.
type KeyMapper struct {
	holdFor int
	holds   [core.KeyCount]int
}

// NewKeyMapper creates a key mapper tuned to the simulation tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	// A fifth of a second outlasts typical auto-repeat gaps.
	holdFor := tickRate / 5
	if holdFor < 2 {
		holdFor = 2
	}
	return &KeyMapper{holdFor: holdFor}
}

// MapKey translates a key message to a logical game key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.String() {
	case " ", "enter", "up", "w":
		return core.KeyAction, true
	case "down", "s":
		return core.KeyDown, true
	case "left", "a":
		return core.KeyLeft, true
	case "right", "d":
		return core.KeyRight, true
	case "k":
		return core.KeyUp, true
	}
	return 0, false
}

// MapCommand translates a key message to a platform command.
func (km *KeyMapper) MapCommand(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return CmdQuit
	case "p":
		return CmdPause
	case "r":
		return CmdRestart
	case "ctrl+s":
		return CmdScreenshot
	}
	return CmdNone
}

// Apply feeds a key message into the input state and arms the hold countdown.
// Returns the platform command, if the key was one.
func (km *KeyMapper) Apply(msg tea.KeyMsg, keys *core.Keys) Command {
	if cmd := km.MapCommand(msg); cmd != CmdNone {
		return cmd
	}

	if key, ok := km.MapKey(msg); ok {
		keys.Press(key)
		km.holds[key] = km.holdFor
	}

	return CmdNone
}

// Reset disarms every hold countdown. Called when the input state is thrown
// away wholesale, so no stale countdown fires a release into a fresh run.
func (km *KeyMapper) Reset() {
	km.holds = [core.KeyCount]int{}
}

// Tick ages every armed hold by one simulation tick and releases keys whose
// countdown ran out. Called once per tick, after the game consumed the frame.
func (km *KeyMapper) Tick(keys *core.Keys) {
	for i := range km.holds {
		if km.holds[i] == 0 {
			continue
		}
		km.holds[i]--
		if km.holds[i] == 0 {
			keys.Release(core.KeyFromIndex(i))
		}
	}
}
