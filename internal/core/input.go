package core

// Key identifies one of the logical game keys. Physical key decoding lives in
// the platform layer; games only ever see these.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyAction // Space/Enter - jump, confirm
)

// KeyCount is the number of logical keys.
const KeyCount = 5

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyAction:
		return "Action"
	default:
		return "Unknown"
	}
}

func (k Key) mask() uint8 {
	return 1 << k
}

// KeyFromIndex maps an index in [0, KeyCount) back to a Key.
// Panics on out-of-range input; callers draw indices from bounded RNG ranges.
func KeyFromIndex(n int) Key {
	if n < 0 || n >= KeyCount {
		panic("core: key index out of range")
	}
	return Key(n)
}

// Keys is the input state for a single simulation tick: which keys are held
// and which transitioned to held this tick. It is a small value type and is
// copied freely.
//
// Pressing reports held OR just-pressed so that a press and release arriving
// within the same tick is still observed by the game.
type Keys struct {
	justPressed uint8
	pressing    uint8
}

// NewKeys creates an input state with no keys active.
func NewKeys() Keys {
	return Keys{}
}

// Press marks the key as held and as freshly pressed this tick.
func (k *Keys) Press(key Key) {
	k.justPressed |= key.mask()
	k.pressing |= key.mask()
}

// Release clears the held bit. The just-pressed bit survives until Update so
// a same-tick press is not lost.
func (k *Keys) Release(key Key) {
	k.pressing &^= key.mask()
}

// Update clears all just-pressed bits. The platform calls this exactly once
// per tick, after game logic has consumed the frame's input.
func (k *Keys) Update() {
	k.justPressed = 0
}

// Pressing reports whether the key is held or was freshly pressed this tick.
func (k Keys) Pressing(key Key) bool {
	return (k.pressing|k.justPressed)&key.mask() != 0
}

// JustPressed reports whether the key transitioned to held this tick.
func (k Keys) JustPressed(key Key) bool {
	return k.justPressed&key.mask() != 0
}

// AnyPressed reports whether any key is active in either mask.
func (k Keys) AnyPressed() bool {
	return k.justPressed != 0 || k.pressing != 0
}
