package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/sprite"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperHoldExpiry(t *testing.T) {
	km := NewKeyMapper(25) // holdFor = 5 ticks
	keys := core.NewKeys()

	if cmd := km.Apply(keyMsg("s"), &keys); cmd != CmdNone {
		t.Fatalf("game key reported as command %v", cmd)
	}
	if !keys.Pressing(core.KeyDown) {
		t.Fatal("Down should be held after keypress")
	}

	// The hold survives short of the expiry window.
	for i := 0; i < 4; i++ {
		keys.Update()
		km.Tick(&keys)
	}
	if !keys.Pressing(core.KeyDown) {
		t.Error("hold released too early")
	}

	// One more tick expires it.
	keys.Update()
	km.Tick(&keys)
	if keys.Pressing(core.KeyDown) {
		t.Error("hold should have expired")
	}
}

func TestKeyMapperRepeatExtendsHold(t *testing.T) {
	km := NewKeyMapper(25)
	keys := core.NewKeys()

	km.Apply(keyMsg("s"), &keys)
	for i := 0; i < 4; i++ {
		keys.Update()
		km.Tick(&keys)
	}

	// Auto-repeat re-arms the countdown.
	km.Apply(keyMsg("s"), &keys)
	for i := 0; i < 4; i++ {
		keys.Update()
		km.Tick(&keys)
		if !keys.Pressing(core.KeyDown) {
			t.Fatalf("repeat should keep the key held, released after %d ticks", i+1)
		}
	}
}

func TestKeyMapperResetDisarmsHolds(t *testing.T) {
	km := NewKeyMapper(25)
	keys := core.NewKeys()

	// Arm a hold, then throw the input state away as a restart does.
	km.Apply(keyMsg("s"), &keys)
	km.Reset()
	keys = core.NewKeys()

	// The fresh run presses the same key; the old countdown must not
	// release it early.
	keys.Press(core.KeyDown)
	for i := 0; i < 10; i++ {
		keys.Update()
		km.Tick(&keys)
		if !keys.Pressing(core.KeyDown) {
			t.Fatalf("stale hold released the key after %d ticks", i+1)
		}
	}
}

func TestKeyMapperCommands(t *testing.T) {
	km := NewKeyMapper(25)
	keys := core.NewKeys()

	tests := []struct {
		key  string
		want Command
	}{
		{"q", CmdQuit},
		{"p", CmdPause},
		{"r", CmdRestart},
	}
	for _, tc := range tests {
		if got := km.Apply(keyMsg(tc.key), &keys); got != tc.want {
			t.Errorf("Apply(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
	if keys.AnyPressed() {
		t.Error("commands must not leak into the input state")
	}
}

func TestKeyMapperJumpAliases(t *testing.T) {
	km := NewKeyMapper(25)

	for _, alias := range []string{" ", "w", "up"} {
		var msg tea.KeyMsg
		if alias == "up" {
			msg = tea.KeyMsg{Type: tea.KeyUp}
		} else {
			msg = keyMsg(alias)
		}
		key, ok := km.MapKey(msg)
		if !ok || key != core.KeyAction {
			t.Errorf("MapKey(%q) = (%v, %v), want KeyAction", alias, key, ok)
		}
	}
}

func TestLogRingEviction(t *testing.T) {
	r := NewLogRing(3)
	for i := 0; i < 5; i++ {
		r.Append("line %d", i)
	}

	lines := r.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 retained lines, got %d", len(lines))
	}
	if lines[0] != "line 2" || lines[2] != "line 4" {
		t.Errorf("wrong retention window: %v", lines)
	}
	if r.Last() != "line 4" {
		t.Errorf("Last() = %q", r.Last())
	}
}

func TestPixelViewport(t *testing.T) {
	w, h := PixelViewport(80, 24)
	if w != 80 {
		t.Errorf("width = %d, want 80", w)
	}
	// 24 rows minus header and footer, doubled.
	if h != 44 {
		t.Errorf("height = %d, want 44", h)
	}
}

func TestPlainCanvasHalfBlocks(t *testing.T) {
	canvas := sprite.NewCanvas(core.NewSize(4, 4))
	canvas.Paint(0, 0, core.ColorRed)   // top pixel of row 0
	canvas.Paint(1, 1, core.ColorGreen) // bottom pixel of row 0
	canvas.Paint(2, 0, core.ColorBlue)
	canvas.Paint(2, 1, core.ColorBlue) // full cell

	out := PlainCanvas(canvas)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected 2 character rows, got %d", len(rows))
	}
	if rows[0] != "▀▄▀ " {
		t.Errorf("row 0 = %q", rows[0])
	}
	if rows[1] != "    " {
		t.Errorf("row 1 = %q", rows[1])
	}
}
