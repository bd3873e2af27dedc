package trex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/solution"
	"github.com/vovakirdan/pixel-dash/internal/sprite"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  156,
		ScreenH:  44,
		TickRate: 25,
		Seed:     seed,
	}
}

// runTicks drives the game the way the platform does: step, then expire the
// input frame and advance the solution window.
func runTicks(g *Game, sol *solution.Solution, inputs []core.Keys) core.GameState {
	var state core.GameState
	for _, keys := range inputs {
		ctx := &registry.Context{
			Size:     core.NewSize(156, 44),
			Keys:     keys,
			Solution: sol,
		}
		state = g.Step(ctx).State
		sol.Update()
	}
	return state
}

func jumpEveryN(ticks, n int) []core.Keys {
	inputs := make([]core.Keys, ticks)
	for i := range inputs {
		if i%n == 0 {
			inputs[i].Press(core.KeyAction)
		}
	}
	return inputs
}

func TestGameDeterminism(t *testing.T) {
	inputs := jumpEveryN(400, 15)

	g1 := New()
	g1.Reset(testConfig(12345))
	state1 := runTicks(g1, solution.New(), inputs)

	g2 := New()
	g2.Reset(testConfig(12345))
	state2 := runTicks(g2, solution.New(), inputs)

	if state1 != state2 {
		t.Errorf("determinism failed: %+v vs %+v", state1, state2)
	}
	if len(g1.obstacles) != len(g2.obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(g1.obstacles), len(g2.obstacles))
	}
	for i := range g1.obstacles {
		if g1.obstacles[i] != g2.obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, g1.obstacles[i], g2.obstacles[i])
		}
	}
}

func TestPartialConfigPlaysWithoutPanic(t *testing.T) {
	// A custom config that only tunes the standing jump must leave the
	// crouch arc and spawn ranges playable: the autopilot ghost jumps and
	// crouches on its own, so zeroed durations would blow up a run with no
	// player input at all.
	path := filepath.Join(t.TempDir(), "trex.yaml")
	data := []byte("physics:\n  jump_peak: 30\n  jump_duration: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	defer SetConfigPath("")

	g := New()
	g.Reset(testConfig(21))

	if g.cfg.Physics.JumpPeak != 30 || g.cfg.Physics.JumpDuration != 20 {
		t.Fatalf("custom physics not applied: %+v", g.cfg.Physics)
	}
	if g.cfg.Physics.CrouchJumpDuration <= 0 || g.cfg.Obstacles.SpawnMaxTicks <= g.cfg.Obstacles.SpawnMinTicks {
		t.Fatalf("omitted config sections lost their defaults: %+v", g.cfg)
	}

	// Enough ticks for the ghost to cycle through several generator phases.
	runTicks(g, solution.New(), make([]core.Keys, 2000))
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	runTicks(g, solution.New(), jumpEveryN(120, 10))

	g.Reset(testConfig(42))

	if g.tick != 0 {
		t.Errorf("Reset should clear tick counter, got %d", g.tick)
	}
	if g.over {
		t.Error("Reset should clear game over flag")
	}
	if len(g.obstacles) != 0 {
		t.Errorf("Reset should clear obstacles, got %d", len(g.obstacles))
	}
	if g.player.airborne || g.ghost.airborne {
		t.Error("Reset should ground both characters")
	}
}

func TestJumpPhysics(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	sol := solution.New()

	// A jump press lifts the player off the ground.
	var jump core.Keys
	jump.Press(core.KeyAction)
	runTicks(g, sol, []core.Keys{jump})

	if !g.player.airborne {
		t.Fatal("player should be airborne after jump input")
	}

	// Holding Action again mid-air must not restart the arc.
	arc := g.player.jump
	runTicks(g, sol, []core.Keys{jump})
	if g.player.jump.time != arc.time+1 {
		t.Error("mid-air jump input should not restart the arc")
	}

	// The player lands after exactly the configured duration.
	for i := 0; i < g.cfg.Physics.JumpDuration; i++ {
		runTicks(g, sol, []core.Keys{{}})
	}
	if g.player.airborne {
		t.Error("player should have landed")
	}
}

func TestCrouchJumpIsLowerAndShorter(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	var crouchJump core.Keys
	crouchJump.Press(core.KeyDown)
	crouchJump.Press(core.KeyAction)
	g.player.update(crouchJump, g.cfg.Physics)

	if !g.player.crouching {
		t.Error("Down should set crouching")
	}
	if g.player.jump.peak != g.cfg.Physics.CrouchJumpPeak {
		t.Errorf("crouch jump peak = %d, expected %d", g.player.jump.peak, g.cfg.Physics.CrouchJumpPeak)
	}
	if g.player.jump.duration != g.cfg.Physics.CrouchJumpDuration {
		t.Errorf("crouch jump duration = %d, expected %d", g.player.jump.duration, g.cfg.Physics.CrouchJumpDuration)
	}
}

func TestObstacleLifecycle(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	const width = 156
	velocity := g.cfg.Obstacles.CactusSpeed
	g.obstacles = []obstacle{{position: core.NewPos(width, 0), velocity: velocity}}

	// The obstacle survives exactly until its position crosses the despawn
	// threshold, and is removed on the first tick after that.
	ticks := 0
	for len(g.obstacles) > 0 {
		g.despawnObstacles()
		if len(g.obstacles) > 0 {
			x := g.obstacles[0].position.X
			if x < g.cfg.Obstacles.DespawnX {
				t.Fatalf("obstacle at x=%d should already be despawned", x)
			}
			g.advanceObstacles()
			ticks++
		}
		if ticks > 1000 {
			t.Fatal("obstacle never despawned")
		}
	}

	// ceil((width - threshold) / velocity) advances put it past the
	// threshold; despawn triggers on the following check.
	distance := width - g.cfg.Obstacles.DespawnX
	expected := (distance + velocity - 1) / velocity
	if velocity*expected == distance {
		expected++ // landing exactly on the threshold is not yet past it
	}
	if ticks != expected {
		t.Errorf("despawned after %d advances, expected %d", ticks, expected)
	}
}

func TestSpawnGracePeriodForcesGroundObstacles(t *testing.T) {
	g := New()
	g.Reset(testConfig(99))
	size := core.NewSize(156, 44)

	for i := 0; i < 50; i++ {
		g.spawnObstacle(size)
	}
	for _, o := range g.obstacles {
		if o.bird {
			t.Fatal("no bird may spawn during the grace period")
		}
	}

	// Past the grace period birds appear with this seed.
	g.obstacles = nil
	g.tick = g.cfg.Obstacles.GraceTicks
	for i := 0; i < 200; i++ {
		g.spawnObstacle(size)
	}
	birds := 0
	for _, o := range g.obstacles {
		if o.bird {
			birds++
			if o.position.Y < g.cfg.Obstacles.BirdMinY || o.position.Y > g.cfg.Obstacles.BirdMaxY {
				t.Errorf("bird y=%d outside [%d, %d]", o.position.Y, g.cfg.Obstacles.BirdMinY, g.cfg.Obstacles.BirdMaxY)
			}
			if o.velocity < g.cfg.Obstacles.BirdMinSpeed || o.velocity > g.cfg.Obstacles.BirdMaxSpeed {
				t.Errorf("bird velocity=%d outside [%d, %d]", o.velocity, g.cfg.Obstacles.BirdMinSpeed, g.cfg.Obstacles.BirdMaxSpeed)
			}
		}
	}
	if birds == 0 {
		t.Error("expected at least one bird after the grace period")
	}
}

func TestCollisionEmitsGameOverOnce(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))
	g.spawnCooldown = 1_000_000 // keep random spawns out of the test

	// Park a cactus on top of the player.
	g.obstacles = []obstacle{{position: core.NewPos(0, 0), velocity: 0}}

	var logged []string
	ctx := &registry.Context{
		Size:     core.NewSize(156, 44),
		Keys:     core.NewKeys(),
		Solution: solution.New(),
		Logf: func(format string, args ...any) {
			logged = append(logged, format)
		},
	}

	state := g.Step(ctx).State
	if !state.GameOver {
		t.Fatal("overlapping cactus should end the game")
	}
	if len(logged) != 1 {
		t.Fatalf("expected exactly one game-over log line, got %d", len(logged))
	}

	// Further steps are frozen and emit nothing.
	state = g.Step(ctx).State
	if !state.GameOver {
		t.Error("game should stay over")
	}
	if len(logged) != 1 {
		t.Errorf("frozen game must not log again, got %d lines", len(logged))
	}
}

func TestGhostForecastMatchesReplay(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	sol := solution.New()

	// Warm the ghost up so it is mid-flight somewhere interesting.
	runTicks(g, sol, make([]core.Keys, 40))

	const ahead = 16
	forecast := g.ghostAt(sol, ahead)

	// Live-advance the ghost the same number of ticks: after each window
	// shift, offset 0 is what the forecast read at offsets 1..ahead.
	live := g.ghost
	for i := 0; i < ahead; i++ {
		sol.Update()
		live.update(sol.Keys(0), g.cfg.Physics)
	}

	if live != forecast {
		t.Errorf("forecast %+v diverged from live replay %+v", forecast, live)
	}
}

func TestRenderDrawsPlayerAndObstacles(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))
	g.obstacles = []obstacle{{position: core.NewPos(60, 0), velocity: 3}}

	canvas := sprite.NewCanvas(core.NewSize(156, 44))
	canvas.SetOrigin(core.NewPos(20, 43))
	g.Render(canvas)

	lit := 0
	for y := 0; y < 44; y++ {
		for x := 0; x < 156; x++ {
			if canvas.At(x, y) != core.ColorNone {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("render should light pixels for the player and obstacle")
	}
}
