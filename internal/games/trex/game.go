package trex

import (
	"math/rand"

	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/solution"
	"github.com/vovakirdan/pixel-dash/internal/sprite"
)

// trexState is one runner character: an optional active jump arc (inactive =
// grounded) plus a crouching flag. It is a small value type so the ghost's
// forward re-simulation can copy and advance it freely.
type trexState struct {
	jump      Parabola
	airborne  bool
	crouching bool
}

// update advances one tick of character physics from an input state.
func (t *trexState) update(keys core.Keys, phys config.TrexPhysics) {
	t.crouching = keys.Pressing(core.KeyDown)

	if t.airborne {
		t.jump.Step()
		if t.jump.Finished() {
			t.airborne = false
		}
	}

	if !t.airborne && keys.Pressing(core.KeyAction) {
		peak, duration := phys.JumpPeak, phys.JumpDuration
		if t.crouching {
			peak, duration = phys.CrouchJumpPeak, phys.CrouchJumpDuration
		}
		t.jump = NewParabola(peak, duration)
		t.airborne = true
	}
}

// height returns the character's altitude above the ground in pixels.
func (t trexState) height() int {
	if !t.airborne {
		return 0
	}
	return t.jump.Value()
}

// sprite builds the character's sprite for the given frame counter. The feet
// stay anchored (Max y origin) so crouch frames of a different height keep
// ground contact; grounded running adds a 1-pixel x shuffle.
func (t trexState) sprite(frame int) sprite.Sprite {
	divisor := 4
	if t.airborne {
		divisor = 2
	}

	skin := trexRunning
	if t.crouching {
		skin = trexCrouching
	}

	x := 0
	if !t.airborne {
		x = (frame / divisor) & 1
	}

	return sprite.Sprite{
		Image:    skin.Frame(frame / divisor),
		Position: core.NewPos(x, t.height()),
		Origin:   sprite.MinMax(),
	}
}

// Game is the runner simulation: the human player, the autopilot ghost, and
// the obstacle queue. Obstacles append at the trailing (off-screen right)
// end and expire from the leading end only.
type Game struct {
	player trexState
	ghost  trexState

	obstacles     []obstacle
	spawnCooldown int
	rng           *rand.Rand
	tick          int
	over          bool

	cfg config.TrexConfig
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new T-Rex runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trex"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "T-Rex"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTrex(configPath)
	if err != nil {
		cfg = config.DefaultTrexConfig()
	}
	g.cfg = cfg

	g.player = trexState{}
	g.ghost = trexState{}
	g.obstacles = nil
	g.spawnCooldown = 10
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.over = false
}

// Step advances the simulation by one tick. The order is load-bearing:
// physics first, despawn before spawn, obstacle motion before the collision
// check so the check reflects this tick's positions.
func (g *Game) Step(ctx *registry.Context) core.StepResult {
	if g.over {
		return core.StepResult{State: g.State()}
	}

	g.player.update(ctx.Keys, g.cfg.Physics)
	g.ghost.update(ctx.Solution.Keys(0), g.cfg.Physics)

	g.despawnObstacles()
	g.spawnObstacles(ctx.Size)
	g.advanceObstacles()

	if g.collideAt(g.player, 0) {
		ctx.Log("game over: tick %d", g.tick)
		g.over = true
	}

	g.tick++

	return core.StepResult{State: g.State()}
}

// collideAt tests a character against every live obstacle, dt ticks ahead of
// the current tick (dt=0 is the live collision check). Future obstacle
// positions are extrapolated from their fixed velocities; the character state
// passed in must already be advanced to that tick.
func (g *Game) collideAt(t trexState, dt int) bool {
	character := t.sprite(g.tick + dt)

	for _, o := range g.obstacles {
		o.position.X -= o.velocity * dt
		if o.sprite(g.tick + dt).Collide(character) {
			return true
		}
	}

	return false
}

// ghostAt re-simulates the autopilot ghost t ticks into the future by
// replaying the solution track forward from the ghost's current state.
// Nothing is cached: the result is a pure function of the ghost state and
// the solution window, which keeps determinism trivially checkable.
func (g *Game) ghostAt(sol *solution.Solution, t int) trexState {
	ghost := g.ghost
	for i := 1; i <= t; i++ {
		ghost.update(sol.Keys(i), g.cfg.Physics)
	}
	return ghost
}

// Render draws both characters and every obstacle. The ghost is recolored
// gray so it reads as a shadow, and the player is drawn last so it stays on
// top when the two overlap.
func (g *Game) Render(dst *sprite.Canvas) {
	frame := g.tick

	ghost := g.ghost.sprite(frame)
	ghost.Image.Color = core.ColorGray
	dst.Draw(ghost)

	for _, o := range g.obstacles {
		dst.Draw(o.sprite(frame))
	}

	dst.Draw(g.player.sprite(frame))
}

// State returns the current game state. Score is ticks survived.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.tick,
		GameOver: g.over,
	}
}

// Register the game with the registry
func init() {
	registry.Register("trex", func() registry.Game {
		return New()
	})
}
