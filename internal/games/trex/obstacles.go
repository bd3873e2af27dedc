package trex

import (
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/sprite"
)

// obstacle is one scrolling hazard: a cactus variant on the ground or a bird
// at altitude. Position is the left edge in game coordinates (y up, feet at
// the anchor); velocity is pixels per tick toward the player. The velocity is
// fixed at spawn time and never changes.
type obstacle struct {
	position core.Pos
	velocity int
	bird     bool
	variant  int // cactus variant index, unused for birds
}

// image selects the obstacle's bitmap for a frame counter. Birds flap faster
// the faster they fly.
func (o obstacle) image(frame int) sprite.Image {
	if o.bird {
		return birdFlying.Frame(o.velocity * frame / 16)
	}
	return cactusImages[o.variant]
}

func (o obstacle) sprite(frame int) sprite.Sprite {
	return sprite.Sprite{
		Image:    o.image(frame),
		Position: o.position,
		Origin:   sprite.MinMax(),
	}
}

// despawnObstacles removes the front obstacle once its position has scrolled
// past the off-screen threshold. Only the front is ever checked: spawn order
// matches position order because obstacles never overtake each other, so the
// oldest obstacle always exits first.
func (g *Game) despawnObstacles() {
	if len(g.obstacles) == 0 {
		return
	}
	if g.obstacles[0].position.X < g.cfg.Obstacles.DespawnX {
		g.obstacles = g.obstacles[1:]
	}
}

// spawnObstacles decrements the spawn countdown and, at zero, redraws it and
// appends one new obstacle at the trailing edge of the viewport.
func (g *Game) spawnObstacles(size core.Size) {
	if g.spawnCooldown == 0 {
		o := g.cfg.Obstacles
		g.spawnCooldown = o.SpawnMinTicks + g.rng.Intn(o.SpawnMaxTicks-o.SpawnMinTicks)
		g.spawnObstacle(size)
	}

	g.spawnCooldown--
}

// spawnObstacle picks the obstacle type: a weighted coin-flip favors ground
// obstacles 3-to-1, and the opening grace period forces them so a bird can
// never appear before the player has found the jump key.
func (g *Game) spawnObstacle(size core.Size) {
	spawnCactus := g.rng.Intn(4) != 0 || g.tick < g.cfg.Obstacles.GraceTicks

	if spawnCactus {
		g.spawnCactus(size)
	} else {
		g.spawnBird(size)
	}
}

func (g *Game) spawnCactus(size core.Size) {
	g.obstacles = append(g.obstacles, obstacle{
		position: core.NewPos(size.Width, 0),
		velocity: g.cfg.Obstacles.CactusSpeed,
		variant:  g.rng.Intn(len(cactusImages)),
	})
}

func (g *Game) spawnBird(size core.Size) {
	o := g.cfg.Obstacles

	g.obstacles = append(g.obstacles, obstacle{
		position: core.NewPos(size.Width, o.BirdMinY+g.rng.Intn(o.BirdMaxY-o.BirdMinY+1)),
		velocity: o.BirdMinSpeed + g.rng.Intn(o.BirdMaxSpeed-o.BirdMinSpeed+1),
		bird:     true,
	})
}

// advanceObstacles moves every live obstacle left by its own velocity.
func (g *Game) advanceObstacles() {
	for i := range g.obstacles {
		g.obstacles[i].position.X -= g.obstacles[i].velocity
	}
}
