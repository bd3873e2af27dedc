// Package solution synthesizes the autopilot input track: a deterministic,
// replayable stream of key states that drives the non-player ghost. A phase
// based stochastic generator produces plausible key activity, and a fixed
// size ring buffer exposes a window of it indexed by tick offset.
package solution

import (
	"math/rand"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// generatorSeed is compiled in on purpose: the ghost must replay identically
// across runs, so the generator never takes an external seed.
const generatorSeed int64 = 0x5eedf00d

// phase is the stochastic regime the generator is currently in.
type phase uint8

const (
	phasePause    phase = iota // no new key activity
	phaseLowFreq               // occasional single press or release-all
	phaseHighFreq              // bursts of rapid overlapping key activity
)

// Phase weights out of 100 and the countdown range between phase changes.
const (
	pauseWeight   = 10
	lowFreqWeight = 30

	phaseTicksMin = 50
	phaseTicksMax = 100 // exclusive
)

func samplePhase(rng *rand.Rand) phase {
	switch n := rng.Intn(100); {
	case n < pauseWeight:
		return phasePause
	case n < pauseWeight+lowFreqWeight:
		return phaseLowFreq
	default:
		return phaseHighFreq
	}
}

// generator produces one Keys value per tick. The key state carries over
// between ticks; each tick only mutates it according to the current phase.
type generator struct {
	keys          core.Keys
	phase         phase
	phaseTimeLeft int
	rng           *rand.Rand
}

func newGenerator() generator {
	return generator{
		phase: phaseLowFreq,
		rng:   rand.New(rand.NewSource(generatorSeed)),
	}
}

func (g *generator) randomKey() core.Key {
	return core.KeyFromIndex(g.rng.Intn(core.KeyCount))
}

// next advances the phase countdown, expires the previous tick's just-pressed
// bits, applies the current phase's activity, and returns the resulting state.
func (g *generator) next() core.Keys {
	if g.phaseTimeLeft == 0 {
		g.phase = samplePhase(g.rng)
		g.phaseTimeLeft = phaseTicksMin + g.rng.Intn(phaseTicksMax-phaseTicksMin)
	} else {
		g.phaseTimeLeft--
	}

	g.keys.Update()

	switch g.phase {
	case phasePause:
		// Quiet regime: hold whatever is currently pressed.

	case phaseLowFreq:
		if g.rng.Intn(20) == 0 {
			if g.keys.AnyPressed() {
				g.keys = core.NewKeys() // release everything
			} else {
				g.keys.Press(g.randomKey())
			}
		}

	case phaseHighFreq:
		for i := 0; i < 4; i++ {
			if g.rng.Intn(2) == 0 {
				g.keys.Release(g.randomKey())
			}
		}
		for i := 0; i < 4; i++ {
			if g.rng.Intn(5) == 0 {
				g.keys.Press(g.randomKey())
			}
		}
	}

	return g.keys
}
