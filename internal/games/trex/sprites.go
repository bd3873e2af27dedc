package trex

import (
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/sprite"
)

// Static bitmap tables. Bit i of each row is column i (least-significant bit
// first), so the rightmost binary digit below is the leftmost pixel on screen.
// These are constant data: never mutated, shared by every game instance.

var trexRunning = sprite.Animation{
	{
		Rows: []uint32{
			0b_0_1_1_1_1_1_1_0_0_0_0_0_0_0,
			0b_1_1_1_1_0_0_1_1_0_0_0_0_0_0,
			0b_1_1_1_1_0_0_1_1_0_0_0_0_0_0,
			0b_1_1_1_1_1_1_1_1_0_0_0_0_0_0,
			0b_0_0_0_0_1_1_1_1_0_0_0_0_0_0,
			0b_0_0_1_1_1_1_1_1_0_0_0_0_0_0,
			0b_0_0_0_0_0_1_1_1_1_0_0_0_0_1,
			0b_0_0_0_1_1_1_1_1_1_1_0_0_1_1,
			0b_0_0_0_1_0_1_1_1_1_1_1_1_1_1,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_1,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_0_0_1_1_1_1_1_1_0_0,
			0b_0_0_0_0_0_0_0_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_0_1_1_0_1_1_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_1_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_0_0_0,
		},
		Width: 14,
		Color: core.ColorRed,
	},
	{
		Rows: []uint32{
			0b_0_1_1_1_1_1_1_0_0_0_0_0_0_0,
			0b_1_1_1_1_0_0_1_1_0_0_0_0_0_0,
			0b_1_1_1_1_0_0_1_1_0_0_0_0_0_0,
			0b_1_1_1_1_1_1_1_1_0_0_0_0_0_0,
			0b_0_0_0_0_1_1_1_1_0_0_0_0_0_0,
			0b_0_0_1_1_1_1_1_1_0_0_0_0_0_0,
			0b_0_0_0_0_0_1_1_1_1_0_0_0_0_1,
			0b_0_0_0_1_1_1_1_1_1_1_0_0_1_1,
			0b_0_0_0_1_0_1_1_1_1_1_1_1_1_1,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_1,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_0_0_1_1_1_1_1_1_0_0,
			0b_0_0_0_0_0_0_0_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_0_0_1_0_0_1_0_0_0,
			0b_0_0_0_0_0_0_0_1_0_1_1_0_0_0,
			0b_0_0_0_0_0_0_1_1_0_0_0_0_0_0,
		},
		Width: 14,
		Color: core.ColorRed,
	},
}

var trexCrouching = sprite.Animation{
	{
		Rows: []uint32{
			0b_0_1_1_1_1_1_1_0_0_0_0_0_0_0_0_0_0_0,
			0b_1_1_1_1_0_0_1_1_0_1_1_1_1_0_0_0_0_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_0_0_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1,
			0b_0_0_0_0_1_1_1_1_1_1_1_1_1_1_1_1_1_1,
			0b_0_0_1_1_1_1_1_0_0_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_0_0_0_0_1_1_1_1_1_1_1_1_0_0,
			0b_0_0_0_0_0_0_0_0_1_0_1_1_0_1_1_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_0_1_0_0_1_1_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_1_1_0_0_0_1_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_0_0_0_0_1_1_0_0,
		},
		Width: 18,
		Color: core.ColorRed,
	},
	{
		Rows: []uint32{
			0b_0_1_1_1_1_1_1_0_0_0_0_0_0_0_0_0_0_0,
			0b_1_1_1_1_0_0_1_1_0_1_1_1_1_0_0_0_0_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_0_0_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1,
			0b_0_0_0_0_1_1_1_1_1_1_1_1_1_1_1_1_1_1,
			0b_0_0_1_1_1_1_1_0_0_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_0_0_0_0_1_1_1_1_1_1_1_1_0_0,
			0b_0_0_0_0_0_0_0_0_1_0_1_1_0_0_1_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_0_1_1_0_0_1_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_0_0_1_0_1_1_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_0_1_1_0_0_0_0_0,
		},
		Width: 18,
		Color: core.ColorRed,
	},
}

var birdFlying = sprite.Animation{
	{
		Rows: []uint32{
			0b_0_0_0_0_0_0_0_0_0_1_1_1_0_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_1_1_0_0_0_0,
			0b_0_0_0_0_0_0_1_1_0_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_1_1_1_0_1_1_0_0_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_0_0_1_1_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_0_0_0_0,
		},
		Width: 17,
		Color: core.ColorBrightCyan,
	},
	{
		Rows: []uint32{
			0b_0_0_0_0_0_0_0_0_0_1_1_1_0_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_1_1_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_0_0_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_0_0_1_1_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_0_0_0_0_0_0_0,
		},
		Width: 17,
		Color: core.ColorBrightCyan,
	},
	{
		Rows: []uint32{
			0b_0_0_0_0_0_0_0_0_0_1_1_1_0_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_1_1_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_0_0_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_0_0_1_1_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_0_0_0_0,
			0b_0_0_0_0_0_1_1_1_0_0_0_0_0_0_0_0_0,
			0b_0_0_0_0_0_0_1_1_0_0_0_0_0_0_0_0_0,
		},
		Width: 17,
		Color: core.ColorBrightCyan,
	},
	{
		Rows: []uint32{
			0b_0_0_0_0_0_0_0_0_0_1_1_1_0_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_1_1_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_1_1_0_0_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_0_0_1_1_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_1_1_1_1_1_1_1_1_1_1_1_1_0_0_0,
			0b_0_0_0_0_0_1_1_1_1_1_1_1_1_0_0_0_0,
			0b_0_0_0_0_0_0_0_0_0_0_0_0_0_0_0_0_0,
		},
		Width: 17,
		Color: core.ColorBrightCyan,
	},
}

// Cactus body shared by all variants; the variants differ in arm detail rows.
var cactusImages = []sprite.Image{
	{
		Rows: []uint32{
			0b_0_0_0_0_0_1_0_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_1_0_0_1_1_1_0_0_0_0,
			0b_1_1_0_0_1_1_1_0_0_1_0,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1,
			0b_0_1_1_1_1_1_1_1_1_1_0,
			0b_0_0_1_1_1_1_1_1_1_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
		},
		Width: 11,
		Color: core.ColorGreen,
	},
	{
		Rows: []uint32{
			0b_0_0_0_0_0_1_0_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_1_0_0_1_1_1_0_0_1_0,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_1_1_1_1_1_0_0_1_1,
			0b_0_1_1_1_1_1_1_1_1_1_1,
			0b_0_0_0_1_1_1_1_1_1_1_0,
			0b_0_0_0_0_1_1_1_1_1_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
		},
		Width: 11,
		Color: core.ColorGreen,
	},
	{
		Rows: []uint32{
			0b_0_0_0_0_0_1_0_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_1_0_0_1_1_1_0_0_0_0,
			0b_1_1_0_0_1_1_1_0_0_0_0,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_0_0_1_1_1_0_1_1_1,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_0_0_1_1_1_0_0_1_1,
			0b_1_1_1_1_1_1_1_1_1_1_1,
			0b_0_1_1_1_1_1_1_1_1_1_0,
			0b_0_0_1_1_1_1_1_1_1_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
			0b_0_0_0_0_1_1_1_0_0_0_0,
		},
		Width: 11,
		Color: core.ColorGreen,
	},
}
