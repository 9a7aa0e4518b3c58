package main

import (
	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"
)

// Drift constants
const (
	DriftSpeed     = 0.002 // noise-time advance per tick
	DriftAmplitude = 120.0 // max displacement from the anchor position
	DriftMargin    = 40.0  // keeps charge bodies inside the canvas
)

// Drifter wanders charges along smooth Perlin paths around their anchor
// positions. Each charge samples its own noise row so the paths stay
// decorrelated. The drifter only moves charges between recomputation passes;
// it never simulates forces on them.
type Drifter struct {
	noise   *perlin.Perlin
	anchors map[uuid.UUID]Vec2
	t       float64
}

// NewDrifter creates a drifter with its own noise source.
func NewDrifter(seed int64) *Drifter {
	return &Drifter{
		noise:   perlin.NewPerlin(2, 2, 3, seed),
		anchors: make(map[uuid.UUID]Vec2),
	}
}

// Step advances the noise time and moves every charge around its anchor,
// clamped to the canvas. It reports whether anything moved so the caller can
// mark the field dirty.
func (d *Drifter) Step(charges []Charge, width, height float64) bool {
	if len(charges) == 0 {
		return false
	}
	d.t += DriftSpeed
	for i := range charges {
		c := &charges[i]
		anchor, ok := d.anchors[c.ID]
		if !ok {
			anchor = c.Pos
			d.anchors[c.ID] = anchor
		}
		row := float64(i) * 17.31
		c.Pos = Vec2{
			X: clamp(anchor.X+DriftAmplitude*d.noise.Noise2D(d.t, row), DriftMargin, width-DriftMargin),
			Y: clamp(anchor.Y+DriftAmplitude*d.noise.Noise2D(d.t, row+7.77), DriftMargin, height-DriftMargin),
		}
	}
	return true
}

// Reset forgets the anchors, e.g. after a manual drag or a scenario load, so
// drifting resumes from the charges' current positions.
func (d *Drifter) Reset() {
	d.anchors = make(map[uuid.UUID]Vec2)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
