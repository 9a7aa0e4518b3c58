package main

import (
	"math"
	"sync"
)

// Engine computes field vectors and traces field lines for a charge set. It
// holds only tunables and the canvas bounds; every query is pure, so an
// Engine is safe to share between goroutines.
type Engine struct {
	Params        Params
	Width, Height float64
}

// NewEngine creates an engine for a width×height canvas.
func NewEngine(width, height float64, params Params) *Engine {
	return &Engine{Params: params, Width: width, Height: height}
}

// RecomputeFieldLines traces Density seeds around every charge and returns
// the surviving lines. Seeds sit on the ChargeRadius circle at even angular
// offsets; positive charges trace forward (+1, lines emanate), negative
// charges trace backward (-1, lines converge). Traces share no mutable
// state, so each charge's fan runs on its own goroutine, writing into a
// pre-sized slice to keep the output order deterministic.
func (e *Engine) RecomputeFieldLines(charges []Charge) []FieldLine {
	p := e.Params
	traced := make([]FieldLine, len(charges)*p.Density)

	var wg sync.WaitGroup
	for ci, c := range charges {
		wg.Add(1)
		go func(ci int, c Charge) {
			defer wg.Done()
			dir := 1.0
			if c.Q < 0 {
				dir = -1.0
			}
			for i := 0; i < p.Density; i++ {
				angle := 2 * math.Pi * float64(i) / float64(p.Density)
				seed := Vec2{
					X: c.Pos.X + p.ChargeRadius*math.Cos(angle),
					Y: c.Pos.Y + p.ChargeRadius*math.Sin(angle),
				}
				traced[ci*p.Density+i] = e.Trace(seed, dir, charges)
			}
		}(ci, c)
	}
	wg.Wait()

	// Degenerate traces (a seed adjacent to an opposite charge, or to
	// nothing) carry no information worth drawing.
	lines := make([]FieldLine, 0, len(traced))
	for _, l := range traced {
		if len(l.Points) >= p.MinLinePoints {
			lines = append(lines, l)
		}
	}
	return lines
}
