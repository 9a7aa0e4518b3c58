package main

import (
	"math"
	"testing"
)

func testEngine() *Engine {
	return NewEngine(1000, 600, DefaultParams())
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestFieldSuperposition(t *testing.T) {
	e := testEngine()
	a := NewCharge(Vec2{X: 300, Y: 300}, 1e-6)
	b := NewCharge(Vec2{X: 700, Y: 300}, -1e-6)

	points := []Vec2{
		{X: 500, Y: 300},
		{X: 100, Y: 100},
		{X: 500, Y: 550},
		{X: 320, Y: 340},
	}
	for _, p := range points {
		both := e.FieldAt(p, []Charge{a, b})
		onlyA := e.FieldAt(p, []Charge{a})
		onlyB := e.FieldAt(p, []Charge{b})
		sum := onlyA.Add(onlyB)
		if !approxEqual(both.X, sum.X, 1e-12) || !approxEqual(both.Y, sum.Y, 1e-12) {
			t.Errorf("FieldAt(%v) = %v, want sum of parts %v", p, both, sum)
		}
	}
}

func TestFieldSingularityExclusion(t *testing.T) {
	e := testEngine()
	a := NewCharge(Vec2{X: 300, Y: 300}, 1e-6)
	b := NewCharge(Vec2{X: 700, Y: 300}, -1e-6)

	// Within 5 units of a, its contribution is skipped entirely: the field
	// must equal b's alone.
	p := Vec2{X: 303, Y: 300}
	got := e.FieldAt(p, []Charge{a, b})
	want := e.FieldAt(p, []Charge{b})
	if got != want {
		t.Errorf("FieldAt inside exclusion radius = %v, want %v (b only)", got, want)
	}

	// Alone, the excluded charge yields a zero field.
	if got := e.FieldAt(p, []Charge{a}); got != (Vec2{}) {
		t.Errorf("FieldAt inside exclusion radius of lone charge = %v, want (0,0)", got)
	}
}

func TestFieldEmptySet(t *testing.T) {
	e := testEngine()
	if got := e.FieldAt(Vec2{X: 500, Y: 300}, nil); got != (Vec2{}) {
		t.Errorf("FieldAt with no charges = %v, want (0,0)", got)
	}
}

func TestFieldZeroMagnitudeCharge(t *testing.T) {
	e := testEngine()
	z := NewCharge(Vec2{X: 400, Y: 300}, 0)
	if got := e.FieldAt(Vec2{X: 500, Y: 300}, []Charge{z}); got != (Vec2{}) {
		t.Errorf("zero-magnitude charge contributed %v, want (0,0)", got)
	}
}

func TestFieldDirection(t *testing.T) {
	e := testEngine()
	tests := []struct {
		name  string
		q     float64
		wantX float64 // sign of Ex at a point to the +x side of the charge
	}{
		{"positive charge pushes away", 1e-6, 1},
		{"negative charge pulls in", -1e-6, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharge(Vec2{X: 300, Y: 300}, tt.q)
			f := e.FieldAt(Vec2{X: 400, Y: 300}, []Charge{c})
			if math.Signbit(f.X) != math.Signbit(tt.wantX) || f.X == 0 {
				t.Errorf("Ex = %v, want sign %v", f.X, tt.wantX)
			}
			if f.Y != 0 {
				t.Errorf("Ey = %v, want 0 on the axis", f.Y)
			}
		})
	}
}

func TestFieldCancellation(t *testing.T) {
	e := testEngine()
	// Two equal charges straddle the midpoint; the field there cancels.
	charges := []Charge{
		NewCharge(Vec2{X: 300, Y: 300}, 1e-6),
		NewCharge(Vec2{X: 700, Y: 300}, 1e-6),
	}
	f := e.FieldAt(Vec2{X: 500, Y: 300}, charges)
	if !approxEqual(f.X, 0, 1e-12) || !approxEqual(f.Y, 0, 1e-12) {
		t.Errorf("midpoint field = %v, want (0,0)", f)
	}
}
