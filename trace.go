package main

// FieldLine is one traced streamline. A fresh set is produced on every
// recomputation pass and each line is immutable once returned.
type FieldLine struct {
	Points []Vec2
}

// Trace integrates one field line from seed, stepping along the normalized
// local field. dir is +1 to follow the field (out of a positive charge) and
// -1 to run against it (into a negative charge). The trace stops when the
// step cap is exhausted, the field magnitude collapses, the line leaves the
// canvas, or it hits a target charge; every terminal state returns a valid
// line, there are no error paths.
func (e *Engine) Trace(seed Vec2, dir float64, charges []Charge) FieldLine {
	p := e.Params
	points := make([]Vec2, 0, 64)
	points = append(points, seed)

	pos := seed
	hit := -1
	for steps := 0; steps < p.MaxSteps; steps++ {
		f := e.FieldAt(pos, charges)
		m := f.Length()
		if m < p.MinFieldMag {
			break
		}

		// Shrink the step where the field is strong (high curvature near a
		// source would make a fixed step overshoot or spiral) and let it grow
		// back to StepSize as the field weakens.
		step := p.StepSize * (1 - 1/(m/1000+1))
		if step < p.MinStep {
			step = p.MinStep
		}

		pos = pos.Add(f.Scale(dir * step / m))
		if pos.X < 0 || pos.X > e.Width || pos.Y < 0 || pos.Y > e.Height {
			break
		}
		points = append(points, pos)

		if hit = e.hitCharge(pos, dir, charges); hit >= 0 {
			break
		}
	}

	// Anchor the line to the charge body instead of stopping at an arbitrary
	// near-boundary sample.
	if hit >= 0 && len(points) >= 2 {
		points = append(points, charges[hit].Pos)
	}
	return FieldLine{Points: points}
}

// hitCharge returns the index of the charge the point has terminated on:
// within ChargeRadius of a charge whose polarity opposes the tracing
// direction, or within CatchAllRadius of any charge at all (so a line cannot
// graze a same-sign charge arbitrarily closely without stopping). Returns -1
// when the point is clear of every charge.
func (e *Engine) hitCharge(p Vec2, dir float64, charges []Charge) int {
	for i, c := range charges {
		r := p.Sub(c.Pos).Length()
		if r < e.Params.ChargeRadius && dir*c.Q < 0 {
			return i
		}
		if r < e.Params.CatchAllRadius {
			return i
		}
	}
	return -1
}
