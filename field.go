package main

// FieldAt returns the electric field vector at p, the superposition of every
// charge's k·q/r² contribution along the displacement unit vector. Charges
// closer than ExclusionRadius are skipped entirely — not clamped — so the
// inverse-square law cannot blow up when a trace passes near a source. A
// zero-magnitude charge contributes nothing; an empty set yields (0,0).
func (e *Engine) FieldAt(p Vec2, charges []Charge) Vec2 {
	var field Vec2
	for _, c := range charges {
		d := p.Sub(c.Pos)
		r := d.Length()
		if r < e.Params.ExclusionRadius {
			continue
		}
		mag := e.Params.K * c.Q / (r * r)
		field.X += mag * d.X / r
		field.Y += mag * d.Y / r
	}
	return field
}
