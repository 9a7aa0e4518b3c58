package main

import "github.com/google/uuid"

// PlacementMagnitude is the charge assigned on placement, in coulombs.
// Polarity comes from the mouse button that placed it.
const PlacementMagnitude = 1e-6

// Charge is a static point charge. The ID exists only for drag tracking in
// the UI; the numeric engine treats charges as value data.
type Charge struct {
	Pos Vec2      `json:"pos"`
	Q   float64   `json:"q"`
	ID  uuid.UUID `json:"id"`
}

// NewCharge creates a charge at pos with signed magnitude q.
func NewCharge(pos Vec2, q float64) Charge {
	return Charge{Pos: pos, Q: q, ID: uuid.New()}
}

// chargeAt returns the index of the first charge whose body (radius units
// around its center) contains p, or -1 if none does.
func chargeAt(charges []Charge, p Vec2, radius float64) int {
	for i, c := range charges {
		if p.Sub(c.Pos).Length() <= radius {
			return i
		}
	}
	return -1
}

// chargeByID returns the index of the charge with the given ID, or -1.
func chargeByID(charges []Charge, id uuid.UUID) int {
	for i, c := range charges {
		if c.ID == id {
			return i
		}
	}
	return -1
}
