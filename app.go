package main

import (
	"image/color"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UI constants
const (
	SettleTicks      = 6    // ticks without a mutation before recomputing
	ArrowGridStep    = 40.0 // spacing of the field-arrow overlay
	ArrowLength      = 15.0
	ArrowHeadLength  = 6.0
	ChargeDrawRadius = 8.0
)

// App owns the charge set and drives recomputation. It is the single writer:
// input and drift mutate charges, a settle counter coalesces mutation bursts
// into one recomputation pass, and the published line set is swapped
// wholesale so the renderer never sees a partial update.
type App struct {
	engine  *Engine
	charges []Charge
	lines   []FieldLine

	dirty     bool
	sinceEdit int

	dragging bool
	dragID   uuid.UUID

	showArrows bool
	drifting   bool
	drifter    *Drifter

	scenarioPath string
}

// NewApp creates the interactive application around an engine.
func NewApp(engine *Engine, scenarioPath string) *App {
	return &App{
		engine:       engine,
		drifter:      NewDrifter(time.Now().UnixNano()),
		scenarioPath: scenarioPath,
	}
}

// Update is called each tick by Ebitengine
func (a *App) Update() error {
	a.handleInput()

	if a.drifting && len(a.charges) > 0 {
		a.drifter.Step(a.charges, a.engine.Width, a.engine.Height)
		a.recompute()
	} else if a.dirty {
		a.sinceEdit++
		if a.sinceEdit >= SettleTicks {
			a.recompute()
		}
	}
	return nil
}

// recompute replaces the published line set in one assignment.
func (a *App) recompute() {
	a.lines = a.engine.RecomputeFieldLines(a.charges)
	a.dirty = false
}

// markDirty restarts the settle window after a charge mutation.
func (a *App) markDirty() {
	a.dirty = true
	a.sinceEdit = 0
}

// handleInput processes mouse and keyboard input
func (a *App) handleInput() {
	mx, my := ebiten.CursorPosition()
	cursor := Vec2{X: float64(mx), Y: float64(my)}

	// Left press on a charge body starts a drag; elsewhere it places a
	// positive charge. Right click places a negative charge.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i := chargeAt(a.charges, cursor, a.engine.Params.ChargeRadius); i >= 0 {
			a.dragging = true
			a.dragID = a.charges[i].ID
		} else {
			a.charges = append(a.charges, NewCharge(cursor, PlacementMagnitude))
			a.markDirty()
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.dragging = false
	}
	if a.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if i := chargeByID(a.charges, a.dragID); i >= 0 && a.charges[i].Pos != cursor {
			a.charges[i].Pos = cursor
			a.drifter.Reset()
			a.markDirty()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		a.charges = append(a.charges, NewCharge(cursor, -PlacementMagnitude))
		a.markDirty()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.charges = nil
		a.drifter.Reset()
		a.markDirty()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		a.showArrows = !a.showArrows
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.drifting = !a.drifting
		if a.drifting {
			a.drifter.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveScenario(a.scenarioPath, a.charges); err != nil {
			log.Printf("save scenario: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		charges, err := LoadScenario(a.scenarioPath)
		if err != nil {
			log.Printf("load scenario: %v", err)
			return
		}
		a.charges = charges
		a.drifter.Reset()
		a.markDirty()
	}
}

// Draw is called each frame by Ebitengine
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 24, 255})

	lineCol := color.RGBA{200, 200, 220, 180}
	for _, line := range a.lines {
		pts := line.Points
		for i := 1; i < len(pts); i++ {
			vector.StrokeLine(screen,
				float32(pts[i-1].X), float32(pts[i-1].Y),
				float32(pts[i].X), float32(pts[i].Y),
				1, lineCol, true)
		}
	}

	if a.showArrows {
		a.drawArrows(screen)
	}

	for _, c := range a.charges {
		col := color.RGBA{220, 60, 60, 255}
		if c.Q < 0 {
			col = color.RGBA{70, 110, 230, 255}
		}
		vector.DrawFilledCircle(screen,
			float32(c.Pos.X), float32(c.Pos.Y),
			ChargeDrawRadius, col, true)
	}
}

// drawArrows samples the field on a fixed grid and draws one arrow per cell,
// skipping cells where the field has effectively vanished.
func (a *App) drawArrows(screen *ebiten.Image) {
	col := color.RGBA{80, 200, 120, 200}
	for y := ArrowGridStep / 2; y < a.engine.Height; y += ArrowGridStep {
		for x := ArrowGridStep / 2; x < a.engine.Width; x += ArrowGridStep {
			f := a.engine.FieldAt(Vec2{X: x, Y: y}, a.charges)
			if f.Length() < a.engine.Params.MinFieldMag {
				continue
			}
			tip := Vec2{X: x, Y: y}.Add(f.Normalize().Scale(ArrowLength))
			vector.StrokeLine(screen, float32(x), float32(y),
				float32(tip.X), float32(tip.Y), 1, col, true)

			angle := math.Atan2(tip.Y-y, tip.X-x)
			for _, da := range [2]float64{0.6, -0.6} {
				hx := tip.X - ArrowHeadLength*math.Cos(angle+da)
				hy := tip.Y - ArrowHeadLength*math.Sin(angle+da)
				vector.StrokeLine(screen, float32(tip.X), float32(tip.Y),
					float32(hx), float32(hy), 1, col, true)
			}
		}
	}
}

// Layout returns the screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.engine.Width), int(a.engine.Height)
}
