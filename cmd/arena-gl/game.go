package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/DJG-inc/DodgeBallThreeJS/audio"
	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/manifest"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
)

const (
	screenWidth  = 960
	screenHeight = 720

	// pixelsPerUnit is the top-down map scale
	pixelsPerUnit = 12.0
)

var (
	colorBackground = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	colorFloor      = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	colorObstacle   = color.RGBA{R: 110, G: 110, B: 125, A: 255}
	colorPlayer     = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	colorPlayerBall = color.RGBA{R: 120, G: 255, B: 140, A: 255}
	colorEnemyBall  = color.RGBA{R: 255, G: 120, B: 80, A: 255}
	colorRestBall   = color.RGBA{R: 230, G: 230, B: 120, A: 255}
	colorEnemy      = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	colorLockOn     = color.RGBA{R: 255, G: 220, B: 0, A: 255}
)

// Game adapts the simulation to ebiten's Update/Draw loop
type Game struct {
	world      *engine.World
	integrator *engine.Integrator
	sampler    *input.Sampler
	sink       audio.Sink
	clock      *engine.FrameClock

	bindings []binding
	boxes    []physics.AABB
	debug    bool

	lastX, lastY int
	tracking     bool
}

func NewGame(w *engine.World, it *engine.Integrator, s *input.Sampler, sink audio.Sink, keys *input.KeyTable) *Game {
	g := &Game{
		world:      w,
		integrator: it,
		sampler:    s,
		sink:       sink,
		clock:      engine.NewFrameClock(engine.NewTimeProvider()),
		bindings:   bindKeys(keys),
	}
	if level, ok := w.Oracle.(*physics.StaticWorld); ok {
		g.boxes = level.Boxes()
	}
	return g
}

func (g *Game) Update() error {
	// An action is held while any of its keys is down
	held := make(map[input.Action]bool)
	for _, b := range g.bindings {
		if !b.action.IsCommand() {
			held[b.action] = held[b.action] || ebiten.IsKeyPressed(b.key)
			continue
		}
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.action == input.ActionToggleMute {
			g.sink.SetMuted(!g.sink.Muted())
			continue
		}
		if b.action == input.ActionReset {
			g.sampler.Clear()
		}
		if !manifest.RunCommand(g.world, g.integrator, b.action) {
			return ebiten.Termination
		}
	}
	held[input.ActionTrigger] = held[input.ActionTrigger] || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	for a, down := range held {
		if down {
			g.sampler.Press(a)
		} else {
			g.sampler.Release(a)
		}
	}

	x, y := ebiten.CursorPosition()
	if g.tracking && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.sampler.AddPointer(float64(x-g.lastX), float64(y-g.lastY))
	}
	g.lastX, g.lastY, g.tracking = x, y, true

	g.integrator.Step(g.clock.Delta())
	g.sink.Handle(g.world.Events.Consume())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := g.integrator.Latest()
	if snap == nil {
		return
	}

	for _, b := range g.boxes {
		x0, y0 := project(snap, b.Min.X, b.Min.Z)
		x1, y1 := project(snap, b.Max.X, b.Max.Z)
		c := colorFloor
		if b.Max.Y > 0.5 {
			c = colorObstacle
		}
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, c, false)
	}

	ballRadius := float32(g.world.Config.Projectile.Radius * pixelsPerUnit)
	for _, p := range snap.Projectiles {
		x, y := project(snap, p.Position.X, p.Position.Z)
		c := colorRestBall
		if p.State == engine.VisualFlying {
			c = colorPlayerBall
			if p.Owner == component.OwnerEnemy {
				c = colorEnemyBall
			}
		}
		vector.DrawFilledCircle(screen, x, y, max(ballRadius, 2), c, true)
	}

	enemyRadius := float32(g.world.Config.Enemy.Radius * pixelsPerUnit)
	for _, e := range snap.Enemies {
		x, y := project(snap, e.Position.X, e.Position.Z)
		vector.DrawFilledCircle(screen, x, y, enemyRadius, colorEnemy, true)
		if e.LockOn {
			vector.StrokeCircle(screen, x, y, enemyRadius+4, 2, colorLockOn, true)
		}
	}

	cx, cy := float32(screenWidth/2), float32(screenHeight/2)
	playerRadius := float32(g.world.Config.Player.Radius * pixelsPerUnit)
	vector.DrawFilledCircle(screen, cx, cy, playerRadius, colorPlayer, true)
	hx, hy := heading(snap)
	vector.StrokeLine(screen, cx, cy, cx+hx*playerRadius*3, cy+hy*playerRadius*3, 2, colorPlayer, true)

	ebitenutil.DebugPrint(screen, hudText(snap, g.sink.Muted(), g.debug))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// project maps world X/Z to screen pixels with the player at the center
func project(snap *engine.Snapshot, x, z float64) (float32, float32) {
	sx := screenWidth/2 + (x-snap.View.Position.X)*pixelsPerUnit
	sy := screenHeight/2 + (z-snap.View.Position.Z)*pixelsPerUnit
	return float32(sx), float32(sy)
}

// heading is the unit screen direction of the view's horizontal forward, zero when looking straight up or down
func heading(snap *engine.Snapshot) (float32, float32) {
	f := snap.View.Forward
	l := math.Hypot(f.X, f.Z)
	if l < 1e-9 {
		return 0, 0
	}
	return float32(f.X / l), float32(f.Z / l)
}

func hudText(snap *engine.Snapshot, muted, debug bool) string {
	s := snap.Session
	text := fmt.Sprintf("Score %d  Time %ds  Ammo %d/%d  Charge %3.0f%%  Level %d",
		s.Score, s.TimeRemaining, s.Ammo, s.MaxAmmo, s.ChargeLevel*100, s.Difficulty)
	if muted {
		text += "  [muted]"
	}
	switch {
	case s.GameOver:
		text += "\nGAME OVER  press R to restart"
	case s.Paused:
		text += "\nPAUSED"
	}
	if debug {
		text += fmt.Sprintf("\nframe %d  enemies %d  balls %d  run %s",
			snap.Frame, len(snap.Enemies), len(snap.Projectiles), snap.RunID)
	}
	return text
}
