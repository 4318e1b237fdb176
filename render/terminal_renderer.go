package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/status"
)

const (
	hudRows = 2 // Status bar on top, debug line at the bottom

	// cellAspect compensates for terminal cells being about twice as tall as wide
	cellAspect = 2.0
)

// TerminalRenderer draws a top-down view of a snapshot centered on the player
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// Scale is world units per cell column
	Scale float64
	Debug bool

	boxes  []physics.AABB
	status *status.Registry
}

// NewTerminalRenderer creates a renderer for screen; boxes are the static level for the map layer
func NewTerminalRenderer(screen tcell.Screen, boxes []physics.AABB, reg *status.Registry) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen: screen,
		width:  w,
		height: h,
		Scale:  0.5,
		boxes:  boxes,
		status: reg,
	}
}

// Resize updates cached dimensions after a tcell resize event
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)
	if snap == nil {
		r.screen.Show()
		return
	}

	r.drawLevel(snap, defaultStyle)
	r.drawProjectiles(snap, defaultStyle)
	r.drawEnemies(snap, defaultStyle)
	r.drawPlayer(snap, defaultStyle)
	r.drawStatusBar(snap, defaultStyle)
	if r.Debug {
		r.drawDebugLine(snap, defaultStyle)
	}
	r.drawBanner(snap, defaultStyle)

	r.screen.Show()
}

// Project maps world X/Z to a cell relative to the player; ok is false when off the map area
func (r *TerminalRenderer) Project(snap *engine.Snapshot, x, z float64) (col, row int, ok bool) {
	cx := r.width / 2
	cy := 1 + (r.height-hudRows)/2
	col = cx + int(math.Round((x-snap.View.Position.X)/r.Scale))
	row = cy + int(math.Round((z-snap.View.Position.Z)/(r.Scale*cellAspect)))
	ok = col >= 0 && col < r.width && row >= 1 && row < r.height-1
	return col, row, ok
}

// drawLevel shades floor and marks cells whose column reaches above the floor as obstacles
func (r *TerminalRenderer) drawLevel(snap *engine.Snapshot, defaultStyle tcell.Style) {
	floor := defaultStyle.Background(RgbFloor)
	wall := defaultStyle.Background(RgbObstacle).Foreground(RgbObstacle)
	cx := r.width / 2
	cy := 1 + (r.height-hudRows)/2

	for row := 1; row < r.height-1; row++ {
		z := snap.View.Position.Z + float64(row-cy)*r.Scale*cellAspect
		for col := 0; col < r.width; col++ {
			x := snap.View.Position.X + float64(col-cx)*r.Scale
			switch r.columnAt(x, z) {
			case columnObstacle:
				r.screen.SetContent(col, row, '#', nil, wall)
			case columnFloor:
				r.screen.SetContent(col, row, ' ', nil, floor)
			}
		}
	}
}

type column uint8

const (
	columnVoid column = iota
	columnFloor
	columnObstacle
)

func (r *TerminalRenderer) columnAt(x, z float64) column {
	c := columnVoid
	for _, b := range r.boxes {
		if x < b.Min.X || x > b.Max.X || z < b.Min.Z || z > b.Max.Z {
			continue
		}
		if b.Max.Y > 0.5 {
			return columnObstacle
		}
		c = columnFloor
	}
	return c
}

func (r *TerminalRenderer) drawProjectiles(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, p := range snap.Projectiles {
		col, row, ok := r.Project(snap, p.Position.X, p.Position.Z)
		if !ok {
			continue
		}
		ch, fg := 'o', RgbBallPlayer
		switch {
		case p.State == engine.VisualCollectible:
			ch, fg = '•', RgbBallRest
		case p.Owner == component.OwnerEnemy:
			fg = RgbBallEnemy
		}
		r.screen.SetContent(col, row, ch, nil, defaultStyle.Foreground(fg))
	}
}

func (r *TerminalRenderer) drawEnemies(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, e := range snap.Enemies {
		col, row, ok := r.Project(snap, e.Position.X, e.Position.Z)
		if !ok {
			continue
		}
		style := defaultStyle.Foreground(RgbEnemy)
		ch := 'E'
		switch {
		case e.Holding:
			style = style.Foreground(RgbEnemyHolding)
			ch = 'Ë'
		case e.Behavior == "dodging":
			style = style.Foreground(RgbEnemyDodging)
		}
		if e.LockOn {
			style = style.Background(RgbLockOn).Foreground(tcell.ColorBlack)
		}
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// drawPlayer marks the player at the map center with a heading glyph
func (r *TerminalRenderer) drawPlayer(snap *engine.Snapshot, defaultStyle tcell.Style) {
	col, row, ok := r.Project(snap, snap.View.Position.X, snap.View.Position.Z)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, HeadingGlyph(snap.View.Forward.X, snap.View.Forward.Z), nil,
		defaultStyle.Foreground(RgbPlayer).Bold(true))
}

// HeadingGlyph picks an arrow for a horizontal direction; screen rows grow toward +Z
func HeadingGlyph(x, z float64) rune {
	if math.Abs(x) < 1e-9 && math.Abs(z) < 1e-9 {
		return '@'
	}
	arrows := [...]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	a := math.Atan2(z, x)
	i := int(math.Round(a/(math.Pi/4))) & 7
	return arrows[i]
}

func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot, defaultStyle tcell.Style) {
	s := snap.Session
	style := defaultStyle.Foreground(RgbStatusBar)

	x := r.drawText(0, 0, fmt.Sprintf(" SCORE %5d  TIME %3d  LVL %d  ", s.Score, s.TimeRemaining, s.Difficulty), style)

	x = r.drawText(x, 0, "AMMO ", style)
	for i := 0; i < s.MaxAmmo; i++ {
		fg := RgbAmmoEmpty
		if i < s.Ammo {
			fg = RgbAmmo
		}
		r.screen.SetContent(x, 0, '●', nil, defaultStyle.Foreground(fg))
		x++
	}

	x = r.drawText(x, 0, "  CHARGE ", style)
	const barWidth = 10
	filled := int(math.Round(s.ChargeLevel * barWidth))
	for i := 0; i < barWidth; i++ {
		ch, st := '░', defaultStyle.Foreground(RgbAmmoEmpty)
		if i < filled {
			ch, st = '█', defaultStyle.Foreground(ChargeColor(float64(i+1)/barWidth))
		}
		r.screen.SetContent(x, 0, ch, nil, st)
		x++
	}
}

func (r *TerminalRenderer) drawDebugLine(snap *engine.Snapshot, defaultStyle tcell.Style) {
	if r.status == nil {
		return
	}
	line := fmt.Sprintf(" frame %d  dt %.4f  balls %d  enemies %d  thrown %d  dodges %d  run %.8s",
		snap.Frame,
		r.status.Floats.Get(status.KeyFrameDelta).Get(),
		r.status.Ints.Get(status.KeyProjectilesLive).Load(),
		r.status.Ints.Get(status.KeyEnemiesLive).Load(),
		r.status.Ints.Get(status.KeyProjectileThrow).Load(),
		r.status.Ints.Get(status.KeyEnemyDodges).Load(),
		snap.RunID,
	)
	r.drawText(0, r.height-1, line, defaultStyle.Foreground(RgbDebugText))
}

func (r *TerminalRenderer) drawBanner(snap *engine.Snapshot, defaultStyle tcell.Style) {
	var text string
	var fg tcell.Color
	switch {
	case snap.Session.GameOver:
		text, fg = fmt.Sprintf(" GAME OVER  score %d  [r] restart ", snap.Session.Score), RgbGameOver
	case snap.Session.Paused:
		text, fg = " PAUSED  [p] resume ", RgbPaused
	default:
		return
	}
	x := (r.width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, r.height/2, text, defaultStyle.Foreground(fg).Reverse(true))
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
