package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/DJG-inc/DodgeBallThreeJS/component"
	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/physics"
	"github.com/DJG-inc/DodgeBallThreeJS/status"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func baseSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		RunID: "run",
		View: engine.ViewPose{
			Position: vmath.Vec3{Y: 1},
			Forward:  vmath.Vec3{Z: -1},
		},
		Session: engine.SessionView{
			Score:         42,
			TimeRemaining: 97,
			Ammo:          3,
			MaxAmmo:       5,
			ChargeLevel:   0.5,
		},
	}
}

func TestStatusBar(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, nil)

	r.RenderFrame(baseSnapshot())

	top := rowText(screen, 0)
	if !strings.Contains(top, "SCORE    42") || !strings.Contains(top, "TIME  97") {
		t.Errorf("Expected score and time in status bar, got %q", top)
	}
	if strings.Count(top, "●") != 5 {
		t.Errorf("Expected 5 ammo pips, got %q", top)
	}
	if strings.Count(top, "█") != 5 {
		t.Errorf("Expected half-filled charge bar, got %q", top)
	}
}

func TestEntitiesProjected(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, nil, nil)

	snap := baseSnapshot()
	snap.Enemies = []engine.EnemyView{{ID: 1, Position: vmath.Vec3{X: 2, Z: -4}, LockOn: true}}
	snap.Projectiles = []engine.ProjectileView{
		{ID: 2, Position: vmath.Vec3{X: -2}, State: engine.VisualCollectible},
		{ID: 3, Position: vmath.Vec3{X: 3}, State: engine.VisualFlying, Owner: component.OwnerEnemy},
	}
	r.RenderFrame(snap)

	col, row, ok := r.Project(snap, 2, -4)
	if !ok {
		t.Fatal("Expected enemy on screen")
	}
	ch, _, style, _ := screen.GetContent(col, row)
	if ch != 'E' {
		t.Errorf("Expected enemy glyph, got %q", ch)
	}
	if _, bg, _ := style.Decompose(); bg != RgbLockOn {
		t.Error("Expected lock-on highlight")
	}

	col, row, _ = r.Project(snap, -2, 0)
	if ch, _, _, _ := screen.GetContent(col, row); ch != '•' {
		t.Errorf("Expected resting ball glyph, got %q", ch)
	}
	col, row, _ = r.Project(snap, 3, 0)
	if ch, _, _, _ := screen.GetContent(col, row); ch != 'o' {
		t.Errorf("Expected flying ball glyph, got %q", ch)
	}

	col, row, _ = r.Project(snap, 0, 0)
	if ch, _, _, _ := screen.GetContent(col, row); ch != '↑' {
		t.Errorf("Expected player facing up the screen, got %q", ch)
	}
}

func TestLevelLayer(t *testing.T) {
	screen := newTestScreen(t)
	boxes := []physics.AABB{
		{Min: vmath.Vec3{X: -20, Y: -1, Z: -20}, Max: vmath.Vec3{X: 20, Y: 0, Z: 20}},
		{Min: vmath.Vec3{X: 4, Y: 0, Z: -1}, Max: vmath.Vec3{X: 6, Y: 3, Z: 1}},
	}
	r := NewTerminalRenderer(screen, boxes, nil)
	snap := baseSnapshot()
	r.RenderFrame(snap)

	col, row, _ := r.Project(snap, 5, 0)
	if ch, _, _, _ := screen.GetContent(col, row); ch != '#' {
		t.Errorf("Expected pillar cell, got %q", ch)
	}
}

func TestBannersAndDebug(t *testing.T) {
	screen := newTestScreen(t)
	reg := status.NewRegistry()
	reg.Ints.Get(status.KeyEnemiesLive).Store(7)
	r := NewTerminalRenderer(screen, nil, reg)
	r.Debug = true

	snap := baseSnapshot()
	snap.Session.GameOver = true
	r.RenderFrame(snap)

	_, h := screen.Size()
	if !strings.Contains(rowText(screen, h/2), "GAME OVER") {
		t.Errorf("Expected game over banner, got %q", rowText(screen, h/2))
	}
	if !strings.Contains(rowText(screen, h-1), "enemies 7") {
		t.Errorf("Expected debug metrics, got %q", rowText(screen, h-1))
	}

	snap.Session.GameOver = false
	snap.Session.Paused = true
	r.RenderFrame(snap)
	if !strings.Contains(rowText(screen, h/2), "PAUSED") {
		t.Errorf("Expected pause banner, got %q", rowText(screen, h/2))
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		x, z float64
		want rune
	}{
		{1, 0, '→'},
		{0, 1, '↓'},
		{-1, 0, '←'},
		{0, -1, '↑'},
		{0, 0, '@'},
	}
	for _, tt := range tests {
		if got := HeadingGlyph(tt.x, tt.z); got != tt.want {
			t.Errorf("HeadingGlyph(%v, %v): expected %q, got %q", tt.x, tt.z, tt.want, got)
		}
	}
}
