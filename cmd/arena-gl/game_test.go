package main

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DJG-inc/DodgeBallThreeJS/engine"
	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

func TestBindKeys(t *testing.T) {
	bindings := bindKeys(input.DefaultKeyTable())
	want := map[ebiten.Key]input.Action{
		ebiten.KeyW:         input.ActionForward,
		ebiten.KeyF:         input.ActionTrigger,
		ebiten.KeySpace:     input.ActionJump,
		ebiten.KeyArrowLeft: input.ActionLookLeft,
		ebiten.KeyEscape:    input.ActionPause,
	}
	got := make(map[ebiten.Key]input.Action)
	for _, b := range bindings {
		got[b.key] = b.action
	}
	for k, a := range want {
		if got[k] != a {
			t.Errorf("Expected %v bound to %v, got %v", k, a, got[k])
		}
	}
}

func TestProjectCentersPlayer(t *testing.T) {
	snap := &engine.Snapshot{View: engine.ViewPose{Position: vmath.Vec3{X: 3, Z: -2}}}

	x, y := project(snap, 3, -2)
	if x != screenWidth/2 || y != screenHeight/2 {
		t.Errorf("Expected screen center, got (%v, %v)", x, y)
	}
	x, y = project(snap, 4, -2)
	if x != screenWidth/2+pixelsPerUnit || y != screenHeight/2 {
		t.Errorf("Expected one unit right, got (%v, %v)", x, y)
	}
}

func TestHeading(t *testing.T) {
	snap := &engine.Snapshot{View: engine.ViewPose{Forward: vmath.Vec3{X: 0, Y: -0.6, Z: -0.8}}}
	hx, hy := heading(snap)
	if hx != 0 || hy != -1 {
		t.Errorf("Expected (0, -1), got (%v, %v)", hx, hy)
	}

	snap.View.Forward = vmath.Vec3{Y: 1}
	if hx, hy := heading(snap); hx != 0 || hy != 0 {
		t.Errorf("Expected zero heading looking up, got (%v, %v)", hx, hy)
	}
}

func TestHudText(t *testing.T) {
	snap := &engine.Snapshot{Session: engine.SessionView{Score: 7, TimeRemaining: 42, Ammo: 2, MaxAmmo: 3, GameOver: true}}
	text := hudText(snap, true, false)
	for _, want := range []string{"Score 7", "Time 42s", "Ammo 2/3", "[muted]", "GAME OVER"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in HUD, got %q", want, text)
		}
	}
	if strings.Contains(text, "frame") {
		t.Error("Expected no debug line without debug")
	}
}
