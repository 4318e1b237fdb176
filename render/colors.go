package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(36, 40, 59)    // Walkable ground
	RgbObstacle   = tcell.NewRGBColor(86, 95, 137)   // Walls and pillars
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbDebugText  = tcell.NewRGBColor(120, 120, 140) // Dim gray

	RgbPlayer       = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbEnemy        = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbEnemyHolding = tcell.NewRGBColor(255, 120, 200) // Pink, armed
	RgbEnemyDodging = tcell.NewRGBColor(180, 50, 50)   // Dark red
	RgbLockOn       = tcell.NewRGBColor(255, 255, 0)   // Bright yellow background

	RgbBallPlayer = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbBallEnemy  = tcell.NewRGBColor(255, 120, 120) // Light red
	RgbBallRest   = tcell.NewRGBColor(0, 200, 0)     // Green, collectible

	RgbChargeLow  = tcell.NewRGBColor(0, 200, 200)  // Cyan
	RgbChargeHigh = tcell.NewRGBColor(255, 60, 200) // Magenta
	RgbAmmo       = tcell.NewRGBColor(100, 150, 255)
	RgbAmmoEmpty  = tcell.NewRGBColor(60, 60, 70)

	RgbPaused   = tcell.NewRGBColor(255, 255, 0)
	RgbGameOver = tcell.NewRGBColor(255, 80, 80)
)

// ChargeColor blends the charge bar from low to high as fraction goes 0 to 1
func ChargeColor(fraction float64) tcell.Color {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	lr, lg, lb := RgbChargeLow.RGB()
	hr, hg, hb := RgbChargeHigh.RGB()
	mix := func(a, b int32) int32 {
		return a + int32(float64(b-a)*fraction)
	}
	return tcell.NewRGBColor(mix(lr, hr), mix(lg, hg), mix(lb, hb))
}
