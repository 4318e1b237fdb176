package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DJG-inc/DodgeBallThreeJS/input"
)

type binding struct {
	key    ebiten.Key
	action input.Action
}

var namedKeys = map[string]ebiten.Key{
	input.KeyUp:     ebiten.KeyArrowUp,
	input.KeyDown:   ebiten.KeyArrowDown,
	input.KeyLeft:   ebiten.KeyArrowLeft,
	input.KeyRight:  ebiten.KeyArrowRight,
	input.KeySpace:  ebiten.KeySpace,
	input.KeyEnter:  ebiten.KeyEnter,
	input.KeyEscape: ebiten.KeyEscape,
}

var letterKeys = [26]ebiten.Key{ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ}

var digitKeys = [10]ebiten.Key{ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9}

// bindKeys translates a key table into ebiten keys
// Only letters and digits among rune bindings have a physical key; others are skipped
func bindKeys(kt *input.KeyTable) []binding {
	var out []binding
	for r, a := range kt.Runes {
		switch {
		case r >= 'a' && r <= 'z':
			out = append(out, binding{letterKeys[r-'a'], a})
		case r >= 'A' && r <= 'Z':
			out = append(out, binding{letterKeys[r-'A'], a})
		case r >= '0' && r <= '9':
			out = append(out, binding{digitKeys[r-'0'], a})
		}
	}
	for name, a := range kt.Named {
		if k, ok := namedKeys[name]; ok {
			out = append(out, binding{k, a})
		}
	}
	return out
}
