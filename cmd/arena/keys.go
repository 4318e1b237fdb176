package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/DJG-inc/DodgeBallThreeJS/input"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
)

// lookupKey resolves a tcell key event through the key table
func lookupKey(keys *input.KeyTable, ev *tcell.EventKey) input.Action {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return keys.LookupNamed(input.KeySpace)
		}
		return keys.LookupRune(ev.Rune())
	case tcell.KeyUp:
		return keys.LookupNamed(input.KeyUp)
	case tcell.KeyDown:
		return keys.LookupNamed(input.KeyDown)
	case tcell.KeyLeft:
		return keys.LookupNamed(input.KeyLeft)
	case tcell.KeyRight:
		return keys.LookupNamed(input.KeyRight)
	case tcell.KeyEnter:
		return keys.LookupNamed(input.KeyEnter)
	case tcell.KeyEscape:
		return keys.LookupNamed(input.KeyEscape)
	case tcell.KeyCtrlC:
		return keys.LookupNamed(input.KeyCtrlC)
	}
	return input.ActionNone
}

// mouseLook turns absolute terminal mouse positions into look deltas
// The left button is a real hold, unlike terminal keys, so it drives the trigger directly
type mouseLook struct {
	lastX, lastY int
	tracking     bool
	trigger      bool
}

func (m *mouseLook) handle(ev *tcell.EventMouse, s *input.Sampler) {
	x, y := ev.Position()
	if m.tracking && (x != m.lastX || y != m.lastY) {
		s.AddPointer(float64(x-m.lastX)*parameter.MouseLookScale, float64(y-m.lastY)*parameter.MouseLookScale)
	}
	m.lastX, m.lastY, m.tracking = x, y, true

	held := ev.Buttons()&tcell.Button1 != 0
	switch {
	case held && !m.trigger:
		s.Press(input.ActionTrigger)
	case !held && m.trigger:
		s.Release(input.ActionTrigger)
	}
	m.trigger = held
}
