package input

// Action is a host-independent control binding target
type Action uint8

const (
	ActionNone Action = iota

	// Held controls, sampled into Snapshot
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionJump
	ActionTrigger // Charge while held, throw on release
	ActionLookLeft
	ActionLookRight
	ActionLookUp
	ActionLookDown

	// Session commands, handled by the host on press
	ActionPause
	ActionReset
	ActionQuit
	ActionToggleMute

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:       "none",
	ActionForward:    "forward",
	ActionBack:       "back",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionJump:       "jump",
	ActionTrigger:    "trigger",
	ActionLookLeft:   "look_left",
	ActionLookRight:  "look_right",
	ActionLookUp:     "look_up",
	ActionLookDown:   "look_down",
	ActionPause:      "pause",
	ActionReset:      "reset",
	ActionQuit:       "quit",
	ActionToggleMute: "toggle_mute",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// IsCommand reports whether the action is a one-shot session command rather than a held control
func (a Action) IsCommand() bool {
	return a >= ActionPause && a < actionCount
}

// ParseAction resolves a config action name
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return ActionNone, false
}
