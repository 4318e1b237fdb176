package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Named keys hosts translate their platform key codes into
const (
	KeyUp     = "up"
	KeyDown   = "down"
	KeyLeft   = "left"
	KeyRight  = "right"
	KeySpace  = "space"
	KeyEnter  = "enter"
	KeyEscape = "escape"
	KeyCtrlC  = "ctrl+c"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Printable keys, matched case-insensitively
	Runes map[rune]Action

	// Non-printable keys by name
	Named map[string]Action
}

// DefaultKeyTable returns WASD movement, arrow look, space jump, enter as trigger
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionLeft,
			'd': ActionRight,
			'f': ActionTrigger,
			'j': ActionLookLeft,
			'l': ActionLookRight,
			'i': ActionLookUp,
			'k': ActionLookDown,
			'p': ActionPause,
			'r': ActionReset,
			'q': ActionQuit,
			'm': ActionToggleMute,
		},
		Named: map[string]Action{
			KeySpace:  ActionJump,
			KeyEnter:  ActionTrigger,
			KeyUp:     ActionLookUp,
			KeyDown:   ActionLookDown,
			KeyLeft:   ActionLookLeft,
			KeyRight:  ActionLookRight,
			KeyEscape: ActionPause,
			KeyCtrlC:  ActionQuit,
		},
	}
}

// LookupRune resolves a printable key
func (kt *KeyTable) LookupRune(r rune) Action {
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	if r >= 'A' && r <= 'Z' {
		return kt.Runes[r+('a'-'A')]
	}
	return ActionNone
}

// LookupNamed resolves a non-printable key
func (kt *KeyTable) LookupNamed(name string) Action {
	return kt.Named[name]
}

// Merge applies overrides on top of kt; a "none" binding unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) {
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = a
	}
	for n, a := range override.Named {
		if a == ActionNone {
			delete(kt.Named, n)
			continue
		}
		kt.Named[n] = a
	}
}

// keymapFile is the TOML layout of a keymap override
//
//	[keys]
//	w = "forward"
//	space = "jump"
type keymapFile struct {
	Keys map[string]string `toml:"keys"`
}

// LoadKeyConfig parses a TOML keymap into a sparse override table
// Single-character keys bind runes; longer keys must be a known named key
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{Runes: make(map[rune]Action), Named: make(map[string]Action)}
	for key, name := range f.Keys {
		action, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q for key %q", name, key)
		}

		runes := []rune(key)
		if len(runes) == 1 {
			kt.Runes[runes[0]] = action
			continue
		}

		named := strings.ToLower(key)
		if !isNamedKey(named) {
			return nil, fmt.Errorf("keymap: unknown key %q", key)
		}
		kt.Named[named] = action
	}
	return kt, nil
}

func isNamedKey(name string) bool {
	switch name {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeySpace, KeyEnter, KeyEscape, KeyCtrlC:
		return true
	}
	return false
}
