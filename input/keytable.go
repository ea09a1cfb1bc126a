package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Printable keys, matched case-insensitively
	Runes map[rune]Action

	// Special keys (arrows, Enter, Esc, Ctrl+*)
	Keys map[tcell.Key]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionLeft,
			'd': ActionRight,
			'p': ActionHide,
			'j': ActionUse,
			'm': ActionMute,
			'`': ActionDebug,
			'q': ActionQuit,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionForward,
			tcell.KeyDown:   ActionBack,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionDismiss,
			tcell.KeyF1:     ActionDebug,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Lookup returns the action bound to a key; r is only read for tcell.KeyRune
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Action {
	if key != tcell.KeyRune {
		return kt.Keys[key]
	}
	if a, ok := kt.Runes[r]; ok {
		return a
	}
	return kt.Runes[unicode.ToLower(r)]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}
