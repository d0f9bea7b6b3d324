package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Escape)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, space included
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentSwing,
			tcell.KeyCtrlS:  IntentToggleMute,
		},
		Runes: map[rune]Intent{
			' ': IntentSwing,
			'p': IntentTogglePause,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
