package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Plain rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the fixed bindings: arrows steer, Ctrl+C/Esc/q quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
		},
	}
}

// Resolve translates a key event. Unbound keys resolve to IntentNone.
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
