package input

import (
	"github.com/doublescale/rusty-navigator/engine"
	"github.com/gdamore/tcell/v2"
)

// KeyEntry describes what a key does: a discrete command, a thrust press, or both
type KeyEntry struct {
	Command engine.Command
	Thrust  bool
}

// KeyTable maps special keys and runes to entries
type KeyTable struct {
	SpecialKeys map[tcell.Key]KeyEntry
	Runes       map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Command: engine.CommandQuit},
			tcell.KeyCtrlC:  {Command: engine.CommandQuit},
			tcell.KeyCtrlQ:  {Command: engine.CommandQuit},
			tcell.KeyUp:     {Thrust: true},
		},
		Runes: map[rune]KeyEntry{
			'q': {Command: engine.CommandQuit},
			'p': {Command: engine.CommandTogglePause},
			'r': {Command: engine.CommandRestart},
			' ': {Thrust: true},
			'w': {Thrust: true},
			'k': {Thrust: true},
		},
	}
}

// Lookup resolves a key event, unknown keys return the zero entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
