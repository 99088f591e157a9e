package diorama

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionMap binds keyboard keys to the frame driver's discrete actions. A
// key counts only on its initial press, never on repeat.
type ActionMap struct {
	SkipWaitKeys []ebiten.Key
	ExitKeys     []ebiten.Key
}

// DefaultActionMap binds Space/Enter to SkipWait and Escape to Exit.
func DefaultActionMap() ActionMap {
	return ActionMap{
		SkipWaitKeys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		ExitKeys:     []ebiten.Key{ebiten.KeyEscape},
	}
}

// JustPressed reports whether any key bound to action was pressed this
// frame. Must be called from the game's Update.
func (m ActionMap) JustPressed(action Action) bool {
	keys := m.SkipWaitKeys
	if action == ActionExit {
		keys = m.ExitKeys
	}
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
