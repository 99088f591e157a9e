package diorama

import "fmt"

// Vec2 is a 2D vector used for world-space positions and scales.
type Vec2 struct {
	X, Y float64
}

// Layer is the coarse draw-order category. Lower layers draw first.
type Layer uint8

const (
	LayerBackground Layer = iota // scenery behind everything
	LayerCharacter               // sprites in the play space
	LayerUI                      // world-space UI drawn on top
)

// String returns the layer's scenario-file name.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerCharacter:
		return "character"
	case LayerUI:
		return "ui"
	default:
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
}

// ParseLayer converts a scenario-file layer name to a Layer.
func ParseLayer(name string) (Layer, error) {
	switch name {
	case "background":
		return LayerBackground, nil
	case "character":
		return LayerCharacter, nil
	case "ui":
		return LayerUI, nil
	default:
		return 0, fmt.Errorf("diorama: unknown layer %q", name)
	}
}

// Action is a discrete input signal decoded by the frame driver.
type Action uint8

const (
	// ActionSkipWait collapses the current timeline wait.
	ActionSkipWait Action = iota
	// ActionExit requests process termination. The core never acts on it;
	// the frame driver decides.
	ActionExit
)

// Signal is broadcast by the frame driver to all active scripts.
type Signal uint8

// SignalSkipWait asks scripts to end their current wait immediately.
const SignalSkipWait Signal = iota
