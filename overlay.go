package diorama

import "go.uber.org/zap"

// Panel layout constants, in fractions of the viewport or pixels.
const (
	panelWidthFrac    = 0.86
	panelHeightFrac   = 0.22
	panelMinHeight    = 120.0
	panelBottomMargin = 20.0
	panelGap          = 12.0
)

// Panel is one overlay draw instruction: a bottom-anchored dialogue box
// with its screen-space rectangle and content.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Speaker       string
	Text          string
}

// Overlay owns all dialogue objects, keyed by scene key. It follows the
// same upsert contract as Registry but has no sorting or projection
// concerns: panels stack in insertion order, and updating an entry never
// reorders it.
type Overlay struct {
	entries []DialogueObject
	lookup  map[string]int
	log     *zap.Logger
}

// NewOverlay creates an empty overlay registry. A nil logger disables
// logging.
func NewOverlay(log *zap.Logger) *Overlay {
	if log == nil {
		log = zap.NewNop()
	}
	return &Overlay{lookup: make(map[string]int), log: log}
}

// Upsert replaces the entry stored under obj's scene key, or appends a new
// one. Pure data; cannot fail.
func (o *Overlay) Upsert(obj DialogueObject) {
	key := obj.SceneKey()
	if idx, ok := o.lookup[key]; ok {
		o.entries[idx] = obj
		o.log.Debug("updated dialogue", zap.String("key", key))
		return
	}
	o.entries = append(o.entries, obj)
	o.lookup[key] = len(o.entries) - 1
	o.log.Debug("created dialogue", zap.String("key", key))
}

// Get returns the current state of the dialogue stored under key.
func (o *Overlay) Get(key string) (DialogueObject, bool) {
	idx, ok := o.lookup[key]
	if !ok {
		return DialogueObject{}, false
	}
	return o.entries[idx], true
}

// Len returns the number of live entries, hidden included.
func (o *Overlay) Len() int { return len(o.entries) }

// Instructions emits one Panel per non-hidden entry for a viewport of the
// given pixel size. The first panel sits panelBottomMargin above the
// bottom edge; later panels stack upward with panelGap between them. Width
// and height are proportional to the viewport with a floor on height.
func (o *Overlay) Instructions(viewportW, viewportH float64) []Panel {
	width := viewportW * panelWidthFrac
	height := viewportH * panelHeightFrac
	if height < panelMinHeight {
		height = panelMinHeight
	}
	x := (viewportW - width) / 2
	y := viewportH - height - panelBottomMargin

	var panels []Panel
	for _, d := range o.entries {
		if d.Hidden {
			continue
		}
		panels = append(panels, Panel{
			X:       x,
			Y:       y,
			Width:   width,
			Height:  height,
			Speaker: d.Speaker,
			Text:    d.Text,
		})
		y -= height + panelGap
	}
	return panels
}
