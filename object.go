package diorama

import "fmt"

// SceneObject is the payload a timeline command carries. It is a closed
// union over SpriteObject and DialogueObject; the timeline routes each
// variant to its owning registry.
type SceneObject interface {
	// SceneKey returns the object's stable identity: the explicit ID if
	// set, otherwise a deterministic derivation from invariant content.
	SceneKey() string

	sealedSceneObject()
}

// SpriteObject describes a renderable sprite: a textured unit quad placed
// in world space. The zero Scale is replaced by (1, 1) at construction;
// all fields are plain values so objects copy freely through commands.
type SpriteObject struct {
	ID       string
	Position Vec2
	Scale    Vec2
	Texture  string
	Layer    Layer
	ZIndex   int
	Hidden   bool
}

// NewSprite creates a sprite for the given texture path, layer, and
// z-index with unit scale at the world origin.
func NewSprite(texture string, layer Layer, zIndex int) SpriteObject {
	return SpriteObject{
		Scale:   Vec2{1, 1},
		Texture: texture,
		Layer:   layer,
		ZIndex:  zIndex,
	}
}

// At returns a copy positioned at (x, y) in world space.
func (o SpriteObject) At(x, y float64) SpriteObject {
	o.Position = Vec2{x, y}
	return o
}

// Scaled returns a copy with the given scale factors.
func (o SpriteObject) Scaled(sx, sy float64) SpriteObject {
	o.Scale = Vec2{sx, sy}
	return o
}

// WithID returns a copy with an explicit scene key.
func (o SpriteObject) WithID(id string) SpriteObject {
	o.ID = id
	return o
}

// WithHidden returns a copy with the hidden flag set.
func (o SpriteObject) WithHidden(hidden bool) SpriteObject {
	o.Hidden = hidden
	return o
}

// SceneKey returns the explicit ID if set. The fallback derives from the
// sprite's invariant identity fields only: texture path, layer, and
// z-index. Mutable fields (position, scale, hidden) are excluded so that
// content-addressed upserts keep matching after the object moves. Two
// ID-less sprites sharing those fields address one entry.
func (o SpriteObject) SceneKey() string {
	if o.ID != "" {
		return "id:" + o.ID
	}
	return fmt.Sprintf("auto:%s:%d:%d", o.Texture, o.Layer, o.ZIndex)
}

func (SpriteObject) sealedSceneObject() {}

// DefaultSpeaker is used for dialogue created without an explicit speaker.
const DefaultSpeaker = "Lena"

// DialogueObject describes one dialogue panel: a speaker name and a line
// of text. Owned by the Overlay registry.
type DialogueObject struct {
	ID      string
	Speaker string
	Text    string
	Hidden  bool
}

// NewDialogue creates a dialogue object with the default speaker.
func NewDialogue(text string) DialogueObject {
	return DialogueObject{Speaker: DefaultSpeaker, Text: text}
}

// WithID returns a copy with an explicit scene key.
func (o DialogueObject) WithID(id string) DialogueObject {
	o.ID = id
	return o
}

// WithSpeaker returns a copy spoken by the given name.
func (o DialogueObject) WithSpeaker(speaker string) DialogueObject {
	o.Speaker = speaker
	return o
}

// WithHidden returns a copy with the hidden flag set.
func (o DialogueObject) WithHidden(hidden bool) DialogueObject {
	o.Hidden = hidden
	return o
}

// SceneKey returns the explicit ID if set, else a content-addressed key
// over the dialogue's speaker and text.
func (o DialogueObject) SceneKey() string {
	if o.ID != "" {
		return "id:" + o.ID
	}
	return "auto:" + o.Speaker + ":" + o.Text
}

func (DialogueObject) sealedSceneObject() {}
