package diorama

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BobScript floats a sprite up and down around its starting Y position.
// The motion is a chain of eased tweens: a quarter-period ramp from the
// base line, then alternating half-period swings between the amplitude
// extremes. The script never finishes on its own.
type BobScript struct {
	sprite    SpriteObject
	baseY     float64
	amplitude float64
	period    float64

	tween  *gween.Tween
	target float32
}

// NewBobScript creates a bob effect for sprite with the given vertical
// amplitude (world units) and full oscillation period (seconds).
func NewBobScript(sprite SpriteObject, amplitude, period float64) *BobScript {
	if amplitude < 0 {
		amplitude = -amplitude
	}
	if period < 0.01 {
		period = 0.01
	}
	return &BobScript{
		sprite:    sprite,
		baseY:     sprite.Position.Y,
		amplitude: amplitude,
		period:    period,
	}
}

// Start registers the sprite at its base position and arms the first ramp.
func (s *BobScript) Start(ctx *Context) error {
	s.target = float32(s.amplitude)
	s.tween = gween.New(0, s.target, float32(s.period/4), ease.OutSine)
	return ctx.Sprites.Upsert(s.sprite)
}

// Update advances the current tween and re-upserts the sprite at its new
// offset, swinging toward the opposite extreme when the tween completes.
func (s *BobScript) Update(dt float64, ctx *Context) error {
	if dt < 0 {
		dt = 0
	}
	offset, done := s.tween.Update(float32(dt))

	obj := s.sprite
	obj.Position.Y = s.baseY + float64(offset)
	if err := ctx.Sprites.Upsert(obj); err != nil {
		return err
	}

	if done {
		s.target = -s.target
		s.tween = gween.New(offset, s.target, float32(s.period/2), ease.InOutSine)
	}
	return nil
}

// OnSignal implements Script; bob ignores signals.
func (s *BobScript) OnSignal(Signal) {}

// Finished implements Script; bob runs for the life of the scene.
func (s *BobScript) Finished() bool { return false }

// BlinkScript toggles a sprite's visibility at a fixed interval. Large
// frame times consume multiple intervals at once, so the phase stays
// aligned. The script never finishes on its own.
type BlinkScript struct {
	sprite   SpriteObject
	interval float64
	elapsed  float64
	visible  bool
}

// NewBlinkScript creates a blink effect toggling sprite every interval
// seconds. Intervals below 10ms clamp up to keep the toggle observable.
func NewBlinkScript(sprite SpriteObject, interval float64) *BlinkScript {
	if interval < 0.01 {
		interval = 0.01
	}
	return &BlinkScript{
		sprite:   sprite,
		interval: interval,
		visible:  !sprite.Hidden,
	}
}

func (s *BlinkScript) apply(ctx *Context) error {
	return ctx.Sprites.Upsert(s.sprite.WithHidden(!s.visible))
}

// Start registers the sprite in its initial visibility state.
func (s *BlinkScript) Start(ctx *Context) error {
	return s.apply(ctx)
}

// Update accumulates elapsed time and flips visibility once per odd
// number of consumed intervals.
func (s *BlinkScript) Update(dt float64, ctx *Context) error {
	if dt > 0 {
		s.elapsed += dt
	}

	var toggles int
	for s.elapsed >= s.interval {
		s.elapsed -= s.interval
		toggles++
	}

	if toggles%2 == 1 {
		s.visible = !s.visible
		return s.apply(ctx)
	}
	return nil
}

// OnSignal implements Script; blink ignores signals.
func (s *BlinkScript) OnSignal(Signal) {}

// Finished implements Script; blink runs for the life of the scene.
func (s *BlinkScript) Finished() bool { return false }
