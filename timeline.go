package diorama

import (
	"fmt"

	"go.uber.org/zap"
)

// Context carries the per-frame services scripts and timelines mutate.
type Context struct {
	Sprites      *Registry
	Dialogue     *Overlay
	Achievements *Achievements
	Log          *zap.Logger
}

// applyObject routes a scene object to its owning registry.
func (c *Context) applyObject(obj SceneObject) error {
	switch obj := obj.(type) {
	case SpriteObject:
		return c.Sprites.Upsert(obj)
	case DialogueObject:
		c.Dialogue.Upsert(obj)
		return nil
	default:
		// Unreachable: SceneObject is a sealed union.
		return fmt.Errorf("diorama: unhandled scene object %T", obj)
	}
}

type commandType uint8

const (
	commandSpawn commandType = iota // upsert; authorial "first appearance"
	commandApply                    // upsert; authorial "state change"
	commandWait                     // pause draining for a duration
)

// Command is one timeline instruction. Spawn and Apply are both upserts;
// the distinction is purely authorial intent.
type Command struct {
	typ     commandType
	object  SceneObject
	seconds float64
}

// Spawn creates a command introducing obj into its registry.
func Spawn(obj SceneObject) Command {
	return Command{typ: commandSpawn, object: obj}
}

// Apply creates a command updating obj's registry entry (or creating it,
// identically to Spawn).
func Apply(obj SceneObject) Command {
	return Command{typ: commandApply, object: obj}
}

// Wait creates a command pausing the timeline for the given duration.
// Negative durations clamp to zero, which makes the command a no-op
// barrier rather than a stop.
func Wait(seconds float64) Command {
	if seconds < 0 {
		seconds = 0
	}
	return Command{typ: commandWait, seconds: seconds}
}

// Timeline drains an ordered FIFO command queue against elapsed frame
// time. It is created once per scene, consumed monotonically, and never
// reset. Timeline implements Script.
type Timeline struct {
	pending       []Command
	next          int
	waitRemaining float64
}

// NewTimeline creates a timeline over a copy of the given command list.
func NewTimeline(commands []Command) *Timeline {
	pending := make([]Command, len(commands))
	copy(pending, commands)
	return &Timeline{pending: pending}
}

// Update consumes dt seconds of frame time: the current wait is counted
// down first, then, while no wait is pending, commands are popped and
// executed, cascading within the same call. A positive Wait stops
// draining; a zero Wait is a barrier and draining continues. Registry
// errors surface to the caller with the failing command consumed; the
// timeline itself never swallows them.
func (t *Timeline) Update(dt float64, ctx *Context) error {
	if dt < 0 {
		dt = 0
	}
	t.waitRemaining -= dt
	if t.waitRemaining < 0 {
		t.waitRemaining = 0
	}

	for t.waitRemaining <= 0 && t.next < len(t.pending) {
		cmd := t.pending[t.next]
		t.next++

		switch cmd.typ {
		case commandWait:
			if cmd.seconds > 0 {
				t.waitRemaining = cmd.seconds
				return nil
			}
		default:
			if err := ctx.applyObject(cmd.object); err != nil {
				return err
			}
		}
	}
	return nil
}

// Start executes all leading commands up to the first positive wait.
func (t *Timeline) Start(ctx *Context) error {
	return t.Update(0, ctx)
}

// SkipWait clears the current wait unconditionally. Commands are not
// popped here; the next Update call performs the cascade, so SkipWait
// followed by Update(0) advances instantly to the next positive wait.
func (t *Timeline) SkipWait() {
	t.waitRemaining = 0
}

// OnSignal implements Script: SignalSkipWait clears the current wait.
func (t *Timeline) OnSignal(sig Signal) {
	if sig == SignalSkipWait {
		t.SkipWait()
	}
}

// WaitRemaining returns the seconds left on the current wait.
func (t *Timeline) WaitRemaining() float64 { return t.waitRemaining }

// Finished reports whether the queue is empty and no wait is pending.
// Further Update calls are no-ops once true.
func (t *Timeline) Finished() bool {
	return t.next >= len(t.pending) && t.waitRemaining <= 0
}
