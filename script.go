package diorama

// Script is a unit of scene behavior with a Unity-style lifecycle: Start
// runs exactly once before the first Update, then Update runs every frame
// until Finished reports true.
type Script interface {
	Start(ctx *Context) error
	Update(dt float64, ctx *Context) error
	OnSignal(sig Signal)
	Finished() bool
}

type scriptEntry struct {
	script  Script
	started bool
}

// Runner drives a set of scripts each frame and broadcasts signals to
// them. Scripts run in the order they were added.
type Runner struct {
	scripts []scriptEntry
}

// NewRunner creates a runner over the given scripts.
func NewRunner(scripts ...Script) *Runner {
	r := &Runner{}
	for _, s := range scripts {
		r.Add(s)
	}
	return r
}

// Add appends a script. Its Start runs before its first Update.
func (r *Runner) Add(s Script) {
	r.scripts = append(r.scripts, scriptEntry{script: s})
}

// Broadcast delivers a signal to every script, finished or not.
func (r *Runner) Broadcast(sig Signal) {
	for i := range r.scripts {
		r.scripts[i].script.OnSignal(sig)
	}
}

// Finished reports whether every script has reached terminal state.
func (r *Runner) Finished() bool {
	for i := range r.scripts {
		if !r.scripts[i].script.Finished() {
			return false
		}
	}
	return true
}

// Update advances all unfinished scripts by dt. The first error stops the
// pass and surfaces to the caller; remaining scripts run next frame.
func (r *Runner) Update(dt float64, ctx *Context) error {
	for i := range r.scripts {
		entry := &r.scripts[i]
		if entry.script.Finished() {
			continue
		}

		if !entry.started {
			if err := entry.script.Start(ctx); err != nil {
				return err
			}
			entry.started = true
		}

		// Start may have brought the script to terminal state already.
		if entry.script.Finished() {
			continue
		}

		if err := entry.script.Update(dt, ctx); err != nil {
			return err
		}
	}
	return nil
}
