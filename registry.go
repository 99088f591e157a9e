package diorama

import (
	"go.uber.org/zap"
)

// DrawCommand is one resolved draw instruction: a texture handle plus the
// screen-space affine that places its unit quad, in final draw order.
type DrawCommand struct {
	Key       string
	Transform [6]float64
	Texture   *Texture
	Layer     Layer
	ZIndex    int
	order     int // insertion order, assigned during DrawList for stable sort
}

// renderEntry is one live sprite in the registry arena. Entries are never
// removed, so the arena index doubles as the immutable insertion order.
type renderEntry struct {
	object    SpriteObject
	tex       *Texture
	transform [6]float64
}

// Registry owns all sprite objects, keyed by scene key, together with the
// shared orthographic projection. All methods must be called from the
// frame-processing goroutine; there is no internal locking.
type Registry struct {
	entries []renderEntry
	lookup  map[string]int

	proj         [6]float64
	viewW, viewH int

	loader TextureLoader
	log    *zap.Logger

	// Reusable draw-list buffers; grow to high-water mark, then zero allocs.
	commands []DrawCommand
	sortBuf  []DrawCommand
}

// NewRegistry creates an empty registry projecting onto a viewport of the
// given pixel size. A nil logger disables logging.
func NewRegistry(viewportW, viewportH int, loader TextureLoader, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		lookup: make(map[string]int),
		proj:   buildProjection(viewportW, viewportH),
		viewW:  viewportW,
		viewH:  viewportH,
		loader: loader,
		log:    log,
	}
}

// Upsert creates the entry for obj's scene key, or updates it in place.
// The texture is reloaded only when the path actually changed. The update
// is atomic: the new texture is resolved before any entry state is
// touched, so a load failure leaves the previous entry (and the sort
// order) fully intact and is returned to the caller.
func (r *Registry) Upsert(obj SpriteObject) error {
	key := obj.SceneKey()

	if idx, ok := r.lookup[key]; ok {
		existing := &r.entries[idx]
		tex := existing.tex
		if existing.object.Texture != obj.Texture {
			loaded, err := r.loader.Load(obj.Texture)
			if err != nil {
				return err
			}
			tex = loaded
		}
		existing.object = obj
		existing.tex = tex
		existing.transform = resolveTransform(r.proj, obj)
		r.log.Debug("updated scene object", zap.String("key", key))
		return nil
	}

	tex, err := r.loader.Load(obj.Texture)
	if err != nil {
		return err
	}
	r.entries = append(r.entries, renderEntry{
		object:    obj,
		tex:       tex,
		transform: resolveTransform(r.proj, obj),
	})
	r.lookup[key] = len(r.entries) - 1
	r.log.Debug("created scene object",
		zap.String("key", key),
		zap.Int("order", len(r.entries)-1))
	return nil
}

// Get returns the current state of the object stored under key.
func (r *Registry) Get(key string) (SpriteObject, bool) {
	idx, ok := r.lookup[key]
	if !ok {
		return SpriteObject{}, false
	}
	return r.entries[idx].object, true
}

// Len returns the number of live entries, hidden included.
func (r *Registry) Len() int { return len(r.entries) }

// Viewport returns the pixel size the projection was last built for.
func (r *Registry) Viewport() (width, height int) { return r.viewW, r.viewH }

// Resize rebuilds the shared projection for the new viewport and
// recomputes every entry's resolved transform from it, so no entry can
// retain a stale matrix. Idempotent: equal sizes produce bit-identical
// transforms.
func (r *Registry) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.proj = buildProjection(width, height)
	r.viewW, r.viewH = width, height
	for i := range r.entries {
		r.entries[i].transform = resolveTransform(r.proj, r.entries[i].object)
	}
	r.log.Debug("rebuilt projection", zap.Int("width", width), zap.Int("height", height))
}

// DrawList returns all non-hidden entries ordered by (layer, z-index,
// insertion order). The sort is stable and independent of map iteration
// order, so draw order is reproducible across runs. The returned slice is
// reused by the next call.
func (r *Registry) DrawList() []DrawCommand {
	r.commands = r.commands[:0]
	for i := range r.entries {
		e := &r.entries[i]
		if e.object.Hidden {
			continue
		}
		r.commands = append(r.commands, DrawCommand{
			Key:       e.object.SceneKey(),
			Transform: e.transform,
			Texture:   e.tex,
			Layer:     e.object.Layer,
			ZIndex:    e.object.ZIndex,
			order:     i,
		})
	}
	r.mergeSort()
	return r.commands
}

// commandLessOrEqual returns true if a should sort before or at the same
// position as b. Using <= on the insertion order ensures stability.
func commandLessOrEqual(a, b DrawCommand) bool {
	if a.Layer != b.Layer {
		return a.Layer < b.Layer
	}
	if a.ZIndex != b.ZIndex {
		return a.ZIndex < b.ZIndex
	}
	return a.order <= b.order
}

// mergeSort sorts r.commands in-place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches
// its high-water mark.
func (r *Registry) mergeSort() {
	n := len(r.commands)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]DrawCommand, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.commands
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.commands, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []DrawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
