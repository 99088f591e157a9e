package diorama

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is the GPU-side resource handle for one loaded image.
type Texture struct {
	Path   string
	Image  *ebiten.Image
	Width  int
	Height int
}

// TextureLoader resolves a texture path to a loaded resource. Loading is
// synchronous: Upsert blocks on it, which is the accepted latency cost of
// the single-threaded frame contract.
type TextureLoader interface {
	Load(path string) (*Texture, error)
}

// LoadError reports a texture path that could not be resolved or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("diorama: load texture %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ImageLoader loads and caches textures from an fs.FS, falling back to OS
// paths when no filesystem is set. Safe to share across registries; a path
// is decoded and uploaded at most once.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*Texture
}

// NewImageLoader creates a loader reading from fsys. A nil fsys reads
// directly from the operating system's filesystem.
func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{fsys: fsys, cache: make(map[string]*Texture)}
}

// Load returns the cached texture for path, decoding and uploading it on
// first use. Failures are reported as *LoadError and leave the cache
// untouched.
func (l *ImageLoader) Load(path string) (*Texture, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("empty texture path")}
	}
	if tex, ok := l.cache[path]; ok {
		return tex, nil
	}

	data, err := l.readFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	tex := &Texture{
		Path:   path,
		Image:  ebiten.NewImageFromImage(img),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	l.cache[path] = tex
	return tex, nil
}

func (l *ImageLoader) readFile(path string) ([]byte, error) {
	if l.fsys != nil {
		return fs.ReadFile(l.fsys, path)
	}
	return os.ReadFile(path)
}
