// internal/assets/image_manager.go
package assets

import (
	"bytes"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageManager loads the game's images by logical name. LoadAll decodes
// every entry concurrently and returns once each one has either decoded
// or failed; failures are logged and the entry is simply absent, so the
// renderer can fall back to flat shapes. Decoded pixels are kept on the
// CPU side and uploaded to the GPU lazily on first draw, which keeps the
// decode path usable in headless tests.
type ImageManager struct {
	mu      sync.Mutex
	decoded map[string]image.Image
	gpu     map[string]*ebiten.Image
}

func NewImageManager() *ImageManager {
	return &ImageManager{
		decoded: make(map[string]image.Image),
		gpu:     make(map[string]*ebiten.Image),
	}
}

// LoadAll reads and decodes every named file from fsys. There is no
// partial-progress reporting, no retry and no cancellation; the call
// resolves when the last entry settles.
func (m *ImageManager) LoadAll(fsys fs.FS, paths map[string]string) {
	var wg sync.WaitGroup
	for name, path := range paths {
		wg.Add(1)
		go func(name, path string) {
			defer wg.Done()
			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				log.Printf("WARNING: failed to read image %q from %s: %v", name, path, err)
				return
			}
			img, _, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				log.Printf("WARNING: failed to decode image %q from %s: %v", name, path, err)
				return
			}
			m.mu.Lock()
			m.decoded[name] = img
			m.mu.Unlock()
		}(name, path)
	}
	wg.Wait()
}

// Has reports whether an image decoded successfully.
func (m *ImageManager) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.decoded[name]
	return ok
}

// Size returns the pixel dimensions of a decoded image.
func (m *ImageManager) Size(name string) (w, h int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.decoded[name]
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Image returns the GPU-side image for name, uploading it on first use.
// Must only be called from the draw path.
func (m *ImageManager) Image(name string) (*ebiten.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if img, ok := m.gpu[name]; ok {
		return img, true
	}
	src, ok := m.decoded[name]
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	m.gpu[name] = img
	return img, true
}
