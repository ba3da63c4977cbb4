// Package render owns the ebiten-backed texture cache and the screen-space
// drawing the core schedules: materialized backdrops and the transition
// cross-fade overlay.
package render

import "github.com/hajimehoshi/ebiten/v2"

// Textures is a string-keyed image cache. It is passed around explicitly so
// stale-key replacement stays visible to tests.
type Textures struct {
	images map[string]*ebiten.Image
}

func NewTextures() *Textures {
	return &Textures{images: map[string]*ebiten.Image{}}
}

func (t *Textures) Put(key string, img *ebiten.Image) {
	if t == nil || key == "" || img == nil {
		return
	}
	t.images[key] = img
}

func (t *Textures) Get(key string) *ebiten.Image {
	if t == nil || key == "" {
		return nil
	}
	return t.images[key]
}

func (t *Textures) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.images[key]
	return ok
}

func (t *Textures) Remove(key string) {
	if t == nil {
		return
	}
	if img, ok := t.images[key]; ok {
		img.Deallocate()
		delete(t.images, key)
	}
}
