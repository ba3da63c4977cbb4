package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sizeshift/procgen"
)

// Backgrounds materializes procgen rasters into cached textures.
type Backgrounds struct {
	gen      *procgen.Generator
	textures *Textures
}

func NewBackgrounds(gen *procgen.Generator, textures *Textures) *Backgrounds {
	return &Backgrounds{gen: gen, textures: textures}
}

// Prerender paints a theme for a stage seed into the named texture without
// displaying it, replacing any stale texture under the same key. Returns
// false when nothing could be produced.
func (b *Backgrounds) Prerender(theme procgen.Theme, seed int, key string) bool {
	if b == nil || b.gen == nil || b.textures == nil || key == "" {
		return false
	}
	img := b.gen.Paint(theme, seed)
	if img == nil {
		return false
	}
	b.textures.Remove(key)
	b.textures.Put(key, ebiten.NewImageFromImage(img))
	return true
}

// Generate paints a theme into the named texture for display as a scene
// backdrop. Same path as Prerender; the name marks intent at call sites.
func (b *Backgrounds) Generate(theme procgen.Theme, seed int, key string) bool {
	return b.Prerender(theme, seed, key)
}

// DrawCover draws a cached texture stretched over the whole screen. Scene
// backdrops are screen-locked; they do not scroll with the camera.
func (b *Backgrounds) DrawCover(screen *ebiten.Image, key string) {
	if b == nil || screen == nil {
		return
	}
	img := b.textures.Get(key)
	if img == nil {
		return
	}
	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
