package render

import "github.com/hajimehoshi/ebiten/v2"

// Overlay is the full-screen, camera-independent image the transition
// cross-fades in over the live backdrop. It starts fully transparent.
type Overlay struct {
	img   *ebiten.Image
	alpha float64
}

func (o *Overlay) SetAlpha(a float64) {
	if o == nil {
		return
	}
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	o.alpha = a
}

func (o *Overlay) Alpha() float64 {
	if o == nil {
		return 0
	}
	return o.alpha
}

// Destroy releases the overlay's reference; the texture itself belongs to
// the cache.
func (o *Overlay) Destroy() {
	if o == nil {
		return
	}
	o.img = nil
	o.alpha = 0
}

// Draw stretches the overlay across the screen at its current alpha. Drawn
// above the live backdrop and below gameplay layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.img == nil || screen == nil || o.alpha <= 0 {
		return
	}
	iw := o.img.Bounds().Dx()
	ih := o.img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screen.Bounds().Dx())/float64(iw), float64(screen.Bounds().Dy())/float64(ih))
	op.ColorScale.ScaleAlpha(float32(o.alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.img, op)
}

// OverlayFactory builds overlays from cached textures.
type OverlayFactory struct {
	textures *Textures
}

func NewOverlayFactory(textures *Textures) *OverlayFactory {
	return &OverlayFactory{textures: textures}
}

// NewOverlay returns a transparent overlay over the named texture, or nil
// when the texture is absent (the cross-fade is skipped in that case).
func (f *OverlayFactory) NewOverlay(textureKey string) *Overlay {
	if f == nil || f.textures == nil {
		return nil
	}
	img := f.textures.Get(textureKey)
	if img == nil {
		return nil
	}
	return &Overlay{img: img}
}
