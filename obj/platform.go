package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// Platform is a static piece of level geometry backed by a static shape in
// the physics world.
type Platform struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewPlatform(pw *PhysicsWorld, x, y, w, h float64) *Platform {
	if pw != nil {
		pw.AddPlatform(x, y, w, h)
	}
	return &Platform{X: x, Y: y, W: w, H: h}
}

func (p *Platform) Bounds() (float64, float64, float64, float64) {
	if p == nil {
		return 0, 0, 0, 0
	}
	return p.X, p.Y, p.W, p.H
}

func (p *Platform) Draw(world *ebiten.Image, camX, camY, zoom float64) {
	if p == nil || world == nil {
		return
	}
	drawWorldRect(world, p.X, p.Y, p.W, p.H, camX, camY, zoom, colornames.Saddlebrown)
}
