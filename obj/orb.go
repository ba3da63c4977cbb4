package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

const orbSize = 10.0

// XPOrb is a kinematic collectible that bobs in place. It has no physics
// body, so the transition freeze doesn't touch it.
type XPOrb struct {
	baseX float64
	baseY float64
	phase float64
}

func NewXPOrb(x, y float64) *XPOrb {
	return &XPOrb{baseX: x, baseY: y}
}

func (o *XPOrb) Update() {
	if o == nil {
		return
	}
	o.phase += 0.05
}

func (o *XPOrb) Position() (float64, float64) {
	if o == nil {
		return 0, 0
	}
	return o.baseX, o.baseY + 4*math.Sin(o.phase)
}

func (o *XPOrb) Draw(world *ebiten.Image, camX, camY, zoom float64) {
	if o == nil || world == nil {
		return
	}
	x, y := o.Position()
	drawWorldRect(world, x-orbSize/2, y-orbSize/2, orbSize, orbSize, camX, camY, zoom, colornames.Deepskyblue)
}
