package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sizeshift/common"
)

// Camera renders the world centered on a given world coordinate and supports
// zoom. Scroll space (the world-space top-left of the view) is what the
// transition tweens manipulate.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64
	off     *ebiten.Image

	// smoothing factor (0..1). higher -> faster follow. e.g. 0.15
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and initial zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	// the offscreen buffer is created lazily in Render
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15}
	// default position at screen center in world coords
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetZoom updates the camera zoom.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current camera zoom.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h int) {
	c.worldW = float64(w)
	c.worldH = float64(h)
}

func (c *Camera) SetSmooth(f float64) {
	if f < 0 {
		f = 0
	}
	c.smooth = f
}

// ScreenSize returns the logical screen size the camera renders to.
func (c *Camera) ScreenSize() (int, int) {
	return c.screenW, c.screenH
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.PosX, c.PosY
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.PosX - viewW/2.0, c.PosY - viewH/2.0
}

// SetScroll places the view's world-space top-left, clamped to world bounds.
func (c *Camera) SetScroll(x, y float64) {
	if c.zoom == 0 {
		return
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	c.PosX = x + viewW/2.0
	c.PosY = y + viewH/2.0
	c.clampToBounds()
}

// WorldToScreen converts a world coordinate to screen pixels at the current
// scroll and zoom.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx, sy := c.ViewTopLeft()
	return (wx - sx) * c.zoom, (wy - sy) * c.zoom
}

// PinScreenPoint recomputes scroll so the world point (wx, wy) lands on the
// screen point (px, py) at the current zoom, clamped to world bounds. The
// zoom tweens call this every step to hold the player visually still while
// the view scales around them.
func (c *Camera) PinScreenPoint(wx, wy, px, py float64) {
	if c.zoom == 0 {
		return
	}
	c.SetScroll(wx-px/c.zoom, wy-py/c.zoom)
}

// Follow moves the camera toward the target world coordinate. Call from the
// fixed-rate Update loop to get consistent smoothing.
func (c *Camera) Follow(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}

	// snap position to 1/zoom grid to align source texels to integer screen pixels
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}
	c.clampToBounds()
}

// SnapTo immediately sets the camera center to the given world coordinates.
// Use this when an immediate, non-smoothed camera placement is required
// (e.g. after a scene load).
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	if c.zoom != 0 {
		c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
		c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	}
	c.clampToBounds()
}

func (c *Camera) clampToBounds() {
	if c.zoom == 0 {
		return
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	halfW := viewW / 2.0
	halfH := viewH / 2.0
	if c.worldW > 0 {
		minX := halfW
		maxX := c.worldW - halfW
		if maxX < minX {
			// world smaller than view: center on world
			c.PosX = c.worldW / 2.0
		} else {
			c.PosX = common.Clamp(c.PosX, minX, maxX)
		}
	}
	if c.worldH > 0 {
		minY := halfH
		maxY := c.worldH - halfH
		if maxY < minY {
			c.PosY = c.worldH / 2.0
		} else {
			c.PosY = common.Clamp(c.PosY, minY, maxY)
		}
	}
}

// Render clears the offscreen buffer, lets the caller draw the world into it
// with offsets based on ViewTopLeft, then blits it to the screen.
func (c *Camera) Render(screen *ebiten.Image, drawWorld func(world *ebiten.Image)) {
	if c.off == nil {
		c.off = ebiten.NewImage(c.screenW, c.screenH)
	}
	c.off.Clear()
	if drawWorld != nil {
		drawWorld(c.off)
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(c.off, op)
}
