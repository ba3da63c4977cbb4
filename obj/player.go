package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const (
	playerBaseW = 28.0
	playerBaseH = 36.0

	playerMoveSpeed = 180.0
	playerJumpSpeed = 420.0
)

// Player is the controllable entity. Its collision box is sized from the
// display scale at construction; mid-transition scale changes are visual
// only, the arriving scene rebuilds the body at the final scale.
type Player struct {
	body *Body

	scaleX float64
	scaleY float64

	// frames since the player last had near-zero vertical speed; grounded
	// while this stays small
	airFrames int
}

// NewPlayer creates the player at a world position with the given display scale.
func NewPlayer(pw *PhysicsWorld, x, y, scale float64) *Player {
	if scale <= 0 {
		scale = 1
	}
	p := &Player{scaleX: scale, scaleY: scale}
	if pw != nil {
		p.body = pw.NewBody(x, y, playerBaseW*scale, playerBaseH*scale, collisionTypePlayer, true)
	}
	return p
}

// Position returns the player's world position.
func (p *Player) Position() (float64, float64) {
	if p == nil {
		return 0, 0
	}
	return p.body.Position()
}

func (p *Player) SetPosition(x, y float64) {
	if p == nil {
		return
	}
	p.body.SetPosition(x, y)
}

// Scale returns the current display scale (both axes move together).
func (p *Player) Scale() float64 {
	if p == nil {
		return 1
	}
	return p.scaleX
}

// SetScale updates the display scale on both axes.
func (p *Player) SetScale(s float64) {
	if p == nil || s <= 0 {
		return
	}
	p.scaleX = s
	p.scaleY = s
}

// Update applies movement input to the physics body.
func (p *Player) Update(in *Input) {
	if p == nil || p.body == nil || in == nil {
		return
	}
	vx, vy := p.body.Velocity()
	vx = float64(in.MoveX) * playerMoveSpeed

	if vy > -1 && vy < 1 {
		p.airFrames = 0
	} else {
		p.airFrames++
	}
	if in.JumpPressed && p.airFrames < 4 {
		vy = -playerJumpSpeed
	}
	p.body.SetVelocity(vx, vy)
}

// Draw renders the player as a scaled box; camX/camY is the view top-left.
func (p *Player) Draw(world *ebiten.Image, camX, camY, zoom float64) {
	if p == nil || world == nil {
		return
	}
	x, y := p.Position()
	w := playerBaseW * p.scaleX
	h := playerBaseH * p.scaleY
	drawWorldRect(world, x-w/2, y-h/2, w, h, camX, camY, zoom, colornames.Orangered)
	drawWorldRect(world, x-w/6, y-h/2, w/3, h/5, camX, camY, zoom, colornames.White)
}

func drawWorldRect(world *ebiten.Image, x, y, w, h, camX, camY, zoom float64, c color.Color) {
	vector.DrawFilledRect(world,
		float32((x-camX)*zoom), float32((y-camY)*zoom),
		float32(w*zoom), float32(h*zoom), c, false)
}
