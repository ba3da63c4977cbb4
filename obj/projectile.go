package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

const (
	projectileSize = 8.0
	projectileTTL  = 180
)

// Projectile is a short-lived moving body. Gravity applies; a frozen body
// stops mid-flight for the duration of a transition.
type Projectile struct {
	body *Body
	ttl  int
}

func NewProjectile(pw *PhysicsWorld, x, y, vx, vy float64) *Projectile {
	p := &Projectile{ttl: projectileTTL}
	if pw != nil {
		p.body = pw.NewBody(x, y, projectileSize, projectileSize, collisionTypeProjectile, true)
		p.body.SetVelocity(vx, vy)
	}
	return p
}

// Update ticks the projectile lifetime. The TTL does not advance while the
// body is frozen, so a transition doesn't silently expire projectiles.
func (p *Projectile) Update() {
	if p == nil || p.Frozen() {
		return
	}
	if p.ttl > 0 {
		p.ttl--
	}
}

// Alive reports whether the projectile should stay in its container.
func (p *Projectile) Alive() bool {
	return p != nil && p.ttl > 0
}

func (p *Projectile) Position() (float64, float64) {
	if p == nil {
		return 0, 0
	}
	return p.body.Position()
}

func (p *Projectile) Freeze() {
	if p != nil {
		p.body.Freeze()
	}
}

func (p *Projectile) Unfreeze() {
	if p != nil {
		p.body.Unfreeze()
	}
}

func (p *Projectile) Frozen() bool {
	return p != nil && p.body.Frozen()
}

func (p *Projectile) Draw(world *ebiten.Image, camX, camY, zoom float64) {
	if p == nil || world == nil {
		return
	}
	x, y := p.body.Position()
	drawWorldRect(world, x-projectileSize/2, y-projectileSize/2, projectileSize, projectileSize, camX, camY, zoom, colornames.Gold)
}
