package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/sizeshift/session"
)

const (
	enemyW = 26.0
	enemyH = 26.0

	enemyPatrolRange = 120.0
	enemyMoveSpeed   = 60.0

	defaultEnemyHealth = 3
)

// Enemy is a patrolling hazard. Its AI keeps running during a size
// transition, but the body is frozen at the physics level so it holds
// position regardless.
type Enemy struct {
	body *Body

	enemyType string
	health    int
	startX    float64
	startY    float64
	// direction is -1 or 1 along the patrol axis
	direction float64
}

// NewEnemy creates a patrol enemy anchored at (startX, startY).
func NewEnemy(pw *PhysicsWorld, enemyType string, startX, startY float64) *Enemy {
	e := &Enemy{
		enemyType: enemyType,
		health:    defaultEnemyHealth,
		startX:    startX,
		startY:    startY,
		direction: 1,
	}
	if pw != nil {
		e.body = pw.NewBody(startX, startY, enemyW, enemyH, collisionTypeEnemy, true)
	}
	return e
}

// RestoreEnemy rebuilds an enemy from a snapshot captured at scene teardown.
func RestoreEnemy(pw *PhysicsWorld, snap session.EnemySnapshot) *Enemy {
	e := NewEnemy(pw, snap.EnemyType, snap.StartX, snap.StartY)
	e.health = snap.Health
	if snap.Direction != 0 {
		e.direction = snap.Direction
	}
	e.body.SetPosition(snap.X, snap.Y)
	return e
}

// Snapshot captures the enemy state for replay on scene re-entry.
func (e *Enemy) Snapshot() session.EnemySnapshot {
	if e == nil {
		return session.EnemySnapshot{}
	}
	x, y := e.body.Position()
	return session.EnemySnapshot{
		X:         x,
		Y:         y,
		Health:    e.health,
		StartX:    e.startX,
		StartY:    e.startY,
		Direction: e.direction,
		EnemyType: e.enemyType,
	}
}

// Update runs the patrol AI. It is still invoked while frozen; the frozen
// body simply ignores the velocity writes.
func (e *Enemy) Update() {
	if e == nil || e.body == nil {
		return
	}
	x, _ := e.body.Position()
	if x > e.startX+enemyPatrolRange {
		e.direction = -1
	} else if x < e.startX-enemyPatrolRange {
		e.direction = 1
	}
	_, vy := e.body.Velocity()
	e.body.SetVelocity(e.direction*enemyMoveSpeed, vy)
}

func (e *Enemy) Health() int {
	if e == nil {
		return 0
	}
	return e.health
}

func (e *Enemy) Type() string {
	if e == nil {
		return ""
	}
	return e.enemyType
}

// Freeze, Unfreeze and Frozen suspend the body for the transition cinematic.
func (e *Enemy) Freeze() {
	if e != nil {
		e.body.Freeze()
	}
}

func (e *Enemy) Unfreeze() {
	if e != nil {
		e.body.Unfreeze()
	}
}

func (e *Enemy) Frozen() bool {
	return e != nil && e.body.Frozen()
}

func (e *Enemy) Draw(world *ebiten.Image, camX, camY, zoom float64) {
	if e == nil || world == nil {
		return
	}
	x, y := e.body.Position()
	drawWorldRect(world, x-enemyW/2, y-enemyH/2, enemyW, enemyH, camX, camY, zoom, colornames.Mediumseagreen)
	eyeX := x + e.direction*enemyW/4
	drawWorldRect(world, eyeX-2, y-enemyH/4, 4, 4, camX, camY, zoom, colornames.Black)
}
