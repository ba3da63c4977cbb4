package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/sizeshift/common"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypePlayer
	collisionTypeEnemy
	collisionTypeProjectile
)

// PhysicsWorld owns the Chipmunk space and the static level geometry. Each
// scene builds a fresh one and drops it wholesale at teardown.
type PhysicsWorld struct {
	space  *cp.Space
	worldW float64
	worldH float64
}

// NewPhysicsWorld creates a space bounded by the world edges.
func NewPhysicsWorld(worldW, worldH float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	pw := &PhysicsWorld{space: space, worldW: worldW, worldH: worldH}
	pw.buildEdges()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// AddPlatform adds a static box the dynamic bodies collide with.
func (pw *PhysicsWorld) AddPlatform(x, y, w, h float64) {
	if pw == nil || pw.space == nil || w <= 0 || h <= 0 {
		return
	}
	bb := cp.BB{L: x, B: y, R: x + w, T: y + h}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)
}

func (pw *PhysicsWorld) buildEdges() {
	if pw == nil || pw.space == nil || pw.worldW <= 0 || pw.worldH <= 0 {
		return
	}
	thickness := 1.0
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: pw.worldW, Y: 0}},
		{a: cp.Vector{X: 0, Y: pw.worldH}, b: cp.Vector{X: pw.worldW, Y: pw.worldH}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: pw.worldH}},
		{a: cp.Vector{X: pw.worldW, Y: 0}, b: cp.Vector{X: pw.worldW, Y: pw.worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, thickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}
}

// NewBody creates a dynamic box body in the space.
func (pw *PhysicsWorld) NewBody(x, y, w, h float64, ct cp.CollisionType, fixedRotation bool) *Body {
	if pw == nil || pw.space == nil {
		return nil
	}
	mass := 1.0
	moment := cp.MomentForBox(mass, w, h)
	if fixedRotation {
		moment = math.Inf(1)
	}
	cpBody := cp.NewBody(mass, moment)
	cpBody.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(cpBody, w, h, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(ct)

	pw.space.AddBody(cpBody)
	pw.space.AddShape(shape)
	return &Body{body: cpBody, shape: shape}
}

// RemoveBody takes a body and its shape out of the space.
func (pw *PhysicsWorld) RemoveBody(b *Body) {
	if pw == nil || pw.space == nil || b == nil || b.body == nil {
		return
	}
	if b.shape != nil {
		pw.space.RemoveShape(b.shape)
	}
	pw.space.RemoveBody(b.body)
	b.body = nil
	b.shape = nil
}

// Body wraps a dynamic Chipmunk body. Freeze suspends simulation for the
// body without removing it: position stays valid for snapshot capture while
// the transition cinematic plays.
type Body struct {
	body  *cp.Body
	shape *cp.Shape

	frozen   bool
	savedVel cp.Vector
}

func (b *Body) Position() (float64, float64) {
	if b == nil || b.body == nil {
		return 0, 0
	}
	p := b.body.Position()
	return p.X, p.Y
}

func (b *Body) SetPosition(x, y float64) {
	if b == nil || b.body == nil {
		return
	}
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

func (b *Body) Velocity() (float64, float64) {
	if b == nil || b.body == nil {
		return 0, 0
	}
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) SetVelocity(x, y float64) {
	if b == nil || b.body == nil || b.frozen {
		return
	}
	b.body.SetVelocity(x, y)
}

// Freeze pins the body in place. AI update functions may keep running; the
// body ignores gravity and velocity writes until Unfreeze.
func (b *Body) Freeze() {
	if b == nil || b.body == nil || b.frozen {
		return
	}
	b.frozen = true
	b.savedVel = b.body.Velocity()
	b.body.SetVelocity(0, 0)
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		body.SetVelocityVector(cp.Vector{})
	})
}

// Unfreeze restores normal integration and the velocity held at freeze time.
func (b *Body) Unfreeze() {
	if b == nil || b.body == nil || !b.frozen {
		return
	}
	b.frozen = false
	b.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
	b.body.SetVelocityVector(b.savedVel)
}

// Frozen reports whether physics is currently suspended for the body.
func (b *Body) Frozen() bool {
	return b != nil && b.frozen
}
