// Package session holds the process-wide game state that must outlive
// individual scenes. Scenes are destroyed and recreated on every switch, so
// anything a transition needs on the far side of that boundary lives here.
package session

// Direction tags which way a size transition moves the player.
type Direction string

const (
	DirectionGrow   Direction = "grow"
	DirectionShrink Direction = "shrink"
)

// Player is the live player entity owned by the current scene. The context
// borrows it and never destroys it.
type Player interface {
	Position() (x, y float64)
	Scale() float64
	SetScale(s float64)
}

// PhysicsEntity is a live entity whose physics body can be suspended while a
// size transition plays out.
type PhysicsEntity interface {
	Freeze()
	Unfreeze()
	Frozen() bool
}

// Orb is a collectible tracked by the context for cross-system access.
type Orb interface {
	Position() (x, y float64)
}

// Platform is a static piece of level geometry.
type Platform interface {
	Bounds() (x, y, w, h float64)
}

// Position is a saved player placement within one scene.
type Position struct {
	X float64
	Y float64
}

// EnemySnapshot captures one enemy at scene teardown so the scene can be
// rebuilt with the same enemies on re-entry.
type EnemySnapshot struct {
	X         float64
	Y         float64
	Health    int
	StartX    float64
	StartY    float64
	Direction float64
	EnemyType string
}

// Context is the single shared mutable state surface. It is constructed once
// at process start and passed explicitly to everything that needs it.
type Context struct {
	Player Player
	// Scene is the key of the currently hosting scene, "" before the first
	// scene is created.
	Scene string

	Enemies     *Group[PhysicsEntity]
	Projectiles *Group[PhysicsEntity]
	XPOrbs      *Group[Orb]
	Platforms   *Group[Platform]

	// SavedPositions and SavedEnemies always hold one entry per known scene
	// key; positions default to the spawn point, snapshots to empty.
	SavedPositions map[string]Position
	SavedEnemies   map[string][]EnemySnapshot

	// InSizeTransition gates camera follow and size-change input in the
	// surrounding systems. True from transition start until the arrival
	// phase (or a forced cleanup) completes.
	InSizeTransition bool

	// Stage is the current progression depth. It seeds background
	// generation, so re-entering a stage repaints the same backdrop.
	Stage int

	transitionZoom      float64
	transitionDirection Direction
	handoffSet          bool
}

// NewContext builds a context with default saved state for every scene key.
func NewContext(sceneKeys []string, spawn Position) *Context {
	c := &Context{
		Enemies:        NewGroup[PhysicsEntity](),
		Projectiles:    NewGroup[PhysicsEntity](),
		XPOrbs:         NewGroup[Orb](),
		Platforms:      NewGroup[Platform](),
		SavedPositions: make(map[string]Position, len(sceneKeys)),
		SavedEnemies:   make(map[string][]EnemySnapshot, len(sceneKeys)),
		Stage:          1,
	}
	for _, key := range sceneKeys {
		c.SavedPositions[key] = spawn
		c.SavedEnemies[key] = nil
	}
	return c
}

// Initialized reports whether a scene has installed itself and its player.
func (c *Context) Initialized() bool {
	return c != nil && c.Player != nil && c.Scene != ""
}

// SetHandoff stores the departure side of a transition. Zoom and direction
// are always set together; callers cannot set one without the other.
func (c *Context) SetHandoff(zoom float64, dir Direction) {
	if c == nil {
		return
	}
	c.transitionZoom = zoom
	c.transitionDirection = dir
	c.handoffSet = true
}

// Handoff returns the pending transition metadata. ok is false when the
// current scene was entered normally rather than via a transition.
func (c *Context) Handoff() (zoom float64, dir Direction, ok bool) {
	if c == nil || !c.handoffSet {
		return 0, "", false
	}
	return c.transitionZoom, c.transitionDirection, true
}

// ClearHandoff drops both metadata fields together.
func (c *Context) ClearHandoff() {
	if c == nil {
		return
	}
	c.transitionZoom = 0
	c.transitionDirection = ""
	c.handoffSet = false
}

// SavePosition records the player's last position in the given scene.
func (c *Context) SavePosition(sceneKey string, pos Position) {
	if c == nil || sceneKey == "" {
		return
	}
	c.SavedPositions[sceneKey] = pos
}

// SaveEnemies replaces the stored snapshots for the given scene.
func (c *Context) SaveEnemies(sceneKey string, snaps []EnemySnapshot) {
	if c == nil || sceneKey == "" {
		return
	}
	c.SavedEnemies[sceneKey] = snaps
}
