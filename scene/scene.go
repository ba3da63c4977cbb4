// Package scene implements the scene lifecycle shell around the transition
// core: construction, per-frame update with transition gating, teardown with
// session snapshot capture.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sizeshift/config"
	"github.com/milk9111/sizeshift/obj"
	"github.com/milk9111/sizeshift/render"
	"github.com/milk9111/sizeshift/session"
	"github.com/milk9111/sizeshift/transition"
)

// Scene keys. The config scene tables are validated against the registry at
// startup.
const (
	KeyTitle           = "TitleScene"
	KeyMainGame        = "MainGameScene"
	KeyMainGameMicro   = "MainGameMicroScene"
	KeyMainGameMacro   = "MainGameMacroScene"
	KeyUnderwater      = "UnderwaterScene"
	KeyUnderwaterMicro = "UnderwaterMicroScene"
)

// Scene is one screen of the game. Scenes are destroyed and recreated on
// every switch; anything that must survive lives in session.Context.
type Scene interface {
	Key() string
	Update() error
	Draw(screen *ebiten.Image)
	Dispose()
}

// Switcher destroys the current scene and constructs the named one.
type Switcher interface {
	StartScene(key string)
}

// Deps bundles the process-wide collaborators every scene constructor needs.
type Deps struct {
	Ctx         *session.Context
	Cfg         *config.Config
	Transition  *transition.System
	Backgrounds *render.Backgrounds
	Input       *obj.Input
	Switcher    Switcher
	ScreenW     int
	ScreenH     int
}

// Registry maps scene keys to constructors: table-driven dispatch so new
// scenes are added by registration, not convention.
type Registry struct {
	constructors map[string]func(deps *Deps) Scene
}

func NewRegistry() *Registry {
	return &Registry{constructors: map[string]func(deps *Deps) Scene{}}
}

func (r *Registry) Register(key string, ctor func(deps *Deps) Scene) {
	if r == nil || key == "" || ctor == nil {
		return
	}
	r.constructors[key] = ctor
}

// New constructs the named scene, nil for unknown keys.
func (r *Registry) New(key string, deps *Deps) Scene {
	if r == nil {
		return nil
	}
	ctor, ok := r.constructors[key]
	if !ok {
		return nil
	}
	return ctor(deps)
}

// Has reports whether a key is registered.
func (r *Registry) Has(key string) bool {
	if r == nil {
		return false
	}
	_, ok := r.constructors[key]
	return ok
}

// DefaultRegistry wires every shipped scene.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(KeyTitle, func(deps *Deps) Scene { return NewTitleScene(deps) })
	for _, key := range []string{KeyMainGame, KeyMainGameMicro, KeyMainGameMacro, KeyUnderwater, KeyUnderwaterMicro} {
		key := key
		reg.Register(key, func(deps *Deps) Scene { return NewGameScene(key, deps) })
	}
	return reg
}
