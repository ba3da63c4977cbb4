package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sizeshift/config"
	"github.com/milk9111/sizeshift/obj"
	"github.com/milk9111/sizeshift/procgen"
	"github.com/milk9111/sizeshift/render"
	"github.com/milk9111/sizeshift/scene"
	"github.com/milk9111/sizeshift/session"
	"github.com/milk9111/sizeshift/transition"
	"github.com/milk9111/sizeshift/tween"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game is the ebiten shell. It owns everything that outlives a scene: the
// session context, the tween runner, the texture cache, and the transition
// system. Scenes come and go underneath it.
type Game struct {
	cfg        *config.Config
	configPath string

	ctx         *session.Context
	runner      *tween.Runner
	textures    *render.Textures
	backgrounds *render.Backgrounds
	trans       *transition.System

	registry *scene.Registry
	deps     *scene.Deps
	input    *obj.Input
	current  scene.Scene

	watcher *config.Watcher
}

func NewGame(cfg *config.Config, configPath string) (*Game, error) {
	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		runner:     tween.NewRunner(),
		textures:   render.NewTextures(),
		input:      obj.NewInput(),
		registry:   scene.DefaultRegistry(),
	}
	g.ctx = session.NewContext(cfg.SceneKeys(), session.Position{X: cfg.Spawn.X, Y: cfg.Spawn.Y})
	g.backgrounds = render.NewBackgrounds(procgen.NewGenerator(cfg.World.Width, cfg.World.Height), g.textures)

	// the config scene tables must be dispatchable before anything runs
	for _, key := range cfg.SceneKeys() {
		if !g.registry.Has(key) {
			return nil, fmt.Errorf("game: config scene %q has no registered constructor", key)
		}
	}

	overlays := render.NewOverlayFactory(g.textures)
	g.trans = transition.NewSystem(g.ctx, transitionConfig(cfg), g.runner, g.backgrounds, g.textures,
		transition.OverlayFactoryFunc(func(key string) transition.Overlay {
			if o := overlays.NewOverlay(key); o != nil {
				return o
			}
			return nil
		}), g)

	g.deps = &scene.Deps{
		Ctx:         g.ctx,
		Cfg:         cfg,
		Transition:  g.trans,
		Backgrounds: g.backgrounds,
		Input:       g.input,
		Switcher:    g,
		ScreenW:     baseWidth,
		ScreenH:     baseHeight,
	}

	if configPath != "" {
		w, err := config.NewWatcher(filepath.Dir(configPath))
		if err != nil {
			log.Warn("game: config watch disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	g.StartScene(scene.KeyTitle)
	return g, nil
}

func transitionConfig(cfg *config.Config) transition.Config {
	tc := transition.Config{
		DurationFrames:    cfg.Transition.DurationFrames,
		GrowZoom:          cfg.Transition.GrowZoom,
		ShrinkZoom:        cfg.Transition.ShrinkZoom,
		Ease:              tween.ByName(cfg.Transition.Easing),
		DefaultFinalScale: cfg.Transition.DefaultFinalScale,
		FinalScales:       map[string]float64{},
		Themes:            map[string]procgen.Theme{},
	}
	for key, sc := range cfg.Scenes {
		if sc.FinalScale > 0 {
			tc.FinalScales[key] = sc.FinalScale
		}
		if sc.Theme != "" {
			tc.Themes[key] = procgen.Theme(sc.Theme)
		}
	}
	return tc
}

// StartScene disposes the current scene and constructs the named one. The
// transition system calls this at the departure/arrival boundary. Dispose
// runs first: the new scene installs itself into the session context during
// construction, and a later Dispose of the old scene would wipe that.
func (g *Game) StartScene(key string) {
	if !g.registry.Has(key) {
		log.Error("game: unknown scene", "key", key)
		return
	}
	if g.current != nil {
		g.current.Dispose()
		g.current = nil
	}
	g.current = g.registry.New(key, g.deps)
}

func (g *Game) Update() error {
	g.pollConfigReload()
	g.input.Update()
	if g.current != nil {
		if err := g.current.Update(); err != nil {
			return err
		}
	}
	g.runner.Update()
	return nil
}

func (g *Game) pollConfigReload() {
	if g.watcher == nil {
		return
	}
	select {
	case name := <-g.watcher.Events:
		cfg, err := config.Load(g.configPath)
		if err != nil {
			log.Warn("game: config reload failed", "file", name, "err", err)
			return
		}
		// scene tables apply to scenes built from now on; transition tuning
		// swaps only while idle
		*g.cfg = *cfg
		g.trans.SetConfig(transitionConfig(cfg))
		log.Info("game: config reloaded", "file", name)
	case err := <-g.watcher.Errors:
		if err != nil {
			log.Warn("game: config watcher", "err", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.current != nil {
		g.current.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
