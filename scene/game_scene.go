package scene

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/sizeshift/common"
	"github.com/milk9111/sizeshift/obj"
	"github.com/milk9111/sizeshift/session"
)

// GameScene is one themed gameplay screen. All five size worlds share this
// implementation; the config tables parameterize everything that differs.
type GameScene struct {
	deps *Deps
	key  string

	cam     *obj.Camera
	physics *obj.PhysicsWorld

	player      *obj.Player
	enemies     []*obj.Enemy
	projectiles []*obj.Projectile
	orbs        []*obj.XPOrb
	platforms   []*obj.Platform

	bgKey string
}

// NewGameScene builds the scene's world, installs it into the session
// context, and runs the arrival half of any pending transition.
func NewGameScene(key string, deps *Deps) *GameScene {
	s := &GameScene{
		deps:  deps,
		key:   key,
		bgKey: "bg:" + key,
	}
	cfg := deps.Cfg
	spec := cfg.Scenes[key]
	ctx := deps.Ctx

	s.physics = obj.NewPhysicsWorld(float64(cfg.World.Width), float64(cfg.World.Height))
	for _, p := range spec.Platforms {
		s.platforms = append(s.platforms, obj.NewPlatform(s.physics, p.X, p.Y, p.W, p.H))
	}

	s.cam = obj.NewCamera(deps.ScreenW, deps.ScreenH, 1.0)
	s.cam.SetWorldBounds(cfg.World.Width, cfg.World.Height)

	// arriving via a transition snaps the player to this scene's exact
	// final scale; a normal entry restores the last saved placement
	_, _, viaTransition := ctx.Handoff()
	pos := session.Position{X: cfg.Spawn.X, Y: cfg.Spawn.Y}
	if !viaTransition {
		if saved, ok := ctx.SavedPositions[key]; ok {
			pos = saved
		}
	}
	s.player = obj.NewPlayer(s.physics, pos.X, pos.Y, cfg.FinalScale(key))

	// replay saved enemies when we have them, otherwise spawn from config
	if snaps := ctx.SavedEnemies[key]; len(snaps) > 0 {
		for _, snap := range snaps {
			s.enemies = append(s.enemies, obj.RestoreEnemy(s.physics, snap))
		}
	} else {
		for _, sp := range spec.Enemies {
			s.enemies = append(s.enemies, obj.NewEnemy(s.physics, sp.Type, sp.X, sp.Y))
		}
	}
	for _, o := range spec.Orbs {
		s.orbs = append(s.orbs, obj.NewXPOrb(o.X, o.Y))
	}

	s.installContext()

	// paint this scene's backdrop for the current stage
	if theme, ok := cfg.ThemeFor(key); ok {
		deps.Backgrounds.Generate(theme, ctx.Stage, s.bgKey)
	}

	px, py := s.player.Position()
	s.cam.SnapTo(px, py)

	// unconditional: no-ops on a cold start
	deps.Transition.Finish(s.cam)

	log.Info("scene: created", "key", key, "enemies", len(s.enemies), "stage", ctx.Stage)
	return s
}

// installContext points the session context at this scene's live entities,
// replacing the previous scene's wholesale.
func (s *GameScene) installContext() {
	ctx := s.deps.Ctx
	ctx.Player = s.player
	ctx.Scene = s.key
	ctx.Enemies.Reset()
	for _, e := range s.enemies {
		ctx.Enemies.Add(e)
	}
	ctx.Projectiles.Reset()
	for _, p := range s.projectiles {
		ctx.Projectiles.Add(p)
	}
	ctx.XPOrbs.Reset()
	for _, o := range s.orbs {
		ctx.XPOrbs.Add(o)
	}
	ctx.Platforms.Reset()
	for _, p := range s.platforms {
		ctx.Platforms.Add(p)
	}
}

func (s *GameScene) Key() string {
	return s.key
}

func (s *GameScene) Update() error {
	in := s.deps.Input
	transitioning := s.deps.Transition.IsTransitioning()

	if !transitioning {
		if in.MenuPressed {
			s.deps.Switcher.StartScene(KeyTitle)
			return nil
		}
		s.handleSizeChange(in)
		s.player.Update(in)
	} else if in.MenuPressed {
		// bailing to the menu mid-cinematic goes through the forced reset
		s.deps.Transition.Cleanup()
		s.deps.Switcher.StartScene(KeyTitle)
		return nil
	}

	// enemy AI and projectile updates run even while transitioning; frozen
	// bodies hold position regardless
	for _, e := range s.enemies {
		e.Update()
	}
	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Update()
		if p.Alive() {
			live = append(live, p)
		}
	}
	s.projectiles = live
	for _, o := range s.orbs {
		o.Update()
	}

	s.physics.Step(1.0 / common.TicksPerSecond)

	if !transitioning {
		px, py := s.player.Position()
		s.cam.Follow(px, py)
	}
	return nil
}

func (s *GameScene) handleSizeChange(in *obj.Input) {
	spec := s.deps.Cfg.Scenes[s.key]
	if in.GrowPressed && spec.GrowTarget != "" {
		s.deps.Transition.Start(s.cam, session.DirectionGrow, spec.GrowTarget)
	} else if in.ShrinkPressed && spec.ShrinkTarget != "" {
		s.deps.Transition.Start(s.cam, session.DirectionShrink, spec.ShrinkTarget)
	}
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	// screen-locked backdrop, then the cross-fade overlay, then the world
	s.deps.Backgrounds.DrawCover(screen, s.bgKey)
	s.deps.Transition.DrawOverlay(screen)

	s.cam.Render(screen, func(world *ebiten.Image) {
		camX, camY := s.cam.ViewTopLeft()
		zoom := s.cam.Zoom()
		for _, p := range s.platforms {
			p.Draw(world, camX, camY, zoom)
		}
		for _, o := range s.orbs {
			o.Draw(world, camX, camY, zoom)
		}
		for _, e := range s.enemies {
			e.Draw(world, camX, camY, zoom)
		}
		for _, p := range s.projectiles {
			p.Draw(world, camX, camY, zoom)
		}
		s.player.Draw(world, camX, camY, zoom)
	})

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  stage %d  [E] grow  [Q] shrink", s.key, s.deps.Ctx.Stage))
}

// Dispose captures the session snapshots before the engine drops the scene.
func (s *GameScene) Dispose() {
	ctx := s.deps.Ctx
	if s.player != nil {
		x, y := s.player.Position()
		ctx.SavePosition(s.key, session.Position{X: x, Y: y})
	}
	snaps := make([]session.EnemySnapshot, 0, len(s.enemies))
	for _, e := range s.enemies {
		snaps = append(snaps, e.Snapshot())
	}
	ctx.SaveEnemies(s.key, snaps)

	// clear the context only while this scene still owns it; a successor
	// scene may already have installed its own entities
	if ctx.Scene == s.key {
		ctx.Player = nil
		ctx.Scene = ""
		ctx.Enemies.Reset()
		ctx.Projectiles.Reset()
		ctx.XPOrbs.Reset()
		ctx.Platforms.Reset()
	}

	log.Debug("scene: disposed", "key", s.key, "savedEnemies", len(snaps))
}
