// Package transition runs the two-phase size-shift cinematic: a departure in
// the source scene (camera zoom, backdrop cross-fade, player rescale), an
// engine-driven scene switch, and an arrival zoom-back in the destination
// scene. The system outlives every scene; its state spans the
// destroy/recreate boundary through the session context.
package transition

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/sizeshift/common"
	"github.com/milk9111/sizeshift/obj"
	"github.com/milk9111/sizeshift/procgen"
	"github.com/milk9111/sizeshift/session"
	"github.com/milk9111/sizeshift/tween"
)

// TextureKey names the shared pre-rendered destination backdrop. Every run
// regenerates it, so stale entries are removed before painting.
const TextureKey = "transition-background"

// Overlay is the cross-fade image layer; exclusively owned by the system
// for the span of one departure.
type Overlay interface {
	SetAlpha(a float64)
	Draw(screen *ebiten.Image)
	Destroy()
}

// OverlayFactory builds an overlay from a cached texture, nil when the
// texture is absent.
type OverlayFactory interface {
	NewOverlay(textureKey string) Overlay
}

// OverlayFactoryFunc adapts a closure to OverlayFactory.
type OverlayFactoryFunc func(textureKey string) Overlay

func (f OverlayFactoryFunc) NewOverlay(textureKey string) Overlay { return f(textureKey) }

// TextureCache is the slice of the texture cache the system needs.
type TextureCache interface {
	Has(key string) bool
	Remove(key string)
}

// BackgroundSource pre-renders a themed backdrop into a named texture.
type BackgroundSource interface {
	Prerender(theme procgen.Theme, seed int, key string) bool
}

// SceneSwitcher destroys the current scene and constructs the named one.
type SceneSwitcher interface {
	StartScene(key string)
}

// Config is the read-only tuning surface, built from the config tables once
// at startup.
type Config struct {
	DurationFrames    int
	GrowZoom          float64
	ShrinkZoom        float64
	Ease              tween.Easing
	DefaultFinalScale float64
	// FinalScales maps scene key to the player scale that scene snaps to.
	FinalScales map[string]float64
	// Themes maps scene key to its backdrop theme; keys with no entry skip
	// the cross-fade.
	Themes map[string]procgen.Theme
}

// run is the descriptor for one in-flight transition, created in Start and
// consumed by finishDeparture.
type run struct {
	direction      session.Direction
	targetScene    string
	departureScale float64
	finalScale     float64
	targetZoom     float64
	destStage      int
	overlay        Overlay
	group          *tween.Group
	arrival        *tween.Tween
}

// System is the size-transition state machine. At most one transition is in
// flight process-wide.
type System struct {
	ctx         *session.Context
	cfg         Config
	runner      *tween.Runner
	backgrounds BackgroundSource
	textures    TextureCache
	overlays    OverlayFactory
	switcher    SceneSwitcher

	transitioning bool
	current       *run
}

func NewSystem(ctx *session.Context, cfg Config, runner *tween.Runner, backgrounds BackgroundSource, textures TextureCache, overlays OverlayFactory, switcher SceneSwitcher) *System {
	if cfg.Ease == nil {
		cfg.Ease = tween.QuadInOut
	}
	return &System{
		ctx:         ctx,
		cfg:         cfg,
		runner:      runner,
		backgrounds: backgrounds,
		textures:    textures,
		overlays:    overlays,
		switcher:    switcher,
	}
}

// SetConfig swaps the tuning surface, e.g. after a config hot-reload.
// Ignored while a transition is in flight; the running cinematic keeps the
// parameters it started with.
func (s *System) SetConfig(cfg Config) {
	if s == nil || s.transitioning {
		return
	}
	if cfg.Ease == nil {
		cfg.Ease = tween.QuadInOut
	}
	s.cfg = cfg
}

// IsTransitioning reports whether a transition is in flight, from Start
// until the arrival tween (or a forced cleanup) completes. Scenes consult it
// to gate camera follow and input.
func (s *System) IsTransitioning() bool {
	return s != nil && s.transitioning
}

// Start begins the departure phase on the current scene's camera. Calling it
// while a transition is already in flight has no effect.
func (s *System) Start(cam *obj.Camera, direction session.Direction, targetScene string) {
	if s == nil || cam == nil {
		return
	}
	if s.transitioning {
		log.Debug("transition: start ignored, already in flight", "target", targetScene)
		return
	}
	s.transitioning = true
	if s.ctx != nil {
		s.ctx.InSizeTransition = true
	}

	targetZoom := s.cfg.GrowZoom
	if direction == session.DirectionShrink {
		targetZoom = s.cfg.ShrinkZoom
	}

	finalScale := s.cfg.DefaultFinalScale
	if v, ok := s.cfg.FinalScales[targetScene]; ok && v > 0 {
		finalScale = v
	}

	// The destination scene paints its backdrop at the post-transition
	// stage, so the cross-fade must pre-render with that same seed.
	stage := 1
	if s.ctx != nil {
		stage = s.ctx.Stage
	}
	destStage := stage
	switch direction {
	case session.DirectionGrow:
		destStage = stage + 1
	case session.DirectionShrink:
		if stage > 1 {
			destStage = stage - 1
		}
	}

	r := &run{
		direction:   direction,
		targetScene: targetScene,
		finalScale:  finalScale,
		targetZoom:  targetZoom,
		destStage:   destStage,
	}
	s.current = r

	// Pre-render the destination backdrop for the cross-fade. A scene with
	// no theme mapping simply has no overlay.
	if theme, ok := s.cfg.Themes[targetScene]; ok && s.backgrounds != nil {
		if s.textures != nil {
			s.textures.Remove(TextureKey)
		}
		if s.backgrounds.Prerender(theme, destStage, TextureKey) && s.overlays != nil {
			r.overlay = s.overlays.NewOverlay(TextureKey)
		}
	}

	// Freeze every live enemy and projectile body. Their update functions
	// keep running during the cinematic; the bodies just stop moving.
	s.freezeContainers()

	// Pin-point: the player's screen position at call time stays visually
	// fixed while the zoom tween recomputes scroll each step.
	var player session.Player
	if s.ctx != nil {
		player = s.ctx.Player
	}
	pinWX, pinWY := 0.0, 0.0
	pinSX, pinSY := 0.0, 0.0
	if player != nil {
		pinWX, pinWY = player.Position()
		pinSX, pinSY = cam.WorldToScreen(pinWX, pinWY)
	} else {
		sw, sh := cam.ScreenSize()
		pinSX, pinSY = float64(sw)/2, float64(sh)/2
		tlx, tly := cam.ViewTopLeft()
		pinWX = tlx + pinSX/cam.Zoom()
		pinWY = tly + pinSY/cam.Zoom()
	}

	group := tween.NewGroup()
	r.group = group

	startZoom := cam.Zoom()
	group.Add(&tween.Tween{
		Duration: s.cfg.DurationFrames,
		Ease:     s.cfg.Ease,
		OnUpdate: func(p float64) {
			cam.SetZoom(common.Lerp(startZoom, targetZoom, p))
			cam.PinScreenPoint(pinWX, pinWY, pinSX, pinSY)
		},
	})

	if r.overlay != nil {
		group.Add(&tween.Tween{
			Duration: s.cfg.DurationFrames,
			Ease:     s.cfg.Ease,
			OnUpdate: func(p float64) {
				r.overlay.SetAlpha(p)
			},
		})
	}

	if player != nil {
		// the departure only moves the player halfway; the arriving scene
		// snaps to the exact final scale
		startScale := player.Scale()
		r.departureScale = (startScale + finalScale) / 2
		group.Add(&tween.Tween{
			Duration: s.cfg.DurationFrames,
			Ease:     s.cfg.Ease,
			OnUpdate: func(p float64) {
				player.SetScale(common.Lerp(startScale, r.departureScale, p))
			},
		})
	}

	// schedule exactly the joined set; the join total and the scheduled
	// tweens can never disagree
	for _, t := range group.Members() {
		s.runner.Start(t)
	}
	group.Seal(func() { s.finishDeparture(r) })

	log.Info("transition: departure started",
		"direction", direction, "target", targetScene,
		"zoom", targetZoom, "tweens", group.Len())
}

// finishDeparture is the join point of the departure tweens. It hands the
// zoom and direction across the scene boundary, tears down the cross-fade,
// and triggers the engine scene switch. transitioning stays true until the
// arrival completes.
func (s *System) finishDeparture(r *run) {
	if s == nil || r == nil || s.current != r {
		return
	}
	if s.ctx != nil {
		s.ctx.SetHandoff(r.targetZoom, r.direction)
		s.ctx.Stage = r.destStage
	}
	if r.overlay != nil {
		r.overlay.Destroy()
		r.overlay = nil
	}
	if s.textures != nil {
		s.textures.Remove(TextureKey)
	}
	log.Debug("transition: departure finished", "target", r.targetScene)
	if s.switcher != nil {
		s.switcher.StartScene(r.targetScene)
	}
}

// Finish runs the arrival phase. The newly created destination scene calls
// it unconditionally during its own setup; when the scene was entered
// normally the call is a side-effect-free reset.
func (s *System) Finish(cam *obj.Camera) {
	if s == nil {
		return
	}
	var zoom float64
	var ok bool
	if s.ctx != nil {
		zoom, _, ok = s.ctx.Handoff()
	}
	if !ok || cam == nil {
		// cold start, or a pending handoff with no camera to animate;
		// either way nothing may stay in flight
		if s.ctx != nil {
			s.ctx.ClearHandoff()
			s.ctx.InSizeTransition = false
		}
		s.transitioning = false
		s.current = nil
		s.unfreezeContainers()
		return
	}

	// The visual jump already happened through the cross-fade; the new
	// scene starts at the carried zoom and eases back to neutral.
	cam.SetZoom(zoom)

	var player session.Player
	if s.ctx != nil {
		player = s.ctx.Player
	}
	pinWX, pinWY := cam.PosX, cam.PosY
	if player != nil {
		pinWX, pinWY = player.Position()
	}
	pinSX, pinSY := cam.WorldToScreen(pinWX, pinWY)

	startZoom := zoom
	arrival := &tween.Tween{
		Duration: s.cfg.DurationFrames,
		Ease:     s.cfg.Ease,
		OnUpdate: func(p float64) {
			cam.SetZoom(common.Lerp(startZoom, 1.0, p))
			cam.PinScreenPoint(pinWX, pinWY, pinSX, pinSY)
		},
		OnComplete: func() {
			// the unique exit back to Idle
			if s.ctx != nil {
				s.ctx.ClearHandoff()
				s.ctx.InSizeTransition = false
			}
			s.transitioning = false
			s.current = nil
			s.unfreezeContainers()
			log.Info("transition: arrival finished")
		},
	}
	if s.current == nil {
		s.current = &run{}
	}
	s.current.arrival = arrival
	s.runner.Start(arrival)
	log.Debug("transition: arrival started", "zoom", zoom)
}

// DrawOverlay renders the cross-fade overlay, if one is live. Scenes call
// it between their backdrop and gameplay layers.
func (s *System) DrawOverlay(screen *ebiten.Image) {
	if s == nil || s.current == nil || s.current.overlay == nil {
		return
	}
	s.current.overlay.Draw(screen)
}

// Cleanup force-resets the system outside the normal flow, e.g. when
// returning to the menu mid-transition. Safe to call from Idle.
func (s *System) Cleanup() {
	if s == nil {
		return
	}
	if r := s.current; r != nil {
		if r.group != nil {
			r.group.Cancel()
		}
		if r.arrival != nil {
			r.arrival.Cancel()
		}
		if r.overlay != nil {
			r.overlay.Destroy()
			r.overlay = nil
		}
	}
	if s.textures != nil {
		s.textures.Remove(TextureKey)
	}
	s.unfreezeContainers()
	if s.ctx != nil {
		s.ctx.ClearHandoff()
		s.ctx.InSizeTransition = false
	}
	if s.transitioning {
		log.Info("transition: cleaned up mid-flight")
	}
	s.transitioning = false
	s.current = nil
}

func (s *System) freezeContainers() {
	if s == nil || s.ctx == nil {
		return
	}
	for _, e := range s.ctx.Enemies.Items() {
		e.Freeze()
	}
	for _, p := range s.ctx.Projectiles.Items() {
		p.Freeze()
	}
}

func (s *System) unfreezeContainers() {
	if s == nil || s.ctx == nil {
		return
	}
	for _, e := range s.ctx.Enemies.Items() {
		e.Unfreeze()
	}
	for _, p := range s.ctx.Projectiles.Items() {
		p.Unfreeze()
	}
}
