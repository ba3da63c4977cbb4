package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"
)

// TitleScene is the minimal entry screen. Reaching it mid-transition goes
// through transition.Cleanup in the gameplay scene, so by the time this
// scene exists the system is idle.
type TitleScene struct {
	deps *Deps
}

func NewTitleScene(deps *Deps) *TitleScene {
	// a direct switch here while a transition is in flight must not leave
	// flags dangling
	if deps.Transition.IsTransitioning() {
		deps.Transition.Cleanup()
	}
	return &TitleScene{deps: deps}
}

func (s *TitleScene) Key() string {
	return KeyTitle
}

func (s *TitleScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.deps.Switcher.StartScene(KeyMainGame)
	}
	return nil
}

func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	ebitenutil.DebugPrintAt(screen, "SIZESHIFT", s.deps.ScreenW/2-40, s.deps.ScreenH/2-30)
	ebitenutil.DebugPrintAt(screen, "press Enter", s.deps.ScreenW/2-44, s.deps.ScreenH/2)
}

func (s *TitleScene) Dispose() {}
