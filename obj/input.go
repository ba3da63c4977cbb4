package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds current input state for movement, jumping and size changes.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float32
	// JumpPressed is true on the frame the jump key is pressed.
	JumpPressed bool
	// JumpHeld is true while the jump key is held down.
	JumpHeld bool
	// GrowPressed is true on the frame the grow key (E) is pressed.
	GrowPressed bool
	// ShrinkPressed is true on the frame the shrink key (Q) is pressed.
	ShrinkPressed bool
	// MenuPressed is true on the frame the menu key (Escape) is pressed.
	MenuPressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX float32
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	i.MoveX = moveX

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace)

	i.GrowPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	i.ShrinkPressed = inpututil.IsKeyJustPressed(ebiten.KeyQ)
	i.MenuPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
