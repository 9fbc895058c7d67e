package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// InputSystem turns key state into intents for the character
type InputSystem struct {
	config config.PlayerConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg config.PlayerConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// InputState holds the input of a single tick
type InputState struct {
	Left          bool
	Right         bool
	Jump          bool
	Quit          bool
	Pause         bool
	LeftReleased  bool
	RightReleased bool
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
)

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:          anyPressed(leftKeys),
		Right:         anyPressed(rightKeys),
		Jump:          anyPressed(jumpKeys),
		Quit:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Pause:         inpututil.IsKeyJustPressed(ebiten.KeyP),
		LeftReleased:  anyJustReleased(leftKeys),
		RightReleased: anyJustReleased(rightKeys),
	}
}

// Intents converts an input state into intents, in the order they apply:
// releases stop the character before held keys move it again. Holding both
// directions cancels out and stands the character still.
func (s *InputSystem) Intents(input InputState) []Intent {
	var intents []Intent
	both := input.Left && input.Right
	if both || input.LeftReleased || input.RightReleased {
		intents = append(intents, StopIntent{})
	}
	switch {
	case both:
	case input.Right:
		intents = append(intents, MoveIntent{Right: true, Speed: s.config.MoveSpeed})
	case input.Left:
		intents = append(intents, MoveIntent{Right: false, Speed: s.config.MoveSpeed})
	}
	if input.Jump {
		intents = append(intents, JumpIntent{Power: s.config.JumpPower})
	}
	if input.Quit {
		intents = append(intents, QuitIntent{})
	}
	return intents
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}
