package system

import "github.com/younwookim/blobclimb/internal/domain/entity"

// Intent represents an action the player wants the character to perform
type Intent interface {
	isIntent()
}

// MoveIntent sets the character's horizontal target speed
type MoveIntent struct {
	Right bool
	Speed float64 // pixels per tick
}

func (MoveIntent) isIntent() {}

// StopIntent clears the horizontal target speed
type StopIntent struct{}

func (StopIntent) isIntent() {}

// JumpIntent requests a jump; it is dropped unless the character is grounded
type JumpIntent struct {
	Power float64
}

func (JumpIntent) isIntent() {}

// QuitIntent ends the game
type QuitIntent struct{}

func (QuitIntent) isIntent() {}

// ApplyIntents applies intents to the character in order.
// It reports whether a QuitIntent was among them.
func ApplyIntents(c *entity.Character, intents []Intent) (quit bool) {
	for _, in := range intents {
		switch in := in.(type) {
		case MoveIntent:
			if in.Right {
				c.MoveRight(in.Speed)
			} else {
				c.MoveLeft(in.Speed)
			}
		case StopIntent:
			c.Stop()
		case JumpIntent:
			c.Jump(in.Power)
		case QuitIntent:
			quit = true
		}
	}
	return quit
}
