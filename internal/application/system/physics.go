package system

import (
	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// PhysicsSystem integrates the character and resolves its collisions
// against the grid
type PhysicsSystem struct {
	tolerance float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{tolerance: cfg.CollisionTolerance}
}

// Update runs one tick: state transitions and integration, then vertical
// collision. Returns true when the character landed this tick.
func (s *PhysicsSystem) Update(c *entity.Character, grid *entity.Grid) bool {
	c.Update()

	if !ResolveCollisions(&c.Body, grid.SolidRects(), s.tolerance) {
		return false
	}
	c.Land()
	return true
}

// CharacterPhysics converts the tuning file values into body constants
func CharacterPhysics(cfg config.PhysicsConfig) entity.Physics {
	return entity.Physics{
		Gravity:          cfg.Gravity,
		TerminalVelocity: cfg.TerminalVelocity,
		Inertia:          cfg.Inertia,
	}
}

// NewPlayer creates the playable character at the configured spawn point
func NewPlayer(cfg *config.GameConfig) *entity.Character {
	frames := map[entity.Clip]int{
		entity.ClipWalk: max(len(cfg.Assets.PlayerWalk), 1),
		entity.ClipJump: 1,
		entity.ClipFall: 1,
	}
	return entity.NewCharacter(cfg.Player.SpawnX, cfg.Player.SpawnY, entity.CharacterConfig{
		Width:          cfg.Player.Width,
		Height:         cfg.Player.Height,
		Physics:        CharacterPhysics(cfg.Physics),
		AnimationSpeed: cfg.Player.AnimationSpeed,
		Frames:         frames,
	})
}
