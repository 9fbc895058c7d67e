package state

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/blobclimb/internal/application/system"
	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// Phase represents the current phase of the game
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseQuit
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// GameState owns everything a tick mutates. It is built once and passed
// around explicitly; the scene only renders it.
type GameState struct {
	Config *config.GameConfig
	Grid   *entity.Grid
	Player *entity.Character
	// Generator is nil for static levels
	Generator *system.Generator
	Camera    system.Camera
	Phase     Phase
	Ticks     int

	input   *system.InputSystem
	physics *system.PhysicsSystem
	logger  *log.Logger
}

func newGameState(cfg *config.GameConfig, logger *log.Logger) *GameState {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GameState{
		Config:  cfg,
		Player:  system.NewPlayer(cfg),
		Camera:  system.NewCamera(cfg.Display, cfg.Camera),
		Phase:   PhasePlaying,
		input:   system.NewInputSystem(cfg.Player),
		physics: system.NewPhysicsSystem(cfg.Physics),
		logger:  logger,
	}
}

// NewProcedural creates a game on an endless generated level.
// The same seed always produces the same level.
func NewProcedural(cfg *config.GameConfig, seed int64, logger *log.Logger) *GameState {
	s := newGameState(cfg, logger)
	family := entity.Family(cfg.Assets.Family)
	s.Generator = system.NewGenerator(cfg.Generator, family, rand.New(rand.NewSource(seed)), s.logger)
	s.Grid = system.BuildProceduralLevel(cfg, s.Generator)
	s.logger.Debug("procedural level built", "seed", seed, "rows", s.Grid.Height(), "cols", s.Grid.Width())
	return s
}

// NewFromLevel creates a game on a static level
func NewFromLevel(cfg *config.GameConfig, level *config.LevelConfig, logger *log.Logger) (*GameState, error) {
	s := newGameState(cfg, logger)
	if err := s.LoadLevel(level); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel replaces the grid with a static level and respawns the player
func (s *GameState) LoadLevel(level *config.LevelConfig) error {
	grid, err := system.LoadStage(level, system.LayoutFromConfig(s.Config), s.logger)
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", level.Name, err)
	}
	s.Grid = grid
	s.Generator = nil
	s.Player = system.NewPlayer(s.Config)
	s.logger.Info("level loaded", "level", level.Name, "rows", grid.Height(), "cols", grid.Width())
	return nil
}

// Tick advances the game by one fixed step and reports whether the player
// asked to quit. Order: intents, physics and collision, camera, pruning and
// regeneration, animation.
func (s *GameState) Tick(in system.InputState) bool {
	if s.Phase == PhaseQuit {
		return true
	}
	if in.Pause {
		s.togglePause()
	}
	if s.Phase == PhasePaused {
		if in.Quit {
			s.Phase = PhaseQuit
		}
		return in.Quit
	}

	s.Ticks++
	if system.ApplyIntents(s.Player, s.input.Intents(in)) {
		s.Phase = PhaseQuit
		return true
	}

	s.physics.Update(s.Player, s.Grid)

	s.Camera.Follow(s.Grid, &s.Player.Body)

	if pruned := s.Grid.Prune(); pruned > 0 && s.Generator != nil {
		s.Generator.GenerateContinuation(s.Grid, 0)
	}

	s.Player.Animate()
	return false
}

func (s *GameState) togglePause() {
	if s.Phase == PhasePaused {
		s.Phase = PhasePlaying
	} else {
		s.Phase = PhasePaused
	}
	s.logger.Debug("phase changed", "phase", s.Phase)
}
