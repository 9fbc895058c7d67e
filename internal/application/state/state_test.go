package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/blobclimb/internal/application/system"
	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlaying, "Playing"},
		{PhasePaused, "Paused"},
		{PhaseQuit, "Quit"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Phase(0), PhasePlaying)
	assert.Equal(t, Phase(1), PhasePaused)
	assert.Equal(t, Phase(2), PhaseQuit)
}

func createTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.DefaultGameConfig()
	require.NoError(t, err)
	return cfg
}

// createTestLevel returns a 20x15 level with a single full-width platform
// in row 5
func createTestLevel() *config.LevelConfig {
	blueprint := make([][]string, 15)
	for r := range blueprint {
		blueprint[r] = make([]string, 20)
	}
	for c := range blueprint[5] {
		blueprint[5][c] = "gs"
	}
	return &config.LevelConfig{
		Name:       "test",
		Width:      20,
		Height:     15,
		References: map[string]string{"g": "@grass"},
		Blueprint:  blueprint,
	}
}

func TestNewFromLevel(t *testing.T) {
	s, err := NewFromLevel(createTestConfig(t), createTestLevel(), nil)
	require.NoError(t, err)

	assert.Nil(t, s.Generator)
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, 20, s.Grid.Width())
	assert.Equal(t, entity.StateAirborne, s.Player.State)
}

func TestGameState_TickLandsOnPlatform(t *testing.T) {
	s, err := NewFromLevel(createTestConfig(t), createTestLevel(), nil)
	require.NoError(t, err)

	// the first tick scrolls the spawn point into the dead zone
	s.Tick(system.InputState{})
	assert.Equal(t, 100.0, s.Player.Top())

	for i := 0; i < 300 && !s.Player.Grounded(); i++ {
		s.Tick(system.InputState{})
	}

	require.True(t, s.Player.Grounded())
	platform, _ := s.Grid.At(5, 10)
	assert.Equal(t, platform.Y, s.Player.Bottom())
	assert.Equal(t, 360.0, s.Player.Bottom())
	assert.Equal(t, 320.0, s.Player.X)
}

func TestGameState_TickMovesAndJumps(t *testing.T) {
	s, err := NewFromLevel(createTestConfig(t), createTestLevel(), nil)
	require.NoError(t, err)
	for i := 0; i < 300 && !s.Player.Grounded(); i++ {
		s.Tick(system.InputState{})
	}
	require.True(t, s.Player.Grounded())

	s.Tick(system.InputState{Right: true})
	assert.Equal(t, 2.0, s.Player.TargetVX)
	assert.Equal(t, entity.FacingRight, s.Player.Facing)
	assert.True(t, s.Player.Anim.Animate)

	s.Tick(system.InputState{RightReleased: true})
	assert.Zero(t, s.Player.TargetVX)

	s.Tick(system.InputState{Jump: true})
	assert.Equal(t, entity.StateJumping, s.Player.State)
	assert.Less(t, s.Player.VY, 0.0)
}

func TestGameState_Quit(t *testing.T) {
	s, err := NewFromLevel(createTestConfig(t), createTestLevel(), nil)
	require.NoError(t, err)

	assert.False(t, s.Tick(system.InputState{}))
	assert.True(t, s.Tick(system.InputState{Quit: true}))
	assert.Equal(t, PhaseQuit, s.Phase)

	// stays quit
	assert.True(t, s.Tick(system.InputState{}))
}

func TestGameState_Pause(t *testing.T) {
	s, err := NewFromLevel(createTestConfig(t), createTestLevel(), nil)
	require.NoError(t, err)
	s.Tick(system.InputState{})

	s.Tick(system.InputState{Pause: true})
	assert.Equal(t, PhasePaused, s.Phase)
	ticks := s.Ticks
	y := s.Player.Y

	for i := 0; i < 10; i++ {
		assert.False(t, s.Tick(system.InputState{Right: true}))
	}
	assert.Equal(t, ticks, s.Ticks)
	assert.Equal(t, y, s.Player.Y)

	s.Tick(system.InputState{Pause: true})
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, ticks+1, s.Ticks)

	s.Tick(system.InputState{Pause: true})
	assert.True(t, s.Tick(system.InputState{Quit: true}), "quit works while paused")
	assert.Equal(t, PhaseQuit, s.Phase)
}

func TestNewProcedural(t *testing.T) {
	cfg := createTestConfig(t)
	s := NewProcedural(cfg, 7, nil)

	require.NotNil(t, s.Generator)
	assert.Equal(t, 15+10+20*3, s.Grid.Height())

	// the first tick scrolls the floor partly out of view, which prunes it
	// and generates one more continuation
	s.Tick(system.InputState{})
	assert.Greater(t, s.Grid.Height(), 15+10+20*3-10)
}

func TestGameState_TickRegeneratesAfterPrune(t *testing.T) {
	cfg := createTestConfig(t)
	s := NewProcedural(cfg, 7, nil)

	start := s.Grid.Height()
	col, budget := s.Generator.Next()
	require.NotEqual(t, system.AutoStart, col)

	s.Tick(system.InputState{})

	// five hidden floor rows pruned, three rows added for the continuation
	assert.Equal(t, start-5+3, s.Grid.Height())
	assert.True(t, s.Grid.RowHasSolid(0), "continuation placed on the new top row")
	tile, ok := s.Grid.At(0, col)
	require.True(t, ok)
	assert.True(t, tile.Solid, "continuation starts at the pending column")

	nextCol, nextBudget := s.Generator.Next()
	assert.NotEqual(t, [2]int{col, budget}, [2]int{nextCol, nextBudget}, "next continuation drawn")
}

func TestGameState_ProceduralIsDeterministic(t *testing.T) {
	cfg := createTestConfig(t)

	run := func() (entity.Body, int, []entity.Rect) {
		s := NewProcedural(cfg, 1234, nil)
		for i := 0; i < 600; i++ {
			in := system.InputState{
				Right: i%200 < 100,
				Left:  i%200 >= 100,
				Jump:  i%50 == 0,
			}
			in.RightReleased = i%200 == 100
			in.LeftReleased = i%200 == 0 && i > 0
			s.Tick(in)
		}
		return s.Player.Body, s.Grid.Height(), s.Grid.SolidRects()
	}

	b1, h1, r1 := run()
	b2, h2, r2 := run()
	assert.Equal(t, b1, b2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, r1, r2)
}
