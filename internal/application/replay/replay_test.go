package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/blobclimb/internal/application/state"
	"github.com/younwookim/blobclimb/internal/application/system"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true, LR: true},
			{F: 2, Q: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)
	assert.True(t, input.LeftReleased)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Quit)
	assert.False(t, input.Right)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFramesAndSeed(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10))

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())
	assert.Empty(t, replayer.Level())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3))

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	_, ok = replayer.GetInput()
	assert.True(t, ok)
}

func TestReplayer_Run(t *testing.T) {
	t.Run("stops at the end", func(t *testing.T) {
		replayer := NewReplayer(CreateTestReplayData(4))
		calls := 0
		n := replayer.Run(func(system.InputState) bool {
			calls++
			return false
		})
		assert.Equal(t, 4, n)
		assert.Equal(t, 4, calls)
	})

	t.Run("stops on quit", func(t *testing.T) {
		data := CreateTestReplayData(6)
		data.Frames[2].Q = true
		n := NewReplayer(data).Run(func(in system.InputState) bool {
			return in.Quit
		})
		assert.Equal(t, 3, n)
	})
}

func TestReplayer_MapsAllFields(t *testing.T) {
	data := ReplayData{
		Frames: []FrameInput{
			{F: 0, L: true, R: true, J: true, Q: true, P: true, LR: true, RR: true},
		},
	}

	input, ok := NewReplayer(data).GetInput()

	require.True(t, ok)
	assert.Equal(t, system.InputState{
		Left:          true,
		Right:         true,
		Jump:          true,
		Quit:          true,
		Pause:         true,
		LeftReleased:  true,
		RightReleased: true,
	}, input)
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder(7, "demo")
	assert.True(t, rec.IsRecording())

	rec.RecordFrame(system.InputState{Right: true})
	rec.RecordFrame(system.InputState{Jump: true, RightReleased: true})
	assert.Equal(t, 2, rec.FrameCount())

	rec.Stop()
	rec.RecordFrame(system.InputState{Left: true})
	assert.Equal(t, 2, rec.FrameCount())
	assert.False(t, rec.IsRecording())

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "demo", data.Level)
	assert.Equal(t, FrameInput{F: 1, J: true, RR: true}, data.Frames[1])
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(99, "")
	rec.RecordFrame(system.InputState{Left: true})
	rec.RecordFrame(system.InputState{LeftReleased: true})

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().Frames, data.Frames)
	assert.Equal(t, int64(99), data.Seed)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	err := NewRecorder(1, "").Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestRecorder_SaveReportsWriteFailure(t *testing.T) {
	rec := NewRecorder(1, "")
	rec.RecordFrame(system.InputState{Right: true})

	t.Run("missing directory", func(t *testing.T) {
		err := rec.Save(filepath.Join(t.TempDir(), "missing", "run.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("device full", func(t *testing.T) {
		if _, err := os.Stat("/dev/full"); err != nil {
			t.Skip("no /dev/full on this system")
		}
		assert.Error(t, rec.Save("/dev/full"))
	})
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version": "1.0", "frames": []}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestReplay_ReproducesRun(t *testing.T) {
	cfg, err := config.DefaultGameConfig()
	require.NoError(t, err)

	const seed = 2024
	live := state.NewProcedural(cfg, seed, nil)
	rec := NewRecorder(seed, "")
	for i := 0; i < 900; i++ {
		in := system.InputState{
			Right: i%240 < 120,
			Left:  i%240 >= 120,
			Jump:  i%90 == 45,
		}
		in.RightReleased = i%240 == 120
		in.LeftReleased = i%240 == 0 && i > 0
		rec.RecordFrame(in)
		live.Tick(in)
	}

	replayer := NewReplayer(rec.Data())
	replayed := state.NewProcedural(cfg, replayer.Seed(), nil)
	n := replayer.Run(replayed.Tick)

	assert.Equal(t, 900, n)
	assert.Equal(t, live.Player.Body, replayed.Player.Body)
	assert.Equal(t, live.Player.State, replayed.Player.State)
	assert.Equal(t, live.Grid.SolidRects(), replayed.Grid.SolidRects())
}
