package playing

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/blobclimb/internal/application/replay"
	"github.com/younwookim/blobclimb/internal/application/scene"
	"github.com/younwookim/blobclimb/internal/application/state"
	"github.com/younwookim/blobclimb/internal/application/system"
	"github.com/younwookim/blobclimb/internal/infrastructure/assets"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
	"github.com/younwookim/blobclimb/internal/infrastructure/watch"
)

// scriptedInput plays a fixed list of inputs, then idles forever unless
// finite is set
type scriptedInput struct {
	inputs []system.InputState
	finite bool
	next   int
}

func (s *scriptedInput) GetInput() (system.InputState, bool) {
	if s.next < len(s.inputs) {
		in := s.inputs[s.next]
		s.next++
		return in, true
	}
	return system.InputState{}, !s.finite
}

// writeFileAtomically renames a finished file into place so the watcher
// never sees it half written
func writeFileAtomically(t *testing.T, path string, data []byte) {
	t.Helper()
	tmp := path + ".part"
	require.NoError(t, os.WriteFile(tmp, data, 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func createTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.DefaultGameConfig()
	require.NoError(t, err)
	return cfg
}

// createTestLevelJSON returns a level of the given width with one solid
// platform row
func createTestLevelJSON(t *testing.T, width int) []byte {
	t.Helper()
	blueprint := make([][]string, 15)
	for r := range blueprint {
		blueprint[r] = make([]string, width)
	}
	for c := range blueprint[5] {
		blueprint[5][c] = "gs"
	}
	data, err := json.Marshal(map[string]any{
		"width":      width,
		"height":     15,
		"references": map[string]string{"g": "@grass"},
		"blueprint":  blueprint,
	})
	require.NoError(t, err)
	return data
}

func createTestLevel(t *testing.T) *config.LevelConfig {
	t.Helper()
	lvl, err := config.ParseLevel(createTestLevelJSON(t, 20), "test")
	require.NoError(t, err)
	return lvl
}

func createTestLibrary(t *testing.T, cfg *config.GameConfig) *assets.Library {
	t.Helper()
	lib, err := assets.NewLibrary(assets.NewLoader(nil, cfg.Grid.TileWidth, cfg.Grid.TileHeight), cfg)
	require.NoError(t, err)
	return lib
}

func createTestScene(t *testing.T, input InputSource, opts Options) *Playing {
	t.Helper()
	cfg := createTestConfig(t)
	s, err := state.NewFromLevel(cfg, createTestLevel(t), nil)
	require.NoError(t, err)
	return New(s, input, createTestLibrary(t, cfg), opts)
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
	var _ InputSource = (*Keyboard)(nil)
	var _ InputSource = (*replay.Replayer)(nil)
}

func TestPlaying_UpdateTicksState(t *testing.T) {
	p := createTestScene(t, &scriptedInput{}, Options{})
	p.OnEnter()

	for i := 0; i < 10; i++ {
		next, err := p.Update(1.0 / 120.0)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	assert.Equal(t, 10, p.State().Ticks)
}

func TestPlaying_QuitInput(t *testing.T) {
	input := &scriptedInput{inputs: []system.InputState{{}, {Quit: true}}}
	p := createTestScene(t, input, Options{})

	_, err := p.Update(0)
	require.NoError(t, err)

	_, err = p.Update(0)
	assert.ErrorIs(t, err, scene.ErrQuit)
	assert.Equal(t, state.PhaseQuit, p.State().Phase)
}

func TestPlaying_InputExhausted(t *testing.T) {
	input := &scriptedInput{inputs: make([]system.InputState, 3), finite: true}
	p := createTestScene(t, input, Options{})

	var err error
	updates := 0
	for err == nil && updates < 10 {
		_, err = p.Update(0)
		updates++
	}

	assert.ErrorIs(t, err, scene.ErrQuit)
	assert.Equal(t, 4, updates)
	assert.Equal(t, 3, p.State().Ticks)
}

func TestPlaying_ReplayerDrivesScene(t *testing.T) {
	data := replay.CreateTestReplayData(5)
	data.Frames[1].R = true
	p := createTestScene(t, replay.NewReplayer(data), Options{})

	for i := 0; i < 5; i++ {
		_, err := p.Update(0)
		require.NoError(t, err)
	}
	_, err := p.Update(0)
	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestPlaying_RecordsAndSavesOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rec := replay.NewRecorder(0, "test")
	input := &scriptedInput{inputs: []system.InputState{{Right: true}, {RightReleased: true}, {Jump: true}}}
	p := createTestScene(t, input, Options{Recorder: rec, RecordPath: path, Level: "test"})

	for i := 0; i < 3; i++ {
		_, err := p.Update(0)
		require.NoError(t, err)
	}
	p.OnExit()

	assert.False(t, rec.IsRecording())
	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	require.Len(t, data.Frames, 3)
	assert.True(t, data.Frames[0].R)
	assert.True(t, data.Frames[1].RR)
	assert.True(t, data.Frames[2].J)
	assert.Equal(t, "test", data.Level)
}

func TestPlaying_OnExitWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestScene(t, &scriptedInput{}, Options{Recorder: replay.NewRecorder(0, ""), RecordPath: path})

	p.OnExit()

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPlaying_ReloadsEditedLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")
	require.NoError(t, os.WriteFile(path, createTestLevelJSON(t, 20), 0o644))

	w, err := watch.New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	p := createTestScene(t, &scriptedInput{}, Options{Watcher: w, Level: "test"})
	require.Equal(t, 20, p.State().Grid.Width())

	writeFileAtomically(t, path, createTestLevelJSON(t, 12))

	assert.Eventually(t, func() bool {
		_, _ = p.Update(0)
		return p.State().Grid.Width() == 12
	}, 5*time.Second, 10*time.Millisecond)
	assert.Nil(t, p.State().Generator)
}

func TestPlaying_BrokenEditKeepsLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.json")

	w, err := watch.New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	p := createTestScene(t, &scriptedInput{}, Options{Watcher: w, Level: "test"})
	writeFileAtomically(t, path, []byte(`{"width": 3`))

	// wait for the event to arrive, then let the scene drain it
	deadline := time.Now().Add(5 * time.Second)
	for len(w.Events) == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	_, err = p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, 20, p.State().Grid.Width())
}

func TestPlaying_ChecksEditedTuning(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.New(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	var buf bytes.Buffer
	logger := log.New(&buf)
	p := createTestScene(t, &scriptedInput{}, Options{Watcher: w, Level: "test", Logger: logger})

	writeFileAtomically(t, filepath.Join(dir, config.GameFile), []byte("physics:\n  terminal_velocity: 0\n"))
	assert.Eventually(t, func() bool {
		_, _ = p.Update(0)
		return bytes.Contains(buf.Bytes(), []byte("tuning file is invalid"))
	}, 5*time.Second, 10*time.Millisecond)

	writeFileAtomically(t, filepath.Join(dir, config.GameFile), []byte("display:\n  title: Edited\n"))
	assert.Eventually(t, func() bool {
		_, _ = p.Update(0)
		return bytes.Contains(buf.Bytes(), []byte("restart to apply"))
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 20, p.State().Grid.Width())
}

func TestPlaying_Draw(t *testing.T) {
	p := createTestScene(t, &scriptedInput{inputs: []system.InputState{{}, {Pause: true}}}, Options{Debug: true})
	screen := ebiten.NewImage(640, 480)

	_, err := p.Update(0)
	require.NoError(t, err)
	p.Draw(screen)

	_, err = p.Update(0)
	require.NoError(t, err)
	require.Equal(t, state.PhasePaused, p.State().Phase)
	p.Draw(screen)
}
