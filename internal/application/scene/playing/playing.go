// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/blobclimb/internal/application/replay"
	"github.com/younwookim/blobclimb/internal/application/scene"
	"github.com/younwookim/blobclimb/internal/application/state"
	"github.com/younwookim/blobclimb/internal/application/system"
	"github.com/younwookim/blobclimb/internal/infrastructure/assets"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
	"github.com/younwookim/blobclimb/internal/infrastructure/watch"
)

var colorOverlay = color.RGBA{0, 0, 0, 128}

// InputSource yields the input of one tick. ok is false once the source
// has nothing more to play, which ends the scene.
type InputSource interface {
	GetInput() (in system.InputState, ok bool)
}

// Keyboard reads live input
type Keyboard struct {
	input *system.InputSystem
}

// NewKeyboard creates a keyboard input source
func NewKeyboard(cfg config.PlayerConfig) *Keyboard {
	return &Keyboard{input: system.NewInputSystem(cfg)}
}

// GetInput implements InputSource
func (k *Keyboard) GetInput() (system.InputState, bool) {
	return k.input.GetInput(), true
}

// Options configures the optional parts of the scene
type Options struct {
	// Recorder records every tick's input; RecordPath is where it is saved
	// on F5 and on exit. An empty path picks a timestamped name.
	Recorder   *replay.Recorder
	RecordPath string

	// Watcher reports edited level files; Level is the name of the static
	// level being played. Edits of that level reload it in place.
	Watcher *watch.Watcher
	Level   string

	Logger *log.Logger
	Debug  bool
}

// Playing is the main gameplay scene
type Playing struct {
	state   *state.GameState
	input   InputSource
	library *assets.Library
	opts    Options
	logger  *log.Logger
	screenW int
	screenH int
}

// New creates a new Playing scene
func New(s *state.GameState, input InputSource, library *assets.Library, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Playing{
		state:   s,
		input:   input,
		library: library,
		opts:    opts,
		logger:  logger,
		screenW: s.Config.Display.ScreenWidth,
		screenH: s.Config.Display.ScreenHeight,
	}
}

// State returns the game state driven by the scene
func (p *Playing) State() *state.GameState {
	return p.state
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.logger.Info("game started", "level", p.describeLevel(), "recording", p.opts.Recorder != nil)
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	if p.opts.Recorder == nil || p.opts.Recorder.FrameCount() == 0 {
		return
	}
	p.opts.Recorder.Stop()
	p.saveRecording()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.reloadChanged()

	in, ok := p.input.GetInput()
	if !ok {
		p.logger.Info("input finished", "ticks", p.state.Ticks)
		return nil, scene.ErrQuit
	}

	if p.opts.Recorder != nil {
		p.opts.Recorder.RecordFrame(in)
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
	}

	if p.state.Tick(in) {
		p.logger.Info("quit", "ticks", p.state.Ticks)
		return nil, scene.ErrQuit
	}
	return nil, nil // nil = stay on this scene
}

// reloadChanged drains the watcher without blocking and reloads the level
// when its file was edited. A broken edit is logged and the game goes on
// with the level it had.
func (p *Playing) reloadChanged() {
	if p.opts.Watcher == nil {
		return
	}
	for {
		path, ok := p.opts.Watcher.Poll()
		if !ok {
			return
		}
		if !watch.IsLevel(path) {
			p.checkTuning(path)
			continue
		}
		if p.state.Generator != nil || config.LevelName(path) != p.opts.Level {
			continue
		}
		if err := p.reloadLevel(path); err != nil {
			p.logger.Warn("level reload failed", "file", path, "err", err)
		}
	}
}

// checkTuning validates an edited tuning file. Tuning is only read at
// startup, so a valid edit still needs a restart.
func (p *Playing) checkTuning(path string) {
	if filepath.Base(path) != config.GameFile {
		return
	}
	if _, err := config.LoadGameFile(path); err != nil {
		p.logger.Warn("tuning file is invalid", "file", path, "err", err)
		return
	}
	p.logger.Info("tuning changed, restart to apply", "file", path)
}

func (p *Playing) reloadLevel(path string) error {
	level, err := config.LoadLevelFile(path)
	if err != nil {
		return err
	}
	if err := p.library.AddLevel(level); err != nil {
		return err
	}
	return p.state.LoadLevel(level)
}

func (p *Playing) describeLevel() string {
	if p.state.Generator != nil {
		return "procedural"
	}
	return p.opts.Level
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	filename := p.opts.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.opts.Recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.opts.Recorder.FrameCount())
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.library.Background())
	assets.Draw(screen, p.library.Placements(p.state.Grid, p.state.Player))

	if p.opts.Debug {
		p.drawDebug(screen)
	}
	if p.state.Phase == state.PhasePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawDebug(screen *ebiten.Image) {
	player := p.state.Player
	text := fmt.Sprintf("TPS: %0.1f  tick: %d\nstate: %s  clip: %s\nx: %0.1f y: %0.1f vx: %0.2f vy: %0.2f\nrows: %d",
		ebiten.ActualTPS(), p.state.Ticks,
		player.State, player.Anim.Clip,
		player.X, player.Y, player.VX, player.VY,
		p.state.Grid.Height())
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED\nP: resume  ESC: quit", p.screenW/2-60, p.screenH/2-10)
}
