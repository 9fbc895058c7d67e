package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/blobclimb/internal/application/game"
	"github.com/younwookim/blobclimb/internal/application/replay"
	"github.com/younwookim/blobclimb/internal/application/scene/playing"
	"github.com/younwookim/blobclimb/internal/application/state"
	"github.com/younwookim/blobclimb/internal/infrastructure/assets"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
	"github.com/younwookim/blobclimb/internal/infrastructure/watch"
)

var (
	flagLevel  string
	flagWatch  bool
	flagRecord string
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window. Without --level the endless generated level is
played; the same --seed always builds the same level.

With --watch and --config, saving the level file reloads it in place.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", "", "Static level name from the levels directory")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes (needs --config)")
	cmd.Flags().StringVar(&flagRecord, "record", "", "Record input to this file (saved on exit and on F5)")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the debug overlay")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	sess, err := openSession(flagConfigDir, flagLevel, flagSeed, logger)
	if err != nil {
		return err
	}
	s, err := sess.newState()
	if err != nil {
		return err
	}

	opts := playing.Options{
		Level:      sess.levelName(),
		RecordPath: flagRecord,
		Logger:     logger,
		Debug:      flagDebug,
	}
	if flagRecord != "" {
		opts.Recorder = replay.NewRecorder(sess.seed, sess.levelName())
		logger.Info("recording enabled", "file", flagRecord, "seed", sess.seed)
	}
	if flagWatch {
		w, err := newLevelWatcher(flagConfigDir, logger)
		if err != nil {
			return err
		}
		if w != nil {
			defer func() { _ = w.Close() }()
			opts.Watcher = w
		}
	}

	return runWindow(sess, s, playing.NewKeyboard(sess.cfg.Player), opts)
}

// newLevelWatcher watches the level directory of configDir. Embedded
// configs cannot change, so there is nothing to watch without --config.
func newLevelWatcher(configDir string, logger *log.Logger) (*watch.Watcher, error) {
	if configDir == "" {
		logger.Warn("--watch needs --config, level reloading is off")
		return nil, nil
	}
	w, err := watch.New(configDir, filepath.Join(configDir, config.LevelDir))
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", configDir, err)
	}
	go func() {
		for err := range w.Errors {
			logger.Warn("watcher error", "err", err)
		}
	}()
	return w, nil
}

// runWindow opens the game window and runs the playing scene until the
// player quits or the input source ends
func runWindow(sess *session, s *state.GameState, input playing.InputSource, opts playing.Options) error {
	cfg := sess.cfg
	assetLoader, err := newAssetLoader(cfg, flagConfigDir)
	if err != nil {
		return err
	}
	library, err := assets.NewLibrary(assetLoader, cfg)
	if err != nil {
		return err
	}
	if sess.level != nil {
		if err := library.AddLevel(sess.level); err != nil {
			return err
		}
	}
	if assetLoader.Placeholders() {
		sess.logger.Debug("no assets dir configured, drawing placeholder sprites")
	}

	g := game.New(playing.New(s, input, library, opts), cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Display.TPS))
	defer g.Close()

	scale := max(cfg.Display.Scale, 1)
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*scale, cfg.Display.ScreenHeight*scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
