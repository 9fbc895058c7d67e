package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/blobclimb/internal/application/state"
	"github.com/younwookim/blobclimb/internal/infrastructure/assets"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// newLogger creates the stderr logger shared by every command
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blobclimb",
		Level:           lvl,
	}), nil
}

// newConfigLoader reads from dir, or from the embedded configs when dir is
// empty
func newConfigLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// newAssetLoader opens the configured sprite directory. A relative
// directory is resolved against the config directory; without one the
// loader draws placeholders.
func newAssetLoader(cfg *config.GameConfig, configDir string) (*assets.Loader, error) {
	tileW, tileH := cfg.Grid.TileWidth, cfg.Grid.TileHeight
	dir := cfg.Assets.Dir
	if dir == "" {
		return assets.NewLoader(nil, tileW, tileH), nil
	}
	if !filepath.IsAbs(dir) && configDir != "" {
		dir = filepath.Join(configDir, dir)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &assets.AssetLoadError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &assets.AssetLoadError{Path: dir, Err: fmt.Errorf("not a directory")}
	}
	return assets.NewLoader(os.DirFS(dir), tileW, tileH), nil
}

// resolveSeed returns seed, or a time based one when seed is zero
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// session is everything a command needs to run a game
type session struct {
	loader *config.Loader
	cfg    *config.GameConfig
	level  *config.LevelConfig // nil for the generated level
	seed   int64
	logger *log.Logger
}

// openSession loads the tuning and, when levelName is set, a static level
func openSession(configDir, levelName string, seed int64, logger *log.Logger) (*session, error) {
	loader, err := newConfigLoader(configDir)
	if err != nil {
		return nil, err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, err
	}

	s := &session{loader: loader, cfg: cfg, seed: resolveSeed(seed), logger: logger}
	if levelName != "" {
		s.level, err = loader.LoadLevel(levelName)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// newState builds the game state of the session
func (s *session) newState() (*state.GameState, error) {
	if s.level == nil {
		return state.NewProcedural(s.cfg, s.seed, s.logger), nil
	}
	return state.NewFromLevel(s.cfg, s.level, s.logger)
}

// levelName returns the static level name, empty for the generated level
func (s *session) levelName() string {
	if s.level == nil {
		return ""
	}
	return s.level.Name
}
