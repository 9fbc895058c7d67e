package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameFile is the tuning file name inside a config directory
const GameFile = "game.yaml"

// LevelDir holds level JSON files inside a config directory
const LevelDir = "levels"

// Loader loads game configuration and levels using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.yaml layered over the embedded defaults.
// A missing game.yaml yields the defaults.
func (l *Loader) LoadGame() (*GameConfig, error) {
	cfg, err := DefaultGameConfig()
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fsys, GameFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GameFile, err)
	}

	if err := decodeGame(data, GameFile, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGameFile loads a game.yaml from an explicit path. An empty path
// yields the embedded defaults.
func LoadGameFile(p string) (*GameConfig, error) {
	cfg, err := DefaultGameConfig()
	if err != nil {
		return nil, err
	}
	if p == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, &ConfigurationError{Source: p, Reason: "cannot read file", Err: err}
	}
	if err := decodeGame(data, filepath.Base(p), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeGame(data []byte, source string, cfg *GameConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &ConfigurationError{Source: source, Reason: "invalid YAML", Err: err}
	}
	return cfg.Validate()
}

// LoadLevel loads and validates levels/<name>.json
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := path.Join(LevelDir, name+".json")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, &ConfigurationError{Source: p, Reason: "cannot read level", Err: err}
	}
	lvl, err := ParseLevel(data, name)
	if err != nil {
		return nil, err
	}
	return lvl, nil
}

// LoadLevelFile loads a level from an explicit path on disk. The level is
// named after the file without its extension.
func LoadLevelFile(p string) (*LevelConfig, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, &ConfigurationError{Source: p, Reason: "cannot read level", Err: err}
	}
	return ParseLevel(data, LevelName(p))
}

// LevelName returns the level name of a level file path
func LevelName(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Levels lists the level names available to the loader, sorted
func (l *Loader) Levels() ([]string, error) {
	matches, err := fs.Glob(l.fsys, path.Join(LevelDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		names = append(names, base[:len(base)-len(".json")])
	}
	return names, nil
}
