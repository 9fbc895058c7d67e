package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Grid      GridConfig      `yaml:"grid"`
	Generator GeneratorConfig `yaml:"generator"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Camera    CameraConfig    `yaml:"camera"`
	Assets    AssetsConfig    `yaml:"assets"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	Scale        int    `yaml:"scale"`
	TPS          int    `yaml:"tps"`
	Background   string `yaml:"background"` // color name from golang.org/x/image/colornames
}

type GridConfig struct {
	TileWidth            int `yaml:"tile_width"`
	TileHeight           int `yaml:"tile_height"`
	FloorThickness       int `yaml:"floor_thickness"`
	SeedRowStep          int `yaml:"seed_row_step"`
	InitialContinuations int `yaml:"initial_continuations"`
}

type GeneratorConfig struct {
	MinLength   int `yaml:"min_length"`
	MaxOffset   int `yaml:"max_offset"`
	MaxAttempts int `yaml:"max_attempts"`
	RowsPerStep int `yaml:"rows_per_step"`
}

type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	TerminalVelocity   float64 `yaml:"terminal_velocity"`
	Inertia            float64 `yaml:"inertia"`
	CollisionTolerance float64 `yaml:"collision_tolerance"`
}

type PlayerConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnX         float64 `yaml:"spawn_x"`
	SpawnY         float64 `yaml:"spawn_y"`
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpPower      float64 `yaml:"jump_power"`
	AnimationSpeed int     `yaml:"animation_speed"`
}

type CameraConfig struct {
	SensitivityX float64 `yaml:"sensitivity_x"`
	SensitivityY float64 `yaml:"sensitivity_y"`
}

// AssetsConfig points at sprite files. An empty Dir uses generated
// placeholder sprites.
type AssetsConfig struct {
	Dir        string   `yaml:"dir"`
	Family     string   `yaml:"family"`
	PlayerWalk []string `yaml:"player_walk"`
	PlayerJump string   `yaml:"player_jump"`
	PlayerFall string   `yaml:"player_fall"`
}

// Validate checks the values the game cannot run without
func (c *GameConfig) Validate() error {
	const src = "game.yaml"
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return configErrorf(src, "display size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.TPS <= 0:
		return configErrorf(src, "display.tps must be positive, got %d", c.Display.TPS)
	case c.Grid.TileWidth <= 0 || c.Grid.TileHeight <= 0:
		return configErrorf(src, "tile size must be positive, got %dx%d", c.Grid.TileWidth, c.Grid.TileHeight)
	case c.Display.ScreenWidth/c.Grid.TileWidth < 3:
		return configErrorf(src, "screen must be at least 3 tiles wide")
	case c.Generator.MinLength < 2:
		return configErrorf(src, "generator.min_length must be at least 2, got %d", c.Generator.MinLength)
	case c.Generator.MaxOffset < 1:
		return configErrorf(src, "generator.max_offset must be at least 1, got %d", c.Generator.MaxOffset)
	case c.Generator.MaxAttempts < 1:
		return configErrorf(src, "generator.max_attempts must be at least 1, got %d", c.Generator.MaxAttempts)
	case c.Physics.TerminalVelocity <= 0:
		return configErrorf(src, "physics.terminal_velocity must be positive")
	case c.Physics.Inertia <= 0:
		return configErrorf(src, "physics.inertia must be positive")
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return configErrorf(src, "player size must be positive")
	}
	return nil
}
