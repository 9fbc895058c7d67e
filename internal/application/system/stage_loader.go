package system

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// StageLayout is the tile and viewport size a level is laid out in
type StageLayout struct {
	TileW, TileH int
	ViewW, ViewH int
}

// LayoutFromConfig returns the layout of the configured screen
func LayoutFromConfig(cfg *config.GameConfig) StageLayout {
	return StageLayout{
		TileW: cfg.Grid.TileWidth,
		TileH: cfg.Grid.TileHeight,
		ViewW: cfg.Display.ScreenWidth,
		ViewH: cfg.Display.ScreenHeight,
	}
}

// LoadStage converts a validated LevelConfig into a grid anchored to the
// bottom of the viewport. Family references become auto-tiled tiles, other
// references keep their image path in Tile.Ref.
func LoadStage(level *config.LevelConfig, layout StageLayout, logger *log.Logger) (*entity.Grid, error) {
	rows := make([][]entity.Tile, len(level.Blueprint))
	for r, blueprint := range level.Blueprint {
		rows[r] = make([]entity.Tile, len(blueprint))
		for c, raw := range blueprint {
			cell := config.ParseCell(raw)
			if cell.Empty {
				continue
			}

			ref, ok := level.References[cell.Key]
			if !ok {
				return nil, fmt.Errorf("cell (%d,%d): unknown reference %q", r, c, cell.Key)
			}

			tile := entity.Tile{Solid: cell.Solid}
			if family, isFamily := config.ReferenceFamily(ref); isFamily {
				tile.Family = entity.Family(family)
			} else {
				tile.Ref = ref
			}
			rows[r][c] = tile
		}
	}

	grid, err := entity.NewGridFromRows(layout.TileW, layout.TileH, layout.ViewW, layout.ViewH, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build level %s: %w", level.Name, err)
	}
	RefreshSprites(grid, logger)
	return grid, nil
}
