package system

import (
	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// BuildProceduralLevel creates the starting grid of an endless level:
// a viewport of filler rows on top of a solid floor, a seed platform every
// SeedRowStep rows and a number of continuations climbing above them.
func BuildProceduralLevel(cfg *config.GameConfig, gen *Generator) *entity.Grid {
	grid := entity.NewGrid(cfg.Grid.TileWidth, cfg.Grid.TileHeight, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	floor := entity.FamilyTile(gen.proto.Family)
	for i := 0; i < cfg.Grid.FloorThickness; i++ {
		grid.AppendRow(floor)
	}
	RefreshSprites(grid, gen.logger)

	step := max(cfg.Grid.SeedRowStep, 1)
	for row := 0; row < grid.Height(); row += step {
		gen.PlaceSegment(grid, row, AutoStart, 0)
	}

	for i := 0; i < cfg.Grid.InitialContinuations; i++ {
		gen.GenerateContinuation(grid, 0)
	}

	grid.Reposition(grid.AnchorY())
	return grid
}
