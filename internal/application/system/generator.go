package system

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// AutoStart lets PlaceSegment pick the start column
const AutoStart = -1

// ErrGenerationExhausted is returned when no valid continuation column was
// drawn within the configured number of attempts
var ErrGenerationExhausted = errors.New("platform generation exhausted")

// Segment is a horizontal run of solid tiles placed in one row
type Segment struct {
	Row    int
	Start  int
	Length int
}

// End returns the column just past the segment
func (s Segment) End() int {
	return s.Start + s.Length
}

// Generator places platform segments into a grid.
// It remembers where the last continuation should start so consecutive
// platforms stay reachable from each other.
type Generator struct {
	cfg    config.GeneratorConfig
	rng    *rand.Rand
	proto  entity.Tile
	logger *log.Logger

	next   int // start column of the next continuation, AutoStart if none
	budget int // maximum length of the next continuation, 0 = unbounded
}

// NewGenerator creates a generator placing tiles of the given family
func NewGenerator(cfg config.GeneratorConfig, family entity.Family, rng *rand.Rand, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.MinLength < 2 {
		cfg.MinLength = 2
	}
	if cfg.MaxOffset < 1 {
		cfg.MaxOffset = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.RowsPerStep < 1 {
		cfg.RowsPerStep = 1
	}
	return &Generator{
		cfg:    cfg,
		rng:    rng,
		proto:  entity.FamilyTile(family),
		logger: logger,
		next:   AutoStart,
	}
}

// Next returns the pending continuation column and length budget
func (g *Generator) Next() (col, budget int) {
	return g.next, g.budget
}

// PlaceSegment places a random-length run of solid tiles in row.
// Nothing happens when the row already holds a solid tile. maxLength bounds
// the length unless it is 0; an explicit start also bounds it by the room
// left in the row.
func (g *Generator) PlaceSegment(grid *entity.Grid, row, start, maxLength int) (Segment, bool) {
	width := grid.Width()
	if row < 0 || row >= grid.Height() || grid.RowHasSolid(row) {
		return Segment{}, false
	}
	if start != AutoStart && (start < 0 || start >= width) {
		return Segment{}, false
	}

	hi := max(g.cfg.MinLength, width/2)
	length := g.cfg.MinLength + g.rng.Intn(hi-g.cfg.MinLength+1)
	if maxLength > 0 {
		length = min(length, maxLength)
	}

	if start == AutoStart {
		length = min(length, width)
		start = g.rng.Intn(width - length + 1)
	} else {
		length = min(length, width-start)
	}

	seg := Segment{Row: row, Start: start, Length: length}
	grid.PlaceRun(row, seg.Start, seg.Length, g.proto)
	RefreshSprites(grid, g.logger)
	return seg, true
}

// GenerateContinuation grows the grid by one step and places the next
// platform in row, starting where the previous continuation left off.
// It then draws the start column for the following continuation.
func (g *Generator) GenerateContinuation(grid *entity.Grid, row int) (Segment, bool) {
	for i := 0; i < g.cfg.RowsPerStep; i++ {
		grid.AddLayer()
	}

	seg, ok := g.PlaceSegment(grid, row, g.next, g.budget)
	if ok {
		if err := g.drawNext(seg, grid.Width()); err != nil {
			g.logger.Warn("falling back to automatic placement", "error", err, "start", seg.Start, "length", seg.Length)
			g.next = AutoStart
			g.budget = 0
		}
	}

	grid.Reposition(grid.AnchorY())
	return seg, ok
}

// drawNext picks the next continuation column at most MaxOffset columns away
// from the segment start, strictly inside the grid's column range.
func (g *Generator) drawNext(seg Segment, width int) error {
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		offset := 1 + g.rng.Intn(g.cfg.MaxOffset)
		if g.rng.Intn(2) == 0 {
			offset = -offset
		}

		col := seg.Start + offset
		if col <= 0 || col >= width-1 {
			continue
		}

		g.next = col
		if offset < 0 {
			g.budget = max(seg.Length+offset, g.cfg.MinLength)
		} else {
			g.budget = 0
		}
		return nil
	}
	return ErrGenerationExhausted
}

// RefreshSprites recomputes the auto-tile variants of grid and logs every
// tile whose neighborhood has no matching variant
func RefreshSprites(grid *entity.Grid, logger *log.Logger) int {
	unmatched := grid.RecomputeDynamicSprites()
	if logger == nil {
		return len(unmatched)
	}
	for _, c := range unmatched {
		logger.Warn("no sprite variant for neighborhood", "row", c.Row, "col", c.Col, "mask", grid.NeighborMask(c.Row, c.Col))
	}
	return len(unmatched)
}
