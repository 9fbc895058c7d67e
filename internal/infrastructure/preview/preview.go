// Package preview draws a grid as colored text for terminals, so levels can
// be checked without opening a window.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/younwookim/blobclimb/internal/domain/entity"
)

// Glyphs of the auto-tile variants
var variantGlyphs = map[entity.Variant]rune{
	entity.VariantCenter:           '█',
	entity.VariantTop:              '▀',
	entity.VariantLeftEdge:         '▛',
	entity.VariantRightEdge:        '▜',
	entity.VariantBottom:           '▄',
	entity.VariantFloatingMiddle:   '═',
	entity.VariantFloatingLeftCap:  '╞',
	entity.VariantFloatingRightCap: '╡',
	entity.VariantCenterLeftEdge:   '▌',
	entity.VariantCenterRightEdge:  '▐',
	entity.VariantBottomLeftEdge:   '▙',
	entity.VariantBottomRightEdge:  '▟',
	entity.VariantSingle:           '■',
}

const (
	glyphEmpty    = ' '
	glyphHidden   = '░'
	glyphSolidRef = '▒'
	glyphRef      = '*'
	glyphUnknown  = '?'
	glyphPlayer   = '@'
)

type class int

const (
	classEmpty class = iota
	classGrass
	classSoil
	classRef
	classHidden
	classPlayer
)

// Renderer turns grids into styled text
type Renderer struct {
	styles map[class]lipgloss.Style
}

// New creates a renderer whose styles target r. The color profile of r
// decides whether escape codes are written at all.
func New(r *lipgloss.Renderer) *Renderer {
	return &Renderer{
		styles: map[class]lipgloss.Style{
			classEmpty:  r.NewStyle(),
			classGrass:  r.NewStyle().Foreground(lipgloss.Color("2")),
			classSoil:   r.NewStyle().Foreground(lipgloss.Color("208")),
			classRef:    r.NewStyle().Foreground(lipgloss.Color("5")),
			classHidden: r.NewStyle().Foreground(lipgloss.Color("245")),
			classPlayer: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		},
	}
}

// Glyph returns the character drawn for t
func Glyph(t entity.Tile) rune {
	g, _ := glyph(t)
	return g
}

func glyph(t entity.Tile) (rune, class) {
	switch {
	case t.Hidden:
		return glyphHidden, classHidden
	case t.IsDynamic():
		g, ok := variantGlyphs[t.Variant]
		if !ok {
			return glyphUnknown, classSoil
		}
		if exposedTop(t.Variant) {
			return g, classGrass
		}
		return g, classSoil
	case t.Ref != "" && t.Solid:
		return glyphSolidRef, classRef
	case t.Ref != "":
		return glyphRef, classRef
	default:
		return glyphEmpty, classEmpty
	}
}

func exposedTop(v entity.Variant) bool {
	switch v {
	case entity.VariantTop, entity.VariantLeftEdge, entity.VariantRightEdge,
		entity.VariantFloatingMiddle, entity.VariantFloatingLeftCap,
		entity.VariantFloatingRightCap, entity.VariantSingle:
		return true
	}
	return false
}

// Render draws grid one line per row, top row first. When player is not nil
// the cell containing its center is marked.
func (p *Renderer) Render(grid *entity.Grid, player *entity.Character) string {
	playerCell := entity.Coord{Row: -1, Col: -1}
	if player != nil {
		playerCell = cellAt(grid, player.X+player.W/2, player.Y+player.H/2)
	}

	cells := make([][]entity.Tile, grid.Height())
	for r := range cells {
		cells[r] = make([]entity.Tile, grid.Width())
	}
	grid.Each(func(c entity.Coord, t entity.Tile) {
		cells[c.Row][c.Col] = t
	})

	var sb strings.Builder
	sb.Grow(grid.Width()*grid.Height()*2 + grid.Height())
	for r, row := range cells {
		if r > 0 {
			sb.WriteRune('\n')
		}

		// consecutive cells of the same class share one styled run
		var run strings.Builder
		runClass := class(-1)
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(p.styles[runClass].Render(run.String()))
				run.Reset()
			}
		}
		for c, t := range row {
			g, cl := glyph(t)
			if r == playerCell.Row && c == playerCell.Col {
				g, cl = glyphPlayer, classPlayer
			}
			if cl != runClass {
				flush()
				runClass = cl
			}
			run.WriteRune(g)
		}
		flush()
	}
	return sb.String()
}

// cellAt maps a screen point to the grid cell under it
func cellAt(grid *entity.Grid, x, y float64) entity.Coord {
	top := grid.AnchorY() - float64(grid.Height()*grid.TileH)
	return entity.Coord{
		Row: int(math.Floor((y - top) / float64(grid.TileH))),
		Col: int(math.Floor((x - grid.OriginX()) / float64(grid.TileW))),
	}
}

// Summary describes the size and content of grid in one line
func Summary(grid *entity.Grid) string {
	solid, families := 0, 0
	grid.Each(func(_ entity.Coord, t entity.Tile) {
		if t.Solid {
			solid++
		}
		if t.IsDynamic() {
			families++
		}
	})
	return fmt.Sprintf("%dx%d tiles, %d solid, %d auto-tiled", grid.Width(), grid.Height(), solid, families)
}
