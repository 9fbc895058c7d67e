package entity

import "fmt"

// Grid is a bottom-anchored 2D array of tiles.
// Row 0 is the highest row; new rows are inserted at index 0 so the grid
// grows upward as the level climbs.
type Grid struct {
	TileW, TileH int
	ViewW, ViewH int

	rows    [][]Tile
	originX float64 // screen X of column 0
	anchorY float64 // screen Y of the bottom edge of the last row
}

// NewGrid creates a grid filling the viewport with non-solid filler tiles
func NewGrid(tileW, tileH, viewW, viewH int) *Grid {
	cols := viewW / tileW
	g := &Grid{
		TileW:   tileW,
		TileH:   tileH,
		ViewW:   viewW,
		ViewH:   viewH,
		rows:    make([][]Tile, viewH/tileH),
		anchorY: float64(viewH),
	}
	for r := range g.rows {
		g.rows[r] = make([]Tile, cols)
	}
	g.Reposition(g.anchorY)
	return g
}

// NewGridFromRows creates a grid from explicit rows.
// Every row must have the same, non-zero length.
func NewGridFromRows(tileW, tileH, viewW, viewH int, rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("grid row 0 is empty")
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid row %d has %d tiles, expected %d", i, len(row), width)
		}
	}

	g := &Grid{
		TileW:   tileW,
		TileH:   tileH,
		ViewW:   viewW,
		ViewH:   viewH,
		rows:    rows,
		anchorY: float64(viewH),
	}
	g.Reposition(g.anchorY)
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return len(g.rows)
}

// AnchorY returns the screen Y of the grid's bottom edge
func (g *Grid) AnchorY() float64 {
	return g.anchorY
}

// OriginX returns the screen X of the grid's left edge
func (g *Grid) OriginX() float64 {
	return g.originX
}

// At returns the tile at (row, col). ok is false outside the grid.
func (g *Grid) At(row, col int) (t Tile, ok bool) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return Tile{}, false
	}
	return g.rows[row][col], true
}

// Set replaces the tile at (row, col), keeping its screen position.
// Out of range coordinates are ignored.
func (g *Grid) Set(row, col int, t Tile) {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return
	}
	old := g.rows[row][col]
	t.X, t.Y = old.X, old.Y
	g.rows[row][col] = t
}

// Each calls fn for every tile, top row first
func (g *Grid) Each(fn func(c Coord, t Tile)) {
	for r, row := range g.rows {
		for c, t := range row {
			fn(Coord{Row: r, Col: c}, t)
		}
	}
}

// AddLayer inserts a row of non-solid tiles at the top (index 0).
// Screen positions of existing rows are left untouched; call Reposition
// after structural changes.
func (g *Grid) AddLayer() {
	row := make([]Tile, g.Width())
	g.rows = append([][]Tile{row}, g.rows...)
}

// AppendRow adds a row filled with copies of proto at the bottom
func (g *Grid) AppendRow(proto Tile) {
	row := make([]Tile, g.Width())
	for i := range row {
		row[i] = proto
	}
	g.rows = append(g.rows, row)
}

// Reposition lays out every tile so that the bottom row ends at anchorY and
// the rows above stack upward.
func (g *Grid) Reposition(anchorY float64) {
	g.anchorY = anchorY
	top := anchorY - float64(len(g.rows)*g.TileH)
	for r := range g.rows {
		for c := range g.rows[r] {
			g.rows[r][c].X = g.originX + float64(c*g.TileW)
			g.rows[r][c].Y = top + float64(r*g.TileH)
		}
	}
}

// Scroll shifts every tile by the camera offset
func (g *Grid) Scroll(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	g.originX += dx
	g.anchorY += dy
	for r := range g.rows {
		for c := range g.rows[r] {
			g.rows[r][c].X += dx
			g.rows[r][c].Y += dy
		}
	}
}

// RowHasSolid reports whether any tile of the row is solid.
// Rows outside the grid report false.
func (g *Grid) RowHasSolid(row int) bool {
	if row < 0 || row >= len(g.rows) {
		return false
	}
	for _, t := range g.rows[row] {
		if t.Solid {
			return true
		}
	}
	return false
}

// PlaceRun fills columns [start, start+length) of row with copies of proto.
// Columns outside the row are skipped.
func (g *Grid) PlaceRun(row, start, length int, proto Tile) {
	for c := start; c < start+length; c++ {
		g.Set(row, c, proto)
	}
}

// TileRect returns the screen rectangle of a tile
func (g *Grid) TileRect(t Tile) Rect {
	return Rect{X: t.X, Y: t.Y, W: float64(g.TileW), H: float64(g.TileH)}
}

// SolidRects returns the rectangles of every visible solid tile
func (g *Grid) SolidRects() []Rect {
	var rects []Rect
	for _, row := range g.rows {
		for _, t := range row {
			if t.Solid && !t.Hidden {
				rects = append(rects, g.TileRect(t))
			}
		}
	}
	return rects
}

// Prune hides tiles that scrolled below the viewport and returns how many
// were newly hidden. Candidates are collected before any tile is modified.
// Bottom rows are dropped once the row above them is hidden too, so the
// visible bottom row keeps its neighbors for auto-tiling.
func (g *Grid) Prune() int {
	var pruned []Coord
	limit := float64(g.ViewH)
	for r, row := range g.rows {
		for c, t := range row {
			if !t.Hidden && t.Y > limit {
				pruned = append(pruned, Coord{Row: r, Col: c})
			}
		}
	}

	for _, p := range pruned {
		t := &g.rows[p.Row][p.Col]
		t.Hidden = true
		t.Solid = false
	}

	for len(g.rows) > 2 && g.rowHidden(len(g.rows)-1) && g.rowHidden(len(g.rows)-2) {
		g.rows = g.rows[:len(g.rows)-1]
		g.anchorY -= float64(g.TileH)
	}

	return len(pruned)
}

func (g *Grid) rowHidden(row int) bool {
	for _, t := range g.rows[row] {
		if !t.Hidden {
			return false
		}
	}
	return true
}
