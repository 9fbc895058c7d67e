package entity

// Family identifies a group of auto-tiled tiles. Tiles of the same family
// connect visually to each other. The zero value marks a plain tile.
type Family string

const (
	FamilyNone  Family = ""
	FamilyGrass Family = "grass"
)

// Variant is the sprite variant selected for an auto-tiled tile
type Variant int

const (
	VariantNone Variant = iota
	VariantCenter
	VariantTop
	VariantRightEdge
	VariantLeftEdge
	VariantBottom
	VariantFloatingMiddle
	VariantFloatingRightCap
	VariantFloatingLeftCap
	VariantCenterLeftEdge
	VariantCenterRightEdge
	VariantBottomLeftEdge
	VariantBottomRightEdge
	VariantSingle
)

// Variants lists every selectable variant in declaration order
var Variants = []Variant{
	VariantCenter,
	VariantTop,
	VariantRightEdge,
	VariantLeftEdge,
	VariantBottom,
	VariantFloatingMiddle,
	VariantFloatingRightCap,
	VariantFloatingLeftCap,
	VariantCenterLeftEdge,
	VariantCenterRightEdge,
	VariantBottomLeftEdge,
	VariantBottomRightEdge,
	VariantSingle,
}

// String returns the string representation of the variant
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "None"
	case VariantCenter:
		return "Center"
	case VariantTop:
		return "Top"
	case VariantRightEdge:
		return "RightEdge"
	case VariantLeftEdge:
		return "LeftEdge"
	case VariantBottom:
		return "Bottom"
	case VariantFloatingMiddle:
		return "FloatingMiddle"
	case VariantFloatingRightCap:
		return "FloatingRightCap"
	case VariantFloatingLeftCap:
		return "FloatingLeftCap"
	case VariantCenterLeftEdge:
		return "CenterLeftEdge"
	case VariantCenterRightEdge:
		return "CenterRightEdge"
	case VariantBottomLeftEdge:
		return "BottomLeftEdge"
	case VariantBottomRightEdge:
		return "BottomRightEdge"
	case VariantSingle:
		return "Single"
	default:
		return "Unknown"
	}
}

// Tile represents a single cell of the grid.
// X, Y are the screen coordinates of the tile's top-left corner in pixels.
type Tile struct {
	X, Y    float64
	Solid   bool
	Family  Family
	Variant Variant
	Ref     string // image reference key for tiles loaded from a level file
	Hidden  bool   // scrolled out below the viewport
}

// IsDynamic reports whether the tile takes part in auto-tiling
func (t Tile) IsDynamic() bool {
	return t.Family != FamilyNone
}

// FamilyTile returns a solid tile of the given auto-tile family
func FamilyTile(f Family) Tile {
	return Tile{Solid: true, Family: f}
}

// Coord addresses a tile by row and column
type Coord struct {
	Row, Col int
}

// Rect is an axis-aligned rectangle in screen pixels
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// OverlapsX reports whether the horizontal extents of both rects overlap
func (r Rect) OverlapsX(o Rect) bool {
	return o.Right() > r.Left() && r.Right() > o.Left()
}
