package entity

// Neighbor presence bits for auto-tiling
const (
	NeighborLeft uint8 = 1 << iota
	NeighborRight
	NeighborTop
	NeighborBottom
)

// variantTable maps a neighbor mask to a sprite variant.
// Top-only, bottom-only and top+bottom masks have no variant; tiles with
// those neighborhoods keep the variant they had.
var variantTable = map[uint8]Variant{
	NeighborLeft | NeighborRight | NeighborTop | NeighborBottom: VariantCenter,
	NeighborLeft | NeighborRight | NeighborBottom:               VariantTop,
	NeighborLeft | NeighborBottom:                               VariantRightEdge,
	NeighborRight | NeighborBottom:                              VariantLeftEdge,
	NeighborLeft | NeighborRight | NeighborTop:                  VariantBottom,
	NeighborLeft | NeighborRight:                                VariantFloatingMiddle,
	NeighborLeft:                                                VariantFloatingRightCap,
	NeighborRight:                                               VariantFloatingLeftCap,
	NeighborRight | NeighborBottom | NeighborTop:                VariantCenterLeftEdge,
	NeighborLeft | NeighborBottom | NeighborTop:                 VariantCenterRightEdge,
	NeighborTop | NeighborRight:                                 VariantBottomLeftEdge,
	NeighborTop | NeighborLeft:                                  VariantBottomRightEdge,
	0:                                                           VariantSingle,
}

// SelectVariant returns the variant for a neighbor mask.
// ok is false for masks with no defined variant.
func SelectVariant(mask uint8) (v Variant, ok bool) {
	v, ok = variantTable[mask]
	return v, ok
}

// NeighborMask computes which orthogonal neighbors of (row, col) belong to
// the same family. Cells outside the grid count as absent.
func (g *Grid) NeighborMask(row, col int) uint8 {
	t, ok := g.At(row, col)
	if !ok || !t.IsDynamic() {
		return 0
	}

	same := func(r, c int) bool {
		n, ok := g.At(r, c)
		return ok && n.Family == t.Family
	}

	var mask uint8
	if same(row, col-1) {
		mask |= NeighborLeft
	}
	if same(row, col+1) {
		mask |= NeighborRight
	}
	if same(row-1, col) {
		mask |= NeighborTop
	}
	if same(row+1, col) {
		mask |= NeighborBottom
	}
	return mask
}

// RecomputeDynamicSprites selects the variant of every auto-tiled tile from
// its neighbors. Tiles whose neighbor mask has no variant keep their previous
// one and are returned so the caller can report them.
func (g *Grid) RecomputeDynamicSprites() []Coord {
	var unmatched []Coord
	for r := range g.rows {
		for c := range g.rows[r] {
			if !g.rows[r][c].IsDynamic() {
				continue
			}
			v, ok := SelectVariant(g.NeighborMask(r, c))
			if !ok {
				unmatched = append(unmatched, Coord{Row: r, Col: c})
				continue
			}
			g.rows[r][c].Variant = v
		}
	}
	return unmatched
}
