package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectVariant(t *testing.T) {
	const (
		L = NeighborLeft
		R = NeighborRight
		T = NeighborTop
		B = NeighborBottom
	)

	tests := []struct {
		name string
		mask uint8
		want Variant
	}{
		{"all four", L | R | T | B, VariantCenter},
		{"no top", L | R | B, VariantTop},
		{"left and bottom", L | B, VariantRightEdge},
		{"right and bottom", R | B, VariantLeftEdge},
		{"no bottom", L | R | T, VariantBottom},
		{"left and right", L | R, VariantFloatingMiddle},
		{"left only", L, VariantFloatingRightCap},
		{"right only", R, VariantFloatingLeftCap},
		{"no left", R | B | T, VariantCenterLeftEdge},
		{"no right", L | B | T, VariantCenterRightEdge},
		{"top and right", T | R, VariantBottomLeftEdge},
		{"top and left", T | L, VariantBottomRightEdge},
		{"none", 0, VariantSingle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectVariant(tt.mask)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectVariant_UndefinedMasks(t *testing.T) {
	for _, mask := range []uint8{NeighborTop, NeighborBottom, NeighborTop | NeighborBottom} {
		_, ok := SelectVariant(mask)
		assert.False(t, ok, "mask %04b should have no variant", mask)
	}
}

func TestSelectVariant_CoversThirteenMasks(t *testing.T) {
	defined := 0
	for mask := uint8(0); mask < 16; mask++ {
		if _, ok := SelectVariant(mask); ok {
			defined++
		}
	}
	assert.Equal(t, 13, defined)
	assert.Len(t, Variants, 13)
}

// buildGrid creates a grid from a picture where 'g' is a grass tile
func buildGrid(t *testing.T, picture ...string) *Grid {
	t.Helper()
	rows := make([][]Tile, len(picture))
	for r, line := range picture {
		rows[r] = make([]Tile, len(line))
		for c, ch := range line {
			if ch == 'g' {
				rows[r][c] = FamilyTile(FamilyGrass)
			}
		}
	}
	g, err := NewGridFromRows(32, 32, len(picture[0])*32, len(picture)*32, rows)
	require.NoError(t, err)
	return g
}

func variantAt(t *testing.T, g *Grid, row, col int) Variant {
	t.Helper()
	tile, ok := g.At(row, col)
	require.True(t, ok)
	return tile.Variant
}

func TestGrid_RecomputeDynamicSprites(t *testing.T) {
	g := buildGrid(t,
		".....",
		".ggg.",
		".ggg.",
		".ggg.",
		"g....",
	)

	unmatched := g.RecomputeDynamicSprites()
	assert.Empty(t, unmatched)

	assert.Equal(t, VariantLeftEdge, variantAt(t, g, 1, 1))
	assert.Equal(t, VariantTop, variantAt(t, g, 1, 2))
	assert.Equal(t, VariantRightEdge, variantAt(t, g, 1, 3))
	assert.Equal(t, VariantCenterLeftEdge, variantAt(t, g, 2, 1))
	assert.Equal(t, VariantCenter, variantAt(t, g, 2, 2))
	assert.Equal(t, VariantCenterRightEdge, variantAt(t, g, 2, 3))
	assert.Equal(t, VariantBottomLeftEdge, variantAt(t, g, 3, 1))
	assert.Equal(t, VariantBottom, variantAt(t, g, 3, 2))
	assert.Equal(t, VariantBottomRightEdge, variantAt(t, g, 3, 3))
	assert.Equal(t, VariantSingle, variantAt(t, g, 4, 0))

	// plain tiles never receive a variant
	assert.Equal(t, VariantNone, variantAt(t, g, 0, 0))
}

func TestGrid_RecomputeDynamicSprites_FloatingRun(t *testing.T) {
	g := buildGrid(t,
		"......",
		".gggg.",
		"......",
	)
	g.RecomputeDynamicSprites()

	assert.Equal(t, VariantFloatingLeftCap, variantAt(t, g, 1, 1))
	assert.Equal(t, VariantFloatingMiddle, variantAt(t, g, 1, 2))
	assert.Equal(t, VariantFloatingMiddle, variantAt(t, g, 1, 3))
	assert.Equal(t, VariantFloatingRightCap, variantAt(t, g, 1, 4))
}

func TestGrid_RecomputeDynamicSprites_EdgesCountAsAbsent(t *testing.T) {
	g := buildGrid(t,
		"ggg",
		"ggg",
	)
	g.RecomputeDynamicSprites()

	assert.Equal(t, VariantLeftEdge, variantAt(t, g, 0, 0))
	assert.Equal(t, VariantTop, variantAt(t, g, 0, 1))
	assert.Equal(t, VariantBottomRightEdge, variantAt(t, g, 1, 2))
}

func TestGrid_RecomputeDynamicSprites_Idempotent(t *testing.T) {
	g := buildGrid(t,
		"..g...",
		".gggg.",
		"gggggg",
		"g.gg.g",
	)

	g.RecomputeDynamicSprites()
	first := snapshotVariants(g)
	g.RecomputeDynamicSprites()
	second := snapshotVariants(g)

	assert.Equal(t, first, second)
}

func TestGrid_RecomputeDynamicSprites_UndefinedMaskKeepsVariant(t *testing.T) {
	// a vertical pillar has top+bottom neighbors only in its middle
	g := buildGrid(t,
		".g.",
		".g.",
		".g.",
	)
	tile, _ := g.At(1, 1)
	tile.Variant = VariantSingle
	g.Set(1, 1, tile)

	unmatched := g.RecomputeDynamicSprites()

	// top (bottom only), middle (top+bottom), bottom (top only)
	assert.ElementsMatch(t, []Coord{{0, 1}, {1, 1}, {2, 1}}, unmatched)
	assert.Equal(t, VariantSingle, variantAt(t, g, 1, 1))
	assert.Equal(t, VariantNone, variantAt(t, g, 0, 1))
}

func TestGrid_NeighborMask_DifferentFamiliesDoNotConnect(t *testing.T) {
	g := buildGrid(t, "gg")
	g.Set(0, 1, FamilyTile(Family("stone")))

	assert.Equal(t, uint8(0), g.NeighborMask(0, 0))
	assert.Equal(t, uint8(0), g.NeighborMask(0, 5), "outside the grid")
}

func snapshotVariants(g *Grid) map[Coord]Variant {
	out := make(map[Coord]Variant)
	g.Each(func(c Coord, t Tile) {
		out[c] = t.Variant
	})
	return out
}
