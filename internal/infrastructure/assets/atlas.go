package assets

import (
	"image"
	"image/color"
	"io/fs"
	"path"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/younwookim/blobclimb/internal/domain/entity"
)

// atlasSource names the file a variant is cut from. Right-hand variants
// reuse the left-hand file mirrored.
type atlasSource struct {
	suffix string
	flip   bool
}

var atlasSources = map[entity.Variant]atlasSource{
	entity.VariantTop:              {suffix: ""},
	entity.VariantLeftEdge:         {suffix: "_side"},
	entity.VariantRightEdge:        {suffix: "_side", flip: true},
	entity.VariantCenter:           {suffix: "_center"},
	entity.VariantBottom:           {suffix: "_bottom"},
	entity.VariantFloatingMiddle:   {suffix: "_floater"},
	entity.VariantFloatingRightCap: {suffix: "_floater_side"},
	entity.VariantFloatingLeftCap:  {suffix: "_floater_side", flip: true},
	entity.VariantSingle:           {suffix: "_single"},
	entity.VariantCenterLeftEdge:   {suffix: "_center_side"},
	entity.VariantCenterRightEdge:  {suffix: "_center_side", flip: true},
	entity.VariantBottomLeftEdge:   {suffix: "_bottom_side"},
	entity.VariantBottomRightEdge:  {suffix: "_bottom_side", flip: true},
}

// AtlasFile returns the path of the sprite file for a family variant
// relative to the assets dir, and whether it is drawn mirrored.
func AtlasFile(family entity.Family, v entity.Variant) (file string, flip bool, ok bool) {
	src, ok := atlasSources[v]
	if !ok {
		return "", false, false
	}
	name := string(family)
	return path.Join("blocks", name, name+src.suffix+".png"), src.flip, true
}

// Atlas holds one image per variant of a tile family
type Atlas map[entity.Variant]image.Image

// LoadAtlas reads every variant of family from fsys. Each file is decoded
// once and color keyed; mirrored variants share the decoded source.
func LoadAtlas(fsys fs.FS, family entity.Family) (Atlas, error) {
	decoded := make(map[string]image.Image)
	atlas := make(Atlas, len(atlasSources))
	for _, v := range entity.Variants {
		file, flip, _ := AtlasFile(family, v)
		img, ok := decoded[file]
		if !ok {
			raw, err := LoadImage(fsys, file)
			if err != nil {
				return nil, err
			}
			img = ColorKey(raw, KeyColor)
			decoded[file] = img
		}
		if flip {
			img = FlipHorizontal(img)
		}
		atlas[v] = img
	}
	return atlas, nil
}

var (
	soilColor   = colornames.Sienna
	edgeColor   = colornames.Saddlebrown
	grassColor  = colornames.Forestgreen
	accentColor = colornames.Darkolivegreen
)

// PlaceholderAtlas draws an atlas for family without any sprite files.
// Exposed sides of a variant get a darker edge and an exposed top gets a
// strip of grass, so the auto-tiling stays visible.
func PlaceholderAtlas(family entity.Family, w, h int) Atlas {
	atlas := make(Atlas, len(entity.Variants))
	for _, v := range entity.Variants {
		mask, _ := variantMask(v)
		atlas[v] = placeholderTile(w, h, mask)
	}
	return atlas
}

// variantMask returns the neighbor mask a variant is selected for
func variantMask(v entity.Variant) (uint8, bool) {
	for mask := uint8(0); mask < 16; mask++ {
		if sel, ok := entity.SelectVariant(mask); ok && sel == v {
			return mask, true
		}
	}
	return 0, false
}

func placeholderTile(w, h int, mask uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill := func(r image.Rectangle, c color.Color) {
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
	fill(img.Bounds(), soilColor)

	edge := max(w/8, 1)
	if mask&entity.NeighborLeft == 0 {
		fill(image.Rect(0, 0, edge, h), edgeColor)
	}
	if mask&entity.NeighborRight == 0 {
		fill(image.Rect(w-edge, 0, w, h), edgeColor)
	}
	if mask&entity.NeighborBottom == 0 {
		fill(image.Rect(0, h-edge, w, h), edgeColor)
	}
	if mask&entity.NeighborTop == 0 {
		fill(image.Rect(0, 0, w, max(h/4, 1)), grassColor)
		fill(image.Rect(0, max(h/4, 1), w, max(h/4, 1)+1), accentColor)
	}
	return img
}
