package system

import "github.com/younwookim/blobclimb/internal/domain/entity"

// ResolveCollisions resolves vertical contacts between body and solid tiles.
// A falling body whose bottom is within tolerance of a tile top (or will
// cross it this tick) is snapped onto the tile. A rising body that would
// pass a tile bottom hits its head there. Both stop vertical motion.
// There is no horizontal collision. Returns true when the body landed.
func ResolveCollisions(body *entity.Body, solids []entity.Rect, tolerance float64) bool {
	landed := false
	for _, tile := range solids {
		if !body.Rect().OverlapsX(tile) {
			continue
		}

		switch {
		case body.VY > 0 &&
			body.Bottom() <= tile.Top()+tolerance &&
			body.Bottom()+body.VY > tile.Top()-tolerance:
			body.Y = tile.Top() - body.H
			body.VY = 0
			landed = true

		case body.VY < 0 &&
			body.Top() >= tile.Bottom() &&
			body.Top()+body.VY < tile.Bottom():
			body.Y = tile.Bottom()
			body.VY = 0
		}
	}
	return landed
}
