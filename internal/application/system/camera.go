package system

import (
	"github.com/younwookim/blobclimb/internal/domain/entity"
	"github.com/younwookim/blobclimb/internal/infrastructure/config"
)

// Camera keeps the followed body inside a dead zone. The world scrolls
// instead of the viewport, so an offset is applied to the grid and the body.
type Camera struct {
	ScreenW, ScreenH float64
	// SensitivityX and SensitivityY are the margins between the screen edges
	// and the dead zone
	SensitivityX, SensitivityY float64
}

// NewCamera creates a camera for the configured screen
func NewCamera(display config.DisplayConfig, cfg config.CameraConfig) Camera {
	return Camera{
		ScreenW:      float64(display.ScreenWidth),
		ScreenH:      float64(display.ScreenHeight),
		SensitivityX: cfg.SensitivityX,
		SensitivityY: cfg.SensitivityY,
	}
}

// Offset returns the scroll that brings r back inside the dead zone.
// It is zero while r is inside.
func (c Camera) Offset(r entity.Rect) (dx, dy float64) {
	switch {
	case r.Left() < c.SensitivityX:
		dx = c.SensitivityX - r.Left()
	case r.Right() > c.ScreenW-c.SensitivityX:
		dx = c.ScreenW - c.SensitivityX - r.Right()
	}

	switch {
	case r.Top() < c.SensitivityY:
		dy = c.SensitivityY - r.Top()
	case r.Bottom() > c.ScreenH-c.SensitivityY:
		dy = c.ScreenH - c.SensitivityY - r.Bottom()
	}
	return dx, dy
}

// Follow scrolls grid and body so body ends up inside the dead zone
func (c Camera) Follow(grid *entity.Grid, body *entity.Body) (dx, dy float64) {
	dx, dy = c.Offset(body.Rect())
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	grid.Scroll(dx, dy)
	body.X += dx
	body.Y += dy
	return dx, dy
}
