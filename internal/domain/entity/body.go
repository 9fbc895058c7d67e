package entity

// approachEpsilon absorbs float accumulation when easing toward a target speed
const approachEpsilon = 1e-9

// Physics holds the integration constants of a body
type Physics struct {
	Gravity          float64 // added to VY every tick
	TerminalVelocity float64 // absolute bound for VX and VY
	Inertia          float64 // higher inertia means slower horizontal easing
}

// DefaultPhysics returns the constants used by generic bodies
func DefaultPhysics() Physics {
	return Physics{
		Gravity:          0.1,
		TerminalVelocity: 15,
		Inertia:          20,
	}
}

// InertiaStep returns the per-tick change applied to VX
func (p Physics) InertiaStep() float64 {
	if p.Inertia <= 0 {
		return p.TerminalVelocity
	}
	return 5 / p.Inertia
}

// Body represents the physical body of an entity.
// Position is the top-left corner in screen pixels, velocity is in pixels per tick.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	// TargetVX is the horizontal speed VX eases toward
	TargetVX float64

	Physics Physics
}

// NewBody creates a body at rest
func NewBody(x, y, w, h float64, p Physics) Body {
	return Body{X: x, Y: y, W: w, H: h, Physics: p}
}

// Rect returns the body's bounding rectangle
func (b *Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

func (b *Body) Left() float64   { return b.X }
func (b *Body) Right() float64  { return b.X + b.W }
func (b *Body) Top() float64    { return b.Y }
func (b *Body) Bottom() float64 { return b.Y + b.H }

// SetVY sets the vertical velocity clamped to the terminal velocity
func (b *Body) SetVY(v float64) {
	b.VY = clamp(v, -b.Physics.TerminalVelocity, b.Physics.TerminalVelocity)
}

// SetVX sets the horizontal velocity clamped to the terminal velocity
func (b *Body) SetVX(v float64) {
	b.VX = clamp(v, -b.Physics.TerminalVelocity, b.Physics.TerminalVelocity)
}

// Impulse adds dv to the vertical velocity; negative values push upward
func (b *Body) Impulse(dv float64) {
	b.SetVY(b.VY + dv)
}

// Step advances the body by one tick.
// Position moves with the previous tick's velocity before gravity and
// inertia update it (semi-implicit Euler).
func (b *Body) Step() {
	b.Y += b.VY
	b.X += b.VX

	b.SetVY(b.VY + b.Physics.Gravity)
	b.easeX()
}

// easeX moves VX toward TargetVX by a fixed step without overshooting.
// With no target the body decays toward zero at the same rate.
func (b *Body) easeX() {
	step := b.Physics.InertiaStep()
	target := b.TargetVX

	switch {
	case b.VX < target:
		if b.VX+step >= target-approachEpsilon {
			b.SetVX(target)
		} else {
			b.SetVX(b.VX + step)
		}
	case b.VX > target:
		if b.VX-step <= target+approachEpsilon {
			b.SetVX(target)
		} else {
			b.SetVX(b.VX - step)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
