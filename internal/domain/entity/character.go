package entity

// VerticalState is the vertical movement state of a character
type VerticalState int

const (
	// StateAirborne is the state after spawning and right after a jump apex,
	// before the character is falling fast enough to count as Falling
	StateAirborne VerticalState = iota
	StateGrounded
	StateJumping
	StateFalling
)

// String returns the string representation of the state
func (s VerticalState) String() string {
	switch s {
	case StateAirborne:
		return "Airborne"
	case StateGrounded:
		return "Grounded"
	case StateJumping:
		return "Jumping"
	case StateFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// apexFallingThreshold keeps ordinary gravity sag after a jump apex from
// switching to the falling clip right away
const apexFallingThreshold = 2

// CharacterConfig holds the tuning of a playable character
type CharacterConfig struct {
	Width, Height  float64
	Physics        Physics
	AnimationSpeed int
	Frames         map[Clip]int
}

// Character is the playable character: a body driven by a small state
// machine that also selects the animation clip.
type Character struct {
	Body
	Anim Animator

	State  VerticalState
	Facing Facing

	movingLeft       bool
	movingRight      bool
	fallingThreshold float64
	fallFacing       Facing
}

// NewCharacter creates a character at the given position
func NewCharacter(x, y float64, cfg CharacterConfig) *Character {
	return &Character{
		Body:       NewBody(x, y, cfg.Width, cfg.Height, cfg.Physics),
		Anim:       NewAnimator(cfg.AnimationSpeed, cfg.Frames),
		State:      StateAirborne,
		Facing:     FacingRight,
		fallFacing: FacingRight,
	}
}

// Grounded reports whether the character stands on a tile
func (c *Character) Grounded() bool {
	return c.State == StateGrounded
}

// airborne reports whether the vertical state forbids the walk clip
func (c *Character) airborne() bool {
	return c.State == StateJumping || c.State == StateFalling
}

// MoveRight sets the target speed to the right
func (c *Character) MoveRight(speed float64) {
	c.move(FacingRight, speed)
}

// MoveLeft sets the target speed to the left
func (c *Character) MoveLeft(speed float64) {
	c.move(FacingLeft, -speed)
}

func (c *Character) move(dir Facing, target float64) {
	c.TargetVX = target
	c.Facing = dir

	moving := &c.movingRight
	if dir == FacingLeft {
		moving = &c.movingLeft
		c.movingRight = false
	} else {
		c.movingLeft = false
	}

	if c.airborne() {
		// keep the airborne clip, only mirror it
		c.Anim.SetClip(c.Anim.Clip, dir)
	} else if !*moving {
		*moving = true
		c.Anim.SetClip(ClipWalk, dir)
	}
	c.Anim.Animate = true
}

// Stop clears the target speed and freezes the animation on its first frame
func (c *Character) Stop() {
	c.TargetVX = 0
	c.movingLeft = false
	c.movingRight = false
	c.Anim.Animate = false
	c.Anim.Rewind()
}

// Jump imparts an upward impulse. It is ignored unless grounded.
func (c *Character) Jump(power float64) bool {
	if !c.Grounded() {
		return false
	}
	c.Impulse(-power)
	return true
}

// Update runs the vertical state transitions and integrates the body
func (c *Character) Update() {
	switch {
	case c.VY < 0:
		c.jumping()
	case c.VY > 0:
		c.falling()
	}
	c.Step()
}

func (c *Character) jumping() {
	if c.State == StateJumping {
		return
	}
	c.State = StateJumping
	c.Anim.SetClip(ClipJump, c.Facing)
	c.Anim.Animate = false
}

func (c *Character) falling() {
	if c.State == StateJumping {
		// apex: hold the first walk frame as a transition pose
		c.State = StateAirborne
		c.Anim.SetClip(ClipWalk, c.Facing)
		c.Anim.Rewind()
		c.Anim.Animate = false
		c.fallingThreshold = apexFallingThreshold
		return
	}

	if c.VY <= c.fallingThreshold {
		return
	}
	c.fallingThreshold = 0
	if c.State != StateFalling || c.fallFacing != c.Facing {
		c.State = StateFalling
		c.fallFacing = c.Facing
		c.Anim.SetClip(ClipFall, c.Facing)
		c.Anim.Animate = false
	}
}

// Land is called when collision resolution put the character on a tile
func (c *Character) Land() {
	if c.State == StateGrounded {
		return
	}
	c.State = StateGrounded
	c.Anim.SetClip(ClipWalk, c.Facing)
	c.Anim.Animate = false
}

// Animate advances the current clip by one tick
func (c *Character) Animate() {
	c.Anim.Advance()
}
