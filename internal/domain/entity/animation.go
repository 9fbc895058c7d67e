package entity

// AnimationFramerate is the number of ticks per second the animator is driven at
const AnimationFramerate = 120

// Clip identifies an animation clip of the character
type Clip int

const (
	ClipWalk Clip = iota
	ClipJump
	ClipFall
)

// String returns the string representation of the clip
func (c Clip) String() string {
	switch c {
	case ClipWalk:
		return "Walk"
	case ClipJump:
		return "Jump"
	case ClipFall:
		return "Fall"
	default:
		return "Unknown"
	}
}

// Facing is the horizontal direction a character looks at
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Mirrored reports whether sprites must be flipped horizontally
func (f Facing) Mirrored() bool {
	return f == FacingLeft
}

// Animator steps through the frames of the current clip
type Animator struct {
	Clip    Clip
	Facing  Facing
	Frame   int
	Animate bool

	counter       int
	ticksPerFrame int
	frames        map[Clip]int
}

// NewAnimator creates an animator showing the first walk frame.
// speed is the number of frames per second; frames maps every clip to its
// frame count.
func NewAnimator(speed int, frames map[Clip]int) Animator {
	if speed <= 0 {
		speed = 10
	}
	ticks := AnimationFramerate / speed
	if ticks < 1 {
		ticks = 1
	}
	return Animator{
		Clip:          ClipWalk,
		Facing:        FacingRight,
		ticksPerFrame: ticks,
		frames:        frames,
	}
}

// SetClip switches to clip mirrored for facing.
// Selecting the clip already playing with the same facing keeps the current
// frame; it returns whether the clip actually changed.
func (a *Animator) SetClip(clip Clip, facing Facing) bool {
	if a.Clip == clip && a.Facing == facing {
		return false
	}
	a.Clip = clip
	a.Facing = facing
	a.Rewind()
	return true
}

// Rewind returns to the first frame of the current clip
func (a *Animator) Rewind() {
	a.Frame = 0
	a.counter = 0
}

// FrameCount returns the number of frames of the current clip
func (a *Animator) FrameCount() int {
	if n := a.frames[a.Clip]; n > 0 {
		return n
	}
	return 1
}

// Advance moves the animation forward by one tick
func (a *Animator) Advance() {
	if !a.Animate {
		return
	}
	a.counter++
	if a.counter%a.ticksPerFrame != 0 {
		return
	}
	a.Frame++
	if a.Frame >= a.FrameCount() {
		a.Frame = 0
		a.counter = 0
	}
}
