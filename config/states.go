package config

// StateID is the presentation state derived from the motion controller each tick.
// It drives debug colors and state timers; the controller never reads it back.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jumping
	Falling
	WallGrab
	WallSlide
	Dashing
	DropThrough
	StateCount
)

var stateNames = [StateCount]string{
	StateNone:   "none",
	Idle:        "idle",
	Running:     "running",
	Jumping:     "jumping",
	Falling:     "falling",
	WallGrab:    "wall_grab",
	WallSlide:   "wall_slide",
	Dashing:     "dashing",
	DropThrough: "drop_through",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "unknown"
	}
	return stateNames[s]
}
