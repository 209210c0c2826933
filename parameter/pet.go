package parameter

import "time"

// Clock Ticks
const (
	// MotionTickInterval drives horizontal movement and anchor polling
	MotionTickInterval = 50 * time.Millisecond

	// DecayTickInterval drives hunger and loneliness growth
	DecayTickInterval = 1000 * time.Millisecond

	// AnimationTickInterval cycles sprite frames (5 FPS)
	AnimationTickInterval = 200 * time.Millisecond

	// PostQueueSize is the capacity of the owner loop's closure queue
	PostQueueSize = 256
)

// Motion
const (
	// MotionSpeed is the horizontal advance per motion tick, in pixels
	MotionSpeed = 5.0

	// PauseMinTicks is the inclusive lower bound of a rest period
	PauseMinTicks = 20

	// PauseMaxTicks is the exclusive upper bound of a rest period
	PauseMaxTicks = 60
)

// Needs
const (
	MaxHunger     = 100
	MaxLoneliness = 300
)

// Sprite & Display
const (
	// PetWidth and PetHeight are the fixed desktop sprite box in pixels
	PetWidth  = 120
	PetHeight = 120

	// AnimationFrames is the number of sprite frames cycled while alive
	AnimationFrames = 2

	// AnchorTolerance is the bottom gap in pixels under which the working
	// area is treated as flush with the screen edge
	AnchorTolerance = 5

	// FallbackScreenWidth and FallbackScreenHeight describe the display used
	// until the first successful display query
	FallbackScreenWidth  = 1920
	FallbackScreenHeight = 1080
)

// Terminal Presenter
// Cell-scaled counterparts used when the display is a terminal grid
const (
	TerminalPetWidth    = 12
	TerminalPetHeight   = 5
	TerminalMotionSpeed = 0.5
	TerminalTolerance   = 0
)
