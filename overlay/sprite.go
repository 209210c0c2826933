package overlay

// Sprite art rows; the sprite's last row is the ground line or the button row
var aliveFrames = [][]string{
	{
		`   /\_/\    `,
		`  ( o.o )   `,
		`   > ^ <    `,
		`  (_)-(_)   `,
	},
	{
		`   /\_/\    `,
		`  ( -.- )   `,
		`   > ^ <    `,
		`   (_)(_)   `,
	},
}

var deadFrame = []string{
	`   /\_/\    `,
	`  ( x.x )   `,
	`   > - <    `,
	`  ~~~~~~~   `,
}

const groundRune = '_'

// spriteRows returns the art rows for a frame, clamped to the frame count
func spriteRows(alive bool, frame int) []string {
	if !alive {
		return deadFrame
	}
	if frame < 0 || frame >= len(aliveFrames) {
		frame = 0
	}
	return aliveFrames[frame]
}
