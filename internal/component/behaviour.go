package component

import "github.com/go-gl/mathgl/mgl32"

// Direction is the leg of the square patrol an entity is on.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{"up", "down", "left", "right"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection maps "up", "down", "left", "right" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), true
		}
	}
	return DirUp, false
}

// Patrol moves an entity around the edge of the window.
type Patrol struct {
	Direction Direction
	Speed     float32 // pixels per second
}

// ColorCycle fades Renderable.Color from From to To over Period seconds,
// then picks a new To.
type ColorCycle struct {
	Elapsed float32
	Period  float32
	From    mgl32.Vec3
	To      mgl32.Vec3
}

// Script binds an entity to a Lua update function.
type Script struct {
	Func string
}
