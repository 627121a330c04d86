package entity

// Direction is a unit movement delta.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// wanderSteps includes standing still so wanderers sometimes pause.
var wanderSteps = []Direction{Up, Down, Left, Right, {}}

// DirectionForRune maps the w/a/s/d movement keys to a direction.
func DirectionForRune(r rune) (Direction, bool) {
	switch r {
	case 'w':
		return Up, true
	case 's':
		return Down, true
	case 'a':
		return Left, true
	case 'd':
		return Right, true
	default:
		return Direction{}, false
	}
}
