// Package world provides the zone grid and positions the game is played on.
package world

// Direction represents one of the four cardinal movement directions.
type Direction int

const (
	// Up decreases the row index.
	Up Direction = iota
	// Down increases the row index.
	Down
	// Left decreases the column index.
	Left
	// Right increases the column index.
	Right
)

// Directions lists every direction in canonical order. Zombie pursuit
// breaks ties by this order, so it is part of game behavior.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Offset returns the row and column delta of one step in the direction.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}
