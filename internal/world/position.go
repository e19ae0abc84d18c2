package world

import "fmt"

// Position is a zone coordinate on the grid. Row 0 is the top row.
// Positions compare by value; two entities share a zone when their
// positions are equal.
type Position struct {
	Row int
	Col int
}

// Add returns the position one zone away in the given direction.
// The result is not bounds-checked.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// InBounds returns true if the position lies on a size x size grid.
func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// DistanceTo returns the Manhattan distance to another position.
func (p Position) DistanceTo(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// IsAdjacent returns true if the other position is exactly one zone away
// orthogonally. Combat does not use adjacency; attacks require the
// attacker and target to share a zone.
func (p Position) IsAdjacent(other Position) bool {
	return p.DistanceTo(other) == 1
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
