package world

// DefaultSize is the zone grid dimension of the standard map tile.
const DefaultSize = 3

// ZoneKind classifies a zone for display purposes. Movement and combat
// rules do not distinguish zone kinds.
type ZoneKind int

const (
	// ZoneStreet is an open street zone.
	ZoneStreet ZoneKind = iota
	// ZoneBuilding is an interior building zone.
	ZoneBuilding
)

// String returns the zone kind name.
func (k ZoneKind) String() string {
	switch k {
	case ZoneStreet:
		return "street"
	case ZoneBuilding:
		return "building"
	default:
		return "unknown"
	}
}

// Board is the square zone grid the game is played on.
type Board struct {
	Size  int      // Grid dimension (Size x Size zones)
	Spawn Position // Where new zombies appear
	Start Position // Where survivors begin the game
	zones [][]ZoneKind
}

// NewBoard creates a board of the given size with every zone a street,
// the spawn zone in the bottom-right corner and the start zone in the
// top-right corner.
func NewBoard(size int) *Board {
	zones := make([][]ZoneKind, size)
	for r := range zones {
		zones[r] = make([]ZoneKind, size)
	}
	return &Board{
		Size:  size,
		Spawn: Position{Row: size - 1, Col: size - 1},
		Start: Position{Row: 0, Col: size - 1},
		zones: zones,
	}
}

// Contains returns true if the position lies on the board.
func (b *Board) Contains(p Position) bool {
	return p.InBounds(b.Size)
}

// ZoneAt returns the kind of the zone at the given position.
// Out-of-bounds positions report as streets.
func (b *Board) ZoneAt(p Position) ZoneKind {
	if !b.Contains(p) {
		return ZoneStreet
	}
	return b.zones[p.Row][p.Col]
}

// SetZone sets the kind of the zone at the given position.
// Out-of-bounds positions are ignored.
func (b *Board) SetZone(p Position, kind ZoneKind) {
	if b.Contains(p) {
		b.zones[p.Row][p.Col] = kind
	}
}
