package gamedata

import (
	"errors"
	"fmt"
)

// ConnectionDef describes one edge of a zone: a wall, optionally with a door.
type ConnectionDef struct {
	Type   string `json:"type"`             // "wall" or "open"
	Door   bool   `json:"door,omitempty"`   // Wall has a door
	Opened bool   `json:"opened,omitempty"` // Door stands open
}

// ZoneDef defines a single map zone and its edges.
type ZoneDef struct {
	Features    []string                 `json:"features"`              // e.g., "building", "street", "spawn", "start"
	Connections map[string]ConnectionDef `json:"connections,omitempty"` // Keyed by direction name ("up", "down", "left", "right")
}

// HasFeature returns true if the zone carries the named feature.
func (z *ZoneDef) HasFeature(name string) bool {
	for _, f := range z.Features {
		if f == name {
			return true
		}
	}
	return false
}

// TileDef is one square tile of zones. Maps are assembled from a grid of
// tiles, though every shipped map currently uses a single tile.
type TileDef struct {
	Zones [][]ZoneDef `json:"zones"`
}

// MapDef defines a playable map loaded from JSON.
type MapDef struct {
	Name  string      `json:"name"`
	Tiles [][]TileDef `json:"tiles"`
}

// Zones returns the zone grid of the primary tile, or nil for an empty map.
func (m *MapDef) Zones() [][]ZoneDef {
	if len(m.Tiles) == 0 || len(m.Tiles[0]) == 0 {
		return nil
	}
	return m.Tiles[0][0].Zones
}

// Size returns the zone grid dimension of the primary tile.
func (m *MapDef) Size() int {
	return len(m.Zones())
}

// SpawnZone returns the coordinates of the zone carrying the "spawn"
// feature. ok is false if the map has none.
func (m *MapDef) SpawnZone() (row, col int, ok bool) {
	return m.findFeature("spawn")
}

// StartZone returns the coordinates of the zone carrying the "start"
// feature. ok is false if the map has none.
func (m *MapDef) StartZone() (row, col int, ok bool) {
	return m.findFeature("start")
}

func (m *MapDef) findFeature(name string) (row, col int, ok bool) {
	for r, rowZones := range m.Zones() {
		for c := range rowZones {
			if rowZones[c].HasFeature(name) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// MapsFile represents the structure of maps.json.
type MapsFile struct {
	Maps []MapDef `json:"maps"`
}

// LoadMaps loads map definitions from the embedded maps.json file.
func LoadMaps() ([]MapDef, error) {
	file, err := Load[MapsFile]("maps.json")
	if err != nil {
		return nil, err
	}
	return file.Maps, nil
}

// MustLoadMaps loads map definitions, panicking on error.
func MustLoadMaps() []MapDef {
	maps, err := LoadMaps()
	if err != nil {
		panic(err)
	}
	return maps
}

// =============================================================================
// MapRegistry
// =============================================================================

// MapRegistry holds loaded maps and provides indexed lookup.
type MapRegistry struct {
	maps []MapDef
}

// NewMapRegistry creates a registry from loaded map definitions.
func NewMapRegistry(maps []MapDef) *MapRegistry {
	return &MapRegistry{maps: maps}
}

// LoadMapRegistry loads and creates a registry from the embedded maps.json.
func LoadMapRegistry() (*MapRegistry, error) {
	maps, err := LoadMaps()
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, errors.New("no maps loaded from maps.json")
	}
	return NewMapRegistry(maps), nil
}

// MustLoadMapRegistry loads a registry, panicking on error.
func MustLoadMapRegistry() *MapRegistry {
	registry, err := LoadMapRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByIndex returns the map at the given index.
func (r *MapRegistry) GetByIndex(i int) (*MapDef, error) {
	if i < 0 || i >= len(r.maps) {
		return nil, fmt.Errorf("map index %d out of range (available: 0-%d)", i, len(r.maps)-1)
	}
	return &r.maps[i], nil
}

// All returns all map definitions.
func (r *MapRegistry) All() []MapDef {
	return r.maps
}

// Count returns the number of maps in the registry.
func (r *MapRegistry) Count() int {
	return len(r.maps)
}
