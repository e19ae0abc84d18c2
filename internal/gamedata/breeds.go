package gamedata

import (
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// BreedDef defines a zombie breed loaded from JSON.
type BreedDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "walker")
	Name        string `json:"name"`        // Display name (e.g., "Walker")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "z")
	Color       string `json:"color"`       // Hex color code (e.g., "#00a550")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (b *BreedDef) GlyphRune() rune {
	if len(b.Glyph) == 0 {
		return '?'
	}
	return rune(b.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (b *BreedDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(b.Color)
	if err != nil {
		return tcell.ColorGreen // fallback
	}
	return color
}

// ZombiesFile represents the structure of zombies.json.
type ZombiesFile struct {
	Zombies []BreedDef `json:"zombies"`
}

// LoadBreeds loads zombie breed definitions from the embedded zombies.json file.
func LoadBreeds() ([]BreedDef, error) {
	file, err := Load[ZombiesFile]("zombies.json")
	if err != nil {
		return nil, err
	}
	return file.Zombies, nil
}

// MustLoadBreeds loads zombie breed definitions, panicking on error.
func MustLoadBreeds() []BreedDef {
	breeds, err := LoadBreeds()
	if err != nil {
		panic(err)
	}
	return breeds
}

// =============================================================================
// BreedRegistry
// =============================================================================

// BreedRegistry holds loaded zombie breeds and provides spawning utilities.
type BreedRegistry struct {
	breeds      []BreedDef
	totalWeight int
}

// NewBreedRegistry creates a registry from loaded breed definitions.
func NewBreedRegistry(breeds []BreedDef) *BreedRegistry {
	totalWeight := 0
	for _, b := range breeds {
		totalWeight += b.SpawnWeight
	}
	return &BreedRegistry{
		breeds:      breeds,
		totalWeight: totalWeight,
	}
}

// LoadBreedRegistry loads and creates a registry from the embedded zombies.json.
func LoadBreedRegistry() (*BreedRegistry, error) {
	breeds, err := LoadBreeds()
	if err != nil {
		return nil, err
	}
	if len(breeds) == 0 {
		return nil, errors.New("no breeds loaded from zombies.json")
	}
	return NewBreedRegistry(breeds), nil
}

// MustLoadBreedRegistry loads a registry, panicking on error.
func MustLoadBreedRegistry() *BreedRegistry {
	registry, err := LoadBreedRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random breed using weighted probability.
// Breeds with higher spawnWeight are more likely to be selected.
func (r *BreedRegistry) SpawnRandom(rng *rand.Rand) *BreedDef {
	if r.totalWeight <= 0 || len(r.breeds) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.breeds {
		cumulative += r.breeds[i].SpawnWeight
		if roll < cumulative {
			return &r.breeds[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.breeds[0]
}

// GetByID returns the breed definition with the given ID, or nil if not found.
func (r *BreedRegistry) GetByID(id string) *BreedDef {
	for i := range r.breeds {
		if r.breeds[i].ID == id {
			return &r.breeds[i]
		}
	}
	return nil
}

// All returns all breed definitions.
func (r *BreedRegistry) All() []BreedDef {
	return r.breeds
}

// Count returns the number of breeds in the registry.
func (r *BreedRegistry) Count() int {
	return len(r.breeds)
}
