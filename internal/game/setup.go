package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/gamedata"
	"github.com/jlucieda/zombicide/internal/world"
)

// InitialZombies is how many zombies stand on the spawn zone before the
// first round begins.
const InitialZombies = 2

// BuildBoard converts a map definition into a playable board: zone
// kinds come from tile features, and the spawn and start zones from
// their marker features. A map without markers keeps the board's
// corner defaults.
func BuildBoard(def *gamedata.MapDef) *world.Board {
	size := def.Size()
	if size == 0 {
		size = world.DefaultSize
	}
	board := world.NewBoard(size)

	for r, row := range def.Zones() {
		for c := range row {
			if row[c].HasFeature("building") {
				board.SetZone(world.Position{Row: r, Col: c}, world.ZoneBuilding)
			}
		}
	}

	if r, c, ok := def.SpawnZone(); ok {
		board.Spawn = world.Position{Row: r, Col: c}
	}
	if r, c, ok := def.StartZone(); ok {
		board.Start = world.Position{Row: r, Col: c}
	}
	return board
}

// Setup builds the opening state of a session: the board from the map
// definition, the full survivor roster on the start zone, and the first
// zombies on the spawn zone.
func Setup(mapDef *gamedata.MapDef, roster []gamedata.SurvivorDef, breeds *gamedata.BreedRegistry, rng *rand.Rand) (*State, error) {
	if len(roster) == 0 {
		return nil, errors.New("setup: no survivors in roster")
	}
	if breeds == nil || breeds.Count() == 0 {
		return nil, errors.New("setup: no zombie breeds loaded")
	}

	board := BuildBoard(mapDef)
	state := NewState(board)

	for i := range roster {
		id := fmt.Sprintf("survivor_%d", i)
		state.AddSurvivor(entity.NewSurvivorFromDef(&roster[i], id, board.Start))
	}

	for i := 0; i < InitialZombies; i++ {
		def := breeds.SpawnRandom(rng)
		if def == nil {
			return nil, errors.New("setup: breed registry has no spawnable breeds")
		}
		state.SpawnZombie(def, board.Spawn)
	}

	return state, nil
}
