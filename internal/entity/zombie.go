package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/jlucieda/zombicide/internal/action"
	"github.com/jlucieda/zombicide/internal/gamedata"
	"github.com/jlucieda/zombicide/internal/world"
)

// ZombieMaxActions is the per-turn action budget for zombies.
const ZombieMaxActions = 1

// Zombie is an AI-controlled entity with one action per turn.
type Zombie struct {
	ID    string
	Name  string // Display name (e.g., "Walker 3")
	Breed string // Breed identifier for data lookup
	Glyph rune   // Display symbol
	Pos   world.Position
	Alive bool

	Actions    int // Actions left this turn
	MaxActions int

	Color tcell.Color // Display color
}

// NewZombie creates a plain walker at the given position.
// Use NewZombieFromDef for data-driven breeds.
func NewZombie(id, name string, pos world.Position) *Zombie {
	return &Zombie{
		ID:         id,
		Name:       name,
		Breed:      "walker",
		Glyph:      'z',
		Pos:        pos,
		Alive:      true,
		Actions:    ZombieMaxActions,
		MaxActions: ZombieMaxActions,
		Color:      tcell.ColorGreen,
	}
}

// NewZombieFromDef creates a zombie from a breed definition.
func NewZombieFromDef(def *gamedata.BreedDef, id, name string, pos world.Position) *Zombie {
	z := NewZombie(id, name, pos)
	z.Breed = def.ID
	z.Glyph = def.GlyphRune()
	z.Color = def.TCellColor()
	return z
}

// Kill marks the zombie as dead.
func (z *Zombie) Kill() { z.Alive = false }

// =============================================================================
// Entity interface implementation
// =============================================================================

// GetID returns the zombie's unique identifier.
func (z *Zombie) GetID() string { return z.ID }

// GetName returns the zombie's display name.
func (z *Zombie) GetName() string { return z.Name }

// GetPosition returns the zombie's current zone.
func (z *Zombie) GetPosition() world.Position { return z.Pos }

// SetPosition moves the zombie to the given zone.
func (z *Zombie) SetPosition(pos world.Position) { z.Pos = pos }

// IsAlive returns true until the zombie is eliminated.
func (z *Zombie) IsAlive() bool { return z.Alive }

// ActionsRemaining returns the actions left this turn.
func (z *Zombie) ActionsRemaining() int { return z.Actions }

// GetMaxActions returns the per-turn action budget.
func (z *Zombie) GetMaxActions() int { return z.MaxActions }

// CanAct returns true if the zombie is alive with actions left.
func (z *Zombie) CanAct() bool { return z.Alive && z.Actions > 0 }

// StartTurn refills the zombie's action budget.
func (z *Zombie) StartTurn() { z.Actions = z.MaxActions }

// ConsumeAction spends one action point.
func (z *Zombie) ConsumeAction() {
	if z.Actions > 0 {
		z.Actions--
	}
}

// DecideAction picks the zombie's next action: bite a survivor sharing its
// zone, otherwise step toward the closest living survivor. Returns false
// when no survivor is reachable.
func (z *Zombie) DecideAction(view StateView, rng *rand.Rand) (action.Action, bool) {
	if !z.CanAct() {
		return action.Action{}, false
	}

	survivors := view.LivingSurvivors()
	for _, s := range survivors {
		if s.Pos == z.Pos {
			return action.NewAttack(z.ID, s.ID, s.Pos), true
		}
	}

	// Chase the closest survivor; distance ties keep the earlier one.
	var closest *Survivor
	best := 0
	for _, s := range survivors {
		d := z.Pos.DistanceTo(s.Pos)
		if closest == nil || d < best {
			closest = s
			best = d
		}
	}
	if closest == nil {
		return action.Action{}, false
	}

	// Take the first direction that strictly shrinks the distance. A single
	// step changes Manhattan distance by exactly one, so the first
	// improvement is as good as any.
	for _, dir := range world.Directions {
		if !action.ValidateMove(z.Pos, dir, view.GridSize()) {
			continue
		}
		if z.Pos.Add(dir).DistanceTo(closest.Pos) < best {
			return action.NewMove(z.ID, z.Pos, dir), true
		}
	}
	return action.Action{}, false
}

// Ensure Zombie implements Entity
var _ Entity = (*Zombie)(nil)
