package entity

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/jlucieda/zombicide/internal/action"
	"github.com/jlucieda/zombicide/internal/gamedata"
	"github.com/jlucieda/zombicide/internal/world"
)

// Gameplay constants for survivors.
const (
	SurvivorMaxActions = 3 // Actions per turn
	SurvivorMaxWounds  = 2 // Wounds that kill a survivor
)

// Equipment holds what a survivor carries: one item per hand and a small
// backpack.
type Equipment struct {
	HandLeft  string
	HandRight string
	Inventory [4]string
}

// Survivor is a player-controlled entity with three actions per turn.
type Survivor struct {
	ID    string
	Name  string
	Pos   world.Position
	Alive bool

	Actions    int // Actions left this turn
	MaxActions int

	Wounds    int
	XP        int
	Level     Level
	Equipment Equipment
	Color     tcell.Color // Display color
}

// NewSurvivor creates a survivor with a full action budget at the given
// position. Stats start at their blue-level defaults; use NewSurvivorFromDef
// to load from data.
func NewSurvivor(id, name string, pos world.Position) *Survivor {
	return &Survivor{
		ID:         id,
		Name:       name,
		Pos:        pos,
		Alive:      true,
		Actions:    SurvivorMaxActions,
		MaxActions: SurvivorMaxActions,
		Level:      LevelBlue,
		Color:      tcell.ColorWhite,
	}
}

// NewSurvivorFromDef creates a survivor from a data-driven definition.
func NewSurvivorFromDef(def *gamedata.SurvivorDef, id string, pos world.Position) *Survivor {
	s := NewSurvivor(id, def.Name, pos)
	s.Wounds = def.Wounds
	s.XP = def.Exp
	s.Level = ParseLevel(def.Level)
	s.Equipment = Equipment{
		HandLeft:  def.Equipment.HandLeft,
		HandRight: def.Equipment.HandRight,
		Inventory: [4]string{
			def.Equipment.Inv1,
			def.Equipment.Inv2,
			def.Equipment.Inv3,
			def.Equipment.Inv4,
		},
	}
	s.Color = def.TCellColor()
	return s
}

// TakeWound adds one wound and returns true if it was fatal.
func (s *Survivor) TakeWound() bool {
	s.Wounds++
	if s.Wounds >= SurvivorMaxWounds {
		s.Alive = false
		return true
	}
	return false
}

// GainXP adds experience and recomputes the danger level.
func (s *Survivor) GainXP(amount int) {
	s.XP += amount
	s.Level = LevelForXP(s.XP)
}

// =============================================================================
// Entity interface implementation
// =============================================================================

// GetID returns the survivor's unique identifier.
func (s *Survivor) GetID() string { return s.ID }

// GetName returns the survivor's name.
func (s *Survivor) GetName() string { return s.Name }

// GetPosition returns the survivor's current zone.
func (s *Survivor) GetPosition() world.Position { return s.Pos }

// SetPosition moves the survivor to the given zone.
func (s *Survivor) SetPosition(pos world.Position) { s.Pos = pos }

// IsAlive returns true while the survivor has fewer than two wounds.
func (s *Survivor) IsAlive() bool { return s.Alive }

// ActionsRemaining returns the actions left this turn.
func (s *Survivor) ActionsRemaining() int { return s.Actions }

// GetMaxActions returns the per-turn action budget.
func (s *Survivor) GetMaxActions() int { return s.MaxActions }

// CanAct returns true if the survivor is alive with actions left.
func (s *Survivor) CanAct() bool { return s.Alive && s.Actions > 0 }

// StartTurn refills the survivor's action budget.
func (s *Survivor) StartTurn() { s.Actions = s.MaxActions }

// ConsumeAction spends one action point.
func (s *Survivor) ConsumeAction() {
	if s.Actions > 0 {
		s.Actions--
	}
}

// DecideAction picks an automatic action for the survivor: attack a zombie
// sharing its zone if there is one, otherwise wander in a random legal
// direction.
func (s *Survivor) DecideAction(view StateView, rng *rand.Rand) (action.Action, bool) {
	if !s.CanAct() {
		return action.Action{}, false
	}

	for _, z := range view.LivingZombies() {
		if z.Pos == s.Pos {
			return action.NewAttack(s.ID, z.ID, z.Pos), true
		}
	}

	var moves []world.Direction
	for _, dir := range world.Directions {
		if action.ValidateMove(s.Pos, dir, view.GridSize()) {
			moves = append(moves, dir)
		}
	}
	if len(moves) == 0 {
		return action.Action{}, false
	}
	return action.NewMove(s.ID, s.Pos, moves[rng.Intn(len(moves))]), true
}

// Ensure Survivor implements Entity
var _ Entity = (*Survivor)(nil)
