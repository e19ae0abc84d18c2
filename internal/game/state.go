// Package game provides the turn engine: shared entity state, the rotating
// turn order, and the phase machine that drives a session.
package game

import (
	"fmt"

	"github.com/jlucieda/zombicide/internal/action"
	"github.com/jlucieda/zombicide/internal/combat"
	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/gamedata"
	"github.com/jlucieda/zombicide/internal/world"
)

// State owns every entity in play and resolves their actions against the
// board. It is the only mutator of entity positions, action points, and
// wounds during action execution.
type State struct {
	Board     *world.Board
	Survivors []*entity.Survivor
	Zombies   []*entity.Zombie

	resolver  *combat.Resolver
	zombieSeq int // Next zombie id suffix
}

// NewState creates an empty state on the given board.
func NewState(board *world.Board) *State {
	return &State{Board: board, resolver: combat.NewResolver()}
}

// AddSurvivor adds a survivor to the roster.
func (s *State) AddSurvivor(sv *entity.Survivor) {
	s.Survivors = append(s.Survivors, sv)
}

// SpawnZombie creates a zombie of the given breed at the position and adds
// it to play. Ids and display names are numbered in spawn order.
func (s *State) SpawnZombie(def *gamedata.BreedDef, pos world.Position) *entity.Zombie {
	id := fmt.Sprintf("zombie_%d", s.zombieSeq)
	name := fmt.Sprintf("%s %d", def.Name, s.zombieSeq)
	s.zombieSeq++

	z := entity.NewZombieFromDef(def, id, name, pos)
	s.Zombies = append(s.Zombies, z)
	return z
}

// EntityByID finds any entity by id, or nil.
func (s *State) EntityByID(id string) entity.Entity {
	for _, sv := range s.Survivors {
		if sv.ID == id {
			return sv
		}
	}
	for _, z := range s.Zombies {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// EntitiesAt returns every living entity in the zone, survivors first.
func (s *State) EntitiesAt(pos world.Position) []entity.Entity {
	var out []entity.Entity
	for _, sv := range s.Survivors {
		if sv.Alive && sv.Pos == pos {
			out = append(out, sv)
		}
	}
	for _, z := range s.Zombies {
		if z.Alive && z.Pos == pos {
			out = append(out, z)
		}
	}
	return out
}

// SurvivorsAt returns the living survivors in the zone, in roster order.
func (s *State) SurvivorsAt(pos world.Position) []*entity.Survivor {
	var out []*entity.Survivor
	for _, sv := range s.Survivors {
		if sv.Alive && sv.Pos == pos {
			out = append(out, sv)
		}
	}
	return out
}

// ZombiesAt returns the living zombies in the zone, in spawn order.
func (s *State) ZombiesAt(pos world.Position) []*entity.Zombie {
	var out []*entity.Zombie
	for _, z := range s.Zombies {
		if z.Alive && z.Pos == pos {
			out = append(out, z)
		}
	}
	return out
}

// StartSurvivorTurns refills every living survivor's action budget.
func (s *State) StartSurvivorTurns() {
	for _, sv := range s.Survivors {
		if sv.Alive {
			sv.StartTurn()
		}
	}
}

// StartZombieTurns refills every living zombie's action budget.
func (s *State) StartZombieTurns() {
	for _, z := range s.Zombies {
		if z.Alive {
			z.StartTurn()
		}
	}
}

// Resolver returns the combat rules shared by both turn paths.
func (s *State) Resolver() *combat.Resolver { return s.resolver }

// =============================================================================
// Action execution
// =============================================================================

// ExecuteAction resolves one action against the current state. Validation
// failures return a failed result and leave everything untouched; only a
// legal, executed action consumes an action point.
func (s *State) ExecuteAction(a action.Action) action.Result {
	actor := s.EntityByID(a.ActorID)
	if actor == nil || !actor.CanAct() {
		return action.Failure(fmt.Sprintf("Actor %s cannot act", a.ActorID))
	}

	switch a.Type {
	case action.Move:
		return s.executeMove(actor, a)
	case action.Attack:
		return s.executeAttack(actor, a)
	}
	return action.Failure("Unknown action type")
}

// executeMove steps the actor one zone in the action's direction. The
// direction is re-validated against the actor's current position, so a
// stale target position in the action is ignored.
func (s *State) executeMove(actor entity.Entity, a action.Action) action.Result {
	from := actor.GetPosition()
	if !action.ValidateMove(from, a.Dir, s.GridSize()) {
		return action.Failure(fmt.Sprintf("Invalid move for %s", actor.GetName()))
	}

	to := from.Add(a.Dir)
	actor.SetPosition(to)
	actor.ConsumeAction()

	return action.Success(
		fmt.Sprintf("%s moved from %s to %s", actor.GetName(), from, to),
		action.PositionChanged(actor.GetID(), to),
	)
}

// executeAttack resolves combat in the actor's zone. A survivor target takes
// one wound; a zombie target dies outright and earns the attacker a point of
// experience. The actual rules live in the combat resolver, which the zombie
// phase also uses for its direct attacks.
func (s *State) executeAttack(actor entity.Entity, a action.Action) action.Result {
	target := s.EntityByID(a.TargetID)
	if target == nil || !target.IsAlive() {
		return action.Failure(fmt.Sprintf("Target %s not found", a.TargetID))
	}

	if !action.ValidateAttack(actor.GetPosition(), target.GetPosition()) {
		return action.Failure(fmt.Sprintf("%s cannot attack %s - not in same zone",
			actor.GetName(), target.GetName()))
	}

	switch victim := target.(type) {
	case *entity.Survivor:
		actor.ConsumeAction()
		out := s.resolver.AttackSurvivor(actor, victim)
		return action.Success(out.Message, out.Effects...)

	case *entity.Zombie:
		actor.ConsumeAction()
		out := s.resolver.AttackZombie(actor, victim)
		return action.Success(out.Message, out.Effects...)
	}

	return action.Failure(fmt.Sprintf("Target %s not found", a.TargetID))
}

// =============================================================================
// Queries
// =============================================================================

// LivingSurvivors returns the living survivors in roster order.
func (s *State) LivingSurvivors() []*entity.Survivor {
	var out []*entity.Survivor
	for _, sv := range s.Survivors {
		if sv.Alive {
			out = append(out, sv)
		}
	}
	return out
}

// LivingZombies returns the living zombies in spawn order.
func (s *State) LivingZombies() []*entity.Zombie {
	var out []*entity.Zombie
	for _, z := range s.Zombies {
		if z.Alive {
			out = append(out, z)
		}
	}
	return out
}

// GridSize returns the board dimension.
func (s *State) GridSize() int { return s.Board.Size }

// LivingSurvivorCount returns how many survivors are still alive.
func (s *State) LivingSurvivorCount() int {
	n := 0
	for _, sv := range s.Survivors {
		if sv.Alive {
			n++
		}
	}
	return n
}

// LivingZombieCount returns how many zombies are still alive.
func (s *State) LivingZombieCount() int {
	n := 0
	for _, z := range s.Zombies {
		if z.Alive {
			n++
		}
	}
	return n
}

// Ensure State satisfies the view entities decide against
var _ entity.StateView = (*State)(nil)
