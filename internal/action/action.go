// Package action provides the action intents entities produce and the
// validation rules the game state applies before executing them.
package action

import (
	"fmt"

	"github.com/jlucieda/zombicide/internal/world"
)

// Type identifies the kind of action an entity wants to perform.
type Type int

const (
	// Move relocates the actor to an orthogonally neighbouring zone.
	Move Type = iota
	// Attack wounds or kills a target sharing the actor's zone.
	Attack
)

// String returns the action type name.
func (t Type) String() string {
	switch t {
	case Move:
		return "move"
	case Attack:
		return "attack"
	default:
		return "unknown"
	}
}

// Action is a declarative intent produced by a decision step and applied
// by the game state. An action is built once and executed at most once;
// moves are re-validated at execution time against the actor's current
// position.
type Action struct {
	Type     Type
	ActorID  string          // Entity performing the action
	Target   world.Position  // Destination zone (move) or target's zone (attack)
	TargetID string          // Entity being attacked (attack only)
	Dir      world.Direction // Direction of travel (move only)
}

// NewMove creates a move action for an actor standing at from.
func NewMove(actorID string, from world.Position, dir world.Direction) Action {
	return Action{
		Type:    Move,
		ActorID: actorID,
		Target:  from.Add(dir),
		Dir:     dir,
	}
}

// NewAttack creates an attack action against a target standing at pos.
func NewAttack(actorID, targetID string, pos world.Position) Action {
	return Action{
		Type:     Attack,
		ActorID:  actorID,
		TargetID: targetID,
		Target:   pos,
	}
}

// String returns a short description of the action.
func (a Action) String() string {
	switch a.Type {
	case Move:
		return fmt.Sprintf("%s moves %s to %s", a.ActorID, a.Dir, a.Target)
	case Attack:
		return fmt.Sprintf("%s attacks %s at %s", a.ActorID, a.TargetID, a.Target)
	default:
		return fmt.Sprintf("%s performs %s", a.ActorID, a.Type)
	}
}

// ValidateMove returns true if one step from pos in the given direction
// stays on a size x size grid. Validation never mutates anything.
func ValidateMove(pos world.Position, dir world.Direction, size int) bool {
	return pos.Add(dir).InBounds(size)
}

// ValidateAttack returns true if the attacker and target share a zone.
// Adjacent zones are out of range.
func ValidateAttack(attacker, target world.Position) bool {
	return attacker == target
}
