// Package entity provides the survivors and zombies that act during a round.
package entity

import (
	"math/rand"

	"github.com/jlucieda/zombicide/internal/action"
	"github.com/jlucieda/zombicide/internal/world"
)

// Entity is implemented by everything that takes turns: survivors and zombies.
type Entity interface {
	GetID() string
	GetName() string
	GetPosition() world.Position
	SetPosition(pos world.Position)
	IsAlive() bool

	// Action-point accounting. StartTurn refills the budget, ConsumeAction
	// spends one point, CanAct reports whether the entity is alive with
	// points left to spend.
	ActionsRemaining() int
	GetMaxActions() int
	CanAct() bool
	StartTurn()
	ConsumeAction()

	// DecideAction picks the entity's next action from what it can see.
	// The second return is false when no action is possible.
	DecideAction(view StateView, rng *rand.Rand) (action.Action, bool)
}

// StateView is the read-only view entities use to decide their actions.
type StateView interface {
	LivingSurvivors() []*Survivor
	LivingZombies() []*Zombie
	GridSize() int
}
