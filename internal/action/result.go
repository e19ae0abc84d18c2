package action

import (
	"fmt"

	"github.com/jlucieda/zombicide/internal/world"
)

// Result describes the outcome of executing an action. A failed result
// means the game state was left untouched and no action point was spent.
type Result struct {
	OK      bool
	Message string   // Human-readable description for the message log
	Effects []string // Ordered effect tags for observers
}

// Success creates a successful result with the given message and effects.
func Success(message string, effects ...string) Result {
	return Result{OK: true, Message: message, Effects: effects}
}

// Failure creates a failed result with the given message.
func Failure(message string) Result {
	return Result{OK: false, Message: message}
}

// String returns the result as "Success: msg" or "Failed: msg".
func (r Result) String() string {
	if r.OK {
		return "Success: " + r.Message
	}
	return "Failed: " + r.Message
}

// Effect tags follow a "kind:subject[:detail]" convention so observers
// can parse them without knowing the concrete entity types.

// PositionChanged formats the effect tag for an entity arriving at pos.
func PositionChanged(id string, pos world.Position) string {
	return fmt.Sprintf("position_changed:%s:%d,%d", id, pos.Row, pos.Col)
}

// DamageTaken formats the effect tag for an entity taking wounds.
func DamageTaken(id string, wounds int) string {
	return fmt.Sprintf("damage_taken:%s:%d", id, wounds)
}

// EntityDied formats the effect tag for an entity dying.
func EntityDied(id string) string {
	return fmt.Sprintf("entity_died:%s", id)
}

// ExperienceGained formats the effect tag for a survivor gaining experience.
func ExperienceGained(id string, amount int) string {
	return fmt.Sprintf("experience_gained:%s:%d", id, amount)
}
