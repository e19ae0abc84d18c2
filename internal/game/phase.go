package game

// Phase is one of the four stages a round passes through.
type Phase int

const (
	// PhaseSurvivors is the player-controlled phase where survivors spend
	// their actions.
	PhaseSurvivors Phase = iota
	// PhaseZombies runs the zombies' automatic moves and attacks.
	PhaseZombies
	// PhaseSpawn brings new zombies onto the board.
	PhaseSpawn
	// PhaseEndRound closes the round and rotates the first player.
	PhaseEndRound
)

// String returns the phase identifier.
func (p Phase) String() string {
	switch p {
	case PhaseSurvivors:
		return "survivor_turn"
	case PhaseZombies:
		return "zombie_turn"
	case PhaseSpawn:
		return "zombie_spawn"
	case PhaseEndRound:
		return "turn_end"
	default:
		return "unknown"
	}
}

// DisplayName returns the phase name shown to the player.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseSurvivors:
		return "Survivor Turn"
	case PhaseZombies:
		return "Zombie Turn"
	case PhaseSpawn:
		return "Zombie Spawn"
	case PhaseEndRound:
		return "Turn End"
	default:
		return "Unknown"
	}
}

// Next returns the phase that follows this one; the end-of-round phase
// wraps back to the survivor phase.
func (p Phase) Next() Phase {
	switch p {
	case PhaseSurvivors:
		return PhaseZombies
	case PhaseZombies:
		return PhaseSpawn
	case PhaseSpawn:
		return PhaseEndRound
	default:
		return PhaseSurvivors
	}
}
