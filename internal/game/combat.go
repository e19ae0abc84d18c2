package game

import (
	"fmt"

	"github.com/jlucieda/zombicide/internal/entity"
)

// zombiePhase tracks progress through the automatic zombie phase. The
// cursor indexes the state's full zombie list; dead and exhausted
// zombies are skipped in place.
type zombiePhase struct {
	initialized bool
	cursor      int
}

// targetSelection is the sub-state entered when a zombie attacks a zone
// holding more than one survivor. The zombie phase suspends until the
// player picks the victim.
type targetSelection struct {
	active     bool
	attacker   *entity.Zombie
	candidates []*entity.Survivor
}

// =============================================================================
// Zombie phase
// =============================================================================

// processZombiePhase runs the automatic phase one zombie at a time. On
// the first tick of a round it restores zombie actions; each following
// tick resolves a single zombie, so the caller sees the horde act step
// by step.
func (m *TurnManager) processZombiePhase() {
	if len(m.state.Zombies) == 0 {
		m.markPhaseComplete()
		return
	}

	if !m.zombieState.initialized {
		m.state.StartZombieTurns()
		m.zombieState.initialized = true
		m.zombieState.cursor = 0
	}

	if m.targets.active {
		return
	}

	for m.zombieState.cursor < len(m.state.Zombies) {
		z := m.state.Zombies[m.zombieState.cursor]
		if !z.Alive || !z.CanAct() {
			m.zombieState.cursor++
			continue
		}
		m.stepZombie(z)
		return
	}

	m.logMessage("All zombies have completed their actions")
	m.markPhaseComplete()
}

// stepZombie resolves one zombie's action. A zombie sharing its zone
// with exactly one survivor bites it; with several it suspends the
// phase for a target choice; alone on its zone, it pursues the nearest
// survivor.
func (m *TurnManager) stepZombie(z *entity.Zombie) {
	prey := m.state.SurvivorsAt(z.Pos)

	switch {
	case len(prey) == 1:
		m.zombieBite(z, prey[0])
		m.zombieState.cursor++

	case len(prey) > 1:
		m.targets = targetSelection{active: true, attacker: z, candidates: prey}
		m.combatMessage = fmt.Sprintf("%s attacks! Choose target survivor:", z.Name)
		m.logMessage(m.combatMessage)

	default:
		if act, ok := z.DecideAction(m.state, m.rng); ok {
			result := m.state.ExecuteAction(act)
			m.logMessage(result.Message)
		} else {
			// Nowhere useful to go; the action is spent anyway.
			z.ConsumeAction()
		}
		m.zombieState.cursor++
	}
}

// zombieBite wounds a survivor and spends the zombie's action. Bites
// resolve directly through the combat rules rather than the action
// pipeline; there is no decision left to validate.
func (m *TurnManager) zombieBite(z *entity.Zombie, target *entity.Survivor) {
	out := m.state.Resolver().AttackSurvivor(z, target)
	z.ConsumeAction()
	m.logMessage(out.Message)
}

// SelectSurvivorTarget resolves a suspended zombie attack against the
// chosen candidate and resumes the zombie phase.
func (m *TurnManager) SelectSurvivorTarget(i int) bool {
	if !m.targets.active || i < 0 || i >= len(m.targets.candidates) {
		return false
	}

	m.zombieBite(m.targets.attacker, m.targets.candidates[i])
	m.zombieState.cursor++
	m.targets = targetSelection{}
	m.combatMessage = ""
	return true
}

// IsWaitingForTarget reports whether a zombie attack is waiting for the
// player to choose its victim.
func (m *TurnManager) IsWaitingForTarget() bool { return m.targets.active }

// TargetCandidates returns the survivors a suspended zombie attack can
// hit, in zone order.
func (m *TurnManager) TargetCandidates() []*entity.Survivor { return m.targets.candidates }

// CombatMessage returns the prompt for a pending target choice, or "".
func (m *TurnManager) CombatMessage() string { return m.combatMessage }
