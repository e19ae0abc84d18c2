package game

import (
	"fmt"
	"math/rand"

	"github.com/jlucieda/zombicide/internal/action"
	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/gamedata"
	"github.com/jlucieda/zombicide/internal/world"
)

// OptionKind identifies an entry in the survivor action menu.
type OptionKind int

const (
	// OptionMove is the cursor-key movement hint. It cannot be executed
	// by menu index alone; moving needs a direction.
	OptionMove OptionKind = iota
	// OptionAttack attacks the first zombie sharing the survivor's zone.
	OptionAttack
	// OptionSkip forfeits the survivor's remaining actions.
	OptionSkip
)

// ActionOption is one entry of the action menu shown while a survivor
// is waiting to act.
type ActionOption struct {
	Kind  OptionKind
	Label string
}

// survivorPhase holds the bookkeeping local to the survivor phase. It is
// reset at the end of every round so the next phase entry starts clean.
type survivorPhase struct {
	initialized bool
}

// TurnManager drives a session round by round: survivors act under
// player control, zombies resolve automatically, new zombies spawn, and
// the round closes. All progress happens through Tick and the command
// methods; nothing inside ever blocks or advances a phase on its own.
type TurnManager struct {
	state  *State
	breeds *gamedata.BreedRegistry
	rng    *rand.Rand

	phase         Phase
	round         int
	paused        bool
	phaseComplete bool

	turnOrder *TurnOrder

	survivorState survivorPhase
	zombieState   zombiePhase
	targets       targetSelection

	current          *entity.Survivor
	options          []ActionOption
	waitingForAction bool

	waitingForAdvance bool
	advanceMessage    string
	combatMessage     string
	lastMessage       string

	spawnPerRound int

	events []Event
}

// NewTurnManager creates a manager for the given state, starting at the
// survivor phase of round 1.
func NewTurnManager(state *State, breeds *gamedata.BreedRegistry, rng *rand.Rand) *TurnManager {
	return &TurnManager{
		state:         state,
		breeds:        breeds,
		rng:           rng,
		phase:         PhaseSurvivors,
		round:         1,
		spawnPerRound: 1,
	}
}

// Tick runs one bounded step of the current phase: at most one zombie
// resolves per call, and the survivor phase stops as soon as it needs
// input. The return reports whether an immediate further tick can make
// progress; it is false whenever the manager is paused, waiting for a
// command, or done with the phase.
func (m *TurnManager) Tick() bool {
	if m.paused || m.phaseComplete {
		return false
	}

	switch m.phase {
	case PhaseSurvivors:
		m.processSurvivorPhase()
	case PhaseZombies:
		m.processZombiePhase()
	case PhaseSpawn:
		m.processSpawnPhase()
	case PhaseEndRound:
		m.processEndPhase()
	}

	return m.phase == PhaseZombies && !m.phaseComplete && !m.targets.active
}

// AdvancePhase moves to the next phase. It is refused while the game is
// paused, while any survivor or target decision is pending, and while
// the current phase still has work to do. Advancing out of the
// end-of-round phase starts the next round.
func (m *TurnManager) AdvancePhase() bool {
	if m.paused || m.waitingForAction || m.targets.active {
		return false
	}
	if !m.phaseComplete && !m.waitingForAdvance {
		return false
	}

	m.phaseComplete = false
	m.waitingForAdvance = false
	m.advanceMessage = ""

	if m.phase == PhaseEndRound {
		m.endRound()
	} else {
		m.phase = m.phase.Next()
	}
	m.pushEvent(Event{Kind: EventPhaseChanged, Phase: m.phase, Round: m.round})
	return true
}

// endRound rotates the first player, restores every survivor's actions,
// and resets the per-phase bookkeeping for the new round.
func (m *TurnManager) endRound() {
	if m.turnOrder != nil {
		m.turnOrder.AdvanceRound()
		m.round = m.turnOrder.Round()
	} else {
		m.round++
	}

	m.phase = PhaseSurvivors
	m.state.StartSurvivorTurns()

	m.survivorState = survivorPhase{}
	m.zombieState = zombiePhase{}
	m.targets = targetSelection{}
	m.current = nil
	m.options = nil
	m.waitingForAction = false
	m.combatMessage = ""

	m.pushEvent(Event{Kind: EventRoundStarted, Phase: m.phase, Round: m.round})
}

// TogglePause flips the pause flag and returns the new state. While
// paused, ticks and phase advances are ignored.
func (m *TurnManager) TogglePause() bool {
	m.paused = !m.paused
	return m.paused
}

// =============================================================================
// Survivor phase
// =============================================================================

// processSurvivorPhase runs the player-controlled phase. On the first
// tick of a round it restores survivor actions and builds the turn
// order; afterwards it walks the order looking for a survivor who can
// still act, stopping to wait for a command whenever it finds one.
func (m *TurnManager) processSurvivorPhase() {
	if len(m.state.Survivors) == 0 {
		m.markPhaseComplete()
		return
	}

	if !m.survivorState.initialized {
		m.state.StartSurvivorTurns()
		m.survivorState.initialized = true
		if m.turnOrder == nil {
			m.turnOrder = NewTurnOrder(m.state.Survivors)
		}
	}

	if !m.waitingForAction && !m.waitingForAdvance {
		m.findNextSurvivor()
	}
}

// findNextSurvivor walks the turn order from the cursor, skipping
// survivors who cannot act. Finding one enters the waiting-for-action
// state; running out ends the phase and waits for a manual advance.
func (m *TurnManager) findNextSurvivor() {
	s := m.turnOrder.Current()
	for s != nil && !s.CanAct() {
		s = m.turnOrder.Next()
	}

	if s != nil {
		m.current = s
		m.options = m.availableOptions(s)
		m.waitingForAction = true
		return
	}

	m.current = nil
	m.options = nil
	m.waitingForAction = false
	m.waitingForAdvance = true
	m.advanceMessage = "Press 'space' for zombie's turn"
	m.logMessage("All survivors have completed their actions")
	m.markPhaseComplete()
}

// availableOptions builds the action menu for a survivor. Attacking is
// offered only when a living zombie shares the survivor's zone.
func (m *TurnManager) availableOptions(s *entity.Survivor) []ActionOption {
	options := []ActionOption{{Kind: OptionMove, Label: "Use cursor keys to move"}}
	if len(m.state.ZombiesAt(s.Pos)) > 0 {
		options = append(options, ActionOption{Kind: OptionAttack, Label: "Press 'a' to attack"})
	}
	return append(options, ActionOption{Kind: OptionSkip, Label: "Press 'space' to skip turn"})
}

// SelectAction executes the menu entry at the given index for the
// waiting survivor. The move entry cannot be executed by index; it
// needs a direction, so callers use ExecuteMove for it.
func (m *TurnManager) SelectAction(i int) bool {
	if m.phase != PhaseSurvivors || !m.waitingForAction {
		return false
	}
	if i < 0 || i >= len(m.options) {
		return false
	}

	switch m.options[i].Kind {
	case OptionAttack:
		return m.ExecuteAttack()
	case OptionSkip:
		return m.SkipTurn()
	}
	return false
}

// ExecuteMove moves the waiting survivor one zone in the given
// direction. An off-board move fails without costing an action.
func (m *TurnManager) ExecuteMove(dir world.Direction) bool {
	if m.phase != PhaseSurvivors || !m.waitingForAction || m.current == nil {
		return false
	}

	if !action.ValidateMove(m.current.Pos, dir, m.state.GridSize()) {
		m.logMessage(fmt.Sprintf("Invalid move %s", dir))
		return false
	}

	result := m.state.ExecuteAction(action.NewMove(m.current.ID, m.current.Pos, dir))
	m.logMessage(result.Message)
	if result.OK {
		m.afterSurvivorAction()
	}
	return result.OK
}

// ExecuteAttack has the waiting survivor attack the first living zombie
// sharing its zone. With no zombie there it fails without any effect.
func (m *TurnManager) ExecuteAttack() bool {
	if m.phase != PhaseSurvivors || !m.waitingForAction || m.current == nil {
		return false
	}

	targets := m.state.ZombiesAt(m.current.Pos)
	if len(targets) == 0 {
		m.logMessage("No zombie found to attack")
		return false
	}

	z := targets[0]
	result := m.state.ExecuteAction(action.NewAttack(m.current.ID, z.ID, z.Pos))
	m.logMessage(result.Message)
	if result.OK {
		m.afterSurvivorAction()
	}
	return result.OK
}

// SkipTurn forfeits the waiting survivor's remaining actions and moves
// on to the next one. The forfeited points are simply zeroed; nothing
// goes through action execution.
func (m *TurnManager) SkipTurn() bool {
	if m.phase != PhaseSurvivors || !m.waitingForAction || m.current == nil {
		return false
	}

	m.current.Actions = 0
	m.logMessage(fmt.Sprintf("%s skipped remaining actions", m.current.Name))
	m.waitingForAction = false
	m.turnOrder.Next()
	m.findNextSurvivor()
	return true
}

// afterSurvivorAction decides what happens after a successful action:
// the same survivor keeps acting with a refreshed menu, or, once
// exhausted, the cursor advances to the next survivor in the order.
func (m *TurnManager) afterSurvivorAction() {
	if m.current.CanAct() {
		m.options = m.availableOptions(m.current)
		return
	}

	m.waitingForAction = false
	m.turnOrder.Next()
	m.findNextSurvivor()
}

// =============================================================================
// Spawn and end phases
// =============================================================================

// processSpawnPhase brings the round's new zombies onto the board at
// the spawn zone. The phase completes in a single tick.
func (m *TurnManager) processSpawnPhase() {
	for i := 0; i < m.spawnPerRound; i++ {
		def := m.breeds.SpawnRandom(m.rng)
		if def == nil {
			break
		}
		z := m.state.SpawnZombie(def, m.state.Board.Spawn)
		m.logMessage(fmt.Sprintf("Spawned %s at %s", z.Name, z.Pos))
	}
	m.markPhaseComplete()
}

// processEndPhase closes out the round. Nothing happens here yet; the
// phase is the hook point for end-of-round effects.
func (m *TurnManager) processEndPhase() {
	m.markPhaseComplete()
}

func (m *TurnManager) markPhaseComplete() {
	m.phaseComplete = true
}

// =============================================================================
// Queries
// =============================================================================

// Round returns the current round number.
func (m *TurnManager) Round() int { return m.round }

// CurrentPhase returns the phase the round is in.
func (m *TurnManager) CurrentPhase() Phase { return m.phase }

// PhaseComplete reports whether the current phase has finished its work.
// Moving on still requires an explicit AdvancePhase.
func (m *TurnManager) PhaseComplete() bool { return m.phaseComplete }

// IsPaused reports whether the game is paused.
func (m *TurnManager) IsPaused() bool { return m.paused }

// CurrentSurvivor returns the survivor whose turn it is, or nil outside
// the waiting-for-action state.
func (m *TurnManager) CurrentSurvivor() *entity.Survivor { return m.current }

// AvailableActions returns the menu for the waiting survivor, or nil.
func (m *TurnManager) AvailableActions() []ActionOption { return m.options }

// IsWaitingForAction reports whether a survivor is waiting for a command.
func (m *TurnManager) IsWaitingForAction() bool { return m.waitingForAction }

// IsWaitingForPhaseAdvance reports whether the phase is done and waiting
// for the explicit advance command.
func (m *TurnManager) IsWaitingForPhaseAdvance() bool { return m.waitingForAdvance }

// AdvanceMessage returns the prompt shown while waiting for a phase
// advance, or "".
func (m *TurnManager) AdvanceMessage() string { return m.advanceMessage }

// LastMessage returns the most recent gameplay log line.
func (m *TurnManager) LastMessage() string { return m.lastMessage }

// TurnInfo is a display snapshot of the turn machine.
type TurnInfo struct {
	Round         int
	Phase         Phase
	PhaseName     string
	PhaseComplete bool
	Paused        bool
	Order         *OrderInfo // nil until the first survivor phase has run
}

// GetTurnInfo returns a snapshot of the turn machine for the display
// layer.
func (m *TurnManager) GetTurnInfo() TurnInfo {
	info := TurnInfo{
		Round:         m.round,
		Phase:         m.phase,
		PhaseName:     m.phase.DisplayName(),
		PhaseComplete: m.phaseComplete,
		Paused:        m.paused,
	}
	if m.turnOrder != nil {
		oi := m.turnOrder.Info()
		info.Order = &oi
	}
	return info
}

// =============================================================================
// Events
// =============================================================================

// TakeEvents drains the events accumulated since the last call.
func (m *TurnManager) TakeEvents() []Event {
	events := m.events
	m.events = nil
	return events
}

func (m *TurnManager) pushEvent(e Event) {
	m.events = append(m.events, e)
}

// logMessage records a gameplay log line as the last message and as an
// event for the caller to collect.
func (m *TurnManager) logMessage(msg string) {
	m.lastMessage = msg
	m.pushEvent(Event{Kind: EventMessage, Phase: m.phase, Round: m.round, Message: msg})
}
