package game

import (
	"testing"

	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/world"
)

// enterZombiePhase walks a fresh manager through the survivor phase by
// skipping every turn, then advances into the zombie phase.
func enterZombiePhase(t *testing.T, m *TurnManager) {
	t.Helper()
	m.Tick()
	for m.IsWaitingForAction() {
		if !m.SkipTurn() {
			t.Fatal("skip failed while clearing the survivor phase")
		}
	}
	if !m.AdvancePhase() {
		t.Fatal("could not advance into the zombie phase")
	}
}

func TestZombieBitesLoneSurvivor(t *testing.T) {
	s := newTestState()
	pos := world.Position{Row: 1, Col: 1}
	eva := addTestSurvivor(s, "Eva", pos)
	eva.Wounds = 1
	z := addTestZombie(s, pos)
	m := newTestManager(s)
	enterZombiePhase(t, m)

	if !m.Tick() {
		t.Error("a resolved zombie should leave the phase ready for the next tick")
	}

	if eva.Wounds != entity.SurvivorMaxWounds {
		t.Errorf("Eva wounds = %d, want %d", eva.Wounds, entity.SurvivorMaxWounds)
	}
	if eva.Alive {
		t.Error("second wound should kill Eva")
	}
	if z.Actions != 0 {
		t.Errorf("zombie actions = %d, want 0 after the bite", z.Actions)
	}
	want := "Walker 0 attacks Eva - Eva takes 1 wound (2/2) and dies!"
	if m.LastMessage() != want {
		t.Errorf("last message = %q, want %q", m.LastMessage(), want)
	}

	if m.Tick() {
		t.Error("completion tick should report no further progress")
	}
	if !m.PhaseComplete() {
		t.Error("zombie phase should complete once the horde is done")
	}
	if want := "All zombies have completed their actions"; m.LastMessage() != want {
		t.Errorf("last message = %q, want %q", m.LastMessage(), want)
	}
}

func TestZombieAttackWithSeveralSurvivorsWaitsForTarget(t *testing.T) {
	s := newTestState()
	pos := world.Position{Row: 1, Col: 1}
	eva := addTestSurvivor(s, "Eva", pos)
	josh := addTestSurvivor(s, "Josh", pos)
	wanda := addTestSurvivor(s, "Wanda", pos)
	z := addTestZombie(s, pos)
	m := newTestManager(s)
	enterZombiePhase(t, m)

	if m.Tick() {
		t.Error("Tick() should report no progress while a target choice is pending")
	}

	if !m.IsWaitingForTarget() {
		t.Fatal("the attack should suspend the phase for a target choice")
	}
	candidates := m.TargetCandidates()
	if len(candidates) != 3 || candidates[0] != eva || candidates[1] != josh || candidates[2] != wanda {
		t.Fatalf("candidates = %v, want Eva, Josh, Wanda in zone order", candidates)
	}
	if want := "Walker 0 attacks! Choose target survivor:"; m.CombatMessage() != want {
		t.Errorf("combat message = %q, want %q", m.CombatMessage(), want)
	}

	// Further ticks change nothing until the player chooses.
	m.Tick()
	if eva.Wounds != 0 || josh.Wounds != 0 || wanda.Wounds != 0 {
		t.Error("no wound may land before the target is chosen")
	}
	if z.Actions != entity.ZombieMaxActions {
		t.Error("the attack must not be spent before the target is chosen")
	}

	if m.SelectSurvivorTarget(-1) || m.SelectSurvivorTarget(3) {
		t.Error("out-of-range target index should be refused")
	}

	if !m.SelectSurvivorTarget(1) {
		t.Fatal("selecting Josh failed")
	}
	if josh.Wounds != 1 {
		t.Errorf("Josh wounds = %d, want 1", josh.Wounds)
	}
	if eva.Wounds != 0 || wanda.Wounds != 0 {
		t.Error("only the chosen survivor takes the wound")
	}
	if z.Actions != 0 {
		t.Errorf("zombie actions = %d, want 0 after the resolved attack", z.Actions)
	}
	if m.IsWaitingForTarget() || m.CombatMessage() != "" {
		t.Error("target selection should clear once resolved")
	}

	m.Tick()
	if !m.PhaseComplete() {
		t.Error("phase should complete after the resolved attack")
	}
}

func TestZombiePursuesClosestSurvivor(t *testing.T) {
	s := newTestState()
	addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 2})
	z := addTestZombie(s, world.Position{Row: 2, Col: 2})
	m := newTestManager(s)
	enterZombiePhase(t, m)

	m.Tick()

	if z.Pos != (world.Position{Row: 1, Col: 2}) {
		t.Errorf("zombie position = %v, want (1,2)", z.Pos)
	}
	if z.Actions != 0 {
		t.Errorf("zombie actions = %d, want 0 after the move", z.Actions)
	}
	if want := "Walker 0 moved from (2,2) to (1,2)"; m.LastMessage() != want {
		t.Errorf("last message = %q, want %q", m.LastMessage(), want)
	}
}

func TestZombiePursuitTieKeepsEarlierSurvivor(t *testing.T) {
	s := newTestState()
	addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 1})
	addTestSurvivor(s, "Josh", world.Position{Row: 1, Col: 0})
	z := addTestZombie(s, world.Position{Row: 1, Col: 1})
	m := newTestManager(s)
	enterZombiePhase(t, m)

	m.Tick()

	// Both survivors are one zone away; the tie keeps Eva, so the
	// zombie steps up rather than left.
	if z.Pos != (world.Position{Row: 0, Col: 1}) {
		t.Errorf("zombie position = %v, want (0,1)", z.Pos)
	}
}

func TestZombieWithNoSurvivorsSpendsActionInPlace(t *testing.T) {
	s := newTestState()
	z := addTestZombie(s, world.Position{Row: 2, Col: 2})
	m := newTestManager(s)
	enterZombiePhase(t, m)

	m.Tick()

	if z.Pos != (world.Position{Row: 2, Col: 2}) {
		t.Errorf("zombie position = %v, want (2,2)", z.Pos)
	}
	if z.Actions != 0 {
		t.Errorf("zombie actions = %d, want 0", z.Actions)
	}

	m.Tick()
	if !m.PhaseComplete() {
		t.Error("phase should complete after the idle zombie")
	}
}

func TestZombiePhaseResolvesOneZombiePerTick(t *testing.T) {
	s := newTestState()
	addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 0})
	zombies := []*entity.Zombie{
		addTestZombie(s, world.Position{Row: 2, Col: 2}),
		addTestZombie(s, world.Position{Row: 2, Col: 2}),
		addTestZombie(s, world.Position{Row: 2, Col: 2}),
	}
	m := newTestManager(s)
	enterZombiePhase(t, m)

	for i := range zombies {
		m.Tick()
		for j, z := range zombies {
			moved := z.Pos == (world.Position{Row: 1, Col: 2})
			if j <= i && !moved {
				t.Errorf("tick %d: zombie %d has not acted", i, j)
			}
			if j > i && moved {
				t.Errorf("tick %d: zombie %d acted early", i, j)
			}
		}
	}

	m.Tick()
	if !m.PhaseComplete() {
		t.Error("phase should complete after the last zombie")
	}
}

func TestZombiePhaseSkipsDeadWithoutSpendingTick(t *testing.T) {
	s := newTestState()
	addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 2})
	dead := addTestZombie(s, world.Position{Row: 2, Col: 2})
	dead.Kill()
	live := addTestZombie(s, world.Position{Row: 2, Col: 2})
	m := newTestManager(s)
	enterZombiePhase(t, m)

	m.Tick()

	if live.Pos != (world.Position{Row: 1, Col: 2}) {
		t.Error("the living zombie should act on the same tick the dead one is skipped")
	}
	if dead.Pos != (world.Position{Row: 2, Col: 2}) {
		t.Error("dead zombies must not move")
	}
}

func TestZombiePhaseWithNoZombies(t *testing.T) {
	s := newTestState()
	addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 2})
	m := newTestManager(s)
	enterZombiePhase(t, m)

	if m.Tick() {
		t.Error("an empty horde should complete immediately")
	}
	if !m.PhaseComplete() {
		t.Error("zombie phase with no zombies should complete at once")
	}
}
