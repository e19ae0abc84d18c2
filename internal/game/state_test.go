package game

import (
	"math/rand"
	"testing"

	"github.com/jlucieda/zombicide/internal/action"
	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/gamedata"
	"github.com/jlucieda/zombicide/internal/world"
)

// Shared scaffolding for the game package tests.

func testBreeds() *gamedata.BreedRegistry {
	return gamedata.NewBreedRegistry([]gamedata.BreedDef{
		{ID: "walker", Name: "Walker", Glyph: "z", Color: "#00a550", SpawnWeight: 1},
	})
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func newTestState() *State {
	return NewState(world.NewBoard(world.DefaultSize))
}

func addTestSurvivor(s *State, name string, pos world.Position) *entity.Survivor {
	sv := entity.NewSurvivor("survivor_"+name, name, pos)
	s.AddSurvivor(sv)
	return sv
}

func addTestZombie(s *State, pos world.Position) *entity.Zombie {
	return s.SpawnZombie(testBreeds().GetByID("walker"), pos)
}

// =============================================================================
// Movement
// =============================================================================

func TestExecuteMoveConsumesOneAction(t *testing.T) {
	s := newTestState()
	eva := addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 2})

	result := s.ExecuteAction(action.NewMove(eva.ID, eva.Pos, world.Down))

	if !result.OK {
		t.Fatalf("move failed: %s", result.Message)
	}
	if eva.Pos != (world.Position{Row: 1, Col: 2}) {
		t.Errorf("position = %v, want (1,2)", eva.Pos)
	}
	if eva.Actions != entity.SurvivorMaxActions-1 {
		t.Errorf("actions = %d, want %d", eva.Actions, entity.SurvivorMaxActions-1)
	}
	if want := "Eva moved from (0,2) to (1,2)"; result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}
	if len(result.Effects) != 1 || result.Effects[0] != action.PositionChanged(eva.ID, eva.Pos) {
		t.Errorf("effects = %v, want position change for %s", result.Effects, eva.ID)
	}
}

func TestExecuteMoveOffBoardCostsNothing(t *testing.T) {
	s := newTestState()
	eva := addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 2})

	result := s.ExecuteAction(action.NewMove(eva.ID, eva.Pos, world.Up))

	if result.OK {
		t.Fatal("moving off the board should fail")
	}
	if eva.Pos != (world.Position{Row: 0, Col: 2}) {
		t.Errorf("position changed on a failed move: %v", eva.Pos)
	}
	if eva.Actions != entity.SurvivorMaxActions {
		t.Errorf("actions = %d, want %d (failed validation must not consume)", eva.Actions, entity.SurvivorMaxActions)
	}
}

func TestExecuteActionExhaustedActor(t *testing.T) {
	s := newTestState()
	eva := addTestSurvivor(s, "Eva", world.Position{Row: 1, Col: 1})
	eva.Actions = 0

	result := s.ExecuteAction(action.NewMove(eva.ID, eva.Pos, world.Down))

	if result.OK {
		t.Fatal("exhausted actor should not act")
	}
	if want := "Actor survivor_Eva cannot act"; result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}
}

func TestExecuteActionUnknownActor(t *testing.T) {
	s := newTestState()

	result := s.ExecuteAction(action.NewMove("nobody", world.Position{}, world.Down))

	if result.OK {
		t.Fatal("unknown actor should fail")
	}
}

// =============================================================================
// Combat
// =============================================================================

func TestExecuteAttackKillsZombie(t *testing.T) {
	s := newTestState()
	pos := world.Position{Row: 1, Col: 1}
	eva := addTestSurvivor(s, "Eva", pos)
	z := addTestZombie(s, pos)

	result := s.ExecuteAction(action.NewAttack(eva.ID, z.ID, z.Pos))

	if !result.OK {
		t.Fatalf("attack failed: %s", result.Message)
	}
	if z.Alive {
		t.Error("zombie should be dead after one hit")
	}
	if eva.XP != 1 {
		t.Errorf("XP = %d, want 1", eva.XP)
	}
	if eva.Actions != entity.SurvivorMaxActions-1 {
		t.Errorf("actions = %d, want %d", eva.Actions, entity.SurvivorMaxActions-1)
	}
	if want := "Eva attacks Walker 0 - Walker 0 is eliminated!"; result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}
}

func TestExecuteAttackRequiresSameZone(t *testing.T) {
	s := newTestState()
	eva := addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 0})
	z := addTestZombie(s, world.Position{Row: 0, Col: 1})

	result := s.ExecuteAction(action.NewAttack(eva.ID, z.ID, z.Pos))

	if result.OK {
		t.Fatal("attack across zones should fail")
	}
	if want := "Eva cannot attack Walker 0 - not in same zone"; result.Message != want {
		t.Errorf("message = %q, want %q", result.Message, want)
	}
	if !z.Alive {
		t.Error("failed attack must not kill")
	}
	if eva.Actions != entity.SurvivorMaxActions {
		t.Errorf("actions = %d, want %d", eva.Actions, entity.SurvivorMaxActions)
	}
}

func TestExecuteAttackDeadTargetFails(t *testing.T) {
	s := newTestState()
	pos := world.Position{Row: 1, Col: 1}
	eva := addTestSurvivor(s, "Eva", pos)
	z := addTestZombie(s, pos)
	z.Kill()

	result := s.ExecuteAction(action.NewAttack(eva.ID, z.ID, z.Pos))

	if result.OK {
		t.Fatal("attacking a dead target should fail")
	}
	if eva.XP != 0 {
		t.Errorf("XP = %d, want 0 (no credit for a dead target)", eva.XP)
	}
	if eva.Actions != entity.SurvivorMaxActions {
		t.Errorf("actions = %d, want %d", eva.Actions, entity.SurvivorMaxActions)
	}
}

func TestZombieAttackWoundsSurvivor(t *testing.T) {
	s := newTestState()
	pos := world.Position{Row: 2, Col: 0}
	eva := addTestSurvivor(s, "Eva", pos)
	z := addTestZombie(s, pos)

	result := s.ExecuteAction(action.NewAttack(z.ID, eva.ID, eva.Pos))

	if !result.OK {
		t.Fatalf("attack failed: %s", result.Message)
	}
	if eva.Wounds != 1 {
		t.Errorf("wounds = %d, want 1", eva.Wounds)
	}
	if !eva.Alive {
		t.Error("one wound should not kill")
	}
	if z.Actions != entity.ZombieMaxActions-1 {
		t.Errorf("zombie actions = %d, want %d", z.Actions, entity.ZombieMaxActions-1)
	}
}

// =============================================================================
// Roster bookkeeping
// =============================================================================

func TestSpawnZombieNumbering(t *testing.T) {
	s := newTestState()
	def := testBreeds().GetByID("walker")

	z0 := s.SpawnZombie(def, s.Board.Spawn)
	z1 := s.SpawnZombie(def, s.Board.Spawn)
	z2 := s.SpawnZombie(def, s.Board.Spawn)

	wantIDs := []string{"zombie_0", "zombie_1", "zombie_2"}
	wantNames := []string{"Walker 0", "Walker 1", "Walker 2"}
	for i, z := range []*entity.Zombie{z0, z1, z2} {
		if z.ID != wantIDs[i] {
			t.Errorf("zombie id = %q, want %q", z.ID, wantIDs[i])
		}
		if z.Name != wantNames[i] {
			t.Errorf("zombie name = %q, want %q", z.Name, wantNames[i])
		}
		if got := s.EntityByID(z.ID); got != z {
			t.Errorf("EntityByID(%q) did not return the spawned zombie", z.ID)
		}
	}
}

func TestZoneQueriesSkipDead(t *testing.T) {
	s := newTestState()
	pos := world.Position{Row: 1, Col: 1}
	eva := addTestSurvivor(s, "Eva", pos)
	josh := addTestSurvivor(s, "Josh", pos)
	z0 := addTestZombie(s, pos)
	addTestZombie(s, pos)

	eva.Alive = false
	z0.Kill()

	if got := s.SurvivorsAt(pos); len(got) != 1 || got[0] != josh {
		t.Errorf("SurvivorsAt = %v, want just Josh", got)
	}
	if got := s.ZombiesAt(pos); len(got) != 1 {
		t.Errorf("ZombiesAt returned %d zombies, want 1", len(got))
	}
	if got := s.EntitiesAt(pos); len(got) != 2 {
		t.Errorf("EntitiesAt returned %d entities, want 2", len(got))
	}
	if s.LivingSurvivorCount() != 1 {
		t.Errorf("LivingSurvivorCount = %d, want 1", s.LivingSurvivorCount())
	}
	if s.LivingZombieCount() != 1 {
		t.Errorf("LivingZombieCount = %d, want 1", s.LivingZombieCount())
	}
}

func TestStartTurnsRestoreOnlyLiving(t *testing.T) {
	s := newTestState()
	eva := addTestSurvivor(s, "Eva", world.Position{Row: 0, Col: 2})
	josh := addTestSurvivor(s, "Josh", world.Position{Row: 0, Col: 2})
	eva.Actions = 0
	josh.Actions = 0
	josh.Alive = false

	s.StartSurvivorTurns()

	if eva.Actions != entity.SurvivorMaxActions {
		t.Errorf("Eva actions = %d, want %d", eva.Actions, entity.SurvivorMaxActions)
	}
	if josh.Actions != 0 {
		t.Errorf("dead Josh actions = %d, want 0", josh.Actions)
	}
}
