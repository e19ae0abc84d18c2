package combat

import (
	"strings"
	"testing"

	"github.com/jlucieda/zombicide/internal/entity"
	"github.com/jlucieda/zombicide/internal/world"
)

func TestAttackZombieEliminatesOutright(t *testing.T) {
	r := NewResolver()
	s := entity.NewSurvivor("survivor_0", "Eva", world.Position{Row: 1, Col: 1})
	z := entity.NewZombie("zombie_0", "Walker 0", world.Position{Row: 1, Col: 1})

	out := r.AttackZombie(s, z)

	if !out.Died {
		t.Error("attack on zombie should always kill")
	}
	if z.Alive {
		t.Error("zombie should be dead")
	}
	if !strings.Contains(out.Message, "is eliminated!") {
		t.Errorf("Message = %q, want elimination text", out.Message)
	}
}

func TestAttackZombieAwardsExperience(t *testing.T) {
	r := NewResolver()
	s := entity.NewSurvivor("survivor_0", "Eva", world.Position{Row: 1, Col: 1})
	z := entity.NewZombie("zombie_0", "Walker 0", world.Position{Row: 1, Col: 1})

	out := r.AttackZombie(s, z)

	if out.XPGained != 1 {
		t.Errorf("XPGained = %d, want 1", out.XPGained)
	}
	if s.XP != 1 {
		t.Errorf("survivor XP = %d, want 1", s.XP)
	}
	found := false
	for _, e := range out.Effects {
		if e == "experience_gained:survivor_0:1" {
			found = true
		}
	}
	if !found {
		t.Errorf("Effects = %v, want experience_gained tag", out.Effects)
	}
}

func TestAttackZombieByZombieAwardsNothing(t *testing.T) {
	// Friendly fire is not a gameplay path, but the rules must not credit
	// experience to a non-survivor attacker.
	r := NewResolver()
	attacker := entity.NewZombie("zombie_0", "Walker 0", world.Position{})
	target := entity.NewZombie("zombie_1", "Walker 1", world.Position{})

	out := r.AttackZombie(attacker, target)

	if out.XPGained != 0 {
		t.Errorf("XPGained = %d, want 0", out.XPGained)
	}
	if len(out.Effects) != 1 || out.Effects[0] != "entity_died:zombie_1" {
		t.Errorf("Effects = %v, want only entity_died", out.Effects)
	}
}

func TestAttackSurvivorFirstWound(t *testing.T) {
	r := NewResolver()
	z := entity.NewZombie("zombie_0", "Walker 0", world.Position{Row: 1, Col: 1})
	s := entity.NewSurvivor("survivor_0", "Eva", world.Position{Row: 1, Col: 1})

	out := r.AttackSurvivor(z, s)

	if out.Died {
		t.Error("first wound should not be fatal")
	}
	if s.Wounds != 1 {
		t.Errorf("Wounds = %d, want 1", s.Wounds)
	}
	if !s.Alive {
		t.Error("survivor should still be alive")
	}
	if !strings.Contains(out.Message, "takes 1 wound (1/2)") {
		t.Errorf("Message = %q, want wound count 1/2", out.Message)
	}
	if len(out.Effects) != 1 || out.Effects[0] != "damage_taken:survivor_0:1" {
		t.Errorf("Effects = %v, want only damage_taken", out.Effects)
	}
}

func TestAttackSurvivorSecondWoundKills(t *testing.T) {
	r := NewResolver()
	z := entity.NewZombie("zombie_0", "Walker 0", world.Position{Row: 1, Col: 1})
	s := entity.NewSurvivor("survivor_0", "Eva", world.Position{Row: 1, Col: 1})
	s.Wounds = 1

	out := r.AttackSurvivor(z, s)

	if !out.Died {
		t.Error("second wound should be fatal")
	}
	if s.Alive {
		t.Error("survivor should be dead at 2 wounds")
	}
	if !strings.Contains(out.Message, "and dies!") {
		t.Errorf("Message = %q, want death text", out.Message)
	}
	// Death tag comes before the wound tag, matching the order things
	// happened.
	want := []string{"entity_died:survivor_0", "damage_taken:survivor_0:1"}
	if len(out.Effects) != len(want) {
		t.Fatalf("Effects = %v, want %v", out.Effects, want)
	}
	for i := range want {
		if out.Effects[i] != want[i] {
			t.Errorf("Effects[%d] = %q, want %q", i, out.Effects[i], want[i])
		}
	}
}

func TestAttackSurvivorWoundsOnlyIncrease(t *testing.T) {
	r := NewResolver()
	z := entity.NewZombie("zombie_0", "Walker 0", world.Position{})
	s := entity.NewSurvivor("survivor_0", "Eva", world.Position{})

	prev := s.Wounds
	for i := 0; i < 4; i++ {
		r.AttackSurvivor(z, s)
		if s.Wounds < prev {
			t.Fatalf("wounds decreased from %d to %d", prev, s.Wounds)
		}
		prev = s.Wounds
		if s.Wounds >= entity.SurvivorMaxWounds && s.Alive {
			t.Fatal("survivor alive at lethal wound count")
		}
	}
}
