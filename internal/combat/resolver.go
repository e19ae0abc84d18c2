// Package combat provides the attack resolution rules shared by the
// survivor and zombie turn paths.
package combat

import (
	"fmt"

	"github.com/jlucieda/zombicide/internal/action"
	"github.com/jlucieda/zombicide/internal/entity"
)

// Outcome describes one resolved attack. The message is ready for the
// game log; the effect tags mirror what happened for observers.
type Outcome struct {
	Died     bool     // Target died from this attack
	XPGained int      // Experience the attacker earned
	Message  string   // Human-readable description
	Effects  []string // Ordered effect tags
}

// Resolver applies the combat rules. Attacks always land: a survivor
// eliminates a zombie outright and earns experience for it, while a
// zombie inflicts exactly one wound. Range checks happen before the
// resolver is called; both sides must already share a zone.
type Resolver struct {
	KillXP int // Experience awarded for eliminating a zombie
}

// NewResolver creates a resolver with the standard rules.
func NewResolver() *Resolver {
	return &Resolver{KillXP: 1}
}

// AttackSurvivor inflicts one wound on the target survivor. The second
// wound is fatal and is reported in both the message and the effects.
func (r *Resolver) AttackSurvivor(attacker entity.Entity, target *entity.Survivor) Outcome {
	died := target.TakeWound()

	out := Outcome{Died: died}
	out.Message = fmt.Sprintf("%s attacks %s - %s takes 1 wound (%d/%d)",
		attacker.GetName(), target.Name, target.Name, target.Wounds, entity.SurvivorMaxWounds)
	if died {
		out.Message += " and dies!"
		out.Effects = append(out.Effects, action.EntityDied(target.ID))
	}
	out.Effects = append(out.Effects, action.DamageTaken(target.ID, 1))
	return out
}

// AttackZombie eliminates the target zombie outright. A survivor
// attacker is credited with the kill's experience.
func (r *Resolver) AttackZombie(attacker entity.Entity, target *entity.Zombie) Outcome {
	target.Kill()

	out := Outcome{
		Died: true,
		Message: fmt.Sprintf("%s attacks %s - %s is eliminated!",
			attacker.GetName(), target.Name, target.Name),
		Effects: []string{action.EntityDied(target.ID)},
	}
	if s, ok := attacker.(*entity.Survivor); ok {
		s.GainXP(r.KillXP)
		out.XPGained = r.KillXP
		out.Effects = append(out.Effects, action.ExperienceGained(s.ID, r.KillXP))
	}
	return out
}
