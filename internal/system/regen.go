package system

import (
	"time"

	"github.com/connorfinan79/Arena/internal/combat"
	"github.com/connorfinan79/Arena/internal/config"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/world"
)

// RegenSystem trickles health back to characters that have been out of combat
// long enough. Taking damage resets the window; dealing damage does not.
// Phase 3 (PostUpdate).
type RegenSystem struct {
	w   *world.State
	cfg config.CombatConfig
}

func NewRegenSystem(w *world.State, cfg config.CombatConfig) *RegenSystem {
	return &RegenSystem{w: w, cfg: cfg}
}

func (s *RegenSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *RegenSystem) Update(dt time.Duration) {
	if s.cfg.RegenPctPerSec <= 0 {
		return
	}
	now := s.w.Now()
	delay := s.cfg.RegenDelay.Seconds()
	for _, c := range s.w.Characters() {
		if c.Dead || now-c.LastDamagedAt < delay {
			continue
		}
		max := c.Effective(combat.StatMaxHealth, now)
		if c.Health >= max {
			continue
		}
		s.w.Resolver.Heal(c, max*s.cfg.RegenPctPerSec/100*dt.Seconds(), now)
	}
}
