package system

import (
	"time"

	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/world"
)

// TargetingSystem runs the manual-target follow loop for every character.
// Phase 2 (Update), after AI acquisition and before auto-attack, so a target
// set this tick produces a movement decision this tick.
type TargetingSystem struct {
	w *world.State
}

func NewTargetingSystem(w *world.State) *TargetingSystem {
	return &TargetingSystem{w: w}
}

func (s *TargetingSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *TargetingSystem) Update(_ time.Duration) {
	now := s.w.Now()
	for _, c := range s.w.Characters() {
		c.Targeting.Tick(now)
	}
}
