package system

import (
	"time"

	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/world"
)

// ModifierSystem physically removes expired stat modifiers once per tick.
// Expiry already takes effect at read time; this keeps the modifier lists
// from growing without bound. Phase 3 (PostUpdate).
type ModifierSystem struct {
	w *world.State
}

func NewModifierSystem(w *world.State) *ModifierSystem {
	return &ModifierSystem{w: w}
}

func (s *ModifierSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *ModifierSystem) Update(_ time.Duration) {
	now := s.w.Now()
	for _, c := range s.w.Characters() {
		c.Stats.Purge(now)
	}
}
