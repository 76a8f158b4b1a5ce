package system

import (
	"time"

	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/world"
)

// AutoAttackSystem runs the per-character fire decision. Phase 2 (Update),
// after targeting so this tick's range assessment is the one acted on.
type AutoAttackSystem struct {
	w *world.State
}

func NewAutoAttackSystem(w *world.State) *AutoAttackSystem {
	return &AutoAttackSystem{w: w}
}

func (s *AutoAttackSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *AutoAttackSystem) Update(_ time.Duration) {
	now := s.w.Now()
	for _, c := range s.w.Characters() {
		c.Auto.Tick(now)
	}
}
