package system

import (
	"time"

	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/world"
)

// MovementSystem displaces every character once per tick: the knockback
// override when active, destination-seeking otherwise. The spatial grid is
// re-indexed immediately after each displacement so every later query this
// tick sees current positions. Phase 2 (Update), after auto-attack.
type MovementSystem struct {
	w *world.State
}

func NewMovementSystem(w *world.State) *MovementSystem {
	return &MovementSystem{w: w}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	now := s.w.Now()
	step := dt.Seconds()
	for _, c := range s.w.Characters() {
		if c.Knockback.Active(now) {
			c.Knockback.Tick(step, now)
		} else {
			c.Movement.Tick(step, now)
		}
		s.w.RefreshGrid(c)
	}
}
