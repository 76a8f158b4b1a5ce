package system

import (
	"time"

	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/world"
)

// ProjectileSystem steps every live projectile and compacts the expired ones.
// Phase 2 (Update), after movement, so projectiles test against this tick's
// character positions.
type ProjectileSystem struct {
	w *world.State
}

func NewProjectileSystem(w *world.State) *ProjectileSystem {
	return &ProjectileSystem{w: w}
}

func (s *ProjectileSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ProjectileSystem) Update(dt time.Duration) {
	now := s.w.Now()
	step := dt.Seconds()
	for _, p := range s.w.Projectiles() {
		p.Tick(step, now, s.w, s.w.Resolver, s.w.Sink)
	}
	s.w.CompactProjectiles()
}
