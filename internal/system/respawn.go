package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/combat"
	"github.com/connorfinan79/Arena/internal/config"
	"github.com/connorfinan79/Arena/internal/core/event"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/data"
	"github.com/connorfinan79/Arena/internal/world"
)

type pendingRespawn struct {
	charID int64
	due    float64
}

// RespawnSystem returns dead player characters to play after the configured
// delay, at their team spawn. AI repopulation is the spawner's job, not ours:
// we only schedule for player-controlled victims. Phase 2 (Update).
type RespawnSystem struct {
	w     *world.State
	cfg   *config.Config
	arena *data.ArenaTable
	bus   *event.Bus
	log   *zap.Logger

	pending []pendingRespawn
	counter map[int16]int // rotates a team's spawn points
}

func NewRespawnSystem(w *world.State, cfg *config.Config, arena *data.ArenaTable, bus *event.Bus, log *zap.Logger) *RespawnSystem {
	s := &RespawnSystem{
		w:       w,
		cfg:     cfg,
		arena:   arena,
		bus:     bus,
		log:     log,
		counter: make(map[int16]int),
	}
	event.Subscribe(bus, func(ev event.CharacterKilled) {
		c := w.GetByID(ev.VictimID)
		if c == nil || c.Control != combat.PlayerControlled {
			return
		}
		s.pending = append(s.pending, pendingRespawn{
			charID: ev.VictimID,
			due:    w.Now() + cfg.Combat.RespawnDelay.Seconds(),
		})
	})
	return s
}

func (s *RespawnSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *RespawnSystem) Update(_ time.Duration) {
	if len(s.pending) == 0 {
		return
	}
	now := s.w.Now()
	kept := s.pending[:0]
	for _, p := range s.pending {
		if now < p.due {
			kept = append(kept, p)
			continue
		}
		c := s.w.GetByID(p.charID)
		if c == nil || !c.Dead {
			continue // disconnected, or already handled
		}
		idx := s.counter[c.Team]
		s.counter[c.Team] = idx + 1
		spawn := s.arena.SpawnFor(c.Team, idx)
		c.Respawn(spawn, now)
		s.w.RefreshGrid(c)
		s.bus.Publish(event.CharacterRespawned{CharID: c.ID, Team: c.Team})
		s.log.Debug("character respawned", zap.Int64("char", c.ID))
	}
	s.pending = kept
}
