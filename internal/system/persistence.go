package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/config"
	"github.com/connorfinan79/Arena/internal/core/event"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/persist"
	"github.com/connorfinan79/Arena/internal/world"
)

const persistTimeout = 5 * time.Second

// PersistenceSystem batches durable writes: character progression upserts on
// an interval and the buffered kill ledger. Departing players are flushed on
// the next tick rather than waiting for the interval. Runs without a database
// when the repos are nil. Phase 5 (Persist).
type PersistenceSystem struct {
	w        *world.State
	cfg      config.PersistenceConfig
	chars    *persist.CharacterRepo
	kills    *persist.KillLogRepo
	progress *persist.ProgressSet
	log      *zap.Logger

	ticks      int
	killBuf    []persist.KillRecord
	departures []persist.CharacterRecord
}

func NewPersistenceSystem(w *world.State, cfg config.PersistenceConfig, chars *persist.CharacterRepo, kills *persist.KillLogRepo, progress *persist.ProgressSet, bus *event.Bus, log *zap.Logger) *PersistenceSystem {
	s := &PersistenceSystem{
		w:        w,
		cfg:      cfg,
		chars:    chars,
		kills:    kills,
		progress: progress,
		log:      log,
	}
	event.Subscribe(bus, func(ev event.CharacterKilled) {
		s.killBuf = append(s.killBuf, persist.KillRecord{
			MatchID:    w.MatchID,
			Tick:       w.Tick(),
			VictimID:   ev.VictimID,
			VictimTeam: ev.VictimTeam,
			KillerID:   ev.KillerID,
			XPAwarded:  ev.XPAwarded,
		})
	})
	return s
}

func (s *PersistenceSystem) Phase() coresys.Phase { return coresys.PhasePersist }

// QueueDeparture schedules a final save for a player who left, flushed on the
// next Persist phase regardless of the batch interval.
func (s *PersistenceSystem) QueueDeparture(rec persist.CharacterRecord) {
	s.departures = append(s.departures, rec)
}

func (s *PersistenceSystem) Update(_ time.Duration) {
	s.ticks++
	due := s.cfg.BatchIntervalTicks > 0 && s.ticks%s.cfg.BatchIntervalTicks == 0
	if !due && len(s.departures) == 0 {
		return
	}
	s.flush(due)
}

// FlushAll writes everything outstanding. Called at shutdown.
func (s *PersistenceSystem) FlushAll() {
	s.flush(true)
}

func (s *PersistenceSystem) flush(full bool) {
	if s.chars == nil || s.kills == nil {
		s.departures = s.departures[:0]
		s.killBuf = s.killBuf[:0]
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	recs := s.departures
	s.departures = nil
	if full {
		s.refreshRecords()
		recs = append(recs, s.progress.Snapshot()...)
	}
	if err := s.chars.SaveBatch(ctx, recs); err != nil {
		s.log.Error("character batch save failed", zap.Error(err))
	} else if len(recs) > 0 {
		s.log.Debug("character batch saved", zap.Int("count", len(recs)))
	}

	if err := s.kills.InsertBatch(ctx, s.killBuf); err != nil {
		s.log.Error("kill ledger flush failed",
			zap.Int("buffered", len(s.killBuf)),
			zap.Error(err))
		return // keep the buffer, retry next flush
	}
	s.killBuf = s.killBuf[:0]
}

// refreshRecords copies live progression into the tracked records before a
// batch save.
func (s *PersistenceSystem) refreshRecords() {
	for _, c := range s.w.Characters() {
		rec := s.progress.Get(c.ID)
		if rec == nil || c.Ledger == nil {
			continue
		}
		rec.Level = c.Level
		rec.XP = c.Ledger.XP()
	}
}
