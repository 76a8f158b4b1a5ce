package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/core/event"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/persist"
	"github.com/connorfinan79/Arena/internal/world"
)

// CleanupSystem reaps sessions whose read pump exited: the character leaves
// the world, its progression is queued for a final save, and PlayerLeft goes
// out on the bus. Phase 6 (Cleanup) runs last, so the departing character's
// final tick is still replicated.
type CleanupSystem struct {
	srv      *net.Server
	store    *net.SessionStore
	w        *world.State
	progress *persist.ProgressSet
	persistS *PersistenceSystem
	bus      *event.Bus
	log      *zap.Logger
}

func NewCleanupSystem(srv *net.Server, store *net.SessionStore, w *world.State, progress *persist.ProgressSet, persistS *PersistenceSystem, bus *event.Bus, log *zap.Logger) *CleanupSystem {
	return &CleanupSystem{
		srv:      srv,
		store:    store,
		w:        w,
		progress: progress,
		persistS: persistS,
		bus:      bus,
		log:      log,
	}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	for {
		select {
		case sess := <-s.srv.Closed:
			s.reap(sess)
		default:
			return
		}
	}
}

func (s *CleanupSystem) reap(sess *net.Session) {
	s.store.Remove(sess.ID)
	c := s.w.GetBySession(sess.ID)
	if c == nil {
		s.log.Info("session closed", zap.Uint64("session", sess.ID))
		return
	}
	if rec := s.progress.Get(c.ID); rec != nil {
		if c.Ledger != nil {
			rec.Level = c.Level
			rec.XP = c.Ledger.XP()
		}
		s.persistS.QueueDeparture(*rec)
		s.progress.Untrack(c.ID)
	}
	s.w.Remove(c.ID)
	s.bus.Publish(event.PlayerLeft{CharID: c.ID, SessionID: sess.ID})
	s.log.Info("player left",
		zap.Uint64("session", sess.ID),
		zap.Int64("char", c.ID),
		zap.String("name", c.Name))
}
