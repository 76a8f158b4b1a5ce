package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/config"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
)

// InputSystem admits fresh sessions and drains decoded intents into the
// registry. Phase 0 (Input); also run standalone by the high-frequency input
// poll between full ticks, so a click lands within milliseconds instead of
// waiting for the next tick boundary.
type InputSystem struct {
	srv   *net.Server
	store *net.SessionStore
	reg   *protocol.Registry
	log   *zap.Logger
	max   int // intents per session per tick

	// counts carries the per-session budget across the zero-dt polls that
	// run between full ticks.
	counts map[uint64]int
}

func NewInputSystem(srv *net.Server, store *net.SessionStore, reg *protocol.Registry, cfg config.NetworkConfig, log *zap.Logger) *InputSystem {
	return &InputSystem{
		srv:    srv,
		store:  store,
		reg:    reg,
		log:    log,
		max:    cfg.MaxIntentsPerTick,
		counts: make(map[uint64]int),
	}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(dt time.Duration) {
	// A full tick (dt > 0) opens a fresh intent budget; the zero-dt polls in
	// between draw on the current one.
	if dt != 0 {
		clear(s.counts)
	}

	// Admit freshly upgraded sessions.
	for admitting := true; admitting; {
		select {
		case sess := <-s.srv.Accepted:
			s.store.Add(sess)
		default:
			admitting = false
		}
	}

	for {
		select {
		case in := <-s.srv.InQueue:
			if in.Sess.Closed() {
				continue
			}
			if s.counts[in.Sess.ID] >= s.max {
				s.log.Debug("per-tick intent cap hit", zap.Uint64("session", in.Sess.ID))
				continue
			}
			s.counts[in.Sess.ID]++
			s.reg.Dispatch(in.Sess, in.Sess.State, in.Intent)
		default:
			return
		}
	}
}
