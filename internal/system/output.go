package system

import (
	"time"

	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/net"
)

// OutputSystem flushes buffered outbound messages for all sessions.
// Phase 4 (Output), after replication, before persistence.
//
// During Phases 0-4, handlers and systems call sess.SendJSON() which appends
// to a per-session buffer. OutputSystem drains these buffers into the out
// channels, where the write pumps pick them up for websocket transmission.
// A single flush point keeps network I/O timing predictable and batches
// multiple messages per tick into fewer channel operations.
type OutputSystem struct {
	store *net.SessionStore
}

func NewOutputSystem(store *net.SessionStore) *OutputSystem {
	return &OutputSystem{store: store}
}

func (s *OutputSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *OutputSystem) Update(_ time.Duration) {
	s.store.ForEach(func(sess *net.Session) {
		sess.FlushOutput()
	})
}
