package system

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/config"
	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
)

func TestIntentCapSpansPollsWithinOneTick(t *testing.T) {
	netCfg := config.NetworkConfig{InQueueSize: 16, MaxIntentsPerTick: 2}
	srv := net.NewServer(netCfg, config.RateLimitConfig{}, zap.NewNop())
	store := net.NewSessionStore()
	reg := protocol.NewRegistry(zap.NewNop())

	handled := 0
	reg.Register(protocol.CIntentStop,
		[]protocol.SessionState{protocol.StateInArena},
		func(any, *protocol.ClientIntent) { handled++ })

	sys := NewInputSystem(srv, store, reg, netCfg, zap.NewNop())
	sess := &net.Session{ID: 1, State: protocol.StateInArena}

	push := func(n int) {
		for i := 0; i < n; i++ {
			srv.InQueue <- net.InboundIntent{Sess: sess, Intent: &protocol.ClientIntent{Type: protocol.CIntentStop}}
		}
	}

	// Zero-dt polls inside the same tick draw on one shared budget.
	push(2)
	sys.Update(0)
	push(2)
	sys.Update(0)
	if handled != 2 {
		t.Fatalf("handled = %d, want the cap to span polls", handled)
	}

	// The next full tick opens a fresh budget.
	push(1)
	sys.Update(50 * time.Millisecond)
	if handled != 3 {
		t.Fatalf("handled = %d, want a new budget each tick", handled)
	}
}
