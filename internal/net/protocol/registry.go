package protocol

import (
	"go.uber.org/zap"
)

// SessionState tracks where a session is in its lifecycle. Intents are only
// dispatched to handlers registered for the session's current state.
type SessionState int

const (
	StateJoining SessionState = iota // connected, no character yet
	StateInArena                     // character spawned, full intent set allowed
	StateClosed
)

// Handler processes one decoded intent. The sess parameter is the gateway's
// *net.Session passed as any to avoid an import cycle; handlers assert it.
type Handler func(sess any, in *ClientIntent)

type entry struct {
	states  []SessionState
	handler Handler
}

// Registry dispatches client intents by type, gated on session state.
// Populated once at boot, then read-only.
type Registry struct {
	entries map[string]entry
	log     *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		entries: make(map[string]entry),
		log:     log,
	}
}

// Register binds an intent type to a handler, valid in the given states.
func (r *Registry) Register(intentType string, states []SessionState, h Handler) {
	r.entries[intentType] = entry{states: states, handler: h}
}

// Dispatch routes one intent. Unknown types and wrong-state intents are
// logged at debug and dropped without touching world state.
func (r *Registry) Dispatch(sess any, state SessionState, in *ClientIntent) {
	e, ok := r.entries[in.Type]
	if !ok {
		r.log.Debug("unknown intent type", zap.String("type", in.Type))
		return
	}
	for _, s := range e.states {
		if s == state {
			e.handler(sess, in)
			return
		}
	}
	r.log.Debug("intent rejected for session state",
		zap.String("type", in.Type),
		zap.Int("state", int(state)))
}
