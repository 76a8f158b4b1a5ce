package handler

import (
	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/config"
	"github.com/connorfinan79/Arena/internal/core/event"
	"github.com/connorfinan79/Arena/internal/data"
	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
	"github.com/connorfinan79/Arena/internal/persist"
	"github.com/connorfinan79/Arena/internal/world"
)

// Deps holds shared dependencies injected into all intent handlers.
type Deps struct {
	Config    *config.Config
	Log       *zap.Logger
	World     *world.State
	Champions *data.ChampionTable
	Attacks   *data.AttackTable
	Arena     *data.ArenaTable
	CharRepo  *persist.CharacterRepo // nil when running without a database
	Progress  *persist.ProgressSet
	Bus       *event.Bus

	// joinCounter spreads players across their team's spawn points.
	joinCounter map[int16]int
}

// RegisterAll registers all intent handlers into the registry.
func RegisterAll(reg *protocol.Registry, deps *Deps) {
	deps.joinCounter = make(map[int16]int)

	reg.Register(protocol.CIntentJoin,
		[]protocol.SessionState{protocol.StateJoining},
		func(sess any, in *protocol.ClientIntent) {
			HandleJoin(sess.(*net.Session), in, deps)
		},
	)
	reg.Register(protocol.CIntentPrimaryAction,
		[]protocol.SessionState{protocol.StateInArena},
		func(sess any, in *protocol.ClientIntent) {
			HandlePrimaryAction(sess.(*net.Session), in, deps)
		},
	)
	reg.Register(protocol.CIntentAttackMove,
		[]protocol.SessionState{protocol.StateInArena},
		func(sess any, in *protocol.ClientIntent) {
			HandleAttackMove(sess.(*net.Session), in, deps)
		},
	)
	reg.Register(protocol.CIntentStop,
		[]protocol.SessionState{protocol.StateInArena},
		func(sess any, in *protocol.ClientIntent) {
			HandleStop(sess.(*net.Session), in, deps)
		},
	)
	reg.Register(protocol.CIntentAbility,
		[]protocol.SessionState{protocol.StateInArena},
		func(sess any, in *protocol.ClientIntent) {
			HandleAbility(sess.(*net.Session), in, deps)
		},
	)
	reg.Register(protocol.CIntentQuit,
		[]protocol.SessionState{protocol.StateJoining, protocol.StateInArena},
		func(sess any, in *protocol.ClientIntent) {
			HandleQuit(sess.(*net.Session), in, deps)
		},
	)
}
