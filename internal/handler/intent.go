package handler

import (
	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
)

// HandlePrimaryAction routes a right-click world point into the targeting
// controller: enemy pick, ground move, or nothing.
func HandlePrimaryAction(sess *net.Session, in *protocol.ClientIntent, deps *Deps) {
	c := deps.World.GetBySession(sess.ID)
	if c == nil {
		return
	}
	c.Targeting.OnPrimaryAction(in.Point, deps.World.Now())
}

// HandleAttackMove routes a modifier-click: move toward the point, engaging
// anything hostile found along the way.
func HandleAttackMove(sess *net.Session, in *protocol.ClientIntent, deps *Deps) {
	c := deps.World.GetBySession(sess.ID)
	if c == nil {
		return
	}
	c.Targeting.OnAttackMoveAction(in.Point, deps.Config.Combat.EngageRadius)
}

// HandleStop halts the character unconditionally.
func HandleStop(sess *net.Session, in *protocol.ClientIntent, deps *Deps) {
	c := deps.World.GetBySession(sess.ID)
	if c == nil {
		return
	}
	c.Targeting.Stop()
}

// HandleQuit closes the session; the cleanup system reaps the character when
// the read pump reports the closure.
func HandleQuit(sess *net.Session, in *protocol.ClientIntent, deps *Deps) {
	deps.Log.Info("player quit", zap.Uint64("session", sess.ID), zap.Int64("char", sess.CharID))
	sess.Close()
}
