package handler

import (
	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/combat"
	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
)

// HandleAbility activates one of the champion's four self-buff slots: a stat
// modifier granted on the spot, gated by the slot's cooldown.
func HandleAbility(sess *net.Session, in *protocol.ClientIntent, deps *Deps) {
	c := deps.World.GetBySession(sess.ID)
	if c == nil || c.Dead {
		return
	}
	if in.Slot < 0 || in.Slot > 3 {
		return
	}
	champ := deps.Champions.Get(c.ChampionID)
	if champ == nil {
		return
	}
	ab := champ.Abilities[in.Slot]
	if ab == nil {
		return
	}

	now := deps.World.Now()
	if now < c.AbilityLastUsed[in.Slot]+ab.Cooldown {
		return
	}
	c.AbilityLastUsed[in.Slot] = now

	mod := combat.Modifier{
		Kind:      ab.Kind,
		Stat:      ab.Stat,
		Magnitude: ab.Magnitude,
	}
	if ab.Duration > 0 {
		mod.ExpiresAt = now + ab.Duration
	}
	c.Stats.AddModifier(mod)

	deps.World.Sink.Emit(combat.Event{
		Kind:   combat.EvAbilityUsed,
		CharID: c.ID,
		Value:  float64(in.Slot),
	})
	deps.Log.Debug("ability used",
		zap.Int64("char", c.ID),
		zap.Int("slot", in.Slot))
}
