package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/combat"
	"github.com/connorfinan79/Arena/internal/core/event"
	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
	"github.com/connorfinan79/Arena/internal/persist"
)

// HandleJoin spawns a character for a fresh session: champion template
// applied, persisted progression restored, session attached, full snapshot
// replied.
func HandleJoin(sess *net.Session, in *protocol.ClientIntent, deps *Deps) {
	if in.Name == "" {
		deps.Log.Warn("join with empty name", zap.Uint64("session", sess.ID))
		sess.Close()
		return
	}
	champ := deps.Champions.Get(in.Champion)
	if champ == nil {
		deps.Log.Warn("join with unknown champion",
			zap.Uint64("session", sess.ID),
			zap.String("champion", in.Champion))
		sess.Close()
		return
	}

	w := deps.World
	cfg := deps.Config
	now := w.Now()

	team := in.Team
	idx := deps.joinCounter[team]
	deps.joinCounter[team] = idx + 1
	spawn := deps.Arena.SpawnFor(team, idx)

	c := combat.NewCharacter(w.NextCharID(), in.Name, team, combat.PlayerControlled, spawn)
	c.ChampionID = champ.ID
	c.Stats = champ.NewStatBlock()
	c.SetAttackConfig(deps.Attacks.Get(champ.AttackConfig))
	c.XPReward = champ.XPReward * cfg.Rates.XPRate
	c.AttachLedger(cfg.Combat.XPBase, cfg.Combat.XPScaling, cfg.Combat.MaxLevel)
	c.Targeting.ClickTolerance = cfg.Combat.ClickTolerance
	c.Health = c.MaxHealth(now)
	c.OnLevelUp = func(lc *combat.Character) {
		deps.Bus.Publish(event.LevelReached{CharID: lc.ID, Level: lc.Level})
	}

	rec := restoreProgress(c, champ.ID, deps)
	deps.Progress.Track(c.ID, rec)

	w.Add(c)
	w.AttachSession(sess.ID, c.ID)
	sess.CharID = c.ID
	sess.State = protocol.StateInArena

	deps.Bus.Publish(event.PlayerJoined{SessionID: sess.ID, CharID: c.ID, Name: c.Name, Team: team})
	deps.Log.Info("player joined",
		zap.Uint64("session", sess.ID),
		zap.Int64("char", c.ID),
		zap.String("name", c.Name),
		zap.String("champion", champ.ID),
		zap.Int16("team", team),
		zap.Int("level", c.Level))

	snapshot := make([]protocol.CharacterDiff, 0, len(w.Characters()))
	for _, o := range w.Characters() {
		snapshot = append(snapshot, protocol.FullDiff(o, now))
	}
	sess.SendJSON(protocol.Welcome{
		Type:     protocol.SMsgWelcome,
		MatchID:  w.MatchID.String(),
		CharID:   c.ID,
		TickMS:   cfg.Network.TickRate.Milliseconds(),
		Snapshot: snapshot,
	})
}

// restoreProgress loads the durable record for a name and applies level and
// banked XP to the fresh character. Without a database, or on load failure,
// the player starts at level 1 and the record is match-local.
func restoreProgress(c *combat.Character, championID string, deps *Deps) *persist.CharacterRecord {
	fresh := &persist.CharacterRecord{Name: c.Name, Champion: championID, Level: 1}
	if deps.CharRepo == nil {
		return fresh
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rec, err := deps.CharRepo.Load(ctx, c.Name)
	if err != nil {
		deps.Log.Error("load character progression", zap.String("name", c.Name), zap.Error(err))
		return fresh
	}
	if rec == nil {
		return fresh
	}
	c.Ledger.Restore(rec.Level, rec.XP)
	c.Health = c.MaxHealth(deps.World.Now())
	rec.Champion = championID
	return rec
}
