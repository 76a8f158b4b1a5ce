package system

import (
	"math"
	"time"

	"github.com/connorfinan79/Arena/internal/combat"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/net"
	"github.com/connorfinan79/Arena/internal/net/protocol"
	"github.com/connorfinan79/Arena/internal/world"
)

const (
	posEpsilon   = 1e-4
	yawEpsilon   = 1e-4
	speedEpsilon = 1e-3
)

type replicaSnap struct {
	health float64
	level  int
	dead   bool
	speed  float64
	pos    combat.Vec3
	yaw    float64
}

// ReplicationSystem builds the per-tick state broadcast: one coalesced diff
// per changed character plus the tick's presentation events, sent to every
// in-arena session. First-seen characters go out as full snapshots; vanished
// ones as removal notices. Phase 4 (Output), registered ahead of the flush.
type ReplicationSystem struct {
	w     *world.State
	store *net.SessionStore

	last map[int64]replicaSnap
}

func NewReplicationSystem(w *world.State, store *net.SessionStore) *ReplicationSystem {
	return &ReplicationSystem{
		w:     w,
		store: store,
		last:  make(map[int64]replicaSnap),
	}
}

func (s *ReplicationSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *ReplicationSystem) Update(_ time.Duration) {
	now := s.w.Now()

	var diffs []protocol.CharacterDiff
	seen := make(map[int64]struct{}, len(s.w.Characters()))
	for _, c := range s.w.Characters() {
		seen[c.ID] = struct{}{}
		cur := replicaSnap{
			health: c.Health,
			level:  c.Level,
			dead:   c.Dead,
			speed:  c.NormalizedMoveSpeed(now),
			pos:    c.Pos,
			yaw:    c.Yaw,
		}
		prev, known := s.last[c.ID]
		if !known {
			diffs = append(diffs, protocol.FullDiff(c, now))
		} else if d, changed := diff(c.ID, prev, cur); changed {
			diffs = append(diffs, d)
		}
		s.last[c.ID] = cur
	}

	var removed []int64
	for id := range s.last {
		if _, ok := seen[id]; !ok {
			removed = append(removed, id)
			delete(s.last, id)
		}
	}

	events := s.w.Sink.Drain()
	if len(diffs) == 0 && len(removed) == 0 && len(events) == 0 {
		return
	}

	update := protocol.StateUpdate{
		Type:    protocol.SMsgState,
		Tick:    s.w.Tick(),
		Chars:   diffs,
		Removed: removed,
		Events:  events,
	}
	s.store.ForEach(func(sess *net.Session) {
		if sess.State == protocol.StateInArena {
			sess.SendJSON(update)
		}
	})
}

// diff builds a sparse update from two snapshots. Unchanged fields stay nil
// so the wire payload carries only what moved.
func diff(id int64, prev, cur replicaSnap) (protocol.CharacterDiff, bool) {
	d := protocol.CharacterDiff{ID: id}
	changed := false
	if cur.health != prev.health {
		h := cur.health
		d.Health = &h
		changed = true
	}
	if cur.level != prev.level {
		l := cur.level
		d.Level = &l
		changed = true
	}
	if cur.dead != prev.dead {
		dead := cur.dead
		d.Dead = &dead
		changed = true
	}
	if math.Abs(cur.speed-prev.speed) > speedEpsilon {
		sp := cur.speed
		d.MoveSpeed = &sp
		changed = true
	}
	if combat.PlanarDist(cur.pos, prev.pos) > posEpsilon || math.Abs(cur.pos.Y-prev.pos.Y) > posEpsilon {
		p := cur.pos
		d.Pos = &p
		changed = true
	}
	if math.Abs(cur.yaw-prev.yaw) > yawEpsilon {
		y := cur.yaw
		d.Yaw = &y
		changed = true
	}
	return d, changed
}
