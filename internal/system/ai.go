package system

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/combat"
	"github.com/connorfinan79/Arena/internal/config"
	coresys "github.com/connorfinan79/Arena/internal/core/system"
	"github.com/connorfinan79/Arena/internal/data"
	"github.com/connorfinan79/Arena/internal/world"
)

// homeArriveDist ends a leash return once the unit is this close to home.
const homeArriveDist = 1.0

type aiUnit struct {
	group     int // index into spawn groups
	home      combat.Vec3
	returning bool
}

type aiPending struct {
	group int
	oldID int64 // corpse to reap at respawn time
	home  combat.Vec3
	due   float64
}

// AISystem owns every AI-controlled character: it seeds the spawn groups at
// boot, keeps them repopulated after deaths, and runs the chase brain each
// tick. Targeting, auto-attack, and movement then treat AI characters exactly
// like players. Phase 2 (Update), registered ahead of targeting.
type AISystem struct {
	w         *world.State
	cfg       *config.Config
	champions *data.ChampionTable
	attacks   *data.AttackTable
	groups    []data.AISpawn
	log       *zap.Logger

	units   map[int64]*aiUnit
	pending []aiPending
}

func NewAISystem(w *world.State, cfg *config.Config, champions *data.ChampionTable, attacks *data.AttackTable, arena *data.ArenaTable, log *zap.Logger) *AISystem {
	return &AISystem{
		w:         w,
		cfg:       cfg,
		champions: champions,
		attacks:   attacks,
		groups:    arena.AISpawns,
		log:       log,
		units:     make(map[int64]*aiUnit),
	}
}

func (s *AISystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

// Seed populates every spawn group. Called once at boot, after world setup.
func (s *AISystem) Seed() {
	for gi, g := range s.groups {
		for i := 0; i < g.Count; i++ {
			s.spawn(gi, spawnOffset(g.Pos, i, g.Count))
		}
	}
	s.log.Info("ai spawn groups seeded",
		zap.Int("groups", len(s.groups)),
		zap.Int("units", len(s.units)))
}

// spawnOffset rings group members around the anchor so they do not stack.
func spawnOffset(anchor combat.Vec3, idx, count int) combat.Vec3 {
	if count <= 1 {
		return anchor
	}
	a := 2 * math.Pi * float64(idx) / float64(count)
	return anchor.Add(combat.YawDir(a).Scale(1.5))
}

func (s *AISystem) spawn(gi int, pos combat.Vec3) {
	g := s.groups[gi]
	champ := s.champions.Get(g.Champion)
	if champ == nil {
		s.log.Error("ai spawn references unknown champion", zap.String("champion", g.Champion))
		return
	}
	id := s.w.NextCharID()
	c := combat.NewCharacter(id, fmt.Sprintf("%s-%d", champ.Name, id), g.Team, combat.AIControlled, pos)
	c.ChampionID = champ.ID
	c.Stats = champ.NewStatBlock()
	c.SetAttackConfig(s.attacks.Get(champ.AttackConfig))
	c.XPReward = champ.XPReward * s.cfg.Rates.XPRate
	c.Health = c.MaxHealth(s.w.Now())

	home := pos
	c.OnDestroyed = func(dead *combat.Character) {
		delete(s.units, dead.ID)
		s.pending = append(s.pending, aiPending{
			group: gi,
			oldID: dead.ID,
			home:  home,
			due:   s.w.Now() + s.groups[gi].RespawnDelay,
		})
	}

	s.w.Add(c)
	s.units[c.ID] = &aiUnit{group: gi, home: home}
}

func (s *AISystem) Update(_ time.Duration) {
	now := s.w.Now()

	// Refill spawn groups whose timers are due. The corpse is reaped and a
	// fresh character takes its place at the group's home point.
	if len(s.pending) > 0 {
		kept := s.pending[:0]
		for _, p := range s.pending {
			if now < p.due {
				kept = append(kept, p)
				continue
			}
			s.w.Remove(p.oldID)
			s.spawn(p.group, p.home)
		}
		s.pending = kept
	}

	// Chase brain. Iterates world order, not the unit map, so acquisition
	// order is deterministic.
	for _, c := range s.w.Characters() {
		u := s.units[c.ID]
		if u == nil || c.Dead {
			continue
		}
		s.think(c, u, now)
	}
}

func (s *AISystem) think(c *combat.Character, u *aiUnit, now float64) {
	g := s.groups[u.group]

	// Leash: beyond the tether the unit drops everything and walks home.
	if combat.PlanarDist(c.Pos, u.home) > g.LeashRadius {
		u.returning = true
		c.Targeting.Stop()
		c.Movement.MoveTo(u.home)
		return
	}
	if u.returning {
		if combat.PlanarDist(c.Pos, u.home) > homeArriveDist {
			c.Movement.MoveTo(u.home)
			return
		}
		u.returning = false
	}

	// Drop targets that would drag the unit past its leash.
	if t := c.Targeting.Target(); t != nil {
		if !t.Alive() || combat.PlanarDist(u.home, t.Pos) > g.LeashRadius {
			c.Targeting.Stop()
		} else {
			return // keep chasing
		}
	}

	// Acquire the nearest live enemy inside the aggro radius.
	var best *combat.Character
	bestDist := g.AggroRadius
	for _, o := range s.w.NearbyCharacters(c.Pos, g.AggroRadius) {
		if o == c || !o.Alive() || o.Team == c.Team {
			continue
		}
		if d := combat.PlanarDist(c.Pos, o.Pos); d <= bestDist {
			bestDist = d
			best = o
		}
	}
	if best != nil {
		c.Targeting.SetTarget(best, now)
	}
}
