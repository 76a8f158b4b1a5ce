package world

import (
	"sort"

	"github.com/google/uuid"

	"github.com/connorfinan79/Arena/internal/combat"
)

// AABB is a static rectangular obstacle on the arena floor.
type AABB struct {
	MinX, MinZ, MaxX, MaxZ float64
}

func (b AABB) contains(p combat.Vec3) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// Bounds is the playable arena floor.
type Bounds struct {
	MinX, MinZ, MaxX, MaxZ float64
}

func (b Bounds) contains(p combat.Vec3) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Z >= b.MinZ && p.Z <= b.MaxZ
}

// State is the authoritative in-memory world: every character and projectile
// in the match. Accessed only from the game loop goroutine, no locks.
// It implements combat.Arena.
type State struct {
	MatchID uuid.UUID

	Sink     *combat.EventSink
	Resolver *combat.DamageResolver

	now  float64
	tick uint64

	chars     map[int64]*combat.Character
	order     []*combat.Character // insertion order, deterministic iteration
	bySession map[uint64]int64

	projectiles []*combat.Projectile

	grid      *Grid
	bounds    Bounds
	obstacles []AABB

	nextCharID int64
	nextProjID int64
}

func NewState(bounds Bounds, obstacles []AABB, cellSize float64) *State {
	return &State{
		MatchID:   uuid.New(),
		Sink:      combat.NewEventSink(),
		chars:     make(map[int64]*combat.Character),
		bySession: make(map[uint64]int64),
		grid:      NewGrid(cellSize),
		bounds:    bounds,
		obstacles: obstacles,
	}
}

// Advance moves the sim clock one tick forward. Called once per full tick,
// before any system runs.
func (s *State) Advance(dt float64) {
	s.now += dt
	s.tick++
}

// Now is the sim time in seconds since match start.
func (s *State) Now() float64 { return s.now }

// Tick is the number of completed simulation ticks.
func (s *State) Tick() uint64 { return s.tick }

// NextCharID hands out a stable character identity.
func (s *State) NextCharID() int64 {
	s.nextCharID++
	return s.nextCharID
}

// Add registers a character, binds it to this world, and indexes it.
func (s *State) Add(c *combat.Character) {
	c.Bind(s, s.Sink, s.Resolver)
	s.chars[c.ID] = c
	s.order = append(s.order, c)
	s.grid.Add(c.ID, c.Pos)
}

// Remove unregisters a character entirely (disconnect, not death).
func (s *State) Remove(id int64) {
	if _, ok := s.chars[id]; !ok {
		return
	}
	delete(s.chars, id)
	s.grid.Remove(id)
	for i, c := range s.order {
		if c.ID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for sid, cid := range s.bySession {
		if cid == id {
			delete(s.bySession, sid)
		}
	}
}

// AttachSession links a gateway session to its character.
func (s *State) AttachSession(sessionID uint64, charID int64) {
	s.bySession[sessionID] = charID
}

// GetByID returns a character or nil.
func (s *State) GetByID(id int64) *combat.Character {
	return s.chars[id]
}

// GetBySession returns the character controlled by a session, or nil.
func (s *State) GetBySession(sessionID uint64) *combat.Character {
	return s.chars[s.bySession[sessionID]]
}

// Characters returns all characters in deterministic insertion order.
func (s *State) Characters() []*combat.Character {
	return s.order
}

// RefreshGrid re-indexes a character after displacement.
func (s *State) RefreshGrid(c *combat.Character) {
	s.grid.Refresh(c.ID, c.Pos)
}

// --- combat.Arena ---

// NearbyCharacters returns candidates within radius of pos (coarse cell
// query plus a distance cut), sorted by ID for deterministic scan order.
func (s *State) NearbyCharacters(pos combat.Vec3, radius float64) []*combat.Character {
	ids := s.grid.Nearby(pos, radius)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []*combat.Character
	for _, id := range ids {
		c := s.chars[id]
		if c == nil {
			continue
		}
		if combat.PlanarDist(pos, c.Pos) <= radius {
			out = append(out, c)
		}
	}
	return out
}

// InBounds reports whether a point lies on the arena floor.
func (s *State) InBounds(p combat.Vec3) bool {
	return s.bounds.contains(p)
}

// Blocked reports whether a point sits inside a static obstacle.
func (s *State) Blocked(p combat.Vec3) bool {
	if !s.bounds.contains(p) {
		return true
	}
	for _, o := range s.obstacles {
		if o.contains(p) {
			return true
		}
	}
	return false
}

// SpawnProjectile assigns an ID and launches the projectile.
func (s *State) SpawnProjectile(p *combat.Projectile) {
	s.nextProjID++
	p.ID = s.nextProjID
	s.projectiles = append(s.projectiles, p)
}

// Projectiles returns the live projectile list.
func (s *State) Projectiles() []*combat.Projectile {
	return s.projectiles
}

// CompactProjectiles drops expired projectiles, preserving order.
func (s *State) CompactProjectiles() {
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !p.Expired {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept
}
