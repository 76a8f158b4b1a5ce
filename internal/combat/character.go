package combat

// ControlKind tags the intent source of a character. Behavior differences
// between player and AI characters hang off this tag; there is no subclassing.
type ControlKind uint8

const (
	PlayerControlled ControlKind = iota
	AIControlled
)

// Arena is the character's view of the world it fights in: radius queries for
// arc scans and target acquisition, bounds checks for ground clicks, and
// projectile spawning. Implemented by world.State.
type Arena interface {
	// NearbyCharacters returns all characters within radius (planar) of pos,
	// including dead ones; callers filter.
	NearbyCharacters(pos Vec3, radius float64) []*Character
	// InBounds reports whether a point lies inside the arena floor.
	InBounds(p Vec3) bool
	// Blocked reports whether a point sits inside a static obstacle.
	Blocked(p Vec3) bool
	// SpawnProjectile launches a projectile into the world.
	SpawnProjectile(p *Projectile)
}

// Character is the authoritative per-character aggregate: state plus its
// controllers, constructed together. Controllers reference their siblings
// through the aggregate, no runtime component lookup.
//
// Owned exclusively by the game loop goroutine; observers only ever see
// replicated copies.
type Character struct {
	ID         int64
	Name       string
	Team       int16
	Control    ControlKind
	ChampionID string

	Pos Vec3
	Yaw float64

	Level    int
	Health   float64
	Dead     bool
	XPReward float64 // granted to the killer's ledger on death

	Stats  StatBlock
	Attack AttackConfig

	Movement  MovementController
	Knockback KnockbackController
	Targeting TargetingController
	Auto      AutoAttackController
	Ledger    *ExperienceLedger // nil for characters that do not level

	arena    Arena
	sink     *EventSink
	resolver *DamageResolver

	LastDamagedAt   float64
	AbilityLastUsed [4]float64

	planarSpeed float64 // displacement speed this tick, for replication

	// OnDestroyed fires exactly once per death; a spawner uses it to track
	// population. Rearmed on respawn.
	OnDestroyed       func(*Character)
	destroyedNotified bool

	// OnLevelUp fires once per level gained, after stats and health settle.
	OnLevelUp func(*Character)
}

// NewCharacter builds a character at a spawn point with its controllers wired
// to the aggregate. Bind must be called before the character is ticked.
func NewCharacter(id int64, name string, team int16, control ControlKind, spawn Vec3) *Character {
	c := &Character{
		ID:      id,
		Name:    name,
		Team:    team,
		Control: control,
		Pos:     spawn,
		Level:   1,
		Attack:  DefaultAttackConfig(),
	}
	c.Movement.ch = c
	c.Knockback.ch = c
	c.Targeting.ch = c
	c.Auto.ch = c
	c.Auto.lastAttack = -1e9
	for i := range c.AbilityLastUsed {
		c.AbilityLastUsed[i] = -1e9
	}
	return c
}

// Bind attaches the character to its world, event sink, and damage resolver.
func (c *Character) Bind(arena Arena, sink *EventSink, resolver *DamageResolver) {
	c.arena = arena
	c.sink = sink
	c.resolver = resolver
}

// AttachLedger enables experience progression with the given XP curve.
func (c *Character) AttachLedger(base, scaling float64, maxLevel int) {
	c.Ledger = &ExperienceLedger{ch: c, base: base, scaling: scaling, maxLevel: maxLevel}
}

// SetAttackConfig swaps the whole attack profile. A zero-value config is
// replaced by the safe default rather than propagated.
func (c *Character) SetAttackConfig(cfg AttackConfig) {
	if cfg.MaxTargets <= 0 && cfg.Kind == AttackMelee {
		cfg = DefaultAttackConfig()
	}
	c.Attack = cfg
}

func (c *Character) Alive() bool { return !c.Dead }

// Effective resolves a stat at the character's current level, modifiers
// included. Re-read by every consumer each tick so buffs apply immediately.
func (c *Character) Effective(s Stat, now float64) float64 {
	return c.Stats.Effective(s, c.Level, now)
}

// MaxHealth is shorthand for the effective health cap.
func (c *Character) MaxHealth(now float64) float64 {
	return c.Effective(StatMaxHealth, now)
}

// NormalizedMoveSpeed reports current planar speed as a fraction of the
// effective move speed. Replicated for client-side animation blending.
func (c *Character) NormalizedMoveSpeed(now float64) float64 {
	max := c.Effective(StatMoveSpeed, now)
	if max <= 0 {
		return 0
	}
	n := c.planarSpeed / max
	if n > 1 {
		n = 1
	}
	return n
}

// Respawn is the only path from dead back to alive: health and position are
// reset atomically and all transient combat state is cleared.
func (c *Character) Respawn(pos Vec3, now float64) {
	if !c.Dead {
		return
	}
	c.Dead = false
	c.Pos = pos
	c.Health = c.MaxHealth(now)
	c.LastDamagedAt = now
	c.Movement.Stop()
	c.Knockback.clear()
	c.Targeting.Stop()
	c.destroyedNotified = false
	if c.sink != nil {
		c.sink.Emit(Event{Kind: EvRespawned, CharID: c.ID, Pos: pos})
	}
}

// notifyDestroyed fires the destruction notification exactly once per death.
func (c *Character) notifyDestroyed() {
	if c.destroyedNotified {
		return
	}
	c.destroyedNotified = true
	if c.OnDestroyed != nil {
		c.OnDestroyed(c)
	}
}

func (c *Character) emit(ev Event) {
	if c.sink != nil {
		c.sink.Emit(ev)
	}
}

// isEnemyOf is the coarse friend-or-foe classification: opposing team tag.
// Independent of the manual-target relation; a same-team manual target never
// widens an arc scan.
func (c *Character) isEnemyOf(o *Character) bool {
	return o != nil && o.Team != c.Team
}
