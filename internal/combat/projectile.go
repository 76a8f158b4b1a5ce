package combat

// Projectile tuning.
const (
	projectileHitRadius = 0.6  // planar distance counted as a hit
	projectileLifetime  = 10.0 // hard age cap, seconds
	projectileHeight    = 1.2  // spawn height above the owner's feet
)

// Projectile is a straight-line ballistic entity. Once launched it is fully
// independent of its owner: the owner stopping, retargeting, or dying does
// not cancel it.
type Projectile struct {
	ID        int64
	OwnerID   int64
	OwnerTeam int16

	Pos Vec3
	Dir Vec3 // planar unit vector, fixed at launch

	Speed     float64
	MaxDist   float64
	Damage    float64
	Piercing  bool
	Knockback KnockbackSpec

	SpawnedAt float64
	traveled  float64
	hit       map[int64]struct{} // piercing: each target at most once
	Expired   bool
}

// NewProjectile builds a projectile from the owner's current attack config
// and position. The ID is assigned by the arena on spawn.
func NewProjectile(owner *Character, dir Vec3, damage float64, now float64) *Projectile {
	cfg := owner.Attack
	return &Projectile{
		OwnerID:   owner.ID,
		OwnerTeam: owner.Team,
		Pos:       Vec3{owner.Pos.X, owner.Pos.Y + projectileHeight, owner.Pos.Z},
		Dir:       dir.PlanarNorm(),
		Speed:     cfg.ProjectileSpeed,
		MaxDist:   cfg.ProjectileMaxDist,
		Damage:    damage,
		Piercing:  cfg.ProjectilePiercing,
		Knockback: cfg.Knockback,
		SpawnedAt: now,
	}
}

// Tick advances the projectile and resolves collisions. Destruction happens
// on the first qualifying hit (unless piercing), on reaching max travel
// distance, or on the lifetime cap, whichever comes first. The owner and
// same-team characters never qualify.
func (p *Projectile) Tick(dt, now float64, arena Arena, resolver *DamageResolver, sink *EventSink) {
	if p.Expired {
		return
	}
	if now-p.SpawnedAt >= projectileLifetime {
		p.Expired = true
		return
	}

	step := p.Speed * dt
	if p.traveled+step > p.MaxDist {
		step = p.MaxDist - p.traveled
	}
	p.Pos = p.Pos.Add(p.Dir.Scale(step))
	p.traveled += step

	if arena.Blocked(p.Pos) {
		sink.Emit(Event{Kind: EvProjectileImpact, CharID: p.OwnerID, Pos: p.Pos, Dir: p.Dir})
		p.Expired = true
		return
	}

	for _, o := range arena.NearbyCharacters(p.Pos, projectileHitRadius) {
		if o.ID == p.OwnerID || !o.Alive() || o.Team == p.OwnerTeam {
			continue
		}
		if PlanarDist(p.Pos, o.Pos) > projectileHitRadius {
			continue
		}
		if p.hit != nil {
			if _, seen := p.hit[o.ID]; seen {
				continue
			}
		}
		resolver.ApplyDamage(o, p.Damage, p.OwnerID, now)
		if kb := p.Knockback; kb.Force > 0 {
			o.Knockback.Apply(p.Dir, kb.Force, kb.Duration, now)
		}
		sink.Emit(Event{Kind: EvProjectileImpact, CharID: p.OwnerID, Target: o.ID, Pos: o.Pos, Dir: p.Dir})
		if !p.Piercing {
			p.Expired = true
			return
		}
		if p.hit == nil {
			p.hit = make(map[int64]struct{})
		}
		p.hit[o.ID] = struct{}{}
	}

	if p.traveled >= p.MaxDist {
		p.Expired = true
	}
}

// Traveled reports cumulative planar distance covered.
func (p *Projectile) Traveled() float64 { return p.traveled }
