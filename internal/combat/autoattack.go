package combat

import "sort"

// AutoAttackController decides, once per tick, whether the character fires an
// auto attack. Priority order: manual target, then attack-move engagement,
// then autonomous acquisition (AI characters only). Rate limiting compares
// sim time against the last fire plus the current attack interval; attack
// speed is re-read from effective stats on every check.
type AutoAttackController struct {
	ch         *Character
	lastAttack float64
}

// LastAttackAt reports the sim time of the most recent fire.
func (a *AutoAttackController) LastAttackAt() float64 { return a.lastAttack }

func (a *AutoAttackController) Tick(now float64) {
	c := a.ch
	if c.Dead || c.arena == nil {
		return
	}
	// Knockback suspends attacking; it resumes the tick after the override ends.
	if c.Knockback.Active(now) {
		return
	}

	attackRange := c.Effective(StatAttackRange, now)

	// 1. Manual target.
	if t := c.Targeting.target; t != nil && t.Alive() {
		if c.Targeting.attackAssigned && PlanarDist(c.Pos, t.Pos) <= attackRange {
			a.tryFire(t, now)
		}
		return
	}

	// 2. Attack-move: engage the nearest live enemy inside the engage radius
	// once it is within attack range.
	if c.Targeting.attackMove {
		if t := a.nearestEnemy(c.Targeting.engageRadius); t != nil &&
			PlanarDist(c.Pos, t.Pos) <= attackRange {
			a.tryFire(t, now)
		}
		return
	}

	// 3. Autonomous: AI characters swing at whatever hostile wanders into range.
	if c.Control == AIControlled {
		if t := a.nearestEnemy(attackRange); t != nil {
			a.tryFire(t, now)
		}
	}
}

// nearestEnemy scans radius for the closest live opposing character.
func (a *AutoAttackController) nearestEnemy(radius float64) *Character {
	c := a.ch
	if radius <= 0 {
		return nil
	}
	var best *Character
	bestDist := radius
	for _, o := range c.arena.NearbyCharacters(c.Pos, radius) {
		if o == c || !o.Alive() || !c.isEnemyOf(o) {
			continue
		}
		if d := PlanarDist(c.Pos, o.Pos); d <= bestDist {
			bestDist = d
			best = o
		}
	}
	return best
}

// tryFire fires at the target if the attack cooldown has elapsed.
func (a *AutoAttackController) tryFire(target *Character, now float64) {
	c := a.ch
	aps := c.Effective(StatAttackSpeed, now)
	if aps <= 0 {
		return
	}
	if now < a.lastAttack+1/aps {
		return
	}
	a.lastAttack = now

	dir := target.Pos.Sub(c.Pos).PlanarNorm()
	if dir != (Vec3{}) {
		c.Yaw = dir.Yaw()
	}
	// Animation + sound hand-off.
	c.emit(Event{Kind: EvAttackFired, CharID: c.ID, Target: target.ID, Pos: c.Pos, Dir: dir})

	switch c.Attack.Kind {
	case AttackRanged:
		a.fireRanged(target, dir, now)
	default:
		a.fireMelee(now)
	}
}

// fireRanged launches a projectile toward the target's position at fire time.
// The projectile does not track; a moving target can sidestep it.
func (a *AutoAttackController) fireRanged(target *Character, dir Vec3, now float64) {
	c := a.ch
	if dir == (Vec3{}) {
		dir = YawDir(c.Yaw)
	}
	p := NewProjectile(c, dir, c.Effective(StatDamage, now), now)
	c.arena.SpawnProjectile(p)
	c.emit(Event{Kind: EvProjectileSpawn, CharID: c.ID, Pos: p.Pos, Dir: dir})
}

// fireMelee applies damage to the nearest valid targets within the configured
// arc about the facing direction, up to the cleave count, all in this tick.
// Validity is team-based friend-or-foe only, never the manual-target
// relation, so a same-team manual target can never leak allies into the arc.
func (a *AutoAttackController) fireMelee(now float64) {
	c := a.ch
	attackRange := c.Effective(StatAttackRange, now)
	maxTargets := c.Attack.MaxTargets
	if maxTargets <= 0 {
		maxTargets = 1
	}

	var hits []*Character
	for _, o := range c.arena.NearbyCharacters(c.Pos, attackRange) {
		if o == c || !o.Alive() || !c.isEnemyOf(o) {
			continue
		}
		if PlanarDist(c.Pos, o.Pos) > attackRange {
			continue
		}
		to := o.Pos.Sub(c.Pos).PlanarNorm()
		if to == (Vec3{}) {
			// Exactly on top of the attacker: inside any arc.
			hits = append(hits, o)
			continue
		}
		off := normAngle(to.Yaw() - c.Yaw)
		if off < 0 {
			off = -off
		}
		if off <= c.Attack.ArcHalfAngle {
			hits = append(hits, o)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		return PlanarDist(c.Pos, hits[i].Pos) < PlanarDist(c.Pos, hits[j].Pos)
	})
	if len(hits) > maxTargets {
		hits = hits[:maxTargets]
	}

	dmg := c.Effective(StatDamage, now)
	for _, t := range hits {
		dir := t.Pos.Sub(c.Pos).PlanarNorm()
		c.resolver.ApplyDamage(t, dmg, c.ID, now)
		if kb := c.Attack.Knockback; kb.Force > 0 {
			t.Knockback.Apply(dir, kb.Force, kb.Duration, now)
		}
		c.emit(Event{Kind: EvImpact, CharID: c.ID, Target: t.ID, Pos: t.Pos, Dir: dir})
	}
}
