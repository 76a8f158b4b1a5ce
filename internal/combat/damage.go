package combat

// DamageResolver applies armor mitigation, clamps health, and drives the
// death pipeline. One resolver serves the whole match.
type DamageResolver struct {
	// Find resolves a character ID; may return nil when the attacker is gone.
	Find func(id int64) *Character
	Sink *EventSink
	// OnDeath is the death-consequence hook, invoked exactly once per death
	// with the attacker (nil when unknown). Wired to bus emission and the
	// kill ledger outside the core.
	OnDeath func(victim, attacker *Character)
}

// Mitigate applies the diminishing-returns armor curve. Armor has no cap;
// the reduction approaches but never reaches 100%.
func Mitigate(raw, armor float64) float64 {
	if armor < 0 {
		armor = 0
	}
	return raw * (1 - armor/(armor+100))
}

// ApplyDamage resolves raw damage against the target. A dead target is a
// guaranteed no-op: health does not change and no hook re-fires.
func (r *DamageResolver) ApplyDamage(target *Character, raw float64, attackerID int64, now float64) {
	if target == nil || target.Dead || raw <= 0 {
		return
	}
	mitigated := Mitigate(raw, target.Effective(StatArmor, now))
	target.Health -= mitigated
	target.LastDamagedAt = now
	if target.Health > 0 {
		return
	}
	target.Health = 0
	r.kill(target, attackerID, now)
}

// Heal restores health up to the effective maximum. Rejected on the dead:
// healing never resurrects.
func (r *DamageResolver) Heal(target *Character, amount float64, now float64) {
	if target == nil || target.Dead || amount <= 0 {
		return
	}
	target.Health += amount
	if max := target.MaxHealth(now); target.Health > max {
		target.Health = max
	}
}

// kill transitions the target to dead exactly once: the alive flag drops,
// the death animation hand-off fires, the destruction notification fires,
// the killer's ledger is credited, and the death hook runs.
func (r *DamageResolver) kill(target *Character, attackerID int64, now float64) {
	target.Dead = true
	target.Movement.Stop()
	target.Knockback.clear()
	target.Targeting.Stop()
	if r.Sink != nil {
		r.Sink.Emit(Event{Kind: EvDied, CharID: target.ID, Pos: target.Pos})
	}
	target.notifyDestroyed()

	var attacker *Character
	if r.Find != nil && attackerID != 0 {
		attacker = r.Find(attackerID)
	}
	if attacker != nil && attacker.Ledger != nil && target.XPReward > 0 {
		attacker.Ledger.AddExperience(target.XPReward, now)
	}
	if r.OnDeath != nil {
		r.OnDeath(target, attacker)
	}
}
