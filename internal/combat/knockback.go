package combat

// KnockbackController is a bounded-duration priority override of movement:
// while active, destination-seeking is suspended but not cleared, and the
// character is displaced along the knock direction with linearly decaying
// magnitude. On expiry normal movement resumes toward the same destination.
type KnockbackController struct {
	ch       *Character
	velocity Vec3
	endsAt   float64
	duration float64
}

// Apply (re)enters the knocked state, overwriting any in-progress knockback.
// Rejected on dead characters. No stacking: the previous velocity is gone.
func (k *KnockbackController) Apply(dir Vec3, force, duration float64, now float64) {
	if k.ch.Dead || duration <= 0 {
		return
	}
	k.velocity = dir.PlanarNorm().Scale(force)
	k.endsAt = now + duration
	k.duration = duration
	k.ch.emit(Event{Kind: EvKnockback, CharID: k.ch.ID, Dir: dir.PlanarNorm(), Value: force})
}

// Active reports whether the override is in effect.
func (k *KnockbackController) Active(now float64) bool {
	return now < k.endsAt
}

// Tick displaces the character by velocity scaled by the remaining fraction
// of the knockback window, decaying linearly to zero at endsAt.
func (k *KnockbackController) Tick(dt, now float64) {
	c := k.ch
	c.planarSpeed = 0
	if c.Dead {
		k.clear()
		return
	}
	applyGravity(c, dt)
	if !k.Active(now) {
		k.clear()
		return
	}
	rem := (k.endsAt - now) / k.duration
	if rem < 0 {
		rem = 0
	} else if rem > 1 {
		rem = 1
	}
	step := k.velocity.Scale(rem * dt)
	c.Pos = c.Pos.Add(step)
	c.planarSpeed = k.velocity.PlanarLen() * rem
}

func (k *KnockbackController) clear() {
	k.velocity = Vec3{}
	k.endsAt = 0
	k.duration = 0
}
