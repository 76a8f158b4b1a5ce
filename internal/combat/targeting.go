package combat

// rangeHysteresis is the fraction of attack range at which a follower stops
// moving and starts attacking. 90% rather than 100%: at the exact range
// boundary a full-range threshold would oscillate between moving and
// attacking every tick.
const rangeHysteresis = 0.9

// defaultClickTolerance is the pick radius around a primary-action point when
// resolving it against characters.
const defaultClickTolerance = 1.5

// TargetingController owns the character's single manual-target relation and
// its attack-move mode. The two are mutually exclusive, enforced here at the
// setters rather than by decision priority alone.
//
// The target reference is weak: the target lives and dies independently, so
// every use validates liveness first.
type TargetingController struct {
	ch *Character

	target       *Character
	attackMove   bool
	engageRadius float64

	// attackAssigned is the manual attack assignment: true while the follow
	// loop holds the character in attacking position.
	attackAssigned bool

	// ClickTolerance overrides the default pick radius when positive.
	ClickTolerance float64
}

func (t *TargetingController) Target() *Character    { return t.target }
func (t *TargetingController) AttackMove() bool      { return t.attackMove }
func (t *TargetingController) EngageRadius() float64 { return t.engageRadius }
func (t *TargetingController) AttackAssigned() bool  { return t.attackAssigned }

// OnPrimaryAction resolves a right-click world point: enemies take priority
// over ground. A live enemy within click tolerance becomes the manual target;
// otherwise an in-bounds point becomes a move destination; otherwise nothing
// was hit and no state changes.
func (t *TargetingController) OnPrimaryAction(point Vec3, now float64) {
	c := t.ch
	if c.Dead || c.arena == nil {
		return
	}
	tol := t.ClickTolerance
	if tol <= 0 {
		tol = defaultClickTolerance
	}
	var picked *Character
	best := tol
	for _, o := range c.arena.NearbyCharacters(point, tol) {
		if !o.Alive() || o == c || !c.isEnemyOf(o) {
			continue
		}
		if d := PlanarDist(point, o.Pos); d <= best {
			best = d
			picked = o
		}
	}
	if picked != nil {
		t.SetTarget(picked, now)
		return
	}
	if c.arena.InBounds(point) {
		t.MoveToPoint(point)
		return
	}
	c.emit(Event{Kind: EvNothingHit, CharID: c.ID, Pos: point})
}

// SetTarget stores a new manual target, clearing any prior target and
// attack-move mode, and immediately decides motion: move in when outside 90%
// of attack range, otherwise assign the attack on the spot.
func (t *TargetingController) SetTarget(target *Character, now float64) {
	c := t.ch
	if c.Dead || target == nil || !target.Alive() || target == c {
		return
	}
	t.clearTarget()
	t.attackMove = false

	t.target = target
	if PlanarDist(c.Pos, target.Pos) > rangeHysteresis*c.Effective(StatAttackRange, now) {
		c.Movement.MoveTo(target.Pos)
	} else {
		c.Movement.Stop()
		t.attackAssigned = true
	}
}

// MoveToPoint clears the current target, disables attack-move, and issues
// plain destination-seeking with a transient ground marker for presentation.
func (t *TargetingController) MoveToPoint(p Vec3) {
	c := t.ch
	if c.Dead {
		return
	}
	t.clearTarget()
	t.attackMove = false
	c.Movement.MoveTo(p)
	c.emit(Event{Kind: EvMarkerPlaced, CharID: c.ID, Pos: p})
}

// OnAttackMoveAction resolves a modifier-click against ground only: move
// toward the point while auto-engaging any enemy inside engageRadius.
// Setting attack-move clears the manual target.
func (t *TargetingController) OnAttackMoveAction(point Vec3, engageRadius float64) {
	c := t.ch
	if c.Dead || c.arena == nil || !c.arena.InBounds(point) {
		return
	}
	t.clearTarget()
	c.Movement.MoveTo(point)
	t.attackMove = true
	t.engageRadius = engageRadius
	c.emit(Event{Kind: EvMarkerPlaced, CharID: c.ID, Pos: point})
}

// Stop is unconditional: halt movement, drop the target, leave attack-move.
func (t *TargetingController) Stop() {
	t.ch.Movement.Stop()
	t.clearTarget()
	t.attackMove = false
}

// Tick runs the manual-target follow loop. Outside the 90% range threshold
// the destination is re-issued every tick so moving targets are tracked and
// the attack assignment is suspended; at or inside it, movement stops and the
// assignment is (re)asserted. Held exactly at the threshold the attacker
// keeps its last state instead of thrashing.
func (t *TargetingController) Tick(now float64) {
	c := t.ch
	if c.Dead || t.target == nil {
		return
	}
	if !t.target.Alive() {
		t.clearTarget()
		c.Movement.Stop()
		return
	}
	dist := PlanarDist(c.Pos, t.target.Pos)
	if dist > rangeHysteresis*c.Effective(StatAttackRange, now) {
		c.Movement.MoveTo(t.target.Pos)
		t.attackAssigned = false
	} else {
		c.Movement.Stop()
		t.attackAssigned = true
	}
}

func (t *TargetingController) clearTarget() {
	t.target = nil
	t.attackAssigned = false
}
