package combat

import "testing"

func TestKnockbackDisplacesAndDecays(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})

	c.Knockback.Apply(Vec3{X: 1}, 10, 0.5, 0)
	if !c.Knockback.Active(0) {
		t.Fatal("knockback should be active immediately after apply")
	}

	c.Knockback.Tick(0.1, 0) // full strength at t=0
	step1 := c.Pos.X
	almostEqual(t, step1, 1.0, 1e-9, "first displacement")

	c.Knockback.Tick(0.1, 0.25) // half strength at the midpoint
	step2 := c.Pos.X - step1
	almostEqual(t, step2, 0.5, 1e-9, "midpoint displacement")

	if c.Knockback.Active(0.5) {
		t.Fatal("knockback must expire at the end of its window")
	}
}

func TestKnockbackSuspendsButPreservesDestination(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})

	c.Movement.MoveTo(Vec3{Z: 10})
	c.Knockback.Apply(Vec3{X: 1}, 10, 0.5, 0)

	// Movement is not cleared, only overridden; after expiry the seeker
	// resumes toward the same point.
	if !c.Movement.Seeking() {
		t.Fatal("knockback must not clear the movement destination")
	}
	if got := c.Movement.Destination(); got != (Vec3{Z: 10}) {
		t.Fatalf("destination = %v, want preserved", got)
	}
}

func TestKnockbackOverwritesNoStacking(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})

	c.Knockback.Apply(Vec3{X: 1}, 10, 0.5, 0)
	c.Knockback.Apply(Vec3{Z: 1}, 4, 0.5, 0)

	c.Knockback.Tick(0.1, 0)
	if c.Pos.X != 0 {
		t.Fatal("second apply must fully replace the first velocity")
	}
	almostEqual(t, c.Pos.Z, 0.4, 1e-9, "displacement from replacing knockback")
}

func TestKnockbackRejectedOnDead(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})
	c.Dead = true

	c.Knockback.Apply(Vec3{X: 1}, 10, 0.5, 0)
	if c.Knockback.Active(0) {
		t.Fatal("dead characters cannot be knocked back")
	}
}

func TestKnockbackEmitsEvent(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})

	c.Knockback.Apply(Vec3{X: 1}, 10, 0.5, 0)
	if !hasKind(f.drainKinds(), EvKnockback) {
		t.Fatal("expected knockback event in sink")
	}
}
