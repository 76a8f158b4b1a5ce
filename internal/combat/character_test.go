package combat

import "testing"

func TestRespawnOnlyFromDead(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})
	c.Health = 40

	c.Respawn(Vec3{X: 9}, 0)
	if c.Pos.X != 0 || c.Health != 40 {
		t.Fatal("respawn on a living character must be a no-op")
	}
}

func TestRespawnResetsStateAtomically(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})

	f.resolver.ApplyDamage(c, 500, 0, 1)
	if !c.Dead {
		t.Fatal("setup: character should be dead")
	}

	c.Respawn(Vec3{X: 9}, 2)
	if c.Dead {
		t.Fatal("respawn must clear the dead flag")
	}
	almostEqual(t, c.Health, 100, 1e-9, "respawn restores full health")
	if c.Pos != (Vec3{X: 9}) {
		t.Fatalf("pos = %v, want the spawn point", c.Pos)
	}
	if c.Movement.Seeking() || c.Targeting.Target() != nil {
		t.Fatal("respawn must clear transient combat state")
	}
	kinds := f.drainKinds()
	if !hasKind(kinds, EvRespawned) {
		t.Fatal("respawn event missing from sink")
	}
}

func TestOnDestroyedRearmsAcrossDeaths(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})

	var fired int
	c.OnDestroyed = func(*Character) { fired++ }

	f.resolver.ApplyDamage(c, 500, 0, 1)
	c.Respawn(Vec3{}, 2)
	f.resolver.ApplyDamage(c, 500, 0, 3)
	if fired != 2 {
		t.Fatalf("OnDestroyed fired %d times, want once per death", fired)
	}
}

func TestNormalizedMoveSpeed(t *testing.T) {
	f := newFixture()
	c := f.addCharacter(1, 1, Vec3{})

	c.Movement.MoveTo(Vec3{X: 100})
	c.Movement.Tick(0.05, 0)
	almostEqual(t, c.NormalizedMoveSpeed(0), 1, 1e-9, "full stride while seeking")

	c.Movement.Stop()
	c.Movement.Tick(0.05, 0)
	almostEqual(t, c.NormalizedMoveSpeed(0), 0, 1e-9, "zero when idle")
}
