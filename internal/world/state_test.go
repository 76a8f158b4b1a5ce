package world

import (
	"testing"

	"github.com/connorfinan79/Arena/internal/combat"
)

func testState() *State {
	return NewState(
		Bounds{MinX: -40, MinZ: -40, MaxX: 40, MaxZ: 40},
		[]AABB{{MinX: -5, MinZ: -5, MaxX: 5, MaxZ: 5}},
		16,
	)
}

func addChar(s *State, team int16, pos combat.Vec3) *combat.Character {
	c := combat.NewCharacter(s.NextCharID(), "c", team, combat.PlayerControlled, pos)
	s.Add(c)
	return c
}

func TestStateClock(t *testing.T) {
	s := testState()
	s.Advance(0.05)
	s.Advance(0.05)
	if s.Tick() != 2 {
		t.Fatalf("tick = %d, want 2", s.Tick())
	}
	if got := s.Now(); got < 0.0999 || got > 0.1001 {
		t.Fatalf("now = %v, want 0.1", got)
	}
}

func TestNearbyCharactersDeterministicOrder(t *testing.T) {
	s := testState()
	addChar(s, 1, combat.Vec3{X: 12})
	addChar(s, 1, combat.Vec3{X: 10})
	addChar(s, 1, combat.Vec3{X: 11})

	got := s.NearbyCharacters(combat.Vec3{X: 11}, 5)
	if len(got) != 3 {
		t.Fatalf("nearby count = %d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatal("scan order must be sorted by ID")
		}
	}
}

func TestNearbyCharactersPreciseRadius(t *testing.T) {
	s := testState()
	addChar(s, 1, combat.Vec3{X: 10})
	in := s.NearbyCharacters(combat.Vec3{}, 9)
	if len(in) != 0 {
		t.Fatal("character outside the precise radius must be filtered")
	}
}

func TestBlockedCombinesBoundsAndObstacles(t *testing.T) {
	s := testState()
	if !s.Blocked(combat.Vec3{X: 0, Z: 0}) {
		t.Fatal("point inside an obstacle must be blocked")
	}
	if !s.Blocked(combat.Vec3{X: 100}) {
		t.Fatal("out of bounds counts as blocked")
	}
	if s.Blocked(combat.Vec3{X: 20}) {
		t.Fatal("open floor must not be blocked")
	}
	if s.InBounds(combat.Vec3{X: 100}) {
		t.Fatal("bounds check should fail outside the floor")
	}
}

func TestSessionAttachment(t *testing.T) {
	s := testState()
	c := addChar(s, 1, combat.Vec3{})
	s.AttachSession(7, c.ID)

	if s.GetBySession(7) != c {
		t.Fatal("session lookup should resolve the character")
	}
	s.Remove(c.ID)
	if s.GetBySession(7) != nil {
		t.Fatal("removal must sever the session index")
	}
	if s.GetByID(c.ID) != nil {
		t.Fatal("removal must drop the character")
	}
}

func TestSpawnProjectileAssignsIDs(t *testing.T) {
	s := testState()
	c := addChar(s, 1, combat.Vec3{X: 20})
	c.Attack = combat.AttackConfig{Kind: combat.AttackRanged, ProjectileSpeed: 10, ProjectileMaxDist: 20}

	p1 := combat.NewProjectile(c, combat.Vec3{X: 1}, 10, 0)
	p2 := combat.NewProjectile(c, combat.Vec3{X: 1}, 10, 0)
	s.SpawnProjectile(p1)
	s.SpawnProjectile(p2)
	if p1.ID == 0 || p1.ID == p2.ID {
		t.Fatalf("projectile IDs = %d, %d, want distinct nonzero", p1.ID, p2.ID)
	}
}

func TestCompactProjectilesDropsExpired(t *testing.T) {
	s := testState()
	c := addChar(s, 1, combat.Vec3{X: 20})
	c.Attack = combat.AttackConfig{Kind: combat.AttackRanged, ProjectileSpeed: 10, ProjectileMaxDist: 20}

	p1 := combat.NewProjectile(c, combat.Vec3{X: 1}, 10, 0)
	p2 := combat.NewProjectile(c, combat.Vec3{X: 1}, 10, 0)
	s.SpawnProjectile(p1)
	s.SpawnProjectile(p2)
	p1.Expired = true
	s.CompactProjectiles()

	if len(s.Projectiles()) != 1 || s.Projectiles()[0] != p2 {
		t.Fatal("compact must keep only live projectiles")
	}
}
