package combat

import "testing"

// stubArena is a minimal Arena for controller tests: a flat 100x100 floor
// centered on the origin with a brute-force character scan.
type stubArena struct {
	chars       []*Character
	projectiles []*Projectile
	blockedFn   func(Vec3) bool
}

func (a *stubArena) NearbyCharacters(pos Vec3, radius float64) []*Character {
	var out []*Character
	for _, c := range a.chars {
		if PlanarDist(pos, c.Pos) <= radius {
			out = append(out, c)
		}
	}
	return out
}

func (a *stubArena) InBounds(p Vec3) bool {
	return p.X >= -50 && p.X <= 50 && p.Z >= -50 && p.Z <= 50
}

func (a *stubArena) Blocked(p Vec3) bool {
	if !a.InBounds(p) {
		return true
	}
	if a.blockedFn != nil {
		return a.blockedFn(p)
	}
	return false
}

func (a *stubArena) SpawnProjectile(p *Projectile) {
	p.ID = int64(len(a.projectiles) + 1)
	a.projectiles = append(a.projectiles, p)
}

// fixture bundles an arena, sink, and resolver with characters pre-bound.
type fixture struct {
	arena    *stubArena
	sink     *EventSink
	resolver *DamageResolver
}

func newFixture() *fixture {
	f := &fixture{
		arena: &stubArena{},
		sink:  NewEventSink(),
	}
	f.resolver = &DamageResolver{
		Find: func(id int64) *Character {
			for _, c := range f.arena.chars {
				if c.ID == id {
					return c
				}
			}
			return nil
		},
		Sink: f.sink,
	}
	return f
}

// addCharacter creates a level-1 character with flat, convenient stats and
// binds it into the fixture.
func (f *fixture) addCharacter(id int64, team int16, pos Vec3) *Character {
	c := NewCharacter(id, "test", team, PlayerControlled, pos)
	c.Stats.Base = [statCount]float64{
		StatMaxHealth:   100,
		StatDamage:      10,
		StatAttackSpeed: 1, // one attack per second
		StatAttackRange: 5,
		StatArmor:       0,
		StatMoveSpeed:   4,
	}
	c.Health = 100
	c.Bind(f.arena, f.sink, f.resolver)
	f.arena.chars = append(f.arena.chars, c)
	return c
}

// drainKinds returns the kinds of all pending sink events, in order.
func (f *fixture) drainKinds() []EventKind {
	evs := f.sink.Drain()
	kinds := make([]EventKind, len(evs))
	for i, ev := range evs {
		kinds[i] = ev.Kind
	}
	return kinds
}

func hasKind(kinds []EventKind, k EventKind) bool {
	for _, got := range kinds {
		if got == k {
			return true
		}
	}
	return false
}

func almostEqual(t *testing.T, got, want, eps float64, label string) {
	t.Helper()
	if got < want-eps || got > want+eps {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
}
