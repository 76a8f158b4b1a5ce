package combat

import "testing"

func testBlock() StatBlock {
	b := StatBlock{}
	b.Base[StatDamage] = 100
	b.Growth[StatDamage] = 10
	return b
}

func TestBaseGrowsPerLevel(t *testing.T) {
	b := testBlock()
	almostEqual(t, b.BaseAt(StatDamage, 1), 100, 1e-9, "base at level 1")
	almostEqual(t, b.BaseAt(StatDamage, 5), 140, 1e-9, "base at level 5")
}

func TestModifiersFlatAndPercent(t *testing.T) {
	b := testBlock()
	b.AddModifier(Modifier{Kind: ModifierFlat, Stat: StatDamage, Magnitude: 20})
	b.AddModifier(Modifier{Kind: ModifierPercent, Stat: StatDamage, Magnitude: 50})

	// 100 + 20 flat + 50% of base(100) = 170. Percent applies to base only.
	almostEqual(t, b.Effective(StatDamage, 1, 0), 170, 1e-9, "combined modifiers")
}

func TestPercentModifiersDoNotCompound(t *testing.T) {
	b := testBlock()
	b.AddModifier(Modifier{Kind: ModifierPercent, Stat: StatDamage, Magnitude: 50})
	b.AddModifier(Modifier{Kind: ModifierPercent, Stat: StatDamage, Magnitude: 50})

	// Two +50% stack additively against base: 100 + 100, not 100*1.5*1.5.
	almostEqual(t, b.Effective(StatDamage, 1, 0), 200, 1e-9, "additive percent stacking")
}

func TestExpiredModifierSkippedAtReadTime(t *testing.T) {
	b := testBlock()
	b.AddModifier(Modifier{Kind: ModifierFlat, Stat: StatDamage, Magnitude: 20, ExpiresAt: 5})

	almostEqual(t, b.Effective(StatDamage, 1, 4.9), 120, 1e-9, "active before expiry")
	almostEqual(t, b.Effective(StatDamage, 1, 5), 100, 1e-9, "inactive at expiry")
}

func TestPurgeDropsOnlyExpired(t *testing.T) {
	b := testBlock()
	b.AddModifier(Modifier{Kind: ModifierFlat, Stat: StatDamage, Magnitude: 20, ExpiresAt: 5})
	b.AddModifier(Modifier{Kind: ModifierFlat, Stat: StatDamage, Magnitude: 30}) // permanent
	b.AddModifier(Modifier{Kind: ModifierFlat, Stat: StatDamage, Magnitude: 40, ExpiresAt: 50})

	b.Purge(10)
	if got := b.ModifierCount(); got != 2 {
		t.Fatalf("modifiers after purge = %d, want 2", got)
	}
	almostEqual(t, b.Effective(StatDamage, 1, 10), 170, 1e-9, "survivors still apply")
}

func TestEffectiveClampsAtZero(t *testing.T) {
	b := testBlock()
	b.AddModifier(Modifier{Kind: ModifierFlat, Stat: StatDamage, Magnitude: -500})
	almostEqual(t, b.Effective(StatDamage, 1, 0), 0, 1e-9, "stats never go negative")
}

func TestModifierAffectsOnlyItsStat(t *testing.T) {
	b := testBlock()
	b.Base[StatArmor] = 50
	b.AddModifier(Modifier{Kind: ModifierPercent, Stat: StatDamage, Magnitude: 100})
	almostEqual(t, b.Effective(StatArmor, 1, 0), 50, 1e-9, "unrelated stat untouched")
}
