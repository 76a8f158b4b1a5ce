package combat

// Stat enumerates the attributes a character derives from its champion
// template, level, and active augments.
type Stat uint8

const (
	StatMaxHealth Stat = iota
	StatDamage
	StatAttackSpeed // attacks per second
	StatAttackRange
	StatArmor
	StatMoveSpeed

	statCount
)

// ModifierKind selects how an augment's magnitude is applied.
type ModifierKind uint8

const (
	ModifierFlat    ModifierKind = iota // added to the stat
	ModifierPercent                     // percent of the current base value
)

// Modifier is one active augment on a character. ExpiresAt is a sim-time
// deadline in seconds; zero means permanent.
type Modifier struct {
	Kind      ModifierKind
	Stat      Stat
	Magnitude float64
	ExpiresAt float64
}

func (m Modifier) expired(now float64) bool {
	return m.ExpiresAt != 0 && now >= m.ExpiresAt
}

// StatBlock computes effective stats: base + per-level growth + the sum of
// active modifiers. Percentage modifiers apply against the current base value
// only; they are never compounded against each other.
type StatBlock struct {
	Base   [statCount]float64
	Growth [statCount]float64 // added per level above 1

	mods []Modifier
}

// BaseAt is the unmodified value of a stat at the given level.
func (b *StatBlock) BaseAt(s Stat, level int) float64 {
	return b.Base[s] + b.Growth[s]*float64(level-1)
}

// Effective resolves the current value of a stat. Expired modifiers are
// skipped here and physically removed by Purge, at most once per tick.
func (b *StatBlock) Effective(s Stat, level int, now float64) float64 {
	base := b.BaseAt(s, level)
	flat, pct := 0.0, 0.0
	for _, m := range b.mods {
		if m.Stat != s || m.expired(now) {
			continue
		}
		switch m.Kind {
		case ModifierFlat:
			flat += m.Magnitude
		case ModifierPercent:
			pct += m.Magnitude
		}
	}
	v := base + flat + base*pct/100
	if v < 0 {
		v = 0
	}
	return v
}

// AddModifier attaches an augment.
func (b *StatBlock) AddModifier(m Modifier) {
	b.mods = append(b.mods, m)
}

// Purge drops expired modifiers. Called once per tick by ModifierSystem.
func (b *StatBlock) Purge(now float64) {
	kept := b.mods[:0]
	for _, m := range b.mods {
		if !m.expired(now) {
			kept = append(kept, m)
		}
	}
	b.mods = kept
}

// ModifierCount reports the number of attached modifiers, expired or not.
func (b *StatBlock) ModifierCount() int { return len(b.mods) }
