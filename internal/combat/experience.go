package combat

import "math"

// ExperienceLedger accumulates XP and drives level transitions. The required
// XP for level L is base * scaling^(L-1): geometric growth.
type ExperienceLedger struct {
	ch       *Character
	base     float64
	scaling  float64
	maxLevel int

	xp float64
}

// XP reports progress toward the next level.
func (l *ExperienceLedger) XP() float64 { return l.xp }

// Threshold is the XP required to advance from the given level.
func (l *ExperienceLedger) Threshold(level int) float64 {
	return l.base * math.Pow(l.scaling, float64(level-1))
}

// AtMaxLevel reports whether further grants are rejected.
func (l *ExperienceLedger) AtMaxLevel() bool {
	return l.ch.Level >= l.maxLevel
}

// AddExperience grants XP, cascading through as many level-ups as the amount
// covers in a single call. Each level-up recalculates stats implicitly (they
// derive from Level) and restores health to the new maximum. Grants at max
// level are rejected outright. A dead earner still banks XP and levels (a
// projectile can score after its owner died) but the heal is withheld:
// only Respawn brings a character back.
func (l *ExperienceLedger) AddExperience(amount float64, now float64) {
	if amount <= 0 || l.AtMaxLevel() {
		return
	}
	l.xp += amount
	for !l.AtMaxLevel() {
		need := l.Threshold(l.ch.Level)
		if l.xp < need {
			break
		}
		l.xp -= need
		l.ch.Level++
		if !l.ch.Dead {
			l.ch.Health = l.ch.MaxHealth(now)
		}
		l.ch.emit(Event{Kind: EvLevelUp, CharID: l.ch.ID, Value: float64(l.ch.Level)})
		if l.ch.OnLevelUp != nil {
			l.ch.OnLevelUp(l.ch)
		}
	}
}

// Restore reloads persisted progress without firing level-up effects.
func (l *ExperienceLedger) Restore(level int, xp float64) {
	if level < 1 {
		level = 1
	}
	if level > l.maxLevel {
		level = l.maxLevel
	}
	l.ch.Level = level
	l.xp = xp
}
