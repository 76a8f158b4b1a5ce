package data

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/connorfinan79/Arena/internal/combat"
)

// AttackTable maps attack profile ID to an immutable combat.AttackConfig.
type AttackTable struct {
	attacks map[string]combat.AttackConfig
}

// Get returns an attack config by ID. Unknown IDs fall back to the safe
// default (plain melee, no effects) so a misconfigured champion still ticks.
func (t *AttackTable) Get(id string) combat.AttackConfig {
	if cfg, ok := t.attacks[id]; ok {
		return cfg
	}
	return combat.DefaultAttackConfig()
}

// Count returns the number of loaded attack profiles.
func (t *AttackTable) Count() int {
	return len(t.attacks)
}

// --- YAML loading ---

type attackProjectileEntry struct {
	Speed       float64 `yaml:"speed"`
	MaxDistance float64 `yaml:"max_distance"`
	Piercing    bool    `yaml:"piercing"`
}

type attackKnockbackEntry struct {
	Force    float64 `yaml:"force"`
	Duration float64 `yaml:"duration"`
}

type attackEntry struct {
	ID              string                `yaml:"id"`
	Kind            string                `yaml:"kind"` // "melee" or "ranged"
	ArcHalfAngleDeg float64               `yaml:"arc_half_angle_deg"`
	MaxTargets      int                   `yaml:"max_targets"`
	Projectile      attackProjectileEntry `yaml:"projectile"`
	Knockback       attackKnockbackEntry  `yaml:"knockback"`
}

type attackFile struct {
	Attacks []attackEntry `yaml:"attacks"`
}

// LoadAttackTable loads attack profiles from YAML.
func LoadAttackTable(path string) (*AttackTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attacks: %w", err)
	}
	var f attackFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse attacks: %w", err)
	}
	t := &AttackTable{attacks: make(map[string]combat.AttackConfig, len(f.Attacks))}
	for _, e := range f.Attacks {
		cfg := combat.AttackConfig{
			Name:         e.ID,
			ArcHalfAngle: e.ArcHalfAngleDeg * math.Pi / 180,
			MaxTargets:   e.MaxTargets,
			Knockback: combat.KnockbackSpec{
				Force:    e.Knockback.Force,
				Duration: e.Knockback.Duration,
			},
		}
		switch e.Kind {
		case "ranged":
			cfg.Kind = combat.AttackRanged
			cfg.ProjectileSpeed = e.Projectile.Speed
			cfg.ProjectileMaxDist = e.Projectile.MaxDistance
			cfg.ProjectilePiercing = e.Projectile.Piercing
		case "melee", "":
			cfg.Kind = combat.AttackMelee
			if cfg.MaxTargets <= 0 {
				cfg.MaxTargets = 1
			}
		default:
			return nil, fmt.Errorf("attack %s: unknown kind %q", e.ID, e.Kind)
		}
		t.attacks[e.ID] = cfg
	}
	return t, nil
}
