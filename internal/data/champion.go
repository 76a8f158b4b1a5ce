package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/connorfinan79/Arena/internal/combat"
)

// Ability is one of a champion's four self-buff slots: an augment applied on
// activation, gated by a per-slot cooldown.
type Ability struct {
	Stat      combat.Stat
	Kind      combat.ModifierKind
	Magnitude float64
	Duration  float64
	Cooldown  float64
}

// Champion is an immutable character template: base stats, per-level growth,
// attack profile reference, and ability kit.
type Champion struct {
	ID           string
	Name         string
	AttackConfig string
	XPReward     float64

	base   [6]float64
	growth [6]float64

	Abilities [4]*Ability
}

// NewStatBlock builds a fresh stat block seeded from the template.
func (c *Champion) NewStatBlock() combat.StatBlock {
	b := combat.StatBlock{}
	copy(b.Base[:], c.base[:])
	copy(b.Growth[:], c.growth[:])
	return b
}

// ChampionTable maps champion ID to template.
type ChampionTable struct {
	champions map[string]*Champion
}

// Get returns a champion template, or nil if unknown.
func (t *ChampionTable) Get(id string) *Champion {
	return t.champions[id]
}

// Count returns the number of loaded templates.
func (t *ChampionTable) Count() int {
	return len(t.champions)
}

// --- YAML loading ---

type championStatsEntry struct {
	MaxHealth         float64 `yaml:"max_health"`
	MaxHealthGrowth   float64 `yaml:"max_health_growth"`
	Damage            float64 `yaml:"damage"`
	DamageGrowth      float64 `yaml:"damage_growth"`
	AttackSpeed       float64 `yaml:"attack_speed"`
	AttackSpeedGrowth float64 `yaml:"attack_speed_growth"`
	AttackRange       float64 `yaml:"attack_range"`
	Armor             float64 `yaml:"armor"`
	ArmorGrowth       float64 `yaml:"armor_growth"`
	MoveSpeed         float64 `yaml:"move_speed"`
}

type championAbilityEntry struct {
	Slot      int     `yaml:"slot"`
	Stat      string  `yaml:"stat"`
	Kind      string  `yaml:"kind"` // "flat" or "percent"
	Magnitude float64 `yaml:"magnitude"`
	Duration  float64 `yaml:"duration"`
	Cooldown  float64 `yaml:"cooldown"`
}

type championEntry struct {
	ID           string                 `yaml:"id"`
	Name         string                 `yaml:"name"`
	AttackConfig string                 `yaml:"attack_config"`
	XPReward     float64                `yaml:"xp_reward"`
	Stats        championStatsEntry     `yaml:"stats"`
	Abilities    []championAbilityEntry `yaml:"abilities"`
}

type championFile struct {
	Champions []championEntry `yaml:"champions"`
}

var statNames = map[string]combat.Stat{
	"max_health":   combat.StatMaxHealth,
	"damage":       combat.StatDamage,
	"attack_speed": combat.StatAttackSpeed,
	"attack_range": combat.StatAttackRange,
	"armor":        combat.StatArmor,
	"move_speed":   combat.StatMoveSpeed,
}

// LoadChampionTable loads champion templates from YAML.
func LoadChampionTable(path string) (*ChampionTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read champions: %w", err)
	}
	var f championFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse champions: %w", err)
	}
	t := &ChampionTable{champions: make(map[string]*Champion, len(f.Champions))}
	for _, e := range f.Champions {
		ch := &Champion{
			ID:           e.ID,
			Name:         e.Name,
			AttackConfig: e.AttackConfig,
			XPReward:     e.XPReward,
		}
		ch.base[combat.StatMaxHealth] = e.Stats.MaxHealth
		ch.base[combat.StatDamage] = e.Stats.Damage
		ch.base[combat.StatAttackSpeed] = e.Stats.AttackSpeed
		ch.base[combat.StatAttackRange] = e.Stats.AttackRange
		ch.base[combat.StatArmor] = e.Stats.Armor
		ch.base[combat.StatMoveSpeed] = e.Stats.MoveSpeed
		ch.growth[combat.StatMaxHealth] = e.Stats.MaxHealthGrowth
		ch.growth[combat.StatDamage] = e.Stats.DamageGrowth
		ch.growth[combat.StatAttackSpeed] = e.Stats.AttackSpeedGrowth
		ch.growth[combat.StatArmor] = e.Stats.ArmorGrowth

		for _, ae := range e.Abilities {
			if ae.Slot < 0 || ae.Slot > 3 {
				return nil, fmt.Errorf("champion %s: ability slot %d out of range", e.ID, ae.Slot)
			}
			stat, ok := statNames[ae.Stat]
			if !ok {
				return nil, fmt.Errorf("champion %s: unknown stat %q", e.ID, ae.Stat)
			}
			kind := combat.ModifierFlat
			if ae.Kind == "percent" {
				kind = combat.ModifierPercent
			}
			ch.Abilities[ae.Slot] = &Ability{
				Stat:      stat,
				Kind:      kind,
				Magnitude: ae.Magnitude,
				Duration:  ae.Duration,
				Cooldown:  ae.Cooldown,
			}
		}
		t.champions[e.ID] = ch
	}
	return t, nil
}
