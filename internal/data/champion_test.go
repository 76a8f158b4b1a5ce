package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/connorfinan79/Arena/internal/combat"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const championYAML = `
champions:
  - id: warrior
    name: Warrior
    attack_config: sword
    xp_reward: 120
    stats:
      max_health: 650
      max_health_growth: 90
      damage: 62
      damage_growth: 4.5
      attack_speed: 0.75
      attack_range: 2.2
      armor: 35
      armor_growth: 3.8
      move_speed: 5.4
    abilities:
      - slot: 0
        stat: damage
        kind: percent
        magnitude: 25
        duration: 6
        cooldown: 14
      - slot: 3
        stat: armor
        kind: flat
        magnitude: 40
        duration: 5
        cooldown: 18
`

func TestLoadChampionTable(t *testing.T) {
	tbl, err := LoadChampionTable(writeTemp(t, "champions.yaml", championYAML))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Count() != 1 {
		t.Fatalf("count = %d, want 1", tbl.Count())
	}
	ch := tbl.Get("warrior")
	if ch == nil {
		t.Fatal("warrior template missing")
	}

	b := ch.NewStatBlock()
	if got := b.BaseAt(combat.StatMaxHealth, 1); got != 650 {
		t.Fatalf("base health = %v, want 650", got)
	}
	if got := b.BaseAt(combat.StatMaxHealth, 2); got != 740 {
		t.Fatalf("health at level 2 = %v, want 740", got)
	}
	if got := b.BaseAt(combat.StatAttackRange, 5); got != 2.2 {
		t.Fatalf("attack range must not grow, got %v", got)
	}

	if ch.Abilities[0] == nil || ch.Abilities[0].Kind != combat.ModifierPercent {
		t.Fatal("slot 0 ability should be a percent modifier")
	}
	if ch.Abilities[1] != nil || ch.Abilities[2] != nil {
		t.Fatal("unconfigured slots must stay nil")
	}
	if ch.Abilities[3] == nil || ch.Abilities[3].Stat != combat.StatArmor {
		t.Fatal("slot 3 ability should buff armor")
	}

	if tbl.Get("nope") != nil {
		t.Fatal("unknown champion must return nil")
	}
}

func TestLoadChampionTableRejectsBadAbility(t *testing.T) {
	bad := `
champions:
  - id: x
    name: X
    stats: {max_health: 100}
    abilities:
      - slot: 9
        stat: damage
`
	if _, err := LoadChampionTable(writeTemp(t, "bad.yaml", bad)); err == nil {
		t.Fatal("ability slot out of range must fail the load")
	}

	bad2 := `
champions:
  - id: x
    name: X
    stats: {max_health: 100}
    abilities:
      - slot: 0
        stat: charisma
`
	if _, err := LoadChampionTable(writeTemp(t, "bad2.yaml", bad2)); err == nil {
		t.Fatal("unknown stat name must fail the load")
	}
}
