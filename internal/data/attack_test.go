package data

import (
	"math"
	"testing"

	"github.com/connorfinan79/Arena/internal/combat"
)

const attackYAML = `
attacks:
  - id: sword
    kind: melee
    arc_half_angle_deg: 60
    max_targets: 3
  - id: bow
    kind: ranged
    projectile:
      speed: 18
      max_distance: 20
      piercing: true
    knockback:
      force: 6
      duration: 0.25
`

func TestLoadAttackTable(t *testing.T) {
	tbl, err := LoadAttackTable(writeTemp(t, "attacks.yaml", attackYAML))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Count() != 2 {
		t.Fatalf("count = %d, want 2", tbl.Count())
	}

	sword := tbl.Get("sword")
	if sword.Kind != combat.AttackMelee || sword.MaxTargets != 3 {
		t.Fatalf("sword = %+v, want melee cleave of 3", sword)
	}
	wantArc := 60 * math.Pi / 180
	if math.Abs(sword.ArcHalfAngle-wantArc) > 1e-9 {
		t.Fatalf("arc = %v rad, want %v", sword.ArcHalfAngle, wantArc)
	}

	bow := tbl.Get("bow")
	if bow.Kind != combat.AttackRanged || !bow.ProjectilePiercing {
		t.Fatalf("bow = %+v, want piercing ranged", bow)
	}
	if bow.Knockback.Force != 6 {
		t.Fatalf("bow knockback force = %v, want 6", bow.Knockback.Force)
	}
}

func TestAttackTableUnknownFallsBackToDefault(t *testing.T) {
	tbl, err := LoadAttackTable(writeTemp(t, "attacks.yaml", attackYAML))
	if err != nil {
		t.Fatal(err)
	}
	got := tbl.Get("missing")
	want := combat.DefaultAttackConfig()
	if got.Kind != want.Kind || got.MaxTargets != want.MaxTargets {
		t.Fatalf("fallback = %+v, want the safe default", got)
	}
}

func TestLoadAttackTableRejectsUnknownKind(t *testing.T) {
	bad := `
attacks:
  - id: x
    kind: psychic
`
	if _, err := LoadAttackTable(writeTemp(t, "bad.yaml", bad)); err == nil {
		t.Fatal("unknown attack kind must fail the load")
	}
}
