package data

import "testing"

const arenaYAML = `
arena:
  bounds: {min_x: -40, min_z: -40, max_x: 40, max_z: 40}
  cell_size: 16
  team_spawns:
    - team: 1
      points:
        - {x: -34, z: -34}
        - {x: -31, z: -34}
    - team: 2
      points:
        - {x: 34, z: 34}
  obstacles:
    - {min_x: -6, min_z: -1.5, max_x: 6, max_z: 1.5}
  ai_spawns:
    - champion: dummy
      team: 3
      count: 2
      x: 0
      z: 24
      aggro_radius: 8
      leash_radius: 16
      respawn_delay: 20
`

func TestLoadArenaTable(t *testing.T) {
	tbl, err := LoadArenaTable(writeTemp(t, "arena.yaml", arenaYAML))
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Count() != 3 {
		t.Fatalf("spawn points = %d, want 3", tbl.Count())
	}
	if len(tbl.Obstacles) != 1 || len(tbl.AISpawns) != 1 {
		t.Fatal("obstacles and ai spawns must load")
	}
	if tbl.AISpawns[0].Count != 2 || tbl.AISpawns[0].LeashRadius != 16 {
		t.Fatalf("ai spawn = %+v", tbl.AISpawns[0])
	}

	// Spawn rotation wraps around the team's points.
	p0 := tbl.SpawnFor(1, 0)
	p2 := tbl.SpawnFor(1, 2)
	if p0 != p2 {
		t.Fatal("spawn index must wrap per team")
	}

	// Unknown team falls back to the arena center.
	center := tbl.SpawnFor(9, 0)
	if center.X != 0 || center.Z != 0 {
		t.Fatalf("fallback spawn = %v, want arena center", center)
	}
}

func TestLoadArenaTableRejectsDegenerateBounds(t *testing.T) {
	bad := `
arena:
  bounds: {min_x: 10, min_z: -40, max_x: -10, max_z: 40}
`
	if _, err := LoadArenaTable(writeTemp(t, "bad.yaml", bad)); err == nil {
		t.Fatal("inverted bounds must fail the load")
	}
}
