package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/connorfinan79/Arena/internal/combat"
)

// SpawnPoint is one team spawn location on the arena floor.
type SpawnPoint struct {
	Team int16
	Pos  combat.Vec3
}

// AISpawn declares a group of AI-controlled characters the arena seeds and
// keeps repopulated.
type AISpawn struct {
	Champion     string
	Team         int16
	Count        int
	Pos          combat.Vec3
	AggroRadius  float64
	LeashRadius  float64
	RespawnDelay float64 // seconds after death before the spawner refills
}

// Rect is an axis-aligned obstacle footprint.
type Rect struct {
	MinX, MinZ, MaxX, MaxZ float64
}

// ArenaTable is the static arena layout: floor bounds, obstacles, team spawn
// points, and AI spawn groups.
type ArenaTable struct {
	MinX, MinZ, MaxX, MaxZ float64
	CellSize               float64

	Obstacles []Rect
	spawns    map[int16][]SpawnPoint
	AISpawns  []AISpawn
}

// SpawnFor returns the spawn points of a team; falls back to the arena
// center when a team has none configured.
func (t *ArenaTable) SpawnFor(team int16, idx int) combat.Vec3 {
	pts := t.spawns[team]
	if len(pts) == 0 {
		return combat.Vec3{X: (t.MinX + t.MaxX) / 2, Z: (t.MinZ + t.MaxZ) / 2}
	}
	return pts[idx%len(pts)].Pos
}

// Count returns the number of configured spawn points across all teams.
func (t *ArenaTable) Count() int {
	n := 0
	for _, pts := range t.spawns {
		n += len(pts)
	}
	return n
}

// --- YAML loading ---

type arenaPointEntry struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type arenaSpawnEntry struct {
	Team   int16             `yaml:"team"`
	Points []arenaPointEntry `yaml:"points"`
}

type arenaRectEntry struct {
	MinX float64 `yaml:"min_x"`
	MinZ float64 `yaml:"min_z"`
	MaxX float64 `yaml:"max_x"`
	MaxZ float64 `yaml:"max_z"`
}

type arenaAISpawnEntry struct {
	Champion     string  `yaml:"champion"`
	Team         int16   `yaml:"team"`
	Count        int     `yaml:"count"`
	X            float64 `yaml:"x"`
	Z            float64 `yaml:"z"`
	AggroRadius  float64 `yaml:"aggro_radius"`
	LeashRadius  float64 `yaml:"leash_radius"`
	RespawnDelay float64 `yaml:"respawn_delay"`
}

type arenaFile struct {
	Arena struct {
		Bounds     arenaRectEntry      `yaml:"bounds"`
		CellSize   float64             `yaml:"cell_size"`
		TeamSpawns []arenaSpawnEntry   `yaml:"team_spawns"`
		Obstacles  []arenaRectEntry    `yaml:"obstacles"`
		AISpawns   []arenaAISpawnEntry `yaml:"ai_spawns"`
	} `yaml:"arena"`
}

// LoadArenaTable loads the arena layout from YAML.
func LoadArenaTable(path string) (*ArenaTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read arena: %w", err)
	}
	var f arenaFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse arena: %w", err)
	}
	a := f.Arena
	if a.Bounds.MaxX <= a.Bounds.MinX || a.Bounds.MaxZ <= a.Bounds.MinZ {
		return nil, fmt.Errorf("arena: degenerate bounds %+v", a.Bounds)
	}
	t := &ArenaTable{
		MinX:     a.Bounds.MinX,
		MinZ:     a.Bounds.MinZ,
		MaxX:     a.Bounds.MaxX,
		MaxZ:     a.Bounds.MaxZ,
		CellSize: a.CellSize,
		spawns:   make(map[int16][]SpawnPoint),
	}
	for _, o := range a.Obstacles {
		t.Obstacles = append(t.Obstacles, Rect(o))
	}
	for _, s := range a.TeamSpawns {
		for _, p := range s.Points {
			t.spawns[s.Team] = append(t.spawns[s.Team], SpawnPoint{
				Team: s.Team,
				Pos:  combat.Vec3{X: p.X, Z: p.Z},
			})
		}
	}
	for _, e := range a.AISpawns {
		t.AISpawns = append(t.AISpawns, AISpawn{
			Champion:     e.Champion,
			Team:         e.Team,
			Count:        e.Count,
			Pos:          combat.Vec3{X: e.X, Z: e.Z},
			AggroRadius:  e.AggroRadius,
			LeashRadius:  e.LeashRadius,
			RespawnDelay: e.RespawnDelay,
		})
	}
	return t, nil
}
