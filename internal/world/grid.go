package world

import (
	"math"

	"github.com/connorfinan79/Arena/internal/combat"
)

// Grid is a cell-based spatial index over character positions, used for melee
// arc scans, attack-move engagement, AI acquisition, and projectile collision.
// Cell size is chosen near the largest common query radius so most queries
// touch a 3x3 neighbourhood. Accessed only from the game loop goroutine.
type Grid struct {
	cellSize float64
	cells    map[cellKey]map[int64]struct{}
	at       map[int64]cellKey // last known cell per character
}

type cellKey struct {
	cx, cy int32
}

func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 16
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[int64]struct{}),
		at:       make(map[int64]cellKey),
	}
}

func (g *Grid) key(p combat.Vec3) cellKey {
	return cellKey{
		cx: int32(math.Floor(p.X / g.cellSize)),
		cy: int32(math.Floor(p.Z / g.cellSize)),
	}
}

// Add places a character into the grid.
func (g *Grid) Add(id int64, p combat.Vec3) {
	k := g.key(p)
	cell := g.cells[k]
	if cell == nil {
		cell = make(map[int64]struct{})
		g.cells[k] = cell
	}
	cell[id] = struct{}{}
	g.at[id] = k
}

// Remove takes a character out of the grid.
func (g *Grid) Remove(id int64) {
	k, ok := g.at[id]
	if !ok {
		return
	}
	delete(g.at, id)
	cell := g.cells[k]
	if cell != nil {
		delete(cell, id)
		if len(cell) == 0 {
			delete(g.cells, k)
		}
	}
}

// Refresh updates a character's cell after it moved.
func (g *Grid) Refresh(id int64, p combat.Vec3) {
	newK := g.key(p)
	oldK, ok := g.at[id]
	if ok && oldK == newK {
		return
	}
	g.Remove(id)
	g.Add(id, p)
}

// Nearby returns the IDs in every cell overlapping the radius around p.
// Coarse: callers do precise distance filtering.
func (g *Grid) Nearby(p combat.Vec3, radius float64) []int64 {
	span := int32(math.Ceil(radius/g.cellSize)) + 1
	center := g.key(p)
	var out []int64
	for dx := -span; dx <= span; dx++ {
		for dy := -span; dy <= span; dy++ {
			k := cellKey{cx: center.cx + dx, cy: center.cy + dy}
			for id := range g.cells[k] {
				out = append(out, id)
			}
		}
	}
	return out
}
