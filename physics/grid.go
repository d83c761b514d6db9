package physics

import (
	"fmt"
	"math"
)

// EntityID identifies a collidable object inside the physics package. The
// zero value is reserved as "no entity".
type EntityID uint64

type cellKey struct {
	cx, cy int
}

// SpatialHashGrid partitions world space into fixed-size square cells and
// tracks which cells each entity's AABB occupies. It is a broad-phase
// structure: Query may return entities whose boxes do not actually overlap
// the query box (same cell, different corner), but never misses one that
// does.
//
// The grid supports two usage disciplines: clear-and-reinsert every frame,
// or incremental Update on movement. A single instance must stick to one;
// CollisionSystem uses incremental updates with a quarter-cell movement
// threshold.
type SpatialHashGrid struct {
	cellSize float64
	bounds   AABB
	bounded  bool

	cells       map[cellKey]map[EntityID]struct{}
	entityCells map[EntityID][]cellKey
}

// NewSpatialHashGrid creates a grid with the given cell size. A bounds box
// with positive extents clamps cell coordinates so entities far outside the
// world cannot inflate the cell map; a zero bounds leaves the grid unbounded.
func NewSpatialHashGrid(cellSize float64, bounds AABB) (*SpatialHashGrid, error) {
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("physics: invalid cell size %v", cellSize)
	}
	return &SpatialHashGrid{
		cellSize:    cellSize,
		bounds:      bounds,
		bounded:     bounds.W > 0 && bounds.H > 0,
		cells:       make(map[cellKey]map[EntityID]struct{}),
		entityCells: make(map[EntityID][]cellKey),
	}, nil
}

// CellSize returns the configured cell edge length.
func (g *SpatialHashGrid) CellSize() float64 { return g.cellSize }

// cellRange returns the inclusive cell-coordinate span covered by box.
func (g *SpatialHashGrid) cellRange(box AABB) (minCx, minCy, maxCx, maxCy int) {
	minCx = int(math.Floor(box.X / g.cellSize))
	minCy = int(math.Floor(box.Y / g.cellSize))
	maxCx = int(math.Floor((box.X + box.W) / g.cellSize))
	maxCy = int(math.Floor((box.Y + box.H) / g.cellSize))

	if g.bounded {
		loCx := int(math.Floor(g.bounds.X / g.cellSize))
		loCy := int(math.Floor(g.bounds.Y / g.cellSize))
		hiCx := int(math.Floor((g.bounds.X + g.bounds.W) / g.cellSize))
		hiCy := int(math.Floor((g.bounds.Y + g.bounds.H) / g.cellSize))
		minCx = clampInt(minCx, loCx, hiCx)
		maxCx = clampInt(maxCx, loCx, hiCx)
		minCy = clampInt(minCy, loCy, hiCy)
		maxCy = clampInt(maxCy, loCy, hiCy)
	}
	return
}

// Insert records the entity in every cell its box spans. Inserting an id
// that is already present duplicates membership; callers use Update instead.
func (g *SpatialHashGrid) Insert(id EntityID, box AABB) {
	minCx, minCy, maxCx, maxCy := g.cellRange(box)
	keys := g.entityCells[id][:0]
	for cy := minCy; cy <= maxCy; cy++ {
		for cx := minCx; cx <= maxCx; cx++ {
			key := cellKey{cx: cx, cy: cy}
			cell, ok := g.cells[key]
			if !ok {
				cell = make(map[EntityID]struct{})
				g.cells[key] = cell
			}
			cell[id] = struct{}{}
			keys = append(keys, key)
		}
	}
	g.entityCells[id] = keys
}

// Remove drops the entity from every cell it was recorded in, deleting cells
// that become empty. No-op if the entity was never inserted.
func (g *SpatialHashGrid) Remove(id EntityID) {
	keys, ok := g.entityCells[id]
	if !ok {
		return
	}
	for _, key := range keys {
		if cell, ok := g.cells[key]; ok {
			delete(cell, id)
			if len(cell) == 0 {
				delete(g.cells, key)
			}
		}
	}
	delete(g.entityCells, id)
}

// Update re-registers the entity under its new box. Unconditional
// remove-then-insert keeps the membership invariant exact; callers bound the
// cost by only updating on significant movement.
func (g *SpatialHashGrid) Update(id EntityID, box AABB) {
	g.Remove(id)
	g.Insert(id, box)
}

// Query returns the deduplicated set of entities registered in any cell the
// box overlaps. Broad phase only: callers must narrow-phase the results.
func (g *SpatialHashGrid) Query(box AABB) map[EntityID]struct{} {
	out := make(map[EntityID]struct{})
	minCx, minCy, maxCx, maxCy := g.cellRange(box)
	for cy := minCy; cy <= maxCy; cy++ {
		for cx := minCx; cx <= maxCx; cx++ {
			for id := range g.cells[cellKey{cx: cx, cy: cy}] {
				out[id] = struct{}{}
			}
		}
	}
	return out
}

// Contains reports whether the entity is currently registered.
func (g *SpatialHashGrid) Contains(id EntityID) bool {
	_, ok := g.entityCells[id]
	return ok
}

// Len returns the number of registered entities.
func (g *SpatialHashGrid) Len() int { return len(g.entityCells) }

// Clear drops all cells and membership records.
func (g *SpatialHashGrid) Clear() {
	g.cells = make(map[cellKey]map[EntityID]struct{})
	g.entityCells = make(map[EntityID][]cellKey)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
