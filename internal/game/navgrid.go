package game

import "math"

// NavGrid is the per-round occupancy grid: true = blocked. It is built once
// after obstacle placement and never mutated for the rest of the round, so all
// villagers share it without synchronization.
type NavGrid struct {
	cols     int
	rows     int
	cellSize float64
	blocked  []bool
}

// NewNavGrid rasterizes each obstacle footprint into the grid and expands the
// blocked region by expandCells on all four sides so that circular agents keep
// clearance from walls. A layout that blocks every cell is legal; pathfinding
// over it simply fails.
func NewNavGrid(worldW, worldH, cellSize float64, obstacles []Obstacle, expandCells int) *NavGrid {
	cols := int(math.Ceil(worldW / cellSize))
	rows := int(math.Ceil(worldH / cellSize))
	ng := &NavGrid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		blocked:  make([]bool, cols*rows),
	}

	for _, ob := range obstacles {
		left := max(0, int(ob.X/cellSize))
		right := min(cols-1, int((ob.X+ob.W)/cellSize))
		top := max(0, int(ob.Y/cellSize))
		bottom := min(rows-1, int((ob.Y+ob.H)/cellSize))

		for cy := max(0, top-expandCells); cy <= min(rows-1, bottom+expandCells); cy++ {
			for cx := max(0, left-expandCells); cx <= min(cols-1, right+expandCells); cx++ {
				ng.blocked[cy*cols+cx] = true
			}
		}
	}
	return ng
}

func (ng *NavGrid) Cols() int { return ng.cols }
func (ng *NavGrid) Rows() int { return ng.rows }

// InBounds reports whether (cx, cy) is a valid cell index.
func (ng *NavGrid) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < ng.cols && cy < ng.rows
}

// IsBlocked returns true for occupied or out-of-bounds cells.
func (ng *NavGrid) IsBlocked(cx, cy int) bool {
	if !ng.InBounds(cx, cy) {
		return true
	}
	return ng.blocked[cy*ng.cols+cx]
}

// ClampCell clamps arbitrary cell coordinates into grid bounds.
func (ng *NavGrid) ClampCell(cx, cy int) (int, int) {
	return max(0, min(ng.cols-1, cx)), max(0, min(ng.rows-1, cy))
}

// CellOf converts a world position to the cell containing it (floor).
func (ng *NavGrid) CellOf(p Vec) (int, int) {
	return int(math.Floor(p.X / ng.cellSize)), int(math.Floor(p.Y / ng.cellSize))
}

// CenterOf converts a cell index to the world position of its center.
// CellOf(CenterOf(c)) == c for all in-bounds cells.
func (ng *NavGrid) CenterOf(cx, cy int) Vec {
	return Vec{
		X: float64(cx)*ng.cellSize + ng.cellSize/2,
		Y: float64(cy)*ng.cellSize + ng.cellSize/2,
	}
}
