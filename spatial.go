package main

// SpatialGrid is a uniform grid used as the broad phase for food pickup
// queries. Entries are indices into the caller's pellet slice; the grid is
// rebuilt each tick and Clear keeps the allocated cell capacity.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int
}

// NewSpatialGrid sizes a grid over a w×h world
func NewSpatialGrid(w, h, cellSize float64) *SpatialGrid {
	cols := int(w/cellSize) + 1
	rows := int(h/cellSize) + 1
	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]int, cols*rows),
	}
}

// Clear resets all cells (keeps allocated capacity)
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *SpatialGrid) cellIdx(x, y float64) int {
	cx := int(x / g.cellSize)
	cy := int(y / g.cellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cy*g.cols + cx
}

// Insert adds an index at the given position
func (g *SpatialGrid) Insert(x, y float64, idx int) {
	c := g.cellIdx(x, y)
	g.cells[c] = append(g.cells[c], idx)
}

// QueryBuf appends all indices in cells overlapping the bounding box of a
// circle to buf and returns the extended slice, avoiding per-call
// allocation.
func (g *SpatialGrid) QueryBuf(x, y, radius float64, buf []int) []int {
	minCX := int((x - radius) / g.cellSize)
	maxCX := int((x + radius) / g.cellSize)
	minCY := int((y - radius) / g.cellSize)
	maxCY := int((y + radius) / g.cellSize)
	if minCX < 0 {
		minCX = 0
	}
	if maxCX >= g.cols {
		maxCX = g.cols - 1
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCY >= g.rows {
		maxCY = g.rows - 1
	}
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			buf = append(buf, g.cells[cy*g.cols+cx]...)
		}
	}
	return buf
}
