package game

import "math"

// GridCellSize is the broad-phase cell edge, two alien widths
const GridCellSize = 2 * AlienSize

// alienGrid buckets alien indices by the cells their hitbox overlaps.
// Positions outside the grid clamp to the border cells.
type alienGrid struct {
	cols, rows int
	cells      [][]int
}

func newAlienGrid(width, height float64) *alienGrid {
	cols := int(math.Ceil(width/GridCellSize)) + 1
	rows := int(math.Ceil(height/GridCellSize)) + 1
	return &alienGrid{
		cols:  cols,
		rows:  rows,
		cells: make([][]int, cols*rows),
	}
}

// Clear resets all cells, keeping capacity
func (g *alienGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *alienGrid) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / GridCellSize))
	cy := int(math.Floor(y / GridCellSize))
	return clamp(cx, 0, g.cols-1), clamp(cy, 0, g.rows-1)
}

// InsertBox adds idx to every cell overlapped by the size x size box at (x, y)
func (g *alienGrid) InsertBox(x, y, size float64, idx int) {
	minCX, minCY := g.cell(x, y)
	maxCX, maxCY := g.cell(x+size, y+size)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			i := cy*g.cols + cx
			g.cells[i] = append(g.cells[i], idx)
		}
	}
}

// Candidates returns the indices stored in the cell holding (x, y)
func (g *alienGrid) Candidates(x, y float64) []int {
	cx, cy := g.cell(x, y)
	return g.cells[cy*g.cols+cx]
}

// Build indexes every live alien by its position in aliens
func (g *alienGrid) Build(aliens []*Alien) {
	g.Clear()
	for i, a := range aliens {
		if a.Destroyed {
			continue
		}
		g.InsertBox(a.X, a.Y, AlienSize, i)
	}
}
