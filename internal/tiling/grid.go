// Package tiling covers a rectangular room with square tiles.
//
// Tiles come in fixed side lengths 4, 3, 2, and 1. The engine always
// prefers the largest tile that fits, placing tiles along concentric
// rings that start at the room boundary and wind inward. Whatever the
// larger sizes leave uncovered, size 1 fills.
package tiling

// Grid holds the room state as height×width cells. A cell is 0 while
// empty; once covered it holds the side length of the tile occupying
// it, so a placed s×s tile shows up as an s×s block of cells equal to s.
// Indexed [row][col].
type Grid [][]int

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(height, width int) Grid {
	g := make(Grid, height)
	for r := range g {
		g[r] = make([]int, width)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of the grid. Snapshots handed out by the
// engine are clones, so later placements never show through them.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for r := range g {
		c[r] = make([]int, len(g[r]))
		copy(c[r], g[r])
	}
	return c
}

// CountNonZero returns the number of covered cells.
func (g Grid) CountNonZero() int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell != 0 {
				n++
			}
		}
	}
	return n
}

// Filled returns true if every cell is covered.
func (g Grid) Filled() bool {
	return g.CountNonZero() == g.Height()*g.Width()
}

// regionEmpty returns true if the size×size block anchored at (row, col)
// lies within bounds and contains only empty cells.
func (g Grid) regionEmpty(row, col, size int) bool {
	if row+size > g.Height() || col+size > g.Width() {
		return false
	}
	for r := row; r < row+size; r++ {
		for c := col; c < col+size; c++ {
			if g[r][c] != 0 {
				return false
			}
		}
	}
	return true
}

// mark writes the tile size into every cell of the size×size block
// anchored at (row, col).
func (g Grid) mark(row, col, size int) {
	for r := row; r < row+size; r++ {
		for c := col; c < col+size; c++ {
			g[r][c] = size
		}
	}
}
