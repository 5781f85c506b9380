package tiling

import "testing"

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(3, 4)
	g.mark(0, 0, 2)

	c := g.Clone()
	c[0][0] = 9

	if g[0][0] != 2 {
		t.Errorf("mutating clone leaked into original: got %d, want 2", g[0][0])
	}
	if c[1][1] != 2 {
		t.Errorf("clone lost cell value: got %d, want 2", c[1][1])
	}
}

func TestGridCounts(t *testing.T) {
	g := NewGrid(2, 3)
	if g.CountNonZero() != 0 {
		t.Errorf("new grid should be empty, got %d covered cells", g.CountNonZero())
	}
	if g.Filled() {
		t.Error("new grid should not be filled")
	}

	g.mark(0, 0, 2)
	if got := g.CountNonZero(); got != 4 {
		t.Errorf("expected 4 covered cells after a 2x2 tile, got %d", got)
	}

	g.mark(0, 2, 1)
	g.mark(1, 2, 1)
	if !g.Filled() {
		t.Error("grid should be filled")
	}
}

func TestGridRegionEmpty(t *testing.T) {
	g := NewGrid(4, 4)
	g.mark(2, 2, 2)

	tests := []struct {
		row, col, size int
		want           bool
	}{
		{0, 0, 2, true},
		{1, 1, 2, false}, // overlaps the placed tile
		{0, 0, 4, false}, // overlaps the placed tile
		{2, 0, 2, true},
		{3, 3, 2, false}, // out of bounds
		{0, 2, 2, true},
	}

	for _, tt := range tests {
		if got := g.regionEmpty(tt.row, tt.col, tt.size); got != tt.want {
			t.Errorf("regionEmpty(%d,%d,%d) = %v, want %v", tt.row, tt.col, tt.size, got, tt.want)
		}
	}
}
