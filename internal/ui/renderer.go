package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/tileroom/internal/palette"
	"github.com/samdwyer/tileroom/internal/tiling"
)

// cellWidth is how many terminal columns one grid cell occupies.
// Terminal cells are roughly twice as tall as wide, so two columns per
// cell keeps tiles looking square.
const cellWidth = 2

// edgeDarken is how far tile border cells are blended toward black.
const edgeDarken = 0.4

// Renderer draws grid snapshots to the screen.
type Renderer struct {
	screen  *Screen
	palette *palette.Registry
}

// NewRenderer creates a new renderer for the given screen and palette.
func NewRenderer(screen *Screen, reg *palette.Registry) *Renderer {
	return &Renderer{screen: screen, palette: reg}
}

// Render draws one grid snapshot plus a status line. The step and total
// counts are shown 1-based in the status line.
func (r *Renderer) Render(g tiling.Grid, step, total int, paused bool) {
	r.screen.Clear()

	// Recover tile rectangles from cell values: scanning row-major, the
	// first unvisited nonzero cell of a tile is its top-left anchor.
	drawn := make([][]bool, g.Height())
	for row := range drawn {
		drawn[row] = make([]bool, g.Width())
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			size := g[row][col]
			if size == 0 || drawn[row][col] {
				continue
			}
			r.drawTile(row, col, size)
			for rr := row; rr < row+size && rr < g.Height(); rr++ {
				for cc := col; cc < col+size && cc < g.Width(); cc++ {
					drawn[rr][cc] = true
				}
			}
		}
	}

	status := fmt.Sprintf("step %d/%d", step, total)
	if paused {
		status += "  [paused]"
	}
	status += "  |  space: pause  arrows: step  q: quit"
	r.RenderMessage(status, g.Height()+1)

	r.screen.Show()
}

// drawTile fills one size×size tile anchored at (row, col). Border
// cells are drawn in a darkened shade of the fill color so adjacent
// tiles of the same size stay distinguishable; the tile's size digit is
// shown in its top-left corner.
func (r *Renderer) drawTile(row, col, size int) {
	def := r.palette.GetBySize(size)
	if def == nil {
		return
	}

	fill, err := colorful.Hex(def.Color)
	if err != nil {
		return
	}
	edge := fill.BlendLab(colorful.Color{}, edgeDarken).Clamped()

	fillStyle := tcell.StyleDefault.Background(def.TCellColor())
	er, eg, eb := edge.RGB255()
	edgeStyle := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(er), int32(eg), int32(eb)))
	glyphStyle := edgeStyle.Foreground(tcell.ColorBlack)

	for rr := row; rr < row+size; rr++ {
		for cc := col; cc < col+size; cc++ {
			style := fillStyle
			if rr == row || rr == row+size-1 || cc == col || cc == col+size-1 {
				style = edgeStyle
			}
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(cc*cellWidth+i, rr, ' ', style)
			}
		}
	}

	r.screen.SetContent(col*cellWidth, row, def.GlyphRune(), glyphStyle)
}

// RenderMessage displays a message at the given row of the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}
