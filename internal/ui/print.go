package ui

import (
	"strings"

	"github.com/samdwyer/tileroom/internal/palette"
	"github.com/samdwyer/tileroom/internal/tiling"
)

// Sprint formats a grid as plain text, one row per line, using the
// palette glyph for each covered cell and '.' for empty cells.
func Sprint(g tiling.Grid, reg *palette.Registry) string {
	var b strings.Builder
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			r := '.'
			if size := g[row][col]; size != 0 {
				if def := reg.GetBySize(size); def != nil {
					r = def.GlyphRune()
				}
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
