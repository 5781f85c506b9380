package tiling

// Anchor is a candidate top-left position for a tile placement.
type Anchor struct {
	Row, Col int
}

// SpiralAnchors generates the candidate anchors for tiles of the given
// size on a height×width grid, in spiral order: concentric rectangular
// rings are peeled from the room boundary inward, and within a ring the
// bottom edge is walked left to right, the right edge bottom to top, the
// top edge right to left, and the left edge top to bottom, each stepping
// by the tile size. Anchor bounds are clamped so every anchor admits an
// in-bounds footprint; a size larger than either dimension yields no
// anchors at all.
func SpiralAnchors(height, width, size int) []Anchor {
	var anchors []Anchor

	top, bottom := 0, height-size
	left, right := 0, width-size

	for left <= right && top <= bottom {
		// Bottom edge, left to right.
		for c := left; c <= right; c += size {
			anchors = append(anchors, Anchor{Row: bottom, Col: c})
		}
		// Right edge, bottom to top, skipping the corner already visited.
		for r := bottom - size; r >= top; r -= size {
			anchors = append(anchors, Anchor{Row: r, Col: right})
		}
		// Top edge, right to left, only when the ring has more than one row.
		if top < bottom {
			for c := right - size; c >= left; c -= size {
				anchors = append(anchors, Anchor{Row: top, Col: c})
			}
		}
		// Left edge, top to bottom, only when the ring has more than one column.
		if left < right {
			for r := top + size; r < bottom; r += size {
				anchors = append(anchors, Anchor{Row: r, Col: left})
			}
		}

		top += size
		bottom -= size
		left += size
		right -= size
	}

	return anchors
}
