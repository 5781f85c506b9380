package tiling

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tileroom/internal/telemetry"
)

// Sizes lists the available square tile side lengths, largest first.
// The engine exhausts each size completely before trying the next.
var Sizes = []int{4, 3, 2, 1}

// ErrInvalidDimension is returned when a room dimension is not a
// positive integer.
var ErrInvalidDimension = errors.New("room dimension must be a positive integer")

// Tile covers a height×width room with square tiles and returns one
// grid snapshot per successful placement, in placement order.
//
// For each size in Sizes the spiral anchors are tried in order; a tile
// is placed wherever its full footprint is empty, and a deep copy of
// the grid is appended to the result. Size 1 fits any single empty
// cell, so the final snapshot always has full coverage. The result is
// a pure function of the dimensions.
func Tile(ctx context.Context, height, width int) ([]Grid, error) {
	if height < 1 {
		return nil, fmt.Errorf("height %d: %w", height, ErrInvalidDimension)
	}
	if width < 1 {
		return nil, fmt.Errorf("width %d: %w", width, ErrInvalidDimension)
	}

	tracer := telemetry.Tracer("tiling")
	_, span := tracer.Start(ctx, "tiling.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("run.id", uuid.NewString()),
		attribute.Int("room.height", height),
		attribute.Int("room.width", width),
	)

	grid := NewGrid(height, width)
	var steps []Grid
	placed := make(map[int]int, len(Sizes))

	for _, size := range Sizes {
		for _, a := range SpiralAnchors(height, width, size) {
			if grid[a.Row][a.Col] != 0 {
				continue
			}
			if size > 1 && !grid.regionEmpty(a.Row, a.Col, size) {
				continue
			}
			grid.mark(a.Row, a.Col, size)
			steps = append(steps, grid.Clone())
			placed[size]++
		}
	}

	span.SetAttributes(
		attribute.Int("tiling.steps", len(steps)),
		attribute.Int("tiling.tiles_4x4", placed[4]),
		attribute.Int("tiling.tiles_3x3", placed[3]),
		attribute.Int("tiling.tiles_2x2", placed[2]),
		attribute.Int("tiling.tiles_1x1", placed[1]),
	)

	return steps, nil
}
