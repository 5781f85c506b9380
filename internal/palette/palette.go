package palette

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileDef defines the appearance of one tile size, loaded from JSON.
// The size→color mapping is a fixed external contract: 1→red, 2→blue,
// 3→yellow, 4→green.
type TileDef struct {
	Size  int    `json:"size"`  // Tile side length (1-4)
	Name  string `json:"name"`  // Color name (e.g., "red")
	Color string `json:"color"` // Hex fill color (e.g., "#FF0000")
	Glyph string `json:"glyph"` // Single character for plain-text output
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the fill color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	return MustParseHexColor(d.Color)
}

// paletteFile represents the structure of palette.json.
type paletteFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Registry holds the loaded tile definitions keyed by size.
type Registry struct {
	bySize map[int]*TileDef
	all    []TileDef
}

// NewRegistry creates a registry from tile definitions, validating that
// every size from 1 through 4 is defined exactly once with a parseable
// color.
func NewRegistry(tiles []TileDef) (*Registry, error) {
	r := &Registry{
		bySize: make(map[int]*TileDef, len(tiles)),
		all:    tiles,
	}
	for i := range tiles {
		def := &tiles[i]
		if def.Size < 1 || def.Size > 4 {
			return nil, fmt.Errorf("tile size %d out of range", def.Size)
		}
		if _, dup := r.bySize[def.Size]; dup {
			return nil, fmt.Errorf("duplicate definition for tile size %d", def.Size)
		}
		if _, err := ParseHexColor(def.Color); err != nil {
			return nil, fmt.Errorf("tile size %d: %w", def.Size, err)
		}
		r.bySize[def.Size] = def
	}
	for size := 1; size <= 4; size++ {
		if r.bySize[size] == nil {
			return nil, fmt.Errorf("missing definition for tile size %d", size)
		}
	}
	return r, nil
}

// LoadRegistry loads and creates a registry from the embedded palette.json.
func LoadRegistry() (*Registry, error) {
	file, err := Load[paletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	return NewRegistry(file.Tiles)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := NewRegistry(MustLoad[paletteFile]("palette.json").Tiles)
	if err != nil {
		panic(err)
	}
	return registry
}

// GetBySize returns the definition for the given tile size, or nil if
// not defined.
func (r *Registry) GetBySize(size int) *TileDef {
	return r.bySize[size]
}

// All returns all tile definitions.
func (r *Registry) All() []TileDef {
	return r.all
}

// Count returns the number of tile sizes in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
