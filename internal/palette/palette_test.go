package palette

import "testing"

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 tile sizes, got %d", registry.Count())
	}

	// The size-to-color mapping is a fixed external contract
	tests := []struct {
		size  int
		name  string
		color string
	}{
		{1, "red", "#FF0000"},
		{2, "blue", "#0000FF"},
		{3, "yellow", "#FFFF00"},
		{4, "green", "#00FF00"},
	}

	for _, tt := range tests {
		def := registry.GetBySize(tt.size)
		if def == nil {
			t.Errorf("Tile size %d not found", tt.size)
			continue
		}
		if def.Name != tt.name {
			t.Errorf("Size %d: expected name %q, got %q", tt.size, tt.name, def.Name)
		}
		if def.Color != tt.color {
			t.Errorf("Size %d: expected color %q, got %q", tt.size, tt.color, def.Color)
		}
	}

	if registry.GetBySize(5) != nil {
		t.Error("Expected nil for undefined tile size 5")
	}
}

func TestMustLoadRegistry(t *testing.T) {
	registry := MustLoadRegistry()
	if registry.Count() != 4 {
		t.Errorf("Expected 4 tile sizes, got %d", registry.Count())
	}
	if def := registry.GetBySize(1); def == nil || def.Name != "red" {
		t.Errorf("Size 1 should be red, got %+v", def)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	base := func() []TileDef {
		return []TileDef{
			{Size: 1, Name: "red", Color: "#FF0000", Glyph: "1"},
			{Size: 2, Name: "blue", Color: "#0000FF", Glyph: "2"},
			{Size: 3, Name: "yellow", Color: "#FFFF00", Glyph: "3"},
			{Size: 4, Name: "green", Color: "#00FF00", Glyph: "4"},
		}
	}

	if _, err := NewRegistry(base()); err != nil {
		t.Errorf("Valid definitions rejected: %v", err)
	}

	dup := append(base(), TileDef{Size: 4, Name: "green", Color: "#00FF00"})
	if _, err := NewRegistry(dup); err == nil {
		t.Error("Expected error for duplicate tile size")
	}

	missing := base()[:3]
	if _, err := NewRegistry(missing); err == nil {
		t.Error("Expected error for missing tile size")
	}

	badColor := base()
	badColor[0].Color = "nope"
	if _, err := NewRegistry(badColor); err == nil {
		t.Error("Expected error for unparseable color")
	}

	outOfRange := append(base(), TileDef{Size: 9, Name: "pink", Color: "#FF00FF"})
	if _, err := NewRegistry(outOfRange); err == nil {
		t.Error("Expected error for out-of-range tile size")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTileDefMethods(t *testing.T) {
	def := TileDef{
		Size:  2,
		Name:  "blue",
		Color: "#0000FF",
		Glyph: "2",
	}

	if def.GlyphRune() != '2' {
		t.Errorf("Expected glyph '2', got %c", def.GlyphRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := TileDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("Expected fallback glyph '?', got %c", empty.GlyphRune())
	}
}
