package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/young1lin/colorwell/internal/palette"
)

// grid returns a rows x columns grid filled with distinct gray levels
func grid(rows, columns int) [][]palette.Color {
	out := make([][]palette.Color, rows)
	for r := range out {
		out[r] = make([]palette.Color, columns)
		for c := range out[r] {
			out[r][c] = palette.Gray(float64(r*columns+c) / float64(rows*columns+1))
		}
	}
	return out
}

func squareConfig(rows, columns int) Config {
	return Config{
		Colors:               grid(rows, columns),
		BoxWidth:             20,
		BoxHeight:            20,
		HorizontalBoxSpacing: 4,
		VerticalBoxSpacing:   4,
		HorizontalMargin:     4,
		VerticalMargin:       4,
	}
}

func TestPopoverSizeTwoByFour(t *testing.T) {
	got := PopoverSize(squareConfig(2, 4))
	want := Size{Width: 100, Height: 52}
	if got != want {
		t.Errorf("PopoverSize() = %+v, want %+v", got, want)
	}
}

func TestPopoverSizeMenuRows(t *testing.T) {
	cfg := squareConfig(2, 4)
	cfg.UsesDefaultColor = true
	cfg.UsesCustomColor = true

	// each menu row adds 2*4 + 20
	got := PopoverSize(cfg)
	want := Size{Width: 100, Height: 52 + 28 + 28}
	if got != want {
		t.Errorf("PopoverSize() = %+v, want %+v", got, want)
	}
}

func TestPopoverSizeEmptyGrid(t *testing.T) {
	cfg := squareConfig(0, 0)
	cfg.UsesDefaultColor = true

	got := PopoverSize(cfg)
	want := Size{Width: 8, Height: 8 + 28}
	if got != want {
		t.Errorf("PopoverSize() = %+v, want %+v", got, want)
	}

	cfg.Colors = [][]palette.Color{{}}
	if got := PopoverSize(cfg); got != want {
		t.Errorf("PopoverSize() with zero columns = %+v, want %+v", got, want)
	}
}

func TestComputeZeroColumns(t *testing.T) {
	empty := squareConfig(0, 0)
	empty.UsesCustomColor = true
	zeroColumns := empty
	zeroColumns.Colors = [][]palette.Color{{}, {}}

	want, err := Compute(empty)
	if err != nil {
		t.Fatalf("Compute(empty) error = %v", err)
	}
	got, err := Compute(zeroColumns)
	if err != nil {
		t.Fatalf("Compute(zero columns) error = %v", err)
	}
	if got.Size != want.Size {
		t.Errorf("Size = %+v, want %+v", got.Size, want.Size)
	}
	if got.CustomRow != want.CustomRow || got.CustomRow.Y != 8 {
		t.Errorf("CustomRow = %+v, want %+v at y 8", got.CustomRow, want.CustomRow)
	}
	if got.Rows != 0 || got.Columns != 0 {
		t.Errorf("Rows, Columns = %d, %d, want 0, 0", got.Rows, got.Columns)
	}
	if _, ok := got.CellRect(0, 0); ok {
		t.Error("CellRect(0, 0) should not exist in an empty grid")
	}
}

func TestPopoverSizeMonotonic(t *testing.T) {
	base := squareConfig(2, 3)
	base.UsesDefaultColor = true
	baseSize := PopoverSize(base)

	grow := []struct {
		name string
		fn   func(*Config)
	}{
		{"rows", func(c *Config) { c.Colors = grid(3, 3) }},
		{"columns", func(c *Config) { c.Colors = grid(2, 4) }},
		{"box width", func(c *Config) { c.BoxWidth++ }},
		{"box height", func(c *Config) { c.BoxHeight++ }},
		{"horizontal spacing", func(c *Config) { c.HorizontalBoxSpacing++ }},
		{"vertical spacing", func(c *Config) { c.VerticalBoxSpacing++ }},
		{"horizontal margin", func(c *Config) { c.HorizontalMargin++ }},
		{"vertical margin", func(c *Config) { c.VerticalMargin++ }},
		{"custom row", func(c *Config) { c.UsesCustomColor = true }},
	}

	for _, tt := range grow {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base.Clone()
			tt.fn(&cfg)
			got := PopoverSize(cfg)
			if got.Width < baseSize.Width || got.Height < baseSize.Height {
				t.Errorf("PopoverSize() = %+v, shrank from %+v", got, baseSize)
			}
		})
	}
}

func TestCellRect(t *testing.T) {
	cfg := squareConfig(2, 4)

	tests := []struct {
		row, column int
		want        Rect
	}{
		{0, 0, Rect{X: 4, Y: 4, Width: 20, Height: 20}},
		{0, 2, Rect{X: 52, Y: 4, Width: 20, Height: 20}},
		{1, 3, Rect{X: 76, Y: 28, Width: 20, Height: 20}},
	}
	for _, tt := range tests {
		if got := CellRect(cfg, tt.row, tt.column); got != tt.want {
			t.Errorf("CellRect(%d, %d) = %+v, want %+v", tt.row, tt.column, got, tt.want)
		}
	}

	// the default row pushes the grid down by one menu row
	cfg.UsesDefaultColor = true
	if got := CellRect(cfg, 0, 0).Y; got != 4+28 {
		t.Errorf("CellRect(0, 0).Y with default row = %v, want 32", got)
	}
}

func TestComputeMenuRows(t *testing.T) {
	cfg := squareConfig(2, 4)
	cfg.UsesDefaultColor = true
	cfg.UsesCustomColor = true

	g, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	want := struct {
		DefaultRow, DefaultSwatch, DefaultLabel Rect
		CustomRow, CustomSwatch, CustomLabel    Rect
	}{
		DefaultRow:    Rect{X: 0, Y: 0, Width: 100, Height: 28},
		DefaultSwatch: Rect{X: 4, Y: 4, Width: 20, Height: 20},
		DefaultLabel:  Rect{X: 28, Y: 4, Width: 72, Height: 20},
		CustomRow:     Rect{X: 0, Y: 80, Width: 100, Height: 28},
		CustomSwatch:  Rect{X: 4, Y: 84, Width: 20, Height: 20},
		CustomLabel:   Rect{X: 28, Y: 84, Width: 72, Height: 20},
	}
	got := struct {
		DefaultRow, DefaultSwatch, DefaultLabel Rect
		CustomRow, CustomSwatch, CustomLabel    Rect
	}{g.DefaultRow, g.DefaultSwatch, g.DefaultLabel, g.CustomRow, g.CustomSwatch, g.CustomLabel}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() menu rows mismatch (-want +got):\n%s", diff)
	}

	if g.Size != (Size{Width: 100, Height: 108}) {
		t.Errorf("Compute().Size = %+v, want 100x108", g.Size)
	}
	if !g.HasDefaultRow || !g.HasCustomRow {
		t.Error("Compute() should report both menu rows present")
	}
}

func TestComputeCellsMatchCellRect(t *testing.T) {
	cfg := squareConfig(3, 5)
	cfg.UsesDefaultColor = true
	cfg.BoxBorderWidth = 2

	g, err := Compute(cfg)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for row := 0; row < 3; row++ {
		for column := 0; column < 5; column++ {
			got, ok := g.CellRect(row, column)
			if !ok {
				t.Fatalf("CellRect(%d, %d) not found", row, column)
			}
			if want := CellRect(cfg, row, column); got != want {
				t.Errorf("CellRect(%d, %d) = %+v, want %+v", row, column, got, want)
			}
			hit, _ := g.HitRect(row, column)
			if hit != got.Inset(1) {
				t.Errorf("HitRect(%d, %d) = %+v, want cell grown by 1", row, column, hit)
			}
		}
	}

	if _, ok := g.CellRect(3, 0); ok {
		t.Error("CellRect(3, 0) should be out of bounds")
	}
	if _, ok := g.CellRect(0, -1); ok {
		t.Error("CellRect(0, -1) should be out of bounds")
	}
}

func TestGeometryMenuRowsNeverOverlapGrid(t *testing.T) {
	configs := []Config{
		squareConfig(1, 1),
		squareConfig(3, 4),
		squareConfig(6, 7),
	}
	// zero margins make rows and cells share edges
	tight := squareConfig(3, 3)
	tight.VerticalMargin = 0
	tight.HorizontalMargin = 0
	configs = append(configs, tight)

	for i, cfg := range configs {
		cfg.UsesDefaultColor = true
		cfg.UsesCustomColor = true
		g, err := Compute(cfg)
		if err != nil {
			t.Fatalf("config %d: Compute() error = %v", i, err)
		}
		if err := g.Check(); err != nil {
			t.Errorf("config %d: Check() = %v", i, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"jagged", func(c *Config) { c.Colors[1] = c.Colors[1][:2] }, true},
		{"zero box width", func(c *Config) { c.BoxWidth = 0 }, true},
		{"negative box height", func(c *Config) { c.BoxHeight = -1 }, true},
		{"negative spacing", func(c *Config) { c.HorizontalBoxSpacing = -1 }, true},
		{"negative margin", func(c *Config) { c.VerticalMargin = -0.5 }, true},
		{"negative border", func(c *Config) { c.BoxBorderWidth = -1 }, true},
		{"empty grid without menus", func(c *Config) { c.Colors = nil }, true},
		{"zero columns without menus", func(c *Config) { c.Colors = [][]palette.Color{{}, {}} }, true},
		{"empty grid with default row", func(c *Config) { c.Colors = nil; c.UsesDefaultColor = true }, false},
		{"empty grid with custom row", func(c *Config) { c.Colors = nil; c.UsesCustomColor = true }, false},
		{"zero spacing", func(c *Config) { c.HorizontalBoxSpacing, c.VerticalBoxSpacing = 0, 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := squareConfig(2, 4)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			if _, cerr := Compute(cfg); (cerr != nil) != tt.wantErr {
				t.Errorf("Compute() error = %v, wantErr %v", cerr, tt.wantErr)
			}
		})
	}
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 5, Height: 5}
	for _, p := range []Point{{10, 10}, {15, 15}, {12.5, 12.5}, {10, 15}} {
		if !r.Contains(p) {
			t.Errorf("Contains(%+v) = false, want true", p)
		}
	}
	for _, p := range []Point{{9.99, 10}, {15.01, 12}, {12, 16}} {
		if r.Contains(p) {
			t.Errorf("Contains(%+v) = true, want false", p)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if a.Overlaps(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Error("rectangles sharing an edge should not overlap")
	}
	if !a.Overlaps(Rect{X: 9, Y: 9, Width: 5, Height: 5}) {
		t.Error("intersecting rectangles should overlap")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Rows() != 3 || cfg.Columns() != 4 {
		t.Errorf("DefaultConfig() grid = %dx%d, want 3x4", cfg.Rows(), cfg.Columns())
	}
	if cfg.MenuRowHeight() != 28 {
		t.Errorf("MenuRowHeight() = %v, want 28", cfg.MenuRowHeight())
	}
}
