package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/winstack/internal/model"
)

func TestDefault_DeclaresBuiltinTypes(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	for _, name := range []string{"board", "chat", "initiative", "resource", "dice-log", "public-memo"} {
		if _, ok := c.Lookup(name); !ok {
			t.Errorf("expected built-in type %q", name)
		}
	}
}

func TestParse_AnchorForms(t *testing.T) {
	c, err := Parse([]byte(`
panel:
  title: Panel
  size: {width: 100, height: 50}
  position: bottom-right
  tableInfoList:
    - initColumnWidthList: [10, 20]
pinned:
  title: Pinned
  size: {width: 100, height: 50}
  position: {x: 12, y: 34}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	panel, _ := c.Lookup("panel")
	if panel.Position.IsPoint() || panel.Position.Token != "bottom-right" {
		t.Errorf("panel position: got %v, want bottom-right", panel.Position)
	}
	if len(panel.Tables) != 1 || len(panel.Tables[0].InitColumnWidths) != 2 {
		t.Errorf("panel tables: got %+v", panel.Tables)
	}

	pinned, _ := c.Lookup("pinned")
	if !pinned.Position.IsPoint() {
		t.Fatal("pinned position should be a point")
	}
	if pinned.Position.Point.X != 12 || pinned.Position.Point.Y != 34 {
		t.Errorf("pinned point: got %+v, want {12 34}", *pinned.Position.Point)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{not: [valid"},
		{"zero size", "a: {title: A, size: {width: 0, height: 10}, position: top-left}"},
		{"missing position", "a: {title: A, size: {width: 10, height: 10}}"},
		{"sequence anchor", "a: {title: A, size: {width: 10, height: 10}, position: [1, 2]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLookup_SharedTemplate(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := c.Lookup("board")
	b, _ := c.Lookup("board")
	if a != b {
		t.Error("lookups of the same type should share one template")
	}
}

func TestNew_DetachedFromInput(t *testing.T) {
	input := map[string]model.Template{
		"grid": {
			Title:    "Grid",
			Size:     model.Size{Width: 10, Height: 10},
			Position: model.AnchorAt(1, 2),
			Tables:   []model.TableDeclaration{{InitColumnWidths: []int{5, 6}}},
		},
	}
	c, err := New(input)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	input["grid"].Tables[0].InitColumnWidths[0] = -1
	input["grid"].Position.Point.X = 99

	grid, _ := c.Lookup("grid")
	if got := grid.Tables[0].InitColumnWidths[0]; got != 5 {
		t.Errorf("column width: got %d, want 5", got)
	}
	if got := grid.Position.Point.X; got != 1 {
		t.Errorf("anchor x: got %d, want 1", got)
	}
}

func TestTypes_SortedCopy(t *testing.T) {
	c, err := Parse([]byte(`
zeta: {title: Z, size: {width: 1, height: 1}, position: top-left}
alpha: {title: A, size: {width: 1, height: 1}, position: top-left}
`))
	if err != nil {
		t.Fatal(err)
	}
	types := c.Types()
	if len(types) != 2 || types[0] != "alpha" || types[1] != "zeta" {
		t.Fatalf("Types() = %v, want [alpha zeta]", types)
	}
	types[0] = "mutated"
	if c.Types()[0] != "alpha" {
		t.Error("Types() must return a copy")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.yaml")
	if err := os.WriteFile(path, []byte("only: {title: Only, size: {width: 5, height: 5}, position: center}"), 0600); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
