package position

import (
	"testing"

	"github.com/mj1618/winstack/internal/errors"
	"github.com/mj1618/winstack/internal/model"
)

func TestResolve_SymbolicAnchors(t *testing.T) {
	r := NewResolver(model.Size{Width: 1280, Height: 720})
	size := model.Size{Width: 400, Height: 300}

	tests := []struct {
		token string
		want  model.Point
	}{
		{"top-left", model.Point{X: 0, Y: 30}},
		{"top-right", model.Point{X: 880, Y: 30}},
		{"top-center", model.Point{X: 440, Y: 30}},
		{"top", model.Point{X: 440, Y: 30}},
		{"bottom-left", model.Point{X: 0, Y: 420}},
		{"bottom-right", model.Point{X: 880, Y: 420}},
		{"right-bottom", model.Point{X: 880, Y: 420}},
		{"bottom", model.Point{X: 440, Y: 420}},
		{"center", model.Point{X: 440, Y: 225}},
		{"center-center", model.Point{X: 440, Y: 225}},
		{"center-left", model.Point{X: 0, Y: 225}},
		{"left", model.Point{X: 0, Y: 225}},
		{"right", model.Point{X: 880, Y: 225}},
		{"Top-Left", model.Point{X: 0, Y: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := r.Resolve(model.AnchorToken(tt.token), size, 30)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolve_PointAnchorIgnoresSizeAndOffset(t *testing.T) {
	r := NewResolver(model.Size{Width: 1280, Height: 720})

	got, err := r.Resolve(model.AnchorAt(100, 150), model.Size{Width: 9999, Height: 9999}, 30)
	if err != nil {
		t.Fatal(err)
	}
	if got != (model.Point{X: 100, Y: 150}) {
		t.Errorf("got %+v, want {100 150}", got)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver(model.Size{Width: 1024, Height: 768})
	size := model.Size{Width: 333, Height: 211}

	first, err := r.Resolve(model.AnchorToken("center"), size, 30)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, _ := r.Resolve(model.AnchorToken("center"), size, 30)
		if again != first {
			t.Fatalf("call %d = %+v, want %+v", i, again, first)
		}
	}
}

func TestResolve_InvalidAnchor(t *testing.T) {
	r := NewResolver(model.Size{Width: 1280, Height: 720})

	for _, token := range []string{"", "upper-left", "top-bottom", "left-right", "top-left-center", "top-", "middle"} {
		t.Run(token, func(t *testing.T) {
			_, err := r.Resolve(model.AnchorToken(token), model.Size{Width: 10, Height: 10}, 30)
			if !errors.Is(err, errors.ErrInvalidAnchor) {
				t.Errorf("Resolve(%q) error = %v, want INVALID_ANCHOR", token, err)
			}
		})
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		token string
		want  Placement
	}{
		{"bottom-right", Placement{Vertical: Bottom, Horizontal: Right}},
		{"left-top", Placement{Vertical: Top, Horizontal: Left}},
		{"center", Placement{Vertical: VCenter, Horizontal: HCenter}},
		{"bottom-center", Placement{Vertical: Bottom, Horizontal: HCenter}},
	}

	for _, tt := range tests {
		got, err := ParsePlacement(tt.token)
		if err != nil {
			t.Errorf("ParsePlacement(%q) error = %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePlacement(%q) = %+v, want %+v", tt.token, got, tt.want)
		}
	}
}
