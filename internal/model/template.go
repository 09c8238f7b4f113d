package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Point is an absolute screen coordinate (top-left origin).
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Size is a width/height pair.
type Size struct {
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Anchor is either a fixed point or a symbolic token such as "bottom-right".
// Exactly one of Point and Token is set.
type Anchor struct {
	Point *Point
	Token string
}

// AnchorAt returns a fixed-point anchor.
func AnchorAt(x, y int) Anchor {
	return Anchor{Point: &Point{X: x, Y: y}}
}

// AnchorToken returns a symbolic anchor.
func AnchorToken(token string) Anchor {
	return Anchor{Token: token}
}

// IsPoint reports whether the anchor is a concrete point.
func (a Anchor) IsPoint() bool {
	return a.Point != nil
}

func (a Anchor) String() string {
	if a.Point != nil {
		return fmt.Sprintf("(%d,%d)", a.Point.X, a.Point.Y)
	}
	return a.Token
}

// UnmarshalYAML accepts a scalar token ("top-left") or an {x, y} mapping.
func (a *Anchor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = Anchor{Token: node.Value}
		return nil
	case yaml.MappingNode:
		var p Point
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("anchor point: %w", err)
		}
		*a = Anchor{Point: &p}
		return nil
	default:
		return fmt.Errorf("line %d: anchor must be a token or an {x, y} mapping", node.Line)
	}
}

// MarshalYAML writes the anchor back in the form it was declared.
func (a Anchor) MarshalYAML() (interface{}, error) {
	if a.Point != nil {
		return *a.Point, nil
	}
	return a.Token, nil
}

// MarshalJSON mirrors MarshalYAML.
func (a Anchor) MarshalJSON() ([]byte, error) {
	if a.Point != nil {
		return json.Marshal(*a.Point)
	}
	return json.Marshal(a.Token)
}

// TableDeclaration declares one table shown inside a window.
type TableDeclaration struct {
	InitColumnWidths []int `yaml:"initColumnWidthList" json:"init_column_widths"`
}

// Template is the read-only declaration of a window type.
type Template struct {
	Title    string             `yaml:"title"         json:"title"`
	Message  string             `yaml:"message"       json:"message,omitempty"`
	Size     Size               `yaml:"size"          json:"size"`
	Position Anchor             `yaml:"position"      json:"position"`
	Tables   []TableDeclaration `yaml:"tableInfoList" json:"tables,omitempty"`
}

// Clone returns a deep copy that shares no memory with t.
func (t Template) Clone() Template {
	if t.Position.Point != nil {
		p := *t.Position.Point
		t.Position.Point = &p
	}
	if t.Tables != nil {
		tables := make([]TableDeclaration, len(t.Tables))
		for i, decl := range t.Tables {
			tables[i] = TableDeclaration{InitColumnWidths: append([]int(nil), decl.InitColumnWidths...)}
		}
		t.Tables = tables
	}
	return t
}
