// Package position translates window anchors into absolute screen points.
package position

import (
	"fmt"
	"strings"

	"github.com/mj1618/winstack/internal/errors"
	"github.com/mj1618/winstack/internal/model"
)

// Vertical is the vertical keyword of an anchor token.
type Vertical int

const (
	VCenter Vertical = iota
	Top
	Bottom
)

// Horizontal is the horizontal keyword of an anchor token.
type Horizontal int

const (
	HCenter Horizontal = iota
	Left
	Right
)

// Placement is a parsed symbolic anchor.
type Placement struct {
	Vertical   Vertical
	Horizontal Horizontal
}

// ParsePlacement parses tokens like "bottom-right", "right-bottom", "top" or "center".
// Keywords may appear in either order; a missing axis defaults to center.
func ParsePlacement(token string) (Placement, error) {
	var p Placement
	parts := strings.Split(strings.ToLower(strings.TrimSpace(token)), "-")
	if len(parts) == 0 || len(parts) > 2 || parts[0] == "" {
		return p, errors.NewInvalidAnchor(token, "expected <vertical>-<horizontal>")
	}

	var haveV, haveH bool
	for _, part := range parts {
		switch part {
		case "top", "bottom":
			if haveV {
				return p, errors.NewInvalidAnchor(token, "vertical keyword given twice")
			}
			haveV = true
			if part == "top" {
				p.Vertical = Top
			} else {
				p.Vertical = Bottom
			}
		case "left", "right":
			if haveH {
				return p, errors.NewInvalidAnchor(token, "horizontal keyword given twice")
			}
			haveH = true
			if part == "left" {
				p.Horizontal = Left
			} else {
				p.Horizontal = Right
			}
		case "center":
		default:
			return p, errors.NewInvalidAnchor(token, fmt.Sprintf("unknown keyword %q", part))
		}
	}
	return p, nil
}

// Resolver computes top-left points for windows inside a fixed viewport.
type Resolver struct {
	Viewport model.Size
}

// NewResolver returns a resolver for the given viewport.
func NewResolver(viewport model.Size) Resolver {
	return Resolver{Viewport: viewport}
}

// Resolve returns the top-left point of a window of the given size.
// Point anchors are returned unchanged. Symbolic anchors are placed inside the
// viewport below a reserved band of topOffset units.
func (r Resolver) Resolve(anchor model.Anchor, size model.Size, topOffset int) (model.Point, error) {
	if anchor.Point != nil {
		return *anchor.Point, nil
	}

	p, err := ParsePlacement(anchor.Token)
	if err != nil {
		return model.Point{}, err
	}

	vw, vh := r.Viewport.Width, r.Viewport.Height
	var pt model.Point

	switch p.Horizontal {
	case Left:
		pt.X = 0
	case Right:
		pt.X = vw - size.Width
	default:
		pt.X = (vw - size.Width) / 2
	}

	switch p.Vertical {
	case Top:
		pt.Y = topOffset
	case Bottom:
		pt.Y = vh - size.Height
	default:
		pt.Y = topOffset + (vh-topOffset-size.Height)/2
	}

	return pt, nil
}
