package window

import (
	"github.com/mj1618/winstack/internal/errors"
	"github.com/mj1618/winstack/internal/model"
	"github.com/mj1618/winstack/internal/position"
	"github.com/rs/zerolog"
)

const (
	// DefaultCascadeDistance is the offset applied on each exact collision, in both axes.
	DefaultCascadeDistance = 24
	// DefaultArrangeLimitFactor bounds cascade moves to registry size times this factor.
	DefaultArrangeLimitFactor = 4
)

// Arranger moves a window off any visible window sharing its exact top-left point.
type Arranger struct {
	registry    *Registry
	distance    int
	limitFactor int
	log         zerolog.Logger
}

// NewArranger creates an arranger over registry.
func NewArranger(registry *Registry, distance, limitFactor int, log zerolog.Logger) *Arranger {
	if limitFactor < 1 {
		limitFactor = 1
	}
	return &Arranger{
		registry:    registry,
		distance:    distance,
		limitFactor: limitFactor,
		log:         log,
	}
}

// Arrange cascades the target until no other non-minimized window shares its
// exact point. After each move the scan restarts from the first window, since
// the new point may collide with a window already passed. Only the target moves.
func (a *Arranger) Arrange(key string) error {
	target, err := a.registry.mutable(key)
	if err != nil {
		return err
	}

	limit := max(1, a.registry.Len()) * a.limitFactor
	moves := 0
	for {
		other := a.collision(target)
		if other == nil {
			return nil
		}
		if moves >= limit {
			a.log.Warn().
				Str("key", key).
				Int("moves", moves).
				Int("x", target.X).
				Int("y", target.Y).
				Msg("cascade limit reached")
			return errors.NewArrangementOverflow(key, moves)
		}

		dx, dy := a.offset(target.Template)
		target.X += dx
		target.Y += dy
		moves++

		a.log.Debug().
			Str("key", key).
			Str("collided_with", other.Key).
			Int("x", target.X).
			Int("y", target.Y).
			Msg("cascade")
	}
}

// collision returns the first visible window, in registry order, sitting on
// exactly the target's point.
func (a *Arranger) collision(target *model.Window) *model.Window {
	for _, w := range a.registry.windows {
		if w.Key == target.Key || w.IsMinimized {
			continue
		}
		if w.Point() == target.Point() {
			return w
		}
	}
	return nil
}

// offset returns the cascade step for a window. Right-anchored windows step
// left and bottom-anchored windows step up, keeping the cascade on screen.
func (a *Arranger) offset(tmpl *model.Template) (int, int) {
	dx, dy := a.distance, a.distance
	if tmpl == nil || tmpl.Position.IsPoint() {
		return dx, dy
	}
	p, err := position.ParsePlacement(tmpl.Position.Token)
	if err != nil {
		return dx, dy
	}
	if p.Horizontal == position.Right {
		dx = -dx
	}
	if p.Vertical == position.Bottom {
		dy = -dy
	}
	return dx, dy
}
