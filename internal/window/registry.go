package window

import (
	"fmt"

	"github.com/mj1618/winstack/internal/errors"
	"github.com/mj1618/winstack/internal/model"
	"github.com/mj1618/winstack/internal/position"
)

// DefaultMenuHeight is the band reserved above top-anchored windows.
const DefaultMenuHeight = 30

// Registry owns the ordered list of live windows and the key counter.
// It is not safe for concurrent use; Manager serializes access.
type Registry struct {
	windows    []*model.Window
	nextKey    int
	resolver   position.Resolver
	menuHeight int
}

// NewRegistry creates an empty registry.
func NewRegistry(resolver position.Resolver, menuHeight int) *Registry {
	return &Registry{
		resolver:   resolver,
		menuHeight: menuHeight,
	}
}

// Create builds a window from tmpl and appends it. All validation happens
// before the registry is touched, so a failed Create leaves no trace.
func (r *Registry) Create(windowType string, tmpl *model.Template) (string, error) {
	if tmpl == nil {
		return "", errors.NewUnknownWindowType(windowType)
	}

	pt, err := r.resolver.Resolve(tmpl.Position, tmpl.Size, r.menuHeight)
	if err != nil {
		return "", err
	}

	tables := make([]model.TableState, len(tmpl.Tables))
	for i, decl := range tmpl.Tables {
		tables[i] = model.NewTableState(decl)
	}

	key := fmt.Sprintf("window-%d", r.nextKey)
	r.nextKey++

	r.windows = append(r.windows, &model.Window{
		Key:      key,
		Title:    tmpl.Title,
		Message:  tmpl.Message,
		Type:     windowType,
		Template: tmpl,
		X:        pt.X,
		Y:        pt.Y,
		Width:    tmpl.Size.Width,
		Height:   tmpl.Size.Height,
		Order:    len(r.windows),
		Tables:   tables,
	})
	return key, nil
}

// List returns deep copies of every window in registration order.
func (r *Registry) List() []model.Window {
	out := make([]model.Window, len(r.windows))
	for i, w := range r.windows {
		out[i] = w.Clone()
	}
	return out
}

// Find returns a copy of the window with the given key.
func (r *Registry) Find(key string) (model.Window, bool) {
	w := r.lookup(key)
	if w == nil {
		return model.Window{}, false
	}
	return w.Clone(), true
}

// Len returns the number of registered windows.
func (r *Registry) Len() int {
	return len(r.windows)
}

// lookup returns the live record, or nil.
func (r *Registry) lookup(key string) *model.Window {
	for _, w := range r.windows {
		if w.Key == key {
			return w
		}
	}
	return nil
}

// mutable returns the live record or UNKNOWN_KEY.
func (r *Registry) mutable(key string) (*model.Window, error) {
	w := r.lookup(key)
	if w == nil {
		return nil, errors.NewUnknownKey(key)
	}
	return w, nil
}

// minimizedCount returns how many windows are currently minimized.
func (r *Registry) minimizedCount() int {
	n := 0
	for _, w := range r.windows {
		if w.IsMinimized {
			n++
		}
	}
	return n
}
