package window

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/mj1618/winstack/internal/errors"
	"github.com/mj1618/winstack/internal/model"
	"github.com/mj1618/winstack/internal/position"
	"github.com/mj1618/winstack/internal/signal"
	"github.com/mj1618/winstack/internal/template"
	"github.com/rs/zerolog"
)

// DefaultSource is the owner stamped on notifications when none is configured.
const DefaultSource = "winstack"

// Config holds configuration for a Manager. Zero fields take defaults.
type Config struct {
	Viewport           model.Size
	MenuHeight         int
	CascadeDistance    int
	ArrangeLimitFactor int
	Source             string
	Logger             zerolog.Logger
}

// Manager is the composition root: one per running application.
// Registry mutation and arrangement run under mu; the lock is released
// before the signal sink is awaited.
type Manager struct {
	mu       sync.Mutex
	catalog  *template.Catalog
	sink     signal.Sink
	registry *Registry
	arranger *Arranger
	source   string
	log      zerolog.Logger
}

// NewManager creates a manager over a frozen template catalog.
func NewManager(catalog *template.Catalog, sink signal.Sink, cfg Config) *Manager {
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		cfg.Viewport = model.Size{Width: 1280, Height: 720}
	}
	if cfg.MenuHeight <= 0 {
		cfg.MenuHeight = DefaultMenuHeight
	}
	if cfg.CascadeDistance <= 0 {
		cfg.CascadeDistance = DefaultCascadeDistance
	}
	if cfg.ArrangeLimitFactor <= 0 {
		cfg.ArrangeLimitFactor = DefaultArrangeLimitFactor
	}
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}
	if sink == nil {
		sink = signal.Discard{}
	}

	registry := NewRegistry(position.NewResolver(cfg.Viewport), cfg.MenuHeight)
	return &Manager{
		catalog:  catalog,
		sink:     sink,
		registry: registry,
		arranger: NewArranger(registry, cfg.CascadeDistance, cfg.ArrangeLimitFactor, cfg.Logger),
		source:   cfg.Source,
		log:      cfg.Logger,
	}
}

// Open creates a window of the given type, arranges it, and notifies the sink.
// The returned key is valid even when the notification fails: registration is
// never rolled back, and ctx only bounds the wait on the sink. A window whose
// arrangement overflows is still registered, so it is still announced; the
// overflow error is returned alongside any notification error.
func (m *Manager) Open(ctx context.Context, windowType string) (string, error) {
	key, err := m.register(windowType)
	if key == "" {
		return "", err
	}

	task := signal.Task{Type: signal.EventWindowOpen, Owner: m.source, Value: key}
	if nerr := m.sink.Ignite(ctx, task); nerr != nil {
		nerr = fmt.Errorf("notify %s: %w", signal.EventWindowOpen, nerr)
		if err == nil {
			return key, nerr
		}
		return key, stderrors.Join(err, nerr)
	}
	return key, err
}

func (m *Manager) register(windowType string) (string, error) {
	tmpl, ok := m.catalog.Lookup(windowType)
	if !ok {
		return "", errors.NewUnknownWindowType(windowType)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.registry.Create(windowType, tmpl)
	if err != nil {
		return "", err
	}
	if err := m.arranger.Arrange(key); err != nil {
		return key, err
	}

	w := m.registry.lookup(key)
	m.log.Info().
		Str("key", key).
		Str("type", windowType).
		Int("x", w.X).
		Int("y", w.Y).
		Msg("window opened")
	return key, nil
}

// Windows returns a snapshot of every window in registration order.
func (m *Manager) Windows() []model.Window {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registry.List()
}

// Window returns a snapshot of one window.
func (m *Manager) Window(key string) (model.Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.registry.Find(key)
	if !ok {
		return model.Window{}, errors.NewUnknownKey(key)
	}
	return w, nil
}

// Types returns the window types that can be opened.
func (m *Manager) Types() []string {
	return m.catalog.Types()
}

// Arrange re-establishes the no-overlap rule for one window, e.g. after
// external code changed its point or minimized state.
func (m *Manager) Arrange(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.arranger.Arrange(key)
}
