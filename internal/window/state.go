package window

import (
	"fmt"

	"github.com/mj1618/winstack/internal/errors"
	"github.com/mj1618/winstack/internal/model"
)

// Move places a window at a new point, as after a drag, then arranges it.
func (m *Manager) Move(key string, x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := m.registry.mutable(key)
	if err != nil {
		return err
	}
	w.X, w.Y = x, y
	return m.arranger.Arrange(key)
}

// Minimize hides a window. Its minimize index is the number of windows that
// were already minimized. Minimizing a minimized window is a no-op.
func (m *Manager) Minimize(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := m.registry.mutable(key)
	if err != nil {
		return err
	}
	if w.IsMinimized {
		return nil
	}
	w.MinimizeIndex = m.registry.minimizedCount()
	w.IsMinimized = true
	w.IsMinimizeAnimationEnd = false
	return nil
}

// FinishMinimizeAnimation records that the minimize animation has completed.
func (m *Manager) FinishMinimizeAnimation(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := m.registry.mutable(key)
	if err != nil {
		return err
	}
	if !w.IsMinimized {
		return errors.NewInvalidRequest(fmt.Sprintf("window %s is not minimized", key))
	}
	w.IsMinimizeAnimationEnd = true
	return nil
}

// Restore shows a minimized window again and arranges it, since a visible
// window may have taken its point meanwhile.
func (m *Manager) Restore(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := m.registry.mutable(key)
	if err != nil {
		return err
	}
	if !w.IsMinimized {
		return nil
	}
	w.IsMinimized = false
	w.IsMinimizeAnimationEnd = false
	w.MinimizeIndex = 0
	return m.arranger.Arrange(key)
}

// SetLocked toggles the locked flag.
func (m *Manager) SetLocked(key string, locked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := m.registry.mutable(key)
	if err != nil {
		return err
	}
	w.IsLocked = locked
	return nil
}

// SelectRow sets the selected row of a table; an empty rowKey clears it.
func (m *Manager) SelectRow(key string, table int, rowKey string) error {
	return m.withTable(key, table, func(t *model.TableState) error {
		if rowKey == "" {
			t.SelectedRowKey = nil
			return nil
		}
		t.SelectedRowKey = &rowKey
		return nil
	})
}

// HoverRow sets the hovered row index of a table; nil clears it.
func (m *Manager) HoverRow(key string, table int, row *int) error {
	return m.withTable(key, table, func(t *model.TableState) error {
		if row == nil {
			t.HoveredRowIndex = nil
			return nil
		}
		if *row < 0 {
			return errors.NewInvalidRequest(fmt.Sprintf("row index %d is negative", *row))
		}
		v := *row
		t.HoveredRowIndex = &v
		return nil
	})
}

// SetColumnWidth resizes one column and records the divider being dragged.
func (m *Manager) SetColumnWidth(key string, table, column, width int) error {
	return m.withTable(key, table, func(t *model.TableState) error {
		if column < 0 || column >= len(t.ColumnWidths) {
			return errors.NewInvalidRequest(fmt.Sprintf("column %d out of range [0,%d)", column, len(t.ColumnWidths)))
		}
		if width <= 0 {
			return errors.NewInvalidRequest(fmt.Sprintf("column width must be positive, got %d", width))
		}
		t.ColumnWidths[column] = width
		divider := column
		t.ActiveColumnDividerIndex = &divider
		return nil
	})
}

func (m *Manager) withTable(key string, table int, fn func(*model.TableState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := m.registry.mutable(key)
	if err != nil {
		return err
	}
	if table < 0 || table >= len(w.Tables) {
		return errors.NewInvalidRequest(fmt.Sprintf("table %d out of range [0,%d)", table, len(w.Tables)))
	}
	return fn(&w.Tables[table])
}
