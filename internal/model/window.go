package model

// Window is a live, mutable instance of an opened window created from a Template.
type Window struct {
	Key                    string       `yaml:"key"                       json:"key"`
	Title                  string       `yaml:"title"                     json:"title"`
	Message                string       `yaml:"message,omitempty"         json:"message,omitempty"`
	Type                   string       `yaml:"type"                      json:"type"`
	Template               *Template    `yaml:"-"                         json:"-"`
	X                      int          `yaml:"x"                         json:"x"`
	Y                      int          `yaml:"y"                         json:"y"`
	Width                  int          `yaml:"width"                     json:"width"`
	Height                 int          `yaml:"height"                    json:"height"`
	Order                  int          `yaml:"order"                     json:"order"`
	IsLocked               bool         `yaml:"locked"                    json:"locked"`
	IsMinimized            bool         `yaml:"minimized"                 json:"minimized"`
	MinimizeIndex          int          `yaml:"minimize_index"            json:"minimize_index"`
	IsMinimizeAnimationEnd bool         `yaml:"minimize_animation_end"    json:"minimize_animation_end"`
	Tables                 []TableState `yaml:"tables,omitempty"          json:"tables,omitempty"`
}

// Point returns the window's top-left corner.
func (w *Window) Point() Point {
	return Point{X: w.X, Y: w.Y}
}

// Clone returns a deep copy, including a private copy of the template, so a
// snapshot can never reach the catalog's shared declaration.
func (w Window) Clone() Window {
	if w.Template != nil {
		tmpl := w.Template.Clone()
		w.Template = &tmpl
	}
	if w.Tables != nil {
		tables := make([]TableState, len(w.Tables))
		for i, t := range w.Tables {
			tables[i] = t.Clone()
		}
		w.Tables = tables
	}
	return w
}

// TableState is the per-window cursor and column layout of one declared table.
type TableState struct {
	SelectedRowKey           *string `yaml:"selected_row_key"            json:"selected_row_key"`
	HoveredRowIndex          *int    `yaml:"hovered_row_index"           json:"hovered_row_index"`
	ActiveColumnDividerIndex *int    `yaml:"active_column_divider_index" json:"active_column_divider_index"`
	ColumnWidths             []int   `yaml:"column_widths"               json:"column_widths"`
}

// NewTableState builds an empty table state from a declaration.
// Column widths are copied so the template is never mutated through a window.
func NewTableState(decl TableDeclaration) TableState {
	widths := make([]int, len(decl.InitColumnWidths))
	copy(widths, decl.InitColumnWidths)
	return TableState{ColumnWidths: widths}
}

// Clone returns a deep copy of the table state.
func (t TableState) Clone() TableState {
	out := TableState{ColumnWidths: append([]int(nil), t.ColumnWidths...)}
	if t.SelectedRowKey != nil {
		v := *t.SelectedRowKey
		out.SelectedRowKey = &v
	}
	if t.HoveredRowIndex != nil {
		v := *t.HoveredRowIndex
		out.HoveredRowIndex = &v
	}
	if t.ActiveColumnDividerIndex != nil {
		v := *t.ActiveColumnDividerIndex
		out.ActiveColumnDividerIndex = &v
	}
	return out
}
