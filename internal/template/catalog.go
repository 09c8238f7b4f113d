// Package template loads the read-only catalog of window type declarations.
package template

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/mj1618/winstack/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed window.yaml
var defaultTemplates []byte

// Catalog maps window type names to their templates. It is built once and
// never mutated afterwards; templates are shared by every window opened from them.
type Catalog struct {
	templates map[string]*model.Template
	types     []string
}

// Default returns the catalog of built-in window types.
func Default() (*Catalog, error) {
	return Parse(defaultTemplates)
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML mapping of type name to template.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]model.Template
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml decode templates: %w", err)
	}
	return New(raw)
}

// New builds a catalog from decoded templates. Each template is deep-copied,
// so later changes to the input map do not reach the catalog.
func New(templates map[string]model.Template) (*Catalog, error) {
	c := &Catalog{
		templates: make(map[string]*model.Template, len(templates)),
		types:     make([]string, 0, len(templates)),
	}
	for name, tmpl := range templates {
		if name == "" {
			return nil, fmt.Errorf("template with empty type name")
		}
		if tmpl.Size.Width <= 0 || tmpl.Size.Height <= 0 {
			return nil, fmt.Errorf("template %q: size must be positive, got %dx%d", name, tmpl.Size.Width, tmpl.Size.Height)
		}
		if !tmpl.Position.IsPoint() && tmpl.Position.Token == "" {
			return nil, fmt.Errorf("template %q: position is required", name)
		}
		t := tmpl.Clone()
		c.templates[name] = &t
		c.types = append(c.types, name)
	}
	sort.Strings(c.types)
	return c, nil
}

// Lookup returns the shared template for a window type.
func (c *Catalog) Lookup(windowType string) (*model.Template, bool) {
	t, ok := c.templates[windowType]
	return t, ok
}

// Types returns the declared window type names in sorted order.
func (c *Catalog) Types() []string {
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}

// Len returns the number of declared window types.
func (c *Catalog) Len() int {
	return len(c.templates)
}
