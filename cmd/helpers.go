package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/winstack/internal/model"
)

// parsePoint parses an "x,y" string into a Point.
func parsePoint(s string) (*model.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	vals := make([]int, 2)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", s, err)
		}
		vals[i] = v
	}
	return &model.Point{X: vals[0], Y: vals[1]}, nil
}

// Parameter extraction helpers for step maps

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that YAML may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func optionalIntParam(params map[string]interface{}, key string) *int {
	if _, ok := params[key]; !ok {
		return nil
	}
	n := intParam(params, key, 0)
	return &n
}
