package server

import "fmt"

// Parameter extraction helpers for tool argument maps. MCP clients send JSON,
// so numbers arrive as float64.

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// requireString returns a non-empty string argument.
func requireString(params map[string]interface{}, key string) (string, error) {
	s := stringParam(params, key, "")
	if s == "" {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return s, nil
}

// requireInt returns an integer argument that must be present.
func requireInt(params map[string]interface{}, key string) (int, error) {
	n, ok := lookupInt(params, key)
	if !ok {
		return 0, fmt.Errorf("missing required numeric argument %q", key)
	}
	return n, nil
}

func lookupInt(params map[string]interface{}, key string) (int, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}
