package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mj1618/winstack/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOpenCommand_Cascade(t *testing.T) {
	out, err := execute(t, "open", "board", "board", "board", "--format", "yaml")
	require.NoError(t, err)

	var layout output.LayoutResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &layout))
	require.Len(t, layout.Windows, 3)
	for i, w := range layout.Windows {
		assert.Equal(t, 24*i, w.X, "window %d x", i)
		assert.Equal(t, 30+24*i, w.Y, "window %d y", i)
	}
}

func TestOpenCommand_JSON(t *testing.T) {
	out, err := execute(t, "open", "chat", "--format", "json")
	require.NoError(t, err)

	var layout output.LayoutResult
	require.NoError(t, json.Unmarshal([]byte(out), &layout))
	require.Len(t, layout.Windows, 1)
	assert.Equal(t, "window-0", layout.Windows[0].Key)
	assert.Equal(t, 920, layout.Windows[0].X)
	assert.Equal(t, 300, layout.Windows[0].Y)
}

func TestOpenCommand_UnknownType(t *testing.T) {
	_, err := execute(t, "open", "nonexistent-type", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_WINDOW_TYPE")
}

func TestOpenCommand_TemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
broken:
  title: Broken
  size: {width: 100, height: 100}
  position: upper-left
`), 0600))

	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("templates", "") })

	_, err := execute(t, "open", "broken", "--templates", path, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_ANCHOR")
}

func TestTemplatesCommand(t *testing.T) {
	out, err := execute(t, "templates", "--format", "yaml")
	require.NoError(t, err)

	var entries []templateEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "board", entries[0].Type)
	assert.Equal(t, "top-left", entries[0].Position.Token)
}

func TestResolveCommand(t *testing.T) {
	out, err := execute(t, "resolve", "bottom-right", "--width", "360", "--height", "420", "--format", "yaml")
	require.NoError(t, err)

	var res resolveResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, 920, res.Point.X)
	assert.Equal(t, 300, res.Point.Y)

	out, err = execute(t, "resolve", "120,90", "--format", "yaml")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, 120, res.Point.X)
	assert.Equal(t, 90, res.Point.Y)

	_, err = execute(t, "resolve", "middle", "--format", "yaml")
	assert.Error(t, err)
}
