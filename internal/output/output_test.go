package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mj1618/winstack/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleLayout() LayoutResult {
	row := "row-1"
	return LayoutResult{
		Viewport: model.Size{Width: 1280, Height: 720},
		TS:       1707500000,
		Windows: []model.Window{
			{
				Key: "window-0", Title: "Board", Type: "board", X: 0, Y: 30, Width: 400, Height: 300,
				Tables: []model.TableState{{SelectedRowKey: &row, ColumnWidths: []int{40, 160}}},
			},
		},
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, sampleLayout()); err != nil {
		t.Fatal(err)
	}

	// YAML output should be multi-line
	if bytes.Count(buf.Bytes(), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", buf.String())
	}

	var decoded LayoutResult
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Windows) != 1 {
		t.Fatalf("windows: got %d, want 1", len(decoded.Windows))
	}
	if decoded.Windows[0].Key != "window-0" {
		t.Errorf("key: got %q, want %q", decoded.Windows[0].Key, "window-0")
	}
	if decoded.Windows[0].Tables[0].SelectedRowKey == nil {
		t.Error("selected row key should round-trip")
	}
}

func TestWriteJSON_CompactAndPretty(t *testing.T) {
	var compact, pretty bytes.Buffer
	if err := WriteJSON(&compact, sampleLayout(), false); err != nil {
		t.Fatal(err)
	}
	if err := WriteJSON(&pretty, sampleLayout(), true); err != nil {
		t.Fatal(err)
	}

	// Compact output should be a single line (plus newline from Encode)
	if bytes.Count(compact.Bytes(), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", compact.String())
	}
	if bytes.Count(pretty.Bytes(), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", pretty.String())
	}

	var decoded LayoutResult
	if err := json.Unmarshal(compact.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Windows[0].Y != 30 {
		t.Errorf("y: got %d, want 30", decoded.Windows[0].Y)
	}
}

func TestLayoutResult_OmitEmptyError(t *testing.T) {
	data, err := yaml.Marshal(LayoutResult{Windows: []model.Window{}})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["error"]; ok {
		t.Error("empty error should be omitted")
	}
	if _, ok := m["windows"]; !ok {
		t.Error("windows should always be present")
	}
}

func TestFprint_FollowsOutputFormat(t *testing.T) {
	defer func(f Format) { OutputFormat = f }(OutputFormat)

	OutputFormat = FormatJSON
	var buf bytes.Buffer
	if err := Fprint(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\"a\":1}\n" {
		t.Errorf("json: got %q", buf.String())
	}

	OutputFormat = Format("xml")
	if err := Fprint(&buf, 1); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %q, %v", f, err)
	}
	if _, err := ParseFormat("agent"); err == nil {
		t.Error("expected error for agent format")
	}
}
