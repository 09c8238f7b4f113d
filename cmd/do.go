package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/winstack/internal/model"
	"github.com/mj1618/winstack/internal/output"
	"github.com/mj1618/winstack/internal/window"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// lastKey may be used as a step's key to refer to the most recently opened window.
const lastKey = "$last"

// DoResult is the output of a batch do command.
type DoResult struct {
	OK        bool           `yaml:"ok"                  json:"ok"`
	Steps     int            `yaml:"steps"               json:"steps"`
	Completed int            `yaml:"completed"           json:"completed"`
	Error     string         `yaml:"error,omitempty"     json:"error,omitempty"`
	Results   []StepResult   `yaml:"results"             json:"results"`
	Windows   []model.Window `yaml:"windows"             json:"windows"`
}

// StepResult is the output for a single step within a batch.
type StepResult struct {
	Step   int    `yaml:"step"             json:"step"`
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	Key    string `yaml:"key,omitempty"    json:"key,omitempty"`
	Error  string `yaml:"error,omitempty"  json:"error,omitempty"`
}

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Run a batch of window operations in one session",
	Long: `Execute a sequence of window operations from a YAML list on stdin (or --file).

Each step is an action name with its arguments as a map. Steps execute
sequentially in one session, and by default execution stops on the first error.
Use key "$last" to refer to the most recently opened window.

Supported steps: open, move, arrange, minimize, finish-minimize, restore, lock,
select-row, hover-row, column-width

Example:
  winstack do <<'EOF'
  - open: { type: board }
  - open: { type: board }
  - minimize: { key: window-0 }
  - open: { type: board }
  - restore: { key: window-0 }
  - column-width: { key: $last, table: 0, column: 1, width: 200 }
  EOF`,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().String("file", "", "Read steps from a file instead of stdin")
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error (default: true)")
}

func runDo(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read steps: %w", err)
	}
	steps, err := parseSteps(data)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := runSteps(ctx, s.manager, steps, stopOnError)
	if err := output.Fprint(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("%s", result.Error)
	}
	return nil
}

// parseSteps decodes a YAML list of single-key step maps.
func parseSteps(data []byte) ([]map[string]map[string]interface{}, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no steps provided; pipe a YAML list of actions")
	}
	var steps []map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no steps provided; expected a YAML list of actions")
	}
	return steps, nil
}

// runSteps executes steps against one manager and collects per-step results.
func runSteps(ctx context.Context, mgr *window.Manager, steps []map[string]map[string]interface{}, stopOnError bool) DoResult {
	result := DoResult{Steps: len(steps), Results: make([]StepResult, 0, len(steps))}
	last := ""

	for i, step := range steps {
		stepNum := i + 1
		if len(step) != 1 {
			errMsg := fmt.Sprintf("step %d: expected exactly one action key, got %d", stepNum, len(step))
			result.Results = append(result.Results, StepResult{Step: stepNum, Error: errMsg})
			if result.Error == "" {
				result.Error = errMsg
			}
			if stopOnError {
				break
			}
			continue
		}

		for action, params := range step {
			sr := executeStep(ctx, mgr, action, params, &last)
			sr.Step = stepNum
			result.Results = append(result.Results, sr)
			if sr.OK {
				result.Completed++
			} else if result.Error == "" || stopOnError {
				result.Error = fmt.Sprintf("step %d: %s", stepNum, sr.Error)
			}
		}
		if result.Error != "" && stopOnError {
			break
		}
	}

	result.OK = result.Completed == result.Steps
	result.Windows = mgr.Windows()
	return result
}

func executeStep(ctx context.Context, mgr *window.Manager, action string, params map[string]interface{}, last *string) StepResult {
	sr := StepResult{Action: action}

	key := stringParam(params, "key", "")
	if key == lastKey {
		key = *last
	}
	sr.Key = key

	var err error
	switch action {
	case "open":
		var k string
		k, err = mgr.Open(ctx, stringParam(params, "type", ""))
		if k != "" {
			*last = k
			sr.Key = k
		}
	case "move":
		x, hasX := params["x"]
		y, hasY := params["y"]
		if !hasX || !hasY || x == nil || y == nil {
			err = fmt.Errorf("move requires x and y")
			break
		}
		err = mgr.Move(key, intParam(params, "x", 0), intParam(params, "y", 0))
	case "arrange":
		err = mgr.Arrange(key)
	case "minimize":
		err = mgr.Minimize(key)
	case "finish-minimize":
		err = mgr.FinishMinimizeAnimation(key)
	case "restore":
		err = mgr.Restore(key)
	case "lock":
		locked := true
		if v, ok := params["locked"].(bool); ok {
			locked = v
		}
		err = mgr.SetLocked(key, locked)
	case "select-row":
		err = mgr.SelectRow(key, intParam(params, "table", 0), stringParam(params, "row", ""))
	case "hover-row":
		err = mgr.HoverRow(key, intParam(params, "table", 0), optionalIntParam(params, "row"))
	case "column-width":
		err = mgr.SetColumnWidth(key, intParam(params, "table", 0), intParam(params, "column", 0), intParam(params, "width", 0))
	default:
		err = fmt.Errorf("unknown action %q", action)
	}

	if err != nil {
		sr.Error = err.Error()
		return sr
	}
	sr.OK = true
	return sr
}
