package cmd

import (
	"strings"

	"github.com/mj1618/winstack/internal/model"
	"github.com/mj1618/winstack/internal/output"
	"github.com/mj1618/winstack/internal/position"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve ANCHOR",
	Short: "Print the top-left point an anchor resolves to",
	Long: `Resolve an anchor token (e.g. bottom-right) or a fixed point "x,y" for a window
of the given size inside the configured viewport.

Examples:
  winstack resolve bottom-right --width 360 --height 420
  winstack resolve 120,90`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Int("width", 400, "Window width")
	resolveCmd.Flags().Int("height", 300, "Window height")
}

// resolveResult is the output of the resolve command.
type resolveResult struct {
	Anchor string      `yaml:"anchor" json:"anchor"`
	Size   model.Size  `yaml:"size"   json:"size"`
	Point  model.Point `yaml:"point"  json:"point"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	size := model.Size{Width: width, Height: height}

	anchor := model.AnchorToken(args[0])
	if strings.Contains(args[0], ",") {
		b, err := parsePoint(args[0])
		if err != nil {
			return err
		}
		anchor = model.Anchor{Point: b}
	}

	pt, err := position.NewResolver(cfg.Viewport).Resolve(anchor, size, cfg.MenuHeight)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), resolveResult{Anchor: args[0], Size: size, Point: pt})
}
