package cmd

import (
	"context"
	"time"

	"github.com/mj1618/winstack/internal/output"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open TYPE [TYPE...]",
	Short: "Open windows in a fresh session and print the resulting layout",
	Long: `Open one or more windows, in order, in a fresh session and print where each
one ends up. Windows of the same type land on the same anchored point and are
cascaded away from each other.

Examples:
  winstack open board board board
  winstack open chat resource --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	for _, windowType := range args {
		if _, err := s.manager.Open(ctx, windowType); err != nil {
			return err
		}
	}

	return output.Fprint(cmd.OutOrStdout(), output.LayoutResult{
		Viewport: s.cfg.Viewport,
		TS:       time.Now().Unix(),
		Windows:  s.manager.Windows(),
	})
}
