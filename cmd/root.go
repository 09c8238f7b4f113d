package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/winstack/internal/output"
	"github.com/mj1618/winstack/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "winstack",
	Short: "Open and arrange floating windows from declarative templates",
	Long: `winstack opens floating windows from a template catalog, places each at its
anchored screen point and cascades windows that land on exactly the same point.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output (no-op for YAML)")
	rootCmd.PersistentFlags().String("config-dir", "", "Directory holding config.yaml (default ~/.winstack)")
	rootCmd.PersistentFlags().String("templates", "", "Template YAML file replacing the built-in window types")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}
