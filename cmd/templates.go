package cmd

import (
	"github.com/mj1618/winstack/internal/model"
	"github.com/mj1618/winstack/internal/output"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the window types that can be opened",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

// templateEntry is the output for one window type.
type templateEntry struct {
	Type     string       `yaml:"type"     json:"type"`
	Title    string       `yaml:"title"    json:"title"`
	Size     model.Size   `yaml:"size"     json:"size"`
	Position model.Anchor `yaml:"position" json:"position"`
	Tables   int          `yaml:"tables"   json:"tables"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	entries := make([]templateEntry, 0, catalog.Len())
	for _, name := range catalog.Types() {
		t, _ := catalog.Lookup(name)
		entries = append(entries, templateEntry{
			Type:     name,
			Title:    t.Title,
			Size:     t.Size,
			Position: t.Position,
			Tables:   len(t.Tables),
		})
	}
	return output.Fprint(cmd.OutOrStdout(), entries)
}
