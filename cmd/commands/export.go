package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
)

var exportOutput string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <layout>",
		Short: "Export a layout to a JSON file",
		Long: `Export a layout to a standalone JSON file that can be shared and
imported on another machine.

Examples:
  # Export to <name>.json in the current directory
  zoner export "Two Columns"

  # Export to an explicit path
  zoner export two-columns -f ~/layouts/two-columns.json`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutput, "file", "f", "", "Destination path (default <name>.json)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	store := openStore()
	layout, err := resolveLayout(store, args[0])
	if err != nil {
		return err
	}

	dest := exportOutput
	if dest == "" {
		dest = sanitizeFilename(layout.Name) + ".json"
	}

	if err := store.ExportLayout(layout.ID, dest); err != nil {
		return fmt.Errorf("failed to export layout: %w", err)
	}
	cli.PrintSuccess("Exported %q to %s", layout.Name, dest)
	return nil
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			return r
		}
		return -1
	}, name)
	if name == "" {
		name = "layout"
	}
	return filepath.Clean(name)
}
