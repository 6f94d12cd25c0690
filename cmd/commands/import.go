package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a layout from a JSON file",
		Long: `Import a layout from an exported JSON file. The imported layout gets
a fresh id so it never collides with an existing layout.

Examples:
  zoner import ~/layouts/two-columns.json`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	store := openStore()
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to initialize config directory: %w", err)
	}

	id, err := store.ImportLayout(args[0])
	if err != nil {
		return fmt.Errorf("failed to import layout: %w", err)
	}

	layout, err := store.LoadLayout(id)
	if err != nil {
		return fmt.Errorf("imported layout unreadable: %w", err)
	}
	cli.PrintSuccess("Imported %q (id %s, %d zones)", layout.Name, id, len(layout.Zones))
	return nil
}
