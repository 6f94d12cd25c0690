package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <layout>",
		Short: "Delete a layout",
		Long: `Delete a saved layout by id or name.

Examples:
  # Delete a layout, with confirmation
  zoner delete "Old Layout"

  # Delete without prompting
  zoner delete old-layout --yes`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	store := openStore()
	layout, err := resolveLayout(store, args[0])
	if err != nil {
		return err
	}

	ok, err := cli.Confirm(fmt.Sprintf("Delete layout %q (%d zones)?", layout.Name, len(layout.Zones)), false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("Aborted.")
		return nil
	}

	if err := store.DeleteLayout(layout.ID); err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}
	cli.PrintSuccess("Deleted layout %q", layout.Name)
	return nil
}
