package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
)

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <layout> <new-name>",
		Short: "Rename a layout",
		Args:  cobra.ExactArgs(2),
		RunE:  runRename,
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	store := openStore()
	layout, err := resolveLayout(store, args[0])
	if err != nil {
		return err
	}

	newName := args[1]
	if newName == "" {
		return fmt.Errorf("new name cannot be empty")
	}
	if existing, err := store.FindLayoutByName(newName); err == nil && existing.ID != layout.ID {
		return fmt.Errorf("a layout named %q already exists (id %s)", newName, existing.ID)
	}

	oldName := layout.Name
	layout.Name = newName
	if err := store.UpdateLayout(layout); err != nil {
		return fmt.Errorf("failed to rename layout: %w", err)
	}
	cli.PrintSuccess("Renamed %q to %q", oldName, newName)
	return nil
}
