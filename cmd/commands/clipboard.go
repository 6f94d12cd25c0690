package commands

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
	"github.com/zoner/zoner-cli/pkg/models"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clipboard <layout>",
		Short: "Copy a layout's zones to the system clipboard",
		Long: `Copy a layout's zones to the system clipboard as a versioned JSON
envelope. The payload can be pasted into any editing session, or into
other tools that understand the zones JSON schema.

Examples:
  zoner clipboard "Two Columns"`,
		Args: cobra.ExactArgs(1),
		RunE: runClipboard,
	}
}

func runClipboard(cmd *cobra.Command, args []string) error {
	store := openStore()
	layout, err := resolveLayout(store, args[0])
	if err != nil {
		return err
	}
	if len(layout.Zones) == 0 {
		return fmt.Errorf("layout %q has no zones", layout.Name)
	}

	envelope := models.ClipboardEnvelope{
		MIMEType: models.ZonesMIMEType,
		Version:  models.ClipboardVersion,
		Zones:    layout.Zones,
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize zones: %w", err)
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}

	cli.PrintSuccess("Copied %d zones from %q to clipboard", len(layout.Zones), layout.Name)
	return nil
}
