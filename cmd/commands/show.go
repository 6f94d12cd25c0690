package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
	"github.com/zoner/zoner-cli/pkg/tui"
)

var (
	showNoPreview     bool
	showPreviewWidth  int
	showPreviewHeight int
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <layout>",
		Short: "Show a layout's zones",
		Long: `Show a layout's zones, geometry and metadata, with an ASCII preview
of the zone arrangement.

The layout can be referenced by id or by name.

Examples:
  # Show a layout with preview
  zoner show "Two Columns"

  # Show the raw layout as JSON
  zoner show two-columns -o json

  # Skip the preview
  zoner show two-columns --no-preview`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showNoPreview, "no-preview", false, "Skip the ASCII preview")
	cmd.Flags().IntVar(&showPreviewWidth, "width", 64, "Preview width in columns")
	cmd.Flags().IntVar(&showPreviewHeight, "height", 20, "Preview height in rows")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	store := openStore()
	layout, err := resolveLayout(store, args[0])
	if err != nil {
		return err
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, layout)
	}

	fmt.Printf("Layout: %s\n", layout.Name)
	fmt.Printf("ID:     %s\n", layout.ID)
	if layout.ShaderID != "" {
		fmt.Printf("Shader: %s\n", layout.ShaderID)
	}
	if layout.ZonePadding >= 0 {
		fmt.Printf("Zone padding: %d\n", layout.ZonePadding)
	}
	if layout.OuterGap >= 0 {
		fmt.Printf("Outer gap:    %d\n", layout.OuterGap)
	}
	fmt.Println()

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("#", "NAME", "GEOMETRY")
	for _, z := range layout.Zones {
		name := z.Name
		if name == "" {
			name = "-"
		}
		g := z.Geometry
		table.Row(fmt.Sprintf("%d", z.Number), name, cli.FormatRect(g.X, g.Y, g.Width, g.Height))
	}
	table.Flush()

	if !showNoPreview && len(layout.Zones) > 0 {
		fmt.Println()
		fmt.Println(tui.RenderPreview(layout.Zones, nil, showPreviewWidth, showPreviewHeight))
	}
	return nil
}
