package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single layout in the list
type ListItem struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Zones  int    `json:"zones" yaml:"zones"`
	Shader string `json:"shader,omitempty" yaml:"shader,omitempty"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved layouts",
		Long: `List all saved zone layouts.

Examples:
  # List layouts
  zoner list

  # List layouts as JSON
  zoner list -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	store := openStore()
	layouts, err := store.ListLayouts()
	if err != nil {
		return fmt.Errorf("failed to list layouts: %w", err)
	}

	result := ListResult{Count: len(layouts)}
	for _, l := range layouts {
		result.Items = append(result.Items, ListItem{
			ID:     l.ID,
			Name:   l.Name,
			Zones:  len(l.Zones),
			Shader: l.ShaderID,
		})
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, result)
	}

	if result.Count == 0 {
		cli.PrintInfo("No layouts found. Create one with 'zoner create <name>'.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "ZONES", "SHADER", "ID")
	for _, item := range result.Items {
		shader := item.Shader
		if shader == "" {
			shader = "-"
		}
		table.Row(item.Name, strconv.Itoa(item.Zones), shader, item.ID)
	}
	table.Flush()
	return nil
}
