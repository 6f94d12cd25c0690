package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
	"github.com/zoner/zoner-cli/pkg/models"
	"github.com/zoner/zoner-cli/pkg/templates"
)

var createTemplate string

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new layout",
		Long: `Create a new layout, optionally seeded from a built-in template.

Run 'zoner create --template list' to see the available templates.

Examples:
  # Create an empty layout
  zoner create "My Layout"

  # Create a layout from the halves template
  zoner create "Split" --template halves`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Seed zones from a built-in template")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	if createTemplate == "list" {
		return listTemplates(cmd)
	}
	if len(args) == 0 {
		return fmt.Errorf("layout name is required")
	}

	store := openStore()
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to initialize config directory: %w", err)
	}

	if existing, err := store.FindLayoutByName(args[0]); err == nil {
		return fmt.Errorf("a layout named %q already exists (id %s)", args[0], existing.ID)
	}

	layout := models.NewLayout(args[0])
	if createTemplate != "" {
		tmpl, err := templates.Lookup(createTemplate)
		if err != nil {
			return err
		}
		layout.Zones = tmpl.Generate()
	}

	id, err := store.CreateLayout(layout)
	if err != nil {
		return fmt.Errorf("failed to create layout: %w", err)
	}

	cli.PrintSuccess("Created layout %q (id %s, %d zones)", layout.Name, id, len(layout.Zones))
	return nil
}

func listTemplates(cmd *cobra.Command) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	all := templates.Builtin()
	if outputFormat != string(cli.FormatText) {
		type item struct {
			ID          string `json:"id" yaml:"id"`
			Name        string `json:"name" yaml:"name"`
			Description string `json:"description" yaml:"description"`
		}
		items := make([]item, 0, len(all))
		for _, t := range all {
			items = append(items, item{ID: t.ID, Name: t.Name, Description: t.Description})
		}
		return cli.OutputResults(os.Stdout, outputFormat, items)
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("TEMPLATE", "DESCRIPTION")
	for _, t := range all {
		table.Row(t.ID, t.Description)
	}
	table.Flush()
	return nil
}
