package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/internal/cli"
	"github.com/zoner/zoner-cli/pkg/models"
)

// NewSettingsCommand creates the settings command with get/set subcommands
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change editor settings",
		Long: `Inspect and change the global editor settings stored in
settings.yaml under the config directory.

Examples:
  # Show all settings
  zoner settings get

  # Show one setting
  zoner settings get snapping.grid_interval_x

  # Change a setting
  zoner settings set snapping.edge_threshold 0.02`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [key]",
		Short: "Show settings, or one setting by key",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSettingsGet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE:  runSettingsSet,
	})

	return cmd
}

// settingsAccessors maps dotted keys to typed get/set functions.
type settingsAccessor struct {
	get func(*models.Settings) string
	set func(*models.Settings, string) error
}

func boolAccessor(field func(*models.Settings) *bool) settingsAccessor {
	return settingsAccessor{
		get: func(s *models.Settings) string { return strconv.FormatBool(*field(s)) },
		set: func(s *models.Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*field(s) = b
			return nil
		},
	}
}

func floatAccessor(field func(*models.Settings) *float64, lo, hi float64) settingsAccessor {
	return settingsAccessor{
		get: func(s *models.Settings) string { return strconv.FormatFloat(*field(s), 'g', -1, 64) },
		set: func(s *models.Settings, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("expected a number, got %q", v)
			}
			if f < lo || f > hi {
				return fmt.Errorf("value %v out of range [%v, %v]", f, lo, hi)
			}
			*field(s) = f
			return nil
		},
	}
}

func intAccessor(field func(*models.Settings) *int, lo, hi int) settingsAccessor {
	return settingsAccessor{
		get: func(s *models.Settings) string { return strconv.Itoa(*field(s)) },
		set: func(s *models.Settings, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("expected an integer, got %q", v)
			}
			if n < lo || n > hi {
				return fmt.Errorf("value %d out of range [%d, %d]", n, lo, hi)
			}
			*field(s) = n
			return nil
		},
	}
}

var settingsKeys = map[string]settingsAccessor{
	"snapping.grid_enabled":    boolAccessor(func(s *models.Settings) *bool { return &s.Snapping.GridEnabled }),
	"snapping.grid_interval_x": floatAccessor(func(s *models.Settings) *float64 { return &s.Snapping.GridIntervalX }, 0.01, 0.5),
	"snapping.grid_interval_y": floatAccessor(func(s *models.Settings) *float64 { return &s.Snapping.GridIntervalY }, 0.01, 0.5),
	"snapping.edge_enabled":    boolAccessor(func(s *models.Settings) *bool { return &s.Snapping.EdgeEnabled }),
	"snapping.edge_threshold":  floatAccessor(func(s *models.Settings) *float64 { return &s.Snapping.EdgeThreshold }, 0, 0.2),
	"zones.min_size":           floatAccessor(func(s *models.Settings) *float64 { return &s.Zones.MinSize }, 0.01, 0.5),
	"zones.zone_padding":       intAccessor(func(s *models.Settings) *int { return &s.Zones.ZonePadding }, 0, 256),
	"zones.outer_gap":          intAccessor(func(s *models.Settings) *int { return &s.Zones.OuterGap }, 0, 256),
	"editor.undo_depth":        intAccessor(func(s *models.Settings) *int { return &s.Editor.UndoDepth }, 1, 10000),
	"editor.duplicate_offset":  floatAccessor(func(s *models.Settings) *float64 { return &s.Editor.DuplicateOffset }, 0, 0.5),
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	store := openStore()
	settings, err := store.ReadSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	if len(args) == 1 {
		acc, ok := settingsKeys[args[0]]
		if !ok {
			return fmt.Errorf("unknown setting %q (see 'zoner settings get')", args[0])
		}
		fmt.Println(acc.get(settings))
		return nil
	}

	if outputFormat != string(cli.FormatText) {
		return cli.OutputResults(os.Stdout, outputFormat, settings)
	}

	keys := make([]string, 0, len(settingsKeys))
	for k := range settingsKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("KEY", "VALUE")
	for _, k := range keys {
		table.Row(k, settingsKeys[k].get(settings))
	}
	table.Flush()
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	acc, ok := settingsKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting %q (see 'zoner settings get')", key)
	}

	store := openStore()
	if err := store.Init(); err != nil {
		return fmt.Errorf("failed to initialize config directory: %w", err)
	}
	settings, err := store.ReadSettings()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	if err := acc.set(settings, value); err != nil {
		return err
	}
	if err := store.WriteSettings(settings); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	cli.PrintSuccess("%s = %s", key, acc.get(settings))
	return nil
}
