package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zoner/zoner-cli/cmd/commands"
	"github.com/zoner/zoner-cli/internal/cli"
	"github.com/zoner/zoner-cli/pkg/files"
	"github.com/zoner/zoner-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput    string
	flagConfigDir string
	flagYes       bool
	flagQuiet     bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "zoner",
	Short: "Terminal-based editor for window-snapping zone layouts",
	Long: `Zoner is a terminal-based editor for window-snapping zone layouts.
Layouts are stored as plain JSON files under the user config directory
and edited in a TUI with full undo/redo, snapping and templates.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.ValidateOutputFormat(flagOutput); err != nil {
			return err
		}
		cli.SetSkipConfirm(flagYes)
		cli.SetQuiet(flagQuiet)
		commands.SetConfigDir(flagConfigDir)
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store := files.NewStore()
		if flagConfigDir != "" {
			store = files.NewStoreAt(flagConfigDir)
		}
		if err := store.Init(); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", store.Root(), err)
		}

		settings, err := store.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		log.Debug("starting TUI", "config", store.Root())
		app := tui.NewApp(store, settings)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the zoner config directory",
	Long:  `Creates the zoner config directory, layouts folder and default settings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := files.NewStore()
		if flagConfigDir != "" {
			store = files.NewStoreAt(flagConfigDir)
		}
		if err := store.Init(); err != nil {
			return fmt.Errorf("failed to initialize config directory: %w", err)
		}
		cli.PrintSuccess("Initialized %s", store.Root())
		cli.PrintInfo("Run 'zoner' to start the interactive editor.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of zoner",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zoner version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: text, json, or yaml")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Override the config directory")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress success output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewRenameCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewImportCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
