package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

var (
	skipConfirm bool
	quiet       bool
)

// SetSkipConfirm disables interactive confirmation prompts (--yes).
func SetSkipConfirm(v bool) { skipConfirm = v }

// SetQuiet suppresses success/info output (--quiet).
func SetQuiet(v bool) { quiet = v }

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Print(prompt + suffix)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		fmt.Printf("✓ %s\n", fmt.Sprintf(format, args...))
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Printf("%s\n", fmt.Sprintf(format, args...))
	}
}
