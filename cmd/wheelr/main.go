package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/wheelr/internal/logger"
	"github.com/mark3labs/wheelr/internal/tui/theme"
	"github.com/spf13/cobra"
)

const logoText = "◎ wheelr"

// Version set via ldflags during build
var version = "dev"

// exitCode is set by commands that finish without an error but should not
// report success, such as a cancelled picker.
var exitCode int

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		_ = logger.Close()
		os.Exit(1)
	}
	if exitCode != 0 {
		_ = logger.Close()
		os.Exit(exitCode)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wheelr",
	Short: "Scroll-wheel pickers for the terminal",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.Current()
	return theme.Gradient(logoText, t.Primary, t.Secondary)
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

wheelr shows one or more picker wheels in the terminal and prints the value
you settle on. Scroll with the mouse wheel, drag the wheel, tap a row, or use
the arrow keys; typing jumps to the closest matching row.

Enter prints the value and exits 0. Esc or ctrl+c exits 1 without output.
Accepted values can be remembered per picker name and journaled to an
embedded NATS JetStream store for 'wheelr history'.`

	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(floatCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(configCmd)
}
