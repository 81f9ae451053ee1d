package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/wheelr/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create wheelr configuration file",
	Long: `Create a wheelr configuration file with the default settings.

By default, creates a global config at ~/.config/wheelr/wheelr.yml.
Use --project to create a project-local config in the current directory.`,
	RunE: runSetup,
}

var configFlags struct {
	project bool
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wheelr configuration",
	Long: `Manage wheelr configuration.

Configuration is loaded from multiple sources with the following precedence:
  Environment variables (WHEELR_*) > Project config > Global config > Defaults

Project config: ./wheelr.yml
Global config: ~/.config/wheelr/wheelr.yml`,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long: `Open the config file in $EDITOR, creating it with defaults first if needed.
The file is validated after the editor exits.`,
	RunE: runConfigEdit,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")

	configEditCmd.Flags().BoolVarP(&configFlags.project, "project", "p", false, "Edit the project config instead of the global one")
	configCmd.AddCommand(configEditCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Determine target path
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	// Check if config already exists
	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	if err := writeConfig(setupFlags.project, config.Defaults()); err != nil {
		return err
	}

	// Print success message
	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'wheelr pick --min 1 --max 10' to try it.")

	return nil
}

func writeConfig(project bool, cfg *config.Config) error {
	var err error
	if project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	path := config.GlobalPath()
	if configFlags.project {
		path = config.ProjectPath()
	}
	if !fileExists(path) {
		if err := writeConfig(configFlags.project, config.Defaults()); err != nil {
			return err
		}
	}

	c, err := editor.Command("wheelr", path)
	if err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config no longer loads: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config saved but invalid: %w", err)
	}
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
