package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/wcag-audit.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".wcag-audit"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new wcag-audit configuration file",
		Long: `Initialize creates a new .wcag-audit configuration file in the current directory.

The generated file includes:
- The default listen address and database location
- Report metadata (evaluator name, WCAG version, conformance target)
- Documentation for all available options

Examples:
  # Create .wcag-audit in current directory
  wcag-audit init

  # Create config file at a specific path
  wcag-audit init -o myconfig.yaml

  # Force overwrite existing file
  wcag-audit init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/wcag-audit.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The address the workbench listens on")
	fmt.Fprintln(cmd.OutOrStdout(), "  - The evaluator name printed in reports")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Where audit data is stored")

	return nil
}
