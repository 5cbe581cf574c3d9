// Package main provides the entry point for the wcag-audit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stormfors/wcag-audit/internal/config"
)

// NewRootCmd creates the root command for wcag-audit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wcag-audit",
		Short: "Local WCAG accessibility auditing workbench",
		Long: `wcag-audit runs a browser-based WCAG audit checklist on your machine.

It serves two audit flows: a basic easy-checks list for quick reviews and
a full WCAG 2.2 criteria list for in-depth audits. Progress is saved
locally after every change, and finished audits export as JSON, HTML,
Markdown, or PDF reports.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewClearCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the flags shared by serve, export,
// and clear, then layers the config file on top when one is found.
// An explicitly specified config file must exist; the default search
// locations may come up empty.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags set by the user override the config file.
	if cmd.Flags().Changed("db-dir") {
		if cfg.DBDir, err = cmd.Flags().GetString("db-dir"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("evaluator") {
		if cfg.Evaluator, err = cmd.Flags().GetString("evaluator"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}
