package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stormfors/wcag-audit/internal/log"
	"github.com/stormfors/wcag-audit/internal/model"
	"github.com/stormfors/wcag-audit/internal/store"
)

// NewClearCmd creates the clear command.
func NewClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear <basic|in-depth>",
		Short: "Discard all saved audit data for one variant",
		Long: `Clear permanently deletes the saved audit state for one variant:
client details, registered pages, observations, checkmarks, and summary.

The other variant's data is untouched. There is no undo.

Examples:
  # Clear the basic checklist after confirming
  wcag-audit clear basic

  # Clear without the confirmation prompt
  wcag-audit clear in-depth --yes`,
		Args: cobra.ExactArgs(1),
		RunE: runClearCmd,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().String("db-dir", "",
		"Directory for the audit database (default: XDG data directory)")
	cmd.Flags().String("evaluator", "",
		"Organization name shown in generated reports")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wcag-audit in current or home directory)")

	return cmd
}

// runClearCmd executes the clear command.
func runClearCmd(cmd *cobra.Command, args []string) error {
	variant, err := model.ParseVariant(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	skipPrompt, err := cmd.Flags().GetBool("yes")
	if err != nil {
		return err
	}

	if !skipPrompt {
		fmt.Fprintf(cmd.OutOrStdout(), "Permanently delete all saved %s data? [y/N]: ", variant.Title())
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)

	db, err := store.Open(cfg.DBDir, store.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no saved audit data: %w", err)
	}
	defer db.Close()

	st, err := store.NewStore(cmd.Context(), db, variant, logger)
	if err != nil {
		return err
	}
	if err := st.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear audit state: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared all saved %s data.\n", variant.Title())
	return nil
}
