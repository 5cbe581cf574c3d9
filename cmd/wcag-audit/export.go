package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stormfors/wcag-audit/internal/catalog"
	"github.com/stormfors/wcag-audit/internal/log"
	"github.com/stormfors/wcag-audit/internal/model"
	"github.com/stormfors/wcag-audit/internal/pdf"
	"github.com/stormfors/wcag-audit/internal/report"
	"github.com/stormfors/wcag-audit/internal/store"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <basic|in-depth>",
		Short: "Export the saved audit as a report",
		Long: `Export assembles the saved audit state for one variant into a report.

Text formats (json, html, markdown) write to stdout unless --output is
given. PDF rendering needs a local Chrome or Chromium installation and
always writes to a file.

Examples:
  # Print the in-depth audit as JSON
  wcag-audit export in-depth

  # Write an HTML report
  wcag-audit export in-depth --format html --output report.html

  # Render a PDF (filename derived from the client name when omitted)
  wcag-audit export basic --format pdf`,
		Args: cobra.ExactArgs(1),
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("format", "f", "json",
		"Report format: json, html, markdown, or pdf")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to this file instead of stdout")
	cmd.Flags().String("db-dir", "",
		"Directory for the audit database (default: XDG data directory)")
	cmd.Flags().String("evaluator", "",
		"Organization name shown in generated reports")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wcag-audit in current or home directory)")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	variant, err := model.ParseVariant(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)

	// Exporting never creates a database: no database means no saved audit.
	db, err := store.Open(cfg.DBDir, store.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("no saved audit data (run \"wcag-audit serve\" first): %w", err)
	}
	defer db.Close()

	st, err := store.NewStore(cmd.Context(), db, variant, logger)
	if err != nil {
		return err
	}
	state := st.Snapshot()
	doc := report.Assemble(state, catalog.ForVariant(variant))
	meta := cfg.ReportMeta()

	// PDF output is binary and always goes to a file.
	if format == "pdf" && outputPath == "" {
		outputPath = report.ExportFilename(state.ClientName, state.DateCreated, "pdf")
	}

	var render func(io.Writer) error
	switch format {
	case "json":
		render = func(out io.Writer) error {
			_, err := report.NewJSONWriter(out, report.WithPrettyPrint()).Write(doc)
			return err
		}
	case "html":
		render = func(out io.Writer) error {
			_, err := report.NewHTMLWriter(out, report.WithMeta(meta)).Write(doc)
			return err
		}
	case "markdown", "md":
		render = func(out io.Writer) error {
			_, err := report.NewMarkdownWriter(out, report.WithMarkdownMeta(meta)).Write(doc)
			return err
		}
	case "pdf":
		gen := pdf.NewGenerator(pdf.WithMeta(meta), pdf.WithLogger(logger))
		render = func(out io.Writer) error {
			return gen.Render(cmd.Context(), doc, out)
		}
	default:
		return fmt.Errorf("unknown report format %q (want json, html, markdown, or pdf)", format)
	}

	if err := writeReport(outputPath, render); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if outputPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
	}
	return nil
}

// writeReport renders the report into memory and commits it to path only
// when rendering succeeds, so a failed render (Chrome missing for PDF,
// typically) leaves no partial or truncated file behind. An empty path
// means stdout. Reports may name unreleased client findings, so files are
// owner-only.
func writeReport(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}

	if path == "" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
