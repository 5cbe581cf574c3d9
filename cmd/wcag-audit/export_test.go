package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stormfors/wcag-audit/internal/model"
	"github.com/stormfors/wcag-audit/internal/store"
)

// seedAuditData writes a small saved audit into a temp database directory.
func seedAuditData(t *testing.T, variant model.Variant) string {
	t.Helper()

	dbDir := t.TempDir()
	db, err := store.Open(dbDir, store.DefaultOptions())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := store.NewStore(context.Background(), db, variant, logger)
	if err != nil {
		t.Fatalf("store.NewStore: %v", err)
	}

	ctx := context.Background()
	st.SetClientInfo(ctx, "Example Co", "EX-1")
	if err := st.AddURL(ctx, "https://example.com/"); err != nil {
		t.Fatalf("AddURL: %v", err)
	}
	st.SetObservation(ctx, "imageAlt", "hero image has no alt text")
	st.SetExecutiveSummary(ctx, "One issue found.")

	return dbDir
}

// TestRunExportCmd tests the export command execution.
func TestRunExportCmd(t *testing.T) {
	t.Run("json to file", func(t *testing.T) {
		dbDir := seedAuditData(t, model.VariantBasic)
		outputPath := filepath.Join(t.TempDir(), "report.json")

		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"export", "basic", "--db-dir", dbDir, "-o", outputPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		var doc model.ReportDocument
		if err := json.Unmarshal(content, &doc); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if doc.ClientName != "Example Co" {
			t.Errorf("ClientName = %q", doc.ClientName)
		}
		if doc.TotalObservations() != 1 {
			t.Errorf("TotalObservations = %d, want 1", doc.TotalObservations())
		}
	})

	t.Run("html to file", func(t *testing.T) {
		dbDir := seedAuditData(t, model.VariantBasic)
		outputPath := filepath.Join(t.TempDir(), "report.html")

		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"export", "basic", "--db-dir", dbDir, "-f", "html", "-o", outputPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(content), "hero image has no alt text") {
			t.Error("expected report to contain the observation text")
		}
	})

	t.Run("markdown to stdout", func(t *testing.T) {
		dbDir := seedAuditData(t, model.VariantBasic)

		// Stdout capture: the writer targets os.Stdout when no -o is given.
		old := os.Stdout
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatalf("os.Pipe: %v", err)
		}
		os.Stdout = w
		defer func() { os.Stdout = old }()

		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"export", "basic", "--db-dir", dbDir, "-f", "markdown"})
		execErr := cmd.Execute()

		_ = w.Close()
		os.Stdout = old
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			t.Fatalf("read captured stdout: %v", err)
		}

		if execErr != nil {
			t.Fatalf("unexpected error: %v", execErr)
		}
		if !strings.Contains(buf.String(), "Example Co") {
			t.Error("expected markdown output to contain the client name")
		}
	})

	t.Run("missing database fails", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"export", "basic", "--db-dir", t.TempDir()})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("unknown variant fails", func(t *testing.T) {
		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"export", "nope", "--db-dir", t.TempDir()})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for unknown variant")
		}
	})

	t.Run("unknown format fails", func(t *testing.T) {
		dbDir := seedAuditData(t, model.VariantBasic)

		cmd := NewRootCmd()
		cmd.SetOut(io.Discard)
		cmd.SetArgs([]string{"export", "basic", "--db-dir", dbDir, "-f", "docx"})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

// TestWriteReport tests the render-then-commit output path.
func TestWriteReport(t *testing.T) {
	t.Parallel()

	t.Run("failed render leaves no file behind", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "report.pdf")
		renderErr := errors.New("render failed")

		err := writeReport(outputPath, func(out io.Writer) error {
			// Bytes written before the failure must not reach the file.
			_, _ = out.Write([]byte("partial"))
			return renderErr
		})
		if !errors.Is(err, renderErr) {
			t.Fatalf("err = %v, want render error", err)
		}
		if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
			t.Error("expected no file after a failed render")
		}
	})

	t.Run("failed render keeps an existing file intact", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "report.pdf")
		if err := os.WriteFile(outputPath, []byte("previous report"), 0600); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		err := writeReport(outputPath, func(out io.Writer) error {
			return errors.New("render failed")
		})
		if err == nil {
			t.Fatal("expected render error")
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if string(content) != "previous report" {
			t.Errorf("existing file was clobbered: %q", content)
		}
	})

	t.Run("successful render commits the file", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "nested", "report.json")
		err := writeReport(outputPath, func(out io.Writer) error {
			_, err := out.Write([]byte("{}"))
			return err
		})
		if err != nil {
			t.Fatalf("writeReport: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if string(content) != "{}" {
			t.Errorf("content = %q", content)
		}
	})
}

// TestRunClearCmd tests the clear command execution.
func TestRunClearCmd(t *testing.T) {
	t.Run("clears with --yes", func(t *testing.T) {
		dbDir := seedAuditData(t, model.VariantBasic)

		cmd := NewRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"clear", "basic", "--db-dir", dbDir, "--yes"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Cleared") {
			t.Errorf("output = %q", out.String())
		}

		// The saved row is gone.
		db, err := store.Open(dbDir, store.Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("store.Open: %v", err)
		}
		defer db.Close()
		_, found, err := db.Get(context.Background(), model.VariantBasic.StorageKey())
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if found {
			t.Error("expected saved state to be deleted")
		}
	})

	t.Run("aborts when declined", func(t *testing.T) {
		dbDir := seedAuditData(t, model.VariantBasic)

		cmd := NewRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetIn(strings.NewReader("n\n"))
		cmd.SetArgs([]string{"clear", "basic", "--db-dir", dbDir})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Aborted") {
			t.Errorf("output = %q", out.String())
		}

		// The saved row survives.
		db, err := store.Open(dbDir, store.Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("store.Open: %v", err)
		}
		defer db.Close()
		_, found, err := db.Get(context.Background(), model.VariantBasic.StorageKey())
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !found {
			t.Error("expected saved state to survive a declined prompt")
		}
	})
}
