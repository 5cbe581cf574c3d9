package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stormfors/wcag-audit/internal/config"
	"github.com/stormfors/wcag-audit/internal/log"
	"github.com/stormfors/wcag-audit/internal/model"
	"github.com/stormfors/wcag-audit/internal/server"
	"github.com/stormfors/wcag-audit/internal/store"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the audit workbench server",
		Long: `Serve starts the audit workbench on the loopback interface and keeps
running until interrupted.

Open the printed address in a browser to work through the checklists.
All progress is saved to the local database after every change.

Examples:
  # Start on the default address
  wcag-audit serve

  # Start on a different port
  wcag-audit serve --listen 127.0.0.1:9000

  # Use a custom configuration file
  wcag-audit serve -c myconfig.yaml`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("listen", "l", config.DefaultListenAddr,
		"Address the server binds to (host:port)")
	cmd.Flags().String("db-dir", "",
		"Directory for the audit database (default: XDG data directory)")
	cmd.Flags().String("evaluator", "",
		"Organization name shown in generated reports")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wcag-audit in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("listen") {
		if cfg.ListenAddr, err = cmd.Flags().GetString("listen"); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(cfg.DBDir, store.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	logger.Info("database opened", "dir", cfg.DBDir)

	stores, err := openStores(ctx, db, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Audit workbench running at http://%s\n", cfg.ListenAddr)
	fmt.Println("Press Ctrl+C to stop. Progress is saved automatically.")

	return server.New(cfg, stores, logger).ListenAndServe(ctx)
}

// openStores loads the saved state for both audit variants.
func openStores(ctx context.Context, db *store.AuditDB, logger *slog.Logger) (map[model.Variant]*store.Store, error) {
	stores := make(map[model.Variant]*store.Store, 2)
	for _, v := range []model.Variant{model.VariantBasic, model.VariantInDepth} {
		s, err := store.NewStore(ctx, db, v, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s audit state: %w", v, err)
		}
		stores[v] = s
	}
	return stores, nil
}
