package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"productdb/internal/catalog"
	"productdb/internal/config"
	"productdb/internal/db"
	"productdb/internal/generation"
	"productdb/internal/model"
	"productdb/internal/observability"
	"productdb/internal/repository"
)

func run(ctx context.Context, logOut io.Writer) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := observability.NewLogger(logOut, cfg.LogLevel).With("run", runID[:8])
	metrics := observability.NewMetrics()
	logger.Debug("Catalog directory", "dir", cfg.Dir)
	if cfg.EnvFile != "" {
		logger.Debug("Loaded env file", "path", cfg.EnvFile)
	}

	refs, err := (&repository.ReferenceRepository{Path: cfg.ReferencePath}).Load()
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}
	logger.Info(fmt.Sprintf("Loaded %d reference products", len(refs)))

	rows, err := (&repository.RawRepository{Path: cfg.InputPath}).List()
	if err != nil {
		return fmt.Errorf("failed to read raw products: %w", err)
	}

	client, err := generation.NewCompleter(ctx, generation.ClientConfig{
		Provider:  cfg.Provider,
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	if client != nil {
		defer client.Close()
	}
	if !cfg.HasCredential() {
		logger.Warn("No API key configured, using keyword fallback for generated rows", "provider", cfg.Provider)
	}

	builder := &catalog.Builder{
		References: refs,
		Generator:  &generation.Generator{Client: client, Logger: logger, Metrics: metrics},
		Logger:     logger,
		Metrics:    metrics,
	}
	records := builder.Build(ctx, rows)

	if err := (&repository.CatalogCSV{Path: cfg.OutputPath}).Save(records); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	logger.Info(fmt.Sprintf("Wrote %d rows to %s", len(records), cfg.OutputPath))

	if cfg.SQLitePath != "" {
		n, err := exportSQLite(ctx, cfg.SQLitePath, runID, records)
		if err != nil {
			return err
		}
		logger.Info("Exported catalog to SQLite", "path", cfg.SQLitePath, "rows", n)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	logSummary(logger, records, metrics)
	return nil
}

// exportSQLite mirrors records into the SQLite file and returns the stored row count.
func exportSQLite(ctx context.Context, path, runID string, records []model.CatalogRecord) (int, error) {
	conn, err := db.NewSQLite(path)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	repo := &repository.CatalogSQLite{DB: conn}
	if err := repo.Save(ctx, runID, records); err != nil {
		return 0, fmt.Errorf("failed to export sqlite: %w", err)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sqlite rows: %w", err)
	}
	return n, nil
}
