// Package dataset provides the employee records shown in the directory.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jask/showcase/internal/config"
	"github.com/jask/showcase/internal/database"
	"github.com/jask/showcase/internal/database/repository"
	"github.com/jask/showcase/internal/directory"
)

// Load returns the records for the configured source. The sqlite source is
// migrated and seeded with the builtin set when its table is empty.
func Load(ctx context.Context, cfg config.Config, log *slog.Logger) ([]directory.Employee, error) {
	switch cfg.Dataset.Source {
	case config.SourceBuiltin:
		return Builtin(), nil
	case config.SourceYAML:
		records, err := LoadYAML(cfg.Dataset.Path)
		if err != nil {
			return nil, err
		}
		log.Info("dataset loaded", "source", "yaml", "path", cfg.Dataset.Path, "records", len(records))
		return records, nil
	case config.SourceSQLite:
		return loadSQLite(ctx, cfg.Database, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, cfg.Dataset.Source)
	}
}

func loadSQLite(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) ([]directory.Employee, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Path, cfg.Migrations); err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	repo := repository.NewEmployeeRepo(db)
	seeded, err := repo.SeedIfEmpty(ctx, Builtin())
	if err != nil {
		return nil, fmt.Errorf("seed employees: %w", err)
	}
	if seeded {
		log.Info("seeded employees", "path", cfg.Path)
	}
	records, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	log.Info("dataset loaded", "source", "sqlite", "path", cfg.Path, "records", len(records))
	return records, nil
}
