// Package loader persists a warehouse bundle into a relational star schema.
// Each run is a full replacement: the five tables are emptied and refilled
// inside a single transaction, so a failure on any row rolls back the whole
// batch and the previous content survives.
package loader

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // database/sql driver

	"reviewmart/internal/models"
)

// Config holds the loader's target. All parameters are explicit; nothing is
// read from the environment.
type Config struct {
	// Driver is the database/sql driver name.
	Driver string
	// DSN is the driver-specific data source, e.g. a sqlite file path.
	DSN string
}

// Loader writes warehouse bundles to one target database.
type Loader struct {
	db *sqlx.DB
}

// Open connects to the target and applies the schema if absent.
func Open(cfg Config) (*Loader, error) {
	db, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()

		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Loader{db: db}, nil
}

// Close releases the database handle.
func (l *Loader) Close() error {
	return l.db.Close()
}

// Load replaces the warehouse content with the given bundle. Dimensions are
// inserted before facts, and everything runs in one transaction: any insert
// failure rolls back the entire run.
func (l *Loader) Load(ctx context.Context, w *models.Warehouse) error {
	tx, err := l.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range truncateOrder {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}

	if err := insertAll(ctx, tx, insertProduct, w.Products); err != nil {
		return fmt.Errorf("load dim_product: %w", err)
	}

	if err := insertAll(ctx, tx, insertBrand, w.Brands); err != nil {
		return fmt.Errorf("load dim_brand: %w", err)
	}

	if err := insertAll(ctx, tx, insertReviewer, w.Reviewers); err != nil {
		return fmt.Errorf("load dim_reviewer: %w", err)
	}

	if err := insertAll(ctx, tx, insertDate, w.Dates); err != nil {
		return fmt.Errorf("load dim_date: %w", err)
	}

	if err := insertAll(ctx, tx, insertFact, w.Facts); err != nil {
		return fmt.Errorf("load fact_reviews: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// insertAll inserts rows one by one through a prepared named statement. Row
// at a time keeps error positions exact; atomicity comes from the enclosing
// transaction, not from batching.
func insertAll[T any](ctx context.Context, tx *sqlx.Tx, query string, rows []T) error {
	stmt, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	return nil
}
