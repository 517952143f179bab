package repository

import (
	"context"
	"database/sql"
	"fmt"

	"productdb/internal/model"
)

// CatalogSQLite mirrors the cleaned catalog into a SQLite table. The table
// is rebuilt on every save.
type CatalogSQLite struct {
	DB *sql.DB
}

func (r *CatalogSQLite) Save(ctx context.Context, runID string, records []model.CatalogRecord) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS products`); err != nil {
		return fmt.Errorf("failed to drop products: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE products (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			labels TEXT NOT NULL,
			image_links TEXT NOT NULL,
			product_link TEXT NOT NULL,
			price TEXT NOT NULL,
			source TEXT NOT NULL,
			run_id TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products
		(id, name, description, labels, image_links, product_link, price, source, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range records {
		if _, err := stmt.ExecContext(ctx, i+1, p.Name, p.Description, p.Labels, p.ImageLinks, p.ProductLink, p.Price, string(p.Source), runID); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of exported rows.
func (r *CatalogSQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}
