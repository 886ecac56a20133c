package albums

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/travelmate/internal/client/models"
	"github.com/dmitrijs2005/travelmate/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Replace(ctx context.Context, list []models.Album) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM album_cache`); err != nil {
			return fmt.Errorf("failed to clear album cache: %w", err)
		}
		for _, a := range list {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO album_cache (name, image_count, created_at) VALUES (?, ?, ?)
			`, a.Name, a.ImageCount, a.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to cache album %q: %w", a.Name, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Album, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, image_count, created_at FROM album_cache ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to read album cache: %w", err)
	}
	defer rows.Close()

	var result []models.Album
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(&a.Name, &a.ImageCount, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan album row: %w", err)
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate album rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM album_cache WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete cached album %q: %w", name, err)
	}
	return nil
}
