// Package songs provides the PostgreSQL-backed song repository.
package songs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/dbx"
	"github.com/bandroom/bandroom/internal/server/models"
)

// PostgresRepository implements song storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, song *models.Song) (*models.Song, error) {
	query :=
		`INSERT INTO songs (title, description, link)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		song.Title, song.Description, song.Link).Scan(&song.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return song, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Song, error) {
	query :=
		`SELECT id, title, description, link FROM songs
		 WHERE id = $1
		 `

	song := &models.Song{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&song.ID, &song.Title, &song.Description, &song.Link)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return song, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int64) ([]*models.Song, error) {
	query :=
		`SELECT id, title, description, link FROM songs
		 ORDER BY id
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Song
	for rows.Next() {
		var item models.Song
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Link); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, song *models.Song) (*models.Song, error) {
	query :=
		`UPDATE songs SET title = $1, description = $2, link = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, song.Title, song.Description, song.Link, song.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return nil, common.ErrorNotFound
	}

	return song, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
