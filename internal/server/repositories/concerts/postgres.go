// Package concerts provides the PostgreSQL-backed concert repository.
package concerts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/dbx"
	"github.com/bandroom/bandroom/internal/server/models"
)

// PostgresRepository implements concert storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, concert *models.Concert) (*models.Concert, error) {
	query :=
		`INSERT INTO concerts (name, date)
		 VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, concert.Name, concert.Date).Scan(&concert.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return concert, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Concert, error) {
	query :=
		`SELECT id, name, date FROM concerts
		 WHERE id = $1
		 `

	concert := &models.Concert{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&concert.ID, &concert.Name, &concert.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return concert, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int64) ([]*models.Concert, error) {
	query :=
		`SELECT id, name, date FROM concerts
		 ORDER BY id
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Concert
	for rows.Next() {
		var item models.Concert
		if err := rows.Scan(&item.ID, &item.Name, &item.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, concert *models.Concert) (*models.Concert, error) {
	query :=
		`UPDATE concerts SET name = $1, date = $2
		 WHERE id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, concert.Name, concert.Date, concert.ID)
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

	return concert, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM concerts WHERE id = $1`, id)
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
