// Package participations provides the PostgreSQL-backed participation
// repository. A participation has no surrogate id: the (song_id, person_id,
// role) triplet is the primary key, and create fills nothing in.
package participations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/dbx"
	"github.com/bandroom/bandroom/internal/server/models"
)

// PostgresRepository implements participation storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Participation) (*models.Participation, error) {
	query :=
		`INSERT INTO song_participations (song_id, person_id, role, role_title)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, p.SongID, p.PersonID, p.Role, p.RoleTitle)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, key models.ParticipationKey) (*models.Participation, error) {
	query :=
		`SELECT song_id, person_id, role, role_title FROM song_participations
		 WHERE song_id = $1 AND person_id = $2 AND role = $3
		 `

	p := &models.Participation{}
	err := r.db.QueryRowContext(ctx, query, key.SongID, key.PersonID, key.Role).
		Scan(&p.SongID, &p.PersonID, &p.Role, &p.RoleTitle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int64) ([]*models.Participation, error) {
	query :=
		`SELECT song_id, person_id, role, role_title FROM song_participations
		 ORDER BY song_id, person_id, role
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Participation
	for rows.Next() {
		var item models.Participation
		if err := rows.Scan(&item.SongID, &item.PersonID, &item.Role, &item.RoleTitle); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Participation) (*models.Participation, error) {
	query :=
		`UPDATE song_participations SET role_title = $1
		 WHERE song_id = $2 AND person_id = $3 AND role = $4
		 `

	res, err := r.db.ExecContext(ctx, query, p.RoleTitle, p.SongID, p.PersonID, p.Role)
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

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key models.ParticipationKey) error {
	query :=
		`DELETE FROM song_participations
		 WHERE song_id = $1 AND person_id = $2 AND role = $3
		 `

	res, err := r.db.ExecContext(ctx, query, key.SongID, key.PersonID, key.Role)
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
