package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/dbx"
	"github.com/bandroom/bandroom/internal/fieldmask"
	"github.com/bandroom/bandroom/internal/server/models"
	"github.com/bandroom/bandroom/internal/server/repositories/repomanager"
	"github.com/bandroom/bandroom/internal/server/store"
)

// Only the display title is settable; the triplet components are identity
// and stay out of the setter map, so masking them fails the merge.
var participationMaskSetters = map[string]fieldmask.Setter[models.Participation]{
	"role_title": func(dst, src *models.Participation) { dst.RoleTitle = src.RoleTitle },
}

type ParticipationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewParticipationService(db *sql.DB, m repomanager.RepositoryManager) *ParticipationService {
	return &ParticipationService{db: db, repomanager: m}
}

// Create inserts a participation after confirming the referenced song
// exists, inside one transaction. A missing song surfaces as
// common.ErrorNotFound before anything is written.
func (s *ParticipationService) Create(ctx context.Context, p *models.Participation) (*models.Participation, error) {
	var created *models.Participation

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Songs(tx).Get(ctx, p.SongID); err != nil {
			return fmt.Errorf("song %d: %w", p.SongID, err)
		}

		var err error
		created, err = s.repomanager.Participations(tx).Create(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *ParticipationService) Get(ctx context.Context, key models.ParticipationKey) (*models.Participation, error) {
	return s.repomanager.Participations(s.db).Get(ctx, key)
}

func (s *ParticipationService) List(ctx context.Context, pageSize int32) ([]*models.Participation, error) {
	return s.repomanager.Participations(s.db).List(ctx, store.LimitFromPageSize(pageSize))
}

func (s *ParticipationService) Update(ctx context.Context, incoming *models.Participation, maskPaths []string) (*models.Participation, error) {
	repo := s.repomanager.Participations(s.db)

	existing, err := repo.Get(ctx, incoming.Key())
	if err != nil {
		return nil, err
	}

	merged, err := fieldmask.Apply(*existing, *incoming, maskPaths, participationMaskSetters)
	if err != nil {
		return nil, err
	}

	// identity never changes, whatever the merge produced
	merged.SongID = incoming.SongID
	merged.PersonID = incoming.PersonID
	merged.Role = incoming.Role

	if strings.TrimSpace(merged.Role) == "" {
		return nil, fmt.Errorf("%w: participation role is required", common.ErrorValidation)
	}

	return repo.Update(ctx, &merged)
}

func (s *ParticipationService) Delete(ctx context.Context, key models.ParticipationKey) error {
	return s.repomanager.Participations(s.db).Delete(ctx, key)
}
