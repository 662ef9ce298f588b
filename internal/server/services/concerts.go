package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/fieldmask"
	"github.com/bandroom/bandroom/internal/server/models"
	"github.com/bandroom/bandroom/internal/server/repositories/repomanager"
	"github.com/bandroom/bandroom/internal/server/store"
)

var concertMaskSetters = map[string]fieldmask.Setter[models.Concert]{
	"name": func(dst, src *models.Concert) { dst.Name = src.Name },
	"date": func(dst, src *models.Concert) { dst.Date = src.Date },
}

type ConcertService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewConcertService(db *sql.DB, m repomanager.RepositoryManager) *ConcertService {
	return &ConcertService{db: db, repomanager: m}
}

func (s *ConcertService) Create(ctx context.Context, concert *models.Concert) (*models.Concert, error) {
	return s.repomanager.Concerts(s.db).Create(ctx, concert)
}

func (s *ConcertService) Get(ctx context.Context, id int64) (*models.Concert, error) {
	return s.repomanager.Concerts(s.db).Get(ctx, id)
}

func (s *ConcertService) List(ctx context.Context, pageSize int32) ([]*models.Concert, error) {
	return s.repomanager.Concerts(s.db).List(ctx, store.LimitFromPageSize(pageSize))
}

func (s *ConcertService) Update(ctx context.Context, incoming *models.Concert, maskPaths []string) (*models.Concert, error) {
	repo := s.repomanager.Concerts(s.db)

	existing, err := repo.Get(ctx, incoming.ID)
	if err != nil {
		return nil, err
	}

	merged, err := fieldmask.Apply(*existing, *incoming, maskPaths, concertMaskSetters)
	if err != nil {
		return nil, err
	}
	merged.ID = incoming.ID

	if strings.TrimSpace(merged.Name) == "" {
		return nil, fmt.Errorf("%w: concert name is required", common.ErrorValidation)
	}

	return repo.Update(ctx, &merged)
}

func (s *ConcertService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Concerts(s.db).Delete(ctx, id)
}
