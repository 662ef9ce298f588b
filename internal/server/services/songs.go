// Package services implements the resource operations between the gRPC
// handlers and the repositories: list clamping, the read-merge-write update
// path, and the multi-statement flows that need a transaction.
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

var songMaskSetters = map[string]fieldmask.Setter[models.Song]{
	"title":       func(dst, src *models.Song) { dst.Title = src.Title },
	"description": func(dst, src *models.Song) { dst.Description = src.Description },
	"link":        func(dst, src *models.Song) { dst.Link = src.Link },
}

type SongService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSongService(db *sql.DB, m repomanager.RepositoryManager) *SongService {
	return &SongService{db: db, repomanager: m}
}

func (s *SongService) Create(ctx context.Context, song *models.Song) (*models.Song, error) {
	return s.repomanager.Songs(s.db).Create(ctx, song)
}

func (s *SongService) Get(ctx context.Context, id int64) (*models.Song, error) {
	return s.repomanager.Songs(s.db).Get(ctx, id)
}

func (s *SongService) List(ctx context.Context, pageSize int32) ([]*models.Song, error) {
	return s.repomanager.Songs(s.db).List(ctx, store.LimitFromPageSize(pageSize))
}

// Update runs the read-merge-write path: fetch the stored record, merge the
// incoming one under the mask, validate the merged result, write the full
// row back. The path is not guarded by a concurrency token; the storage
// layer's full-row write makes the last writer win.
func (s *SongService) Update(ctx context.Context, incoming *models.Song, maskPaths []string) (*models.Song, error) {
	repo := s.repomanager.Songs(s.db)

	existing, err := repo.Get(ctx, incoming.ID)
	if err != nil {
		return nil, err
	}

	merged, err := fieldmask.Apply(*existing, *incoming, maskPaths, songMaskSetters)
	if err != nil {
		return nil, err
	}
	merged.ID = incoming.ID

	if strings.TrimSpace(merged.Title) == "" {
		return nil, fmt.Errorf("%w: song title is required", common.ErrorValidation)
	}

	return repo.Update(ctx, &merged)
}

func (s *SongService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Songs(s.db).Delete(ctx, id)
}
