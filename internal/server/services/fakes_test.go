package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/dbx"
	"github.com/bandroom/bandroom/internal/server/models"
	"github.com/bandroom/bandroom/internal/server/repositories/concerts"
	"github.com/bandroom/bandroom/internal/server/repositories/participations"
	"github.com/bandroom/bandroom/internal/server/repositories/songs"
)

// fakeManager vends map-backed repositories so service behavior can be
// tested without a database. The vended repositories ignore the DBTX; the
// manager only records that transactional flows asked for one.
type fakeManager struct {
	songs          *memSongs
	concerts       *memConcerts
	participations *memParticipations
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		songs:          &memSongs{recs: map[int64]models.Song{}},
		concerts:       &memConcerts{recs: map[int64]models.Concert{}},
		participations: &memParticipations{recs: map[models.ParticipationKey]models.Participation{}},
	}
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeManager) Songs(dbx.DBTX) songs.Repository { return m.songs }

func (m *fakeManager) Concerts(dbx.DBTX) concerts.Repository { return m.concerts }

func (m *fakeManager) Participations(dbx.DBTX) participations.Repository {
	return m.participations
}

type memSongs struct {
	recs   map[int64]models.Song
	nextID int64
}

func (r *memSongs) Create(_ context.Context, rec *models.Song) (*models.Song, error) {
	r.nextID++
	stored := *rec
	stored.ID = r.nextID
	r.recs[stored.ID] = stored
	return &stored, nil
}

func (r *memSongs) Get(_ context.Context, id int64) (*models.Song, error) {
	stored, ok := r.recs[id]
	if !ok {
		return nil, fmt.Errorf("song %d: %w", id, common.ErrorNotFound)
	}
	return &stored, nil
}

func (r *memSongs) List(_ context.Context, limit int64) ([]*models.Song, error) {
	var out []*models.Song
	for id := int64(1); id <= r.nextID && int64(len(out)) < limit; id++ {
		if stored, ok := r.recs[id]; ok {
			rec := stored
			out = append(out, &rec)
		}
	}
	return out, nil
}

func (r *memSongs) Update(_ context.Context, rec *models.Song) (*models.Song, error) {
	if _, ok := r.recs[rec.ID]; !ok {
		return nil, fmt.Errorf("song %d: %w", rec.ID, common.ErrorNotFound)
	}
	r.recs[rec.ID] = *rec
	stored := *rec
	return &stored, nil
}

func (r *memSongs) Delete(_ context.Context, id int64) error {
	if _, ok := r.recs[id]; !ok {
		return fmt.Errorf("song %d: %w", id, common.ErrorNotFound)
	}
	delete(r.recs, id)
	return nil
}

type memConcerts struct {
	recs   map[int64]models.Concert
	nextID int64
}

func (r *memConcerts) Create(_ context.Context, rec *models.Concert) (*models.Concert, error) {
	r.nextID++
	stored := *rec
	stored.ID = r.nextID
	r.recs[stored.ID] = stored
	return &stored, nil
}

func (r *memConcerts) Get(_ context.Context, id int64) (*models.Concert, error) {
	stored, ok := r.recs[id]
	if !ok {
		return nil, fmt.Errorf("concert %d: %w", id, common.ErrorNotFound)
	}
	return &stored, nil
}

func (r *memConcerts) List(_ context.Context, limit int64) ([]*models.Concert, error) {
	var out []*models.Concert
	for id := int64(1); id <= r.nextID && int64(len(out)) < limit; id++ {
		if stored, ok := r.recs[id]; ok {
			rec := stored
			out = append(out, &rec)
		}
	}
	return out, nil
}

func (r *memConcerts) Update(_ context.Context, rec *models.Concert) (*models.Concert, error) {
	if _, ok := r.recs[rec.ID]; !ok {
		return nil, fmt.Errorf("concert %d: %w", rec.ID, common.ErrorNotFound)
	}
	r.recs[rec.ID] = *rec
	stored := *rec
	return &stored, nil
}

func (r *memConcerts) Delete(_ context.Context, id int64) error {
	if _, ok := r.recs[id]; !ok {
		return fmt.Errorf("concert %d: %w", id, common.ErrorNotFound)
	}
	delete(r.recs, id)
	return nil
}

type memParticipations struct {
	recs map[models.ParticipationKey]models.Participation
}

func (r *memParticipations) Create(_ context.Context, rec *models.Participation) (*models.Participation, error) {
	stored := *rec
	r.recs[stored.Key()] = stored
	return &stored, nil
}

func (r *memParticipations) Get(_ context.Context, key models.ParticipationKey) (*models.Participation, error) {
	stored, ok := r.recs[key]
	if !ok {
		return nil, fmt.Errorf("participation: %w", common.ErrorNotFound)
	}
	return &stored, nil
}

func (r *memParticipations) List(_ context.Context, limit int64) ([]*models.Participation, error) {
	var out []*models.Participation
	for _, stored := range r.recs {
		if int64(len(out)) >= limit {
			break
		}
		rec := stored
		out = append(out, &rec)
	}
	return out, nil
}

func (r *memParticipations) Update(_ context.Context, rec *models.Participation) (*models.Participation, error) {
	if _, ok := r.recs[rec.Key()]; !ok {
		return nil, fmt.Errorf("participation: %w", common.ErrorNotFound)
	}
	r.recs[rec.Key()] = *rec
	stored := *rec
	return &stored, nil
}

func (r *memParticipations) Delete(_ context.Context, key models.ParticipationKey) error {
	if _, ok := r.recs[key]; !ok {
		return fmt.Errorf("participation: %w", common.ErrorNotFound)
	}
	delete(r.recs, key)
	return nil
}
