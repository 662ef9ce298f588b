package grpc

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

// memStore is a map-backed store used to exercise the full handler and
// interceptor stack without a database. Records are listed in insertion
// order, which is id order for the sequence-keyed resources.
type memStore[T any, K comparable] struct {
	resource string
	recs     map[K]T
	order    []K
	keyOf    func(T) K
	onCreate func(T) T
}

func (r *memStore[T, K]) Create(_ context.Context, rec T) (T, error) {
	stored := r.onCreate(rec)
	key := r.keyOf(stored)
	if _, ok := r.recs[key]; !ok {
		r.order = append(r.order, key)
	}
	r.recs[key] = stored
	return stored, nil
}

func (r *memStore[T, K]) Get(_ context.Context, key K) (T, error) {
	stored, ok := r.recs[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", r.resource, common.ErrorNotFound)
	}
	return stored, nil
}

func (r *memStore[T, K]) List(_ context.Context, limit int64) ([]T, error) {
	var out []T
	for _, key := range r.order {
		if int64(len(out)) >= limit {
			break
		}
		if stored, ok := r.recs[key]; ok {
			out = append(out, stored)
		}
	}
	return out, nil
}

func (r *memStore[T, K]) Update(_ context.Context, rec T) (T, error) {
	key := r.keyOf(rec)
	if _, ok := r.recs[key]; !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", r.resource, common.ErrorNotFound)
	}
	r.recs[key] = rec
	return rec, nil
}

func (r *memStore[T, K]) Delete(_ context.Context, key K) error {
	if _, ok := r.recs[key]; !ok {
		return fmt.Errorf("%s: %w", r.resource, common.ErrorNotFound)
	}
	delete(r.recs, key)
	return nil
}

type fakeManager struct {
	songs          *memStore[*models.Song, int64]
	concerts       *memStore[*models.Concert, int64]
	participations *memStore[*models.Participation, models.ParticipationKey]
}

func newFakeManager() *fakeManager {
	var songSeq, concertSeq int64
	return &fakeManager{
		songs: &memStore[*models.Song, int64]{
			resource: "song",
			recs:     map[int64]*models.Song{},
			keyOf:    func(s *models.Song) int64 { return s.ID },
			onCreate: func(s *models.Song) *models.Song {
				songSeq++
				stored := *s
				stored.ID = songSeq
				return &stored
			},
		},
		concerts: &memStore[*models.Concert, int64]{
			resource: "concert",
			recs:     map[int64]*models.Concert{},
			keyOf:    func(c *models.Concert) int64 { return c.ID },
			onCreate: func(c *models.Concert) *models.Concert {
				concertSeq++
				stored := *c
				stored.ID = concertSeq
				return &stored
			},
		},
		participations: &memStore[*models.Participation, models.ParticipationKey]{
			resource: "participation",
			recs:     map[models.ParticipationKey]*models.Participation{},
			keyOf:    func(p *models.Participation) models.ParticipationKey { return p.Key() },
			onCreate: func(p *models.Participation) *models.Participation {
				stored := *p
				return &stored
			},
		},
	}
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeManager) Songs(dbx.DBTX) songs.Repository { return m.songs }

func (m *fakeManager) Concerts(dbx.DBTX) concerts.Repository { return m.concerts }

func (m *fakeManager) Participations(dbx.DBTX) participations.Repository {
	return m.participations
}
