package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/bandroom/bandroom/internal/common"
	"github.com/bandroom/bandroom/internal/server/models"
)

func TestSongServiceUpdateMergesUnderMask(t *testing.T) {
	m := newFakeManager()
	svc := NewSongService(nil, m)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Song{
		Title:       "Komet",
		Description: sql.NullString{String: "old notes", Valid: true},
		Link:        sql.NullString{String: "https://example.com/komet", Valid: true},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, &models.Song{
		ID:    created.ID,
		Title: "Komet (live)",
	}, []string{"title"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "Komet (live)" {
		t.Errorf("title not updated, got %q", updated.Title)
	}
	if updated.Description.String != "old notes" {
		t.Errorf("description changed outside the mask: %q", updated.Description.String)
	}
	if updated.Link.String != "https://example.com/komet" {
		t.Errorf("link changed outside the mask: %q", updated.Link.String)
	}
}

func TestSongServiceUpdateEmptyMaskReplaces(t *testing.T) {
	m := newFakeManager()
	svc := NewSongService(nil, m)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Song{
		Title:       "Komet",
		Description: sql.NullString{String: "old notes", Valid: true},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, &models.Song{ID: created.ID, Title: "Renamed"}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "Renamed" {
		t.Errorf("title: got %q", updated.Title)
	}
	if updated.Description.Valid {
		t.Errorf("description survived a full replace: %q", updated.Description.String)
	}
}

func TestSongServiceUpdateUnknownMaskPath(t *testing.T) {
	m := newFakeManager()
	svc := NewSongService(nil, m)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Song{Title: "Komet"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, &models.Song{ID: created.ID, Title: "x"}, []string{"title", "composer"})
	if !errors.Is(err, common.ErrorUnknownMaskPath) {
		t.Fatalf("want ErrorUnknownMaskPath, got %v", err)
	}

	stored, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Title != "Komet" {
		t.Errorf("record changed despite failed merge: %q", stored.Title)
	}
}

func TestSongServiceUpdateRejectsBlankTitle(t *testing.T) {
	m := newFakeManager()
	svc := NewSongService(nil, m)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Song{Title: "Komet"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Update(ctx, &models.Song{ID: created.ID, Title: "   "}, []string{"title"})
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestSongServiceUpdateMissing(t *testing.T) {
	svc := NewSongService(nil, newFakeManager())

	_, err := svc.Update(context.Background(), &models.Song{ID: 999, Title: "x"}, nil)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestSongServiceListClampsPageSize(t *testing.T) {
	m := newFakeManager()
	svc := NewSongService(nil, m)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, &models.Song{Title: "song"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("page size 2: got %d records", len(got))
	}

	got, err = svc.List(ctx, -1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("default page size: got %d records", len(got))
	}
}

func TestConcertServiceUpdateMergesUnderMask(t *testing.T) {
	m := newFakeManager()
	svc := NewConcertService(nil, m)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Concert{Name: "Spring show"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, &models.Concert{ID: created.ID, Name: "Autumn show"}, []string{"name"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Autumn show" {
		t.Errorf("name: got %q", updated.Name)
	}
}

func TestParticipationServiceCreateRequiresSong(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	m := newFakeManager()
	svc := NewParticipationService(db, m)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err = svc.Create(ctx, &models.Participation{SongID: 5, PersonID: 7, Role: "vocals"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound for missing song, got %v", err)
	}
	if len(m.participations.recs) != 0 {
		t.Errorf("participation written despite missing song")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestParticipationServiceCreateAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	m := newFakeManager()
	ctx := context.Background()

	song, err := m.songs.Create(ctx, &models.Song{Title: "Komet"})
	if err != nil {
		t.Fatalf("seed song: %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewParticipationService(db, m)
	created, err := svc.Create(ctx, &models.Participation{
		SongID:   song.ID,
		PersonID: 7,
		Role:     "vocals",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, created.Key())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Role != "vocals" || got.PersonID != 7 {
		t.Errorf("stored participation mismatch: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction expectations: %v", err)
	}
}

func TestParticipationServiceUpdateMasksRoleTitleOnly(t *testing.T) {
	m := newFakeManager()
	svc := NewParticipationService(nil, m)
	ctx := context.Background()

	key := models.ParticipationKey{SongID: 1, PersonID: 7, Role: "vocals"}
	if _, err := m.participations.Create(ctx, &models.Participation{
		SongID: 1, PersonID: 7, Role: "vocals",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.Update(ctx, &models.Participation{
		SongID: 1, PersonID: 7, Role: "vocals",
		RoleTitle: sql.NullString{String: "Lead vocals", Valid: true},
	}, []string{"role_title"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RoleTitle.String != "Lead vocals" {
		t.Errorf("role_title: got %q", updated.RoleTitle.String)
	}
	if updated.Key() != key {
		t.Errorf("identity changed: %+v", updated.Key())
	}

	// identity components are not maskable
	_, err = svc.Update(ctx, &models.Participation{
		SongID: 1, PersonID: 7, Role: "vocals",
	}, []string{"person_id"})
	if !errors.Is(err, common.ErrorUnknownMaskPath) {
		t.Fatalf("want ErrorUnknownMaskPath for person_id, got %v", err)
	}
}

func TestParticipationServiceDelete(t *testing.T) {
	m := newFakeManager()
	svc := NewParticipationService(nil, m)
	ctx := context.Background()

	key := models.ParticipationKey{SongID: 1, PersonID: 7, Role: "vocals"}
	if _, err := m.participations.Create(ctx, &models.Participation{
		SongID: 1, PersonID: 7, Role: "vocals",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, key); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("second delete: want ErrorNotFound, got %v", err)
	}
}
