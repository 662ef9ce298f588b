package songs

import (
	"github.com/bandroom/bandroom/internal/server/models"
	"github.com/bandroom/bandroom/internal/server/store"
)

// Repository is the song persistence contract: the generic store keyed by
// the song's integer id.
type Repository = store.Store[*models.Song, int64]
