package concerts

import (
	"github.com/bandroom/bandroom/internal/server/models"
	"github.com/bandroom/bandroom/internal/server/store"
)

// Repository is the concert persistence contract: the generic store keyed
// by the concert's integer id.
type Repository = store.Store[*models.Concert, int64]
