package participations

import (
	"github.com/bandroom/bandroom/internal/server/models"
	"github.com/bandroom/bandroom/internal/server/store"
)

// Repository is the participation persistence contract: the generic store
// keyed by the identity triplet (song, person, role).
type Repository = store.Store[*models.Participation, models.ParticipationKey]
