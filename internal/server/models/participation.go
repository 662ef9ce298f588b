package models

import "database/sql"

// ParticipationKey identifies one participation: a person playing one role
// in one song. All three components are part of the identity and immutable.
type ParticipationKey struct {
	SongID   int64
	PersonID int64
	Role     string
}

// Participation links a person to a song in a given role. RoleTitle is the
// one mutable field, a free-form display name for the role.
type Participation struct {
	SongID    int64
	PersonID  int64
	Role      string
	RoleTitle sql.NullString
}

// Key returns the identity triplet of the participation.
func (p *Participation) Key() ParticipationKey {
	return ParticipationKey{SongID: p.SongID, PersonID: p.PersonID, Role: p.Role}
}
