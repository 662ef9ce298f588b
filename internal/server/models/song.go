// Package models contains the server-side data structures persisted by the
// repositories.
package models

import "database/sql"

// Song is a song in the band repertoire. Description and Link are nullable
// in storage; the empty string maps to NULL at the API boundary.
type Song struct {
	ID          int64
	Title       string
	Description sql.NullString
	Link        sql.NullString
}
