package models

import "database/sql"

// Concert is a scheduled (or undated) concert. Date carries only the day,
// stored as a DATE column.
type Concert struct {
	ID   int64
	Name string
	Date sql.NullTime
}
