// Package model holds the persisted entities of the website backend.
//
// Field tags: `db` matches the column name used by the repositories,
// `json` is the shape the frontend consumes.
package model

import "time"

// Base carries the identity and audit columns shared by most tables.
type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
