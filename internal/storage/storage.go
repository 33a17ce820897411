// Package storage defines the Storage interface: the contract any
// database backend must satisfy to serve the schools API.
//
// Handlers depend only on this interface, so tests can pass an in-memory
// fake and the SQLite implementation can be swapped without touching the
// HTTP layer.
package storage

import "github.com/aanand-mishra/schools-directory/internal/types"

// Storage is the database contract for school records.
type Storage interface {
	// CreateSchool inserts a new school and returns its generated ID.
	// The ID field of school is ignored.
	CreateSchool(school types.School) (int64, error)

	// GetSchools returns every school in insertion order.
	// Returns an empty slice (not nil) if there are none.
	GetSchools() ([]types.School, error)
}
