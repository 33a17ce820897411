// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite keeps the whole directory in a single file: no separate server
// process, nothing to install beyond the driver.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/schools-directory/internal/types"

	// Side-effect only: registers the "sqlite3" driver.
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// Db is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at path, creates the schools table if it
// does not exist yet, and returns a ready-to-use *SQLite.
func New(path string) (*SQLite, error) {
	// sql.Open only validates the driver name and DSN; the first real
	// connection happens on the first query.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Idempotent, safe to run on every startup.
	//
	// contact is INTEGER: SQLite integers are 64-bit, wide enough for
	// any 10-digit phone number.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schools (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			name     TEXT    NOT NULL,
			address  TEXT    NOT NULL,
			city     TEXT    NOT NULL,
			state    TEXT    NOT NULL,
			contact  INTEGER NOT NULL,
			image    TEXT    NOT NULL DEFAULT '',
			email_id TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// CreateSchool inserts a new row into the schools table.
//
// Values are passed as ? placeholders so user input is never interpreted
// as SQL.
func (s *SQLite) CreateSchool(school types.School) (int64, error) {
	stmt, err := s.Db.Prepare(`
		INSERT INTO schools (name, address, city, state, contact, image, email_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("CreateSchool: prepare: %w", err)
	}
	defer stmt.Close()

	// Argument order must match the column list above.
	result, err := stmt.Exec(
		school.Name,
		school.Address,
		school.City,
		school.State,
		school.Contact,
		school.Image,
		school.EmailID,
	)
	if err != nil {
		return 0, fmt.Errorf("CreateSchool: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateSchool: last insert id: %w", err)
	}

	return lastID, nil
}

// GetSchools returns every school ordered by id.
func (s *SQLite) GetSchools() ([]types.School, error) {
	rows, err := s.Db.Query(`
		SELECT id, name, address, city, state, contact, image, email_id
		FROM schools
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("GetSchools: query: %w", err)
	}
	defer rows.Close()

	// Start with an empty (non-nil) slice so an empty table encodes to []
	// rather than null.
	schools := []types.School{}

	for rows.Next() {
		var school types.School
		if err := rows.Scan(
			&school.ID,
			&school.Name,
			&school.Address,
			&school.City,
			&school.State,
			&school.Contact,
			&school.Image,
			&school.EmailID,
		); err != nil {
			return nil, fmt.Errorf("GetSchools: scan: %w", err)
		}
		schools = append(schools, school)
	}

	// rows.Err reports errors hit during iteration (e.g. a dropped
	// connection) that rows.Next swallows.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetSchools: rows: %w", err)
	}

	return schools, nil
}
