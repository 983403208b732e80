// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package directory

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Repository persists the registration directory so deployments can
// correct stale deadlines without a rebuild. The embedded table is the
// seed and the fallback.
type Repository interface {
	// CreateSchema creates the state_registration table.
	CreateSchema() error

	// Save inserts or replaces one state's entry.
	Save(info StateInfo) error

	// Get returns one state's entry. found is false when the code is
	// unknown.
	Get(code string) (info StateInfo, found bool, err error)

	// List returns all stored entries sorted by code.
	List() ([]StateInfo, error)

	// Count returns the number of stored entries.
	Count() (int, error)

	// DB returns the underlying database connection.
	DB() *sql.DB
}

type sqlDirectoryRepository struct {
	db *sql.DB
}

// NewRepository creates a directory repository over an open DuckDB
// connection.
func NewRepository(db *sql.DB) Repository {
	return &sqlDirectoryRepository{db: db}
}

func (r *sqlDirectoryRepository) DB() *sql.DB {
	return r.db
}

func (r *sqlDirectoryRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS state_registration (
			code VARCHAR PRIMARY KEY,
			name VARCHAR NOT NULL,
			registration_url VARCHAR NOT NULL,
			deadline VARCHAR NOT NULL,
			absentee_deadline VARCHAR NOT NULL,
			early_voting VARCHAR NOT NULL,
			status_url VARCHAR,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)

	return err
}

func (r *sqlDirectoryRepository) Save(info StateInfo) error {
	code := strings.ToUpper(strings.TrimSpace(info.Code))
	if code == "" {
		return errors.New("state code is required")
	}

	_, found, err := r.Get(code)
	if err != nil {
		return err
	}

	if found {
		_, err = r.db.Exec(`
			UPDATE state_registration
			SET name = ?, registration_url = ?, deadline = ?,
			    absentee_deadline = ?, early_voting = ?, status_url = ?,
			    updated_at = ?
			WHERE code = ?
		`,
			info.Name,
			info.RegistrationURL,
			info.Deadline,
			info.AbsenteeDeadline,
			info.EarlyVoting,
			info.StatusURL,
			time.Now(),
			code,
		)

		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO state_registration(
			code, name, registration_url, deadline,
			absentee_deadline, early_voting, status_url
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		code,
		info.Name,
		info.RegistrationURL,
		info.Deadline,
		info.AbsenteeDeadline,
		info.EarlyVoting,
		info.StatusURL,
	)

	return err
}

func (r *sqlDirectoryRepository) Get(code string) (StateInfo, bool, error) {
	var info StateInfo

	err := r.db.QueryRow(`
		SELECT code, name, registration_url, deadline,
		       absentee_deadline, early_voting, status_url
		FROM state_registration
		WHERE code = ?
	`, strings.ToUpper(strings.TrimSpace(code))).Scan(
		&info.Code,
		&info.Name,
		&info.RegistrationURL,
		&info.Deadline,
		&info.AbsenteeDeadline,
		&info.EarlyVoting,
		&info.StatusURL,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return StateInfo{}, false, nil
	}

	if err != nil {
		return StateInfo{}, false, err
	}

	return info, true, nil
}

func (r *sqlDirectoryRepository) List() ([]StateInfo, error) {
	rows, err := r.db.Query(`
		SELECT code, name, registration_url, deadline,
		       absentee_deadline, early_voting, status_url
		FROM state_registration
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StateInfo

	for rows.Next() {
		var info StateInfo

		if err := rows.Scan(
			&info.Code,
			&info.Name,
			&info.RegistrationURL,
			&info.Deadline,
			&info.AbsenteeDeadline,
			&info.EarlyVoting,
			&info.StatusURL,
		); err != nil {
			return nil, err
		}

		out = append(out, info)
	}

	return out, rows.Err()
}

func (r *sqlDirectoryRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM state_registration`).Scan(&n)

	return n, err
}

// Resolver answers directory lookups from the repository when it has
// data and from the embedded table otherwise. A nil repository is
// fine.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

func (res *Resolver) Resolve(code string) (StateInfo, bool) {
	if res.repo != nil {
		info, found, err := res.repo.Get(code)
		if err == nil && found {
			return info, true
		}
	}

	return Lookup(code)
}

// States lists every known entry, preferring the repository when it
// holds a full data set.
func (res *Resolver) States() []StateInfo {
	if res.repo != nil {
		if stored, err := res.repo.List(); err == nil && len(stored) > 0 {
			return stored
		}
	}

	return All()
}
