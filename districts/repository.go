// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package districts

import (
	"database/sql"
	"errors"
	"time"

	"github.com/coletl/vote-simplified-us/civic"
)

// UserDistricts is one user's stored district record plus bookkeeping.
type UserDistricts struct {
	UserID    string               `json:"user_id"`
	Record    civic.DistrictRecord `json:"districts"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Repository persists district records keyed by user. Only the
// jurisdiction labels are ever stored; the address that produced them
// is not.
type Repository interface {
	// CreateSchema creates the user_districts table.
	CreateSchema() error

	// Save inserts or replaces a user's district record.
	Save(userID string, rec civic.DistrictRecord) error

	// Get returns a user's stored record. found is false when the
	// user has none.
	Get(userID string) (rec civic.DistrictRecord, found bool, err error)

	// Delete removes a user's stored record.
	Delete(userID string) error

	// Count returns the number of stored records.
	Count() (int, error)

	// DB returns the underlying database connection.
	DB() *sql.DB
}

type sqlDistrictRepository struct {
	db *sql.DB
}

// NewRepository creates a district repository over an open DuckDB
// connection.
func NewRepository(db *sql.DB) Repository {
	return &sqlDistrictRepository{db: db}
}

func (r *sqlDistrictRepository) DB() *sql.DB {
	return r.db
}

func (r *sqlDistrictRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS user_districts (
			user_id VARCHAR PRIMARY KEY,
			state VARCHAR,
			county VARCHAR,
			municipal VARCHAR,
			congressional_district VARCHAR,
			state_district VARCHAR,
			state_lower_district VARCHAR,
			school_board VARCHAR,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)

	return err
}

func (r *sqlDistrictRepository) Save(userID string, rec civic.DistrictRecord) error {
	if err := validateUserID(userID); err != nil {
		return err
	}

	_, found, err := r.Get(userID)
	if err != nil {
		return err
	}

	now := time.Now()

	if found {
		_, err = r.db.Exec(`
			UPDATE user_districts
			SET state = ?, county = ?, municipal = ?,
			    congressional_district = ?, state_district = ?,
			    state_lower_district = ?, school_board = ?,
			    updated_at = ?
			WHERE user_id = ?
		`,
			rec.State,
			rec.County,
			rec.Municipal,
			rec.CongressionalDistrict,
			rec.StateDistrict,
			rec.StateLowerDistrict,
			rec.SchoolBoard,
			now,
			userID,
		)

		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO user_districts(
			user_id,
			state,
			county,
			municipal,
			congressional_district,
			state_district,
			state_lower_district,
			school_board,
			created_at,
			updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		userID,
		rec.State,
		rec.County,
		rec.Municipal,
		rec.CongressionalDistrict,
		rec.StateDistrict,
		rec.StateLowerDistrict,
		rec.SchoolBoard,
		now,
		now,
	)

	return err
}

func (r *sqlDistrictRepository) Get(userID string) (civic.DistrictRecord, bool, error) {
	var rec civic.DistrictRecord

	err := r.db.QueryRow(`
		SELECT state, county, municipal,
		       congressional_district, state_district,
		       state_lower_district, school_board
		FROM user_districts
		WHERE user_id = ?
	`, userID).Scan(
		&rec.State,
		&rec.County,
		&rec.Municipal,
		&rec.CongressionalDistrict,
		&rec.StateDistrict,
		&rec.StateLowerDistrict,
		&rec.SchoolBoard,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return civic.DistrictRecord{}, false, nil
	}

	if err != nil {
		return civic.DistrictRecord{}, false, err
	}

	return rec, true, nil
}

func (r *sqlDistrictRepository) Delete(userID string) error {
	_, err := r.db.Exec(`DELETE FROM user_districts WHERE user_id = ?`, userID)

	return err
}

func (r *sqlDistrictRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM user_districts`).Scan(&n)

	return n, err
}
