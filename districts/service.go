// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

// Package districts resolves a user's electoral districts and keeps
// the results. Addresses pass through lookups and are never stored.
package districts

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/coletl/vote-simplified-us/civic"
	"github.com/coletl/vote-simplified-us/geocode"
	"github.com/coletl/vote-simplified-us/spatial"
	"github.com/coletl/vote-simplified-us/utils/httputils"
)

// CivicAPI is the slice of the civic client the lookup needs.
type CivicAPI interface {
	DivisionsByAddress(ctx context.Context, address string) (map[string]civic.Division, error)
}

// ReverseGeocoder resolves coordinates to Census geographies.
type ReverseGeocoder interface {
	GeographiesByCoordinates(ctx context.Context, p spatial.Point) (geocode.Geographies, error)
}

// Service orchestrates district lookups: validate, geocode if needed,
// query the civic API, extract, persist. The repository and local
// store are both optional; a Service with neither still answers
// lookups, it just cannot remember them.
type Service struct {
	civic    CivicAPI
	geocoder ReverseGeocoder
	position geocode.PositionSource
	repo     Repository
	store    LocalStore
}

// ServiceOptions collects the collaborators of a Service. Civic is
// required, everything else optional.
type ServiceOptions struct {
	Civic    CivicAPI
	Geocoder ReverseGeocoder
	Position geocode.PositionSource
	Repo     Repository
	Store    LocalStore
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		civic:    opts.Civic,
		geocoder: opts.Geocoder,
		position: opts.Position,
		repo:     opts.Repo,
		store:    opts.Store,
	}
}

// lookupDivisions runs the shared tail of both lookup paths: civic
// query, error classification, extraction.
func (s *Service) lookupDivisions(ctx context.Context, formatted string) (civic.DistrictRecord, error) {
	divisions, err := s.civic.DivisionsByAddress(ctx, formatted)
	if err != nil {
		var statusErr *httputils.StatusError
		if errors.As(err, &statusErr) {
			return civic.DistrictRecord{}, ClassifyHTTPError(statusErr.Service, statusErr.Code)
		}

		return civic.DistrictRecord{}, &LookupError{
			Kind:    KindLookupFailure,
			Message: "district lookup failed",
			Err:     err,
		}
	}

	rec := civic.ExtractDistrictInfo(divisions)
	if rec.Empty() {
		return civic.DistrictRecord{}, &LookupError{
			Kind:    KindLookupFailure,
			Message: "address not found or no electoral districts matched",
		}
	}

	return rec, nil
}

// LookupByAddress resolves the districts for a street address. The
// address is used for this one call and discarded; only the resulting
// record is persisted.
func (s *Service) LookupByAddress(ctx context.Context, userID string, addr civic.AddressInput) (civic.DistrictRecord, error) {
	addr = sanitizeAddress(addr)

	if err := validateAddress(addr); err != nil {
		return civic.DistrictRecord{}, &LookupError{
			Kind:    KindValidation,
			Message: "invalid address",
			Err:     err,
		}
	}

	rec, err := s.lookupDivisions(ctx, civic.FormatAddress(addr))
	if err != nil {
		return civic.DistrictRecord{}, err
	}

	s.persist(userID, rec)

	return rec, nil
}

// LookupByGeolocation resolves districts from the device position. The
// position is coarsened before leaving the process, reverse geocoded
// to a city or county, and that coarse locality is what reaches the
// civic API. When reverse geocoding fails the raw coarse coordinates
// go to the civic API directly.
func (s *Service) LookupByGeolocation(ctx context.Context, userID string) (civic.DistrictRecord, error) {
	if s.position == nil {
		return civic.DistrictRecord{}, &LookupError{
			Kind:    KindUnsupportedPlatform,
			Message: "geolocation is not available here",
		}
	}

	p, err := s.position.Current(ctx)
	if err != nil {
		if errors.Is(err, geocode.ErrPermissionDenied) {
			return civic.DistrictRecord{}, &LookupError{
				Kind:    KindPermissionDenied,
				Message: "location permission was denied",
				Err:     err,
			}
		}

		return civic.DistrictRecord{}, &LookupError{
			Kind:    KindUnsupportedPlatform,
			Message: "could not determine position",
			Err:     err,
		}
	}

	coarse := spatial.Coarsen(p)

	formatted := coarse.String()

	if s.geocoder != nil {
		geos, err := s.geocoder.GeographiesByCoordinates(ctx, coarse)
		if err != nil {
			log.Printf("reverse geocoding failed, using raw coordinates: %v", err)
		} else if addr := geocode.RecoverAddress(geos); !addr.Empty() {
			formatted = civic.FormatAddress(addr)
		}
	}

	rec, err := s.lookupDivisions(ctx, formatted)
	if err != nil {
		return civic.DistrictRecord{}, err
	}

	s.persist(userID, rec)

	return rec, nil
}

// Districts returns the user's stored record. The repository wins over
// the local store. found is false when the user has never completed a
// lookup.
func (s *Service) Districts(ctx context.Context, userID string) (civic.DistrictRecord, bool, error) {
	if err := validateUserID(userID); err != nil {
		return civic.DistrictRecord{}, false, &LookupError{
			Kind:    KindValidation,
			Message: "invalid user id",
			Err:     err,
		}
	}

	if s.repo != nil {
		rec, found, err := s.repo.Get(userID)
		if err == nil {
			return rec, found, nil
		}

		log.Printf("repository read failed, trying local store: %v", err)
	}

	if s.store != nil {
		return s.store.Load(userID)
	}

	return civic.DistrictRecord{}, false, nil
}

// Persist stores a record explicitly. Unlike the save piggybacked on a
// lookup, failures here are reported.
func (s *Service) Persist(ctx context.Context, userID string, rec civic.DistrictRecord) error {
	if err := validateUserID(userID); err != nil {
		return &LookupError{
			Kind:    KindValidation,
			Message: "invalid user id",
			Err:     err,
		}
	}

	var errs []error

	if s.repo != nil {
		if err := s.repo.Save(userID, rec); err != nil {
			errs = append(errs, fmt.Errorf("repository: %w", err))
		}
	}

	if s.store != nil {
		if err := s.store.Save(userID, rec); err != nil {
			errs = append(errs, fmt.Errorf("local store: %w", err))
		}
	}

	if len(errs) > 0 {
		return &LookupError{
			Kind:    KindPersistenceFailure,
			Message: "could not store districts",
			Err:     errors.Join(errs...),
		}
	}

	return nil
}

// persist is the best-effort save after a successful lookup. A storage
// problem never turns a found record into a failed lookup.
func (s *Service) persist(userID string, rec civic.DistrictRecord) {
	if rec.Empty() || userID == "" {
		return
	}

	if s.repo != nil {
		if err := s.repo.Save(userID, rec); err != nil {
			log.Printf("saving districts for %s failed: %v", userID, err)
		}
	}

	if s.store != nil {
		if err := s.store.Save(userID, rec); err != nil {
			log.Printf("caching districts for %s failed: %v", userID, err)
		}
	}
}
