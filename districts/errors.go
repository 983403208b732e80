// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package districts

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// LookupError carries the failure class of a district lookup so that
// callers can show the right guidance instead of a generic message.
type LookupError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// ErrorKind classifies lookup failures.
type ErrorKind int

const (
	// KindUnknown is an unclassified failure.
	KindUnknown ErrorKind = iota
	// KindValidation means the submitted address was rejected before
	// any upstream call.
	KindValidation
	// KindPermissionDenied means the user refused to share their
	// position.
	KindPermissionDenied
	// KindUnsupportedPlatform means no position provider exists here.
	KindUnsupportedPlatform
	// KindLookupFailure means an upstream service failed.
	KindLookupFailure
	// KindPersistenceFailure means districts were found but could not
	// be stored.
	KindPersistenceFailure
)

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether the failure was caused by bad
// input rather than an upstream problem.
func IsValidationError(err error) bool {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind == KindValidation
	}

	return false
}

// IsPermissionDenied reports whether the user refused to share their
// position.
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind == KindPermissionDenied
	}

	errStr := strings.ToLower(err.Error())

	return strings.Contains(errStr, "permission denied")
}

// IsLookupFailure reports whether an upstream service failed during
// the lookup.
func IsLookupFailure(err error) bool {
	if err == nil {
		return false
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Kind == KindLookupFailure
	}

	errStr := strings.ToLower(err.Error())

	return strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// ClassifyHTTPError maps an upstream HTTP status to a LookupError.
func ClassifyHTTPError(service string, statusCode int) *LookupError {
	switch statusCode {
	case http.StatusTooManyRequests:
		return &LookupError{
			Kind:    KindLookupFailure,
			Message: fmt.Sprintf("%s rate limit reached", service),
		}
	case http.StatusForbidden, http.StatusUnauthorized:
		return &LookupError{
			Kind:    KindLookupFailure,
			Message: fmt.Sprintf("%s rejected our credentials", service),
		}
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return &LookupError{
			Kind:    KindLookupFailure,
			Message: fmt.Sprintf("%s unavailable (status %d)", service, statusCode),
		}
	default:
		return &LookupError{
			Kind:    KindUnknown,
			Message: fmt.Sprintf("%s returned HTTP %d", service, statusCode),
		}
	}
}
