// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package civic

import (
	"strings"
)

// AddressInput is a user-supplied or geolocation-derived partial postal
// address. It exists only for the duration of a lookup and is never
// persisted.
type AddressInput struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// Empty reports whether no field carries a value.
func (a AddressInput) Empty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.Zip == ""
}

// FormatAddress produces the one-line form the geocoding and civic APIs
// accept: street, city and state joined with ", ", the zip appended with
// a single space. Empty fields are skipped and no stray separators are
// produced. Formatting an already formatted string passed back as the
// street field reproduces it unchanged.
func FormatAddress(a AddressInput) string {
	var sb strings.Builder

	for _, part := range []string{a.Street, a.City, a.State} {
		if part == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(part)
	}

	if a.Zip != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(a.Zip)
	}

	return sb.String()
}
