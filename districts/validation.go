// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package districts

import (
	"fmt"
	"strings"

	"github.com/coletl/vote-simplified-us/civic"
)

const maxFieldLength = 500

// validateAddress checks that an address lookup has enough to work
// with. The civic API cannot resolve districts below the state level
// without street, city, and state. Zip is optional.
func validateAddress(a civic.AddressInput) error {
	if strings.TrimSpace(a.Street) == "" {
		return fmt.Errorf("street is required")
	}

	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("city is required")
	}

	if strings.TrimSpace(a.State) == "" {
		return fmt.Errorf("state is required")
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zip", a.Zip},
	} {
		if len(field.value) > maxFieldLength {
			return fmt.Errorf("%s too long (maximum %d characters)", field.name, maxFieldLength)
		}
	}

	return nil
}

// sanitizeAddress trims and caps every field.
func sanitizeAddress(a civic.AddressInput) civic.AddressInput {
	return civic.AddressInput{
		Street: sanitizeField(a.Street),
		City:   sanitizeField(a.City),
		State:  sanitizeField(a.State),
		Zip:    sanitizeField(a.Zip),
	}
}

func sanitizeField(s string) string {
	s = strings.TrimSpace(s)

	if len(s) > maxFieldLength {
		s = s[:maxFieldLength]
	}

	return s
}

// validateUserID keeps arbitrary junk out of the persistence key.
func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}

	if len(userID) > 128 {
		return fmt.Errorf("user id too long (maximum 128 characters)")
	}

	return nil
}
