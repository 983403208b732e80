// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package directory

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	info, ok := Lookup("WA")
	if !ok {
		t.Fatal("WA should be in the directory")
	}

	if info.Name != "Washington" {
		t.Errorf("Name = %q, want %q", info.Name, "Washington")
	}

	if info.RegistrationURL == "" || info.StatusURL == "" {
		t.Error("WA entry should carry both URLs")
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for _, code := range []string{"wa", "Wa", " WA "} {
		if _, ok := Lookup(code); !ok {
			t.Errorf("Lookup(%q) should find Washington", code)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("ZZ"); ok {
		t.Error("ZZ should not be in the directory")
	}

	if _, ok := Lookup(""); ok {
		t.Error("empty code should not be in the directory")
	}
}

func TestAllCoversStatesAndTerritories(t *testing.T) {
	entries := All()

	// 50 states, DC, and 5 territories.
	if len(entries) != 56 {
		t.Fatalf("len(All()) = %d, want 56", len(entries))
	}

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Code >= entries[i].Code {
			t.Fatalf("entries not sorted: %s before %s", entries[i-1].Code, entries[i].Code)
		}
	}

	for _, info := range entries {
		if info.Name == "" {
			t.Errorf("%s has no name", info.Code)
		}

		if !strings.HasPrefix(info.RegistrationURL, "https://") {
			t.Errorf("%s registration url is not https: %q", info.Code, info.RegistrationURL)
		}

		if info.Deadline == "" {
			t.Errorf("%s has no registration deadline", info.Code)
		}
	}
}
