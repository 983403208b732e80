// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package civic

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DistrictRecord is the normalized output of a district lookup: pure
// jurisdiction labels, no address or other personal data. Each field is
// either empty or a non-empty display string.
type DistrictRecord struct {
	State                 string `json:"state,omitempty"`
	County                string `json:"county,omitempty"`
	Municipal             string `json:"municipal,omitempty"`
	CongressionalDistrict string `json:"congressional_district,omitempty"`
	StateDistrict         string `json:"state_district,omitempty"`
	StateLowerDistrict    string `json:"state_lower_district,omitempty"`
	SchoolBoard           string `json:"school_board,omitempty"`
}

// Empty reports whether the lookup produced no districts at all.
func (r DistrictRecord) Empty() bool {
	return r == DistrictRecord{}
}

// DisplayAddress reconstructs a best-effort address string for the
// voter-info endpoint, since the address that produced the record is
// never retained. Precedence: municipality+state, county+state, state.
func (r DistrictRecord) DisplayAddress() string {
	switch {
	case r.Municipal != "" && r.State != "":
		return r.Municipal + ", " + r.State
	case r.County != "" && r.State != "":
		return r.County + ", " + r.State
	default:
		return r.State
	}
}

var titleCaser = cases.Title(language.AmericanEnglish)

// OCD identifier segments separate words with underscores.
func segmentLabel(seg string) string {
	return titleCaser.String(strings.ReplaceAll(seg, "_", " "))
}

// divisionRule matches one recognized level of the OCD division
// hierarchy and knows which record field it feeds.
type divisionRule struct {
	pattern  *regexp.Regexp
	fallback func(seg string) string
	assign   func(r *DistrictRecord, label string)
}

// Ordered rule table for OCD division identifiers. Every key is tested
// against every rule; the anchored patterns keep a state-level key from
// also matching as a county or place key. Country-level keys carry no
// record field and match no rule on purpose.
var divisionRules = []divisionRule{
	{
		pattern:  regexp.MustCompile(`^ocd-division/country:us/state:(\w+)$`),
		fallback: func(seg string) string { return strings.ToUpper(seg) },
		assign:   func(r *DistrictRecord, label string) { r.State = label },
	},
	{
		pattern:  regexp.MustCompile(`^ocd-division/country:us/state:\w+/county:([^/]+)$`),
		fallback: func(seg string) string { return segmentLabel(seg) + " County" },
		assign:   func(r *DistrictRecord, label string) { r.County = label },
	},
	{
		pattern:  regexp.MustCompile(`^ocd-division/country:us/state:\w+/place:([^/]+)$`),
		fallback: segmentLabel,
		assign:   func(r *DistrictRecord, label string) { r.Municipal = label },
	},
	{
		pattern:  regexp.MustCompile(`^ocd-division/country:us/state:\w+/cd:(\d+)$`),
		fallback: func(seg string) string { return fmt.Sprintf("Congressional District %s", seg) },
		assign:   func(r *DistrictRecord, label string) { r.CongressionalDistrict = label },
	},
	{
		pattern:  regexp.MustCompile(`^ocd-division/country:us/state:\w+/sldu:(\d+)$`),
		fallback: func(seg string) string { return fmt.Sprintf("State Senate District %s", seg) },
		assign:   func(r *DistrictRecord, label string) { r.StateDistrict = label },
	},
	{
		pattern:  regexp.MustCompile(`^ocd-division/country:us/state:\w+/sldl:(\d+)$`),
		fallback: func(seg string) string { return fmt.Sprintf("State House District %s", seg) },
		assign:   func(r *DistrictRecord, label string) { r.StateLowerDistrict = label },
	},
	{
		pattern:  regexp.MustCompile(`^ocd-division/country:us/state:\w+/school_district:([^/]+)$`),
		fallback: func(seg string) string { return segmentLabel(seg) + " School District" },
		assign:   func(r *DistrictRecord, label string) { r.SchoolBoard = label },
	},
}

// ExtractDistrictInfo flattens a civic-API division map into a
// DistrictRecord. The division's display name wins when present;
// otherwise a label is synthesized from the captured identifier
// segment. Keys are scanned in sorted order so that duplicate matches
// resolve deterministically: the last matching key wins the field.
// Identifiers that match no rule are ignored; the function is total and
// never fails.
func ExtractDistrictInfo(divisions map[string]Division) DistrictRecord {
	var rec DistrictRecord

	keys := make([]string, 0, len(divisions))
	for k := range divisions {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, key := range keys {
		for _, rule := range divisionRules {
			m := rule.pattern.FindStringSubmatch(key)
			if m == nil {
				continue
			}

			label := divisions[key].Name
			if label == "" {
				label = rule.fallback(m[1])
			}

			rule.assign(&rec, label)
		}
	}

	return rec
}
