// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package civic

import (
	"strings"
	"time"

	"github.com/coletl/vote-simplified-us/utils/htmlutils"
)

// LocationSummary is one place to vote, shaped for display.
type LocationSummary struct {
	Name      string `json:"name,omitempty"`
	Address   string `json:"address"`
	Hours     string `json:"hours,omitempty"`
	Notes     string `json:"notes,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// CandidateSummary is one candidate, shaped for display.
type CandidateSummary struct {
	Name  string `json:"name"`
	Party string `json:"party,omitempty"`
	URL   string `json:"url,omitempty"`
}

// ReferendumSummary is a ballot measure, with any markup in the state's
// text stripped to plain text.
type ReferendumSummary struct {
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle,omitempty"`
	Brief           string   `json:"brief,omitempty"`
	Text            string   `json:"text,omitempty"`
	ProStatement    string   `json:"pro_statement,omitempty"`
	ConStatement    string   `json:"con_statement,omitempty"`
	BallotResponses []string `json:"ballot_responses,omitempty"`
	URL             string   `json:"url,omitempty"`
}

// ContestSummary is one race or measure, shaped for display.
type ContestSummary struct {
	Title      string             `json:"title"`
	Level      string             `json:"level"`
	District   string             `json:"district,omitempty"`
	Party      string             `json:"party,omitempty"`
	Candidates []CandidateSummary `json:"candidates,omitempty"`
	Referendum *ReferendumSummary `json:"referendum,omitempty"`
}

// VoterInfoSummary is the display-ready reshaping of a
// VoterInfoResponse.
type VoterInfoSummary struct {
	Election         ElectionInfo      `json:"election"`
	ElectionDay      string            `json:"election_day"`
	PollingLocations []LocationSummary `json:"polling_locations,omitempty"`
	EarlyVoteSites   []LocationSummary `json:"early_vote_sites,omitempty"`
	DropOffLocations []LocationSummary `json:"drop_off_locations,omitempty"`
	Contests         []ContestSummary  `json:"contests,omitempty"`
}

// The civic API reports election days as YYYY-MM-DD.
func formatElectionDay(s string) string {
	day, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}

	return day.Format("January 2, 2006")
}

// One-line postal address of a polling place.
func formatLocationAddress(a LocationAddress) string {
	var sb strings.Builder

	for _, part := range []string{a.LocationName, a.Line1, a.Line2, a.City} {
		if part == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(part)
	}

	if a.State != "" {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(a.State)
	}

	if a.Zip != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(a.Zip)
	}

	return sb.String()
}

// contestLevelLabel maps the civic API's administrative levels to the
// labels residents recognize.
func contestLevelLabel(c Contest) string {
	if c.Type == "Referendum" {
		return "Ballot Measure"
	}

	for _, level := range c.Level {
		switch level {
		case "country":
			return "Federal"
		case "administrativeArea1":
			return "State"
		case "administrativeArea2":
			return "County"
		case "locality":
			return "Local"
		}
	}

	return c.Type
}

func summarizeLocations(locations []PollingLocation) []LocationSummary {
	if len(locations) == 0 {
		return nil
	}

	out := make([]LocationSummary, 0, len(locations))

	for _, loc := range locations {
		name := loc.Name
		if name == "" {
			name = loc.Address.LocationName
		}

		out = append(out, LocationSummary{
			Name:      name,
			Address:   formatLocationAddress(loc.Address),
			Hours:     loc.PollingHours,
			Notes:     loc.Notes,
			StartDate: loc.StartDate,
			EndDate:   loc.EndDate,
		})
	}

	return out
}

func summarizeContest(c Contest) ContestSummary {
	summary := ContestSummary{
		Title: c.Office,
		Level: contestLevelLabel(c),
		Party: c.PrimaryParty,
	}

	if c.District != nil {
		summary.District = c.District.Name
	}

	for _, cand := range c.Candidates {
		summary.Candidates = append(summary.Candidates, CandidateSummary{
			Name:  cand.Name,
			Party: cand.Party,
			URL:   cand.CandidateURL,
		})
	}

	if c.Type == "Referendum" {
		summary.Title = c.ReferendumTitle
		summary.Referendum = &ReferendumSummary{
			Title:           c.ReferendumTitle,
			Subtitle:        c.ReferendumSubtitle,
			Brief:           htmlutils.StripTags(c.ReferendumBrief),
			Text:            htmlutils.StripTags(c.ReferendumText),
			ProStatement:    htmlutils.StripTags(c.ReferendumProStatement),
			ConStatement:    htmlutils.StripTags(c.ReferendumConStatement),
			BallotResponses: c.ReferendumBallotResponses,
			URL:             c.ReferendumURL,
		}
	}

	return summary
}

// SummarizeVoterInfo reshapes the raw civic payload for display. A nil
// input yields a nil summary.
func SummarizeVoterInfo(v *VoterInfoResponse) *VoterInfoSummary {
	if v == nil {
		return nil
	}

	summary := &VoterInfoSummary{
		Election:         v.Election,
		ElectionDay:      formatElectionDay(v.Election.ElectionDay),
		PollingLocations: summarizeLocations(v.PollingLocations),
		EarlyVoteSites:   summarizeLocations(v.EarlyVoteSites),
		DropOffLocations: summarizeLocations(v.DropOffLocations),
	}

	for _, c := range v.Contests {
		summary.Contests = append(summary.Contests, summarizeContest(c))
	}

	return summary
}
