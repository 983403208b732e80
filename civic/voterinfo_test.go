// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package civic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatElectionDay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "well formed date",
			in:   "2026-11-03",
			want: "November 3, 2026",
		},
		{
			name: "unparseable passes through",
			in:   "soon",
			want: "soon",
		},
		{
			name: "empty passes through",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatElectionDay(tt.in); got != tt.want {
				t.Errorf("formatElectionDay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatLocationAddress(t *testing.T) {
	tests := []struct {
		name string
		in   LocationAddress
		want string
	}{
		{
			name: "full address",
			in: LocationAddress{
				LocationName: "Community Center",
				Line1:        "100 First Ave",
				City:         "Seattle",
				State:        "WA",
				Zip:          "98101",
			},
			want: "Community Center, 100 First Ave, Seattle, WA 98101",
		},
		{
			name: "no location name",
			in: LocationAddress{
				Line1: "100 First Ave",
				City:  "Seattle",
				State: "WA",
			},
			want: "100 First Ave, Seattle, WA",
		},
		{
			name: "empty",
			in:   LocationAddress{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatLocationAddress(tt.in); got != tt.want {
				t.Errorf("formatLocationAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContestLevelLabel(t *testing.T) {
	tests := []struct {
		name    string
		contest Contest
		want    string
	}{
		{
			name:    "federal",
			contest: Contest{Type: "General", Level: []string{"country"}},
			want:    "Federal",
		},
		{
			name:    "state",
			contest: Contest{Type: "General", Level: []string{"administrativeArea1"}},
			want:    "State",
		},
		{
			name:    "county",
			contest: Contest{Type: "General", Level: []string{"administrativeArea2"}},
			want:    "County",
		},
		{
			name:    "local",
			contest: Contest{Type: "General", Level: []string{"locality"}},
			want:    "Local",
		},
		{
			name:    "referendum regardless of level",
			contest: Contest{Type: "Referendum", Level: []string{"administrativeArea1"}},
			want:    "Ballot Measure",
		},
		{
			name:    "unknown level falls back to type",
			contest: Contest{Type: "Primary", Level: []string{"special"}},
			want:    "Primary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contestLevelLabel(tt.contest); got != tt.want {
				t.Errorf("contestLevelLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeVoterInfo(t *testing.T) {
	in := &VoterInfoResponse{
		Election: ElectionInfo{ID: "8000", Name: "Washington State General", ElectionDay: "2026-11-03"},
		PollingLocations: []PollingLocation{
			{
				Address: LocationAddress{
					LocationName: "Community Center",
					Line1:        "100 First Ave",
					City:         "Seattle",
					State:        "WA",
					Zip:          "98101",
				},
				PollingHours: "7am - 8pm",
			},
		},
		EarlyVoteSites: []PollingLocation{
			{
				Name:      "County Annex",
				Address:   LocationAddress{Line1: "2 Second St", City: "Seattle", State: "WA"},
				StartDate: "2026-10-16",
				EndDate:   "2026-11-02",
			},
		},
		Contests: []Contest{
			{
				Type:   "General",
				Office: "United States Senator",
				Level:  []string{"country"},
				Candidates: []Candidate{
					{Name: "A. Candidate", Party: "Independent", CandidateURL: "https://example.org"},
				},
			},
			{
				Type:            "Referendum",
				ReferendumTitle: "Proposition 1",
				ReferendumBrief: "<p>Raises the <b>levy</b> rate.</p>",
				ReferendumText:  "<div>Full text here.</div>",
				ReferendumBallotResponses: []string{
					"Yes",
					"No",
				},
			},
		},
	}

	got := SummarizeVoterInfo(in)
	require.NotNil(t, got)

	assert.Equal(t, "November 3, 2026", got.ElectionDay)

	require.Len(t, got.PollingLocations, 1)
	assert.Equal(t, "Community Center", got.PollingLocations[0].Name)
	assert.Equal(t, "Community Center, 100 First Ave, Seattle, WA 98101", got.PollingLocations[0].Address)
	assert.Equal(t, "7am - 8pm", got.PollingLocations[0].Hours)

	require.Len(t, got.EarlyVoteSites, 1)
	assert.Equal(t, "County Annex", got.EarlyVoteSites[0].Name)
	assert.Equal(t, "2026-10-16", got.EarlyVoteSites[0].StartDate)

	require.Len(t, got.Contests, 2)

	senate := got.Contests[0]
	assert.Equal(t, "United States Senator", senate.Title)
	assert.Equal(t, "Federal", senate.Level)
	require.Len(t, senate.Candidates, 1)
	assert.Equal(t, "A. Candidate", senate.Candidates[0].Name)

	prop := got.Contests[1]
	assert.Equal(t, "Proposition 1", prop.Title)
	assert.Equal(t, "Ballot Measure", prop.Level)
	require.NotNil(t, prop.Referendum)
	assert.Equal(t, "Raises the levy rate.", prop.Referendum.Brief)
	assert.Equal(t, "Full text here.", prop.Referendum.Text)
	assert.Equal(t, []string{"Yes", "No"}, prop.Referendum.BallotResponses)
}

func TestSummarizeVoterInfoNil(t *testing.T) {
	assert.Nil(t, SummarizeVoterInfo(nil))
}
