// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

// Package civic talks to the Google Civic Information API and turns its
// division payloads into normalized electoral-district records.
package civic

// ElectionInfo identifies one election known to the civic API.
type ElectionInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ElectionDay   string `json:"electionDay"`
	OCDDivisionID string `json:"ocdDivisionId,omitempty"`
}

// Division is the descriptor the civic API returns for an OCD division
// identifier. Only the display name matters here.
type Division struct {
	Name          string   `json:"name"`
	AlsoKnownAs   []string `json:"alsoKnownAs,omitempty"`
	OfficeIndices []int    `json:"officeIndices,omitempty"`
}

// Source attributes a piece of voter information to its publisher.
type Source struct {
	Name     string `json:"name"`
	Official bool   `json:"official"`
}

// LocationAddress is the postal address of a polling place.
type LocationAddress struct {
	LocationName string `json:"locationName,omitempty"`
	Line1        string `json:"line1,omitempty"`
	Line2        string `json:"line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
}

// PollingLocation describes a place to vote: an election-day polling
// place, an early-vote site, or a ballot drop-off location.
type PollingLocation struct {
	Address       LocationAddress `json:"address"`
	Notes         string          `json:"notes,omitempty"`
	PollingHours  string          `json:"pollingHours,omitempty"`
	Name          string          `json:"name,omitempty"`
	VoterServices string          `json:"voterServices,omitempty"`
	StartDate     string          `json:"startDate,omitempty"`
	EndDate       string          `json:"endDate,omitempty"`
	Sources       []Source        `json:"sources,omitempty"`
}

// Channel is a social media presence of a candidate.
type Channel struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Candidate in a contest.
type Candidate struct {
	Name         string    `json:"name"`
	Party        string    `json:"party,omitempty"`
	CandidateURL string    `json:"candidateUrl,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	Channels     []Channel `json:"channels,omitempty"`
}

// ContestDistrict scopes a contest to the district it is voted in.
type ContestDistrict struct {
	Name  string `json:"name"`
	Scope string `json:"scope,omitempty"`
	ID    string `json:"id,omitempty"`
}

// Contest is a single race or referendum on a ballot.
type Contest struct {
	Type         string           `json:"type"`
	Office       string           `json:"office,omitempty"`
	PrimaryParty string           `json:"primaryParty,omitempty"`
	District     *ContestDistrict `json:"district,omitempty"`
	Level        []string         `json:"level,omitempty"`
	Roles        []string         `json:"roles,omitempty"`
	Candidates   []Candidate      `json:"candidates,omitempty"`

	ReferendumTitle            string   `json:"referendumTitle,omitempty"`
	ReferendumSubtitle         string   `json:"referendumSubtitle,omitempty"`
	ReferendumURL              string   `json:"referendumUrl,omitempty"`
	ReferendumBrief            string   `json:"referendumBrief,omitempty"`
	ReferendumText             string   `json:"referendumText,omitempty"`
	ReferendumProStatement     string   `json:"referendumProStatement,omitempty"`
	ReferendumConStatement     string   `json:"referendumConStatement,omitempty"`
	ReferendumPassageThreshold string   `json:"referendumPassageThreshold,omitempty"`
	ReferendumEffectOfAbstain  string   `json:"referendumEffectOfAbstain,omitempty"`
	ReferendumBallotResponses  []string `json:"referendumBallotResponses,omitempty"`

	Sources []Source `json:"sources,omitempty"`
}

// ElectionAdministrationBody is the authority that runs elections for a
// state, as reported by the voter-info endpoint.
type ElectionAdministrationBody struct {
	Name                    string           `json:"name,omitempty"`
	ElectionInfoURL         string           `json:"electionInfoUrl,omitempty"`
	VotingLocationFinderURL string           `json:"votingLocationFinderUrl,omitempty"`
	BallotInfoURL           string           `json:"ballotInfoUrl,omitempty"`
	ElectionRegistrationURL string           `json:"electionRegistrationUrl,omitempty"`
	AbsenteeVotingInfoURL   string           `json:"absenteeVotingInfoUrl,omitempty"`
	CorrespondenceAddress   *LocationAddress `json:"correspondenceAddress,omitempty"`
}

// StateAdministration scopes administration data to one state.
type StateAdministration struct {
	Name                       string                      `json:"name"`
	ElectionAdministrationBody *ElectionAdministrationBody `json:"electionAdministrationBody,omitempty"`
	Sources                    []Source                    `json:"sources,omitempty"`
}

// VoterInfoResponse aggregates everything the civic API knows about one
// election for one address. Treated as an opaque upstream payload and
// reshaped only for display.
type VoterInfoResponse struct {
	Election         ElectionInfo          `json:"election"`
	NormalizedInput  LocationAddress       `json:"normalizedInput"`
	PollingLocations []PollingLocation     `json:"pollingLocations,omitempty"`
	EarlyVoteSites   []PollingLocation     `json:"earlyVoteSites,omitempty"`
	DropOffLocations []PollingLocation     `json:"dropOffLocations,omitempty"`
	Contests         []Contest             `json:"contests,omitempty"`
	State            []StateAdministration `json:"state,omitempty"`
}
