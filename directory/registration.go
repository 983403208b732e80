// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

// Package directory serves the per-state voter registration
// directory: official registration and status-check sites plus the
// deadlines that go with them. The data set covers the 50 states, DC,
// and the five territories.
package directory

import (
	"sort"
	"strings"
)

// StateInfo is the registration guidance for one state or territory.
type StateInfo struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	RegistrationURL  string `json:"registration_url"`
	Deadline         string `json:"deadline"`
	AbsenteeDeadline string `json:"absentee_deadline"`
	EarlyVoting      string `json:"early_voting"`
	StatusURL        string `json:"status_url,omitempty"`
}

// Lookup returns the registration info for a two-letter state code.
// The code is case-insensitive.
func Lookup(code string) (StateInfo, bool) {
	info, ok := states[strings.ToUpper(strings.TrimSpace(code))]

	return info, ok
}

// All returns every entry sorted by code.
func All() []StateInfo {
	out := make([]StateInfo, 0, len(states))
	for _, info := range states {
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return out
}

var states = map[string]StateInfo{
	"AL": {
		Code:             "AL",
		Name:             "Alabama",
		RegistrationURL:  "https://www.sos.alabama.gov/alabama-votes/voter/register-to-vote",
		Deadline:         "Must be received 15 days before election day",
		AbsenteeDeadline: "Application must be received 5 days before election day",
		EarlyVoting:      "No early voting",
		StatusURL:        "https://myinfo.alabamavotes.gov/VoterView",
	},
	"AK": {
		Code:             "AK",
		Name:             "Alaska",
		RegistrationURL:  "https://voterregistration.alaska.gov/",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "Received 10 days before election day",
		EarlyVoting:      "15 days before election day through election day",
		StatusURL:        "https://myvoterinformation.alaska.gov/",
	},
	"AZ": {
		Code:             "AZ",
		Name:             "Arizona",
		RegistrationURL:  "https://servicearizona.com/VoterRegistration/selectLanguage",
		Deadline:         "29 days before election day",
		AbsenteeDeadline: "Received 11 days before election day",
		EarlyVoting:      "Begins 27 days before election day",
		StatusURL:        "https://my.arizona.vote/PortalList.aspx",
	},
	"AR": {
		Code:             "AR",
		Name:             "Arkansas",
		RegistrationURL:  "https://www.sos.arkansas.gov/elections/voter-information/",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "Begins 15 days before election day",
		StatusURL:        "https://www.voterview.ar-nova.org/VoterView",
	},
	"CA": {
		Code:             "CA",
		Name:             "California",
		RegistrationURL:  "https://registertovote.ca.gov/",
		Deadline:         "15 days before election day (same-day registration available)",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "Varies by county, typically 29 days before election day",
		StatusURL:        "https://voterstatus.sos.ca.gov",
	},
	"CO": {
		Code:             "CO",
		Name:             "Colorado",
		RegistrationURL:  "https://www.sos.state.co.us/voter/pages/pub/home.xhtml",
		Deadline:         "8 days before election day (same-day registration available)",
		AbsenteeDeadline: "All registered voters receive mail ballots",
		EarlyVoting:      "Begins 15 days before election day",
		StatusURL:        "https://www.sos.state.co.us/voter/pages/pub/olvr/findVoterReg.xhtml",
	},
	"CT": {
		Code:             "CT",
		Name:             "Connecticut",
		RegistrationURL:  "https://portal.ct.gov/SOTS/Election-Services/Voter-Information/Voter-Registration-Information",
		Deadline:         "7 days before election day (same-day registration available)",
		AbsenteeDeadline: "Application received day before election day",
		EarlyVoting:      "No early voting",
		StatusURL:        "https://portaldir.ct.gov/sots/LookUp.aspx",
	},
	"DE": {
		Code:             "DE",
		Name:             "Delaware",
		RegistrationURL:  "https://elections.delaware.gov/voter/votereg.shtml",
		Deadline:         "Fourth Saturday before election day",
		AbsenteeDeadline: "Received by noon day before election day",
		EarlyVoting:      "10 days before election day",
		StatusURL:        "https://ivote.de.gov/voterview",
	},
	"DC": {
		Code:             "DC",
		Name:             "District of Columbia",
		RegistrationURL:  "https://www.dcboe.org/voters/register-to-vote/register-update-voter-registration",
		Deadline:         "Same-day registration available",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "Begins 13 days before election day",
		StatusURL:        "https://www.dcboe.org/Voters/Register-To-Vote/Check-Voter-Registration-Status",
	},
	"FL": {
		Code:             "FL",
		Name:             "Florida",
		RegistrationURL:  "https://registertovoteflorida.gov/",
		Deadline:         "29 days before election day",
		AbsenteeDeadline: "Received 10 days before election day",
		EarlyVoting:      "10-19 days before election day",
		StatusURL:        "https://registration.elections.myflorida.com/CheckVoterStatus",
	},
	"GA": {
		Code:             "GA",
		Name:             "Georgia",
		RegistrationURL:  "https://georgia.gov/register-vote",
		Deadline:         "29 days before election day",
		AbsenteeDeadline: "11 days before election day",
		EarlyVoting:      "Begins fourth Monday before election day",
		StatusURL:        "https://mvp.sos.ga.gov/s/",
	},
	"HI": {
		Code:             "HI",
		Name:             "Hawaii",
		RegistrationURL:  "https://olvr.hawaii.gov/",
		Deadline:         "Same-day registration available",
		AbsenteeDeadline: "All registered voters receive mail ballots",
		EarlyVoting:      "Begins 10 days before election day",
		StatusURL:        "https://olvr.hawaii.gov/",
	},
	"ID": {
		Code:             "ID",
		Name:             "Idaho",
		RegistrationURL:  "https://elections.sos.idaho.gov/ElectionLink/ElectionLink/ApplicationInstructions.aspx",
		Deadline:         "25 days before election day (same-day registration available)",
		AbsenteeDeadline: "11 days before election day",
		EarlyVoting:      "Varies by county, typically begins 2-3 weeks before election day",
		StatusURL:        "https://elections.sos.idaho.gov/ElectionLink/ElectionLink/VoterSearch.aspx",
	},
	"IL": {
		Code:             "IL",
		Name:             "Illinois",
		RegistrationURL:  "https://ova.elections.il.gov/",
		Deadline:         "28 days before election day (same-day registration available)",
		AbsenteeDeadline: "5 days before election day",
		EarlyVoting:      "Begins 40 days before election day",
		StatusURL:        "https://ova.elections.il.gov/RegistrationLookup.aspx",
	},
	"IN": {
		Code:             "IN",
		Name:             "Indiana",
		RegistrationURL:  "https://www.in.gov/sos/elections/voter-information/register-to-vote/",
		Deadline:         "29 days before election day",
		AbsenteeDeadline: "12 days before election day",
		EarlyVoting:      "28 days before election day",
		StatusURL:        "https://indianavoters.in.gov/",
	},
	"IA": {
		Code:             "IA",
		Name:             "Iowa",
		RegistrationURL:  "https://sos.iowa.gov/elections/voterinformation/voterregistration.html",
		Deadline:         "15 days before election day (same-day registration available)",
		AbsenteeDeadline: "15 days before election day",
		EarlyVoting:      "29 days before election day",
		StatusURL:        "https://sos.iowa.gov/elections/voterreg/regtovote/search.aspx",
	},
	"KS": {
		Code:             "KS",
		Name:             "Kansas",
		RegistrationURL:  "https://www.kdor.ks.gov/Apps/VoterReg/Default.aspx",
		Deadline:         "21 days before election day",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "Begins 20 days before election day",
		StatusURL:        "https://myvoteinfo.voteks.org/voterview",
	},
	"KY": {
		Code:             "KY",
		Name:             "Kentucky",
		RegistrationURL:  "https://vrsws.sos.ky.gov/ovrweb/",
		Deadline:         "29 days before election day",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "Thursday to Saturday before election day",
		StatusURL:        "https://vrsws.sos.ky.gov/vic/",
	},
	"LA": {
		Code:             "LA",
		Name:             "Louisiana",
		RegistrationURL:  "https://www.sos.la.gov/ElectionsAndVoting/RegisterToVote/",
		Deadline:         "30 days before election day (online 20 days)",
		AbsenteeDeadline: "4 days before election day",
		EarlyVoting:      "14-7 days before election day",
		StatusURL:        "https://voterportal.sos.la.gov/",
	},
	"ME": {
		Code:             "ME",
		Name:             "Maine",
		RegistrationURL:  "https://www.maine.gov/sos/cec/elec/voter-info/voterguide.html",
		Deadline:         "Same-day registration available",
		AbsenteeDeadline: "3 days before election day",
		EarlyVoting:      "30-45 days before election day",
		StatusURL:        "https://www.maine.gov/sos/cec/elec/data/index.html",
	},
	"MD": {
		Code:             "MD",
		Name:             "Maryland",
		RegistrationURL:  "https://elections.maryland.gov/voter_registration/application.html",
		Deadline:         "21 days before election day (same-day registration available)",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "8 days before election day",
		StatusURL:        "https://voterservices.elections.maryland.gov/VoterSearch",
	},
	"MA": {
		Code:             "MA",
		Name:             "Massachusetts",
		RegistrationURL:  "https://www.sec.state.ma.us/ovr/",
		Deadline:         "10 days before election day",
		AbsenteeDeadline: "Application received 4 days before election day",
		EarlyVoting:      "11 days before election day",
		StatusURL:        "https://www.sec.state.ma.us/VoterRegistrationSearch/MyVoterRegStatus.aspx",
	},
	"MI": {
		Code:             "MI",
		Name:             "Michigan",
		RegistrationURL:  "https://mvic.sos.state.mi.us/RegisterVoter",
		Deadline:         "15 days before election day (same-day registration available)",
		AbsenteeDeadline: "Friday before election day",
		EarlyVoting:      "9 days before election day",
		StatusURL:        "https://mvic.sos.state.mi.us/",
	},
	"MN": {
		Code:             "MN",
		Name:             "Minnesota",
		RegistrationURL:  "https://mnvotes.sos.state.mn.us/VoterRegistration/VoterRegistrationMain.aspx",
		Deadline:         "21 days before election day (same-day registration available)",
		AbsenteeDeadline: "Day before election day",
		EarlyVoting:      "46 days before election day",
		StatusURL:        "https://mnvotes.sos.state.mn.us/VoterStatus.aspx",
	},
	"MS": {
		Code:             "MS",
		Name:             "Mississippi",
		RegistrationURL:  "https://www.sos.ms.gov/elections-voting/voter-registration-information",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "Varies",
		EarlyVoting:      "No early voting",
		StatusURL:        "https://www.msegov.com/sos/voter_registration/amiregistered/Search",
	},
	"MO": {
		Code:             "MO",
		Name:             "Missouri",
		RegistrationURL:  "https://www.sos.mo.gov/elections/govotemissouri/register",
		Deadline:         "Fourth Wednesday before election day",
		AbsenteeDeadline: "Second Wednesday before election day",
		EarlyVoting:      "Varies by election",
		StatusURL:        "https://voteroutreach.sos.mo.gov/portal/",
	},
	"MT": {
		Code:             "MT",
		Name:             "Montana",
		RegistrationURL:  "https://sosmt.gov/elections/vote/",
		Deadline:         "30 days before election day (same-day registration available)",
		AbsenteeDeadline: "Day before election day",
		EarlyVoting:      "30 days before election day",
		StatusURL:        "https://app.mt.gov/voterinfo/",
	},
	"NE": {
		Code:             "NE",
		Name:             "Nebraska",
		RegistrationURL:  "https://www.nebraska.gov/apps-sos-voter-registration/",
		Deadline:         "11 days before election day",
		AbsenteeDeadline: "11 days before election day",
		EarlyVoting:      "30 days before election day",
		StatusURL:        "https://www.votercheck.necvr.ne.gov/",
	},
	"NV": {
		Code:             "NV",
		Name:             "Nevada",
		RegistrationURL:  "https://www.nvsos.gov/sosvoterservices/Registration/step1.aspx",
		Deadline:         "Fifth Tuesday before election day (same-day registration available)",
		AbsenteeDeadline: "All registered voters receive mail ballots",
		EarlyVoting:      "Third Saturday before election day",
		StatusURL:        "https://www.nvsos.gov/votersearch/",
	},
	"NH": {
		Code:             "NH",
		Name:             "New Hampshire",
		RegistrationURL:  "https://www.sos.nh.gov/elections/voters/register-vote",
		Deadline:         "Same-day registration available",
		AbsenteeDeadline: "Day before election day",
		EarlyVoting:      "No early voting",
		StatusURL:        "https://app.sos.nh.gov/voterinformation",
	},
	"NJ": {
		Code:             "NJ",
		Name:             "New Jersey",
		RegistrationURL:  "https://voter.svrs.nj.gov/register",
		Deadline:         "21 days before election day",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "10 days before election day",
		StatusURL:        "https://voter.svrs.nj.gov/registration-check",
	},
	"NM": {
		Code:             "NM",
		Name:             "New Mexico",
		RegistrationURL:  "https://portal.sos.state.nm.us/OVR/WebPages/InstructionsStep1.aspx",
		Deadline:         "28 days before election day (same-day registration available)",
		AbsenteeDeadline: "Friday before election day",
		EarlyVoting:      "28 days before election day",
		StatusURL:        "https://voterportal.servis.sos.state.nm.us/WhereToVote.aspx",
	},
	"NY": {
		Code:             "NY",
		Name:             "New York",
		RegistrationURL:  "https://dmv.ny.gov/more-info/electronic-voter-registration-application",
		Deadline:         "25 days before election day",
		AbsenteeDeadline: "15 days before election day",
		EarlyVoting:      "10 days before election day",
		StatusURL:        "https://voterlookup.elections.ny.gov/",
	},
	"NC": {
		Code:             "NC",
		Name:             "North Carolina",
		RegistrationURL:  "https://www.ncsbe.gov/registering/how-register",
		Deadline:         "25 days before election day (same-day registration during early voting)",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "19-3 days before election day",
		StatusURL:        "https://vt.ncsbe.gov/RegLkup/",
	},
	"ND": {
		Code:             "ND",
		Name:             "North Dakota",
		RegistrationURL:  "https://vip.sos.nd.gov/PortalList.aspx",
		Deadline:         "No voter registration required",
		AbsenteeDeadline: "Day before election day",
		EarlyVoting:      "15 days before election day",
		StatusURL:        "https://vip.sos.nd.gov/WhereToVote.aspx",
	},
	"OH": {
		Code:             "OH",
		Name:             "Ohio",
		RegistrationURL:  "https://olvr.ohiosos.gov/",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "3 days before election day",
		EarlyVoting:      "28 days before election day",
		StatusURL:        "https://voterlookup.ohiosos.gov/voterlookup.aspx",
	},
	"OK": {
		Code:             "OK",
		Name:             "Oklahoma",
		RegistrationURL:  "https://oklahoma.gov/elections/voter-registration/register-to-vote.html",
		Deadline:         "25 days before election day",
		AbsenteeDeadline: "Tuesday before election day",
		EarlyVoting:      "Wednesday before election day",
		StatusURL:        "https://okvoterportal.okelections.us/",
	},
	"OR": {
		Code:             "OR",
		Name:             "Oregon",
		RegistrationURL:  "https://secure.sos.state.or.us/orestar/vr/register.do",
		Deadline:         "21 days before election day",
		AbsenteeDeadline: "All registered voters receive mail ballots",
		EarlyVoting:      "All voting by mail",
		StatusURL:        "https://secure.sos.state.or.us/orestar/vr/showVoterSearch.do",
	},
	"PA": {
		Code:             "PA",
		Name:             "Pennsylvania",
		RegistrationURL:  "https://www.pavoterservices.pa.gov/Pages/VoterRegistrationApplication.aspx",
		Deadline:         "15 days before election day",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "50 days before election day (mail-in voting)",
		StatusURL:        "https://www.pavoterservices.pa.gov/pages/voterregistrationstatus.aspx",
	},
	"RI": {
		Code:             "RI",
		Name:             "Rhode Island",
		RegistrationURL:  "https://vote.sos.ri.gov/Home/RegistertoVote",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "21 days before election day",
		EarlyVoting:      "20 days before election day",
		StatusURL:        "https://vote.sos.ri.gov/Home/UpdateVoterRecord",
	},
	"SC": {
		Code:             "SC",
		Name:             "South Carolina",
		RegistrationURL:  "https://info.scvotes.sc.gov/eng/ovr/start.aspx",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "11 days before election day",
		EarlyVoting:      "Early voting begins two weeks before election day",
		StatusURL:        "https://info.scvotes.sc.gov/eng/voterinquiry/VoterInformationRequest.aspx",
	},
	"SD": {
		Code:             "SD",
		Name:             "South Dakota",
		RegistrationURL:  "https://sdsos.gov/elections-voting/voting/register-to-vote/default.aspx",
		Deadline:         "15 days before election day",
		AbsenteeDeadline: "Day before election day",
		EarlyVoting:      "46 days before election day",
		StatusURL:        "https://vip.sdsos.gov/VIPLogin.aspx",
	},
	"TN": {
		Code:             "TN",
		Name:             "Tennessee",
		RegistrationURL:  "https://ovr.govote.tn.gov/",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "20-5 days before election day",
		StatusURL:        "https://tnmap.tn.gov/voterlookup/",
	},
	"TX": {
		Code:             "TX",
		Name:             "Texas",
		RegistrationURL:  "https://www.texas.gov/living-in-texas/texas-voter-registration/",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "11 days before election day",
		EarlyVoting:      "17-4 days before election day",
		StatusURL:        "https://teamrv-mvp.sos.texas.gov/MVP/mvp.do",
	},
	"UT": {
		Code:             "UT",
		Name:             "Utah",
		RegistrationURL:  "https://secure.utah.gov/voterreg/index.html",
		Deadline:         "11 days before election day (same-day registration available)",
		AbsenteeDeadline: "All registered voters receive mail ballots",
		EarlyVoting:      "14 days before election day",
		StatusURL:        "https://votesearch.utah.gov/voter-search/search/search-by-voter/voter-info",
	},
	"VT": {
		Code:             "VT",
		Name:             "Vermont",
		RegistrationURL:  "https://olvr.vermont.gov/",
		Deadline:         "Same-day registration available",
		AbsenteeDeadline: "Day before election day",
		EarlyVoting:      "45 days before election day",
		StatusURL:        "https://mvp.vermont.gov/",
	},
	"VA": {
		Code:             "VA",
		Name:             "Virginia",
		RegistrationURL:  "https://www.elections.virginia.gov/registration/how-to-register/",
		Deadline:         "22 days before election day",
		AbsenteeDeadline: "11 days before election day",
		EarlyVoting:      "45 days before election day",
		StatusURL:        "https://vote.elections.virginia.gov/VoterInformation",
	},
	"WA": {
		Code:             "WA",
		Name:             "Washington",
		RegistrationURL:  "https://voter.votewa.gov/WhereToVote.aspx",
		Deadline:         "8 days before election day (same-day registration available)",
		AbsenteeDeadline: "All registered voters receive mail ballots",
		EarlyVoting:      "All voting by mail",
		StatusURL:        "https://voter.votewa.gov/WhereToVote.aspx",
	},
	"WV": {
		Code:             "WV",
		Name:             "West Virginia",
		RegistrationURL:  "https://ovr.sos.wv.gov/Register/Landing",
		Deadline:         "21 days before election day",
		AbsenteeDeadline: "6 days before election day",
		EarlyVoting:      "13-3 days before election day",
		StatusURL:        "https://ovr.sos.wv.gov/Register/Landing",
	},
	"WI": {
		Code:             "WI",
		Name:             "Wisconsin",
		RegistrationURL:  "https://myvote.wi.gov/en-us/Register-To-Vote",
		Deadline:         "20 days before election day (same-day registration available)",
		AbsenteeDeadline: "Thursday before election day",
		EarlyVoting:      "Varies by municipality, typically 2 weeks before election day",
		StatusURL:        "https://myvote.wi.gov/en-us/My-Voter-Info",
	},
	"WY": {
		Code:             "WY",
		Name:             "Wyoming",
		RegistrationURL:  "https://sos.wyo.gov/Elections/State/RegisteringToVote.aspx",
		Deadline:         "14 days before election day (same-day registration available)",
		AbsenteeDeadline: "Day before election day",
		EarlyVoting:      "40 days before election day",
		StatusURL:        "https://sos.wyo.gov/Elections/Docs/WYCountyClerks.pdf",
	},
	"PR": {
		Code:             "PR",
		Name:             "Puerto Rico",
		RegistrationURL:  "https://ww2.ceepur.org/Home/Register",
		Deadline:         "50 days before election day",
		AbsenteeDeadline: "Varies",
		EarlyVoting:      "Varies",
		StatusURL:        "https://consulta.ceepur.org/",
	},
	"GU": {
		Code:             "GU",
		Name:             "Guam",
		RegistrationURL:  "https://gec.guam.gov/register",
		Deadline:         "10 working days before election day",
		AbsenteeDeadline: "7 days before election day",
		EarlyVoting:      "Varies",
		StatusURL:        "https://gec.guam.gov/validate/",
	},
	"VI": {
		Code:             "VI",
		Name:             "U.S. Virgin Islands",
		RegistrationURL:  "https://www.vivote.gov/voters/register-to-vote/",
		Deadline:         "30 days before election day",
		AbsenteeDeadline: "Varies",
		EarlyVoting:      "Varies",
		StatusURL:        "https://www.vivote.gov/voters/lookup/",
	},
	"AS": {
		Code:             "AS",
		Name:             "American Samoa",
		RegistrationURL:  "https://aselectionoffice.gov/",
		Deadline:         "29 days before election day",
		AbsenteeDeadline: "Varies",
		EarlyVoting:      "Varies",
		StatusURL:        "https://aselectionoffice.gov/",
	},
	"MP": {
		Code:             "MP",
		Name:             "Northern Mariana Islands",
		RegistrationURL:  "https://www.votecnmi.gov.mp/",
		Deadline:         "60 days before election day",
		AbsenteeDeadline: "Varies",
		EarlyVoting:      "Varies",
		StatusURL:        "https://www.votecnmi.gov.mp/",
	},
}
