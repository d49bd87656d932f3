package teamname

import "strings"

// timezones oversimplifies and puts the entirety of a state into one
// timezone. Indiana goes into Eastern. The provinces are those with an NHL
// team (also MLB and NBA, but that's redundant).
var timezones = []struct {
	name   string
	states []string
}{
	{"Eastern", []string{"CT", "DC", "DE", "FL", "GA", "IN", "KY", "MA", "MD", "ME", "MI", "NC",
		"NH", "NJ", "NY", "OH", "ON", "PA", "QC", "RI", "SC", "TN", "VA", "VT", "WV"}},
	{"Central", []string{"AL", "AR", "IA", "IL", "KS", "LA", "MB", "MN", "MO", "MS", "ND", "NE",
		"OK", "SD", "TX", "WI"}},
	{"Saskatchewan", []string{"SK"}}, // CST
	{"Mountain", []string{"AB", "CO", "ID", "MT", "NM", "UT", "WY"}},
	{"Arizona", []string{"AZ"}}, // MST
	{"Pacific", []string{"CA", "NV", "OR", "WA", "BC"}},
	{"Alaska", []string{"AK"}},
	{"Hawaii", []string{"HI"}},
}

// standardTime covers the two zones that don't observe DST.
var standardTime = map[string]struct{ standard, daylight string }{
	"Arizona":      {"Mountain", "Pacific"},
	"Saskatchewan": {"Central", "Mountain"},
}

// professionalStates locates professional teams whose name reveals no state.
var professionalStates = map[string]string{
	"Carolina":     "NC",
	"Columbus":     "OH",
	"Jacksonville": "FL",
	"Miami":        "FL",
	"New England":  "MA",
	"Oakland":      "CA",
	"Rochester":    "NY",
}

// StateOf returns the full state name where a team is located, or "" when it
// can't be placed.
func StateOf(team, group string) string {
	if team == "" {
		return ""
	}
	if group == "professional" && team == "Washington" {
		return allStateAbbrevs["DC"]
	}
	for _, st := range sortedUniStates {
		for _, uni := range universitiesInState[st] {
			if team == uni {
				return allStateAbbrevs[st]
			}
		}
	}
	for _, state := range allStates {
		if strings.Contains(team, state) {
			return state
		}
	}
	for _, st := range sortedCityStates {
		for _, city := range citiesInState[st] {
			if strings.Contains(team, city) {
				return allStateAbbrevs[st]
			}
		}
	}
	if group == "professional" {
		if st, ok := professionalStates[team]; ok {
			return allStateAbbrevs[st]
		}
	}
	return ""
}

// TimezoneOf returns the timezone of the state where a team is located, or
// "" when the team can't be placed. Seasons that sit (almost) entirely on
// one side of DST resolve the two non-observing zones to the clock their
// games actually run on.
func TimezoneOf(team, group string) string {
	state := StateOf(team, group)
	if state == "" {
		return ""
	}
	if clocks, ok := standardTime[state]; ok {
		switch group {
		case "bbm", "bbw", "ih":
			return clocks.standard
		case "baseball", "softball":
			return clocks.daylight
		}
		return state
	}
	for _, zone := range timezones {
		for _, st := range zone.states {
			if allStateAbbrevs[st] == state {
				return zone.name
			}
		}
	}
	return ""
}
