package teamname

import "strings"

// Professional teams are easier to handle because there are fewer of them,
// but harder because they move and rename.
var professionalRenames = map[string]map[string]string{
	"MLB": {
		"California":         "Anaheim",
		"Florida Marlins":    "Miami",
		"Los Angeles Angels": "Anaheim",
		"Minnesota Twins":    "Minnesota",
		"Montreal":           "Washington",
	},
	"NBA": {
		"Baltimore":                   "Washington",
		"Buffalo":                     "Los Angeles Clippers",
		"California State Sacramento": "Sacramento",
		"Capital":                     "Washington",
		"Cincinnati":                  "Sacramento",
		"Fort Wayne":                  "Detroit",
		"Kansas City":                 "Sacramento",
		"Kansas City Omaha":           "Sacramento",
		"Minneapolis":                 "Los Angeles Lakers",
		"New Jersey":                  "Brooklyn",
		"Rochester":                   "Sacramento",
		"Saint Louis":                 "Atlanta",
		"San Diego":                   "Los Angeles Clippers",
		"San Francisco":               "Golden State",
		"Seattle":                     "Oklahoma City",
		"Syracuse":                    "Philadelphia",
	},
	"NFL": {
		"Los Angeles Raiders":   "Vegas",
		"Oakland":               "Vegas",
		"Saint Louis Cardinals": "Arizona",
		"Saint Louis Rams":      "Los Angeles Rams",
	},
	"NHL": {
		"Arizona":               "Phoenix",
		"Hartford":              "Carolina",
		"Minnesota North Stars": "Minnesota",
		"Quebec":                "Colorado",
	},
	"WNBA": {},
}

// Usually a city (or state) is enough to identify a team. Not when the city
// hosts two of them.
var professionalKeepTeam = map[string]map[string]bool{
	"MLB":  setOf("Chicago", "Los Angeles", "New York"),
	"NBA":  setOf("Los Angeles"),
	"NFL":  setOf("Los Angeles", "New York"),
	"NHL":  setOf("New York"),
	"WNBA": {},
}

// NormalizeProfessional reduces a professional team name, already through
// Normalize, to its standard franchise form: collapse to the host city
// unless the city keeps its nickname, then apply the league's relocation
// renames.
func NormalizeProfessional(teamName, league string) string {
	league = strings.TrimRight(league, "_")
	value := strings.ReplaceAll(teamName, "LA ", "Los Angeles ")
	for _, cities := range citiesInState {
		for _, city := range cities {
			if strings.Contains(value, city) && !professionalKeepTeam[league][city] {
				value = city
			}
		}
	}
	if renamed, ok := professionalRenames[league][value]; ok {
		value = renamed
	}
	return value
}
