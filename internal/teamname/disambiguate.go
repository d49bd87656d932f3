package teamname

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

//go:embed data/univ_disambiguations.json
var univDisambiguationsJSON []byte

// Disambiguator resolves which of several same-named institutions a page is
// talking about. Replacement holds literal substring rewrites applied to the
// raw page text before extraction; Suffix maps an ambiguous base name to the
// base name with a location appended. Computed once per page, then read-only.
type Disambiguator struct {
	Replacement map[string]string
	Suffix      map[string]string
}

// SuffixFor returns the disambiguated form of an exact name, or the name
// unchanged. Safe on a nil receiver.
func (d *Disambiguator) SuffixFor(name string) string {
	if d == nil {
		return name
	}
	if suffixed, ok := d.Suffix[name]; ok {
		return suffixed
	}
	return name
}

// phrase is one disambiguating clue: a literal substring or a pattern.
type phrase struct {
	literal string
	pattern *regexp.Regexp
}

func lit(s string) phrase          { return phrase{literal: s} }
func pat(expr string) phrase      { return phrase{pattern: regexp.MustCompile(expr)} }
func lits(ss ...string) []phrase  {
	phrases := make([]phrase, len(ss))
	for i, s := range ss {
		phrases[i] = lit(s)
	}
	return phrases
}

// univDisambiguations maps an ambiguous university name to, per location, the
// phrases that identify that location's school. Most entries live in
// univ_disambiguations.json; the ones here need a pattern, which isn't valid
// JSON. Coded entries override the JSON on key collision.
var univDisambiguations = func() map[string]map[string][]phrase {
	var fromJSON map[string]map[string][]string
	if err := json.Unmarshal(univDisambiguationsJSON, &fromJSON); err != nil {
		panic(fmt.Sprintf("teamname: parsing univ_disambiguations.json: %v", err))
	}
	table := make(map[string]map[string][]phrase, len(fromJSON)+5)
	for uni, locations := range fromJSON {
		table[uni] = make(map[string][]phrase, len(locations))
		for location, literals := range locations {
			table[uni][location] = lits(literals...)
		}
	}
	table["Northeastern"] = map[string][]phrase{
		"CO": lits("Northeastern Junior College"),
		"IL": lits("Northeastern Golden Eagles"),
		"MA": {lit("Northeastern Huskies"), lit("Colonial Athletic Association"),
			lit("Hockey East"), lit("ECAC"), pat(`Northeastern University\S`)},
	}
	table["Robert Morris"] = map[string][]phrase{
		"IL": lits("Morris Eagles", "Robert Morris University Illinois"),
		"PA": {lit("Morris Colonials"), lit("Northeast Conference"), lit("Atlantic Hockey"),
			pat(`Robert Morris University\S`)},
	}
	table["Benedict"] = map[string][]phrase{
		"SC": {lit("Benedict Tigers"), lit("Benedict College"), pat(`\SBenedict(\S|\n)`)},
	}
	table["Saint Joseph's"] = map[string][]phrase{
		"Brooklyn":    lits("Joseph's Bears"),
		"CT":          lits("Joseph's Blue Jays"),
		"IN":          lits("St. Joseph's (IN)", "Joseph's Pumas"),
		"Long Island": lits("Joseph's Golden Eagles"),
		"ME":          lits("Joseph's Monks"),
		"NY":          {},
		"PA": {lit("Joseph's Hawks"), lit("Atlantic 10"),
			pat(`Saint Joseph's University\S`)},
	}
	table["Smith"] = map[string][]phrase{
		"MA": {lit("Smith Pioneers"), pat(`\SSmith College(\W|$)`)},
		"NY": {},
	}
	return table
}()

// disambigDefault is an ambiguous name with a well-known default location to
// fall back to when no phrase matches at all.
type disambigDefault struct {
	uni       string
	fallback  string
	locations map[string][]phrase
}

var univDisambiguationDefaults = []disambigDefault{
	{"Miami", "FL", map[string][]phrase{
		"FL": lits("Miami Hurricanes", "Atlantic Coast Conference", "Big East"),
		"OH": lits("Miami Red", "Mid-American Conference", "NCHC"),
	}},
	{"Northwestern", "IL", map[string][]phrase{
		"IL": {lit("Northwestern Wildcats"), lit("Big Ten"), pat(`Northwestern University\S`)},
		"LA": {}, "OH": {}, "OK": {}, "Saint Paul": {},
	}},
	{"Notre Dame", "IN", map[string][]phrase{
		"IN": lits("Fighting Irish", "University of Notre Dame", "Atlantic Coast Conference",
			"Big East", "Big Ten", "Hockey East"),
		"MD": {}, "NH": {}, "NY": {}, "OH": {}, "de Namur": {},
	}},
	{"Providence", "RI", map[string][]phrase{
		"MT": lits("University of Providence"),
		"RI": lits("Providence College", "Providence Friars", "Big East", "Hockey East", "ECAC"),
	}},
	{"Xavier", "OH", map[string][]phrase{
		"OH": lits("Musketeers", "Cincinnati", "Atlantic 10", "Midwestern Collegiate Conference",
			"Big East"),
		"LA": lits("Gold Rush", "Gold Nuggets", "Xavier University of Louisiana"),
	}},
}

// profDisambiguations handles leagues where a city hosts several franchises.
var profDisambiguations = map[string]map[string]map[string][]phrase{
	"MLB": {
		"Florida":     {"Marlins": {}},
		"Los Angeles": {"Angels": {}, "Dodgers": {}},
		"New York":    {"Mets": {}, "Yankees": {}},
	},
	"NBA": {
		"Indiana":      {"Pacers": {}},
		"Indianapolis": {"Olympians": {}}, // existed 1949-1953
		"Los Angeles":  {"Clippers": {}, "Lakers": {}},
	},
	"NFL": {
		"Los Angeles": {"Chargers": {}, "Raiders": {}, "Rams": {}},
		"New York":    {"Giants": {}, "Jets": {}},
		"Saint Louis": {"Cardinals": {}, "Rams": {}},
	},
	"NHL": {
		"New York": {"Islanders": {}, "Rangers": {}},
	},
	"WNBA": {},
}

var pacConference = regexp.MustCompile(`(?i)Pac(ific)?-(8|10|12) Conference`)

// matchPhrase reports whether one disambiguating clue occurs in the content.
// Conference names are ignored in national tournaments: a national field
// can't be disambiguated by conference membership.
func matchPhrase(p phrase, content string, isNational bool) bool {
	if p.pattern != nil {
		return p.pattern.MatchString(content)
	}
	if isNational && conferenceSet[p.literal] {
		return false
	}
	return strings.Contains(content, p.literal)
}

// matchLiteral reports whether "<uni> (<st>)" occurs in content, for various
// spellings of st.
func matchLiteral(uni, st, content string) bool {
	if !strings.Contains(content, strings.TrimPrefix(uni, "Saint")) {
		return false
	}
	base := regexp.QuoteMeta(strings.TrimPrefix(uni, "Saint "))
	if regexp.MustCompile(base+` \(?(?i:`+regexp.QuoteMeta(st)+`)\b`).MatchString(content) {
		return true
	}
	spelled := st
	if full, ok := allStateAbbrevs[st]; ok {
		spelled = full
	}
	if regexp.MustCompile(base + ` \(?` + regexp.QuoteMeta(spelled) + `\b`).MatchString(content) {
		return true
	}
	if state, ok := stateAbbrevs[st]; ok {
		for abbrev, name := range stateAbbrevs {
			if name != state {
				continue
			}
			if regexp.MustCompile(base + ` \(?(?i:` + regexp.QuoteMeta(abbrev) + `)\b`).MatchString(content) {
				return true
			}
		}
	}
	return false
}

// candidateLocations filters a disambiguation table down to the locations the
// page content supports.
func candidateLocations(uni string, locations map[string][]phrase, content string, isNational bool) map[string]bool {
	candidates := make(map[string]bool)
	for location, phrases := range locations {
		if matchLiteral(uni, location, content) {
			candidates[location] = true
			continue
		}
		for _, p := range phrases {
			if matchPhrase(p, content, isNational) {
				candidates[location] = true
				break
			}
		}
	}
	return candidates
}

// BuildDisambiguator inspects a page's raw content and decides, per ambiguous
// name, which location is meant. A name resolves only when exactly one
// location matches; zero or several matches leave the name undisambiguated.
// Deterministic: identical content and flags yield an identical result.
func BuildDisambiguator(content string, flags tourney.Flags) *Disambiguator {
	d := &Disambiguator{
		Suffix: make(map[string]string),
		Replacement: map[string]string{
			"USC Aiken":       "South Carolina Aiken",
			"USC Spartanburg": "South Carolina Upstate",
			"USC Upstate":     "South Carolina Upstate",
		},
	}
	// USC usually means the Trojans (and definitely inside a bracket); the
	// Gamecocks rule runs first so the Trojans rule overrides on conflict.
	if strings.Contains(content, "Gamecocks") || strings.Contains(content, "South Car") {
		d.Replacement["USC"] = "South Carolina"
	}
	if strings.Contains(content, "Trojans") || strings.Contains(content, "Southern Cal") ||
		pacConference.MatchString(content) {
		d.Replacement["USC"] = "Southern California"
	}
	if strings.Contains(content, "Thomas Jefferson University") ||
		strings.Contains(content, "Philadelphia University") ||
		strings.Contains(content, "Jefferson Rams") ||
		strings.Contains(content, "Philadelphia Rams") {
		d.Replacement["Philadelphia"] = "Thomas Jefferson"
	}
	disambiguations := univDisambiguations
	if flags.IsProfessional {
		disambiguations = profDisambiguations[strings.TrimRight(flags.League, "_")]
	}
	for uni, locations := range disambiguations {
		candidates := candidateLocations(uni, locations, content, flags.IsNational)
		if len(candidates) == 1 {
			d.Suffix[uni] = uni + " " + spellLocation(onlyKey(candidates))
		}
	}
	if !flags.IsProfessional {
		for _, entry := range univDisambiguationDefaults {
			candidates := candidateLocations(entry.uni, entry.locations, content, flags.IsNational)
			if len(candidates) == 0 {
				candidates[entry.fallback] = true
			}
			if len(candidates) == 1 {
				d.Suffix[entry.uni] = entry.uni + " " + spellLocation(onlyKey(candidates))
			}
		}
	}
	return d
}

// spellLocation expands a state abbreviation; non-abbreviation location keys
// (neighborhoods, campus names) pass through as-is.
func spellLocation(location string) string {
	if full, ok := allStateAbbrevs[location]; ok {
		return full
	}
	return location
}

func onlyKey(set map[string]bool) string {
	for key := range set {
		return key
	}
	return ""
}
