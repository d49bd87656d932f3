package teamname

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold strips combining marks, so "José" and "Jose" normalize alike.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	hyphenPattern       = regexp.MustCompile(`[-\x{2010}-\x{2015}\x{2212}]`)
	leaningQuotePattern = regexp.MustCompile(`[ʻ’]`)
	multiSpacePattern   = regexp.MustCompile(`\s\s+`)

	rankPrefixPattern = regexp.MustCompile(`^\(?(#|No\. ?)?\d+\)? `)

	mountPrefixPattern = regexp.MustCompile(`^Mt\.? `)
	saintPrefixPattern = regexp.MustCompile(`^(Mount )?St(\.|\b)`)

	// a state code, possibly prefixed with U: "Fla", "UConn", "Wis."
	stateCodePattern = regexp.MustCompile(`\bU?([A-Z])\.?([A-Za-z]{1,4})(\.|\b)`)
	// a trailing parenthesized code from the smaller table: "Xavier (La.)"
	parenCodePattern = regexp.MustCompile(`(\s)\(([A-Z][A-Za-z])\.?\)$`)
	// two spaced initials: "N. C." or "S D"
	spacedCodePattern = regexp.MustCompile(`\b([A-Z])\.? ([A-Z])(\.|\b)`)

	trailingParenPattern = regexp.MustCompile(`\s*\((.*)\)$`)
	trailingStPattern    = regexp.MustCompile(`St\.?$`)
)

// trailing notations that carry no team identity: overtime and shootout
// markers, rankings, records, forfeit notes, stray separators.
const trailingNoise = `\d*\s*OT` +
	`|\s*P[SK]O?'?s?\s*` +
	`|CK` +
	`|p(?:en)?(?:\.|\b)` +
	`|a\.?e\.?t\.?` +
	`|\d+ ?innings` +
	`|#?\d` +
	`|\d+ \d+(?: \d+)?` +
	`|forfeit|vacated|bye|vacant|cancelled` +
	`|\*` +
	`|[,;/]\s*`

var (
	parenNoisePattern = regexp.MustCompile(`(?i),?(^|\b|\s)\s*\((?:` + trailingNoise + `)+\)$`)
	bareNoisePattern  = regexp.MustCompile(`(?i),?(^|\b|\s)\s*(?:` + trailingNoise + `)+$`)
)

// conferenceSuffix strips "(Big East)" or "(MVC, 12 6)" from the end of a
// name. 1994 Women's Volleyball has a record of "?" for Texas Southern.
type conferenceSuffix struct {
	name    string
	pattern *regexp.Regexp
}

var conferenceSuffixes = func() []conferenceSuffix {
	suffixes := make([]conferenceSuffix, len(conferences))
	for i, conference := range conferences {
		suffixes[i] = conferenceSuffix{
			name:    conference,
			pattern: regexp.MustCompile(`\s*\(` + conference + `(\.?,?\s+(\d+ \d+( \d+)?|\?))?\)$`),
		}
	}
	return suffixes
}()

// stateStPatterns is populated by init in tables.go, once allStates exists;
// a var initializer here would run before that init and see an empty slice.
var stateStPatterns = make(map[string]*regexp.Regexp)

var sortedCityStates = sortedKeys(citiesInState)
var sortedUniStates = sortedKeys(universitiesInState)

func sortedKeys[V any](table map[string]V) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// rstripCommon removes trailing notations from a team name. Parenthesized
// noise is tried after bare noise so that "Duke 101 100 (OT)" keeps its
// scores intact for the caller to complain about, same as a single pass
// would.
func rstripCommon(value string) string {
	value = bareNoisePattern.ReplaceAllString(value, "")
	value = parenNoisePattern.ReplaceAllString(value, "")
	for _, suffix := range conferenceSuffixes {
		if strings.Contains(value, suffix.name) {
			value = suffix.pattern.ReplaceAllString(value, "")
		}
	}
	return value
}

// stripPrefix removes "at ", cancellation notes, and rank markers.
func stripPrefix(value string) string {
	value = strings.TrimPrefix(value, "at ")
	value = strings.TrimPrefix(value, "Canceled due to")
	value = strings.TrimPrefix(value, "COVID 19 pandemic")
	return rankPrefixPattern.ReplaceAllString(value, "")
}

// removeSuffix maybe drops a trailing state. Wikipedia sometimes writes
// "<College> <State>" to locate a lesser known college; drop the state
// unless doing so causes ambiguity.
func removeSuffix(value string) string {
	for _, st := range sortedCityStates {
		for _, city := range citiesInState[st] {
			if strings.Contains(value, city) {
				return strings.TrimRight(strings.TrimSuffix(value, allStateAbbrevs[st]), " ")
			}
		}
	}
	for _, st := range sortedUniStates {
		state := allStateAbbrevs[st]
		if strings.HasSuffix(value, state) {
			potential := strings.TrimRight(strings.TrimSuffix(value, state), " ")
			for _, uni := range universitiesInState[st] {
				if potential == uni {
					return potential
				}
			}
		}
	}
	for word, potentials := range canDrop {
		if strings.HasSuffix(value, " "+word) {
			potential := strings.TrimSuffix(value, " "+word)
			if potentials[potential] {
				value = potential
			}
		}
	}
	for _, state := range allStates {
		if strings.HasSuffix(value, " "+state) {
			potential := strings.TrimSuffix(value, " "+state)
			if StateOf(potential, "") == state {
				value = potential
			}
		}
	}
	return value
}

func expandAbbrevs(value string) string {
	value = multiSpacePattern.ReplaceAllString(value, " ")
	value = mountPrefixPattern.ReplaceAllString(value, "Mount ")
	value = saintPrefixPattern.ReplaceAllString(value, "${1}Saint")
	for _, saint := range saints {
		if strings.Contains(value, saint) {
			re := regexp.MustCompile(`St.? ` + saint + `\b`)
			value = re.ReplaceAllString(value, "Saint "+saint)
		}
	}
	value = stateCodePattern.ReplaceAllStringFunc(value, func(m string) string {
		groups := stateCodePattern.FindStringSubmatch(m)
		if full, ok := stateAbbrevs[groups[1]+strings.ToUpper(groups[2])]; ok {
			return full
		}
		return m
	})
	value = strings.TrimSpace(value)
	value = parenCodePattern.ReplaceAllStringFunc(value, func(m string) string {
		groups := parenCodePattern.FindStringSubmatch(m)
		if full, ok := otherStateAbbrevs[strings.ToUpper(groups[2])]; ok {
			return groups[1] + full
		}
		return m
	})
	value = spacedCodePattern.ReplaceAllStringFunc(value, func(m string) string {
		groups := spacedCodePattern.FindStringSubmatch(m)
		if spacedAbbrevs[groups[1]+groups[2]] {
			return allStateAbbrevs[groups[1]+groups[2]]
		}
		return m
	})
	return value
}

func expandMoreAbbrevs(value string) string {
	value = strings.ReplaceAll(value, ",", "")
	for _, state := range allStates {
		if strings.Contains(value, state) {
			value = stateStPatterns[state].ReplaceAllString(value, state+" State")
		}
	}
	for _, e := range wordExpansions {
		value = strings.TrimRight(e.pattern.ReplaceAllString(value, e.replace), " \t\n")
	}
	for _, st := range sortedCityStates {
		for _, city := range citiesInState[st] {
			value = strings.ReplaceAll(value, " ("+city+")", " "+allStateAbbrevs[st])
		}
	}
	value = trailingParenPattern.ReplaceAllStringFunc(value, func(m string) string {
		inner := trailingParenPattern.FindStringSubmatch(m)[1]
		for _, state := range allStates {
			if inner == state {
				return " " + inner
			}
		}
		return m
	})
	value = multiSpacePattern.ReplaceAllString(value, " ")
	value = trailingStPattern.ReplaceAllString(value, "State")
	value = removeSuffix(value)
	value = trailingStPattern.ReplaceAllString(value, "State")
	return value
}

// Normalize transforms a university's team name into its standard form.
// The stages run in a fixed order; several later stages rely on the text
// shape earlier stages establish (no hyphens, no ranks, abbreviations
// spelled out). The observed raw spelling is recorded against the final
// canonical name.
func Normalize(teamName string, d *Disambiguator, obs *Observations) string {
	value := teamName
	value = hyphenPattern.ReplaceAllString(value, " ")
	value = leaningQuotePattern.ReplaceAllString(value, "'")
	if folded, _, err := transform.String(asciiFold, value); err == nil {
		value = folded
	}
	for _, entry := range stateUniversities {
		for _, city := range entry.cities {
			if strings.Contains(teamName, city) {
				canonical := entry.system + " " + city
				obs.Record(canonical, teamName)
				return canonical
			}
		}
	}
	value = stripPrefix(value)
	value = rstripCommon(value)
	observed := value
	value = expandAbbrevs(value)
	for abbrev, expanded := range universityOf {
		if value == "U"+abbrev {
			obs.Record(expanded, observed)
			return expanded
		}
	}
	// Pennsylvania has two weird cases
	if strings.Contains(value, "California") && strings.Contains(value, "Pennsylvania") {
		obs.Record("PennWest California", observed)
		return "PennWest California"
	}
	if strings.Contains(value, "Indiana") && strings.Contains(value, "Pennsylvania") {
		obs.Record("Indiana Pennsylvania", observed)
		return "Indiana Pennsylvania"
	}
	value = expandMoreAbbrevs(value)
	for _, v := range versions {
		if v.pattern.MatchString(value) {
			obs.Record(v.canonical, observed)
			return v.canonical
		}
	}
	value = d.SuffixFor(value)
	if strings.Contains(value, "Oklahoma") && strings.Contains(value, "State") && value != "Oklahoma State" {
		// OK has a bunch of 'OK State <direction>'
		value = strings.ReplaceAll(value, " State", "")
	}
	if renamed, ok := teamRenames[value]; ok {
		value = renamed
	}
	obs.Record(value, observed)
	return value
}
