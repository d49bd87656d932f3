// Package tourney describes the tournament catalog: which tournaments exist,
// which Wikipedia pages hold their brackets, which years they ran, and the
// per-tournament flags the parsing pipeline needs.
package tourney

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// MaxSeed is the largest seed the pipeline keeps; anything above it is
// clamped. 2006 soccer went to 20; tennis goes much higher.
const MaxSeed = 20

// Flags carries the per-tournament switches the parsing pipeline reads.
// Constructed fresh per page and read-only during parsing.
type Flags struct {
	// IsTennis anonymizes the individual players to a placeholder.
	IsTennis bool
	// IsProfessional selects the professional-name pipeline; League names
	// which one (MLB, NBA, NFL, NHL, WNBA).
	IsProfessional bool
	League         string
	// NumTeams is the bracket field count inferred from the template name,
	// or -1 when unknown. Drives round-1 seed defaulting.
	NumTeams int
	// MultiElim marks brackets where a "score" may really be a game tally.
	MultiElim bool
	// IsNational suppresses conference-based disambiguation: a national
	// tournament draws from every conference.
	IsNational bool
}

// Description holds the details needed to locate one tournament's pages.
type Description struct {
	Group       string `json:"-"`
	Tourney     string `json:"-"`
	Title       string `json:"title,omitempty"`
	Suffix      string `json:"-"`
	UseSuffix   *bool  `json:"use_suffix,omitempty"`
	UseTemplate bool   `json:"use_template,omitempty"`
	MultiElim   bool   `json:"multi_elim,omitempty"`
	IsNational  bool   `json:"-"`
	Years       Years  `json:"years,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

// Directory is the cache directory for this tournament's pages. A trailing
// underscore distinguishes renamed eras of the same tournament in the catalog
// while sharing one directory.
func (d Description) Directory() string {
	return d.Group + "/" + strings.TrimRight(d.Tourney, "_")
}

// ParseFlags builds the parsing flags for this tournament.
func (d Description) ParseFlags() Flags {
	return Flags{
		IsTennis:       d.Directory() == "other/Tennis",
		IsProfessional: d.Group == "professional" && d.Tourney != "",
		League:         strings.TrimRight(d.Tourney, "_"),
		NumTeams:       -1,
		MultiElim:      d.MultiElim,
		IsNational:     d.IsNational,
	}
}

// Group is one sport (and gender, for basketball) in the catalog.
type Group struct {
	Suffix        string
	Nonconference []string
	Comment       string
	Tourneys      map[string]Description
}

// reserved catalog keys that are metadata, not tournaments.
var reservedKeys = map[string]bool{"suffix": true, "comment": true, "nonconference": true}

// UnmarshalJSON separates the metadata keys from the tournament entries;
// the source format mixes both at the same level.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Tourneys = make(map[string]Description)
	for key, value := range raw {
		switch key {
		case "suffix":
			if err := json.Unmarshal(value, &g.Suffix); err != nil {
				return fmt.Errorf("parsing suffix: %w", err)
			}
		case "comment":
			if err := json.Unmarshal(value, &g.Comment); err != nil {
				return fmt.Errorf("parsing comment: %w", err)
			}
		case "nonconference":
			if err := json.Unmarshal(value, &g.Nonconference); err != nil {
				return fmt.Errorf("parsing nonconference: %w", err)
			}
		default:
			var desc Description
			if err := json.Unmarshal(value, &desc); err != nil {
				return fmt.Errorf("parsing tournament %q: %w", key, err)
			}
			desc.Tourney = key
			g.Tourneys[key] = desc
		}
	}
	return nil
}

// IsNational reports whether a tournament draws nationally rather than from
// one conference. Groups with no nonconference list are entirely national.
func (g Group) IsNational(tourney string) bool {
	if len(g.Nonconference) == 0 {
		return true
	}
	trimmed := strings.TrimRight(tourney, "_")
	for _, name := range g.Nonconference {
		if name == trimmed {
			return true
		}
	}
	return false
}

// Catalog is the full tournament listing, keyed by group.
type Catalog map[string]Group

// LoadCatalog reads a catalog JSON file.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return catalog, nil
}

// Resolve fills in the derived fields of one tournament's description.
func (c Catalog) Resolve(group, tourney string) (Description, error) {
	tourneyGroup, ok := c[group]
	if !ok {
		return Description{}, fmt.Errorf("unknown group %q", group)
	}
	desc, ok := tourneyGroup.Tourneys[tourney]
	if !ok {
		return Description{}, fmt.Errorf("unknown tournament %q in group %q", tourney, group)
	}
	desc.Group = group
	desc.Suffix = tourneyGroup.Suffix
	desc.IsNational = tourneyGroup.IsNational(tourney)
	return desc, nil
}

// CurrentYear is the year used to expand open-ended year ranges. The latest
// complete year is the cutoff: tournaments finishing mid-year are not
// evaluated until the calendar year ends.
func CurrentYear() int {
	return time.Now().Year()
}
