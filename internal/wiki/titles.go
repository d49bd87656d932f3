// Package wiki fetches tournament pages from Wikipedia and caches their raw
// source on disk. Page titles are guessed from the tournament catalog; the
// live site is only consulted when the cache has gone stale.
package wiki

import (
	"fmt"
	"strings"

	"github.com/tmadsen/bracketstats/internal/tourney"
)

// PotentialTitles lists the titles Wikipedia may use for a tournament's
// page. Sometimes the suffix is lowercased, and some tournaments keep their
// bracket on a template page. NFL playoff pages use a year range, and
// sometimes its dash is an en dash.
func PotentialTitles(desc tourney.Description, year int, useRange bool) []string {
	title := desc.Title
	if title == "" {
		title = strings.ToUpper(desc.Tourney)
	}
	if year != 0 {
		if useRange {
			title = yearRange(year) + " " + title
		} else {
			title = fmt.Sprintf("%d %s", year, title)
		}
	}
	var titles []string
	if desc.UseTemplate {
		titles = append(titles, "Template:"+title)
	}
	if useSuffix(desc) && desc.Group != "other" {
		titles = append(titles, title+" "+desc.Suffix)
		titles = append(titles, title+" "+strings.ToLower(desc.Suffix))
	} else {
		titles = append(titles, title)
	}
	if useRange {
		for _, t := range titles {
			titles = append(titles, strings.ReplaceAll(t, "-", "–"))
		}
	}
	return titles
}

func useSuffix(desc tourney.Description) bool {
	return desc.UseSuffix == nil || *desc.UseSuffix
}

// yearRange formats a season spanning the turn of the year. The second year
// keeps two digits except across the millennium.
func yearRange(year int) string {
	if year == 1999 {
		return "1999–2000"
	}
	return fmt.Sprintf("%d–%02d", year, (year+1)%100)
}
