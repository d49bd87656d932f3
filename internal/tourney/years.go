package tourney

import (
	"encoding/json"
	"fmt"
)

// yearsKind tags the Years variant.
type yearsKind int

const (
	yearsNone yearsKind = iota
	yearsUnbounded
	yearsRange
	yearsList
)

// Span is one entry of an explicit year list: a single year, a closed range,
// or an open range still running.
type Span struct {
	Start int
	End   int // 0 for a single year; ignored when Open
	Open  bool
}

// Years is the tagged variant over the catalog's year specifications:
// Unbounded(start), Range(start, end), or an explicit list of spans. The
// source data encodes these as an int, a two-int list, or a mixed list; the
// variant removes that type-based branching from call sites.
type Years struct {
	kind       yearsKind
	start, end int
	spans      []Span
}

// Unbounded is a tournament that started in a given year and is still going.
func Unbounded(start int) Years { return Years{kind: yearsUnbounded, start: start} }

// Range is a closed range of years, endpoints included.
func Range(start, end int) Years { return Years{kind: yearsRange, start: start, end: end} }

// ExplicitList enumerates spans with gaps.
func ExplicitList(spans ...Span) Years { return Years{kind: yearsList, spans: spans} }

// IsZero reports whether no years were specified.
func (y Years) IsZero() bool { return y.kind == yearsNone }

// Expand lists every year the tournament ran, in order. Open-ended ranges run
// through the last complete year (the current year is excluded).
func (y Years) Expand() []int {
	current := CurrentYear()
	var years []int
	switch y.kind {
	case yearsNone:
	case yearsUnbounded:
		for year := y.start; year < current; year++ {
			years = append(years, year)
		}
	case yearsRange:
		for year := y.start; year <= y.end; year++ {
			years = append(years, year)
		}
	case yearsList:
		for _, span := range y.spans {
			switch {
			case span.Open:
				for year := span.Start; year < current; year++ {
					years = append(years, year)
				}
			case span.End != 0:
				for year := span.Start; year <= span.End; year++ {
					years = append(years, year)
				}
			default:
				years = append(years, span.Start)
			}
		}
	}
	return years
}

// UnmarshalJSON accepts the catalog's year encodings:
//
//	2003            a starting year, still ongoing
//	[1998, 2005]    a closed range
//	[1960, [1971, 1980], [1995, null], null]  a mixed list
//
// Inside a list, [start, null] (or [start, 0]) means "started and ongoing",
// and a bare null entry is ignored.
func (y *Years) UnmarshalJSON(data []byte) error {
	var single int
	if err := json.Unmarshal(data, &single); err == nil {
		*y = Unbounded(single)
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("bad years value %s", data)
	}
	// A two-int list is a closed range, not a list of two years.
	if len(entries) == 2 {
		var start, end int
		if json.Unmarshal(entries[0], &start) == nil && json.Unmarshal(entries[1], &end) == nil {
			*y = Range(start, end)
			return nil
		}
	}
	var spans []Span
	for _, entry := range entries {
		if string(entry) == "null" {
			continue
		}
		var year int
		if err := json.Unmarshal(entry, &year); err == nil {
			spans = append(spans, Span{Start: year})
			continue
		}
		var pair []json.RawMessage
		if err := json.Unmarshal(entry, &pair); err != nil || len(pair) != 2 {
			return fmt.Errorf("bad years entry %s", entry)
		}
		var span Span
		if err := json.Unmarshal(pair[0], &span.Start); err != nil {
			return fmt.Errorf("bad years entry %s", entry)
		}
		if string(pair[1]) == "null" || string(pair[1]) == "false" || string(pair[1]) == "0" {
			span.Open = true
		} else if err := json.Unmarshal(pair[1], &span.End); err != nil {
			return fmt.Errorf("bad years entry %s", entry)
		}
		spans = append(spans, span)
	}
	*y = ExplicitList(spans...)
	return nil
}

// MarshalJSON writes the most compact encoding that round-trips.
func (y Years) MarshalJSON() ([]byte, error) {
	switch y.kind {
	case yearsUnbounded:
		return json.Marshal(y.start)
	case yearsRange:
		return json.Marshal([2]int{y.start, y.end})
	case yearsList:
		entries := make([]any, 0, len(y.spans))
		for _, span := range y.spans {
			switch {
			case span.Open:
				entries = append(entries, [2]any{span.Start, nil})
			case span.End != 0:
				entries = append(entries, [2]int{span.Start, span.End})
			default:
				entries = append(entries, span.Start)
			}
		}
		return json.Marshal(entries)
	}
	return []byte("null"), nil
}
