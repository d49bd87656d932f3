package teamname

import "sort"

// Observations records which raw spellings produced each canonical name.
// Useful for auditing the normalizer against a season's pages. The zero
// value is ready to use; a nil *Observations discards records.
type Observations struct {
	byCanonical map[string]map[string]int
}

// Record notes that raw normalized to canonical.
func (o *Observations) Record(canonical, raw string) {
	if o == nil {
		return
	}
	if o.byCanonical == nil {
		o.byCanonical = make(map[string]map[string]int)
	}
	if o.byCanonical[canonical] == nil {
		o.byCanonical[canonical] = make(map[string]int)
	}
	o.byCanonical[canonical][raw]++
}

// Spellings returns the distinct raw spellings seen for a canonical name,
// sorted.
func (o *Observations) Spellings(canonical string) []string {
	if o == nil {
		return nil
	}
	raws := make([]string, 0, len(o.byCanonical[canonical]))
	for raw := range o.byCanonical[canonical] {
		raws = append(raws, raw)
	}
	sort.Strings(raws)
	return raws
}

// Canonicals returns every canonical name recorded, sorted.
func (o *Observations) Canonicals() []string {
	if o == nil {
		return nil
	}
	names := make([]string, 0, len(o.byCanonical))
	for name := range o.byCanonical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns how many times raw was seen for canonical.
func (o *Observations) Count(canonical, raw string) int {
	if o == nil {
		return 0
	}
	return o.byCanonical[canonical][raw]
}
