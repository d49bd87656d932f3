package tourney

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/tourneys.json
var defaultCatalogJSON []byte

// DefaultCatalog parses the catalog shipped with the binary. Pass a file to
// LoadCatalog instead to analyze a different set of tournaments.
func DefaultCatalog() (Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(defaultCatalogJSON, &catalog); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return catalog, nil
}
