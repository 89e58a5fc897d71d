/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: target.go
Description: Verification targets: a grammar builder, its start rule and the counts it
is expected to produce.
*/

package verify

import (
	"fmt"

	"github.com/kleascm/akaylee-species/pkg/catalog"
	"github.com/kleascm/akaylee-species/pkg/grammar"
)

// Target is one grammar to verify
type Target struct {
	Name     string
	Start    string
	Expected []int64 // counts of Start for sizes 0, 1, 2, ...
	Build    func(opts ...grammar.Option) (*grammar.Grammar, error)
}

// FromCatalog turns a catalog entry into a target.
func FromCatalog(e catalog.Entry) Target {
	return Target{
		Name:     e.Name,
		Start:    e.Start,
		Expected: e.Expected,
		Build:    e.Build,
	}
}

// CatalogTargets resolves names against the catalog. No names selects every entry.
func CatalogTargets(names []string) ([]Target, error) {
	if len(names) == 0 {
		entries := catalog.All()
		targets := make([]Target, len(entries))
		for i, e := range entries {
			targets[i] = FromCatalog(e)
		}
		return targets, nil
	}

	targets := make([]Target, 0, len(names))
	for _, name := range names {
		e, err := catalog.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve targets: %w", err)
		}
		targets = append(targets, FromCatalog(e))
	}
	return targets, nil
}
