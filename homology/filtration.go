package homology

import (
	"fmt"
	"sort"
	"strings"
)

// implementedFiltrations is the fixed, closed registry of filtration
// algorithm names the engine family implements. It is initialized once and
// never mutated, so concurrent reads need no synchronization.
var implementedFiltrations = map[string]struct{}{
	"dimension":     {},
	"zero":          {},
	"max":           {},
	"max3":          {},
	"max_plus_one":  {},
	"product":       {},
	"sum":           {},
	"pmean":         {},
	"pmoment":       {},
	"remove_edges":  {},
	"vertex_degree": {},
}

// Filtrations returns the registry as a fresh sorted slice, safe to retain
// or mutate. Complexity: O(k log k) for the k registry entries.
func Filtrations() []string {
	names := make([]string, 0, len(implementedFiltrations))
	for name := range implementedFiltrations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// validateFiltration checks name against the registry. An unknown name
// yields ErrUnknownFiltration wrapped with the offending value and the full
// valid set, before any extraction or engine work is attempted.
//
// Note: a recognized name is NOT checked for mathematical consistency of
// the resulting filtration — that is deferred to the caller by contract,
// for performance.
func validateFiltration(name string) error {
	if _, ok := implementedFiltrations[name]; !ok {
		return fmt.Errorf("homology: filtration %q (valid: %s): %w",
			name, strings.Join(Filtrations(), ", "), ErrUnknownFiltration)
	}

	return nil
}
