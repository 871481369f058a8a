package jpatch

import (
	"github.com/brunoga/jpatch/internal/core"
)

// Match is a value found by Find.
type Match struct {
	// Path is the concrete path of the value, wildcards replaced by the
	// matching index.
	Path  string
	Value any
}

// Find returns the values at path inside root without modifying it. The path
// follows the rules of test paths, so "*" segments fan out over array
// indices. Branches below a wildcard that do not resolve are skipped; the
// part of the path before the first wildcard must exist.
func Find(root any, path string, opts ...Option) ([]Match, error) {
	cfg := newConfig(opts)
	p, err := core.ParsePath(path, core.Test, cfg.parse)
	if err != nil {
		return nil, err
	}
	found, err := core.Collect(root, p)
	if err != nil {
		return nil, err
	}
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{Path: m.Path.String(), Value: m.Value}
	}
	return matches, nil
}
