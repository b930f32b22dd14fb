package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// resolveInputs expands input patterns to concrete files. Supports both
// single-level wildcards (*) and recursive wildcards (**). Literal paths pass
// through untouched so that a missing file surfaces as a read error, not a
// silent empty match.
func resolveInputs(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if !containsGlob(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				resolved = append(resolved, pattern)
			}
			continue
		}

		// Use doublestar for ** support
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", pattern)
		}

		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				resolved = append(resolved, m)
			}
		}
	}

	return resolved, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
