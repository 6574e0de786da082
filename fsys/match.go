package fsys

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

var errNoPatterns = errors.New("no patterns provided")

// Match expands one or more glob patterns (including ** and {a,b}) against
// the OS filesystem and returns the union of matches, deduplicated and
// sorted.
func Match(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, errNoPatterns
	}

	seen := make(map[string]bool)

	var matches []string

	for _, pattern := range patterns {
		list, err := doublestar.FilepathGlob(filepath.Clean(pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}

		for _, m := range list {
			if seen[m] {
				continue
			}

			seen[m] = true
			matches = append(matches, m)
		}
	}

	sort.Strings(matches)

	return matches, nil
}
