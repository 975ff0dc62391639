package attr

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator separates attribute names in a nested path.
const PathSeparator = "."

// ParsePath splits a dotted attribute path into attribute names.
// Supports: "title", "location.city", "seller.contact.phone".
func ParsePath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	var names []string

	for part := range strings.SplitSeq(path, PathSeparator) {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		names = append(names, part)
	}

	return names, nil
}
