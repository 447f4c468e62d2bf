package util

import (
	"os"
	"strings"

	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
)

func IsDeveloperModeEnabled() bool {
	value := os.Getenv(n.DeveloperModeEnabledEnv)
	return strings.ToLower(value) == "true"
}

// HasText reports whether s contains anything besides whitespace.
func HasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// SplitTrimmedUnique splits s on commas, trims each element and drops
// blanks and duplicates. The first occurrence of an element keeps its position.
func SplitTrimmedUnique(s string) []string {
	var set []string
	seen := map[string]struct{}{}
	for _, e := range strings.Split(s, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		set = append(set, e)
	}
	return set
}
