package ui

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Cn joins class lists, dropping empty ones, and resolves conflicting
// Tailwind utilities in favour of the later list.
//
// The surviving classes keep their input order, each at its last
// occurrence, so the result is the same in every process.
func Cn(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	kept := make(map[string]bool)
	for _, c := range strings.Fields(twmerge.Merge(parts...)) {
		kept[c] = true
	}

	tokens := strings.Fields(strings.Join(parts, " "))
	last := make(map[string]int, len(tokens))
	for i, c := range tokens {
		last[c] = i
	}

	out := make([]string, 0, len(kept))
	for i, c := range tokens {
		if kept[c] && last[c] == i {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
