package schema

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// placeholderRe captures the raw inner token of every {{...}} pair so
// that malformed tokens like {{abc}} can be rejected rather than
// silently skipped. Matching is byte-based but the pattern only ever
// matches ASCII braces, so it is safe on multi-byte text.
var placeholderRe = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

// ScanPlaceholders extracts the {{n}} placeholder indices of text, in
// order of appearance and including duplicates. A token whose inner
// part is not a positive decimal number is a malformed placeholder.
func ScanPlaceholders(text string) ([]int, error) {
	var indices []int
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		inner := strings.TrimSpace(m[1])
		n, err := strconv.Atoi(inner)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("malformed placeholder {{%s}}: expected a positive number", m[1])
		}
		indices = append(indices, n)
	}
	return indices, nil
}

// CheckSequential reports whether the distinct placeholder indices form
// the exact sequence 1..k. On failure it returns the found set rendered
// for diagnostics, e.g. "{{1}}, {{3}}".
func CheckSequential(indices []int) (ok bool, found string) {
	distinct := distinctSorted(indices)
	for i, n := range distinct {
		if n != i+1 {
			return false, FormatPlaceholders(distinct)
		}
	}
	return true, ""
}

// DuplicatePlaceholders returns the indices that appear more than once,
// sorted ascending.
func DuplicatePlaceholders(indices []int) []int {
	seen := make(map[int]int, len(indices))
	for _, n := range indices {
		seen[n]++
	}
	var dups []int
	for n, count := range seen {
		if count > 1 {
			dups = append(dups, n)
		}
	}
	sort.Ints(dups)
	return dups
}

// FormatPlaceholders renders indices as literal tokens: "{{1}}, {{3}}".
func FormatPlaceholders(indices []int) string {
	parts := make([]string, len(indices))
	for i, n := range indices {
		parts[i] = fmt.Sprintf("{{%d}}", n)
	}
	return strings.Join(parts, ", ")
}

func distinctSorted(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	var out []int
	for _, n := range indices {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
