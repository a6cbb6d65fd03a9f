// Package text holds the small formatting helpers shared by tracer status lines.
package text

import (
	"strconv"
	"strings"
)

// Ints joins xs as "1, 2, 3".
func Ints(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

// Distance renders a path length, using ∞ for unreachable.
func Distance(d int, reachable bool) string {
	if !reachable {
		return "∞"
	}
	return strconv.Itoa(d)
}
