package cronexpr

import (
	"slices"
	"strconv"
	"strings"
)

// Field tokens understood by the builder.
const (
	Wildcard      = "*"
	NoSpecific    = "?"
	LastDay       = "L"
	listSeparator = ","
	rangeOperator = "-"
)

// minRangeRun is the shortest run of consecutive values written as a-b.
// Shorter runs are written as list members so stored schedules keep
// their existing spelling.
const minRangeRun = 3

// Compress renders a set of values in cron list/range notation.
//
//	[1 2 3 4 5]        -> "1-5"
//	[1 3 5 7]          -> "1,3,5,7"
//	[1 2 3 10 11 12]   -> "1-3,10-12"
//	[]                 -> "*"
func Compress(values []int) string {
	sorted := normalize(values)
	switch len(sorted) {
	case 0:
		return Wildcard
	case 1:
		return strconv.Itoa(sorted[0])
	}

	parts := make([]string, 0, len(sorted))
	start := sorted[0]
	end := sorted[0]
	flush := func() {
		switch {
		case end-start+1 >= minRangeRun:
			parts = append(parts, strconv.Itoa(start)+rangeOperator+strconv.Itoa(end))
		case end == start:
			parts = append(parts, strconv.Itoa(start))
		default:
			parts = append(parts, strconv.Itoa(start), strconv.Itoa(end))
		}
	}

	for _, v := range sorted[1:] {
		if v == end+1 {
			end = v
			continue
		}
		flush()
		start, end = v, v
	}
	flush()

	return strings.Join(parts, listSeparator)
}

// Expand returns the values denoted by a cron field, limited to [low, high]
// and sorted ascending. "*" and "?" expand to an empty slice, which callers
// read as "unrestricted". Tokens that are not integers or a-b ranges are
// dropped.
func Expand(field string, low, high int) []int {
	field = strings.TrimSpace(field)
	if field == Wildcard || field == NoSpecific {
		return []int{}
	}

	var values []int
	for _, token := range strings.Split(field, listSeparator) {
		lo, hi, ok := parseToken(token)
		if !ok {
			continue
		}
		for v := max(lo, low); v <= min(hi, high); v++ {
			values = append(values, v)
		}
	}

	out := normalize(values)
	if out == nil {
		return []int{}
	}
	return slices.Clip(out)
}

// parseToken reads "n" or "a-b". A reversed range yields lo > hi and so
// expands to nothing.
func parseToken(token string) (lo, hi int, ok bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, 0, false
	}
	if a, b, isRange := strings.Cut(token, rangeOperator); isRange {
		from, errFrom := strconv.Atoi(strings.TrimSpace(a))
		to, errTo := strconv.Atoi(strings.TrimSpace(b))
		if errFrom != nil || errTo != nil {
			return 0, 0, false
		}
		return from, to, true
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, 0, false
	}
	return n, n, true
}
