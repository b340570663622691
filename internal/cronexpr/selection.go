package cronexpr

import (
	"slices"
	"strconv"
	"strings"
)

// Selection is either "every value in range" or an explicit set of values.
// The zero value is an empty explicit set.
type Selection struct {
	all    bool
	values []int
}

// All returns the unrestricted selection.
func All() Selection {
	return Selection{all: true}
}

// Explicit returns a selection holding exactly the given values.
// Duplicates are removed and values are kept in ascending order.
func Explicit(values ...int) Selection {
	return Selection{values: normalize(values)}
}

// IsAll reports whether the selection is unrestricted.
func (s Selection) IsAll() bool {
	return s.all
}

// Values returns a copy of the explicit values. It is nil for All.
func (s Selection) Values() []int {
	if s.all {
		return nil
	}
	return slices.Clone(s.values)
}

// Len returns the number of explicit values (0 for All).
func (s Selection) Len() int {
	if s.all {
		return 0
	}
	return len(s.values)
}

// IsEmpty reports whether the selection is explicit and holds nothing.
func (s Selection) IsEmpty() bool {
	return !s.all && len(s.values) == 0
}

// Contains reports whether v is selected. All contains everything.
func (s Selection) Contains(v int) bool {
	if s.all {
		return true
	}
	_, found := slices.BinarySearch(s.values, v)
	return found
}

// Toggle returns a copy of s with v added or removed.
// Toggling on All yields the singleton {v}.
func (s Selection) Toggle(v int) Selection {
	if s.all {
		return Explicit(v)
	}
	if i, found := slices.BinarySearch(s.values, v); found {
		return Selection{values: slices.Delete(slices.Clone(s.values), i, i+1)}
	}
	return Explicit(append(slices.Clone(s.values), v)...)
}

// Equal reports whether two selections denote the same thing.
func (s Selection) Equal(o Selection) bool {
	if s.all || o.all {
		return s.all == o.all
	}
	return slices.Equal(s.values, o.values)
}

// String renders the selection for logs and debugging.
func (s Selection) String() string {
	if s.all {
		return Wildcard
	}
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func normalize(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return nil
	}
	return out
}

// within returns the sorted distinct values in [low, high].
func within(values []int, low, high int) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v >= low && v <= high {
			out = append(out, v)
		}
	}
	return normalize(out)
}
