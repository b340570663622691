package cronexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{name: "consecutive run", values: []int{1, 2, 3, 4, 5}, want: "1-5"},
		{name: "no runs", values: []int{1, 3, 5, 7}, want: "1,3,5,7"},
		{name: "two runs", values: []int{1, 2, 3, 10, 11, 12}, want: "1-3,10-12"},
		{name: "single value", values: []int{5}, want: "5"},
		{name: "empty", values: []int{}, want: "*"},
		{name: "nil", values: nil, want: "*"},
		{name: "pair stays a list", values: []int{1, 2}, want: "1,2"},
		{name: "pair next to run", values: []int{1, 2, 4, 5, 6}, want: "1,2,4-6"},
		{name: "unsorted input", values: []int{12, 3, 1, 2, 11, 10}, want: "1-3,10-12"},
		{name: "duplicates", values: []int{3, 3, 1, 2, 2}, want: "1-3"},
		{name: "duplicates of one value", values: []int{7, 7}, want: "7"},
		{name: "weekend", values: []int{0, 6}, want: "0,6"},
		{name: "full week", values: []int{0, 1, 2, 3, 4, 5, 6}, want: "0-6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compress(tt.values))
		})
	}
}

func TestCompressDoesNotModifyInput(t *testing.T) {
	values := []int{3, 1, 2}
	_ = Compress(values)
	assert.Equal(t, []int{3, 1, 2}, values)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		low, high int
		want      []int
	}{
		{name: "range", field: "1-5", low: 1, high: 7, want: []int{1, 2, 3, 4, 5}},
		{name: "list", field: "1,3,5", low: 1, high: 7, want: []int{1, 3, 5}},
		{name: "wildcard", field: "*", low: 1, high: 7, want: []int{}},
		{name: "no specific value", field: "?", low: 1, high: 7, want: []int{}},
		{name: "mixed", field: "1-3,5,7", low: 1, high: 7, want: []int{1, 2, 3, 5, 7}},
		{name: "filtered to domain", field: "0-9", low: 1, high: 7, want: []int{1, 2, 3, 4, 5, 6, 7}},
		{name: "out of domain single", field: "13", low: 1, high: 12, want: []int{}},
		{name: "deduplicated and sorted", field: "5,1-3,2,5", low: 1, high: 7, want: []int{1, 2, 3, 5}},
		{name: "garbage dropped", field: "1,x,3-y,5", low: 1, high: 7, want: []int{1, 5}},
		{name: "all garbage", field: "abc", low: 1, high: 7, want: []int{}},
		{name: "reversed range", field: "5-1", low: 1, high: 7, want: []int{}},
		{name: "empty tokens", field: "1,,2", low: 1, high: 7, want: []int{1, 2}},
		{name: "surrounding spaces", field: " 2 ", low: 1, high: 7, want: []int{2}},
		{name: "step syntax unsupported", field: "1/2", low: 1, high: 7, want: []int{}},
		{name: "range without start", field: "-5,7", low: 0, high: 7, want: []int{7}},
		{name: "chained range operators", field: "1-3-5", low: 1, high: 7, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.field, tt.low, tt.high))
		})
	}
}

func TestCompressExpandRoundTrip(t *testing.T) {
	sets := [][]int{
		{1},
		{1, 2},
		{1, 2, 3},
		{1, 3, 5, 7, 9, 11},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		{2, 3, 4, 8, 9, 12},
	}

	for _, set := range sets {
		field := Compress(set)
		assert.Equal(t, set, Expand(field, MinMonth, MaxMonth), "field %q", field)
	}
}
