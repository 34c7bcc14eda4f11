package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		expected []Selection
	}{
		{
			name:     "no arguments",
			args:     nil,
			expected: []Selection{},
		},
		{
			name: "single clause with id",
			args: []string{"org", "123"},
			expected: []Selection{
				{Table: "org", Selectors: []Selector{SelectorID{Value: "123"}}},
			},
		},
		{
			name: "two clauses in order",
			args: []string{"org", "123", "/", "deduction", "latest", "1000"},
			expected: []Selection{
				{Table: "org", Selectors: []Selector{SelectorID{Value: "123"}}},
				{Table: "deduction", Selectors: []Selector{SelectorLatest{Count: 1000}}},
			},
		},
		{
			name: "slash inside one argument",
			args: []string{"org 123/deduction latest 1000"},
			expected: []Selection{
				{Table: "org 123", Selectors: []Selector{}},
				{Table: "deduction latest 1000", Selectors: []Selector{}},
			},
		},
		{
			name: "comma separated selectors",
			args: []string{"deduction", "rand", "100,", "sort", "created_at", "desc,", "limit", "10"},
			expected: []Selection{
				{Table: "deduction", Selectors: []Selector{
					SelectorRand{Count: 100},
					SelectorSort{Column: "created_at", Descending: true},
					SelectorLimit{Count: 10},
				}},
			},
		},
		{
			name: "sort defaults to ascending",
			args: []string{"deduction", "sort", "created_at"},
			expected: []Selection{
				{Table: "deduction", Selectors: []Selector{
					SelectorSort{Column: "created_at", Descending: false},
				}},
			},
		},
		{
			name: "sort with non-desc direction is ascending",
			args: []string{"deduction", "sort", "created_at", "asc"},
			expected: []Selection{
				{Table: "deduction", Selectors: []Selector{
					SelectorSort{Column: "created_at", Descending: false},
				}},
			},
		},
		{
			name: "unknown keyword with arguments becomes expr",
			args: []string{"deduction", "created_at", "gt", "yesterday"},
			expected: []Selection{
				{Table: "deduction", Selectors: []Selector{SelectorExpr{}}},
			},
		},
		{
			name: "leading slash is tolerated",
			args: []string{"/", "org", "123"},
			expected: []Selection{
				{Table: "org", Selectors: []Selector{SelectorID{Value: "123"}}},
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			selections, err := Parse(testCase.args)
			require.NoError(t, err)
			require.Equal(t, testCase.expected, selections)
		})
	}
}

func TestParseMalformedCount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "rand with non-numeric count", args: []string{"org", "rand", "many"}},
		{name: "latest with negative count", args: []string{"org", "latest", "-5"}},
		{name: "limit with fractional count", args: []string{"org", "limit", "1.5"}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			selections, err := Parse(testCase.args)
			require.Error(t, err)
			require.Nil(t, selections)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()

	args := []string{"org", "123", "/", "deduction", "rand", "100,", "latest", "1000"}
	first, err := Parse(args)
	require.NoError(t, err)
	second, err := Parse(args)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseRawSelectorRejectsSlash(t *testing.T) {
	t.Parallel()

	ts := NewTokenStream([]string{"/", "org"})
	_, err := parseRawSelector(ts)
	require.Error(t, err)
	require.Equal(t, []string{"/", "org"}, ts.Rest())
}

func TestSelectorString(t *testing.T) {
	t.Parallel()

	sel := Selection{Table: "org", Selectors: []Selector{
		SelectorID{Value: "123"},
		SelectorSort{Column: "created_at", Descending: true},
		SelectorExpr{},
	}}
	require.Equal(t, "org[id(123) sort(created_at desc) expr]", sel.String())
}
