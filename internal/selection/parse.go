package selection

import (
	"fmt"
	"unicode"
)

// ParseError is the only failure kind the parser produces. It carries
// a human-readable message and no position data; inside the combinators
// it is pure control flow driving backtracking, and only a failure that
// escapes the outermost parse reaches the caller.
type ParseError struct {
	message string
}

func newParseError(format string, args ...any) *ParseError {
	return &ParseError{message: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return "parse error: " + e.message
}

// ParseFunc recognizes one structural unit of type T at the stream's
// current position. On success the stream has advanced exactly past the
// recognized tokens; on failure the stream is left exactly as it was.
// Partial consumption followed by failure is never allowed, so every
// fallible implementation works on a Fork of the stream and assigns the
// fork back only once it has succeeded.
type ParseFunc[T any] func(ts *TokenStream) (T, error)

func parsePunct(name, symbol string) ParseFunc[string] {
	return func(ts *TokenStream) (string, error) {
		tt := ts.Fork()
		t, ok := tt.Next()
		if !ok {
			return "", newParseError("expected %s, got nothing", name)
		}
		if t != symbol {
			return "", newParseError("expected %s, got %q", name, t)
		}
		*ts = tt
		return t, nil
	}
}

func parseComparator(name string, spellings ...string) ParseFunc[string] {
	return func(ts *TokenStream) (string, error) {
		tt := ts.Fork()
		t, ok := tt.Next()
		if !ok {
			return "", newParseError("expected %s, got nothing", name)
		}
		for _, spelling := range spellings {
			if t == spelling {
				*ts = tt
				return t, nil
			}
		}
		return "", newParseError("expected %s, got %q", name, t)
	}
}

var (
	// Single-character punctuation matchers.
	ParseComma  = parsePunct("comma", ",")
	ParsePeriod = parsePunct("period", ".")
	ParseSlash  = parsePunct("slash", "/")

	// Comparators accept either the symbol or the word spelling.
	ParseGt = parseComparator(">", ">", "gt")
	ParseLt = parseComparator("<", "<", "lt")
)

// ParseIdentifier matches one token composed entirely of alphanumeric
// characters or underscores. The check is purely lexical; there are no
// reserved words.
func ParseIdentifier(ts *TokenStream) (string, error) {
	tt := ts.Fork()
	t, ok := tt.Next()
	if !ok {
		return "", newParseError("expected identifier, got nothing")
	}
	for _, r := range t {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return "", newParseError("expected identifier, got %q", t)
		}
	}
	*ts = tt
	return t, nil
}

// Punctuated parses zero or more items optionally separated by delim.
// It never fails: an empty result is a valid success. At most one
// leading delimiter is consumed, a failed delimiter attempt is simply
// discarded, and the stream ends up just past the last successfully
// consumed item or delimiter, never past a failed item attempt.
func Punctuated[D, T any](ts *TokenStream, delim ParseFunc[D], item ParseFunc[T]) []T {
	tt := ts.Fork()
	_, _ = delim(&tt)
	var items []T
	for {
		v, err := item(&tt)
		if err != nil {
			break
		}
		items = append(items, v)
		_, _ = delim(&tt)
	}
	*ts = tt
	return items
}

// Sequence parses zero or more consecutive items, stopping at the first
// failure. Like Punctuated it never fails.
func Sequence[T any](ts *TokenStream, item ParseFunc[T]) []T {
	var items []T
	for {
		v, err := item(ts)
		if err != nil {
			break
		}
		items = append(items, v)
	}
	return items
}
