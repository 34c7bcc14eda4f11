package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Selector is one typed row-filtering rule for a table. Every selector
// is exactly one of the variants below; unrecognized keywords with
// arguments become SelectorExpr.
type Selector interface {
	selector()
	fmt.Stringer
}

// SelectorID picks rows by primary key.
type SelectorID struct {
	Value string
}

// SelectorRand picks Count rows at random.
type SelectorRand struct {
	Count uint64
}

// SelectorLatest picks the Count most recent rows.
type SelectorLatest struct {
	Count uint64
}

// SelectorLimit caps the row set at Count rows.
type SelectorLimit struct {
	Count uint64
}

// SelectorSort orders rows by Column, ascending unless Descending.
type SelectorSort struct {
	Column     string
	Descending bool
}

// SelectorExpr stands in for a free-form filter expression. It carries
// no data and is never interpreted.
type SelectorExpr struct{}

func (SelectorID) selector()     {}
func (SelectorRand) selector()   {}
func (SelectorLatest) selector() {}
func (SelectorLimit) selector()  {}
func (SelectorSort) selector()   {}
func (SelectorExpr) selector()   {}

func (s SelectorID) String() string     { return fmt.Sprintf("id(%s)", s.Value) }
func (s SelectorRand) String() string   { return fmt.Sprintf("rand(%d)", s.Count) }
func (s SelectorLatest) String() string { return fmt.Sprintf("latest(%d)", s.Count) }
func (s SelectorLimit) String() string  { return fmt.Sprintf("limit(%d)", s.Count) }
func (s SelectorSort) String() string {
	if s.Descending {
		return fmt.Sprintf("sort(%s desc)", s.Column)
	}
	return fmt.Sprintf("sort(%s asc)", s.Column)
}
func (SelectorExpr) String() string { return "expr" }

// Selection pairs one table with its ordered selectors.
type Selection struct {
	Table     string
	Selectors []Selector
}

func (s Selection) String() string {
	parts := make([]string, len(s.Selectors))
	for i, sel := range s.Selectors {
		parts[i] = sel.String()
	}
	return fmt.Sprintf("%s[%s]", s.Table, strings.Join(parts, " "))
}

// rawSelector and rawSelection are the in-progress forms produced
// during parsing. They reference tokens from the stream and are
// converted to owned Selection/Selector values before anything is
// returned to the caller.
type rawSelector struct {
	keyword string
	args    []string
}

type rawSelection struct {
	table     string
	selectors []rawSelector
}

// parseRawSelector parses one keyword token followed by zero or more
// argument tokens. The argument run stops at the next comma, the next
// slash, or end of input.
func parseRawSelector(ts *TokenStream) (rawSelector, error) {
	tt := ts.Fork()
	keyword, ok := tt.Next()
	if !ok {
		return rawSelector{}, newParseError("expected selector, got nothing")
	}
	if keyword == "/" {
		return rawSelector{}, newParseError("expected selector, got /")
	}
	var args []string
	for {
		t, ok := tt.NextIf(func(t string) bool { return t != "," && t != "/" })
		if !ok {
			break
		}
		args = append(args, t)
	}
	*ts = tt
	return rawSelector{keyword: keyword, args: args}, nil
}

// parseRawSelection parses one clause: a table-name token followed by a
// comma-separated selector list. No identifier-shape check is applied
// to the table name.
func parseRawSelection(ts *TokenStream) (rawSelection, error) {
	tt := ts.Fork()
	table, ok := tt.Next()
	if !ok {
		return rawSelection{}, newParseError("expected table name, got nothing")
	}
	selectors := Punctuated(&tt, ParseComma, parseRawSelector)
	*ts = tt
	return rawSelection{table: table, selectors: selectors}, nil
}

func parseCount(keyword, arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, newParseError("selector %s: %q is not a non-negative count", keyword, arg)
	}
	return n, nil
}

func (raw rawSelector) typed() (Selector, error) {
	if len(raw.args) == 0 {
		return SelectorID{Value: strings.Clone(raw.keyword)}, nil
	}
	switch raw.keyword {
	case "rand":
		n, err := parseCount(raw.keyword, raw.args[0])
		if err != nil {
			return nil, err
		}
		return SelectorRand{Count: n}, nil
	case "latest":
		n, err := parseCount(raw.keyword, raw.args[0])
		if err != nil {
			return nil, err
		}
		return SelectorLatest{Count: n}, nil
	case "limit":
		n, err := parseCount(raw.keyword, raw.args[0])
		if err != nil {
			return nil, err
		}
		return SelectorLimit{Count: n}, nil
	case "sort":
		descending := len(raw.args) > 1 && raw.args[1] == "desc"
		return SelectorSort{Column: strings.Clone(raw.args[0]), Descending: descending}, nil
	default:
		return SelectorExpr{}, nil
	}
}

func (raw rawSelection) typed() (Selection, error) {
	selectors := make([]Selector, 0, len(raw.selectors))
	for _, rs := range raw.selectors {
		s, err := rs.typed()
		if err != nil {
			return Selection{}, err
		}
		selectors = append(selectors, s)
	}
	return Selection{Table: strings.Clone(raw.table), Selectors: selectors}, nil
}

// Parse lexes the argument strings and parses them as a slash-separated
// clause list, returning owned Selection values in input order. On
// failure no partial result is returned.
func Parse(args []string) ([]Selection, error) {
	ts := NewTokenStream(Lex(args))
	raws := Punctuated(ts, ParseSlash, parseRawSelection)
	selections := make([]Selection, 0, len(raws))
	for _, raw := range raws {
		s, err := raw.typed()
		if err != nil {
			return nil, err
		}
		selections = append(selections, s)
	}
	return selections, nil
}
