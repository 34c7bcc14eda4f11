package selection

// TokenStream is a forward-only cursor over a lexed token sequence.
// The sequence is shared and immutable; only the position moves.
// There is no way to un-consume a token: speculative parsing works by
// taking a Fork, advancing the fork, and assigning it back onto the
// original stream once the attempt is known to have succeeded.
type TokenStream struct {
	tokens []string
	pos    int
}

func NewTokenStream(tokens []string) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Fork returns an independent cursor at the same position over the
// same token sequence.
func (ts *TokenStream) Fork() TokenStream {
	return *ts
}

// Peek returns the next token without consuming it. The second return
// is false when the stream is exhausted.
func (ts *TokenStream) Peek() (string, bool) {
	if ts.pos >= len(ts.tokens) {
		return "", false
	}
	return ts.tokens[ts.pos], true
}

// Next consumes and returns the next token.
func (ts *TokenStream) Next() (string, bool) {
	t, ok := ts.Peek()
	if ok {
		ts.pos++
	}
	return t, ok
}

// NextIf consumes and returns the next token only if pred accepts it;
// otherwise the position is untouched.
func (ts *TokenStream) NextIf(pred func(string) bool) (string, bool) {
	t, ok := ts.Peek()
	if !ok || !pred(t) {
		return "", false
	}
	ts.pos++
	return t, true
}

// Rest returns the tokens not yet consumed.
func (ts *TokenStream) Rest() []string {
	return ts.tokens[ts.pos:]
}
