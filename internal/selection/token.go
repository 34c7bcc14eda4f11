package selection

// Lex splits raw argument strings into one flat token sequence. The
// delimiters ( ) , / each become a single-character token; every
// maximal run of other characters between them becomes one token.
// Argument boundaries are invisible once lexed and no token is ever
// empty.
func Lex(args []string) []string {
	var tokens []string
	for _, arg := range args {
		last := 0
		for i, r := range arg {
			switch r {
			case '(', ')', ',', '/':
				if last != i {
					tokens = append(tokens, arg[last:i])
				}
				tokens = append(tokens, arg[i:i+1])
				last = i + 1
			}
		}
		if last < len(arg) {
			tokens = append(tokens, arg[last:])
		}
	}
	return tokens
}
