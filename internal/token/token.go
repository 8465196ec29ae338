package token

type Type int

const (
	NUMBER Type = iota
	IDENT
	OPERATOR
	LPAREN
	RPAREN
	INVALID
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case IDENT:
		return "IDENT"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type, literal value and rune offset in the input.
type Token struct {
	Type  Type
	Value string
	Pos   int
}

// Values returns the literal text of each token.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}

func IsOperator(ch rune) bool {
	switch ch {
	case '+', '-', '*', '/':
		return true
	}
	return false
}
