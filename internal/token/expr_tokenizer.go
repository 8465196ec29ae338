package token

import (
	"fmt"
	"unicode"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
)

// ExprTokenizer breaks infix arithmetic expressions into tokens. It keeps no state
// between calls, so one instance can be shared.
type ExprTokenizer struct {
	strict bool
}

type Option func(*ExprTokenizer)

// WithStrict makes Tokenize fail on characters that are not part of the grammar
// instead of emitting INVALID tokens.
func WithStrict(strict bool) Option {
	return func(t *ExprTokenizer) {
		t.strict = strict
	}
}

func NewExprTokenizer(opts ...Option) *ExprTokenizer {
	t := &ExprTokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `12.5+x` Output: [12.5 + x]
func (t *ExprTokenizer) Tokenize(input string) ([]Token, error) {
	sc := &scanner{input: []rune(input)}

	var tokens []Token
	for {
		sc.skipWhitespace()
		if sc.done() {
			break
		}

		ch := sc.input[sc.pos]
		switch {
		case isDigit(ch):
			tokens = append(tokens, sc.readNumber())
		case unicode.IsLetter(ch):
			tokens = append(tokens, sc.readIdent())
		case ch == '(':
			tokens = append(tokens, sc.single(LPAREN))
		case ch == ')':
			tokens = append(tokens, sc.single(RPAREN))
		case IsOperator(ch):
			tokens = append(tokens, sc.single(OPERATOR))
		default:
			if t.strict {
				return nil, fmt.Errorf("%w %q at position %d", apperr.ErrInvalidCharacter, ch, sc.pos)
			}
			tokens = append(tokens, sc.single(INVALID))
		}
	}

	return tokens, nil
}

type scanner struct {
	input []rune
	pos   int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *scanner) single(typ Type) Token {
	tok := Token{Type: typ, Value: string(s.input[s.pos]), Pos: s.pos}
	s.pos++
	return tok
}

// readNumber consumes a run of digits with at most one decimal point.
func (s *scanner) readNumber() Token {
	start := s.pos
	dotSeen := false
	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if isDigit(ch) {
			s.pos++
			continue
		}
		if ch == '.' && !dotSeen {
			dotSeen = true
			s.pos++
			continue
		}
		break
	}
	return Token{Type: NUMBER, Value: string(s.input[start:s.pos]), Pos: start}
}

func (s *scanner) readIdent() Token {
	start := s.pos
	for s.pos < len(s.input) && unicode.IsLetter(s.input[s.pos]) {
		s.pos++
	}
	return Token{Type: IDENT, Value: string(s.input[start:s.pos]), Pos: start}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
