package eval

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTokenize(t *testing.T, expr string) []token.Token {
	t.Helper()
	tokens, err := token.NewExprTokenizer().Tokenize(expr)
	require.NoError(t, err)
	return tokens
}

func TestEvaluator_Evaluate(t *testing.T) {
	tests := []struct {
		expr     string
		expected float64
	}{
		{"3 + 4 * ( 2 - 1 )", 7},
		{"10 + 5 * 2", 20},
		{"8 - 2 * 3", 2},
		{"18 / 3 + 2", 8},
		{"8 - 2 - 1", 5},
		{"16 / 4 / 2", 2},
		{"(2 + 3) * 4", 20},
		{"(8 - 2) * (5 - 3)", 12},
		{"((1.5 + 2.5) * 2) / 0.5", 16},
		{"42", 42},
		{"x + y + 1", 1},
		{"x * 100", 0},
	}

	evaluator := NewEvaluator()
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := evaluator.Evaluate(mustTokenize(t, tc.expr))
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestEvaluator_DivisionByZeroFollowsIEEE(t *testing.T) {
	evaluator := NewEvaluator()

	got, err := evaluator.Evaluate(mustTokenize(t, "1 / 0"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = evaluator.Evaluate(mustTokenize(t, "0 - 1 / 0"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1))

	got, err = evaluator.Evaluate(mustTokenize(t, "0 / 0"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestEvaluator_Errors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{name: "unknown variable", expr: "z", wantErr: apperr.ErrUnknownVariable},
		{name: "unknown variable in expression", expr: "1 + foo", wantErr: apperr.ErrUnknownVariable},
		{name: "stray closing parenthesis", expr: "1 + 2)", wantErr: apperr.ErrMismatchedParentheses},
		{name: "unclosed parenthesis", expr: "(1 + 2", wantErr: apperr.ErrMismatchedParentheses},
		{name: "unary minus has one operand", expr: "-1", wantErr: apperr.ErrStackUnderflow},
		{name: "missing operator", expr: "1 2", wantErr: apperr.ErrStackUnderflow},
		{name: "empty", expr: "", wantErr: apperr.ErrStackUnderflow},
		{name: "unclassified symbol", expr: "1 # 2", wantErr: apperr.ErrInvalidCharacter},
		{name: "leading dot", expr: ".5", wantErr: apperr.ErrInvalidCharacter},
		{name: "lone unclassified symbol", expr: "#", wantErr: apperr.ErrInvalidCharacter},
		{name: "unclassified symbol inside group", expr: "(1 # 2)", wantErr: apperr.ErrMismatchedParentheses},
	}

	evaluator := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluator.Evaluate(mustTokenize(t, tt.expr))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPrecedence(t *testing.T) {
	assert.Equal(t, 1, Precedence('+'))
	assert.Equal(t, 1, Precedence('-'))
	assert.Equal(t, 2, Precedence('*'))
	assert.Equal(t, 2, Precedence('/'))
	assert.Equal(t, 0, Precedence('('))
	assert.Equal(t, 0, Precedence('^'))
}

// node is a reference expression tree used to cross-check the evaluator.
type node struct {
	op          rune
	leaf        float64
	left, right *node
}

func (n *node) String() string {
	if n.left == nil {
		return fmt.Sprintf("%g", n.leaf)
	}
	return fmt.Sprintf("(%s %c %s)", n.left, n.op, n.right)
}

func (n *node) eval() float64 {
	if n.left == nil {
		return n.leaf
	}
	v, _ := Apply(n.op, n.left.eval(), n.right.eval())
	return v
}

func randomTree(r *rand.Rand, depth int) *node {
	if depth == 0 || r.Intn(3) == 0 {
		return &node{leaf: float64(r.Intn(9) + 1)}
	}
	ops := []rune{'+', '-', '*', '/'}
	return &node{
		op:    ops[r.Intn(len(ops))],
		left:  randomTree(r, depth-1),
		right: randomTree(r, depth-1),
	}
}

func TestEvaluator_MatchesReferenceOnParenthesizedExpressions(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	evaluator := NewEvaluator()
	validator := token.NewExprValidator()

	for i := 0; i < 500; i++ {
		tree := randomTree(r, 5)
		expr := tree.String()
		want := tree.eval()

		tokens := mustTokenize(t, expr)
		require.NoError(t, validator.Validate(tokens), expr)

		got, err := evaluator.Evaluate(tokens)
		require.NoError(t, err, expr)

		tolerance := 1e-9 * math.Max(1, math.Abs(want))
		if math.Abs(got-want) > tolerance {
			t.Fatalf("Evaluate(%s) = %v, want %v", expr, got, want)
		}
	}
}
