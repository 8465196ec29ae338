package eval

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/stack"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
	"github.com/DjordjeVuckovic/infix-calc/internal/value"
)

const parenMarker = '('

// placeholders are identifiers that evaluate to 0. Other identifiers are rejected.
var placeholders = map[string]struct{}{
	"x": {},
	"y": {},
}

// Evaluator computes the value of a token sequence with the two-stack
// shunting-yard method. It holds no per-call state and is safe for concurrent use.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate consumes tokens left to right and returns the single remaining value.
// Tokens are expected to have passed validation; Evaluate still fails cleanly
// on malformed input instead of producing a partial result.
func (e *Evaluator) Evaluate(tokens []token.Token) (float64, error) {
	run := &evaluation{
		values:    stack.New(),
		operators: stack.New(),
	}

	for _, tok := range tokens {
		if err := run.step(tok); err != nil {
			return 0, err
		}
	}

	for !run.operators.IsEmpty() {
		if err := run.applyTop(); err != nil {
			return 0, err
		}
	}

	if run.values.Size() != 1 {
		return 0, fmt.Errorf("%w: %d values left after evaluation", apperr.ErrStackUnderflow, run.values.Size())
	}

	top, err := run.values.Pop()
	if err != nil {
		return 0, err
	}
	result, err := top.AsNumber()
	if err != nil {
		return 0, err
	}

	slog.Debug("expression evaluated", "tokens", len(tokens), "result", result)
	return result, nil
}

type evaluation struct {
	values    *stack.Stack
	operators *stack.Stack
}

func (r *evaluation) step(tok token.Token) error {
	switch tok.Type {
	case token.NUMBER:
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: malformed number %q at position %d", apperr.ErrInvalidCharacter, tok.Value, tok.Pos)
		}
		r.values.Push(value.Number(n))
	case token.IDENT:
		if _, ok := placeholders[tok.Value]; !ok {
			return fmt.Errorf("%w: %q at position %d", apperr.ErrUnknownVariable, tok.Value, tok.Pos)
		}
		r.values.Push(value.Number(0))
	case token.LPAREN:
		r.operators.Push(value.Symbol(parenMarker))
	case token.RPAREN:
		return r.closeGroup()
	default:
		return r.pushOperator(tok)
	}
	return nil
}

// closeGroup applies operators down to the nearest paren marker and drops it.
func (r *evaluation) closeGroup() error {
	for {
		top, err := r.operators.Peek()
		if err != nil {
			return fmt.Errorf("%w: closing parenthesis without opening one", apperr.ErrMismatchedParentheses)
		}
		if sym, _ := top.AsSymbol(); sym == parenMarker {
			_, err = r.operators.Pop()
			return err
		}
		if err := r.applyTop(); err != nil {
			return err
		}
	}
}

func (r *evaluation) pushOperator(tok token.Token) error {
	op := []rune(tok.Value)
	if len(op) != 1 {
		return fmt.Errorf("%w: %q at position %d", apperr.ErrInvalidCharacter, tok.Value, tok.Pos)
	}
	current := Precedence(op[0])

	for !r.operators.IsEmpty() {
		top, err := r.operators.Peek()
		if err != nil {
			return err
		}
		sym, err := top.AsSymbol()
		if err != nil {
			return err
		}
		if Precedence(sym) < current {
			break
		}
		if err := r.applyTop(); err != nil {
			return err
		}
	}

	r.operators.Push(value.Symbol(op[0]))
	return nil
}

// applyTop pops one operator and applies it to the two topmost values.
func (r *evaluation) applyTop() error {
	top, err := r.operators.Pop()
	if err != nil {
		return err
	}
	op, err := top.AsSymbol()
	if err != nil {
		return err
	}
	if op == parenMarker {
		return fmt.Errorf("%w: unclosed parenthesis", apperr.ErrMismatchedParentheses)
	}
	if Precedence(op) == 0 {
		return fmt.Errorf("%w: %q is not an operator", apperr.ErrInvalidCharacter, op)
	}

	b, err := r.popOperand(op)
	if err != nil {
		return err
	}
	a, err := r.popOperand(op)
	if err != nil {
		return err
	}

	result, err := Apply(op, a, b)
	if err != nil {
		return err
	}
	r.values.Push(value.Number(result))
	return nil
}

func (r *evaluation) popOperand(op rune) (float64, error) {
	v, err := r.values.Pop()
	if err != nil {
		return 0, fmt.Errorf("%w: operator %q is missing an operand", apperr.ErrStackUnderflow, op)
	}
	return v.AsNumber()
}

// Precedence ranks binary operators; anything that is not + - * / ranks 0.
func Precedence(op rune) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		return 0
	}
}

// Apply computes a op b. Division by zero follows IEEE-754 and yields ±Inf or NaN.
func Apply(op rune, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q is not an operator", apperr.ErrInvalidCharacter, op)
	}
}
