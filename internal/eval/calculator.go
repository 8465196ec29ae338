package eval

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/infix-calc/internal/token"
)

// Result is the outcome of one Calculate call. Value is only meaningful when
// Valid is true and Calculate returned no error.
type Result struct {
	Expression string
	Tokens     []token.Token
	Valid      bool
	Value      float64
}

// Calculator runs the tokenize, validate, evaluate pipeline.
type Calculator struct {
	tokenizer token.Tokenizer
	validator token.Validator
	evaluator *Evaluator
}

func NewCalculator(tokenizer token.Tokenizer, validator token.Validator) *Calculator {
	return &Calculator{
		tokenizer: tokenizer,
		validator: validator,
		evaluator: NewEvaluator(),
	}
}

// NewDefaultCalculator builds a Calculator from Options.
func NewDefaultCalculator(opts Options) *Calculator {
	return NewCalculator(
		token.NewExprTokenizer(token.WithStrict(opts.StrictTokens)),
		token.NewExprValidator(),
	)
}

func (c *Calculator) Tokenize(expr string) ([]token.Token, error) {
	return c.tokenizer.Tokenize(expr)
}

// Validate tokenizes expr and runs the validator over the tokens.
func (c *Calculator) Validate(expr string) ([]token.Token, error) {
	tokens, err := c.tokenizer.Tokenize(expr)
	if err != nil {
		return nil, err
	}
	return tokens, c.validator.Validate(tokens)
}

// Calculate evaluates expr. A validation failure is returned as an error together
// with a Result whose Valid is false; evaluation is never attempted in that case.
func (c *Calculator) Calculate(expr string) (*Result, error) {
	res := &Result{Expression: expr}

	tokens, err := c.tokenizer.Tokenize(expr)
	if err != nil {
		return res, fmt.Errorf("tokenize: %w", err)
	}
	res.Tokens = tokens

	if err := c.validator.Validate(tokens); err != nil {
		slog.Debug("expression rejected", "expression", expr, "error", err)
		return res, err
	}
	res.Valid = true

	v, err := c.evaluator.Evaluate(tokens)
	if err != nil {
		return res, fmt.Errorf("evaluate: %w", err)
	}
	res.Value = v

	return res, nil
}
