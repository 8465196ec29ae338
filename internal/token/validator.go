package token

import (
	"fmt"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
)

var disallowed = map[string]struct{}{
	"@":  {},
	"++": {},
	"--": {},
}

// ExprValidator performs the structural checks run before evaluation. It does not
// reject every INVALID token, only the reserved ones; the evaluator reports the rest.
type ExprValidator struct{}

func NewExprValidator() *ExprValidator {
	return &ExprValidator{}
}

// Validate returns nil for a structurally valid sequence, otherwise an
// *apperr.ValidationError carrying the reason.
func (v *ExprValidator) Validate(tokens []Token) error {
	if len(tokens) == 0 {
		return apperr.NewValidationReason(apperr.ReasonEmptyExpression, "expression is empty")
	}

	depth := 0
	last := len(tokens) - 1

	for i, tok := range tokens {
		switch tok.Type {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			if depth < 0 {
				return apperr.NewValidationReason(apperr.ReasonUnbalancedParens,
					fmt.Sprintf("unexpected closing parenthesis at position %d", tok.Pos))
			}
		case OPERATOR:
			if isUnaryMinus(tokens, i) {
				continue
			}
			if i == 0 {
				return apperr.NewValidationReason(apperr.ReasonLeadingOperator,
					fmt.Sprintf("expression cannot start with %s", tok.Value))
			}
			if i == last {
				return apperr.NewValidationReason(apperr.ReasonTrailingOperator,
					fmt.Sprintf("expression cannot end with %s", tok.Value))
			}
			if tokens[i-1].Type == OPERATOR {
				return apperr.NewValidationReason(apperr.ReasonAdjacentOperators,
					fmt.Sprintf("unexpected %s after %s at position %d", tok.Value, tokens[i-1].Value, tok.Pos))
			}
		}

		if _, ok := disallowed[tok.Value]; ok {
			return apperr.NewValidationReason(apperr.ReasonDisallowedToken,
				fmt.Sprintf("disallowed token %q at position %d", tok.Value, tok.Pos))
		}
	}

	if depth != 0 {
		return apperr.NewValidationReason(apperr.ReasonUnbalancedParens,
			fmt.Sprintf("unbalanced parentheses: %d unclosed", depth))
	}

	return nil
}

// Valid reports whether Validate accepts tokens.
func (v *ExprValidator) Valid(tokens []Token) bool {
	return v.Validate(tokens) == nil
}

// isUnaryMinus reports whether the operator at i is a minus sign opening the
// expression or following another operator or an open parenthesis.
func isUnaryMinus(tokens []Token, i int) bool {
	if tokens[i].Value != "-" {
		return false
	}
	if i == 0 {
		return true
	}
	prev := tokens[i-1].Type
	return prev == OPERATOR || prev == LPAREN
}
