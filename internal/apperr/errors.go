package apperr

import "errors"

// Evaluation failures. Callers match them with errors.Is; the wrapping message
// carries the offending token or position.
var (
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrEmptyStack            = errors.New("empty stack")
	ErrStackUnderflow        = errors.New("stack underflow")
	ErrInvalidCharacter      = errors.New("invalid character")
	ErrUnknownVariable       = errors.New("unknown variable")
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
)

// Reason is a machine readable validation failure code.
type Reason string

const (
	ReasonEmptyExpression   Reason = "empty_expression"
	ReasonUnbalancedParens  Reason = "unbalanced_parentheses"
	ReasonLeadingOperator   Reason = "leading_operator"
	ReasonTrailingOperator  Reason = "trailing_operator"
	ReasonAdjacentOperators Reason = "adjacent_operators"
	ReasonDisallowedToken   Reason = "disallowed_token"
)

type ValidationError struct {
	Message string
	Reason  Reason
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

func NewValidationReason(reason Reason, msg string) *ValidationError {
	return &ValidationError{Message: msg, Reason: reason}
}

// Kind codes reported by KindOf.
const (
	KindNone                  = ""
	KindValidation            = "validation"
	KindTypeMismatch          = "type_mismatch"
	KindEmptyStack            = "empty_stack"
	KindStackUnderflow        = "stack_underflow"
	KindInvalidCharacter      = "invalid_character"
	KindUnknownVariable       = "unknown_variable"
	KindMismatchedParentheses = "mismatched_parentheses"
	KindInternal              = "internal"
)

// KindOf maps err to a stable kind code. A nil error maps to KindNone.
func KindOf(err error) string {
	if err == nil {
		return KindNone
	}

	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return KindValidation
	case errors.Is(err, ErrTypeMismatch):
		return KindTypeMismatch
	case errors.Is(err, ErrEmptyStack):
		return KindEmptyStack
	case errors.Is(err, ErrStackUnderflow):
		return KindStackUnderflow
	case errors.Is(err, ErrInvalidCharacter):
		return KindInvalidCharacter
	case errors.Is(err, ErrUnknownVariable):
		return KindUnknownVariable
	case errors.Is(err, ErrMismatchedParentheses):
		return KindMismatchedParentheses
	default:
		return KindInternal
	}
}

// IsEvaluation reports whether err stems from malformed input rather than an
// infrastructure failure.
func IsEvaluation(err error) bool {
	switch KindOf(err) {
	case KindNone, KindInternal, KindValidation:
		return false
	default:
		return true
	}
}
