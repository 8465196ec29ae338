package domain

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
	"github.com/google/uuid"
)

// Evaluation is one recorded Calculate call.
type Evaluation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Tokens     []string  `json:"tokens"`
	Valid      bool      `json:"valid"`
	Reason     string    `json:"reason,omitempty"`
	// Value is nil when evaluation failed or produced ±Inf/NaN; Result always
	// carries the formatted number on success.
	Value     *float64  `json:"value,omitempty"`
	Result    string    `json:"result,omitempty"`
	ErrorKind string    `json:"errorKind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Succeeded reports whether the expression was valid and evaluated without error.
func (e Evaluation) Succeeded() bool {
	return e.Valid && e.ErrorKind == ""
}

// NewEvaluation records the outcome of eval.Calculator.Calculate.
func NewEvaluation(expr string, res *eval.Result, err error) Evaluation {
	ev := Evaluation{
		ID:         uuid.New(),
		Expression: expr,
		Tokens:     []string{},
		CreatedAt:  time.Now().UTC(),
	}

	if res != nil {
		ev.Tokens = token.Values(res.Tokens)
		ev.Valid = res.Valid
	}

	if err != nil {
		ev.ErrorKind = apperr.KindOf(err)
		ev.Error = err.Error()

		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			ev.Reason = string(ve.Reason)
		}
		return ev
	}

	if res != nil {
		ev.Result = FormatNumber(res.Value)
		if !math.IsInf(res.Value, 0) && !math.IsNaN(res.Value) {
			v := res.Value
			ev.Value = &v
		}
	}

	return ev
}

// FormatNumber renders f in the shortest form that round-trips, e.g. "7", "0.1", "+Inf".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
