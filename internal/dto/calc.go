package dto

import (
	"math"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
	"github.com/google/uuid"
)

type ExpressionRequest struct {
	Expression string `json:"expression" example:"12.5 + x * (3 - 1)"`
}

type Token struct {
	Type  string `json:"type" example:"NUMBER"`
	Value string `json:"value" example:"12.5"`
	Pos   int    `json:"pos"`
}

type TokenizeResponse struct {
	Expression string  `json:"expression"`
	Tokens     []Token `json:"tokens"`
}

type ValidateResponse struct {
	Expression string   `json:"expression"`
	Tokens     []string `json:"tokens"`
	Valid      bool     `json:"valid"`
	Reason     string   `json:"reason,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type EvaluateResponse struct {
	// ID is omitted when the evaluation could not be recorded.
	ID         *uuid.UUID `json:"id,omitempty"`
	Expression string     `json:"expression"`
	Tokens     []string   `json:"tokens"`
	Valid      bool       `json:"valid"`
	// Value is a JSON number, or one of "+Inf", "-Inf", "NaN".
	Value any `json:"value" swaggertype:"number"`
}

type Evaluation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Tokens     []string  `json:"tokens"`
	Valid      bool      `json:"valid"`
	Reason     string    `json:"reason,omitempty"`
	Value      any       `json:"value,omitempty" swaggertype:"number"`
	ErrorKind  string    `json:"errorKind,omitempty"`
	Error      string    `json:"error,omitempty"`
	Source     string    `json:"source,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type EvaluationPage struct {
	Items   []Evaluation `json:"items"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Size    int          `json:"size"`
	HasMore bool         `json:"has_more"`
}

func NewTokens(tokens []token.Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Token{Type: t.Type.String(), Value: t.Value, Pos: t.Pos})
	}
	return out
}

// NumberValue keeps finite values numeric and renders ±Inf/NaN as strings,
// which encoding/json cannot represent.
func NumberValue(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return domain.FormatNumber(f)
	}
	return f
}

func NewEvaluation(e domain.Evaluation) Evaluation {
	out := Evaluation{
		ID:         e.ID,
		Expression: e.Expression,
		Tokens:     e.Tokens,
		Valid:      e.Valid,
		Reason:     e.Reason,
		ErrorKind:  e.ErrorKind,
		Error:      e.Error,
		Source:     e.Source,
		CreatedAt:  e.CreatedAt,
	}
	if out.Tokens == nil {
		out.Tokens = []string{}
	}
	switch {
	case e.Value != nil:
		out.Value = *e.Value
	case e.Result != "":
		out.Value = e.Result
	}
	return out
}
