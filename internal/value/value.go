// Package value holds the tagged operand/operator cell stored on evaluation stacks.
package value

import (
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
)

type Kind int

const (
	KindNumber Kind = iota
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Value is either a number or a single-character symbol. The zero Value is the number 0.
type Value struct {
	kind Kind
	num  float64
	sym  rune
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func Symbol(r rune) Value {
	return Value{kind: KindSymbol, sym: r}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// AsNumber returns the numeric payload, or apperr.ErrTypeMismatch for a symbol.
func (v Value) AsNumber() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("%w: want number, have %s %q", apperr.ErrTypeMismatch, v.kind, v.sym)
	}
	return v.num, nil
}

// AsSymbol returns the symbol payload, or apperr.ErrTypeMismatch for a number.
func (v Value) AsSymbol() (rune, error) {
	if v.kind != KindSymbol {
		return 0, fmt.Errorf("%w: want symbol, have %s %v", apperr.ErrTypeMismatch, v.kind, v.num)
	}
	return v.sym, nil
}

func (v Value) String() string {
	if v.kind == KindSymbol {
		return string(v.sym)
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}
