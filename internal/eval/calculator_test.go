package eval

import (
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_Calculate(t *testing.T) {
	calc := NewDefaultCalculator(Options{})

	res, err := calc.Calculate("3 + 4 * ( 2 - 1 )")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, 7.0, res.Value)
	assert.Len(t, res.Tokens, 9)
}

func TestCalculator_ValidationFailsFast(t *testing.T) {
	calc := NewDefaultCalculator(Options{})

	tests := []struct {
		expr   string
		reason apperr.Reason
	}{
		{"(1+2", apperr.ReasonUnbalancedParens},
		{"+1", apperr.ReasonLeadingOperator},
		{"1+", apperr.ReasonTrailingOperator},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, err := calc.Calculate(tt.expr)

			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			assert.Equal(t, tt.reason, ve.Reason)
			assert.False(t, res.Valid)
			assert.Zero(t, res.Value)
		})
	}
}

func TestCalculator_EvaluationError(t *testing.T) {
	calc := NewDefaultCalculator(Options{})

	res, err := calc.Calculate("z * 2")
	assert.ErrorIs(t, err, apperr.ErrUnknownVariable)
	assert.True(t, res.Valid)
	assert.Equal(t, apperr.KindUnknownVariable, apperr.KindOf(err))
}

func TestCalculator_StrictTokens(t *testing.T) {
	calc := NewDefaultCalculator(Options{StrictTokens: true})

	res, err := calc.Calculate("1 $ 2")
	assert.ErrorIs(t, err, apperr.ErrInvalidCharacter)
	assert.False(t, res.Valid)
	assert.Empty(t, res.Tokens)
}

func TestCalculator_Validate(t *testing.T) {
	calc := NewDefaultCalculator(Options{})

	tokens, err := calc.Validate("-1")
	assert.NoError(t, err)
	assert.Len(t, tokens, 2)

	_, err = calc.Validate("1 @ 2")
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, apperr.ReasonDisallowedToken, ve.Reason)
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	calc := NewDefaultCalculator(Options{})

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := calc.Calculate("(1 + 2) * (3 + 4) - 6 / 2")
			if err != nil {
				errs <- err
				return
			}
			if res.Value != 18 {
				errs <- errors.New("unexpected result")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestLoadOptions(t *testing.T) {
	t.Setenv("CALC_STRICT_TOKENS", "true")
	opts, err := LoadOptions()
	require.NoError(t, err)
	assert.True(t, opts.StrictTokens)

	t.Setenv("CALC_STRICT_TOKENS", "maybe")
	_, err = LoadOptions()
	assert.Error(t, err)

	t.Setenv("CALC_STRICT_TOKENS", "")
	opts, err = LoadOptions()
	require.NoError(t, err)
	assert.False(t, opts.StrictTokens)
}
