package pg

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/infix-calc/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	pkgtesting.RequireIntegration(t, "postgres")

	ctx := context.Background()
	container := pkgtesting.NewPGContainer(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewStore(pool)
}

func calculate(expr string) domain.Evaluation {
	res, err := eval.NewDefaultCalculator(eval.Options{}).Calculate(expr)
	return domain.NewEvaluation(expr, res, err)
}

func TestStore_Integration(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.True(t, s.Healthy(ctx))

	ok := calculate("3 + 4 * ( 2 - 1 )")
	id, err := s.Save(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, ok.ID, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, ok.Expression, got.Expression)
	assert.Equal(t, ok.Tokens, got.Tokens)
	require.NotNil(t, got.Value)
	assert.Equal(t, 7.0, *got.Value)

	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, s.SaveBulk(ctx, []domain.Evaluation{
		calculate("1+"),
		calculate("z"),
		calculate("1/0"),
	}))

	page, err := s.List(ctx, pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Len(t, page.Items, 4)
}
