package in_mem

import (
	"context"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Save(ctx, domain.Evaluation{Expression: "1+2", Valid: true, Result: "3"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "1+2", got.Expression)
	assert.Equal(t, id, got.ID)
}

func TestStore_GetMissing(t *testing.T) {
	_, err := NewStore().Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var batch []domain.Evaluation
	for i := 0; i < 5; i++ {
		batch = append(batch, domain.Evaluation{ID: uuid.New(), Expression: fmt.Sprintf("%d+1", i)})
	}
	require.NoError(t, s.SaveBulk(ctx, batch))

	first, err := s.List(ctx, pagination.OffsetRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), first.Total)
	assert.True(t, first.HasMore)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "4+1", first.Items[0].Expression)
	assert.Equal(t, "3+1", first.Items[1].Expression)

	last, err := s.List(ctx, pagination.OffsetRequest{Page: 3, Size: 2})
	require.NoError(t, err)
	assert.False(t, last.HasMore)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "0+1", last.Items[0].Expression)

	beyond, err := s.List(ctx, pagination.OffsetRequest{Page: 9, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
}

func TestStore_SaveOverwritesSameID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id := uuid.New()

	_, err := s.Save(ctx, domain.Evaluation{ID: id, Expression: "1"})
	require.NoError(t, err)
	_, err = s.Save(ctx, domain.Evaluation{ID: id, Expression: "2"})
	require.NoError(t, err)

	res, err := s.List(ctx, pagination.OffsetRequest{})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "2", res.Items[0].Expression)
}

func TestStore_ListHugePage(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := s.Save(ctx, domain.Evaluation{Expression: "1+1"})
	require.NoError(t, err)

	res, err := s.List(ctx, pagination.OffsetRequest{Page: 6148914691236517206, Size: 3})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, int64(1), res.Total)
	assert.False(t, res.HasMore)
}
