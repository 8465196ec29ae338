package es

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	pkgtesting "github.com/DjordjeVuckovic/infix-calc/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDocument_FillsDefaults(t *testing.T) {
	doc := toDocument(domain.Evaluation{Expression: "1+1"})

	_, err := uuid.Parse(doc.ID)
	require.NoError(t, err)
	assert.NotNil(t, doc.Tokens)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.False(t, doc.IndexedAt.IsZero())
}

func TestFromDocument_RejectsBadID(t *testing.T) {
	_, err := fromDocument(Document{ID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestStore_Integration(t *testing.T) {
	pkgtesting.RequireIntegration(t, "elasticsearch")

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	s, err := NewStore(ctx, ClientConfig{
		Addresses:      []string{container.Address},
		IndexName:      "evaluations_test",
		RefreshOnWrite: true,
	})
	require.NoError(t, err)
	assert.True(t, s.Healthy(ctx))

	v := 7.0
	id, err := s.Save(ctx, domain.Evaluation{
		ID:         uuid.New(),
		Expression: "3 + 4 * ( 2 - 1 )",
		Tokens:     []string{"3", "+", "4", "*", "(", "2", "-", "1", ")"},
		Valid:      true,
		Value:      &v,
		Result:     "7",
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Value)
	assert.Equal(t, 7.0, *got.Value)

	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	require.NoError(t, s.SaveBulk(ctx, []domain.Evaluation{
		{Expression: "1+", ErrorKind: apperr.KindValidation},
		{Expression: "z", Valid: true, ErrorKind: apperr.KindUnknownVariable},
	}))

	page, err := s.List(ctx, pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 3)
}
