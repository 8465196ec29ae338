package storage

import (
	"context"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	"github.com/google/uuid"
)

type Reader interface {
	// Get returns apperr.ErrNotFound when no evaluation has the given id.
	Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error)
	// List returns evaluations newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error)
}
