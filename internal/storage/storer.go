package storage

import (
	"context"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error)
	SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error
}

// Store is a full evaluation history backend.
type Store interface {
	Storer
	Reader
	HealthChecker
	Close()
}

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
