package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	"github.com/google/uuid"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Evaluation
	order       []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID]domain.Evaluation),
	}
}

func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	id := s.put(evaluation)
	slog.Debug("Saved evaluation to in-memory storage", "id", id, "expression", evaluation.Expression)
	return id, nil
}

func (s *Store) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, evaluation := range evaluations {
		s.put(evaluation)
	}
	slog.Debug("Saved evaluations to in-memory storage", "count", len(evaluations))

	return nil
}

func (s *Store) put(evaluation domain.Evaluation) uuid.UUID {
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	if _, exists := s.storage[evaluation.ID]; !exists {
		s.order = append(s.order, evaluation.ID)
	}
	s.storage[evaluation.ID] = evaluation
	return evaluation.ID
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	evaluation, ok := s.storage[id]
	if !ok {
		return nil, fmt.Errorf("evaluation %s: %w", id, apperr.ErrNotFound)
	}
	return &evaluation, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	page.Normalize()

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.order)
	items := make([]domain.Evaluation, 0, page.Size)
	// newest first: walk insertion order backwards
	start := total - 1 - page.Offset()
	if page.Offset() < 0 || start >= total {
		start = -1
	}
	for i := start; i >= 0 && len(items) < page.Size; i-- {
		items = append(items, s.storage[s.order[i]])
	}

	return pagination.NewOffsetResult(items, int64(total), page.Page, page.Size), nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	return true
}

func (s *Store) Close() {}
