package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var columns = []string{
	"id", "expression", "tokens", "valid", "reason", "value",
	"result", "error_kind", "error", "source", "created_at",
}

const selectEvaluation = `
	SELECT id, expression, tokens, valid, reason, value,
	       result, error_kind, error, source, created_at
	FROM evaluations`

type Store struct {
	pool *ConnectionPool
	db   *pgxpool.Pool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool, db: pool.conn}
}

func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	prepare(&evaluation, time.Now().UTC())

	cmd := `
        INSERT INTO evaluations (id, expression, tokens, valid, reason, value, result, error_kind, error, source, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(ctx, cmd, row(evaluation)...).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *Store) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	if len(evaluations) == 0 {
		return nil
	}

	rows := make([][]interface{}, len(evaluations))
	now := time.Now().UTC()
	for i, e := range evaluations {
		prepare(&e, now)
		rows[i] = row(e)
	}

	n, err := s.db.CopyFrom(ctx, pgx.Identifier{"evaluations"}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert evaluations: %w", err)
	}

	slog.Info("Bulk insert completed", "inserted", n, "total", len(evaluations))
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	row := s.db.QueryRow(ctx, selectEvaluation+` WHERE id = $1`, id)

	e, err := scanEvaluation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("evaluation %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return e, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	page.Normalize()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := s.db.Query(ctx,
		selectEvaluation+` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Evaluation, 0, page.Size)
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	if s.pool == nil {
		return false
	}
	return s.pool.Ping(ctx) == nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func prepare(e *domain.Evaluation, now time.Time) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.Tokens == nil {
		e.Tokens = []string{}
	}
}

func row(e domain.Evaluation) []interface{} {
	return []interface{}{
		e.ID,
		e.Expression,
		e.Tokens,
		e.Valid,
		e.Reason,
		e.Value,
		e.Result,
		e.ErrorKind,
		e.Error,
		e.Source,
		e.CreatedAt,
	}
}

func scanEvaluation(r pgx.Row) (*domain.Evaluation, error) {
	var e domain.Evaluation
	err := r.Scan(
		&e.ID,
		&e.Expression,
		&e.Tokens,
		&e.Valid,
		&e.Reason,
		&e.Value,
		&e.Result,
		&e.ErrorKind,
		&e.Error,
		&e.Source,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
