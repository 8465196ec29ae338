package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
	config    ClientConfig
}

// Document is the evaluation as stored in the index.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Tokens     []string  `json:"tokens"`
	Valid      bool      `json:"valid"`
	Reason     string    `json:"reason,omitempty"`
	Value      *float64  `json:"value,omitempty"`
	Result     string    `json:"result,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	Source     string    `json:"source,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	IndexedAt  time.Time `json:"indexed_at"`
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	store := &Store{
		client:    client,
		indexName: config.IndexName,
		config:    config,
	}

	if err := store.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return store, nil
}

func (s *Store) Save(ctx context.Context, evaluation domain.Evaluation) (uuid.UUID, error) {
	doc := toDocument(evaluation)

	req := s.client.Index(s.indexName).Id(doc.ID).Document(doc)
	if s.config.RefreshOnWrite {
		req = req.Refresh(refresh.Waitfor)
	}

	res, err := req.Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse evaluation ID: %w", err)
	}

	slog.Debug("evaluation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return id, nil
}

func (s *Store) SaveBulk(ctx context.Context, evaluations []domain.Evaluation) error {
	if len(evaluations) == 0 {
		return nil
	}

	cfg := esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    2,
		FlushBytes:    1e+6,
		FlushInterval: 5 * time.Second,
	}
	if s.config.RefreshOnWrite {
		cfg.Refresh = "wait_for"
	}

	bi, err := esutil.NewBulkIndexer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed int64
	for _, evaluation := range evaluations {
		doc := toDocument(evaluation)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			atomic.AddInt64(&failed, 1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				atomic.AddInt64(&failed, 1)
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			atomic.AddInt64(&failed, 1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	stats := bi.Stats()
	slog.Info("Bulk indexing completed",
		"indexed", stats.NumIndexed,
		"failed", failed,
		"total", len(evaluations),
		"index", s.indexName)

	if failed > 0 {
		return fmt.Errorf("failed to index %d out of %d evaluations", failed, len(evaluations))
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Evaluation, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	if !res.Found {
		return nil, fmt.Errorf("evaluation %s: %w", id, apperr.ErrNotFound)
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return fromDocument(doc)
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Evaluation], error) {
	page.Normalize()

	sortOrderDesc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(page.Offset()).
		Size(page.Size).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch list query failed", "error", err, "page", page.Page)
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	items := make([]domain.Evaluation, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		e, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch ping failed", "error", err)
		return false
	}
	return ok
}

func (s *Store) Close() {}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": expressionProperty(),
			"tokens":     types.NewKeywordProperty(),
			"valid":      types.NewBooleanProperty(),
			"reason":     types.NewKeywordProperty(),
			"value":      types.NewDoubleNumberProperty(),
			"result":     types.NewKeywordProperty(),
			"error_kind": types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"source":     types.NewKeywordProperty(),
			"created_at": types.NewDateProperty(),
			"indexed_at": types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

// expressionProperty indexes the raw expression as text with an exact keyword subfield.
func expressionProperty() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}

func toDocument(e domain.Evaluation) Document {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	tokens := e.Tokens
	if tokens == nil {
		tokens = []string{}
	}

	return Document{
		ID:         e.ID.String(),
		Expression: e.Expression,
		Tokens:     tokens,
		Valid:      e.Valid,
		Reason:     e.Reason,
		Value:      e.Value,
		Result:     e.Result,
		ErrorKind:  e.ErrorKind,
		Error:      e.Error,
		Source:     e.Source,
		CreatedAt:  e.CreatedAt,
		IndexedAt:  time.Now().UTC(),
	}
}

func fromDocument(doc Document) (*domain.Evaluation, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid document id %q: %w", doc.ID, err)
	}

	return &domain.Evaluation{
		ID:         id,
		Expression: doc.Expression,
		Tokens:     doc.Tokens,
		Valid:      doc.Valid,
		Reason:     doc.Reason,
		Value:      doc.Value,
		Result:     doc.Result,
		ErrorKind:  doc.ErrorKind,
		Error:      doc.Error,
		Source:     doc.Source,
		CreatedAt:  doc.CreatedAt,
	}, nil
}
