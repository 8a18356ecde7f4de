// Package embedcache caches embedding vectors in PostgreSQL across ranking
// invocations. Term vocabulary repeats heavily between scenarios ("swim",
// "boat", "meeting"), so a persistent (model, text)-keyed cache cuts most of
// the embedding traffic after a warm-up period.
//
// The cache is strictly an accelerator: every cache failure degrades to the
// backing provider and is logged, never surfaced. Wrap any
// embeddings.Provider with [NewCachingProvider]; when no DSN is configured,
// skip the wrapper entirely.
package embedcache

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
)

// Cache is the storage abstraction behind [CachingProvider]. The PostgreSQL
// implementation is [Store]; tests substitute an in-memory fake.
type Cache interface {
	// GetBatch returns the cached vectors for the given texts under model.
	// Texts without a cache entry are simply absent from the result map.
	GetBatch(ctx context.Context, model string, texts []string) (map[string][]float32, error)

	// PutBatch stores vectors under model. Existing entries are left
	// untouched (first write wins; embeddings are deterministic per model).
	PutBatch(ctx context.Context, model string, vectors map[string][]float32) error
}

// Store is the PostgreSQL-backed [Cache]. All methods are safe for
// concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

var _ Cache = (*Store)(nil)

// NewStore connects to the database at dsn, registers pgvector types on
// every connection, and migrates the cache schema for the given embedding
// dimension.
func NewStore(ctx context.Context, dsn string, embeddingDimensions int) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("embedcache: parse dsn: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvec.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("embedcache: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("embedcache: ping: %w", err)
	}
	if err := Migrate(ctx, pool, embeddingDimensions); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// GetBatch implements [Cache].
func (s *Store) GetBatch(ctx context.Context, model string, texts []string) (map[string][]float32, error) {
	const q = `
		SELECT text, embedding
		FROM embedding_cache
		WHERE model = $1 AND text = ANY($2)`

	rows, err := s.pool.Query(ctx, q, model, texts)
	if err != nil {
		return nil, fmt.Errorf("embedcache: get batch: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]float32)
	for rows.Next() {
		var text string
		var vec pgvector.Vector
		if err := rows.Scan(&text, &vec); err != nil {
			return nil, fmt.Errorf("embedcache: scan row: %w", err)
		}
		out[text] = vec.Slice()
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("embedcache: iterate rows: %w", err)
	}
	return out, nil
}

// PutBatch implements [Cache]. All inserts run in a single pipelined batch.
func (s *Store) PutBatch(ctx context.Context, model string, vectors map[string][]float32) error {
	if len(vectors) == 0 {
		return nil
	}
	const q = `
		INSERT INTO embedding_cache (model, text, embedding)
		VALUES ($1, $2, $3)
		ON CONFLICT (model, text) DO NOTHING`

	batch := &pgx.Batch{}
	for text, vec := range vectors {
		batch.Queue(q, model, text, pgvector.NewVector(vec))
	}
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("embedcache: put batch: %w", err)
	}
	return nil
}
