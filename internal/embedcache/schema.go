package embedcache

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ddlEmbeddingCache is the cache table, keyed by (model, text) so the same
// text embedded under different models never collides. The dimension is
// baked into the column type at migration time; changing it afterwards
// requires a manual schema change.
const ddlEmbeddingCache = `
CREATE TABLE IF NOT EXISTS embedding_cache (
    model       TEXT         NOT NULL,
    text        TEXT         NOT NULL,
    embedding   VECTOR(%d)   NOT NULL,
    created_at  TIMESTAMPTZ  NOT NULL DEFAULT now(),
    PRIMARY KEY (model, text)
);
`

// Migrate installs the pgvector extension and creates the cache table with
// the given embedding dimension. Idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool, embeddingDimensions int) error {
	if embeddingDimensions <= 0 {
		return fmt.Errorf("embedcache: embedding dimensions must be positive, got %d", embeddingDimensions)
	}
	if _, err := pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("embedcache: create vector extension: %w", err)
	}
	if _, err := pool.Exec(ctx, fmt.Sprintf(ddlEmbeddingCache, embeddingDimensions)); err != nil {
		return fmt.Errorf("embedcache: create cache table: %w", err)
	}
	return nil
}
