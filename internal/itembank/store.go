package itembank

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/personality-cat/backend/internal/models"
)

// ItemCache stores generated item pools keyed by demographic cohort so the
// generator runs at most once per cohort and dimension.
type ItemCache interface {
	Get(ctx context.Context, key string) ([]models.Item, error)
	Put(ctx context.Context, key string, items []models.Item) error
}

// PGItemCache persists generated pools in the item_cache table.
type PGItemCache struct {
	db *sql.DB
}

func NewPGItemCache(db *sql.DB) *PGItemCache {
	return &PGItemCache{db: db}
}

func (c *PGItemCache) Get(ctx context.Context, key string) ([]models.Item, error) {
	var payload []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT items FROM item_cache WHERE cache_key = $1`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading item cache %q: %w", key, err)
	}

	var items []models.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("unmarshaling item cache %q: %w", key, err)
	}
	return items, nil
}

func (c *PGItemCache) Put(ctx context.Context, key string, items []models.Item) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling item cache %q: %w", key, err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO item_cache (cache_key, items, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (cache_key) DO UPDATE SET items = EXCLUDED.items, created_at = NOW()`,
		key, payload)
	if err != nil {
		return fmt.Errorf("writing item cache %q: %w", key, err)
	}
	return nil
}
