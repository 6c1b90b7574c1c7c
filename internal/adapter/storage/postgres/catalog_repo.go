package postgres

import (
	"context"
	"errors"
	"fmt"

	"margin-ledger-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// MarginCatalogRepo implements ports.MarginCatalogRepository. The catalog is
// owned by the product-push collaborator; this engine only reads it.
type MarginCatalogRepo struct {
	pool Pool
}

// NewMarginCatalogRepo creates a new MarginCatalogRepo.
func NewMarginCatalogRepo(pool Pool) *MarginCatalogRepo {
	return &MarginCatalogRepo{pool: pool}
}

// GetByProductIdentity fetches a catalog entry by its primary key.
// Returns nil, nil when the product is not listed for the store.
func (r *MarginCatalogRepo) GetByProductIdentity(ctx context.Context, storeID, productIdentity string) (*domain.MarginCatalogEntry, error) {
	query := `SELECT store_id, product_identity, product_name, normalized_name, margin_per_unit
		FROM margin_catalog WHERE store_id = $1 AND product_identity = $2`

	return r.scanEntry(r.pool.QueryRow(ctx, query, storeID, productIdentity))
}

// GetByNormalizedName fetches a catalog entry by the fallback name key.
// Names are not guaranteed unique; the lowest product identity wins so
// repeated lookups stay deterministic.
func (r *MarginCatalogRepo) GetByNormalizedName(ctx context.Context, storeID, normalizedName string) (*domain.MarginCatalogEntry, error) {
	query := `SELECT store_id, product_identity, product_name, normalized_name, margin_per_unit
		FROM margin_catalog WHERE store_id = $1 AND normalized_name = $2
		ORDER BY product_identity LIMIT 1`

	return r.scanEntry(r.pool.QueryRow(ctx, query, storeID, normalizedName))
}

func (r *MarginCatalogRepo) scanEntry(row pgx.Row) (*domain.MarginCatalogEntry, error) {
	e := &domain.MarginCatalogEntry{}
	err := row.Scan(
		&e.StoreID, &e.ProductIdentity, &e.ProductName, &e.NormalizedName, &e.MarginPerUnit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan catalog entry: %w", err)
	}
	return e, nil
}
