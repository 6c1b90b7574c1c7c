package postgres

import (
	"context"
	"errors"
	"fmt"

	"margin-ledger-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RtoRateRepo implements ports.RtoRateRepository over the externally
// maintained rate table.
type RtoRateRepo struct {
	pool Pool
}

// NewRtoRateRepo creates a new RtoRateRepo.
func NewRtoRateRepo(pool Pool) *RtoRateRepo {
	return &RtoRateRepo{pool: pool}
}

// GetActive fetches the active penalty rate for a (seller, store) pair.
// Returns nil, nil when no active rate is configured.
func (r *RtoRateRepo) GetActive(ctx context.Context, sellerID, storeID string) (*domain.RtoRate, error) {
	query := `SELECT seller_id, store_id, penalty_amount, active
		FROM rto_rates WHERE seller_id = $1 AND store_id = $2 AND active`

	rate := &domain.RtoRate{}
	err := r.pool.QueryRow(ctx, query, sellerID, storeID).Scan(
		&rate.SellerID, &rate.StoreID, &rate.PenaltyAmount, &rate.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rto rate: %w", err)
	}
	return rate, nil
}
