package service

import (
	"context"
	"fmt"

	"margin-ledger-engine/internal/core/ports"
	"margin-ledger-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RtoServiceImpl implements ports.RtoService.
type RtoServiceImpl struct {
	rateRepo ports.RtoRateRepository
	log      zerolog.Logger
}

// NewRtoService creates a new RtoServiceImpl.
func NewRtoService(rateRepo ports.RtoRateRepository, log zerolog.Logger) *RtoServiceImpl {
	return &RtoServiceImpl{
		rateRepo: rateRepo,
		log:      log,
	}
}

// ResolvePenalty returns the configured penalty for the (seller, store)
// pair, or zero when no active rate exists. Missing configuration is a
// normal state, not an error.
func (s *RtoServiceImpl) ResolvePenalty(ctx context.Context, sellerID, storeID string) (decimal.Decimal, error) {
	rate, err := s.rateRepo.GetActive(ctx, sellerID, storeID)
	if err != nil {
		return decimal.Zero, apperror.StorageError(fmt.Errorf("get rto rate: %w", err))
	}
	if rate == nil {
		s.log.Debug().
			Str("seller_id", sellerID).
			Str("store_id", storeID).
			Msg("no active rto rate configured, penalty is zero")
		return decimal.Zero, nil
	}
	return rate.PenaltyAmount, nil
}
