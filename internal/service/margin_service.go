package service

import (
	"context"
	"fmt"
	"time"

	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"
	"margin-ledger-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// MarginServiceImpl implements ports.MarginService.
type MarginServiceImpl struct {
	catalogRepo ports.MarginCatalogRepository
	marginRepo  ports.OrderMarginRepository
	log         zerolog.Logger
}

// NewMarginService creates a new MarginServiceImpl.
func NewMarginService(
	catalogRepo ports.MarginCatalogRepository,
	marginRepo ports.OrderMarginRepository,
	log zerolog.Logger,
) *MarginServiceImpl {
	return &MarginServiceImpl{
		catalogRepo: catalogRepo,
		marginRepo:  marginRepo,
		log:         log,
	}
}

// Resolve matches each line item against the store's margin catalog.
// Product identity is tried first, normalized name second. Unmatched lines
// contribute zero margin; a catalog read failure fails the whole call so a
// partial outage can never silently shrink an order's margin.
func (s *MarginServiceImpl) Resolve(ctx context.Context, storeID string, items []domain.LineItem) ([]domain.LineMargin, error) {
	lines := make([]domain.LineMargin, 0, len(items))
	for _, item := range items {
		entry, matchedBy, err := s.lookup(ctx, storeID, item)
		if err != nil {
			return nil, err
		}

		qty := item.EffectiveQuantity()
		line := domain.LineMargin{
			ProductIdentity: item.ProductIdentity,
			ProductName:     item.ProductName,
			Quantity:        qty,
			MarginPerUnit:   decimal.Zero,
			LineMargin:      decimal.Zero,
			Matched:         entry != nil,
			MatchedBy:       matchedBy,
		}
		if entry != nil {
			line.MarginPerUnit = entry.MarginPerUnit
			line.LineMargin = entry.MarginPerUnit.Mul(decimal.NewFromInt(qty))
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// ComputeAndStore resolves the order's lines, sums the margin and upserts
// the per-order computation. Recomputing an order replaces the stored
// breakdown wholesale; the ledger is never touched here.
func (s *MarginServiceImpl) ComputeAndStore(ctx context.Context, storeID, orderID, orderNumber string, items []domain.LineItem) (*domain.OrderMargin, error) {
	lines, err := s.Resolve(ctx, storeID, items)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineMargin)
	}

	om := &domain.OrderMargin{
		StoreID:      storeID,
		OrderID:      orderID,
		OrderNumber:  orderNumber,
		MarginAmount: total,
		Breakdown:    lines,
		ComputedAt:   time.Now().UTC(),
	}
	if err := s.marginRepo.Upsert(ctx, om); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("store order margin: %w", err))
	}

	s.log.Debug().
		Str("store_id", storeID).
		Str("order_id", orderID).
		Str("margin", total.String()).
		Int("lines", len(lines)).
		Msg("order margin computed")

	return om, nil
}

// lookup resolves one line item against the catalog: identity first, name
// fallback only when no identity entry exists.
func (s *MarginServiceImpl) lookup(ctx context.Context, storeID string, item domain.LineItem) (*domain.MarginCatalogEntry, domain.MatchSource, error) {
	if item.ProductIdentity != "" {
		entry, err := s.catalogRepo.GetByProductIdentity(ctx, storeID, item.ProductIdentity)
		if err != nil {
			return nil, domain.MatchNone, apperror.StorageError(fmt.Errorf("catalog lookup by identity: %w", err))
		}
		if entry != nil {
			return entry, domain.MatchByProductID, nil
		}
	}

	name := item.NormalizedName()
	if name == "" {
		return nil, domain.MatchNone, nil
	}
	entry, err := s.catalogRepo.GetByNormalizedName(ctx, storeID, name)
	if err != nil {
		return nil, domain.MatchNone, apperror.StorageError(fmt.Errorf("catalog lookup by name: %w", err))
	}
	if entry != nil {
		return entry, domain.MatchByProductName, nil
	}
	return nil, domain.MatchNone, nil
}
