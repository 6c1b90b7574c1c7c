package service

import (
	"context"
	"errors"
	"testing"

	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRtoService_ResolvePenalty(t *testing.T) {
	t.Run("configured rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rateRepo := mocks.NewMockRtoRateRepository(ctrl)
		svc := NewRtoService(rateRepo, zerolog.Nop())

		ctx := context.Background()
		rateRepo.EXPECT().GetActive(ctx, "seller-1", "store-1").Return(&domain.RtoRate{
			SellerID:      "seller-1",
			StoreID:       "store-1",
			PenaltyAmount: dec("75.00"),
			Active:        true,
		}, nil)

		penalty, err := svc.ResolvePenalty(ctx, "seller-1", "store-1")
		require.NoError(t, err)
		assert.True(t, penalty.Equal(dec("75.00")))
	})

	t.Run("missing rate defaults to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rateRepo := mocks.NewMockRtoRateRepository(ctrl)
		svc := NewRtoService(rateRepo, zerolog.Nop())

		ctx := context.Background()
		rateRepo.EXPECT().GetActive(ctx, "seller-1", "store-2").Return(nil, nil)

		penalty, err := svc.ResolvePenalty(ctx, "seller-1", "store-2")
		require.NoError(t, err)
		assert.True(t, penalty.IsZero())
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rateRepo := mocks.NewMockRtoRateRepository(ctrl)
		svc := NewRtoService(rateRepo, zerolog.Nop())

		ctx := context.Background()
		rateRepo.EXPECT().GetActive(ctx, "seller-1", "store-1").Return(nil, errors.New("db down"))

		_, err := svc.ResolvePenalty(ctx, "seller-1", "store-1")
		require.Error(t, err)
		assertAppError(t, err, "SYS_001")
	})
}
