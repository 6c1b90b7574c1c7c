package postgres

import (
	"context"
	"errors"
	"fmt"

	"margin-ledger-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// GetByStoreID fetches a wallet without locking. Returns nil, nil for
// unknown stores.
func (r *WalletRepo) GetByStoreID(ctx context.Context, storeID string) (*domain.Wallet, error) {
	query := `SELECT store_id, balance, created_at, updated_at
		FROM wallets WHERE store_id = $1`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, storeID).Scan(
		&w.StoreID, &w.Balance, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by store id: %w", err)
	}
	return w, nil
}

// EnsureExists lazily creates the wallet with a zero balance. Concurrent
// callers race safely: the conflict clause makes the insert a no-op when the
// row already exists.
func (r *WalletRepo) EnsureExists(ctx context.Context, tx pgx.Tx, storeID string) error {
	query := `INSERT INTO wallets (store_id, balance, created_at, updated_at)
		VALUES ($1, 0, NOW(), NOW())
		ON CONFLICT (store_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, storeID); err != nil {
		return fmt.Errorf("ensure wallet exists: %w", err)
	}
	return nil
}

// GetByStoreIDForUpdate fetches a wallet with pessimistic locking.
// This MUST be called within a transaction; the row stays locked until the
// transaction commits or rolls back.
func (r *WalletRepo) GetByStoreIDForUpdate(ctx context.Context, tx pgx.Tx, storeID string) (*domain.Wallet, error) {
	query := `SELECT store_id, balance, created_at, updated_at
		FROM wallets WHERE store_id = $1 FOR UPDATE`

	w := &domain.Wallet{}
	err := tx.QueryRow(ctx, query, storeID).Scan(
		&w.StoreID, &w.Balance, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalance writes the new balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, storeID string, balance decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $1, updated_at = NOW() WHERE store_id = $2`

	tag, err := tx.Exec(ctx, query, balance, storeID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s", storeID)
	}
	return nil
}
