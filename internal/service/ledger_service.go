package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"
	"margin-ledger-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const defaultPostingCacheTTL = 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService. It is the only writer of
// wallet balances: every posting goes through Post, which serializes writers
// per store with a row lock and deduplicates on (store, order, kind).
type LedgerServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	postCache  ports.PostingCache
	transactor ports.DBTransactor
	cacheTTL   time.Duration
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl. cacheTTL bounds the
// Redis fast-path idempotency cache; zero selects the default.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	postCache ports.PostingCache,
	transactor ports.DBTransactor,
	cacheTTL time.Duration,
	log zerolog.Logger,
) *LedgerServiceImpl {
	if cacheTTL <= 0 {
		cacheTTL = defaultPostingCacheTTL
	}
	return &LedgerServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		postCache:  postCache,
		transactor: transactor,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

// Post appends a ledger entry and moves the wallet balance atomically.
// Replays of an already-posted (store, order, kind) return the original
// transaction and leave the balance untouched.
func (s *LedgerServiceImpl) Post(ctx context.Context, req ports.PostRequest) (*domain.Transaction, error) {
	if req.StoreID == "" {
		return nil, apperror.ErrMissingIdentifier("store_id")
	}
	if req.OrderID == "" {
		return nil, apperror.ErrMissingIdentifier("order_id")
	}
	if !req.Kind.IsValid() {
		return nil, apperror.ErrUnknownKind(string(req.Kind))
	}
	if err := validateAmountSign(req.Kind, req.Amount); err != nil {
		return nil, err
	}

	postKey := domain.BuildPostingKey(req.StoreID, req.OrderID, req.Kind)

	// Layer 1: Redis fast path
	cached, err := s.postCache.Get(ctx, postKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", postKey).Msg("redis posting check failed, falling through to DB")
	}
	if cached != nil {
		return s.unmarshalCachedTransaction(cached)
	}

	// Layer 2: authoritative DB check
	existing, err := s.txRepo.GetByOrderAndKind(ctx, req.StoreID, req.OrderID, req.Kind)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("db posting check: %w", err))
	}
	if existing != nil {
		s.cacheTransaction(ctx, postKey, existing)
		return existing, nil
	}

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lazily create the wallet, then lock it
	if err := s.walletRepo.EnsureExists(ctx, dbTx, req.StoreID); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("ensure wallet: %w", err))
	}
	wallet, err := s.walletRepo.GetByStoreIDForUpdate(ctx, dbTx, req.StoreID)
	if err != nil {
		// A deadline hit while waiting on the row lock means a concurrent
		// poster held it too long, not that storage is down.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.ErrLockTimeout(fmt.Errorf("lock wallet: %w", err))
		}
		return nil, apperror.StorageError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	newBalance := wallet.Balance.Add(req.Amount)

	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:            uuid.New(),
		StoreID:       req.StoreID,
		OrderID:       req.OrderID,
		OrderNumber:   req.OrderNumber,
		Kind:          req.Kind,
		Amount:        req.Amount,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  newBalance,
		Description:   req.Description,
		CreatedAt:     now,
	}

	// Persist: update wallet balance
	if err := s.walletRepo.UpdateBalance(ctx, dbTx, req.StoreID, newBalance); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("update balance: %w", err))
	}

	// Persist: create transaction. A unique violation means a concurrent
	// poster won the race between the DB check and our lock; roll back the
	// balance change and return its row.
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		if errors.Is(err, ports.ErrDuplicatePosting) {
			_ = dbTx.Rollback(ctx)
			return s.fetchExisting(ctx, postKey, req)
		}
		return nil, apperror.StorageError(fmt.Errorf("create transaction: %w", err))
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.StorageError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: cache in Redis (best-effort)
	s.cacheTransaction(ctx, postKey, txn)

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("store_id", req.StoreID).
		Str("order_id", req.OrderID).
		Str("kind", string(req.Kind)).
		Str("amount", req.Amount.String()).
		Msg("ledger entry posted")

	return txn, nil
}

// GetBalance returns the wallet balance, or zero if the store has never been
// posted to. It never creates a wallet.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, storeID string) (decimal.Decimal, error) {
	if storeID == "" {
		return decimal.Zero, apperror.ErrMissingIdentifier("store_id")
	}
	wallet, err := s.walletRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return decimal.Zero, apperror.StorageError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return decimal.Zero, nil
	}
	return wallet.Balance, nil
}

// GetHistory lists ledger entries newest-first with the unpaginated total.
func (s *LedgerServiceImpl) GetHistory(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	if params.StoreID == "" {
		return nil, 0, apperror.ErrMissingIdentifier("store_id")
	}
	if params.Kind != nil && !params.Kind.IsValid() {
		return nil, 0, apperror.ErrUnknownKind(string(*params.Kind))
	}
	txns, total, err := s.txRepo.ListByStore(ctx, params)
	if err != nil {
		return nil, 0, apperror.StorageError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, total, nil
}

// GetSummary aggregates the store's ledger by kind. For a store with no
// wallet the summary is all zeros.
func (s *LedgerServiceImpl) GetSummary(ctx context.Context, storeID string) (*ports.WalletSummary, error) {
	if storeID == "" {
		return nil, apperror.ErrMissingIdentifier("store_id")
	}
	summary, err := s.txRepo.GetSummary(ctx, storeID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get summary: %w", err))
	}
	wallet, err := s.walletRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet != nil {
		summary.Balance = wallet.Balance
	}
	return summary, nil
}

// validateAmountSign enforces the sign convention per kind: margin credits
// never debit, penalties never credit. Zero amounts are legal for both — an
// unmatched order or an unrated seller still leaves an auditable entry.
// Adjustments may go either way but never zero.
func validateAmountSign(kind domain.TransactionKind, amount decimal.Decimal) error {
	switch kind {
	case domain.KindMarginEarned:
		if amount.Sign() < 0 {
			return apperror.ErrInvalidAmount(string(kind))
		}
	case domain.KindRtoPenalty:
		if amount.Sign() > 0 {
			return apperror.ErrInvalidAmount(string(kind))
		}
	case domain.KindAdjustment:
		if amount.IsZero() {
			return apperror.ErrInvalidAmount(string(kind))
		}
	}
	return nil
}

// fetchExisting loads the transaction a concurrent poster created.
func (s *LedgerServiceImpl) fetchExisting(ctx context.Context, postKey string, req ports.PostRequest) (*domain.Transaction, error) {
	existing, err := s.txRepo.GetByOrderAndKind(ctx, req.StoreID, req.OrderID, req.Kind)
	if err != nil {
		return nil, apperror.StorageError(fmt.Errorf("fetch winning transaction: %w", err))
	}
	if existing == nil {
		return nil, apperror.InternalError(fmt.Errorf("duplicate posting reported but no row found for %s", postKey))
	}
	s.cacheTransaction(ctx, postKey, existing)
	return existing, nil
}

func (s *LedgerServiceImpl) cacheTransaction(ctx context.Context, key string, txn *domain.Transaction) {
	data, err := json.Marshal(txn)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to marshal transaction for cache")
		return
	}
	if err := s.postCache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache posting in redis")
	}
}

func (s *LedgerServiceImpl) unmarshalCachedTransaction(data []byte) (*domain.Transaction, error) {
	txn := &domain.Transaction{}
	if err := json.Unmarshal(data, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached tx: %w", err))
	}
	return txn, nil
}
