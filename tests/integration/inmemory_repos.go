package integration

import (
	"context"
	"fmt"
	"sync"

	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[string]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) GetByStoreID(ctx context.Context, storeID string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[storeID]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) EnsureExists(ctx context.Context, tx pgx.Tx, storeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[storeID]; !ok {
		r.wallets[storeID] = &domain.Wallet{StoreID: storeID, Balance: decimal.Zero}
	}
	return nil
}

func (r *inMemoryWalletRepo) GetByStoreIDForUpdate(ctx context.Context, tx pgx.Tx, storeID string) (*domain.Wallet, error) {
	return r.GetByStoreID(ctx, storeID)
}

func (r *inMemoryWalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, storeID string, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[storeID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	prev := w.Balance
	if ltx, ok := tx.(*lockTx); ok {
		ltx.onRollback = func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.wallets[storeID].Balance = prev
		}
	}
	w.Balance = balance
	return nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
	byPostingKey map[string]*domain.Transaction
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{byPostingKey: make(map[string]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := domain.BuildPostingKey(t.StoreID, t.OrderID, t.Kind)
	if _, exists := r.byPostingKey[key]; exists {
		return fmt.Errorf("%w: %s", ports.ErrDuplicatePosting, key)
	}
	cp := *t
	r.transactions = append(r.transactions, &cp)
	r.byPostingKey[key] = &cp
	return nil
}

func (r *inMemoryTransactionRepo) GetByOrderAndKind(ctx context.Context, storeID, orderID string, kind domain.TransactionKind) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byPostingKey[domain.BuildPostingKey(storeID, orderID, kind)]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) ListByStore(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Transaction
	// Insertion order is creation order; newest first.
	for i := len(r.transactions) - 1; i >= 0; i-- {
		t := r.transactions[i]
		if t.StoreID != params.StoreID {
			continue
		}
		if params.Kind != nil && t.Kind != *params.Kind {
			continue
		}
		result = append(result, *t)
	}
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Transaction{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

func (r *inMemoryTransactionRepo) GetSummary(ctx context.Context, storeID string) (*ports.WalletSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	summary := &ports.WalletSummary{
		StoreID:           storeID,
		Balance:           decimal.Zero,
		TotalMarginEarned: decimal.Zero,
		TotalRtoPenalty:   decimal.Zero,
	}
	for _, t := range r.transactions {
		if t.StoreID != storeID {
			continue
		}
		summary.TotalTransactions++
		switch t.Kind {
		case domain.KindMarginEarned:
			summary.MarginCount++
			summary.TotalMarginEarned = summary.TotalMarginEarned.Add(t.Amount)
		case domain.KindRtoPenalty:
			summary.RtoCount++
			summary.TotalRtoPenalty = summary.TotalRtoPenalty.Add(t.Amount)
		}
	}
	return summary, nil
}

// allForStore returns every entry for a store in creation order.
func (r *inMemoryTransactionRepo) allForStore(storeID string) []domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Transaction
	for _, t := range r.transactions {
		if t.StoreID == storeID {
			out = append(out, *t)
		}
	}
	return out
}

// --- In-Memory Order Margin Repo ---

type inMemoryOrderMarginRepo struct {
	mu      sync.RWMutex
	margins map[string]*domain.OrderMargin
}

func newInMemoryOrderMarginRepo() *inMemoryOrderMarginRepo {
	return &inMemoryOrderMarginRepo{margins: make(map[string]*domain.OrderMargin)}
}

func (r *inMemoryOrderMarginRepo) Upsert(ctx context.Context, om *domain.OrderMargin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *om
	r.margins[om.StoreID+":"+om.OrderID] = &cp
	return nil
}

func (r *inMemoryOrderMarginRepo) GetByOrder(ctx context.Context, storeID, orderID string) (*domain.OrderMargin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	om, ok := r.margins[storeID+":"+orderID]
	if !ok {
		return nil, nil
	}
	cp := *om
	return &cp, nil
}

// --- In-Memory Margin Catalog Repo ---

type inMemoryCatalogRepo struct {
	mu      sync.RWMutex
	entries []*domain.MarginCatalogEntry
}

func newInMemoryCatalogRepo() *inMemoryCatalogRepo {
	return &inMemoryCatalogRepo{}
}

func (r *inMemoryCatalogRepo) add(e domain.MarginCatalogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, &e)
}

func (r *inMemoryCatalogRepo) GetByProductIdentity(ctx context.Context, storeID, productIdentity string) (*domain.MarginCatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.StoreID == storeID && e.ProductIdentity == productIdentity {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryCatalogRepo) GetByNormalizedName(ctx context.Context, storeID, normalizedName string) (*domain.MarginCatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.StoreID == storeID && e.NormalizedName == normalizedName {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory RTO Rate Repo ---

type inMemoryRtoRateRepo struct {
	mu    sync.RWMutex
	rates map[string]*domain.RtoRate
}

func newInMemoryRtoRateRepo() *inMemoryRtoRateRepo {
	return &inMemoryRtoRateRepo{rates: make(map[string]*domain.RtoRate)}
}

func (r *inMemoryRtoRateRepo) add(rate domain.RtoRate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates[rate.SellerID+":"+rate.StoreID] = &rate
}

func (r *inMemoryRtoRateRepo) GetActive(ctx context.Context, sellerID, storeID string) (*domain.RtoRate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rate, ok := r.rates[sellerID+":"+storeID]
	if !ok || !rate.Active {
		return nil, nil
	}
	cp := *rate
	return &cp, nil
}

// --- Locking Transactor ---

// lockingTransactor serializes posting transactions with a single mutex,
// standing in for the per-store row lock. Begin blocks until the previous
// transaction commits or rolls back.
type lockingTransactor struct {
	mu sync.Mutex
}

func newLockingTransactor() *lockingTransactor {
	return &lockingTransactor{}
}

func (t *lockingTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &lockTx{release: &t.mu}, nil
}

// lockTx is a pgx.Tx that holds the transactor lock until finished.
// onRollback undoes the wallet balance write, mirroring a real rollback.
type lockTx struct {
	release    *sync.Mutex
	onRollback func()
	done       bool
}

func (t *lockTx) finish() {
	if !t.done {
		t.done = true
		t.release.Unlock()
	}
}

func (t *lockTx) Commit(ctx context.Context) error {
	t.onRollback = nil
	t.finish()
	return nil
}

func (t *lockTx) Rollback(ctx context.Context) error {
	if t.onRollback != nil {
		t.onRollback()
		t.onRollback = nil
	}
	t.finish()
	return nil
}

func (t *lockTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *lockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *lockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *lockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *lockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *lockTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *lockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *lockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *lockTx) Conn() *pgx.Conn { return nil }
