package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"margin-ledger-engine/internal/core/domain"
	"margin-ledger-engine/internal/core/ports"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a ledger entry within a database transaction. A violation
// of the (store_id, order_id, kind) uniqueness constraint surfaces as
// ports.ErrDuplicatePosting so the poster can treat it as the success path.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (id, store_id, order_id, order_number, kind,
		amount, balance_before, balance_after, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.StoreID, t.OrderID, t.OrderNumber, t.Kind,
		t.Amount, t.BalanceBefore, t.BalanceAfter, t.Description, t.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("insert transaction %s/%s/%s: %w",
				t.StoreID, t.OrderID, t.Kind, ports.ErrDuplicatePosting)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByOrderAndKind fetches the posted entry for an idempotency key.
// Returns nil, nil when nothing has been posted yet.
func (r *TransactionRepo) GetByOrderAndKind(ctx context.Context, storeID, orderID string, kind domain.TransactionKind) (*domain.Transaction, error) {
	query := `SELECT id, store_id, order_id, order_number, kind,
		amount, balance_before, balance_after, description, created_at
		FROM transactions WHERE store_id = $1 AND order_id = $2 AND kind = $3`

	return r.scanTransaction(r.pool.QueryRow(ctx, query, storeID, orderID, kind))
}

// ListByStore fetches ledger entries newest-first with pagination.
func (r *TransactionRepo) ListByStore(ctx context.Context, params ports.TransactionListParams) ([]domain.Transaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("store_id = $%d", argIdx))
	args = append(args, params.StoreID)
	argIdx++

	if params.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", argIdx))
		args = append(args, *params.Kind)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT id, store_id, order_id, order_number, kind,
		amount, balance_before, balance_after, description, created_at
		FROM transactions %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.ID, &t.StoreID, &t.OrderID, &t.OrderNumber, &t.Kind,
			&t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.Description, &t.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, total, nil
}

// GetSummary aggregates a store's ledger by kind.
func (r *TransactionRepo) GetSummary(ctx context.Context, storeID string) (*ports.WalletSummary, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE kind = 'margin_earned') AS margin_count,
		COUNT(*) FILTER (WHERE kind = 'rto_penalty') AS rto_count,
		COALESCE(SUM(amount) FILTER (WHERE kind = 'margin_earned'), 0) AS margin_total,
		COALESCE(SUM(amount) FILTER (WHERE kind = 'rto_penalty'), 0) AS rto_total
		FROM transactions WHERE store_id = $1`

	summary := &ports.WalletSummary{StoreID: storeID}
	err := r.pool.QueryRow(ctx, query, storeID).Scan(
		&summary.TotalTransactions, &summary.MarginCount, &summary.RtoCount,
		&summary.TotalMarginEarned, &summary.TotalRtoPenalty,
	)
	if err != nil {
		return nil, fmt.Errorf("get wallet summary: %w", err)
	}
	return summary, nil
}

// scanTransaction is a helper to scan a single row into a Transaction.
func (r *TransactionRepo) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.ID, &t.StoreID, &t.OrderID, &t.OrderNumber, &t.Kind,
		&t.Amount, &t.BalanceBefore, &t.BalanceAfter, &t.Description, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}
