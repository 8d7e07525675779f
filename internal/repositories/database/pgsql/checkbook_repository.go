package pgsql

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/cheque_tracker_app/internal/models"
	"github.com/SscSPs/cheque_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// checkbookBankSelect joins a checkbook with its bank; scanned by scanCheckbookDetail.
const checkbookBankSelect = `
	SELECT cb.checkbook_id, cb.number, cb.bank_id, cb.initial_balance, cb.current_balance, cb.is_active,
	       cb.range_from, cb.range_to, cb.created_at, cb.created_by, cb.last_updated_at, cb.last_updated_by, cb.version,
	       b.bank_id, b.code, b.name, b.is_enabled, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by, b.version
	FROM checkbooks cb
	JOIN banks b ON b.bank_id = cb.bank_id
`

type PgxCheckbookRepository struct {
	BaseRepository
}

func newPgxCheckbookRepository(pool *pgxpool.Pool) *PgxCheckbookRepository {
	return &PgxCheckbookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CheckbookRepositoryFacade = (*PgxCheckbookRepository)(nil)

func checkbookScanTargets(m *models.Checkbook) []any {
	return []any{&m.CheckbookID, &m.Number, &m.BankID, &m.InitialBalance, &m.CurrentBalance, &m.IsActive,
		&m.RangeFrom, &m.RangeTo, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version}
}

func bankScanTargets(m *models.Bank) []any {
	return []any{&m.BankID, &m.Code, &m.Name, &m.IsEnabled,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version}
}

func scanCheckbookDetail(row pgx.Row) (domain.CheckbookDetail, error) {
	var cb models.Checkbook
	var b models.Bank
	targets := append(checkbookScanTargets(&cb), bankScanTargets(&b)...)
	if err := row.Scan(targets...); err != nil {
		return domain.CheckbookDetail{}, err
	}
	return domain.CheckbookDetail{Checkbook: mapping.ToDomainCheckbook(cb), Bank: mapping.ToDomainBank(b)}, nil
}

func (r *PgxCheckbookRepository) FindCheckbookByID(ctx context.Context, checkbookID string) (*domain.CheckbookDetail, error) {
	d, err := scanCheckbookDetail(r.Pool.QueryRow(ctx, checkbookBankSelect+` WHERE cb.checkbook_id = $1;`, checkbookID))
	if err != nil {
		return nil, notFoundOr(err, "checkbook", checkbookID)
	}
	return &d, nil
}

func (r *PgxCheckbookRepository) ListCheckbooks(ctx context.Context, filter domain.CheckbookFilter) ([]domain.CheckbookDetail, error) {
	var conds []string
	var args []any
	if filter.BankID != "" {
		args = append(args, filter.BankID)
		conds = append(conds, fmt.Sprintf("cb.bank_id = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conds = append(conds, "cb.is_active")
	}
	query := checkbookBankSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY cb.number ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkbooks: %w", err)
	}
	defer rows.Close()

	out := []domain.CheckbookDetail{}
	for rows.Next() {
		d, err := scanCheckbookDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkbook row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checkbook rows: %w", err)
	}
	return out, nil
}

func (r *PgxCheckbookRepository) CountCheckbooksByBank(ctx context.Context, bankID string) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM checkbooks WHERE bank_id = $1;`, bankID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count checkbooks of bank %s: %w", bankID, err)
	}
	return n, nil
}

func (r *PgxCheckbookRepository) SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	m := mapping.ToModelCheckbook(checkbook)
	query := `
		INSERT INTO checkbooks (checkbook_id, number, bank_id, initial_balance, current_balance, is_active,
			range_from, range_to, created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query, m.CheckbookID, m.Number, m.BankID, m.InitialBalance, m.CurrentBalance, m.IsActive,
		m.RangeFrom, m.RangeTo, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version)
	if err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: checkbook number %s", apperrors.ErrDuplicate, m.Number)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, m.BankID)
		}
		return fmt.Errorf("failed to save checkbook %s: %w", m.CheckbookID, err)
	}
	return nil
}

// UpdateCheckbook never writes the balance columns; those only move through balance deltas.
func (r *PgxCheckbookRepository) UpdateCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	m := mapping.ToModelCheckbook(checkbook)
	query := `
		UPDATE checkbooks
		SET number = $2, bank_id = $3, is_active = $4, range_from = $5, range_to = $6,
		    last_updated_at = $7, last_updated_by = $8, version = $9
		WHERE checkbook_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, m.CheckbookID, m.Number, m.BankID, m.IsActive, m.RangeFrom, m.RangeTo,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version)
	if err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: checkbook number %s", apperrors.ErrDuplicate, m.Number)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, m.BankID)
		}
		return fmt.Errorf("failed to update checkbook %s: %w", m.CheckbookID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, m.CheckbookID)
	}
	return nil
}

func (r *PgxCheckbookRepository) DeleteCheckbook(ctx context.Context, checkbookID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM checkbooks WHERE checkbook_id = $1;`, checkbookID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return fmt.Errorf("%w: checkbook %s is referenced by checks", apperrors.ErrHasDependents, checkbookID)
		}
		return fmt.Errorf("failed to delete checkbook %s: %w", checkbookID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, checkbookID)
	}
	return nil
}

func (r *PgxCheckbookRepository) ReconcileCheckbookBalance(ctx context.Context, checkbookID string, userID string, now time.Time) (*domain.BalanceReconciliation, error) {
	var rec *domain.BalanceReconciliation
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		var initial, current decimal.Decimal
		err := tx.QueryRow(ctx,
			`SELECT initial_balance, current_balance FROM checkbooks WHERE checkbook_id = $1 FOR UPDATE;`,
			checkbookID).Scan(&initial, &current)
		if err != nil {
			return notFoundOr(err, "checkbook", checkbookID)
		}

		var cashed decimal.Decimal
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(SUM(amount), 0) FROM checks WHERE checkbook_id = $1 AND status = $2;`,
			checkbookID, string(domain.CheckCashed)).Scan(&cashed)
		if err != nil {
			return fmt.Errorf("failed to sum cashed checks of checkbook %s: %w", checkbookID, err)
		}

		expected := initial.Sub(cashed)
		_, err = tx.Exec(ctx,
			`UPDATE checkbooks SET current_balance = $2, last_updated_at = $3, last_updated_by = $4 WHERE checkbook_id = $1;`,
			checkbookID, expected, now, userID)
		if err != nil {
			return fmt.Errorf("failed to write reconciled balance of checkbook %s: %w", checkbookID, err)
		}

		rec = &domain.BalanceReconciliation{
			CheckbookID:     checkbookID,
			PreviousBalance: current,
			CurrentBalance:  expected,
			Drift:           expected.Sub(current),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// lockCheckbooksInTx takes row locks on the checkbooks in id order, so two writers touching the
// same pair of checkbooks cannot deadlock. A missing id yields apperrors.ErrNotFound.
func (r *PgxCheckbookRepository) lockCheckbooksInTx(ctx context.Context, tx pgx.Tx, checkbookIDs []string) error {
	if len(checkbookIDs) == 0 {
		return nil
	}
	ids := append([]string(nil), checkbookIDs...)
	sort.Strings(ids)

	rows, err := tx.Query(ctx,
		`SELECT checkbook_id FROM checkbooks WHERE checkbook_id = ANY($1) ORDER BY checkbook_id FOR UPDATE;`, ids)
	if err != nil {
		return fmt.Errorf("failed to lock checkbooks: %w", err)
	}
	defer rows.Close()

	locked := make(map[string]bool, len(ids))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan locked checkbook: %w", err)
		}
		locked[id] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating locked checkbooks: %w", err)
	}
	for _, id := range ids {
		if !locked[id] {
			return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, id)
		}
	}
	return nil
}

// updateBalancesInTx applies signed deltas to current_balance within a given transaction.
// The increment happens in SQL, so concurrent writers never overwrite each other's effect.
func (r *PgxCheckbookRepository) updateBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE checkbooks
		SET current_balance = COALESCE(current_balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE checkbook_id = $1;
	`
	batch := &pgx.Batch{}
	ids := make([]string, 0, len(balanceChanges))
	for id, delta := range balanceChanges {
		if !delta.IsZero() {
			batch.Queue(query, id, delta, now, userID)
			ids = append(ids, id)
		}
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for checkbook %s: %w", ids[i], err)
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: checkbook %s not found during balance update", apperrors.ErrNotFound, ids[i])
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}
