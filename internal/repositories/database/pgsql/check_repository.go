package pgsql

import (
	"context"
	"fmt"
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

const (
	// checkNumberConstraint is the UNIQUE(checkbook_id, number) constraint on checks.
	checkNumberConstraint = "checks_checkbook_id_number_key"

	checkJoins = `
	FROM checks c
	JOIN checkbooks cb ON cb.checkbook_id = c.checkbook_id
	JOIN banks b ON b.bank_id = cb.bank_id
`
	checkDetailSelect = `
	SELECT c.check_id, c.checkbook_id, c.number, c.issue_date, c.due_date, c.payee, c.memo, c.amount, c.status,
	       c.cashed_at, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by, c.version,
	       cb.checkbook_id, cb.number, cb.bank_id, cb.initial_balance, cb.current_balance, cb.is_active,
	       cb.range_from, cb.range_to, cb.created_at, cb.created_by, cb.last_updated_at, cb.last_updated_by, cb.version,
	       b.bank_id, b.code, b.name, b.is_enabled, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by, b.version
` + checkJoins

	checkOrder = ` ORDER BY c.due_date ASC, c.number::bigint ASC, c.check_id ASC`
)

type PgxCheckRepository struct {
	BaseRepository
	checkbooks *PgxCheckbookRepository
}

// newPgxCheckRepository needs the checkbook repository for row locks and balance deltas.
func newPgxCheckRepository(pool *pgxpool.Pool, checkbooks *PgxCheckbookRepository) *PgxCheckRepository {
	return &PgxCheckRepository{BaseRepository: BaseRepository{Pool: pool}, checkbooks: checkbooks}
}

var _ portsrepo.CheckRepositoryFacade = (*PgxCheckRepository)(nil)

func scanCheckDetail(row pgx.Row) (domain.CheckDetail, error) {
	var c models.Check
	var cb models.Checkbook
	var b models.Bank
	targets := []any{&c.CheckID, &c.CheckbookID, &c.Number, &c.IssueDate, &c.DueDate, &c.Payee, &c.Memo, &c.Amount, &c.Status,
		&c.CashedAt, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy, &c.Version}
	targets = append(targets, checkbookScanTargets(&cb)...)
	targets = append(targets, bankScanTargets(&b)...)
	if err := row.Scan(targets...); err != nil {
		return domain.CheckDetail{}, err
	}
	return domain.CheckDetail{
		Check:     mapping.ToDomainCheck(c),
		Checkbook: mapping.ToDomainCheckbook(cb),
		Bank:      mapping.ToDomainBank(b),
	}, nil
}

// buildCheckWhere renders the filter as a WHERE clause over the checkJoins aliases.
func buildCheckWhere(f domain.CheckFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(format string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}

	if f.Search != "" {
		add("(c.number ILIKE $%[1]d OR c.payee ILIKE $%[1]d OR c.memo ILIKE $%[1]d)", "%"+escapeLike(f.Search)+"%")
	}
	if f.CheckbookID != "" {
		add("c.checkbook_id = $%d", f.CheckbookID)
	}
	if f.BankID != "" {
		add("cb.bank_id = $%d", f.BankID)
	}
	if f.Status != "" {
		add("c.status = $%d", string(f.Status))
	}
	if !f.DueFrom.IsZero() {
		add("c.due_date >= $%d", mapping.ToPgDate(f.DueFrom))
	}
	if !f.DueTo.IsZero() {
		add("c.due_date <= $%d", mapping.ToPgDate(f.DueTo))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PgxCheckRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.CheckDetail, error) {
	d, err := scanCheckDetail(r.Pool.QueryRow(ctx, checkDetailSelect+` WHERE c.check_id = $1;`, checkID))
	if err != nil {
		return nil, notFoundOr(err, "check", checkID)
	}
	return &d, nil
}

func (r *PgxCheckRepository) CheckNumberExists(ctx context.Context, checkbookID string, number string, excludeCheckID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM checks
			WHERE checkbook_id = $1 AND number = $2 AND ($3::text = '' OR check_id <> $3)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, checkbookID, number, excludeCheckID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check number %s in checkbook %s: %w", number, checkbookID, err)
	}
	return exists, nil
}

func (r *PgxCheckRepository) CountChecksByCheckbook(ctx context.Context, checkbookID string) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM checks WHERE checkbook_id = $1;`, checkbookID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count checks of checkbook %s: %w", checkbookID, err)
	}
	return n, nil
}

func (r *PgxCheckRepository) ListChecks(ctx context.Context, filter domain.CheckFilter, limit int, offset int) ([]domain.CheckDetail, int64, error) {
	where, args := buildCheckWhere(filter)

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*)`+checkJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count checks: %w", err)
	}

	pageArgs := append(args, limit, offset)
	query := checkDetailSelect + where + checkOrder +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d;", len(pageArgs)-1, len(pageArgs))
	checks, err := r.queryChecks(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	return checks, total, nil
}

func (r *PgxCheckRepository) ListAllChecks(ctx context.Context, filter domain.CheckFilter) ([]domain.CheckDetail, error) {
	where, args := buildCheckWhere(filter)
	return r.queryChecks(ctx, checkDetailSelect+where+checkOrder+";", args...)
}

func (r *PgxCheckRepository) queryChecks(ctx context.Context, query string, args ...any) ([]domain.CheckDetail, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query checks: %w", err)
	}
	defer rows.Close()

	checks := []domain.CheckDetail{}
	for rows.Next() {
		d, err := scanCheckDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}
		checks = append(checks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check rows: %w", err)
	}
	return checks, nil
}

func (r *PgxCheckRepository) SumAmountsByStatus(ctx context.Context, filter domain.CheckFilter) (map[domain.CheckStatus]decimal.Decimal, error) {
	where, args := buildCheckWhere(filter)
	rows, err := r.Pool.Query(ctx, `SELECT c.status, COALESCE(SUM(c.amount), 0)`+checkJoins+where+` GROUP BY c.status;`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum check amounts: %w", err)
	}
	defer rows.Close()

	sums := make(map[domain.CheckStatus]decimal.Decimal)
	for rows.Next() {
		var status string
		var sum decimal.Decimal
		if err := rows.Scan(&status, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan check totals: %w", err)
		}
		sums[domain.CheckStatus(status)] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check totals: %w", err)
	}
	return sums, nil
}

func (r *PgxCheckRepository) SaveCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error {
	m := mapping.ToModelCheck(check)
	return r.writeWithBalances(ctx, balanceChanges, check.LastUpdatedBy, check.LastUpdatedAt, func(tx pgx.Tx) error {
		query := `
			INSERT INTO checks (check_id, checkbook_id, number, issue_date, due_date, payee, memo, amount, status,
				cashed_at, created_at, created_by, last_updated_at, last_updated_by, version)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
		`
		_, err := tx.Exec(ctx, query, m.CheckID, m.CheckbookID, m.Number, m.IssueDate, m.DueDate, m.Payee, m.Memo,
			m.Amount, m.Status, m.CashedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version)
		if err != nil {
			return mapCheckWriteError(err, m)
		}
		return nil
	})
}

func (r *PgxCheckRepository) UpdateCheck(ctx context.Context, check domain.Check, expectedVersion int64, balanceChanges map[string]decimal.Decimal) error {
	m := mapping.ToModelCheck(check)
	return r.writeWithBalances(ctx, balanceChanges, check.LastUpdatedBy, check.LastUpdatedAt, func(tx pgx.Tx) error {
		query := `
			UPDATE checks
			SET checkbook_id = $2, number = $3, issue_date = $4, due_date = $5, payee = $6, memo = $7, amount = $8,
			    status = $9, cashed_at = $10, last_updated_at = $11, last_updated_by = $12, version = $13
			WHERE check_id = $1 AND version = $14;
		`
		ct, err := tx.Exec(ctx, query, m.CheckID, m.CheckbookID, m.Number, m.IssueDate, m.DueDate, m.Payee, m.Memo,
			m.Amount, m.Status, m.CashedAt, m.LastUpdatedAt, m.LastUpdatedBy, m.Version, expectedVersion)
		if err != nil {
			return mapCheckWriteError(err, m)
		}
		if ct.RowsAffected() == 0 {
			return r.missingOrStale(ctx, tx, m.CheckID, expectedVersion)
		}
		return nil
	})
}

func (r *PgxCheckRepository) DeleteCheck(ctx context.Context, check domain.Check, balanceChanges map[string]decimal.Decimal) error {
	return r.writeWithBalances(ctx, balanceChanges, check.LastUpdatedBy, check.LastUpdatedAt, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, `DELETE FROM checks WHERE check_id = $1 AND version = $2;`, check.CheckID, check.Version)
		if err != nil {
			return fmt.Errorf("failed to delete check %s: %w", check.CheckID, err)
		}
		if ct.RowsAffected() == 0 {
			return r.missingOrStale(ctx, tx, check.CheckID, check.Version)
		}
		return nil
	})
}

// writeWithBalances locks the checkbooks named in balanceChanges, runs write and applies the
// deltas, all in one transaction.
func (r *PgxCheckRepository) writeWithBalances(ctx context.Context, balanceChanges map[string]decimal.Decimal, userID string, now time.Time, write func(tx pgx.Tx) error) error {
	ids := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		ids = append(ids, id)
	}
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		if err := r.checkbooks.lockCheckbooksInTx(ctx, tx, ids); err != nil {
			return err
		}
		if err := write(tx); err != nil {
			return err
		}
		return r.checkbooks.updateBalancesInTx(ctx, tx, balanceChanges, userID, now)
	})
}

func (r *PgxCheckRepository) missingOrStale(ctx context.Context, tx pgx.Tx, checkID string, expectedVersion int64) error {
	var version int64
	err := tx.QueryRow(ctx, `SELECT version FROM checks WHERE check_id = $1;`, checkID).Scan(&version)
	if err != nil {
		return notFoundOr(err, "check", checkID)
	}
	return fmt.Errorf("%w: check %s is at version %d, expected %d", apperrors.ErrConflict, checkID, version, expectedVersion)
}

func mapCheckWriteError(err error, m models.Check) error {
	switch code, constraint := pgErrorCode(err); code {
	case pgUniqueViolation:
		if constraint == checkNumberConstraint {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateNumber, m.Number)
		}
		return fmt.Errorf("%w: check %s", apperrors.ErrDuplicate, m.CheckID)
	case pgForeignKeyViolation:
		return fmt.Errorf("%w: checkbook %s", apperrors.ErrNotFound, m.CheckbookID)
	}
	return fmt.Errorf("failed to write check %s: %w", m.CheckID, err)
}
