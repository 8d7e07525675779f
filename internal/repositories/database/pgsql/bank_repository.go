package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cheque_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/cheque_tracker_app/internal/models"
	"github.com/SscSPs/cheque_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bankColumns = `bank_id, code, name, is_enabled, created_at, created_by, last_updated_at, last_updated_by, version`

type PgxBankRepository struct {
	BaseRepository
}

func newPgxBankRepository(pool *pgxpool.Pool) *PgxBankRepository {
	return &PgxBankRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

func scanBank(row pgx.Row) (models.Bank, error) {
	var m models.Bank
	err := row.Scan(&m.BankID, &m.Code, &m.Name, &m.IsEnabled,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.Version)
	return m, err
}

func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE bank_id = $1;`
	m, err := scanBank(r.Pool.QueryRow(ctx, query, bankID))
	if err != nil {
		return nil, notFoundOr(err, "bank", bankID)
	}
	b := mapping.ToDomainBank(m)
	return &b, nil
}

func (r *PgxBankRepository) ListBanks(ctx context.Context, enabledOnly bool) ([]domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE ($1::boolean IS FALSE OR is_enabled) ORDER BY name ASC;`
	rows, err := r.Pool.Query(ctx, query, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	defer rows.Close()

	banks := []domain.Bank{}
	for rows.Next() {
		m, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank row: %w", err)
		}
		banks = append(banks, mapping.ToDomainBank(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", err)
	}
	return banks, nil
}

func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `
		INSERT INTO banks (` + bankColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query, m.BankID, m.Code, m.Name, m.IsEnabled,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return fmt.Errorf("%w: bank code %s", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save bank %s: %w", m.BankID, err)
	}
	return nil
}

func (r *PgxBankRepository) UpdateBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `
		UPDATE banks
		SET code = $2, name = $3, is_enabled = $4, last_updated_at = $5, last_updated_by = $6, version = $7
		WHERE bank_id = $1;
	`
	ct, err := r.Pool.Exec(ctx, query, m.BankID, m.Code, m.Name, m.IsEnabled, m.LastUpdatedAt, m.LastUpdatedBy, m.Version)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return fmt.Errorf("%w: bank code %s", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to update bank %s: %w", m.BankID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, m.BankID)
	}
	return nil
}

func (r *PgxBankRepository) DeleteBank(ctx context.Context, bankID string) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM banks WHERE bank_id = $1;`, bankID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return fmt.Errorf("%w: bank %s is referenced by checkbooks", apperrors.ErrHasDependents, bankID)
		}
		return fmt.Errorf("failed to delete bank %s: %w", bankID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: bank %s", apperrors.ErrNotFound, bankID)
	}
	return nil
}
