package pgsql

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCheckWhere_Empty(t *testing.T) {
	where, args := buildCheckWhere(domain.CheckFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildCheckWhere_AllFilters(t *testing.T) {
	from := domain.NewDate(2024, time.January, 1)
	to := domain.NewDate(2024, time.January, 31)
	where, args := buildCheckWhere(domain.CheckFilter{
		Search:      "50%_off",
		CheckbookID: "cb-1",
		BankID:      "bank-1",
		Status:      domain.CheckCashed,
		DueFrom:     from,
		DueTo:       to,
	})

	assert.Equal(t, " WHERE (c.number ILIKE $1 OR c.payee ILIKE $1 OR c.memo ILIKE $1)"+
		" AND c.checkbook_id = $2 AND cb.bank_id = $3 AND c.status = $4"+
		" AND c.due_date >= $5 AND c.due_date <= $6", where)
	require.Len(t, args, 6)
	assert.Equal(t, `%50\%\_off%`, args[0])
	assert.Equal(t, "cb-1", args[1])
	assert.Equal(t, "bank-1", args[2])
	assert.Equal(t, "CASHED", args[3])
	assert.Equal(t, pgtype.Date{Time: from.Time(), Valid: true}, args[4])
	assert.Equal(t, pgtype.Date{Time: to.Time(), Valid: true}, args[5])
}

func TestBuildCheckWhere_PlaceholdersFollowPresentFilters(t *testing.T) {
	where, args := buildCheckWhere(domain.CheckFilter{Status: domain.CheckVoid, DueTo: domain.NewDate(2024, time.May, 1)})
	assert.Equal(t, " WHERE c.status = $1 AND c.due_date <= $2", where)
	assert.Len(t, args, 2)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestMapCheckWriteError(t *testing.T) {
	m := models.Check{CheckID: "chk-1", CheckbookID: "cb-1", Number: "7"}

	err := mapCheckWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: checkNumberConstraint}, m)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateNumber)

	err = mapCheckWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "checks_pkey"}, m)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = mapCheckWriteError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgForeignKeyViolation}), m)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	cause := fmt.Errorf("connection reset")
	err = mapCheckWriteError(cause, m)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
