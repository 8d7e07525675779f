package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/apperrors"
	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/SscSPs/cheque_tracker_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()

	suite.Require().NoError(suite.store.SaveBank(suite.ctx, domain.Bank{BankID: "b1", Code: "B1", Name: "Bank One", IsEnabled: true}))
	for _, id := range []string{"cb1", "cb2"} {
		suite.Require().NoError(suite.store.SaveCheckbook(suite.ctx, domain.Checkbook{
			CheckbookID:    id,
			Number:         id,
			BankID:         "b1",
			InitialBalance: decimal.NewFromInt(1000),
			CurrentBalance: decimal.NewFromInt(1000),
			IsActive:       true,
			RangeFrom:      1,
			RangeTo:        100,
		}))
	}
}

func (suite *StoreTestSuite) check(id, checkbookID, number string, status domain.CheckStatus) domain.Check {
	return domain.Check{
		CheckID:     id,
		CheckbookID: checkbookID,
		Number:      number,
		DueDate:     domain.NewDate(2024, time.April, 1),
		Payee:       "Payee " + id,
		Amount:      decimal.NewFromInt(10),
		Status:      status,
		AuditFields: domain.AuditFields{Version: 1},
	}
}

func (suite *StoreTestSuite) balance(id string) decimal.Decimal {
	cb, err := suite.store.FindCheckbookByID(suite.ctx, id)
	suite.Require().NoError(err)
	return cb.CurrentBalance
}

func (suite *StoreTestSuite) TestSaveCheck_AppliesDeltas() {
	c := suite.check("c1", "cb1", "1", domain.CheckCashed)
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, c, map[string]decimal.Decimal{"cb1": decimal.NewFromInt(-10)}))
	suite.True(decimal.NewFromInt(990).Equal(suite.balance("cb1")))

	found, err := suite.store.FindCheckByID(suite.ctx, "c1")
	suite.Require().NoError(err)
	suite.Equal("Bank One", found.Bank.Name)
	suite.Equal("cb1", found.Checkbook.CheckbookID)
}

func (suite *StoreTestSuite) TestSaveCheck_UnknownDeltaTargetWritesNothing() {
	c := suite.check("c1", "cb1", "1", domain.CheckCashed)
	err := suite.store.SaveCheck(suite.ctx, c, map[string]decimal.Decimal{"cb1": decimal.NewFromInt(-10), "ghost": decimal.NewFromInt(5)})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.store.FindCheckByID(suite.ctx, "c1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.True(decimal.NewFromInt(1000).Equal(suite.balance("cb1")))
}

func (suite *StoreTestSuite) TestSaveCheck_DuplicateNumber() {
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, suite.check("c1", "cb1", "1", domain.CheckPending), nil))
	err := suite.store.SaveCheck(suite.ctx, suite.check("c2", "cb1", "1", domain.CheckPending), nil)
	suite.ErrorIs(err, apperrors.ErrDuplicateNumber)

	suite.NoError(suite.store.SaveCheck(suite.ctx, suite.check("c3", "cb2", "1", domain.CheckPending), nil))
}

func (suite *StoreTestSuite) TestUpdateCheck_VersionGuard() {
	c := suite.check("c1", "cb1", "1", domain.CheckPending)
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, c, nil))

	c.Status = domain.CheckCashed
	c.Version = 2
	deltas := map[string]decimal.Decimal{"cb1": decimal.NewFromInt(-10)}
	suite.Require().NoError(suite.store.UpdateCheck(suite.ctx, c, 1, deltas))

	// A second writer that read version 1 loses.
	err := suite.store.UpdateCheck(suite.ctx, c, 1, deltas)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.True(decimal.NewFromInt(990).Equal(suite.balance("cb1")))
}

func (suite *StoreTestSuite) TestDeleteCheck_VersionGuardAndCredit() {
	c := suite.check("c1", "cb1", "1", domain.CheckCashed)
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, c, map[string]decimal.Decimal{"cb1": decimal.NewFromInt(-10)}))

	stale := c
	stale.Version = 7
	suite.ErrorIs(suite.store.DeleteCheck(suite.ctx, stale, map[string]decimal.Decimal{"cb1": decimal.NewFromInt(10)}), apperrors.ErrConflict)

	suite.Require().NoError(suite.store.DeleteCheck(suite.ctx, c, map[string]decimal.Decimal{"cb1": decimal.NewFromInt(10)}))
	suite.True(decimal.NewFromInt(1000).Equal(suite.balance("cb1")))
}

func (suite *StoreTestSuite) TestListChecks_OrderAndPaging() {
	for _, n := range []string{"10", "9", "100"} {
		suite.Require().NoError(suite.store.SaveCheck(suite.ctx, suite.check("c"+n, "cb1", n, domain.CheckPending), nil))
	}
	early := suite.check("early", "cb2", "50", domain.CheckVoid)
	early.DueDate = domain.NewDate(2024, time.March, 1)
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, early, nil))

	all, err := suite.store.ListAllChecks(suite.ctx, domain.CheckFilter{})
	suite.Require().NoError(err)
	var numbers []string
	for _, c := range all {
		numbers = append(numbers, c.Number)
	}
	suite.Equal([]string{"50", "9", "10", "100"}, numbers)

	page, total, err := suite.store.ListChecks(suite.ctx, domain.CheckFilter{}, 2, 2)
	suite.Require().NoError(err)
	suite.EqualValues(4, total)
	suite.Require().Len(page, 2)
	suite.Equal("10", page[0].Number)

	page, total, err = suite.store.ListChecks(suite.ctx, domain.CheckFilter{}, 2, 10)
	suite.Require().NoError(err)
	suite.EqualValues(4, total)
	suite.Empty(page)

	// A negative offset is treated as past the end instead of slicing backwards.
	page, total, err = suite.store.ListChecks(suite.ctx, domain.CheckFilter{}, 2, -16)
	suite.Require().NoError(err)
	suite.EqualValues(4, total)
	suite.Empty(page)
}

func (suite *StoreTestSuite) TestSumAmountsByStatus() {
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, suite.check("c1", "cb1", "1", domain.CheckPending), nil))
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, suite.check("c2", "cb1", "2", domain.CheckPending), nil))
	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, suite.check("c3", "cb1", "3", domain.CheckVoid), nil))

	sums, err := suite.store.SumAmountsByStatus(suite.ctx, domain.CheckFilter{Search: "PAYEE C"})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(20).Equal(sums[domain.CheckPending]))
	suite.True(decimal.NewFromInt(10).Equal(sums[domain.CheckVoid]))
	_, ok := sums[domain.CheckCashed]
	suite.False(ok)
}

func (suite *StoreTestSuite) TestUpdateCheckbook_IgnoresBalances() {
	cb, err := suite.store.FindCheckbookByID(suite.ctx, "cb1")
	suite.Require().NoError(err)
	changed := cb.Checkbook
	changed.CurrentBalance = decimal.NewFromInt(1)
	changed.InitialBalance = decimal.NewFromInt(1)
	changed.IsActive = false
	suite.Require().NoError(suite.store.UpdateCheckbook(suite.ctx, changed))

	reloaded, err := suite.store.FindCheckbookByID(suite.ctx, "cb1")
	suite.Require().NoError(err)
	suite.False(reloaded.IsActive)
	suite.True(decimal.NewFromInt(1000).Equal(reloaded.CurrentBalance))
	suite.True(decimal.NewFromInt(1000).Equal(reloaded.InitialBalance))
}

func (suite *StoreTestSuite) TestDeletes_BlockedByDependents() {
	suite.ErrorIs(suite.store.DeleteBank(suite.ctx, "b1"), apperrors.ErrHasDependents)

	suite.Require().NoError(suite.store.SaveCheck(suite.ctx, suite.check("c1", "cb1", "1", domain.CheckPending), nil))
	suite.ErrorIs(suite.store.DeleteCheckbook(suite.ctx, "cb1"), apperrors.ErrHasDependents)
	suite.NoError(suite.store.DeleteCheckbook(suite.ctx, "cb2"))
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
