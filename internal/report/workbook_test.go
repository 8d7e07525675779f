package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func detail(number, bank string, due domain.Date, amount string) domain.CheckDetail {
	return domain.CheckDetail{
		Check: domain.Check{
			CheckID:   "chk-" + number,
			Number:    number,
			IssueDate: due.AddDays(-10),
			DueDate:   due,
			Payee:     "Payee " + number,
			Amount:    decimal.RequireFromString(amount),
			Status:    domain.CheckPending,
		},
		Checkbook: domain.Checkbook{Number: "CB-1"},
		Bank:      domain.Bank{BankID: "bank-" + bank, Name: bank},
	}
}

func openWorkbook(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteCashFlowWorkbook_DetailSubtotals(t *testing.T) {
	d1 := domain.NewDate(2026, time.March, 1)
	d2 := domain.NewDate(2026, time.March, 2)
	checks := []domain.CheckDetail{
		detail("10", "Alpha", d2, "50.25"),
		detail("2", "Alpha", d1, "100"),
		detail("9", "Beta", d1, "200.50"),
	}
	pivot := domain.CashFlowPivot{
		Banks: []string{"Alpha", "Beta"},
		Rows: []domain.CashFlowRow{
			{DueDate: d1, Cells: map[string]decimal.Decimal{"Alpha": decimal.NewFromInt(100), "Beta": decimal.RequireFromString("200.50")}},
			{DueDate: d2, Cells: map[string]decimal.Decimal{"Alpha": decimal.RequireFromString("50.25"), "Beta": decimal.Zero}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCashFlowWorkbook(&buf, checks, pivot, Meta{GeneratedAt: time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)}))

	f := openWorkbook(t, &buf)
	assert.Equal(t, []string{DetailSheet, CashFlowSheet}, f.GetSheetList())

	rows, err := f.GetRows(DetailSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 7) // header, 2 checks + subtotal, 1 check + subtotal, total

	assert.Equal(t, "Due date", rows[0][0])
	assert.Equal(t, "2", rows[1][4], "numbers sort numerically within a due date")
	assert.Equal(t, "9", rows[2][4])
	assert.Equal(t, "Subtotal 2026-03-01", rows[3][0])
	assert.Equal(t, "300.5", rows[3][8])
	assert.Equal(t, "10", rows[4][4])
	assert.Equal(t, "Subtotal 2026-03-02", rows[5][0])
	assert.Equal(t, "50.25", rows[5][8])
	assert.Equal(t, TotalLabel, rows[6][0])
	assert.Equal(t, "350.75", rows[6][8])
}

func TestWriteCashFlowWorkbook_PivotTotals(t *testing.T) {
	d1 := domain.NewDate(2026, time.March, 1)
	d2 := domain.NewDate(2026, time.March, 2)
	pivot := domain.CashFlowPivot{
		Banks: []string{"Alpha", "Beta"},
		Rows: []domain.CashFlowRow{
			{DueDate: d1, Cells: map[string]decimal.Decimal{"Alpha": decimal.NewFromInt(100), "Beta": decimal.NewFromInt(200)}},
			{DueDate: d2, Cells: map[string]decimal.Decimal{"Alpha": decimal.NewFromInt(50), "Beta": decimal.Zero}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCashFlowWorkbook(&buf, nil, pivot, Meta{}))

	f := openWorkbook(t, &buf)
	rows, err := f.GetRows(CashFlowSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Due date", "Alpha", "Beta", TotalLabel}, rows[0])
	assert.Equal(t, []string{"2026-03-01", "100", "200", "300"}, rows[1])
	assert.Equal(t, []string{"2026-03-02", "50", "0", "50"}, rows[2])
	assert.Equal(t, []string{TotalLabel, "150", "200", "350"}, rows[3])
}

func TestWriteCashFlowWorkbook_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCashFlowWorkbook(&buf, nil, domain.CashFlowPivot{}, Meta{}))

	f := openWorkbook(t, &buf)
	detailRows, err := f.GetRows(DetailSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, detailRows, 2)
	assert.Equal(t, TotalLabel, detailRows[1][0])
	assert.Equal(t, "0", detailRows[1][8])

	flowRows, err := f.GetRows(CashFlowSheet, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, flowRows, 2)
	assert.Equal(t, []string{"Due date", TotalLabel}, flowRows[0])
	assert.Equal(t, []string{TotalLabel, "0"}, flowRows[1])
}
