// Package report renders check listings and cash-flow pivots as xlsx workbooks.
// Totals live here: the pivot it receives carries only per-bank cells.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/SscSPs/cheque_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the export workbook.
const (
	DetailSheet   = "Detail"
	CashFlowSheet = "Cash flow"
	TotalLabel    = "Total"
)

// amountFormat is the built-in "#,##0.00" number format.
const amountFormat = 4

var detailHeader = []string{"Due date", "Issue date", "Bank", "Checkbook", "Number", "Payee", "Memo", "Status", "Amount"}

// Meta carries document-level information for the workbook.
type Meta struct {
	GeneratedAt time.Time
}

type styles struct {
	header int
	amount int
	total  int
}

// WriteCashFlowWorkbook writes a workbook with a detail sheet (subtotal per due date plus a
// grand total) and a cash-flow sheet (pivot plus a Total column and a Total row) to w.
func WriteCashFlowWorkbook(w io.Writer, checks []domain.CheckDetail, pivot domain.CashFlowPivot, meta Meta) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DetailSheet); err != nil {
		return fmt.Errorf("failed to name detail sheet: %w", err)
	}
	if _, err := f.NewSheet(CashFlowSheet); err != nil {
		return fmt.Errorf("failed to create cash flow sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}
	if err := writeDetail(f, st, checks); err != nil {
		return fmt.Errorf("failed to write detail sheet: %w", err)
	}
	if err := writeCashFlow(f, st, pivot); err != nil {
		return fmt.Errorf("failed to write cash flow sheet: %w", err)
	}

	if !meta.GeneratedAt.IsZero() {
		if err := f.SetDocProps(&excelize.DocProperties{
			Title:   "Checks cash flow",
			Created: meta.GeneratedAt.Format(time.RFC3339),
		}); err != nil {
			return fmt.Errorf("failed to set document properties: %w", err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	if st.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return st, fmt.Errorf("failed to create header style: %w", err)
	}
	if st.amount, err = f.NewStyle(&excelize.Style{NumFmt: amountFormat}); err != nil {
		return st, fmt.Errorf("failed to create amount style: %w", err)
	}
	if st.total, err = f.NewStyle(&excelize.Style{NumFmt: amountFormat, Font: &excelize.Font{Bold: true}}); err != nil {
		return st, fmt.Errorf("failed to create total style: %w", err)
	}
	return st, nil
}

func writeDetail(f *excelize.File, st styles, checks []domain.CheckDetail) error {
	sorted := make([]domain.CheckDetail, len(checks))
	copy(sorted, checks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].DueDate.Compare(sorted[j].DueDate); c != 0 {
			return c < 0
		}
		return numberLess(sorted[i].Number, sorted[j].Number)
	})

	if err := writeRow(f, DetailSheet, 1, toAny(detailHeader)); err != nil {
		return err
	}
	if err := styleRow(f, DetailSheet, 1, len(detailHeader), st.header); err != nil {
		return err
	}

	amountCol := len(detailHeader)
	row := 2
	grand := decimal.Zero
	for i := 0; i < len(sorted); {
		due := sorted[i].DueDate
		subtotal := decimal.Zero
		for ; i < len(sorted) && sorted[i].DueDate == due; i++ {
			c := sorted[i]
			bank := c.Bank.Name
			if bank == "" {
				bank = domain.NoBankLabel
			}
			values := []any{c.DueDate.String(), c.IssueDate.String(), bank, c.Checkbook.Number, c.Number,
				c.Payee, c.Memo, string(c.Status), c.Amount.InexactFloat64()}
			if err := writeRow(f, DetailSheet, row, values); err != nil {
				return err
			}
			if err := styleCell(f, DetailSheet, amountCol, row, st.amount); err != nil {
				return err
			}
			subtotal = subtotal.Add(c.Amount)
			row++
		}
		if err := writeLabelledAmount(f, DetailSheet, row, "Subtotal "+due.String(), amountCol, subtotal, st.total); err != nil {
			return err
		}
		grand = grand.Add(subtotal)
		row++
	}
	if err := writeLabelledAmount(f, DetailSheet, row, TotalLabel, amountCol, grand, st.total); err != nil {
		return err
	}

	return f.SetColWidth(DetailSheet, "A", "I", 16)
}

func writeCashFlow(f *excelize.File, st styles, pivot domain.CashFlowPivot) error {
	header := make([]any, 0, len(pivot.Banks)+2)
	header = append(header, "Due date")
	for _, b := range pivot.Banks {
		header = append(header, b)
	}
	header = append(header, TotalLabel)
	if err := writeRow(f, CashFlowSheet, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, CashFlowSheet, 1, len(header), st.header); err != nil {
		return err
	}

	totalCol := len(pivot.Banks) + 2
	columnTotals := make([]decimal.Decimal, len(pivot.Banks))
	grand := decimal.Zero
	row := 2
	for _, r := range pivot.Rows {
		values := make([]any, 0, len(header))
		values = append(values, r.DueDate.String())
		rowTotal := decimal.Zero
		for j, b := range pivot.Banks {
			cell := r.Cells[b]
			values = append(values, cell.InexactFloat64())
			rowTotal = rowTotal.Add(cell)
			columnTotals[j] = columnTotals[j].Add(cell)
		}
		values = append(values, rowTotal.InexactFloat64())
		grand = grand.Add(rowTotal)

		if err := writeRow(f, CashFlowSheet, row, values); err != nil {
			return err
		}
		if err := styleRange(f, CashFlowSheet, 2, row, totalCol-1, row, st.amount); err != nil {
			return err
		}
		if err := styleCell(f, CashFlowSheet, totalCol, row, st.total); err != nil {
			return err
		}
		row++
	}

	totals := make([]any, 0, len(header))
	totals = append(totals, TotalLabel)
	for _, t := range columnTotals {
		totals = append(totals, t.InexactFloat64())
	}
	totals = append(totals, grand.InexactFloat64())
	if err := writeRow(f, CashFlowSheet, row, totals); err != nil {
		return err
	}
	if err := styleRange(f, CashFlowSheet, 1, row, totalCol, row, st.total); err != nil {
		return err
	}

	last, err := excelize.ColumnNumberToName(totalCol)
	if err != nil {
		return err
	}
	return f.SetColWidth(CashFlowSheet, "A", last, 16)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeLabelledAmount(f *excelize.File, sheet string, row int, label string, amountCol int, amount decimal.Decimal, style int) error {
	labelCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	amountCell, err := excelize.CoordinatesToCellName(amountCol, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, labelCell, label); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, amountCell, amount.InexactFloat64()); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, labelCell, amountCell, style)
}

func styleRow(f *excelize.File, sheet string, row, cols, style int) error {
	return styleRange(f, sheet, 1, row, cols, row, style)
}

func styleCell(f *excelize.File, sheet string, col, row, style int) error {
	return styleRange(f, sheet, col, row, col, row, style)
}

func styleRange(f *excelize.File, sheet string, fromCol, fromRow, toCol, toRow, style int) error {
	if toCol < fromCol {
		return nil
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// numberLess orders canonical integer strings numerically.
func numberLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
