package main

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// ---------------------------------------------------------------------------
// Ledger
// ---------------------------------------------------------------------------

// LedgerEntry is one income or expense line.
type LedgerEntry struct {
	Date        string  `yaml:"date"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Income      float64 `yaml:"income"`
	Expense     float64 `yaml:"expense"`
}

// LedgerSummary holds the totals shown on the summary cards.
type LedgerSummary struct {
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Ledger is the batch-file form of a ledger report.
type Ledger struct {
	Label   string        `yaml:"label"`
	Entries []LedgerEntry `yaml:"entries"`
}

// summarizeLedger totals income and expense and their balance.
func summarizeLedger(label string, entries []LedgerEntry) (LedgerSummary, error) {
	s := LedgerSummary{Label: label}
	for _, e := range entries {
		inc, err := toDecimal(e.Income)
		if err != nil {
			return s, err
		}
		exp, err := toDecimal(e.Expense)
		if err != nil {
			return s, err
		}
		if s.Income, err = s.Income.Add(inc); err != nil {
			return s, fmt.Errorf("summing income: %w", err)
		}
		if s.Expense, err = s.Expense.Add(exp); err != nil {
			return s, fmt.Errorf("summing expense: %w", err)
		}
	}
	net, err := s.Income.Sub(s.Expense)
	if err != nil {
		return s, fmt.Errorf("computing balance: %w", err)
	}
	s.Net = net
	return s, nil
}

var ledgerColumns = []column{
	{Title: "วันที่", Width: 30, Align: alignCenter},
	{Title: "รายการ", Width: 120, Align: alignLeft},
	{Title: "หมวดหมู่", Width: 47, Align: alignLeft},
	{Title: "รายรับ", Width: 40, Align: alignRight},
	{Title: "รายจ่าย", Width: 40, Align: alignRight},
}

const (
	ledgerIncomeColumn  = 3
	ledgerExpenseColumn = 4
)

// createLedger renders the summary cards and the striped transaction table.
func (g *generator) createLedger(summary LedgerSummary, entries []LedgerEntry) (Attachment, error) {
	if len(entries) == 0 {
		return Attachment{}, errors.New("no ledger entries to render")
	}

	r, err := g.newRenderer(landscape)
	if err != nil {
		return Attachment{}, err
	}

	r.setFont(true, 20)
	r.text(148.5, 15, "สรุปรายรับ-รายจ่าย", alignCenter)
	r.setFont(false, 14)
	r.text(148.5, 23, summary.Label, alignCenter)

	drawCard(r, "รายรับรวม", summary.Income, 40, colorIncome)
	drawCard(r, "รายจ่ายรวม", summary.Expense, 120, colorExpense)
	drawCard(r, "คงเหลือ", summary.Net, 200, colorBalance)
	r.setTextColor(colorBlack)

	body := make([][]string, 0, len(entries))
	for _, e := range entries {
		body = append(body, []string{
			e.Date,
			truncateRunes(e.Description, 60),
			orDash(e.Category),
			formatOptional(e.Income),
			formatOptional(e.Expense),
		})
	}

	r.table(60, tableSpec{
		X:          10,
		Columns:    ledgerColumns,
		RowHeight:  8,
		FontSize:   10,
		HeaderFill: colorSlate,
		HeaderText: colorWhite,
		Stripe:     &colorStripe,
		CellStyle: func(_, col int, value string) *cellStyle {
			if value == "-" {
				return nil
			}
			switch col {
			case ledgerIncomeColumn:
				return &cellStyle{TextColor: &colorIncome}
			case ledgerExpenseColumn:
				return &cellStyle{TextColor: &colorExpense}
			}
			return nil
		},
	}, body)

	data, err := r.bytes()
	if err != nil {
		return Attachment{}, err
	}
	return Attachment{Filename: "Ledger_Report.pdf", Data: data}, nil
}

func drawCard(r *renderer, label string, value decimal.Decimal, x float64, c rgb) {
	r.fillBox(x, 30, 50, 20, c)
	r.setTextColor(colorWhite)
	r.setFont(false, 12)
	r.text(x+5, 37, label, alignLeft)
	r.setFont(true, 16)
	r.text(x+45, 45, formatDecimal(value), alignRight)
}
