package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// ---------------------------------------------------------------------------
// Salary Summary
// ---------------------------------------------------------------------------

// SummaryRow is one employee line of the salary summary report.
type SummaryRow struct {
	Period         string  `yaml:"period"`
	Month          int     `yaml:"month"`
	Year           int     `yaml:"year"`
	Code           string  `yaml:"code"`
	Name           string  `yaml:"name"`
	Position       string  `yaml:"position"`
	Salary         float64 `yaml:"salary"`
	Compensation   float64 `yaml:"compensation"`
	Other          float64 `yaml:"other"`
	TotalIncome    float64 `yaml:"total_income"`
	TotalDeduction float64 `yaml:"total_deduction"`
	Net            float64 `yaml:"net"`
}

var summaryColumns = []column{
	{Title: "งวด", Width: 14, Align: alignCenter},
	{Title: "ด.", Width: 12, Align: alignCenter},
	{Title: "ปี", Width: 16, Align: alignCenter},
	{Title: "รหัส", Width: 20, Align: alignLeft},
	{Title: "ชื่อ-สกุล", Width: 45, Align: alignLeft},
	{Title: "ตำแหน่ง", Width: 35, Align: alignLeft},
	{Title: "เงินเดือน", Width: 22, Align: alignRight},
	{Title: "ค่าตอบแทน", Width: 22, Align: alignRight},
	{Title: "อื่นๆ", Width: 20, Align: alignRight},
	{Title: "รวมรับ", Width: 24, Align: alignRight},
	{Title: "รวมหัก", Width: 22, Align: alignRight},
	{Title: "สุทธิ", Width: 25, Align: alignRight},
}

const summaryNetColumn = 11

// summaryTotals sums the money columns (6 to 11) over all rows.
func summaryTotals(rows []SummaryRow) ([6]decimal.Decimal, error) {
	var totals [6]decimal.Decimal
	for _, row := range rows {
		values := [6]float64{row.Salary, row.Compensation, row.Other, row.TotalIncome, row.TotalDeduction, row.Net}
		for i, v := range values {
			d, err := toDecimal(v)
			if err != nil {
				return totals, fmt.Errorf("summary row %q: %w", row.Name, err)
			}
			if totals[i], err = totals[i].Add(d); err != nil {
				return totals, fmt.Errorf("summing salary summary: %w", err)
			}
		}
	}
	return totals, nil
}

// createSalarySummary renders the landscape salary summary table with a
// grand-total row.
func (g *generator) createSalarySummary(rows []SummaryRow) (Attachment, error) {
	if len(rows) == 0 {
		return Attachment{}, errors.New("no salary summary rows to render")
	}
	totals, err := summaryTotals(rows)
	if err != nil {
		return Attachment{}, err
	}

	r, err := g.newRenderer(landscape)
	if err != nil {
		return Attachment{}, err
	}

	r.setFont(true, 18)
	r.text(148.5, 15, g.company, alignCenter)
	r.setFont(false, 14)
	r.text(148.5, 23, "รายงานสรุปการจ่ายเงินเดือน", alignCenter)
	r.setFont(false, 12)
	r.text(287, 23, "วันที่พิมพ์: "+formatThaiDate(g.now()), alignRight)

	body := make([][]string, 0, len(rows)+1)
	for _, row := range rows {
		body = append(body, []string{
			row.Period,
			strconv.Itoa(row.Month),
			strconv.Itoa(row.Year),
			row.Code,
			row.Name,
			truncateRunes(row.Position, 15),
			formatAmount(row.Salary),
			formatAmount(row.Compensation),
			formatAmount(row.Other),
			formatAmount(row.TotalIncome),
			formatAmount(row.TotalDeduction),
			formatAmount(row.Net),
		})
	}
	totalRow := []string{"", "", "", "", "รวมทั้งสิ้น", fmt.Sprintf("%d คน", len(rows))}
	for _, t := range totals {
		totalRow = append(totalRow, formatDecimal(t))
	}
	body = append(body, totalRow)
	last := len(body) - 1

	r.table(30, tableSpec{
		X:          10,
		Columns:    summaryColumns,
		RowHeight:  7,
		FontSize:   10,
		HeaderFill: colorDark,
		HeaderText: colorWhite,
		Grid:       true,
		CellStyle: func(row, col int, _ string) *cellStyle {
			if row == last {
				return &cellStyle{Bold: true, Fill: &colorLightGrey}
			}
			if col == summaryNetColumn {
				return &cellStyle{Bold: true}
			}
			return nil
		},
	}, body)

	data, err := r.bytes()
	if err != nil {
		return Attachment{}, err
	}
	return Attachment{Filename: "Salary_Summary.pdf", Data: data}, nil
}
