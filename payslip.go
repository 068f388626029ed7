package main

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"

	"payrolldocs/bahttext"
)

// ---------------------------------------------------------------------------
// Payslip
// ---------------------------------------------------------------------------

// slipHeight is half an A4 page; two slips share a page.
const slipHeight = 148.5

// Payslip holds one employee's pay for a period.
type Payslip struct {
	Name        string  `yaml:"name"`
	Position    string  `yaml:"position"`
	Period      string  `yaml:"period"`
	Month       int     `yaml:"month"`
	Year        int     `yaml:"year"`
	Salary      float64 `yaml:"salary"`
	Incentive   float64 `yaml:"incentive"`
	Other       float64 `yaml:"other"`
	SSO         float64 `yaml:"sso"`
	Tax         float64 `yaml:"tax"`
	Advance     float64 `yaml:"advance"`
	Water       float64 `yaml:"water"`
	Electricity float64 `yaml:"electricity"`
	Net         float64 `yaml:"net"`
	Bank        string  `yaml:"bank"`
}

// payslipTotals are the computed sums printed on a slip.
type payslipTotals struct {
	Income    decimal.Decimal
	Deduction decimal.Decimal
	Utilities decimal.Decimal
	Net       decimal.Decimal
}

// totals sums income and deductions. A net pay supplied by the caller wins
// over the computed one.
func (p Payslip) totals() (payslipTotals, error) {
	var t payslipTotals
	var err error
	if t.Income, err = sumAmounts(p.Salary, p.Incentive, p.Other); err != nil {
		return t, err
	}
	if t.Deduction, err = sumAmounts(p.SSO, p.Tax, p.Advance, p.Water, p.Electricity); err != nil {
		return t, err
	}
	if t.Utilities, err = sumAmounts(p.Water, p.Electricity); err != nil {
		return t, err
	}
	if p.Net != 0 {
		t.Net, err = toDecimal(p.Net)
		return t, err
	}
	if t.Net, err = t.Income.Sub(t.Deduction); err != nil {
		return t, fmt.Errorf("computing net pay: %w", err)
	}
	return t, nil
}

var payslipColumns = []column{
	{Title: "รายการได้ (Income)", Width: 45, Align: alignLeft},
	{Title: "จำนวนเงิน", Width: 40, Align: alignRight},
	{Title: "รายการหัก (Deduction)", Width: 45, Align: alignLeft},
	{Title: "จำนวนเงิน", Width: 40, Align: alignRight},
}

// createPayslips renders two slips per A4 page with a dashed cut line.
func (g *generator) createPayslips(slips []Payslip) (Attachment, error) {
	if len(slips) == 0 {
		return Attachment{}, errors.New("no payslips to render")
	}

	r, err := g.newRenderer(portrait)
	if err != nil {
		return Attachment{}, err
	}

	for i := 0; i < len(slips); i += 2 {
		if i > 0 {
			r.addPage()
		}
		if err := g.drawSlip(r, slips[i], 0); err != nil {
			return Attachment{}, err
		}

		r.setDrawColor(colorCutLine)
		r.dashedLine(5, slipHeight, 205, slipHeight)
		r.setDrawColor(colorBlack)

		if i+1 < len(slips) {
			if err := g.drawSlip(r, slips[i+1], slipHeight); err != nil {
				return Attachment{}, err
			}
		}
	}

	data, err := r.bytes()
	if err != nil {
		return Attachment{}, err
	}

	filename := fmt.Sprintf("Payslip_Batch_%s.pdf", documentID("PS", g.now()))
	if len(slips) == 1 {
		filename = fmt.Sprintf("Payslip_%s.pdf", safeFilename(slips[0].Name))
	}
	return Attachment{Filename: filename, Data: data}, nil
}

func (g *generator) drawSlip(r *renderer, p Payslip, top float64) error {
	t, err := p.totals()
	if err != nil {
		return fmt.Errorf("payslip %q: %w", p.Name, err)
	}
	if t.Net.IsNeg() {
		return fmt.Errorf("payslip %q: %w: %s", p.Name, errNegativeNet, t.Net)
	}
	words, err := bahttext.Format(t.Net)
	if err != nil {
		return fmt.Errorf("payslip %q: %w", p.Name, err)
	}

	r.setFont(true, 16)
	r.text(20, top+15, g.company, alignLeft)
	r.text(190, top+15, "ใบแจ้งเงินเดือน / PAYSLIP", alignRight)

	r.setFont(false, 12)
	r.text(20, top+25, "ชื่อ-สกุล: "+orDash(p.Name), alignLeft)
	r.text(20, top+32, "ตำแหน่ง: "+orDash(p.Position), alignLeft)
	r.text(190, top+25, fmt.Sprintf("งวดที่: %s  เดือน: %d/%d", orDash(p.Period), p.Month, p.Year), alignRight)
	r.text(190, top+32, "วันที่พิมพ์: "+formatThaiDate(g.now()), alignRight)

	rows := [][]string{
		{"เงินเดือน", formatAmount(p.Salary), "ประกันสังคม", formatAmount(p.SSO)},
		{"ค่าล่วงเวลา/เบี้ยเลี้ยง", formatAmount(p.Incentive), "ภาษี", formatAmount(p.Tax)},
		{"อื่นๆ", formatAmount(p.Other), "เบิกล่วงหน้า", formatAmount(p.Advance)},
		{"", "", "ค่าน้ำ/ไฟ", formatDecimal(t.Utilities)},
		{"รวมรายได้", formatDecimal(t.Income), "รวมรายการหัก", formatDecimal(t.Deduction)},
	}
	last := len(rows) - 1
	y := r.table(top+38, tableSpec{
		X:          20,
		Columns:    payslipColumns,
		RowHeight:  6,
		FontSize:   11,
		HeaderFill: colorLightGrey,
		HeaderText: colorBlack,
		CellStyle: func(row, _ int, _ string) *cellStyle {
			if row == last {
				return &cellStyle{Bold: true}
			}
			return nil
		},
	}, rows)
	r.line(20, y, 190, y)

	boxY := y + 4
	r.fillBox(120, boxY, 70, 14, colorPanel)
	r.setFont(true, 14)
	r.text(124, boxY+9, "เงินได้สุทธิ (NET PAY)", alignLeft)
	r.text(186, boxY+9, formatDecimal(t.Net)+" บาท", alignRight)

	r.setFont(false, 11)
	r.text(190, boxY+20, "("+words+")", alignRight)

	r.setFont(false, 10)
	r.setTextColor(colorGrey)
	r.text(20, boxY+27, "โอนเข้าบัญชี: "+orDash(p.Bank), alignLeft)
	r.text(20, boxY+33, "หมายเหตุ: เอกสารนี้สร้างจากระบบอัตโนมัติ", alignLeft)
	r.setTextColor(colorBlack)
	return nil
}
