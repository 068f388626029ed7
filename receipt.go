package main

import (
	"fmt"
	"time"

	"github.com/govalues/decimal"

	"payrolldocs/bahttext"
)

// ---------------------------------------------------------------------------
// Payment Voucher
// ---------------------------------------------------------------------------

// Receipt is a payment voucher for contract work with withholding tax.
type Receipt struct {
	ID      string    `yaml:"id"`
	Date    time.Time `yaml:"date"`
	EmpName string    `yaml:"emp_name"`
	JobName string    `yaml:"job_name"`
	Amount  float64   `yaml:"amount"`
	WHTRate float64   `yaml:"wht_rate"`
	Tax     float64   `yaml:"tax"`
	Net     float64   `yaml:"net"`
}

// settle returns the gross amount, the withholding tax and the net payment.
// Tax and net supplied by the caller are used as given; otherwise tax is
// WHTRate percent of the amount rounded to satang.
func (rc Receipt) settle() (amount, tax, net decimal.Decimal, err error) {
	if amount, err = toDecimal(rc.Amount); err != nil {
		return
	}

	if rc.Tax != 0 || rc.WHTRate == 0 {
		tax, err = toDecimal(rc.Tax)
	} else {
		var rate decimal.Decimal
		if rate, err = toDecimal(rc.WHTRate); err != nil {
			return
		}
		if tax, err = amount.Mul(rate); err != nil {
			return
		}
		if tax, err = tax.Quo(hundred); err != nil {
			return
		}
		tax = tax.Round(2)
	}
	if err != nil {
		return
	}

	if rc.Net != 0 {
		net, err = toDecimal(rc.Net)
		return
	}
	net, err = amount.Sub(tax)
	return
}

var hundred = decimal.MustNew(100, 0)

var receiptColumns = []column{
	{Title: "ลำดับ", Width: 20, Align: alignCenter},
	{Title: "รายการ", Width: 110, Align: alignLeft},
	{Title: "จำนวนเงิน (บาท)", Width: 40, Align: alignRight},
}

// createReceipt renders a payment voucher with the net amount in Thai words.
func (g *generator) createReceipt(rc Receipt) (Attachment, error) {
	amount, tax, net, err := rc.settle()
	if err != nil {
		return Attachment{}, fmt.Errorf("voucher %q: %w", rc.ID, err)
	}
	if net.IsNeg() {
		return Attachment{}, fmt.Errorf("voucher %q: %w: %s", rc.ID, errNegativeNet, net)
	}
	words, err := bahttext.Format(net)
	if err != nil {
		return Attachment{}, fmt.Errorf("voucher %q: %w", rc.ID, err)
	}

	date := rc.Date
	if date.IsZero() {
		date = g.now()
	}
	if rc.ID == "" {
		rc.ID = documentID("PV", date)
	}

	r, err := g.newRenderer(portrait)
	if err != nil {
		return Attachment{}, err
	}

	r.setFont(true, 20)
	r.text(105, 20, "ใบสำคัญจ่าย (Payment Voucher)", alignCenter)
	r.setFont(false, 14)
	r.text(105, 28, g.company, alignCenter)

	r.box(20, 35, 170, 32)
	r.text(25, 44, "เลขที่เอกสาร: "+rc.ID, alignLeft)
	r.text(120, 44, "วันที่: "+formatThaiDate(date), alignLeft)
	r.text(25, 52, "จ่ายให้: "+orDash(rc.EmpName), alignLeft)
	r.text(25, 60, "ชื่องาน: "+orDash(rc.JobName), alignLeft)

	rows := [][]string{
		{"1", orDash(rc.JobName), formatDecimal(amount)},
		{"", fmt.Sprintf("หักภาษี ณ ที่จ่าย (%s%%)", formatRate(rc.WHTRate)), formatDecimal(tax)},
		{"", "ยอดจ่ายสุทธิ", formatDecimal(net)},
	}
	last := len(rows) - 1
	y := r.table(75, tableSpec{
		X:          20,
		Columns:    receiptColumns,
		RowHeight:  9,
		FontSize:   14,
		HeaderFill: colorLightGrey,
		HeaderText: colorBlack,
		Grid:       true,
		CellStyle: func(row, _ int, _ string) *cellStyle {
			if row == last {
				return &cellStyle{Bold: true}
			}
			return nil
		},
	}, rows)

	y += 10
	r.setFont(false, 14)
	r.text(25, y, "จำนวนเงิน (ตัวอักษร): "+words, alignLeft)
	r.line(20, y+3, 190, y+3)
	r.line(20, y+4, 190, y+4)

	y += 40
	r.setFont(false, 12)
	r.text(60, y, "....................................................", alignCenter)
	r.text(60, y+8, "ผู้จ่ายเงิน", alignCenter)
	r.text(150, y, "....................................................", alignCenter)
	r.text(150, y+8, "ผู้รับเงิน", alignCenter)
	r.text(150, y+16, "( "+orDash(rc.EmpName)+" )", alignCenter)

	data, err := r.bytes()
	if err != nil {
		return Attachment{}, err
	}
	return Attachment{Filename: fmt.Sprintf("Voucher_%s.pdf", safeFilename(rc.ID)), Data: data}, nil
}

// formatRate prints a percentage without trailing zeros, e.g. 3 or 1.5.
func formatRate(rate float64) string {
	d, err := toDecimal(rate)
	if err != nil {
		return "0"
	}
	return d.Trim(0).String()
}
