package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ---------------------------------------------------------------------------
// Document Helpers
// ---------------------------------------------------------------------------

// buddhistEraOffset converts a Gregorian year to the Thai solar calendar.
const buddhistEraOffset = 543

var thaiMonthNames = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var thaiPrinter = message.NewPrinter(language.Thai)

// documentID generates a document reference number.
// Format: PREFIX-YYYY-MM-XXXXXX (e.g., PV-2026-10-A7K2F0)
func documentID(prefix string, t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("%s-%d-%02d-%s", prefix, t.Year(), t.Month(), suffix)
}

// formatThaiDate formats a date as D/M/YYYY with a Buddhist-era year.
func formatThaiDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), t.Month(), t.Year()+buddhistEraOffset)
}

// monthLabel returns e.g. "ตุลาคม 2569" for October 2026.
func monthLabel(year int, month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return fmt.Sprintf("%s %d", thaiMonthNames[month-1], year+buddhistEraOffset)
}

// errNegativeNet rejects a payslip or voucher whose deductions exceed the
// amount paid; its net cannot be printed in words.
var errNegativeNet = errors.New("net pay is negative")

// formatAmount formats a baht amount with Thai digit grouping and two decimals.
func formatAmount(amount float64) string {
	return thaiPrinter.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// formatDecimal is formatAmount for exact amounts. Whole baht are grouped as
// an integer so no digit passes through a float.
func formatDecimal(d decimal.Decimal) string {
	whole, frac, ok := d.Round(2).Int64(2)
	if !ok {
		return d.Round(2).String()
	}
	sign := ""
	if whole < 0 || frac < 0 {
		sign, whole, frac = "-", -whole, -frac
	}
	return fmt.Sprintf("%s%s.%02d", sign, thaiPrinter.Sprint(number.Decimal(whole)), frac)
}

// formatOptional renders zero as "-", the way ledger columns show empty sides.
func formatOptional(amount float64) string {
	if amount <= 0 {
		return "-"
	}
	return formatAmount(amount)
}

// toDecimal converts a float amount from the input data to an exact decimal.
func toDecimal(f float64) (decimal.Decimal, error) {
	d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %v: %w", f, err)
	}
	return d, nil
}

// sumAmounts adds amounts exactly.
func sumAmounts(amounts ...float64) (decimal.Decimal, error) {
	var total decimal.Decimal
	for _, a := range amounts {
		d, err := toDecimal(a)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if total, err = total.Add(d); err != nil {
			return decimal.Decimal{}, fmt.Errorf("summing amounts: %w", err)
		}
	}
	return total, nil
}

// orDash returns "-" for an empty string.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// safeFilename replaces characters that cannot appear in a file name.
func safeFilename(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unnamed"
	}
	return filenameReplacer.Replace(s)
}

var filenameReplacer = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_", " ", "_",
)

// truncateRunes shortens s to at most n characters.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
