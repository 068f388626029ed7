package main

import (
	"strings"
	"testing"
	"time"

	"github.com/govalues/decimal"
)

func TestFormatThaiDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"single digit day and month", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), "5/1/2569"},
		{"double digit day and month", time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), "25/12/2569"},
		{"leap year date", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "29/2/2567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatThaiDate(tt.date)
			if got != tt.expected {
				t.Errorf("formatThaiDate(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.expected)
			}
		})
	}
}

func TestMonthLabel(t *testing.T) {
	if got := monthLabel(2026, time.October); got != "ตุลาคม 2569" {
		t.Errorf("monthLabel(2026, October) = %q, want %q", got, "ตุลาคม 2569")
	}
	if got := monthLabel(2026, 0); got != "" {
		t.Errorf("monthLabel(2026, 0) = %q, want empty", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "0.00"},
		{"integer amount", 14, "14.00"},
		{"decimal amount", 30.6, "30.60"},
		{"grouped amount", 1234.56, "1,234.56"},
		{"million", 1000000, "1,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatAmount(tt.amount)
			if got != tt.expected {
				t.Errorf("formatAmount(%v) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "0.00"},
		{"0.05", "0.05"},
		{"1234.5", "1,234.50"},
		{"14100.25", "14,100.25"},
		{"9007199254740993.01", "9,007,199,254,740,993.01"},
		{"-250.75", "-250.75"},
		{"-0.5", "-0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := formatDecimal(decimal.MustParse(tt.amount))
			if got != tt.expected {
				t.Errorf("formatDecimal(%s) = %q, want %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatOptional(t *testing.T) {
	if got := formatOptional(0); got != "-" {
		t.Errorf("formatOptional(0) = %q, want -", got)
	}
	if got := formatOptional(250); got != "250.00" {
		t.Errorf("formatOptional(250) = %q, want 250.00", got)
	}
}

func TestDocumentID(t *testing.T) {
	id := documentID("PV", time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC))

	if !strings.HasPrefix(id, "PV-2026-02-") {
		t.Errorf("documentID = %q, want prefix PV-2026-02-", id)
	}

	// "PV-2026-02-XXXXXX" = 17
	if len(id) != 17 {
		t.Errorf("documentID length = %d, want 17", len(id))
	}

	suffix := id[11:]
	for _, c := range suffix {
		if !((c >= 'A' && c <= 'F') || (c >= '0' && c <= '9')) {
			t.Errorf("documentID suffix %q contains invalid character %c", suffix, c)
		}
	}
}

func TestSumAmounts(t *testing.T) {
	got, err := sumAmounts(0.1, 0.2)
	if err != nil {
		t.Fatalf("sumAmounts() error = %v", err)
	}
	if got.String() != "0.3" {
		t.Errorf("sumAmounts(0.1, 0.2) = %s, want 0.3", got)
	}

	got, err = sumAmounts()
	if err != nil || !got.IsZero() {
		t.Errorf("sumAmounts() = %s, %v, want 0", got, err)
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"สมชาย ใจดี", "สมชาย_ใจดี"},
		{"a/b\\c", "a_b_c"},
		{"  ", "unnamed"},
	}

	for _, tt := range tests {
		if got := safeFilename(tt.in); got != tt.expected {
			t.Errorf("safeFilename(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("พนักงานขับรถบรรทุก", 7); got != "พนักงาน" {
		t.Errorf("truncateRunes = %q, want พนักงาน", got)
	}
	if got := truncateRunes("short", 10); got != "short" {
		t.Errorf("truncateRunes = %q, want short", got)
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(" "); got != "-" {
		t.Errorf("orDash(blank) = %q, want -", got)
	}
	if got := orDash("x"); got != "x" {
		t.Errorf("orDash(x) = %q, want x", got)
	}
}
