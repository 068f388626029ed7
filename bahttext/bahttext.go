// Package bahttext renders monetary amounts as Thai words, the way Thai
// receipts and vouchers print the "amount in words" line.
//
//	bahttext.Text(1250.5) // หนึ่งพันสองร้อยห้าสิบบาทห้าสิบสตางค์
//	bahttext.Text(21)     // ยี่สิบเอ็ดบาทถ้วน
//	bahttext.Text(nil)    // ""
//
// Amounts are rounded to satang (2 decimal places, halves away from zero)
// before they are read. Floats are rounded on their exact binary value, the
// same result fixed 2-decimal formatting gives. Negative amounts are not
// supported.
package bahttext

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var (
	ErrNegativeAmount = errors.New("negative amount not supported")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrOutOfRange     = errors.New("amount out of range")
)

const (
	wordBaht    = "บาท"
	wordSatang  = "สตางค์"
	wordExact   = "ถ้วน"
	wordTen     = "สิบ"
	wordYi      = "ยี่"
	wordEt      = "เอ็ด"
	wordMillion = "ล้าน"
)

var digitWords = [10]string{
	"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า",
}

// placeWords is indexed by position within a six-digit group.
var placeWords = [6]string{"", wordTen, "ร้อย", "พัน", "หมื่น", "แสน"}

// thaiDigits maps Thai numerals to ASCII digits.
var thaiDigits = strings.NewReplacer(
	"๐", "0", "๑", "1", "๒", "2", "๓", "3", "๔", "4",
	"๕", "5", "๖", "6", "๗", "7", "๘", "8", "๙", "9",
)

// Text returns the Thai reading of v, or "" when v is nil, not a number,
// negative or too large. Numeric strings, json.Number, decimal.Decimal and
// all Go integer and float kinds are accepted.
func Text(v any) string {
	var (
		s   string
		err error
	)
	switch x := v.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		s, err = Format(x)
	case *decimal.Decimal:
		if x == nil {
			return ""
		}
		s, err = Format(*x)
	case float64:
		s, err = FormatFloat(x)
	case *float64:
		if x == nil {
			return ""
		}
		s, err = FormatFloat(*x)
	case float32:
		s, err = FormatFloat(float64(x))
	case int:
		s, err = formatInt64(int64(x))
	case int8:
		s, err = formatInt64(int64(x))
	case int16:
		s, err = formatInt64(int64(x))
	case int32:
		s, err = formatInt64(int64(x))
	case int64:
		s, err = formatInt64(x)
	case uint:
		s, err = Parse(strconv.FormatUint(uint64(x), 10))
	case uint8:
		s, err = formatInt64(int64(x))
	case uint16:
		s, err = formatInt64(int64(x))
	case uint32:
		s, err = formatInt64(int64(x))
	case uint64:
		s, err = Parse(strconv.FormatUint(x, 10))
	case json.Number:
		s, err = Parse(string(x))
	case string:
		s, err = Parse(x)
	default:
		return ""
	}
	if err != nil {
		return ""
	}
	return s
}

// Format returns the Thai reading of d rounded to satang.
func Format(d decimal.Decimal) (string, error) {
	if d.IsNeg() {
		return "", ErrNegativeAmount
	}
	if d.Scale() > 2 {
		r, err := d.Add(halfSatang)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrOutOfRange, d)
		}
		d = r.Trunc(2)
	}
	whole, frac, ok := d.Int64(2)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, d)
	}

	var b strings.Builder
	readNumber(&b, strconv.FormatInt(whole, 10))
	b.WriteString(wordBaht)
	if frac == 0 {
		b.WriteString(wordExact)
		return b.String(), nil
	}
	readDigits(&b, fmt.Sprintf("%02d", frac))
	b.WriteString(wordSatang)
	return b.String(), nil
}

var halfSatang = decimal.MustNew(5, 3)

// FormatFloat is like Format for a binary floating-point amount. 1.015 is
// stored just below 1.015 and so reads one satang, not two.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidAmount, f)
	}
	if f < 0 {
		return "", ErrNegativeAmount
	}
	satang, ok := roundSatang(f)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}
	d, err := decimal.New(satang, 2)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	return Format(d)
}

// roundSatang returns f*100 rounded half up, computed exactly on the binary
// value of f. f must be finite and non-negative.
func roundSatang(f float64) (int64, bool) {
	r := new(big.Rat).SetFloat64(f)
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// Parse reads a decimal string such as "1,250.50" or "๑๒๕๐" and formats it.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(thaiDigits.Replace(s))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return "", ErrInvalidAmount
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Format(d)
}

// Digits returns the Thai reading of a string of decimal digits without any
// currency words, e.g. "21" reads ยี่สิบเอ็ด. Leading zeros are ignored.
// It returns "" if s is empty or contains anything but ASCII digits.
func Digits(s string) string {
	if s == "" {
		return ""
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ""
		}
	}
	var b strings.Builder
	readNumber(&b, s)
	return b.String()
}

func formatInt64(n int64) (string, error) {
	if n < 0 {
		return "", ErrNegativeAmount
	}
	d, err := decimal.New(n, 0)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, err)
	}
	return Format(d)
}

// readNumber writes the reading of the digit string s, most significant
// digit first. Leading zeros are dropped; an all-zero string reads ศูนย์.
func readNumber(b *strings.Builder, s string) {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		b.WriteString(digitWords[0])
		return
	}
	readDigits(b, s)
}

// readDigits walks s as given, so a satang pair keeps its leading zero and
// "01" reads เอ็ด. Place values repeat every six digits, with ล้าน closing
// each group above the units group.
func readDigits(b *strings.Builder, s string) {
	n := len(s)
	for i := 0; i < n; i++ {
		digit := int(s[i] - '0')
		place := n - i - 1
		pos := place % 6

		switch {
		case digit == 0:
		case pos == 1 && digit == 1 && n > 1:
			b.WriteString(wordTen)
		case pos == 1 && digit == 2:
			b.WriteString(wordYi)
			b.WriteString(wordTen)
		case pos == 0 && digit == 1 && i > 0 && n > 1:
			b.WriteString(wordEt)
		default:
			b.WriteString(digitWords[digit])
			b.WriteString(placeWords[pos])
		}

		if pos == 0 && place > 0 {
			b.WriteString(wordMillion)
		}
	}
}
