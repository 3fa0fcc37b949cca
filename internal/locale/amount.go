// Package locale parses and formats the amount and date notations found in
// German, English and ISO statement exports.
package locale

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyNoise = regexp.MustCompile(`[€$£¥₣₤₹₺₽₩฿₫₴₸₼₪'\s\x{00A0}\x{202F}]|(?i:CHF|EUR|USD|GBP)`)
	zeroLiterals  = map[string]struct{}{"0": {}, "0.00": {}, "0,00": {}}
)

// ParseFlexibleAmount converts an amount written with either comma or dot as
// decimal separator. Whichever separator appears last is the decimal point;
// the other one is treated as thousands grouping. A separator that occurs more
// than once without the other being present is grouping as well ("1.234.567").
//
// Empty or unparsable input yields zero. Use IsZeroLiteral on the raw text to
// tell a genuine zero from garbage.
func ParseFlexibleAmount(text string) decimal.Decimal {
	normalized, ok := normalizeAmount(text)
	if !ok {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// ParseAmountField parses a required amount cell. The boolean is false when
// the cell is empty or does not hold a number.
func ParseAmountField(text string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, false
	}

	amount := ParseFlexibleAmount(trimmed)
	if amount.IsZero() && !IsZeroLiteral(trimmed) {
		return decimal.Zero, false
	}
	return amount, true
}

// IsZeroLiteral reports whether text spells out a zero amount.
func IsZeroLiteral(text string) bool {
	_, ok := zeroLiterals[strings.TrimSpace(text)]
	return ok
}

func normalizeAmount(text string) (string, bool) {
	s := currencyNoise.ReplaceAllString(strings.TrimSpace(text), "")
	if s == "" {
		return "", false
	}

	negative := false
	switch {
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		negative = true
		s = s[1 : len(s)-1]
	case strings.HasSuffix(s, "-"):
		// some banks print the sign after the amount ("12,50-")
		negative = true
		s = strings.TrimSuffix(s, "-")
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "+")

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	if s == "" || strings.Count(s, ".") > 1 {
		return "", false
	}
	if negative {
		s = "-" + s
	}
	return s, true
}

// ParseGermanAmount reads the DATEV notation: dot for thousands, comma for
// decimals ("1.234,56").
func ParseGermanAmount(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatGermanAmount renders d with two decimals and a decimal comma, without
// thousands grouping.
func FormatGermanAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
