// Package format renders numeric and date values as en-IN display
// strings: rupee amounts with Indian digit grouping, compact Cr/L/K
// notation, percentages, masked identifiers and grouped phone numbers.
package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const rupee = "₹"

// NumberOptions controls fraction digits for Currency and Number.
// Fraction digits beyond Max are rounded away; trailing zeros are kept
// only down to Min.
type NumberOptions struct {
	MinFractionDigits int
	MaxFractionDigits int
}

// DefaultNumberOptions matches the app-wide display convention:
// whole rupees by default, paise only when present.
func DefaultNumberOptions() NumberOptions {
	return NumberOptions{MinFractionDigits: 0, MaxFractionDigits: 2}
}

// Currency formats amount as Indian rupees, e.g. 125000 -> "₹1,25,000".
// Negative amounts render with a leading minus: -500 -> "-₹500".
func Currency(amount float64) string {
	return CurrencyWith(amount, DefaultNumberOptions())
}

// CurrencyWith is Currency with explicit fraction-digit bounds.
func CurrencyWith(amount float64, opts NumberOptions) string {
	sign := ""
	if amount < 0 || (amount == 0 && math.Signbit(amount)) {
		sign = "-"
	}
	return sign + rupee + groupedAbs(amount, opts)
}

// Number formats amount with Indian digit grouping and no currency
// symbol.
func Number(amount float64) string {
	return NumberWith(amount, DefaultNumberOptions())
}

// NumberWith is Number with explicit fraction-digit bounds.
func NumberWith(amount float64, opts NumberOptions) string {
	sign := ""
	if amount < 0 || (amount == 0 && math.Signbit(amount)) {
		sign = "-"
	}
	return sign + groupedAbs(amount, opts)
}

func groupedAbs(amount float64, opts NumberOptions) string {
	if opts.MaxFractionDigits < opts.MinFractionDigits {
		opts.MaxFractionDigits = opts.MinFractionDigits
	}
	s := strconv.FormatFloat(math.Abs(amount), 'f', opts.MaxFractionDigits, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	// Trim trailing zeros down to the minimum fraction digits.
	for len(fracPart) > opts.MinFractionDigits && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}
	for len(fracPart) < opts.MinFractionDigits {
		fracPart += "0"
	}

	grouped := groupIndian(intPart)
	if fracPart == "" {
		return grouped
	}
	return grouped + "." + fracPart
}

// groupIndian inserts commas in the Indian style: the last three digits
// form one group, everything before that is grouped in pairs.
// "1234567" -> "12,34,567".
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}

// Percentage renders value with the given number of decimals and a "%"
// suffix, preserving the sign: -2.34 -> "-2.3%".
func Percentage(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(value, 'f', decimals, 64) + "%"
}

// DateStyle selects one of the supported date renderings.
type DateStyle string

const (
	DateShort   DateStyle = "short"   // 02 Jan 2006
	DateLong    DateStyle = "long"    // 02 January 2006
	DateTime    DateStyle = "time"    // 02 Jan 2006, 03:04 pm
	DateDefault DateStyle = "default" // 2/1/2006
)

// Date renders t in the requested style. Unknown styles fall back to
// the default d/m/yyyy rendering.
func Date(t time.Time, style DateStyle) string {
	switch style {
	case DateShort:
		return t.Format("02 Jan 2006")
	case DateLong:
		return t.Format("02 January 2006")
	case DateTime:
		return t.Format("02 Jan 2006, 03:04 pm")
	default:
		return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
	}
}

// CompactNumber abbreviates rupee amounts using Indian units:
//   >= 1,00,00,000 -> Cr
//   >= 1,00,000    -> L
//   >= 1,000       -> K
// Boundary values belong to the higher bracket (exactly one lakh is
// "₹1.0L", not "₹100.0K"). Smaller amounts render unabbreviated.
func CompactNumber(n float64) string {
	switch {
	case n >= 1e7:
		return rupee + strconv.FormatFloat(n/1e7, 'f', 1, 64) + "Cr"
	case n >= 1e5:
		return rupee + strconv.FormatFloat(n/1e5, 'f', 1, 64) + "L"
	case n >= 1e3:
		return rupee + strconv.FormatFloat(n/1e3, 'f', 1, 64) + "K"
	default:
		return rupee + strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// MaskString hides all but the trailing visible characters:
// MaskString("123456789012", 4, 'X') -> "XXXXXXXX9012". Strings no
// longer than visible are returned unchanged.
func MaskString(s string, visible int, maskChar rune) string {
	runes := []rune(s)
	if len(runes) <= visible {
		return s
	}
	masked := strings.Repeat(string(maskChar), len(runes)-visible)
	return masked + string(runes[len(runes)-visible:])
}

// Mask is MaskString with the app defaults (last 4 visible, 'X').
func Mask(s string) string {
	return MaskString(s, 4, 'X')
}

var nonDigits = regexp.MustCompile(`\D`)

// PhoneNumber groups a 10-digit number as "XXX XXX XXXX". Inputs that
// do not reduce to exactly 10 digits are returned unchanged, with no
// partial grouping.
func PhoneNumber(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	if len(cleaned) != 10 {
		return phone
	}
	return cleaned[:3] + " " + cleaned[3:6] + " " + cleaned[6:]
}
