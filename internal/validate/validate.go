// Package validate holds the input predicates used before any simulated
// network call. All functions are pure and never perform I/O.
package validate

import (
	"regexp"
	"strings"
)

var (
	phoneRe   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarRe = regexp.MustCompile(`^[0-9]{12}$`)
	otpRe     = regexp.MustCompile(`^[0-9]{6}$`)

	aadhaarSeparators = strings.NewReplacer(" ", "", "-", "")
)

// Phone reports whether s is a valid Indian mobile number: exactly ten
// digits with a leading 6-9.
func Phone(s string) bool {
	return phoneRe.MatchString(s)
}

// PAN reports whether s is a valid PAN after upper-casing, i.e. five
// letters, four digits, one letter.
func PAN(s string) bool {
	return panRe.MatchString(strings.ToUpper(s))
}

// Aadhaar reports whether s is a valid Aadhaar number: twelve digits,
// ignoring space or hyphen grouping separators.
func Aadhaar(s string) bool {
	return aadhaarRe.MatchString(aadhaarSeparators.Replace(s))
}

// OTP reports whether s is a six-digit one-time password.
func OTP(s string) bool {
	return otpRe.MatchString(s)
}

// MinLumpsumAmount is the smallest accepted one-time investment.
const MinLumpsumAmount = 500

// LumpsumAmount reports whether amount meets the lumpsum minimum.
func LumpsumAmount(amount float64) bool {
	return amount >= MinLumpsumAmount
}

// SIPAmount reports whether amount meets the fund's minimum SIP amount.
func SIPAmount(amount, minimum float64) bool {
	return amount > 0 && amount >= minimum
}

// SIPDuration reports whether years is an acceptable SIP horizon.
func SIPDuration(years int) bool {
	return years >= 1
}

// SIPDate reports whether day is a valid day-of-month for SIP debits.
func SIPDate(day int) bool {
	return day >= 1 && day <= 31
}
