// Package fincalc implements the closed-form SIP projection and unit
// allotment math used by the investment flows.
package fincalc

import (
	"math"

	"fundvest-go/internal/apperr"
)

// DefaultAnnualReturnPct is the assumed annual return used when a
// projection does not specify one.
const DefaultAnnualReturnPct = 12.0

// SIPTotalInvestment is the total contributed over the SIP horizon:
// monthly * years * 12. Non-positive inputs are rejected.
func SIPTotalInvestment(monthly float64, years int) (float64, error) {
	if monthly <= 0 {
		return 0, apperr.Validation("monthly amount must be positive, got %v", monthly)
	}
	if years <= 0 {
		return 0, apperr.Validation("duration must be at least one year, got %d", years)
	}
	return monthly * float64(years) * 12, nil
}

// SIPFutureValue projects the value of a monthly SIP compounded
// monthly at the given annual rate:
//
//	FV = monthly * (((1+r)^months - 1) / r) * (1+r),  r = rate/100/12
//
// A zero rate degenerates to the plain sum of contributions.
func SIPFutureValue(monthly float64, years int, annualRatePct float64) (float64, error) {
	if monthly <= 0 {
		return 0, apperr.Validation("monthly amount must be positive, got %v", monthly)
	}
	if years <= 0 {
		return 0, apperr.Validation("duration must be at least one year, got %d", years)
	}
	if annualRatePct < 0 {
		return 0, apperr.Validation("annual rate must not be negative, got %v", annualRatePct)
	}

	months := float64(years) * 12
	r := annualRatePct / 100 / 12
	if r == 0 {
		return monthly * months, nil
	}
	return monthly * ((math.Pow(1+r, months) - 1) / r) * (1 + r), nil
}

// UnitsAllotted converts an invested amount into fund units at the
// given NAV, rounded to four decimal places.
func UnitsAllotted(amount, nav float64) (float64, error) {
	if amount <= 0 {
		return 0, apperr.Validation("amount must be positive, got %v", amount)
	}
	if nav <= 0 {
		return 0, apperr.Validation("nav must be positive, got %v", nav)
	}
	return math.Round(amount/nav*1e4) / 1e4, nil
}

// Projection bundles the outcome of a SIP estimate.
type Projection struct {
	Invested    float64 `json:"invested"`
	FutureValue float64 `json:"futureValue"`
	WealthGain  float64 `json:"wealthGain"`
}

// SIPProjection computes invested total, projected value and wealth
// gain in one call. A zero annualRatePct applies the default assumed
// return; pass a negative-free explicit rate to override.
func SIPProjection(monthly float64, years int, annualRatePct float64) (Projection, error) {
	if annualRatePct == 0 {
		annualRatePct = DefaultAnnualReturnPct
	}
	invested, err := SIPTotalInvestment(monthly, years)
	if err != nil {
		return Projection{}, err
	}
	fv, err := SIPFutureValue(monthly, years, annualRatePct)
	if err != nil {
		return Projection{}, err
	}
	return Projection{
		Invested:    invested,
		FutureValue: fv,
		WealthGain:  fv - invested,
	}, nil
}
