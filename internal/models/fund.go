package models

// RiskLevel buckets a fund by volatility.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// FundReturns holds trailing returns by horizon, signed percentages.
type FundReturns struct {
	OneYear   float64 `json:"1y"`
	ThreeYear float64 `json:"3y"`
	FiveYear  float64 `json:"5y"`
}

// Fund is one mutual fund from the catalog.
type Fund struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category"`
	NAV          float64     `json:"nav"`
	Returns      FundReturns `json:"returns"`
	RiskLevel    RiskLevel   `json:"riskLevel"`
	MinSIPAmount float64     `json:"minSipAmount"`
	AUM          float64     `json:"aum"`
	ExpenseRatio float64     `json:"expenseRatio"`
	ChartData    []float64   `json:"chartData"`
}

// Category groups funds in the catalog (equity, debt, hybrid, ...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
