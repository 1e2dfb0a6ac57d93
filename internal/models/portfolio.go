package models

// Holding is one fund position inside a portfolio snapshot. Returns and
// ReturnsPercentage are both signed; the percentage is trusted verbatim
// from the data source and is not re-derived here.
type Holding struct {
	FundName          string  `json:"fundName"`
	CurrentValue      float64 `json:"currentValue"`
	Returns           float64 `json:"returns"`
	ReturnsPercentage float64 `json:"returnsPercentage"`
}

// PortfolioSnapshot is replaced wholesale on every fetch; there are no
// incremental merges.
type PortfolioSnapshot struct {
	TotalInvested float64   `json:"totalInvested"`
	CurrentValue  float64   `json:"currentValue"`
	TotalReturns  float64   `json:"totalReturns"`
	XIRR          float64   `json:"xirr"`
	Holdings      []Holding `json:"holdings"`
}
