package models

// MarketIndex is a point-in-time index quote.
type MarketIndex struct {
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// MoverFund is a fund appearing in the gainers/losers boards.
type MoverFund struct {
	Name          string  `json:"name"`
	NAV           float64 `json:"nav"`
	ChangePercent float64 `json:"changePercent"`
}

// MarketData is the market overview payload.
type MarketData struct {
	Indices struct {
		Nifty  MarketIndex `json:"nifty"`
		Sensex MarketIndex `json:"sensex"`
	} `json:"indices"`
	TopGainers []MoverFund `json:"topGainers"`
	TopLosers  []MoverFund `json:"topLosers"`
}
