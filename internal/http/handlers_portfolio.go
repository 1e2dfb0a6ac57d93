package http

import (
	"github.com/gin-gonic/gin"

	"fundvest-go/internal/format"
	"fundvest-go/internal/mockapi"
	"fundvest-go/internal/models"
	"fundvest-go/internal/state"
)

// GET /v1/portfolio
func (s *Server) getPortfolio(c *gin.Context) {
	s.app.Portfolio.Dispatch(state.LoadStart{})

	snap, err := s.api.GetPortfolio(c.Request.Context())
	if err != nil {
		s.app.Portfolio.Dispatch(state.LoadFailure{Reason: err.Error()})
		s.respondError(c, err)
		return
	}
	s.app.Portfolio.Dispatch(state.LoadSuccess{Snapshot: snap})

	c.JSON(200, gin.H{
		"data": snap,
		"display": gin.H{
			"totalInvested": format.Currency(snap.TotalInvested),
			"currentValue":  format.Currency(snap.CurrentValue),
			"totalReturns":  format.Currency(snap.TotalReturns),
			"xirr":          format.Percentage(snap.XIRR, 1),
			"compactValue":  format.CompactNumber(snap.CurrentValue),
		},
	})
}

// GET /v1/mutual-funds?category=equity&search=bluechip
func (s *Server) listMutualFunds(c *gin.Context) {
	filters := mockapi.FundFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	list, err := s.api.GetMutualFunds(c.Request.Context(), filters)
	if err != nil {
		s.app.Portfolio.Dispatch(state.LoadFailure{Reason: err.Error()})
		s.respondError(c, err)
		return
	}
	s.app.Portfolio.Dispatch(state.SetMutualFunds{Funds: list.Funds})
	s.app.Portfolio.Dispatch(state.SetCategories{Categories: list.Categories})

	c.JSON(200, gin.H{"data": list})
}

// GET /v1/mutual-funds/:id
func (s *Server) getFundDetails(c *gin.Context) {
	fund, err := s.api.GetFundDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"data": fund,
		"display": gin.H{
			"nav":          format.CurrencyWith(fund.NAV, format.NumberOptions{MinFractionDigits: 2, MaxFractionDigits: 2}),
			"aum":          format.CompactNumber(fund.AUM),
			"returns1y":    format.Percentage(fund.Returns.OneYear, 1),
			"returns3y":    format.Percentage(fund.Returns.ThreeYear, 1),
			"returns5y":    format.Percentage(fund.Returns.FiveYear, 1),
			"expenseRatio": format.Percentage(fund.ExpenseRatio, 2),
			"minSipAmount": format.Currency(fund.MinSIPAmount),
		},
	})
}

// GET /v1/market/data
func (s *Server) getMarketData(c *gin.Context) {
	data, err := s.api.GetMarketData(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"data": data,
		"display": gin.H{
			"nifty":  indexDisplay(data.Indices.Nifty),
			"sensex": indexDisplay(data.Indices.Sensex),
		},
	})
}

func indexDisplay(idx models.MarketIndex) gin.H {
	return gin.H{
		"value":         format.Number(idx.Value),
		"change":        format.Number(idx.Change),
		"changePercent": format.Percentage(idx.ChangePercent, 2),
	}
}
