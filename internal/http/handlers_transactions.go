package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"fundvest-go/internal/fincalc"
	"fundvest-go/internal/format"
	"fundvest-go/internal/mockapi"
	"fundvest-go/internal/models"
	"fundvest-go/internal/state"
)

// GET /v1/transactions?type=SIP&limit=20
func (s *Server) listTransactions(c *gin.Context) {
	filters := mockapi.TransactionFilters{
		Type: models.TransactionType(c.Query("type")),
	}
	if limit, err := parsePositiveInt(c.Query("limit")); err == nil {
		filters.Limit = limit
	}

	s.app.Transactions.Dispatch(state.TransactionStart{})

	items, err := s.api.GetTransactions(c.Request.Context(), filters)
	if err != nil {
		s.app.Transactions.Dispatch(state.TransactionFailure{Reason: err.Error()})
		s.respondError(c, err)
		return
	}
	s.app.Transactions.Dispatch(state.SetTransactions{Items: items})

	c.JSON(200, gin.H{"data": gin.H{
		"transactions": items,
		"totalCount":   len(items),
	}})
}

// POST /v1/transactions
func (s *Server) createTransaction(c *gin.Context) {
	var req mockapi.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	s.app.Transactions.Dispatch(state.TransactionStart{})

	tx, err := s.api.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		s.app.Transactions.Dispatch(state.TransactionFailure{Reason: err.Error()})
		s.respondError(c, err)
		return
	}

	// Newest first; insertion order is the ledger order.
	s.app.Transactions.Dispatch(state.TransactionSuccess{Tx: tx})
	s.app.Transactions.Dispatch(state.SetCurrentTransaction{Tx: tx})

	c.JSON(201, gin.H{
		"data": tx,
		"display": gin.H{
			"amount": format.Currency(tx.Amount),
			"date":   format.Date(tx.Date, format.DateTime),
			"nav":    format.CurrencyWith(tx.NAV, format.NumberOptions{MinFractionDigits: 2, MaxFractionDigits: 2}),
		},
	})
}

// POST /v1/sip/projection
//
// Synchronous estimate, no simulated round trip: the screens call this
// while the user drags the amount slider.
func (s *Server) sipProjection(c *gin.Context) {
	var input struct {
		MonthlyAmount float64 `json:"monthlyAmount" binding:"required"`
		Years         int     `json:"years" binding:"required"`
		AnnualRatePct float64 `json:"annualRatePct"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	projection, err := fincalc.SIPProjection(input.MonthlyAmount, input.Years, input.AnnualRatePct)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"data": projection,
		"display": gin.H{
			"invested":    format.Currency(projection.Invested),
			"futureValue": format.CompactNumber(projection.FutureValue),
			"wealthGain":  format.CompactNumber(projection.WealthGain),
		},
	})
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}
