package state

import (
	"sync"

	"fundvest-go/internal/models"
)

// PortfolioState is the portfolio container snapshot. Load success
// replaces the snapshot fields wholesale; there are no partial merges.
type PortfolioState struct {
	TotalInvested float64
	CurrentValue  float64
	TotalReturns  float64
	XIRR          float64
	Holdings      []models.Holding
	MutualFunds   []models.Fund
	Categories    []models.Category
	Loading       bool
	Error         string
}

// PortfolioAction is a named portfolio transition.
type PortfolioAction interface{ isPortfolioAction() }

type (
	// LoadStart marks a fetch in flight and clears a previous error.
	LoadStart struct{}
	// LoadSuccess replaces every snapshot field from the fetched data.
	LoadSuccess struct{ Snapshot models.PortfolioSnapshot }
	// LoadFailure records the fetch error.
	LoadFailure struct{ Reason string }
	// SetMutualFunds replaces the fund catalog slice.
	SetMutualFunds struct{ Funds []models.Fund }
	// SetCategories replaces the category slice.
	SetCategories struct{ Categories []models.Category }
	// ClearPortfolioError drops a recorded error.
	ClearPortfolioError struct{}
)

func (LoadStart) isPortfolioAction()           {}
func (LoadSuccess) isPortfolioAction()         {}
func (LoadFailure) isPortfolioAction()         {}
func (SetMutualFunds) isPortfolioAction()      {}
func (SetCategories) isPortfolioAction()       {}
func (ClearPortfolioError) isPortfolioAction() {}

// InitialPortfolioState is an empty, unloaded portfolio.
func InitialPortfolioState() PortfolioState {
	return PortfolioState{}
}

// ReducePortfolio applies a transition and returns the new snapshot.
func ReducePortfolio(s PortfolioState, a PortfolioAction) PortfolioState {
	switch act := a.(type) {
	case LoadStart:
		s.Loading = true
		s.Error = ""
	case LoadSuccess:
		s.TotalInvested = act.Snapshot.TotalInvested
		s.CurrentValue = act.Snapshot.CurrentValue
		s.TotalReturns = act.Snapshot.TotalReturns
		s.XIRR = act.Snapshot.XIRR
		s.Holdings = append([]models.Holding(nil), act.Snapshot.Holdings...)
		s.Loading = false
	case LoadFailure:
		s.Loading = false
		s.Error = act.Reason
	case SetMutualFunds:
		s.MutualFunds = append([]models.Fund(nil), act.Funds...)
	case SetCategories:
		s.Categories = append([]models.Category(nil), act.Categories...)
	case ClearPortfolioError:
		s.Error = ""
	}
	return s
}

// Portfolio is the mutex-guarded portfolio container.
type Portfolio struct {
	mu    sync.RWMutex
	state PortfolioState
}

func NewPortfolio() *Portfolio {
	return &Portfolio{state: InitialPortfolioState()}
}

func (p *Portfolio) State() PortfolioState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Portfolio) Dispatch(a PortfolioAction) PortfolioState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReducePortfolio(p.state, a)
	return p.state
}
