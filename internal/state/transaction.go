package state

import (
	"sync"

	"fundvest-go/internal/models"
)

// TransactionState is the ledger container snapshot. Items are ordered
// most-recent-first by insertion; the ledger is never re-sorted by
// date.
type TransactionState struct {
	Items   []models.Transaction
	Current *models.Transaction
	Loading bool
	Error   string
}

// TransactionAction is a named ledger transition.
type TransactionAction interface{ isTransactionAction() }

type (
	// SetTransactions replaces the whole ledger.
	SetTransactions struct{ Items []models.Transaction }
	// TransactionStart marks a transaction in flight.
	TransactionStart struct{}
	// TransactionSuccess prepends the new transaction.
	TransactionSuccess struct{ Tx models.Transaction }
	// TransactionFailure records the error.
	TransactionFailure struct{ Reason string }
	// SetCurrentTransaction points at the transaction under review.
	SetCurrentTransaction struct{ Tx models.Transaction }
	// ClearTransactionError drops a recorded error.
	ClearTransactionError struct{}
)

func (SetTransactions) isTransactionAction()       {}
func (TransactionStart) isTransactionAction()      {}
func (TransactionSuccess) isTransactionAction()    {}
func (TransactionFailure) isTransactionAction()    {}
func (SetCurrentTransaction) isTransactionAction() {}
func (ClearTransactionError) isTransactionAction() {}

// InitialTransactionState is an empty ledger.
func InitialTransactionState() TransactionState {
	return TransactionState{}
}

// ReduceTransactions applies a transition and returns the new snapshot.
func ReduceTransactions(s TransactionState, a TransactionAction) TransactionState {
	switch act := a.(type) {
	case SetTransactions:
		s.Items = append([]models.Transaction(nil), act.Items...)
	case TransactionStart:
		s.Loading = true
		s.Error = ""
	case TransactionSuccess:
		items := make([]models.Transaction, 0, len(s.Items)+1)
		items = append(items, act.Tx)
		items = append(items, s.Items...)
		s.Items = items
		s.Loading = false
	case TransactionFailure:
		s.Loading = false
		s.Error = act.Reason
	case SetCurrentTransaction:
		tx := act.Tx
		s.Current = &tx
	case ClearTransactionError:
		s.Error = ""
	}
	return s
}

// Transactions is the mutex-guarded ledger container.
type Transactions struct {
	mu    sync.RWMutex
	state TransactionState
}

func NewTransactions() *Transactions {
	return &Transactions{state: InitialTransactionState()}
}

func (t *Transactions) State() TransactionState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

func (t *Transactions) Dispatch(a TransactionAction) TransactionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = ReduceTransactions(t.state, a)
	return t.state
}
