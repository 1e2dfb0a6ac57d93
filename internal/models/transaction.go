package models

import "time"

type TransactionType string

const (
	TxLumpsum TransactionType = "Lumpsum"
	TxSIP     TransactionType = "SIP"
	TxRedeem  TransactionType = "Redeem"
)

type TransactionStatus string

const (
	TxSuccess    TransactionStatus = "success"
	TxProcessing TransactionStatus = "processing"
	TxFailed     TransactionStatus = "failed"
)

type SIPFrequency string

const (
	FrequencyMonthly   SIPFrequency = "monthly"
	FrequencyQuarterly SIPFrequency = "quarterly"
)

// Transaction is immutable once created. New transactions are prepended
// to the ledger; insertion order is the ordering key, not the date.
type Transaction struct {
	ID              string            `json:"id"`
	Type            TransactionType   `json:"type"`
	FundName        string            `json:"fundName"`
	Amount          float64           `json:"amount"`
	Status          TransactionStatus `json:"status"`
	Date            time.Time         `json:"date"`
	TransactionCode string            `json:"transactionId"`
	NAV             float64           `json:"nav"`
	Units           float64           `json:"units"`

	// SIP-only fields.
	SIPDate       int          `json:"sipDate,omitempty"`       // day of month, 1-31
	Frequency     SIPFrequency `json:"frequency,omitempty"`     // monthly or quarterly
	DurationYears int          `json:"durationYears,omitempty"` // investment horizon
}
