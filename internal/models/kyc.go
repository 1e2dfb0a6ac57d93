package models

// KYCStatus tracks identity-verification progress. Transitions only move
// forward: pending -> in-progress -> completed, with rejected reachable
// only through an explicit rejection.
type KYCStatus string

const (
	KYCPending    KYCStatus = "pending"
	KYCInProgress KYCStatus = "in-progress"
	KYCCompleted  KYCStatus = "completed"
	KYCRejected   KYCStatus = "rejected"
)

// ValidKYCStatus reports whether s is one of the known statuses.
func ValidKYCStatus(s KYCStatus) bool {
	switch s {
	case KYCPending, KYCInProgress, KYCCompleted, KYCRejected:
		return true
	}
	return false
}

// PersonalInfo carries the free-form profile fields captured alongside
// the PAN and Aadhaar numbers.
type PersonalInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
}

// KYCRecord is the full identity-verification record.
type KYCRecord struct {
	PANNumber     string       `json:"pan_number"`
	AadhaarNumber string       `json:"aadhaar_number"`
	Status        KYCStatus    `json:"status"`
	PersonalInfo  PersonalInfo `json:"personal_info"`
}
