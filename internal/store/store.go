// Package store is the persisted key-value boundary holding session
// flags, the auth token, the serialized user and the KYC status. Two
// implementations exist: a gorm/postgres table for real runs and an
// in-memory map for tests and DB-less development.
package store

import (
	"context"
	"errors"
)

// Keys used by the application. The store itself is schema-free; these
// are the only keys the flows touch.
const (
	KeyUserToken          = "userToken"
	KeyUserData           = "userData"
	KeyOnboardingComplete = "onboardingComplete"
	KeyKYCStatus          = "kycStatus"
	KeyPendingOTP         = "pendingOtp"
)

// ErrNotFound is returned by Get when the key has never been written
// or has been deleted.
var ErrNotFound = errors.New("key not found")

// KV is the key-value store contract. Implementations must be safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
