package store

import (
	"context"
	"encoding/json"
	"errors"

	"fundvest-go/internal/apperr"
	"fundvest-go/internal/models"
)

// Snapshot is everything rehydrated from the store at launch.
type Snapshot struct {
	Token              string
	User               *models.User
	OnboardingComplete bool
	KYCStatus          models.KYCStatus
}

// LoadSnapshot reads the persisted session flags. Missing keys are not
// errors; they leave the zero value in place.
func LoadSnapshot(ctx context.Context, kv KV) (Snapshot, error) {
	var snap Snapshot

	token, err := kv.Get(ctx, KeyUserToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	snap.Token = token

	raw, err := kv.Get(ctx, KeyUserData)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	if raw != "" {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return Snapshot{}, apperr.Persistence("decode stored user: %v", err)
		}
		snap.User = &user
	}

	onboarding, err := kv.Get(ctx, KeyOnboardingComplete)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	snap.OnboardingComplete = onboarding == "true"

	status, err := kv.Get(ctx, KeyKYCStatus)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Snapshot{}, err
	}
	snap.KYCStatus = models.KYCStatus(status)

	return snap, nil
}

// SaveLogin persists the token and serialized user after a successful
// OTP verification.
func SaveLogin(ctx context.Context, kv KV, user models.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return apperr.Persistence("encode user: %v", err)
	}
	if err := kv.Set(ctx, KeyUserToken, token); err != nil {
		return err
	}
	return kv.Set(ctx, KeyUserData, string(raw))
}

// ClearLogin removes the token and user on logout. Onboarding and KYC
// flags survive logout.
func ClearLogin(ctx context.Context, kv KV) error {
	if err := kv.Delete(ctx, KeyUserToken); err != nil {
		return err
	}
	return kv.Delete(ctx, KeyUserData)
}

// SaveOnboardingComplete records the one-way onboarding flag.
func SaveOnboardingComplete(ctx context.Context, kv KV) error {
	return kv.Set(ctx, KeyOnboardingComplete, "true")
}

// SaveKYCStatus records the current KYC status.
func SaveKYCStatus(ctx context.Context, kv KV, status models.KYCStatus) error {
	return kv.Set(ctx, KeyKYCStatus, string(status))
}
