package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundvest-go/internal/models"
)

func TestMemoryKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	_, err := kv.Get(ctx, KeyUserToken)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, kv.Set(ctx, KeyUserToken, "tok-1"))
	got, err := kv.Get(ctx, KeyUserToken)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	require.NoError(t, kv.Set(ctx, KeyUserToken, "tok-2"))
	got, _ = kv.Get(ctx, KeyUserToken)
	assert.Equal(t, "tok-2", got, "set overwrites")

	require.NoError(t, kv.Delete(ctx, KeyUserToken))
	_, err = kv.Get(ctx, KeyUserToken)
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.NoError(t, kv.Delete(ctx, "never-written"), "deleting an absent key is not an error")
}

func TestMemoryKVConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = kv.Set(ctx, KeyKYCStatus, "pending")
			_, _ = kv.Get(ctx, KeyKYCStatus)
		}()
	}
	wg.Wait()

	got, err := kv.Get(ctx, KeyKYCStatus)
	require.NoError(t, err)
	assert.Equal(t, "pending", got)
}

func TestLoadSnapshotEmptyStore(t *testing.T) {
	snap, err := LoadSnapshot(context.Background(), NewMemoryKV())
	require.NoError(t, err, "missing keys are not errors")
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.False(t, snap.OnboardingComplete)
	assert.Empty(t, snap.KYCStatus)
}

func TestSaveLoginAndLoadSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	user := models.User{ID: "1", Name: "John Doe", Phone: "9876543210", Email: "john@example.com"}

	require.NoError(t, SaveLogin(ctx, kv, user, "tok-1"))
	require.NoError(t, SaveOnboardingComplete(ctx, kv))
	require.NoError(t, SaveKYCStatus(ctx, kv, models.KYCCompleted))

	snap, err := LoadSnapshot(ctx, kv)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, user, *snap.User)
	assert.True(t, snap.OnboardingComplete)
	assert.Equal(t, models.KYCCompleted, snap.KYCStatus)
}

func TestClearLoginKeepsFlags(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	require.NoError(t, SaveLogin(ctx, kv, models.User{ID: "1"}, "tok"))
	require.NoError(t, SaveOnboardingComplete(ctx, kv))
	require.NoError(t, SaveKYCStatus(ctx, kv, models.KYCInProgress))

	require.NoError(t, ClearLogin(ctx, kv))

	snap, err := LoadSnapshot(ctx, kv)
	require.NoError(t, err)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.True(t, snap.OnboardingComplete, "onboarding flag survives logout")
	assert.Equal(t, models.KYCInProgress, snap.KYCStatus, "kyc status survives logout")
}

func TestLoadSnapshotCorruptUser(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, KeyUserData, "{not json"))

	_, err := LoadSnapshot(ctx, kv)
	assert.Error(t, err)
}
