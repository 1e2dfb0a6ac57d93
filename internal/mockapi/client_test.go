package mockapi

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundvest-go/internal/apperr"
	"fundvest-go/internal/fixtures"
	"fundvest-go/internal/store"
)

// newTestClient wires a client with zero latency and the given seams
// over an in-memory store.
func newTestClient(t *testing.T, opts Options) (*Client, *store.MemoryKV) {
	t.Helper()

	catalog, err := fixtures.Load()
	require.NoError(t, err)

	kv := store.NewMemoryKV()
	if opts.Sleep == nil {
		opts.Sleep = func(context.Context, time.Duration) error { return nil }
	}
	if opts.JWTSecret == "" {
		opts.JWTSecret = "test-secret"
	}
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return New(opts, kv, catalog, logger), kv
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// alwaysSucceed forces the failure roll to miss.
func alwaysSucceed() float64 { return 0.99 }

// alwaysFail forces the failure roll to hit.
func alwaysFail() float64 { return 0.0 }

func TestSimulateFailureRoll(t *testing.T) {
	c, _ := newTestClient(t, Options{Rand: alwaysFail, FailureRate: 0.05})
	_, err := c.GetPortfolio(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrNetwork))

	c, _ = newTestClient(t, Options{Rand: alwaysSucceed, FailureRate: 0.05})
	_, err = c.GetPortfolio(context.Background())
	assert.NoError(t, err)
}

func TestFailureRateOverManyCalls(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	c, _ := newTestClient(t, Options{Rand: src.Float64, FailureRate: 0.05})

	failures := 0
	for i := 0; i < 1000; i++ {
		if _, err := c.GetPortfolio(context.Background()); err != nil {
			failures++
		}
	}
	// 5% of 1000 with a generous band for the seeded source.
	assert.Greater(t, failures, 20)
	assert.Less(t, failures, 90)
}

func TestLatencyStaysWithinConfiguredBounds(t *testing.T) {
	var slept []time.Duration
	src := rand.New(rand.NewSource(7))
	c, _ := newTestClient(t, Options{
		MinLatency:  100 * time.Millisecond,
		MaxLatency:  300 * time.Millisecond,
		FailureRate: 0.05,
		Rand:        src.Float64,
		Sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
	})

	for i := 0; i < 50; i++ {
		_, _ = c.GetPortfolio(context.Background())
	}

	require.Len(t, slept, 50)
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 300*time.Millisecond)
	}
}

func TestSleepCancellationIsNetworkError(t *testing.T) {
	c, _ := newTestClient(t, Options{
		Rand: alwaysSucceed,
		Sleep: func(ctx context.Context, _ time.Duration) error {
			return context.Canceled
		},
	})
	_, err := c.GetPortfolio(context.Background())
	assert.True(t, errors.Is(err, apperr.ErrNetwork))
}

func TestDefaultsFilled(t *testing.T) {
	catalog, err := fixtures.Load()
	require.NoError(t, err)
	c := New(Options{}, store.NewMemoryKV(), catalog, nil)

	assert.Equal(t, 500*time.Millisecond, c.opts.MinLatency)
	assert.Equal(t, 1500*time.Millisecond, c.opts.MaxLatency)
	assert.Equal(t, 0.05, c.opts.FailureRate)
	assert.Equal(t, 24*time.Hour, c.opts.TokenTTL)
	assert.NotNil(t, c.opts.Rand)
	assert.NotNil(t, c.opts.Sleep)
	assert.NotNil(t, c.opts.Now)
}

func TestZeroFailureRateNeverFails(t *testing.T) {
	// A zero rate is a valid configuration, not a request for the
	// default.
	c, _ := newTestClient(t, Options{Rand: alwaysFail, FailureRate: 0})
	_, err := c.GetPortfolio(context.Background())
	assert.NoError(t, err)
}

func TestAbsentTokenDoesNotFailCalls(t *testing.T) {
	c, kv := newTestClient(t, Options{Rand: alwaysSucceed})

	_, err := kv.Get(context.Background(), store.KeyUserToken)
	require.True(t, errors.Is(err, store.ErrNotFound))

	_, err = c.GetMarketData(context.Background())
	assert.NoError(t, err, "calls proceed unauthenticated when no token is stored")
}
