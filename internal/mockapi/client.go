// Package mockapi simulates the network boundary of the investment
// backend. Every call waits a randomized latency, fails with a small
// fixed probability and otherwise answers from the fixture catalog.
// The random source, sleep and clock are injectable so tests can force
// deterministic outcomes.
package mockapi

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"fundvest-go/internal/apperr"
	"fundvest-go/internal/fixtures"
	"fundvest-go/internal/store"
)

// Options configures the simulated transport.
type Options struct {
	MinLatency  time.Duration // lower latency bound, default 500ms
	MaxLatency  time.Duration // upper latency bound, default 1500ms
	FailureRate float64       // injected failure probability, default 0.05

	JWTSecret string        // session token signing secret
	TokenTTL  time.Duration // session token lifetime, default 24h

	// Seams for tests. Nil values fall back to math/rand, a
	// context-aware timer sleep and time.Now.
	Rand  func() float64
	Sleep func(ctx context.Context, d time.Duration) error
	Now   func() time.Time
}

const (
	defaultMinLatency  = 500 * time.Millisecond
	defaultMaxLatency  = 1500 * time.Millisecond
	defaultFailureRate = 0.05
	defaultTokenTTL    = 24 * time.Hour
)

// Client is the simulated backend. It reads the auth token from the
// persisted key-value store; an absent token only omits the
// authorization header, it never fails the call.
type Client struct {
	opts    Options
	kv      store.KV
	catalog *fixtures.Catalog
	logger  *slog.Logger
}

// New builds a client, filling unset options with defaults.
func New(opts Options, kv store.KV, catalog *fixtures.Catalog, logger *slog.Logger) *Client {
	if opts.MinLatency <= 0 {
		opts.MinLatency = defaultMinLatency
	}
	if opts.MaxLatency < opts.MinLatency {
		opts.MaxLatency = defaultMaxLatency
	}
	if opts.FailureRate < 0 {
		opts.FailureRate = defaultFailureRate
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = defaultTokenTTL
	}
	if opts.Rand == nil {
		opts.Rand = rand.Float64
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepCtx
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{opts: opts, kv: kv, catalog: catalog, logger: logger}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// simulate waits the randomized latency and rolls the failure dice.
// It logs the pretend request the way a transport would, including
// whether a bearer token was attached.
func (c *Client) simulate(ctx context.Context, method, endpoint string) error {
	latency := c.opts.MinLatency +
		time.Duration(c.opts.Rand()*float64(c.opts.MaxLatency-c.opts.MinLatency))
	if err := c.opts.Sleep(ctx, latency); err != nil {
		return apperr.Network("request cancelled: %v", err)
	}

	c.logger.Debug("simulated request",
		"method", method,
		"endpoint", endpoint,
		"latency", latency,
		"authorized", c.authToken(ctx) != "",
	)

	if c.opts.Rand() < c.opts.FailureRate {
		return apperr.Network("request to %s failed", endpoint)
	}
	return nil
}

// authToken reads the persisted session token. Missing or unreadable
// tokens yield the empty string; the call proceeds unauthenticated.
func (c *Client) authToken(ctx context.Context) string {
	token, err := c.kv.Get(ctx, store.KeyUserToken)
	if err != nil {
		return ""
	}
	return token
}
