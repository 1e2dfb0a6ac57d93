package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundvest-go/internal/config"
	"fundvest-go/internal/fixtures"
	"fundvest-go/internal/mockapi"
	"fundvest-go/internal/state"
	"fundvest-go/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	kv     *store.MemoryKV
	app    *state.App
}

// newTestEnv wires the full server over an in-memory store and a
// zero-latency, never-failing backend client.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := fixtures.Load()
	require.NoError(t, err)

	cfg := config.Load()
	cfg.JWTSecret = "test-secret"

	kv := store.NewMemoryKV()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	api := mockapi.New(mockapi.Options{
		JWTSecret:   cfg.JWTSecret,
		FailureRate: 0,
		Rand:        func() float64 { return 0.5 },
		Sleep:       func(context.Context, time.Duration) error { return nil },
	}, kv, catalog, logger)

	app := state.NewApp(state.Boot{})

	return &testEnv{
		router: NewServer(cfg, logger, api, kv, app),
		kv:     kv,
		app:    app,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// authenticate runs the full login + verify flow and returns the token.
func (e *testEnv) authenticate(t *testing.T) string {
	t.Helper()

	w := e.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{"phoneNumber": "9876543210"})
	require.Equal(t, 200, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/v1/auth/verify-otp", "", gin.H{"phoneNumber": "9876543210", "otp": "123456"})
	require.Equal(t, 200, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, 200, w.Code)
}

func TestLoginInvalidPhoneIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{"phoneNumber": "12345"})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "invalid_phone", decode(t, w)["error"])

	w = env.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{})
	assert.Equal(t, 400, w.Code, "missing phone is a binding error")
}

func TestLoginResponseShape(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{"phoneNumber": "9876543210"})
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "987 654 3210", body["phoneNumber"])
	assert.Equal(t, float64(30), body["resendAfterSeconds"])
}

func TestVerifyOTPPersistsSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	snap, err := store.LoadSnapshot(context.Background(), env.kv)
	require.NoError(t, err)
	assert.Equal(t, token, snap.Token)
	require.NotNil(t, snap.User)
	assert.Equal(t, "John Doe", snap.User.Name)

	assert.Equal(t, state.PhaseAuthenticated, env.app.Session.State().Phase)
}

func TestVerifyOTPWrongCodeIs401(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{"phoneNumber": "9876543210"})
	w := env.do(t, http.MethodPost, "/v1/auth/verify-otp", "", gin.H{"phoneNumber": "9876543210", "otp": "000000"})
	assert.Equal(t, 401, w.Code)
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/v1/portfolio", "/v1/transactions", "/v1/kyc/status", "/v1/market/data"} {
		w := env.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, 401, w.Code, path)
	}

	w := env.do(t, http.MethodGet, "/v1/portfolio", "garbage-token", nil)
	assert.Equal(t, 401, w.Code, "malformed token")
}

func TestLogoutClearsStoredLogin(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, 200, w.Code)

	snap, err := store.LoadSnapshot(context.Background(), env.kv)
	require.NoError(t, err)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.User)
	assert.Equal(t, state.PhaseAnonymous, env.app.Session.State().Phase)
}

func TestCompleteOnboarding(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodPost, "/v1/onboarding/complete", token, nil)
	require.Equal(t, 200, w.Code)

	snap, err := store.LoadSnapshot(context.Background(), env.kv)
	require.NoError(t, err)
	assert.True(t, snap.OnboardingComplete)
	assert.True(t, env.app.Session.State().HasCompletedOnboarding)
}

func TestGetPortfolio(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodGet, "/v1/portfolio", token, nil)
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	display := body["display"].(map[string]any)
	assert.Equal(t, "₹1,25,000", display["totalInvested"])
	assert.Equal(t, "₹1,42,500", display["currentValue"])

	assert.Equal(t, 142500.0, env.app.Portfolio.State().CurrentValue)
}

func TestListMutualFundsWithFilters(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodGet, "/v1/mutual-funds?category=debt", token, nil)
	require.Equal(t, 200, w.Code)

	data := decode(t, w)["data"].(map[string]any)
	assert.Len(t, data["funds"].([]any), 2)
}

func TestGetFundDetailsNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodGet, "/v1/mutual-funds/no-such-fund", token, nil)
	assert.Equal(t, 404, w.Code)
}

func TestCreateTransactionPrependsLedger(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodPost, "/v1/transactions", token, gin.H{
		"type": "Lumpsum", "fundId": "axis-bluechip", "amount": 25000,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	first := env.app.Transactions.State().Items
	require.Len(t, first, 1)

	w = env.do(t, http.MethodPost, "/v1/transactions", token, gin.H{
		"type": "Lumpsum", "fundId": "quant-small-cap", "amount": 10000,
	})
	require.Equal(t, 201, w.Code)

	items := env.app.Transactions.State().Items
	require.Len(t, items, 2)
	assert.Equal(t, "Quant Small Cap Fund", items[0].FundName, "newest entry sits first")
	assert.Equal(t, items[1].ID, first[0].ID)
}

func TestCreateTransactionValidationIs422(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodPost, "/v1/transactions", token, gin.H{
		"type": "Lumpsum", "fundId": "axis-bluechip", "amount": 100,
	})
	assert.Equal(t, 422, w.Code)
	assert.Equal(t, "validation_failed", decode(t, w)["error"])
}

func TestSIPProjectionDisplay(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodPost, "/v1/sip/projection", token, gin.H{
		"monthlyAmount": 5000, "years": 2,
	})
	require.Equal(t, 200, w.Code)

	display := decode(t, w)["display"].(map[string]any)
	assert.Equal(t, "₹1,20,000", display["invested"])
}

func TestKYCSubmitAndStatus(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodGet, "/v1/kyc/status", token, nil)
	require.Equal(t, 200, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "pending", data["status"])

	w = env.do(t, http.MethodPost, "/v1/kyc/submit", token, gin.H{
		"panNumber":     "abcde1234f",
		"aadhaarNumber": "1234 5678 9012",
		"personalInfo":  gin.H{"name": "John Doe"},
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/v1/kyc/status", token, nil)
	require.Equal(t, 200, w.Code)
	data = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "completed", data["status"])
}

func TestKYCSubmitBadDocumentsAre400(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodPost, "/v1/kyc/submit", token, gin.H{
		"panNumber": "nope", "aadhaarNumber": "123456789012",
	})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "invalid_pan", decode(t, w)["error"])

	w = env.do(t, http.MethodPost, "/v1/kyc/submit", token, gin.H{
		"panNumber": "ABCDE1234F", "aadhaarNumber": "42",
	})
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "invalid_aadhaar", decode(t, w)["error"])
}

func TestMarketData(t *testing.T) {
	env := newTestEnv(t)
	token := env.authenticate(t)

	w := env.do(t, http.MethodGet, "/v1/market/data", token, nil)
	require.Equal(t, 200, w.Code)

	body := decode(t, w)
	data := body["data"].(map[string]any)
	indices := data["indices"].(map[string]any)
	nifty := indices["nifty"].(map[string]any)
	assert.Equal(t, 19500.0, nifty["value"])
}

func TestNetworkFailureIs502(t *testing.T) {
	catalog, err := fixtures.Load()
	require.NoError(t, err)

	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	kv := store.NewMemoryKV()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Rand pinned to zero makes every failure roll hit.
	api := mockapi.New(mockapi.Options{
		JWTSecret:   cfg.JWTSecret,
		FailureRate: 0.05,
		Rand:        func() float64 { return 0 },
		Sleep:       func(context.Context, time.Duration) error { return nil },
	}, kv, catalog, logger)

	router := NewServer(cfg, logger, api, kv, state.NewApp(state.Boot{}))

	raw, _ := json.Marshal(gin.H{"phoneNumber": "9876543210"})
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 502, w.Code)
}
