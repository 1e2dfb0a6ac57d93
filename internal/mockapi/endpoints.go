package mockapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fundvest-go/internal/apperr"
	"fundvest-go/internal/fincalc"
	"fundvest-go/internal/models"
	"fundvest-go/internal/store"
	"fundvest-go/internal/validate"
)

// LoginResponse acknowledges an OTP dispatch.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login validates the phone number, simulates the network round trip
// and records a bcrypt hash of the expected OTP as the pending login
// challenge.
func (c *Client) Login(ctx context.Context, phone string) (LoginResponse, error) {
	if !validate.Phone(phone) {
		return LoginResponse{}, apperr.Validation("invalid phone number %q", format10(phone))
	}
	if err := c.simulate(ctx, "POST", "/auth/login"); err != nil {
		return LoginResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.catalog.OTPFor(phone)), bcrypt.DefaultCost)
	if err != nil {
		return LoginResponse{}, apperr.Persistence("hash otp: %v", err)
	}
	if err := c.kv.Set(ctx, pendingOTPKey(phone), string(hash)); err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{Success: true, Message: "OTP sent successfully"}, nil
}

func pendingOTPKey(phone string) string {
	return store.KeyPendingOTP + ":" + phone
}

// format10 truncates arbitrary input before it lands in an error
// message.
func format10(s string) string {
	if len(s) > 10 {
		return s[:10] + "..."
	}
	return s
}

// VerifyOTPResponse carries the minted session token and user.
type VerifyOTPResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// VerifyOTP checks the submitted OTP against the pending challenge
// (or, when Login was skipped, directly against the credential
// catalog) and mints a signed session token. Persisting the token is
// the caller's explicit follow-up step.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (VerifyOTPResponse, error) {
	if !validate.Phone(phone) {
		return VerifyOTPResponse{}, apperr.Validation("invalid phone number %q", format10(phone))
	}
	if !validate.OTP(otp) {
		return VerifyOTPResponse{}, apperr.Validation("otp must be six digits")
	}
	if err := c.simulate(ctx, "POST", "/auth/verify-otp"); err != nil {
		return VerifyOTPResponse{}, err
	}

	hash, err := c.kv.Get(ctx, pendingOTPKey(phone))
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(otp)) != nil {
			return VerifyOTPResponse{}, apperr.Unauthorized("incorrect otp")
		}
	case errors.Is(err, store.ErrNotFound):
		if otp != c.catalog.OTPFor(phone) {
			return VerifyOTPResponse{}, apperr.Unauthorized("incorrect otp")
		}
	default:
		return VerifyOTPResponse{}, err
	}
	_ = c.kv.Delete(ctx, pendingOTPKey(phone))

	user, ok := c.catalog.UserByPhone(phone)
	if !ok {
		// Unregistered numbers still get a session in the simulator.
		user = models.User{ID: "1", Name: "John Doe", Phone: phone, Email: "john@example.com"}
	}

	token, err := SignToken(user, c.opts.JWTSecret, c.opts.TokenTTL, c.opts.Now())
	if err != nil {
		return VerifyOTPResponse{}, apperr.Persistence("sign token: %v", err)
	}
	return VerifyOTPResponse{Token: token, User: user}, nil
}

// GetPortfolio fetches the portfolio snapshot.
func (c *Client) GetPortfolio(ctx context.Context) (models.PortfolioSnapshot, error) {
	if err := c.simulate(ctx, "GET", "/portfolio"); err != nil {
		return models.PortfolioSnapshot{}, err
	}
	return c.catalog.Portfolio(), nil
}

// FundFilters narrows the mutual fund listing.
type FundFilters struct {
	Category string
	Search   string
}

// FundList is the mutual fund listing payload.
type FundList struct {
	Funds      []models.Fund     `json:"funds"`
	Categories []models.Category `json:"categories"`
}

// GetMutualFunds lists the catalog, optionally filtered by category id
// and name search.
func (c *Client) GetMutualFunds(ctx context.Context, filters FundFilters) (FundList, error) {
	if err := c.simulate(ctx, "GET", "/mutual-funds"); err != nil {
		return FundList{}, err
	}
	return FundList{
		Funds:      c.catalog.Funds(filters.Category, filters.Search),
		Categories: c.catalog.Categories(),
	}, nil
}

// GetFundDetails fetches a single fund by catalog id.
func (c *Client) GetFundDetails(ctx context.Context, id string) (models.Fund, error) {
	if err := c.simulate(ctx, "GET", "/mutual-funds/"+id); err != nil {
		return models.Fund{}, err
	}
	fund, ok := c.catalog.FundByID(id)
	if !ok {
		return models.Fund{}, apperr.NotFound("fund %q", id)
	}
	return fund, nil
}

// TransactionFilters narrows the history listing.
type TransactionFilters struct {
	Type  models.TransactionType // empty matches all
	Limit int                    // 0 means no limit
}

// GetTransactions lists the fixture history, most recent first.
func (c *Client) GetTransactions(ctx context.Context, filters TransactionFilters) ([]models.Transaction, error) {
	if err := c.simulate(ctx, "GET", "/transactions"); err != nil {
		return nil, err
	}

	all := c.catalog.Transactions()
	out := make([]models.Transaction, 0, len(all))
	for _, tx := range all {
		if filters.Type != "" && tx.Type != filters.Type {
			continue
		}
		out = append(out, tx)
		if filters.Limit > 0 && len(out) == filters.Limit {
			break
		}
	}
	return out, nil
}

// CreateTransactionRequest describes a buy, SIP setup or redemption.
type CreateTransactionRequest struct {
	Type   models.TransactionType `json:"type"`
	FundID string                 `json:"fundId"`
	Amount float64                `json:"amount"`

	// SIP-only fields.
	SIPDate       int                 `json:"sipDate,omitempty"`
	Frequency     models.SIPFrequency `json:"frequency,omitempty"`
	DurationYears int                 `json:"durationYears,omitempty"`
}

// CreateTransaction validates the request, computes units at the
// fund's NAV and returns the immutable transaction record. Lumpsum and
// SIP orders settle immediately in the simulator; redemptions stay in
// processing.
func (c *Client) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (models.Transaction, error) {
	fund, ok := c.catalog.FundByID(req.FundID)
	if !ok {
		return models.Transaction{}, apperr.NotFound("fund %q", req.FundID)
	}
	if err := validateTransactionRequest(req, fund); err != nil {
		return models.Transaction{}, err
	}

	units, err := fincalc.UnitsAllotted(req.Amount, fund.NAV)
	if err != nil {
		return models.Transaction{}, err
	}

	if err := c.simulate(ctx, "POST", "/transactions"); err != nil {
		return models.Transaction{}, err
	}

	status := models.TxSuccess
	if req.Type == models.TxRedeem {
		status = models.TxProcessing
	}

	tx := models.Transaction{
		ID:              uuid.NewString(),
		Type:            req.Type,
		FundName:        fund.Name,
		Amount:          req.Amount,
		Status:          status,
		Date:            c.opts.Now(),
		TransactionCode: newTransactionCode(),
		NAV:             fund.NAV,
		Units:           units,
	}
	if req.Type == models.TxSIP {
		tx.SIPDate = req.SIPDate
		tx.Frequency = req.Frequency
		tx.DurationYears = req.DurationYears
	}
	return tx, nil
}

func validateTransactionRequest(req CreateTransactionRequest, fund models.Fund) error {
	switch req.Type {
	case models.TxLumpsum:
		if !validate.LumpsumAmount(req.Amount) {
			return apperr.Validation("minimum lumpsum amount is %d", validate.MinLumpsumAmount)
		}
	case models.TxSIP:
		if !validate.SIPAmount(req.Amount, fund.MinSIPAmount) {
			return apperr.Validation("minimum SIP amount for %s is %v", fund.Name, fund.MinSIPAmount)
		}
		if !validate.SIPDuration(req.DurationYears) {
			return apperr.Validation("SIP duration must be at least one year")
		}
		if !validate.SIPDate(req.SIPDate) {
			return apperr.Validation("SIP date must be a day of month between 1 and 31")
		}
		if req.Frequency != models.FrequencyMonthly && req.Frequency != models.FrequencyQuarterly {
			return apperr.Validation("frequency must be monthly or quarterly")
		}
	case models.TxRedeem:
		if req.Amount <= 0 {
			return apperr.Validation("redemption amount must be positive")
		}
	default:
		return apperr.Validation("unknown transaction type %q", req.Type)
	}
	return nil
}

func newTransactionCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TXN" + raw[:12]
}

// KYCSubmitRequest carries the captured identity documents.
type KYCSubmitRequest struct {
	PANNumber     string              `json:"panNumber"`
	AadhaarNumber string              `json:"aadhaarNumber"`
	PersonalInfo  models.PersonalInfo `json:"personalInfo"`
}

// KYCSubmitResponse acknowledges a verification submission.
type KYCSubmitResponse struct {
	KYCID   string `json:"kycId"`
	Message string `json:"message"`
}

// SubmitKYC validates the document formats and simulates the
// submission. Recording the resulting status is the caller's explicit
// follow-up step.
func (c *Client) SubmitKYC(ctx context.Context, req KYCSubmitRequest) (KYCSubmitResponse, error) {
	if !validate.PAN(req.PANNumber) {
		return KYCSubmitResponse{}, apperr.Validation("invalid PAN format")
	}
	if !validate.Aadhaar(req.AadhaarNumber) {
		return KYCSubmitResponse{}, apperr.Validation("invalid Aadhaar format")
	}
	if err := c.simulate(ctx, "POST", "/kyc/submit"); err != nil {
		return KYCSubmitResponse{}, err
	}

	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return KYCSubmitResponse{
		KYCID:   "KYC" + raw[:12],
		Message: "KYC submitted successfully",
	}, nil
}

// KYCStatusResponse reports the persisted verification status.
type KYCStatusResponse struct {
	Status      models.KYCStatus `json:"status"`
	SubmittedAt string           `json:"submittedAt,omitempty"`
}

// GetKYCStatus reads the persisted status, defaulting to pending for
// fresh installs.
func (c *Client) GetKYCStatus(ctx context.Context) (KYCStatusResponse, error) {
	if err := c.simulate(ctx, "GET", "/kyc/status"); err != nil {
		return KYCStatusResponse{}, err
	}

	raw, err := c.kv.Get(ctx, store.KeyKYCStatus)
	if errors.Is(err, store.ErrNotFound) {
		return KYCStatusResponse{Status: models.KYCPending}, nil
	}
	if err != nil {
		return KYCStatusResponse{}, err
	}

	status := models.KYCStatus(raw)
	if !models.ValidKYCStatus(status) {
		status = models.KYCPending
	}
	resp := KYCStatusResponse{Status: status}
	if status == models.KYCCompleted {
		resp.SubmittedAt = c.opts.Now().Format(time.RFC3339)
	}
	return resp, nil
}

// GetMarketData fetches the market overview.
func (c *Client) GetMarketData(ctx context.Context) (models.MarketData, error) {
	if err := c.simulate(ctx, "GET", "/market/data"); err != nil {
		return models.MarketData{}, err
	}
	return c.catalog.Market(), nil
}
