// Package fixtures bundles the static catalogs that stand in for a
// remote backend: login credentials, portfolio snapshot, mutual-fund
// catalog, transaction history and market data. Every payload is
// checked against its JSON Schema at load time so the simulator can
// never serve a response inconsistent with its declared shape.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"fundvest-go/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// CredentialUser is one login identity from the credential catalog.
type CredentialUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Credentials maps phone numbers to their expected OTPs.
type Credentials struct {
	Users      []CredentialUser  `json:"users"`
	OTPs       map[string]string `json:"otps"`
	DefaultOTP string            `json:"defaultOtp"`
}

// Catalog holds all parsed fixture data. Accessors hand out copies so
// callers cannot mutate the shared catalog.
type Catalog struct {
	credentials  Credentials
	portfolio    models.PortfolioSnapshot
	funds        []models.Fund
	categories   []models.Category
	transactions []models.Transaction
	market       models.MarketData
}

// Load parses and schema-validates every fixture file.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := loadChecked("credentials", &c.credentials); err != nil {
		return nil, err
	}
	if err := loadChecked("portfolio", &c.portfolio); err != nil {
		return nil, err
	}

	var fundFile struct {
		Funds      []models.Fund     `json:"funds"`
		Categories []models.Category `json:"categories"`
	}
	if err := loadChecked("mutualfunds", &fundFile); err != nil {
		return nil, err
	}
	c.funds = fundFile.Funds
	c.categories = fundFile.Categories

	var txFile struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := loadChecked("transactions", &txFile); err != nil {
		return nil, err
	}
	c.transactions = txFile.Transactions

	if err := loadChecked("market", &c.market); err != nil {
		return nil, err
	}

	return c, nil
}

// loadChecked reads data/<name>.json, validates it against
// schemas/<name>.schema.json and unmarshals it into out.
func loadChecked(name string, out any) error {
	raw, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	schema, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
	if err != nil {
		return fmt.Errorf("read schema %s: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validate fixture %s: %w", name, err)
	}
	if !result.Valid() {
		var details []string
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return fmt.Errorf("fixture %s violates schema: %s", name, strings.Join(details, "; "))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}

// Schema returns the raw JSON Schema for a fixture, for callers that
// want to check an outgoing payload against it.
func Schema(name string) ([]byte, error) {
	return schemaFS.ReadFile("schemas/" + name + ".schema.json")
}

// UserByPhone finds the registered identity for a phone number.
func (c *Catalog) UserByPhone(phone string) (models.User, bool) {
	for _, u := range c.credentials.Users {
		if u.Phone == phone {
			return models.User{ID: u.ID, Name: u.Name, Phone: u.Phone, Email: u.Email}, true
		}
	}
	return models.User{}, false
}

// OTPFor returns the expected OTP for a phone number, falling back to
// the catalog default for numbers without a dedicated entry.
func (c *Catalog) OTPFor(phone string) string {
	if otp, ok := c.credentials.OTPs[phone]; ok {
		return otp
	}
	return c.credentials.DefaultOTP
}

// Portfolio returns a copy of the portfolio snapshot.
func (c *Catalog) Portfolio() models.PortfolioSnapshot {
	snap := c.portfolio
	snap.Holdings = append([]models.Holding(nil), c.portfolio.Holdings...)
	return snap
}

// Funds returns the catalog filtered by category id and a
// case-insensitive name search. Empty filters match everything; the
// category "all" is treated as empty.
func (c *Catalog) Funds(category, search string) []models.Fund {
	out := make([]models.Fund, 0, len(c.funds))
	search = strings.ToLower(strings.TrimSpace(search))
	for _, f := range c.funds {
		if category != "" && category != "all" && f.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(f.Name), search) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FundByID looks a fund up by its catalog identifier.
func (c *Catalog) FundByID(id string) (models.Fund, bool) {
	for _, f := range c.funds {
		if f.ID == id {
			return f, true
		}
	}
	return models.Fund{}, false
}

// Categories returns a copy of the category list.
func (c *Catalog) Categories() []models.Category {
	return append([]models.Category(nil), c.categories...)
}

// Transactions returns a copy of the history, most recent first as
// stored.
func (c *Catalog) Transactions() []models.Transaction {
	return append([]models.Transaction(nil), c.transactions...)
}

// Market returns a copy of the market overview.
func (c *Catalog) Market() models.MarketData {
	m := c.market
	m.TopGainers = append([]models.MoverFund(nil), c.market.TopGainers...)
	m.TopLosers = append([]models.MoverFund(nil), c.market.TopLosers...)
	return m
}
