// Package http exposes the simulator over REST: the same operations
// the mobile screens invoke, wired through the mock backend client,
// the state containers and the persisted key-value store.
package http

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"fundvest-go/internal/apperr"
	"fundvest-go/internal/config"
	"fundvest-go/internal/mockapi"
	"fundvest-go/internal/state"
	"fundvest-go/internal/store"
)

// Server bundles the handler dependencies.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	api    *mockapi.Client
	kv     store.KV
	app    *state.App
}

// NewServer builds the gin engine with all routes registered.
func NewServer(cfg *config.Config, logger *slog.Logger, api *mockapi.Client, kv store.KV, app *state.App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors(cfg))
	r.Use(requestLogger(logger))

	s := &Server{cfg: cfg, logger: logger, api: api, kv: kv, app: app}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.POST("/v1/auth/login", s.login)
	r.POST("/v1/auth/verify-otp", s.verifyOTP)

	authorized := r.Group("/v1")
	authorized.Use(AuthMiddleware(cfg.JWTSecret))
	{
		authorized.POST("/auth/logout", s.logout)
		authorized.POST("/onboarding/complete", s.completeOnboarding)

		authorized.GET("/portfolio", s.getPortfolio)
		authorized.GET("/mutual-funds", s.listMutualFunds)
		authorized.GET("/mutual-funds/:id", s.getFundDetails)

		authorized.GET("/transactions", s.listTransactions)
		authorized.POST("/transactions", s.createTransaction)
		authorized.POST("/sip/projection", s.sipProjection)

		authorized.POST("/kyc/submit", s.submitKYC)
		authorized.GET("/kyc/status", s.getKYCStatus)

		authorized.GET("/market/data", s.getMarketData)
	}

	return r
}

// respondError maps the error taxonomy onto HTTP status codes. All
// errors are recoverable by retry; none are fatal.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(422, gin.H{"error": "validation_failed", "message": err.Error()})
	case errors.Is(err, apperr.ErrUnauthorized):
		c.JSON(401, gin.H{"error": "unauthorized", "message": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(404, gin.H{"error": "not_found", "message": err.Error()})
	case errors.Is(err, apperr.ErrNetwork):
		c.JSON(502, gin.H{"error": "network_error", "message": "request failed, please retry"})
	case errors.Is(err, apperr.ErrPersistence):
		s.logger.Error("storage failure", "error", err)
		c.JSON(500, gin.H{"error": "storage_error", "message": "could not persist data"})
	default:
		s.logger.Error("unexpected failure", "error", err)
		c.JSON(500, gin.H{"error": "internal_error"})
	}
}
