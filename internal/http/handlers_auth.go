package http

import (
	"github.com/gin-gonic/gin"

	"fundvest-go/internal/format"
	"fundvest-go/internal/state"
	"fundvest-go/internal/store"
	"fundvest-go/internal/validate"
)

// POST /v1/auth/login
func (s *Server) login(c *gin.Context) {
	var input struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	// Validation errors surface before any simulated network call.
	if !validate.Phone(input.PhoneNumber) {
		c.JSON(400, gin.H{"error": "invalid_phone", "message": "enter a valid 10-digit mobile number"})
		return
	}

	s.app.Session.Dispatch(state.LoginStart{})

	resp, err := s.api.Login(c.Request.Context(), input.PhoneNumber)
	if err != nil {
		s.app.Session.Dispatch(state.LoginFailure{Reason: err.Error()})
		s.respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":            resp.Success,
		"message":            resp.Message,
		"phoneNumber":        format.PhoneNumber(input.PhoneNumber),
		"resendAfterSeconds": s.cfg.OTPResendSeconds,
	})
}

// POST /v1/auth/verify-otp
func (s *Server) verifyOTP(c *gin.Context) {
	var input struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	resp, err := s.api.VerifyOTP(c.Request.Context(), input.PhoneNumber, input.OTP)
	if err != nil {
		s.app.Session.Dispatch(state.LoginFailure{Reason: err.Error()})
		s.respondError(c, err)
		return
	}

	s.app.Session.Dispatch(state.LoginSuccess{User: resp.User, Token: resp.Token})

	// Persistence is an explicit step after the state transition, not
	// hidden inside it.
	if err := store.SaveLogin(c.Request.Context(), s.kv, resp.User, resp.Token); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"token": resp.Token, "user": resp.User})
}

// POST /v1/auth/logout
func (s *Server) logout(c *gin.Context) {
	s.app.Session.Dispatch(state.Logout{})

	if err := store.ClearLogin(c.Request.Context(), s.kv); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}

// POST /v1/onboarding/complete
func (s *Server) completeOnboarding(c *gin.Context) {
	s.app.Session.Dispatch(state.CompleteOnboarding{})

	if err := store.SaveOnboardingComplete(c.Request.Context(), s.kv); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true})
}
