package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fundvest-go/internal/format"
	"fundvest-go/internal/mockapi"
	"fundvest-go/internal/models"
	"fundvest-go/internal/state"
	"fundvest-go/internal/store"
	"fundvest-go/internal/validate"
)

// POST /v1/kyc/submit
func (s *Server) submitKYC(c *gin.Context) {
	var req mockapi.KYCSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid_request", "message": err.Error()})
		return
	}

	// Surface field errors before the simulated round trip.
	if !validate.PAN(req.PANNumber) {
		c.JSON(400, gin.H{"error": "invalid_pan", "message": "PAN must match AAAAA9999A"})
		return
	}
	if !validate.Aadhaar(req.AadhaarNumber) {
		c.JSON(400, gin.H{"error": "invalid_aadhaar", "message": "Aadhaar must be 12 digits"})
		return
	}

	req.PANNumber = strings.ToUpper(req.PANNumber)
	s.app.KYC.Dispatch(state.SetPAN{Value: req.PANNumber})
	s.app.KYC.Dispatch(state.SetAadhaar{Value: req.AadhaarNumber})
	s.app.KYC.Dispatch(state.MergePersonalInfo{Info: req.PersonalInfo})
	s.app.KYC.Dispatch(state.SubmitStart{})

	resp, err := s.api.SubmitKYC(c.Request.Context(), req)
	if err != nil {
		s.app.KYC.Dispatch(state.SubmitFailure{Reason: err.Error()})
		s.respondError(c, err)
		return
	}

	kycState := s.app.KYC.Dispatch(state.SubmitSuccess{})
	if err := store.SaveKYCStatus(c.Request.Context(), s.kv, kycState.Status); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"kycId":   resp.KYCID,
		"message": resp.Message,
		"status":  kycState.Status,
		"display": gin.H{
			"panNumber":     format.Mask(kycState.PANNumber),
			"aadhaarNumber": format.Mask(kycState.AadhaarNumber),
		},
	})
}

// GET /v1/kyc/status
func (s *Server) getKYCStatus(c *gin.Context) {
	resp, err := s.api.GetKYCStatus(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	// Keep the container in step with what the store reports; status
	// never moves backward so a pending report cannot undo completion.
	if resp.Status == models.KYCRejected {
		s.app.KYC.Dispatch(state.RejectKYC{Reason: "verification rejected"})
	}

	c.JSON(200, gin.H{"data": resp})
}
