package state

import (
	"sync"

	"fundvest-go/internal/models"
)

// KYCState is the KYC container snapshot. Status never moves backward
// to pending once a field update has pushed it to in-progress.
type KYCState struct {
	Status        models.KYCStatus
	PANNumber     string
	AadhaarNumber string
	PersonalInfo  models.PersonalInfo
	Loading       bool
	Error         string
}

// KYCAction is a named KYC transition.
type KYCAction interface{ isKYCAction() }

type (
	// SetPAN stores the PAN number; the first field update moves a
	// pending record to in-progress.
	SetPAN struct{ Value string }
	// SetAadhaar stores the Aadhaar number, same status rule as SetPAN.
	SetAadhaar struct{ Value string }
	// MergePersonalInfo overlays non-empty profile fields.
	MergePersonalInfo struct{ Info models.PersonalInfo }
	// SubmitStart marks the submission in flight.
	SubmitStart struct{}
	// SubmitSuccess completes the KYC record.
	SubmitSuccess struct{}
	// SubmitFailure records the error without advancing the status.
	SubmitFailure struct{ Reason string }
	// RejectKYC is the explicit rejection transition.
	RejectKYC struct{ Reason string }
	// ClearKYCError drops a recorded error.
	ClearKYCError struct{}
)

func (SetPAN) isKYCAction()            {}
func (SetAadhaar) isKYCAction()        {}
func (MergePersonalInfo) isKYCAction() {}
func (SubmitStart) isKYCAction()       {}
func (SubmitSuccess) isKYCAction()     {}
func (SubmitFailure) isKYCAction()     {}
func (RejectKYC) isKYCAction()         {}
func (ClearKYCError) isKYCAction()     {}

// InitialKYCState starts pending with empty fields. Pass a previously
// persisted status to resume where the user left off.
func InitialKYCState(status models.KYCStatus) KYCState {
	if !models.ValidKYCStatus(status) {
		status = models.KYCPending
	}
	return KYCState{Status: status}
}

func advanceFromPending(s models.KYCStatus) models.KYCStatus {
	if s == models.KYCPending {
		return models.KYCInProgress
	}
	return s
}

// ReduceKYC applies a transition and returns the new snapshot.
func ReduceKYC(s KYCState, a KYCAction) KYCState {
	switch act := a.(type) {
	case SetPAN:
		s.PANNumber = act.Value
		s.Status = advanceFromPending(s.Status)
	case SetAadhaar:
		s.AadhaarNumber = act.Value
		s.Status = advanceFromPending(s.Status)
	case MergePersonalInfo:
		s.PersonalInfo = mergePersonalInfo(s.PersonalInfo, act.Info)
	case SubmitStart:
		s.Loading = true
		s.Error = ""
	case SubmitSuccess:
		s.Loading = false
		s.Status = models.KYCCompleted
	case SubmitFailure:
		s.Loading = false
		s.Error = act.Reason
	case RejectKYC:
		if s.Status == models.KYCCompleted {
			return s
		}
		s.Loading = false
		s.Status = models.KYCRejected
		s.Error = act.Reason
	case ClearKYCError:
		s.Error = ""
	}
	return s
}

func mergePersonalInfo(base, overlay models.PersonalInfo) models.PersonalInfo {
	if overlay.Name != "" {
		base.Name = overlay.Name
	}
	if overlay.Email != "" {
		base.Email = overlay.Email
	}
	if overlay.Phone != "" {
		base.Phone = overlay.Phone
	}
	if overlay.Address != "" {
		base.Address = overlay.Address
	}
	if overlay.DateOfBirth != "" {
		base.DateOfBirth = overlay.DateOfBirth
	}
	return base
}

// KYC is the mutex-guarded KYC container.
type KYC struct {
	mu    sync.RWMutex
	state KYCState
}

func NewKYC(initial KYCState) *KYC {
	return &KYC{state: initial}
}

func (k *KYC) State() KYCState {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.state
}

func (k *KYC) Dispatch(a KYCAction) KYCState {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.state = ReduceKYC(k.state, a)
	return k.state
}

// Record exposes the snapshot as a KYC record for submission payloads.
func (k *KYC) Record() models.KYCRecord {
	s := k.State()
	return models.KYCRecord{
		PANNumber:     s.PANNumber,
		AadhaarNumber: s.AadhaarNumber,
		Status:        s.Status,
		PersonalInfo:  s.PersonalInfo,
	}
}
