// Package state holds the four application state containers: session,
// KYC, portfolio and transactions. Each container owns an immutable
// snapshot and mutates it only through a pure reducer, so transitions
// are testable as plain functions. Containers serialize access with a
// mutex; reducers never touch shared state.
package state

import (
	"sync"

	"fundvest-go/internal/models"
)

// SessionPhase is the authentication lifecycle state.
type SessionPhase string

const (
	PhaseAnonymous      SessionPhase = "anonymous"
	PhaseAuthenticating SessionPhase = "authenticating"
	PhaseAuthenticated  SessionPhase = "authenticated"
)

// SessionState is the session container snapshot.
type SessionState struct {
	Phase                  SessionPhase
	User                   *models.User
	Token                  string
	HasCompletedOnboarding bool
	Error                  string
}

// SessionAction is a named session transition.
type SessionAction interface{ isSessionAction() }

type (
	// LoginStart moves anonymous -> authenticating.
	LoginStart struct{}
	// LoginSuccess stores the user and token and authenticates.
	LoginSuccess struct {
		User  models.User
		Token string
	}
	// LoginFailure records the reason and returns to anonymous.
	LoginFailure struct{ Reason string }
	// Logout clears user and token.
	Logout struct{}
	// CompleteOnboarding sets the onboarding flag; idempotent.
	CompleteOnboarding struct{}
	// ClearSessionError drops a recorded login failure reason.
	ClearSessionError struct{}
)

func (LoginStart) isSessionAction()         {}
func (LoginSuccess) isSessionAction()       {}
func (LoginFailure) isSessionAction()       {}
func (Logout) isSessionAction()             {}
func (CompleteOnboarding) isSessionAction() {}
func (ClearSessionError) isSessionAction()  {}

// InitialSessionState is anonymous with onboarding incomplete.
func InitialSessionState() SessionState {
	return SessionState{Phase: PhaseAnonymous}
}

// ReduceSession applies a transition and returns the new snapshot.
// Transitions not legal from the current phase leave the state
// unchanged, keeping the reducer total.
func ReduceSession(s SessionState, a SessionAction) SessionState {
	switch act := a.(type) {
	case LoginStart:
		if s.Phase != PhaseAnonymous {
			return s
		}
		s.Phase = PhaseAuthenticating
		s.Error = ""
	case LoginSuccess:
		if s.Phase == PhaseAuthenticated {
			return s
		}
		user := act.User
		s.Phase = PhaseAuthenticated
		s.User = &user
		s.Token = act.Token
		s.Error = ""
	case LoginFailure:
		if s.Phase != PhaseAuthenticating {
			return s
		}
		s.Phase = PhaseAnonymous
		s.Error = act.Reason
	case Logout:
		if s.Phase != PhaseAuthenticated {
			return s
		}
		s.Phase = PhaseAnonymous
		s.User = nil
		s.Token = ""
	case CompleteOnboarding:
		s.HasCompletedOnboarding = true
	case ClearSessionError:
		s.Error = ""
	}
	return s
}

// Session is the mutex-guarded session container.
type Session struct {
	mu    sync.RWMutex
	state SessionState
}

// NewSession builds a container from an initial snapshot, typically
// rehydrated from the key-value store at boot.
func NewSession(initial SessionState) *Session {
	return &Session{state: initial}
}

// State returns the current snapshot.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a transition and returns the resulting snapshot.
func (s *Session) Dispatch(a SessionAction) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = ReduceSession(s.state, a)
	return s.state
}
