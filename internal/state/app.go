package state

import "fundvest-go/internal/models"

// App bundles the four containers for one simulated device session.
type App struct {
	Session      *Session
	KYC          *KYC
	Portfolio    *Portfolio
	Transactions *Transactions
}

// Boot carries the values rehydrated from the key-value store at
// launch.
type Boot struct {
	User               *models.User
	Token              string
	OnboardingComplete bool
	KYCStatus          models.KYCStatus
}

// NewApp builds the containers from rehydrated boot values. A stored
// token restores the authenticated phase directly.
func NewApp(boot Boot) *App {
	session := InitialSessionState()
	session.HasCompletedOnboarding = boot.OnboardingComplete
	if boot.Token != "" && boot.User != nil {
		session.Phase = PhaseAuthenticated
		session.User = boot.User
		session.Token = boot.Token
	}

	return &App{
		Session:      NewSession(session),
		KYC:          NewKYC(InitialKYCState(boot.KYCStatus)),
		Portfolio:    NewPortfolio(),
		Transactions: NewTransactions(),
	}
}
