package service

import "errors"

var (
	ErrNotOnboarded     = errors.New("no profile: run onboarding first")
	ErrAlreadyOnboarded = errors.New("profile already exists")
	ErrInvalidInput     = errors.New("invalid input")

	ErrNoProgramDefined     = errors.New("no session defined for this week and day")
	ErrNoActiveSession      = errors.New("no active session")
	ErrSessionAlreadyActive = errors.New("a session is already active")
	ErrSeriesOutOfRange     = errors.New("series index out of range")

	// ErrRecoveryConfirmationRequired is returned by Start on a RECOVERY day
	// or during a mandatory deload until the caller confirms.
	ErrRecoveryConfirmationRequired = errors.New("confirmation required before training")

	ErrUnknownExercise  = errors.New("unknown exercise")
	ErrUnknownChallenge = errors.New("unknown challenge")
	ErrUnknownQuest     = errors.New("unknown quest")
	ErrUnknownSession   = errors.New("unknown session")
)
