package service

import "oncolearn/internal/models"

// SessionState is what the guard decides over. Resolved is false while the
// session is still being rehydrated; callers must not treat that as either
// authenticated or anonymous.
type SessionState struct {
	Resolved bool
	Profile  *models.Profile
}

type RequiredLevel int

const (
	LevelAnonymousOK RequiredLevel = iota
	LevelSignedIn
	LevelAdmin
)

type DecisionKind int

const (
	// DecisionPending - session resolution still in flight; render a neutral
	// waiting state, never a cached allow or deny.
	DecisionPending DecisionKind = iota
	DecisionAllow
	// DecisionRedirectToSignIn - no session; ReturnTo remembers the requested
	// destination.
	DecisionRedirectToSignIn
	// DecisionAccessDenied - authenticated but insufficiently privileged.
	// Deliberately distinct from the sign-in redirect.
	DecisionAccessDenied
)

type Decision struct {
	Kind     DecisionKind
	ReturnTo string
}

// Decide is the Role Authorization Guard: a pure three-way decision over the
// session state and the level a protected capability requires.
func Decide(state SessionState, level RequiredLevel, requested string) Decision {
	if !state.Resolved {
		return Decision{Kind: DecisionPending}
	}

	if level == LevelAnonymousOK {
		return Decision{Kind: DecisionAllow}
	}

	if state.Profile == nil {
		return Decision{Kind: DecisionRedirectToSignIn, ReturnTo: requested}
	}

	if level == LevelSignedIn {
		return Decision{Kind: DecisionAllow}
	}

	// LevelAdmin. The role set is closed: anything that is not exactly the
	// admin role is denied, so a new or corrupt role value cannot slip
	// through to "allowed".
	switch state.Profile.Role {
	case models.RoleAdmin:
		return Decision{Kind: DecisionAllow}
	case models.RoleUser, models.RoleDoctor:
		return Decision{Kind: DecisionAccessDenied}
	default:
		return Decision{Kind: DecisionAccessDenied}
	}
}

// IsAdmin is the service-layer shorthand for transition and moderation
// authority checks.
func IsAdmin(p *models.Profile) bool {
	return p != nil && p.Role == models.RoleAdmin
}
