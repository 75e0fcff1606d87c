// Package gate decides whether navigation to a protected view may
// proceed. It is a client-side UX gate, not an authorization boundary:
// the server independently rejects unauthenticated requests.
package gate

// LoginPath is where unauthenticated navigation is redirected.
const LoginPath = "/login"

// SessionState is the one fact the gate consults. *session.Manager
// satisfies it.
type SessionState interface {
	IsAuthenticated() bool
}

// Decision is the outcome of guarding a navigation.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Allow reports whether the protected view may render.
func (d Decision) Allow() bool {
	return d.Allowed
}

// Guard evaluates the session state for a protected navigation. It must
// be called on every navigation, never cached: a logout in one view has
// to block a protected view already queued for render.
func Guard(s SessionState) Decision {
	if s.IsAuthenticated() {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: LoginPath}
}
