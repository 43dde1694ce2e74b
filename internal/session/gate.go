// Package session gates the console behind a sign-in and owns the CoreHub
// lifecycle for the signed-in user.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwulff/corehub/internal/corehub"
)

var (
	// ErrSignedOut is returned for lifecycle actions attempted without a
	// signed-in user.
	ErrSignedOut = errors.New("not signed in")
	// ErrRejected is returned when the authenticator refuses credentials.
	ErrRejected = errors.New("sign-in rejected")
)

// Authenticator decides whether a sign-in succeeds.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

// AcceptAll signs in any username and password.
type AcceptAll struct{}

func (AcceptAll) Authenticate(context.Context, string, string) error { return nil }

// Result reports the outcome of SignIn or SignOut.
type Result struct {
	SignedIn  bool
	SessionID string
	Hub       corehub.Result // lifecycle reset done by SignOut
	Err       error
}

// Snapshot is a read-only copy of the gate state for rendering.
type Snapshot struct {
	SignedIn  bool
	Username  string
	SessionID string
	Status    corehub.Status
}

// View returns the lifecycle view for the snapshot's status.
func (s Snapshot) View() corehub.View { return corehub.ViewFor(s.Status) }

// Gate tracks whether a user is signed in. It is not safe for concurrent
// use.
type Gate struct {
	signedIn  bool
	username  string
	sessionID string

	hub    *corehub.Lifecycle
	auth   Authenticator
	logger *slog.Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithAuthenticator replaces the default AcceptAll authenticator.
func WithAuthenticator(a Authenticator) Option {
	return func(g *Gate) {
		if a != nil {
			g.auth = a
		}
	}
}

// WithLifecycle supplies the lifecycle the gate owns.
func WithLifecycle(l *corehub.Lifecycle) Option {
	return func(g *Gate) {
		if l != nil {
			g.hub = l
		}
	}
}

// WithLogger sets the logger for sign-in and lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGate returns a signed-out gate.
func NewGate(opts ...Option) *Gate {
	g := &Gate{
		hub:    corehub.NewLifecycle(),
		auth:   AcceptAll{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SignedIn reports whether a user is signed in.
func (g *Gate) SignedIn() bool { return g.signedIn }

// Snapshot copies the current state.
func (g *Gate) Snapshot() Snapshot {
	return Snapshot{
		SignedIn:  g.signedIn,
		Username:  g.username,
		SessionID: g.sessionID,
		Status:    g.hub.Status(),
	}
}

// SignIn authenticates and marks the gate signed in. The lifecycle status
// is left as it is.
func (g *Gate) SignIn(ctx context.Context, username, password string) Result {
	if err := g.auth.Authenticate(ctx, username, password); err != nil {
		g.logger.Warn("sign-in rejected", "user", username, "error", err)
		return Result{Err: fmt.Errorf("%w: %w", ErrRejected, err)}
	}

	g.signedIn = true
	g.username = username
	g.sessionID = uuid.NewString()
	g.logger.Info("signed in", "user", username, "session", g.sessionID)

	return Result{SignedIn: true, SessionID: g.sessionID}
}

// SignOut clears the user and resets the lifecycle to NotDiscovered.
func (g *Gate) SignOut() Result {
	id := g.sessionID
	g.signedIn = false
	g.username = ""
	g.sessionID = ""

	hub := g.hub.Reset()
	g.logger.Info("signed out", "session", id, "from", hub.From.String())

	return Result{SessionID: id, Hub: hub}
}

// Do applies a lifecycle action on behalf of the signed-in user.
func (g *Gate) Do(ctx context.Context, a corehub.Action) corehub.Result {
	if !g.signedIn {
		status := g.hub.Status()
		return corehub.Result{Action: a, From: status, To: status, Err: ErrSignedOut}
	}

	res := g.hub.Apply(ctx, a)
	if res.Err != nil {
		g.logger.Debug("action refused", "action", a.String(), "status", res.From.String(), "error", res.Err)
		return res
	}
	g.logger.Info("corehub transition",
		"action", a.String(),
		"from", res.From.String(),
		"to", res.To.String(),
		"session", g.sessionID,
	)
	return res
}
