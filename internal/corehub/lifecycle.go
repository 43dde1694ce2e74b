package corehub

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTransitionNotAllowed is returned for an action the current status
	// does not offer.
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	// ErrNotImplemented is returned for placeholder actions.
	ErrNotImplemented = errors.New("action not implemented")
)

// Result reports the outcome of an action. Applied is true only when the
// status was changed (or reset).
type Result struct {
	Action  Action
	From    Status
	To      Status
	Applied bool
	Err     error
}

// OK reports whether the action completed without error.
func (r Result) OK() bool { return r.Err == nil }

type edge struct {
	from   Status
	action Action
}

var transitions = map[edge]Status{
	{NotDiscovered, ActionDiscover}:         DiscoveredNotInstalled,
	{DiscoveredNotInstalled, ActionInstall}: DiscoveredInstalled,
	{DiscoveredNotInstalled, ActionReplace}: DiscoveredInstalled,
	{DiscoveredInstalled, ActionUninstall}:  DiscoveredNotInstalled,
}

// Next returns the status reached by applying a from s, and whether such a
// transition exists. Reset is accepted from every status.
func Next(s Status, a Action) (Status, bool) {
	if a == ActionReset && s.Valid() {
		return NotDiscovered, true
	}
	to, ok := transitions[edge{s, a}]
	return to, ok
}

// Lifecycle holds the current status and applies actions to it. It is not
// safe for concurrent use; the owner serializes calls.
type Lifecycle struct {
	status Status
	prov   Provisioner
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithProvisioner sets the backend consulted before each transition.
func WithProvisioner(p Provisioner) Option {
	return func(l *Lifecycle) {
		if p != nil {
			l.prov = p
		}
	}
}

// NewLifecycle returns a lifecycle in NotDiscovered backed by the Simulator
// unless another provisioner is given.
func NewLifecycle(opts ...Option) *Lifecycle {
	l := &Lifecycle{status: NotDiscovered, prov: Simulator{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Status returns the current status.
func (l *Lifecycle) Status() Status { return l.status }

// View returns the view for the current status.
func (l *Lifecycle) View() View { return ViewFor(l.status) }

// Apply runs a against the current status.
func (l *Lifecycle) Apply(ctx context.Context, a Action) Result {
	res := Result{Action: a, From: l.status, To: l.status}

	if a == ActionReset {
		l.status = NotDiscovered
		res.To = l.status
		res.Applied = true
		return res
	}
	if !ViewFor(l.status).Offers(a) {
		res.Err = fmt.Errorf("%w: %s from %s", ErrTransitionNotAllowed, a, l.status)
		return res
	}
	if !a.Implemented() {
		res.Err = fmt.Errorf("%s: %w", a, ErrNotImplemented)
		return res
	}

	next, ok := Next(l.status, a)
	if !ok {
		res.Err = fmt.Errorf("%w: %s from %s", ErrTransitionNotAllowed, a, l.status)
		return res
	}
	if err := provision(ctx, l.prov, a); err != nil {
		res.Err = fmt.Errorf("%s: %w", a, err)
		return res
	}

	l.status = next
	res.To = next
	res.Applied = true
	return res
}

// Discover moves NotDiscovered to DiscoveredNotInstalled.
func (l *Lifecycle) Discover(ctx context.Context) Result { return l.Apply(ctx, ActionDiscover) }

// Install moves DiscoveredNotInstalled to DiscoveredInstalled.
func (l *Lifecycle) Install(ctx context.Context) Result { return l.Apply(ctx, ActionInstall) }

// Replace currently behaves exactly like Install.
func (l *Lifecycle) Replace(ctx context.Context) Result { return l.Apply(ctx, ActionReplace) }

// Uninstall moves DiscoveredInstalled back to DiscoveredNotInstalled.
func (l *Lifecycle) Uninstall(ctx context.Context) Result { return l.Apply(ctx, ActionUninstall) }

func (l *Lifecycle) Diagnostics(ctx context.Context) Result {
	return l.Apply(ctx, ActionDiagnostics)
}

func (l *Lifecycle) ManageDevices(ctx context.Context) Result {
	return l.Apply(ctx, ActionManageDevices)
}

// Reset returns to NotDiscovered from any status.
func (l *Lifecycle) Reset() Result { return l.Apply(context.Background(), ActionReset) }
