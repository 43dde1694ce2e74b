package corehub

import "context"

// Provisioner performs the side of an action that touches the hub itself.
// A non-nil error aborts the transition and leaves the status unchanged.
type Provisioner interface {
	Discover(ctx context.Context) error
	Install(ctx context.Context) error
	Replace(ctx context.Context) error
	Uninstall(ctx context.Context) error
}

// Simulator is a Provisioner with no hub behind it; every call succeeds.
type Simulator struct{}

func (Simulator) Discover(context.Context) error  { return nil }
func (Simulator) Install(context.Context) error   { return nil }
func (Simulator) Replace(context.Context) error   { return nil }
func (Simulator) Uninstall(context.Context) error { return nil }

func provision(ctx context.Context, p Provisioner, a Action) error {
	switch a {
	case ActionDiscover:
		return p.Discover(ctx)
	case ActionInstall:
		return p.Install(ctx)
	case ActionReplace:
		return p.Replace(ctx)
	case ActionUninstall:
		return p.Uninstall(ctx)
	}
	return nil
}
