package corehub

import "slices"

// ViewKind identifies which of the three lifecycle screens is shown.
type ViewKind int

const (
	ViewNotDiscovered ViewKind = iota
	ViewNotInstalled
	ViewInstalled
)

func (k ViewKind) String() string {
	switch k {
	case ViewNotDiscovered:
		return "not-discovered"
	case ViewNotInstalled:
		return "not-installed"
	case ViewInstalled:
		return "installed"
	}
	return "unknown"
}

// View describes the screen for a status: its heading and the actions it
// offers, in display order.
type View struct {
	Kind    ViewKind
	Title   string
	actions []Action
}

// Actions returns a copy of the actions offered by the view.
func (v View) Actions() []Action {
	return slices.Clone(v.actions)
}

// Offers reports whether a is one of the view's actions.
func (v View) Offers(a Action) bool {
	return slices.Contains(v.actions, a)
}

var (
	notDiscoveredView = View{
		Kind:    ViewNotDiscovered,
		Title:   "CoreHub - Not Discovered",
		actions: []Action{ActionDiscover},
	}
	notInstalledView = View{
		Kind:    ViewNotInstalled,
		Title:   "CoreHub - Discovered - Not Installed",
		actions: []Action{ActionInstall, ActionReplace},
	}
	installedView = View{
		Kind:    ViewInstalled,
		Title:   "CoreHub - Discovered - Installed",
		actions: []Action{ActionDiagnostics, ActionManageDevices, ActionUninstall},
	}
)

// ViewFor selects the view for s. Every valid status maps to exactly one
// view; an undeclared Status value panics.
func ViewFor(s Status) View {
	switch s {
	case NotDiscovered:
		return notDiscoveredView
	case DiscoveredNotInstalled:
		return notInstalledView
	case DiscoveredInstalled:
		return installedView
	}
	panic("corehub: no view for " + s.String())
}
