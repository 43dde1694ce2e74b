package corehub

import "fmt"

// Action is something a user can ask the lifecycle to do.
type Action int

const (
	ActionDiscover Action = iota
	ActionInstall
	ActionReplace
	ActionUninstall
	ActionDiagnostics
	ActionManageDevices
	// ActionReset is issued by sign-out, never by a view.
	ActionReset
)

type actionInfo struct {
	name        string
	label       string
	implemented bool
}

var actions = [...]actionInfo{
	ActionDiscover:      {"discover", "Discover CoreHub", true},
	ActionInstall:       {"install", "Install CoreHub", true},
	ActionReplace:       {"replace", "Replace CoreHub", true},
	ActionUninstall:     {"uninstall", "Uninstall CoreHub", true},
	ActionDiagnostics:   {"diagnostics", "Diagnostics", false},
	ActionManageDevices: {"manage-devices", "Manage Devices", false},
	ActionReset:         {"reset", "Reset", true},
}

func (a Action) valid() bool {
	return a >= ActionDiscover && a <= ActionReset
}

// String returns the short machine name of the action.
func (a Action) String() string {
	if !a.valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actions[a].name
}

// Label is the button caption for the action.
func (a Action) Label() string {
	if !a.valid() {
		return a.String()
	}
	return actions[a].label
}

// Implemented reports whether triggering the action does anything yet.
// Diagnostics and ManageDevices are placeholders.
func (a Action) Implemented() bool {
	return a.valid() && actions[a].implemented
}
