// Package corehub models the discovery and installation lifecycle of a
// CoreHub and maps each lifecycle status to the view that presents it.
package corehub

import (
	"fmt"
	"strings"
)

// Status is the lifecycle position of the CoreHub.
type Status int

const (
	NotDiscovered Status = iota
	DiscoveredNotInstalled
	DiscoveredInstalled
)

var statusNames = [...]string{
	NotDiscovered:          "not-discovered",
	DiscoveredNotInstalled: "discovered-not-installed",
	DiscoveredInstalled:    "discovered-installed",
}

// Statuses returns every status in lifecycle order.
func Statuses() []Status {
	return []Status{NotDiscovered, DiscoveredNotInstalled, DiscoveredInstalled}
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= NotDiscovered && s <= DiscoveredInstalled
}

// String returns the kebab-case name, e.g. "discovered-not-installed".
func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Label is the human readout of the status: separators become spaces.
func (s Status) Label() string {
	return strings.ReplaceAll(s.String(), "-", " ")
}

// ParseStatus converts a kebab-case name back into a Status.
func ParseStatus(name string) (Status, error) {
	for _, s := range Statuses() {
		if statusNames[s] == name {
			return s, nil
		}
	}
	return NotDiscovered, fmt.Errorf("unknown corehub status %q", name)
}
