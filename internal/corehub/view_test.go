package corehub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewForIsTotal(t *testing.T) {
	seen := map[ViewKind]Status{}
	for _, s := range Statuses() {
		v := ViewFor(s)
		prev, dup := seen[v.Kind]
		require.False(t, dup, "%s and %s share view %s", prev, s, v.Kind)
		seen[v.Kind] = s
		assert.NotEmpty(t, v.Title)
		assert.NotEmpty(t, v.Actions())
	}
	assert.Len(t, seen, 3)
}

func TestViewForIsPure(t *testing.T) {
	for _, s := range Statuses() {
		first := ViewFor(s)
		second := ViewFor(s)
		assert.Equal(t, first.Kind, second.Kind)
		assert.Equal(t, first.Title, second.Title)
		assert.Equal(t, first.Actions(), second.Actions())
	}
}

func TestViewActionsAreCopies(t *testing.T) {
	acts := ViewFor(NotDiscovered).Actions()
	acts[0] = ActionUninstall

	assert.Equal(t, []Action{ActionDiscover}, ViewFor(NotDiscovered).Actions())
}

func TestViewTitlesAndActions(t *testing.T) {
	tests := []struct {
		status  Status
		title   string
		actions []Action
	}{
		{NotDiscovered, "CoreHub - Not Discovered", []Action{ActionDiscover}},
		{DiscoveredNotInstalled, "CoreHub - Discovered - Not Installed", []Action{ActionInstall, ActionReplace}},
		{DiscoveredInstalled, "CoreHub - Discovered - Installed", []Action{ActionDiagnostics, ActionManageDevices, ActionUninstall}},
	}
	for _, tt := range tests {
		v := ViewFor(tt.status)
		assert.Equal(t, tt.title, v.Title)
		assert.Equal(t, tt.actions, v.Actions())
	}
}

func TestViewForUnknownStatusPanics(t *testing.T) {
	assert.Panics(t, func() { ViewFor(Status(42)) })
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "not discovered", NotDiscovered.Label())
	assert.Equal(t, "discovered not installed", DiscoveredNotInstalled.Label())
	assert.Equal(t, "discovered installed", DiscoveredInstalled.Label())
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStatus("installed-twice")
	assert.Error(t, err)
}

func TestActionLabels(t *testing.T) {
	assert.Equal(t, "Discover CoreHub", ActionDiscover.Label())
	assert.Equal(t, "Manage Devices", ActionManageDevices.Label())
	assert.False(t, ActionDiagnostics.Implemented())
	assert.True(t, ActionReplace.Implemented())
	assert.Equal(t, "Action(99)", Action(99).String())
}
