package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwulff/corehub/internal/corehub"
	"github.com/jwulff/corehub/internal/db"
	"github.com/jwulff/corehub/internal/session"
	"github.com/jwulff/corehub/internal/ui"
)

const accountBlurb = "Here you can manage your account details, change password, and set preferences."

// View renders the full TUI. Rendering never changes gate state.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	snap := m.gate.Snapshot()
	if !snap.SignedIn {
		return m.renderSignIn()
	}

	var sections []string

	sections = append(sections, m.renderNav())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	switch m.route {
	case RouteAccount:
		sections = append(sections, m.renderAccount(snap))
	default:
		sections = append(sections, m.renderHub(snap))
	}

	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.notice != "" {
		sections = append(sections, ui.NoticeStyle.Render(m.notice))
	}

	sections = append(sections, m.renderStatus(snap))
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderSignIn() string {
	var rows []string
	rows = append(rows, ui.FormTitleStyle.Render("Sign In"))
	for i, in := range m.inputs {
		style := ui.InputStyle
		if i == m.focusIndex {
			style = ui.InputFocusedStyle
		}
		rows = append(rows, style.Render(in.View()))
	}
	rows = append(rows, "")
	rows = append(rows, ui.ButtonStyle(ui.ColorBlue, m.focusIndex == fieldPassword).Render("Sign In"))
	if m.notice != "" {
		rows = append(rows, ui.ErrorTextStyle.Render(m.notice))
	}

	form := ui.FormStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	help := renderHelp([]key.Binding{
		m.formKeys.Next, m.formKeys.Prev, m.formKeys.Submit, m.formKeys.Quit,
	})

	return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, form, help))
}

func (m Model) renderNav() string {
	title := ui.TitleStyle.Render(m.title)

	items := []string{
		navItem(m.keys.Account, m.route == RouteAccount),
		navItem(m.keys.Home, m.route == RouteHome),
		navItem(m.keys.SignOut, false),
	}
	right := strings.Join(items, "  ")

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func navItem(b key.Binding, active bool) string {
	label := fmt.Sprintf("[%s] %s", b.Help().Key, b.Help().Desc)
	if active {
		return ui.NavItemActiveStyle.Render(label)
	}
	return ui.NavItemStyle.Render(label)
}

func (m Model) renderHub(snap session.Snapshot) string {
	v := snap.View()
	actions := v.Actions()
	sel := m.selectedIndex(len(actions))

	buttons := make([]string, len(actions))
	for i, a := range actions {
		label := fmt.Sprintf("%d %s", i+1, a.Label())
		buttons[i] = ui.ButtonStyle(actionColor(a), i == sel).Render(label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		ui.HeadingStyle.Render(v.Title),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
	)
}

func actionColor(a corehub.Action) lipgloss.Color {
	switch a {
	case corehub.ActionDiscover:
		return ui.ColorGreen
	case corehub.ActionInstall:
		return ui.ColorBlue
	case corehub.ActionReplace:
		return ui.ColorYellow
	case corehub.ActionDiagnostics:
		return ui.ColorPurple
	case corehub.ActionManageDevices:
		return ui.ColorIndigo
	case corehub.ActionUninstall:
		return ui.ColorRed
	}
	return ui.ColorGray
}

func (m Model) renderAccount(snap session.Snapshot) string {
	user := snap.Username
	if user == "" {
		user = "(no username)"
	}

	lines := []string{
		ui.HeadingStyle.Render("Account Management"),
		wrapText(accountBlurb, max(20, m.width-2)),
		"",
		"Signed in as " + user,
		ui.DimStyle.Render("Session " + snap.SessionID),
		"",
		ui.HeadingStyle.Render("Recent activity"),
	}

	switch {
	case m.activityErr != "":
		lines = append(lines, ui.ErrorTextStyle.Render("  Activity unavailable: "+m.activityErr))
	case len(m.activity) == 0:
		lines = append(lines, ui.DimStyle.Render("  No activity yet"))
	default:
		for _, a := range m.activity {
			ts := ui.TimestampStyle.Render(a.CreatedAt.Format("[15:04:05]"))
			lines = append(lines, "  "+ts+" "+describeActivity(a))
		}
	}

	return strings.Join(lines, "\n")
}

func describeActivity(a db.Activity) string {
	switch a.Kind {
	case db.KindSignIn:
		return "signed in"
	case db.KindSignOut:
		return "signed out"
	}
	if !a.Applied {
		return fmt.Sprintf("%s (not applied)", a.Action)
	}
	return fmt.Sprintf("%s: %s → %s", a.Action, spaced(a.FromState), spaced(a.ToState))
}

func spaced(status string) string {
	return strings.ReplaceAll(status, "-", " ")
}

// renderStatus draws the persistent status readout in the bottom right.
func (m Model) renderStatus(snap session.Snapshot) string {
	body := ui.AlertTitleStyle.Render("Info") + "\n" +
		"CoreHub Status: " + snap.Status.Label()
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, ui.AlertStyle.Render(body))
}

func (m Model) renderFooter() string {
	bindings := []key.Binding{m.keys.Home, m.keys.Account, m.keys.SignOut, m.keys.Quit}
	if m.route == RouteHome {
		bindings = append([]key.Binding{m.keys.Prev, m.keys.Next, m.keys.Trigger, m.keys.Shortcut}, bindings...)
	}
	return renderHelp(bindings)
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, ui.FooterKeyStyle.Render(h.Key)+ui.FooterDescStyle.Render(" "+h.Desc))
	}
	return strings.Join(parts, "  ")
}

// Helpers

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		if current == "" {
			current = word
		} else if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}
