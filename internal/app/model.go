package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/jwulff/corehub/internal/corehub"
	"github.com/jwulff/corehub/internal/db"
	"github.com/jwulff/corehub/internal/logging"
	"github.com/jwulff/corehub/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Route is the top-level page shown while signed in.
type Route string

const (
	RouteHome    Route = "/"
	RouteAccount Route = "/account"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

const (
	noticeTTL     = 5 * time.Second
	activityLimit = 8
)

// Model is the root bubbletea model for the CoreHub console.
type Model struct {
	gate   *session.Gate
	store  *db.Store
	logger *slog.Logger
	title  string

	// Navigation
	route    Route
	selected int

	// Sign-in form
	inputs     []textinput.Model
	focusIndex int

	// Notices
	notice    string
	noticeSeq int

	// Account page
	activity    []db.Activity
	activityErr string

	keys     KeyMap
	formKeys FormKeyMap

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithStore records console activity in store.
func WithStore(store *db.Store) Option {
	return func(m *Model) { m.store = store }
}

// WithLogger sets the model logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTitle sets the navigation bar title.
func WithTitle(title string) Option {
	return func(m *Model) {
		if title != "" {
			m.title = title
		}
	}
}

// New creates a signed-out console around gate. A nil gate gets a fresh one.
func New(gate *session.Gate, opts ...Option) Model {
	if gate == nil {
		gate = session.NewGate()
	}
	m := Model{
		gate:     gate,
		logger:   logging.NewNop(),
		title:    "CoreHub App",
		route:    RouteHome,
		inputs:   newInputs(),
		keys:     DefaultKeyMap(),
		formKeys: DefaultFormKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)

	user := textinput.New()
	user.Placeholder = "Username"
	user.CharLimit = 64
	user.Focus()
	inputs[fieldUsername] = user

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	inputs[fieldPassword] = pass

	return inputs
}

// Init starts the cursor blink for the sign-in form.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// recordCmd writes an activity row off the update loop.
func recordCmd(store *db.Store, a db.Activity) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return ActivityRecordedMsg{Err: store.Record(context.Background(), a)}
	}
}

// loadActivityCmd reads recent activity for the account page.
func loadActivityCmd(store *db.Store, sessionID string) tea.Cmd {
	if store == nil || sessionID == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.ForSession(context.Background(), sessionID, activityLimit)
		return ActivityLoadedMsg{SessionID: sessionID, Entries: entries, Err: err}
	}
}

// clearNoticeCmd fires after noticeTTL to clear notice seq.
func clearNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return ClearNoticeMsg{Seq: seq}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		if m.gate.SignedIn() {
			return m.handleConsoleKey(msg)
		}
		return m.handleFormKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ActivityRecordedMsg:
		if msg.Err != nil {
			m.logger.Warn("record activity", "error", msg.Err)
			return m, nil
		}
		if m.route == RouteAccount {
			return m, loadActivityCmd(m.store, m.gate.Snapshot().SessionID)
		}
		return m, nil

	case ActivityLoadedMsg:
		if msg.SessionID != m.gate.Snapshot().SessionID {
			return m, nil // stale: the session changed while loading
		}
		m.activity = msg.Entries
		m.activityErr = ""
		if msg.Err != nil {
			m.activityErr = msg.Err.Error()
			m.logger.Warn("load activity", "error", msg.Err)
		}
		return m, nil

	case ClearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	if !m.gate.SignedIn() {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleFormKey processes key presses on the sign-in form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.formKeys.Next):
		return m, m.focusField(m.focusIndex + 1)

	case key.Matches(msg, m.formKeys.Prev):
		return m, m.focusField(m.focusIndex - 1)

	case key.Matches(msg, m.formKeys.Submit):
		if m.focusIndex < fieldCount-1 {
			return m, m.focusField(m.focusIndex + 1)
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focusIndex = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focusIndex {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m *Model) resetForm() {
	for j := range m.inputs {
		m.inputs[j].Reset()
	}
	m.focusField(fieldUsername)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	username := m.inputs[fieldUsername].Value()
	password := m.inputs[fieldPassword].Value()

	res := m.gate.SignIn(context.Background(), username, password)
	if res.Err != nil {
		m.inputs[fieldPassword].Reset()
		return m, m.setNotice("Sign in failed: " + res.Err.Error())
	}

	m.resetForm()
	m.route = RouteHome
	m.selected = 0
	m.activity = nil
	m.notice = ""

	return m, recordCmd(m.store, db.Activity{
		SessionID: res.SessionID,
		Username:  username,
		Kind:      db.KindSignIn,
		Applied:   true,
		CreatedAt: time.Now(),
	})
}

// handleConsoleKey processes key presses once signed in.
func (m Model) handleConsoleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.gate.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SignOut):
		return m.signOut()

	case key.Matches(msg, m.keys.Account):
		m.route = RouteAccount
		return m, loadActivityCmd(m.store, snap.SessionID)

	case key.Matches(msg, m.keys.Home):
		m.route = RouteHome
		return m, nil
	}

	if m.route != RouteHome {
		return m, nil
	}

	actions := snap.View().Actions()
	switch {
	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selectedIndex(len(actions)) + 1) % len(actions)
	case key.Matches(msg, m.keys.Prev):
		m.selected = (m.selectedIndex(len(actions)) - 1 + len(actions)) % len(actions)
	case key.Matches(msg, m.keys.Trigger):
		return m.trigger(actions[m.selectedIndex(len(actions))])
	case key.Matches(msg, m.keys.Shortcut):
		i := int(msg.String()[0] - '1')
		if i < len(actions) {
			return m.trigger(actions[i])
		}
	}
	return m, nil
}

// selectedIndex clamps the action selection to the current view.
func (m Model) selectedIndex(n int) int {
	if m.selected < 0 || m.selected >= n {
		return 0
	}
	return m.selected
}

func (m Model) trigger(a corehub.Action) (tea.Model, tea.Cmd) {
	snap := m.gate.Snapshot()
	res := m.gate.Do(context.Background(), a)

	var cmds []tea.Cmd
	if res.Applied {
		m.selected = 0
	}
	if res.Err != nil {
		cmds = append(cmds, m.setNotice(noticeFor(res)))
	}

	entry := db.Activity{
		SessionID: snap.SessionID,
		Username:  snap.Username,
		Kind:      db.KindAction,
		Action:    a.String(),
		FromState: res.From.String(),
		ToState:   res.To.String(),
		Applied:   res.Applied,
		CreatedAt: time.Now(),
	}
	if res.Err != nil {
		entry.Detail = res.Err.Error()
	}
	cmds = append(cmds, recordCmd(m.store, entry))

	return m, tea.Batch(cmds...)
}

func (m Model) signOut() (tea.Model, tea.Cmd) {
	snap := m.gate.Snapshot()
	res := m.gate.SignOut()

	m.route = RouteHome
	m.selected = 0
	m.activity = nil
	m.activityErr = ""
	m.notice = ""
	m.resetForm()

	return m, tea.Batch(
		textinput.Blink,
		recordCmd(m.store, db.Activity{
			SessionID: res.SessionID,
			Username:  snap.Username,
			Kind:      db.KindSignOut,
			FromState: res.Hub.From.String(),
			ToState:   res.Hub.To.String(),
			Applied:   true,
			CreatedAt: time.Now(),
		}),
	)
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	return clearNoticeCmd(m.noticeSeq)
}

func noticeFor(res corehub.Result) string {
	switch {
	case errors.Is(res.Err, corehub.ErrNotImplemented):
		return fmt.Sprintf("%s is not available yet", res.Action.Label())
	case errors.Is(res.Err, corehub.ErrTransitionNotAllowed):
		return fmt.Sprintf("%s is not possible while %s", res.Action.Label(), res.From.Label())
	}
	return fmt.Sprintf("%s failed: %v", res.Action.Label(), res.Err)
}
