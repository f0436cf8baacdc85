package session

import (
	"errors"
	"io"
	"time"

	"github.com/bnema/nutricoach-cli/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// expiringWithin is how close to expiry a session is flagged as expiring soon.
const expiringWithin = 15 * time.Minute

type sessionState int

const (
	stateSignedOut sessionState = iota
	stateActive
	stateExpiring
	stateExpired
)

func (s sessionState) String() string {
	switch s {
	case stateActive:
		return "active"
	case stateExpiring:
		return "expiring soon"
	case stateExpired:
		return "expired"
	default:
		return "signed out"
	}
}

func classify(status application.SessionStatus, now time.Time) sessionState {
	switch {
	case !status.SignedIn:
		return stateSignedOut
	case status.ExpiresAt == nil:
		return stateActive
	case status.Expired || !now.Before(*status.ExpiresAt):
		return stateExpired
	case status.ExpiresAt.Sub(now) <= expiringWithin:
		return stateExpiring
	default:
		return stateActive
	}
}

type renderReadyMsg struct{}

type model struct {
	status application.SessionStatus
	opts   RenderOptions
	styles styles
	state  sessionState
	output string
}

func newModel(status application.SessionStatus, opts RenderOptions) model {
	return model{
		status: status,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.state = classify(m.status, nowOr(m.opts.Now, m.status.CheckedAt))
		card := lipgloss.JoinVertical(
			lipgloss.Left,
			renderView(m.status, m.opts, m.styles),
			m.styles.label.Render("state:")+" "+m.styles.stateBadge(m.state).Render(m.state.String()),
		)
		m.output = m.styles.frame(m.state).Render(card)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(status application.SessionStatus, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(status, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
