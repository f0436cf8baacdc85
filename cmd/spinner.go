package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Elapsed time is shown once a request has been in flight this long.
const showElapsedAfter = time.Second

type requestSentMsg struct {
	target string
}

type requestDoneMsg struct {
	err error
}

type requestSpinnerModel struct {
	spinner spinner.Model
	label   string
	target  string
	started time.Time
	elapsed time.Duration
	now     func() time.Time
	request tea.Cmd
	done    bool
}

func newRequestSpinnerModel(label string, request tea.Cmd, now func() time.Time) requestSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("114"))),
	)

	return requestSpinnerModel{
		spinner: s,
		label:   label,
		started: now(),
		now:     now,
		request: request,
	}
}

func (m requestSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.request)
}

func (m requestSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = m.now().Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case requestSentMsg:
		m.target = msg.target
		return m, nil
	case requestDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m requestSpinnerModel) View() string {
	if m.done {
		return ""
	}

	line := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if m.target != "" {
		line += " " + lipgloss.NewStyle().Faint(true).Render(m.target)
	}
	if m.elapsed >= showElapsedAfter {
		line += fmt.Sprintf(" (%s)", m.elapsed.Truncate(time.Second))
	}

	return line
}

// pendingRequest runs outside the bubbletea program so its result survives the
// program being killed.
type pendingRequest struct {
	finished chan struct{}
	err      error
}

func newPendingRequest() *pendingRequest {
	return &pendingRequest{finished: make(chan struct{})}
}

func (p *pendingRequest) start(ctx context.Context, request func(context.Context) error) {
	go func() {
		defer close(p.finished)
		p.err = request(ctx)
	}()
}

func (p *pendingRequest) wait() error {
	<-p.finished
	return p.err
}

func (p *pendingRequest) cmd() tea.Cmd {
	return func() tea.Msg {
		return requestDoneMsg{err: p.wait()}
	}
}

// spinnerOutcome prefers the request's own error when the program stopped
// because ctx was cancelled.
func spinnerOutcome(ctx context.Context, runErr error, req *pendingRequest) error {
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}

	return req.wait()
}

// runWithSpinner animates label on output while request runs. Non-terminal
// outputs run the request directly.
func runWithSpinner(ctx context.Context, output io.Writer, label string, request func(context.Context) error) error {
	if !isTerminal(output) {
		return request(ctx)
	}

	req := newPendingRequest()
	p := tea.NewProgram(
		newRequestSpinnerModel(label, req.cmd(), time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)
	req.start(withRequestNotice(ctx, func(target string) {
		p.Send(requestSentMsg{target: target})
	}), request)

	_, err := p.Run()
	return spinnerOutcome(ctx, err, req)
}

type requestNoticeKey struct{}

func withRequestNotice(ctx context.Context, notice func(target string)) context.Context {
	return context.WithValue(ctx, requestNoticeKey{}, notice)
}

// announceRequest is an api interceptor that reports each outgoing request to
// the spinner running for ctx, if any.
func announceRequest(ctx context.Context, req *http.Request) error {
	if notice, ok := ctx.Value(requestNoticeKey{}).(func(string)); ok {
		notice(req.Method + " " + req.URL.Path)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
