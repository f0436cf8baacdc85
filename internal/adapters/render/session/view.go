package session

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/nutricoach-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

type RenderOptions struct {
	Now time.Time
	// ShowToken prints the token in full instead of a masked prefix.
	ShowToken bool
}

func renderView(status application.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("NutriCoach Session")}

	if !status.SignedIn {
		lines = append(lines, s.empty.Render("Not signed in."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	session := status.Session
	lines = append(lines, s.user.Render(session.DisplayName()))

	lines = appendField(lines, s, "email", session.Email)
	lines = appendField(lines, s, "role", string(session.Role))
	lines = appendField(lines, s, "user id", string(session.ID))
	lines = appendField(lines, s, "subject", status.Subject)
	lines = appendField(lines, s, "token", tokenLabel(session.AccessToken, opts.ShowToken))

	lines = append(lines, expiryLine(status, nowOr(opts.Now, status.CheckedAt), s))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func appendField(lines []string, s styles, label, value string) []string {
	if strings.TrimSpace(value) == "" {
		return lines
	}

	return append(lines, lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(label+":"),
		" ",
		s.detail.Render(value),
	))
}

func expiryLine(status application.SessionStatus, now time.Time, s styles) string {
	label := s.label.Render("expires:")
	if status.ExpiresAt == nil {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.detail.Render("unknown (opaque token)"))
	}

	expiresAt := *status.ExpiresAt
	if status.Expired || !now.Before(expiresAt) {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.warning.Render("expired "+formatClock(expiresAt, now)))
	}

	parts := []string{label, " "}
	if status.IssuedAt != nil && status.IssuedAt.Before(expiresAt) {
		lifetime := expiresAt.Sub(*status.IssuedAt)
		remaining := expiresAt.Sub(now)
		leftPercent := clampPercent(100 * remaining.Seconds() / lifetime.Seconds())
		parts = append(parts, renderProgressBar(leftPercent, barWidth, s), " ")
	}

	parts = append(parts, s.detail.Render(formatRelative(expiresAt, now)))

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func tokenLabel(token string, full bool) string {
	if full {
		return token
	}

	const visible = 8
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}

	return token[:visible] + "..."
}

func renderProgressBar(leftPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(leftPercent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatClock(at, now time.Time) string {
	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := at.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return "at " + at.Format("15:04")
	}

	return "at " + at.Format("15:04 on 02 Jan")
}

func formatRelative(expiresAt, now time.Time) string {
	remaining := expiresAt.Sub(now)
	if remaining < time.Hour {
		minutes := int(math.Ceil(remaining.Minutes()))
		return fmt.Sprintf("in %d %s (%s)", minutes, plural(minutes, "minute"), expiresAt.Format("15:04"))
	}
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		return fmt.Sprintf("in %d %s (%s)", hours, plural(hours, "hour"), expiresAt.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	return fmt.Sprintf("in %d %s (%s)", days, plural(days, "day"), expiresAt.Format("15:04 on 02 Jan"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func nowOr(now, fallback time.Time) time.Time {
	if now.IsZero() {
		return fallback
	}
	return now
}
