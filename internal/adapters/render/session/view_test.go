package session

import (
	"testing"
	"time"

	"github.com/bnema/nutricoach-cli/internal/application"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRenderSignedInSessionWithExpiry(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	output, err := Render(application.SessionStatus{
		Session: domain.Session{
			AccessToken: "eyJhbGciOiJIUzI1NiJ9.payload.sig",
			FullName:    "An Nguyen",
			Email:       "an@example.com",
			Role:        domain.RoleTrainer,
		},
		SignedIn:  true,
		Subject:   "u-1",
		IssuedAt:  timePtr(now.Add(-1 * time.Hour)),
		ExpiresAt: timePtr(now.Add(3 * time.Hour)),
		CheckedAt: now,
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "NutriCoach Session")
	assert.Contains(t, output, "An Nguyen")
	assert.Contains(t, output, "an@example.com")
	assert.Contains(t, output, "Trainer")
	assert.Contains(t, output, "subject: u-1")
	assert.Contains(t, output, "eyJhbGci...")
	assert.NotContains(t, output, "payload.sig")
	assert.Contains(t, output, "in 3 hours (12:00)")
	assert.Contains(t, output, "[")
	assert.NotContains(t, output, "expired")
	assert.Contains(t, output, "state: active")
}

func TestRenderExpiredSession(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	output, err := Render(application.SessionStatus{
		Session:   domain.Session{AccessToken: "abc123", Email: "an@example.com"},
		SignedIn:  true,
		ExpiresAt: timePtr(now.Add(-30 * time.Minute)),
		Expired:   true,
		CheckedAt: now,
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "expired at 08:30")
	assert.Contains(t, output, "token: ******")
	assert.Contains(t, output, "state: expired")
}

func TestRenderOpaqueTokenSession(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	output, err := Render(application.SessionStatus{
		Session:   domain.Session{AccessToken: "abc123"},
		SignedIn:  true,
		CheckedAt: now,
	}, RenderOptions{ShowToken: true})

	require.NoError(t, err)
	assert.Contains(t, output, "unknown user")
	assert.Contains(t, output, "token: abc123")
	assert.Contains(t, output, "unknown (opaque token)")
}

func TestRenderSignedOut(t *testing.T) {
	output, err := Render(application.SessionStatus{}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Not signed in.")
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "in 1 minute (09:01)", formatRelative(now.Add(30*time.Second), now))
	assert.Equal(t, "in 1 hour (10:00)", formatRelative(now.Add(time.Hour), now))
	assert.Equal(t, "in 2 days (09:00 on 20 Oct)", formatRelative(now.Add(48*time.Hour), now))
}

func TestRenderProgressBarWidth(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[=====-----]", renderProgressBar(50, 10, s))
	assert.Equal(t, "[----------]", renderProgressBar(-5, 10, s))
	assert.Empty(t, renderProgressBar(50, 0, s))
}

func TestRenderFlagsSessionExpiringSoon(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	output, err := Render(application.SessionStatus{
		Session:   domain.Session{AccessToken: "abc123"},
		SignedIn:  true,
		ExpiresAt: timePtr(now.Add(10 * time.Minute)),
		CheckedAt: now,
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "in 10 minutes (09:10)")
	assert.Contains(t, output, "state: expiring soon")
	assert.Contains(t, output, "╭")
}

func TestClassify(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status application.SessionStatus
		want   sessionState
	}{
		{name: "signed out", status: application.SessionStatus{}, want: stateSignedOut},
		{name: "opaque token", status: application.SessionStatus{SignedIn: true}, want: stateActive},
		{name: "plenty of time", status: application.SessionStatus{SignedIn: true, ExpiresAt: timePtr(now.Add(time.Hour))}, want: stateActive},
		{name: "inside warning window", status: application.SessionStatus{SignedIn: true, ExpiresAt: timePtr(now.Add(expiringWithin))}, want: stateExpiring},
		{name: "expiry reached", status: application.SessionStatus{SignedIn: true, ExpiresAt: timePtr(now)}, want: stateExpired},
		{name: "flagged expired", status: application.SessionStatus{SignedIn: true, Expired: true, ExpiresAt: timePtr(now.Add(time.Hour))}, want: stateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.status, now))
		})
	}
}
