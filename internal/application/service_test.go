package application

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/bnema/nutricoach-cli/internal/ports/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceSetSessionStoresJSONUnderUserKey(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, mocks.NewMockClock(t), nil)

	store.EXPECT().Put(mockAnyContext(), "user", mock.Anything).
		Run(func(_ context.Context, _ string, value string) {
			assert.JSONEq(t, `{"accessToken":"abc123","email":"an@example.com","role":"Customer"}`, value)
		}).
		Return(nil)

	err := service.SetSession(context.Background(), domain.Session{
		AccessToken: " abc123 ",
		Email:       "an@example.com",
		Role:        domain.RoleCustomer,
	})
	require.NoError(t, err)
}

func TestSessionServiceSetSessionRejectsEmptyToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, nil)

	err := service.SetSession(context.Background(), domain.Session{AccessToken: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSessionServiceSetSessionWrapsStoreError(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, nil)

	store.EXPECT().Put(mockAnyContext(), "user", mock.Anything).Return(errors.New("disk full"))

	err := service.SetSession(context.Background(), domain.Session{AccessToken: "abc123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store session: disk full")
}

func TestSessionServiceClearSession(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, nil)

	store.EXPECT().Delete(mockAnyContext(), "user").Return(nil)

	require.NoError(t, service.ClearSession(context.Background()))
}

func TestSessionServiceCurrentSession(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		getErr  error
		want    domain.Session
		wantErr error
	}{
		{
			name: "valid",
			raw:  `{"accessToken":"abc123","id":"u-1","fullName":"An Nguyen"}`,
			want: domain.Session{AccessToken: "abc123", ID: "u-1", FullName: "An Nguyen"},
		},
		{name: "missing", getErr: domain.ErrSecretNotFound, wantErr: domain.ErrSessionNotFound},
		{name: "not json", raw: `{accessToken:`, wantErr: domain.ErrSessionMalformed},
		{name: "no token", raw: `{"email":"an@example.com"}`, wantErr: domain.ErrSessionMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockSecretStore(t)
			service := NewSessionService(store, nil, nil)
			store.EXPECT().Get(mockAnyContext(), "user").Return(tt.raw, tt.getErr)

			got, err := service.CurrentSession(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionServiceAccessToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, nil)
	store.EXPECT().Get(mockAnyContext(), "user").Return(`{"accessToken":"abc123"}`, nil)

	token, err := service.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestSessionServiceAccessTokenEmptyWithoutSession(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, nil)
	store.EXPECT().Get(mockAnyContext(), "user").Return("", domain.ErrSecretNotFound)

	token, err := service.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSessionServiceAccessTokenIgnoresMalformedSession(t *testing.T) {
	var logs bytes.Buffer
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, slog.New(slog.NewTextHandler(&logs, nil)))
	store.EXPECT().Get(mockAnyContext(), "user").Return(`not-json`, nil)

	token, err := service.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Contains(t, logs.String(), "ignoring malformed session entry")
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestSessionServiceAccessTokenPropagatesContextErrors(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, nil)
	store.EXPECT().Get(mockAnyContext(), "user").Return("", context.Canceled)

	_, err := service.AccessToken(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSessionServiceStatusReadsJWTClaims(t *testing.T) {
	issuedAt := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	expiresAt := issuedAt.Add(2 * time.Hour)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "u-1",
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	tests := []struct {
		name        string
		now         time.Time
		wantExpired bool
		wantLeft    time.Duration
	}{
		{name: "active", now: issuedAt.Add(30 * time.Minute), wantLeft: 90 * time.Minute},
		{name: "expired", now: expiresAt.Add(time.Second), wantExpired: true},
		{name: "expires exactly now", now: expiresAt, wantExpired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockSecretStore(t)
			clock := mocks.NewMockClock(t)
			service := NewSessionService(store, clock, nil)

			store.EXPECT().Get(mockAnyContext(), "user").Return(`{"accessToken":"`+token+`"}`, nil)
			clock.EXPECT().Now().Return(tt.now)

			status, err := service.Status(context.Background())
			require.NoError(t, err)
			assert.True(t, status.SignedIn)
			assert.Equal(t, "u-1", status.Subject)
			require.NotNil(t, status.ExpiresAt)
			assert.True(t, expiresAt.Equal(*status.ExpiresAt))
			require.NotNil(t, status.IssuedAt)
			assert.True(t, issuedAt.Equal(*status.IssuedAt))
			assert.Equal(t, tt.wantExpired, status.Expired)
			assert.Equal(t, tt.wantLeft, status.Remaining())
		})
	}
}

func TestSessionServiceStatusWithOpaqueToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(store, clock, nil)

	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	store.EXPECT().Get(mockAnyContext(), "user").Return(`{"accessToken":"abc123"}`, nil)
	clock.EXPECT().Now().Return(now)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.SignedIn)
	assert.Empty(t, status.Subject)
	assert.Nil(t, status.ExpiresAt)
	assert.False(t, status.Expired)
	assert.Zero(t, status.Remaining())
}

func TestSessionServiceStatusWithoutSession(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	service := NewSessionService(store, nil, nil)
	store.EXPECT().Get(mockAnyContext(), "user").Return("", domain.ErrSecretNotFound)

	_, err := service.Status(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSetSessionCommandTrimsFields(t *testing.T) {
	cmd := SetSessionCommand{AccessToken: " tok ", UserID: " u-1 ", Role: "Trainer "}

	assert.Equal(t, domain.Session{AccessToken: "tok", ID: "u-1", Role: domain.RoleTrainer}, cmd.Session())
}

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func mockAnyContext() interface{} {
	return mock.Anything
}
