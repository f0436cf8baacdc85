package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/bnema/nutricoach-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
)

// SessionService owns the persisted "user" entry and hands its access token to the API client.
type SessionService struct {
	store  ports.SecretStore
	clock  ports.Clock
	logger *slog.Logger
}

func NewSessionService(store ports.SecretStore, clock ports.Clock, logger *slog.Logger) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SessionService{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (s *SessionService) SetSession(ctx context.Context, session domain.Session) error {
	session.AccessToken = strings.TrimSpace(session.AccessToken)
	if err := session.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.store.Put(ctx, domain.SessionKey, string(payload)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	return nil
}

func (s *SessionService) ClearSession(ctx context.Context) error {
	if err := s.store.Delete(ctx, domain.SessionKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *SessionService) CurrentSession(ctx context.Context) (domain.Session, error) {
	raw, err := s.store.Get(ctx, domain.SessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("read session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrSessionMalformed, err)
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", domain.ErrSessionMalformed, err)
	}

	return session, nil
}

// AccessToken returns "" with no error when nobody is signed in, so requests go
// out unauthenticated. Only context errors and store failures are returned.
func (s *SessionService) AccessToken(ctx context.Context) (string, error) {
	session, err := s.CurrentSession(ctx)
	switch {
	case err == nil:
		return session.AccessToken, nil
	case errors.Is(err, domain.ErrSessionNotFound):
		return "", nil
	case errors.Is(err, domain.ErrSessionMalformed):
		s.logger.WarnContext(ctx, "ignoring malformed session entry", slog.String("key", domain.SessionKey), slog.String("error", err.Error()))
		return "", nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", err
	default:
		s.logger.WarnContext(ctx, "session store unavailable", slog.String("error", err.Error()))
		return "", nil
	}
}

func (s *SessionService) Status(ctx context.Context) (SessionStatus, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return SessionStatus{}, err
	}

	status := SessionStatus{
		Session:   session,
		SignedIn:  true,
		CheckedAt: s.clock.Now(),
	}

	claims, ok := tokenClaims(session.AccessToken)
	if !ok {
		return status, nil
	}

	status.Subject = claims.Subject
	if claims.IssuedAt != nil {
		issuedAt := claims.IssuedAt.Time
		status.IssuedAt = &issuedAt
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		status.ExpiresAt = &expiresAt
		status.Expired = !status.CheckedAt.Before(expiresAt)
	}

	return status, nil
}

// tokenClaims reads JWT claims without verifying the signature; the backend
// remains the authority. Opaque tokens report ok=false.
func tokenClaims(token string) (*jwt.RegisteredClaims, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}

	return claims, true
}

// Remaining is the time left before expiry, zero once expired or when unknown.
func (s SessionStatus) Remaining() time.Duration {
	if s.ExpiresAt == nil || s.Expired {
		return 0
	}

	return s.ExpiresAt.Sub(s.CheckedAt)
}
