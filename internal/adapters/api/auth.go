package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// TokenSource supplies the current access token. An empty token means the
// request goes out unauthenticated.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) AccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}

type StaticToken string

func (t StaticToken) AccessToken(context.Context) (string, error) {
	return string(t), nil
}

// BearerAuth sets "Authorization: Bearer <token>" when source has a token.
func BearerAuth(source TokenSource) Interceptor {
	return func(ctx context.Context, req *http.Request) error {
		token, err := source.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("resolve access token: %w", err)
		}

		token = strings.TrimSpace(token)
		if token == "" {
			req.Header.Del("Authorization")
			return nil
		}

		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	}
}
