package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

// Resource scopes the shared client to one backend controller path.
type Resource struct {
	client *Client
	name   string
}

func (c *Client) Resource(name string) *Resource {
	return &Resource{client: c, name: strings.Trim(name, "/")}
}

func (r *Resource) Name() string {
	return r.name
}

// Path joins the resource name with escaped segments: Path(42) == "/Food/42".
func (r *Resource) Path(segments ...any) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(r.name)
	for _, segment := range segments {
		b.WriteString("/")
		b.WriteString(escapeSegment(fmt.Sprint(segment)))
	}

	return b.String()
}

// escapeSegment also escapes dot-only segments, which JoinPath would otherwise
// resolve against the parent path.
func escapeSegment(segment string) string {
	if isDotSegment(segment) {
		return strings.ReplaceAll(segment, ".", "%2E")
	}

	return url.PathEscape(segment)
}

func isDotSegment(segment string) bool {
	return segment != "" && strings.Trim(segment, ".") == ""
}

func fetch[T any](ctx context.Context, r *Resource, method, path string, body any, fallback string, opts ...CallOption) (T, error) {
	var out T

	opts = append(opts, WithFallback(fallback))
	res, err := r.client.Do(ctx, newRequest(method, path, body, opts))
	if err != nil {
		return out, err
	}

	if err := res.Decode(&out); err != nil {
		return out, Normalize(fmt.Errorf("%s %s: %w", method, path, err), fallback)
	}

	return out, nil
}

func send(ctx context.Context, r *Resource, method, path string, body any, fallback string, opts ...CallOption) error {
	opts = append(opts, WithFallback(fallback))
	_, err := r.client.Do(ctx, newRequest(method, path, body, opts))
	return err
}

func get[T any](ctx context.Context, r *Resource, path, fallback string, opts ...CallOption) (T, error) {
	return fetch[T](ctx, r, http.MethodGet, path, nil, fallback, opts...)
}

func post[T any](ctx context.Context, r *Resource, path string, body any, fallback string, opts ...CallOption) (T, error) {
	return fetch[T](ctx, r, http.MethodPost, path, body, fallback, opts...)
}

func put[T any](ctx context.Context, r *Resource, path string, body any, fallback string, opts ...CallOption) (T, error) {
	return fetch[T](ctx, r, http.MethodPut, path, body, fallback, opts...)
}

func remove(ctx context.Context, r *Resource, path, fallback string, opts ...CallOption) error {
	return send(ctx, r, http.MethodDelete, path, nil, fallback, opts...)
}

func requirePositiveID(name string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%s %d: %w", name, id, domain.ErrInvalidID)
	}

	return nil
}

func requireUserID(name string, id domain.UserID) error {
	trimmed := strings.TrimSpace(string(id))
	if trimmed == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidArgument, name)
	}
	if isDotSegment(trimmed) {
		return fmt.Errorf("%w: %s %q is not an identifier", domain.ErrInvalidArgument, name, trimmed)
	}

	return nil
}
