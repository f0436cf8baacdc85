package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Request describes one call through the shared client.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Body     any
	Header   http.Header
	Timeout  time.Duration
	Fallback string
}

type CallOption func(*Request)

func WithQuery(values url.Values) CallOption {
	return func(r *Request) {
		for key, vals := range values {
			for _, v := range vals {
				r.Query.Add(key, v)
			}
		}
	}
}

func WithParam(key, value string) CallOption {
	return func(r *Request) {
		r.Query.Set(key, value)
	}
}

func WithCallHeader(key, value string) CallOption {
	return func(r *Request) {
		r.Header.Set(key, value)
	}
}

// WithCallTimeout overrides the client's default deadline for a single call.
func WithCallTimeout(timeout time.Duration) CallOption {
	return func(r *Request) {
		r.Timeout = timeout
	}
}

// WithFallback sets the message used when the server does not provide one.
func WithFallback(message string) CallOption {
	return func(r *Request) {
		r.Fallback = message
	}
}

func newRequest(method, path string, body any, opts []CallOption) Request {
	req := Request{
		Method: method,
		Path:   path,
		Query:  url.Values{},
		Body:   body,
		Header: http.Header{},
	}
	for _, opt := range opts {
		opt(&req)
	}

	return req
}

// Response is a successful reply. Body is the payload exactly as the server sent it.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the payload into v. An empty payload leaves v untouched.
func (r *Response) Decode(v any) error {
	if r == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}

	return nil
}

// ListQuery carries caller-owned paging and filtering. Zero fields are omitted.
type ListQuery struct {
	Page     int
	PageSize int
	Search   string
	Sort     string
}

func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	return values
}
