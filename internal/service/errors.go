package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrMessageTooLong = errors.New("message too long")
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrConfiguration  = errors.New("configuration error")
	ErrInternal       = errors.New("internal error")
	ErrNotFound       = errors.New("not found")
	ErrServer         = errors.New("server error")
)

// classified wraps a provider failure with one of the sentinels above while
// keeping the provider's own message in Error().
type classified struct {
	kind error
	err  error
}

func (c *classified) Error() string { return c.kind.Error() + ": " + c.err.Error() }

func (c *classified) Unwrap() []error { return []error{c.kind, c.err} }

func classify(kind, err error) error {
	return &classified{kind: kind, err: err}
}

// ClassifyProviderError maps a failed ask call to ErrConfiguration,
// ErrRateLimited or ErrInternal. Structured errors from the provider clients
// are trusted first; the substring checks on "API key" and "quota" only
// matter for errors that carry nothing but text and are brittle by nature.
func ClassifyProviderError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrConfiguration):
		return classify(ErrConfiguration, err)
	case errors.Is(err, ErrRateLimited):
		return classify(ErrRateLimited, err)
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return classify(ErrConfiguration, err)
	case strings.Contains(msg, "quota"):
		return classify(ErrRateLimited, err)
	}
	return classify(ErrInternal, err)
}
