package llm

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/openai/openai-go/v2"
)

// ErrModelUnavailable signals a permanent failure: the configured model
// is not installed on the generation host, or the host cannot be
// reached at startup. It is never retried; the whole run aborts.
var ErrModelUnavailable = errors.New("model unavailable")

// ErrEmptyCompletion signals a generation response without any content.
// Callers normalize it to their own sentinel instead of retrying.
var ErrEmptyCompletion = errors.New("empty completion")

// IsTransient reports whether an error is worth retrying: timeouts,
// refused connections and server-side failures. Permanent conditions
// (model missing, malformed requests) are excluded.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrModelUnavailable) || errors.Is(err, ErrEmptyCompletion) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "EOF")
}
