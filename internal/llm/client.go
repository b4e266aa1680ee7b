package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/rs/zerolog/log"

	"vetwatch/internal/config"
)

// Options are the per-call generation parameters.
type Options struct {
	MaxTokens   int
	Temperature float64
}

// Generator is the single capability consumed from the language model:
// one prompt in, one text out.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// Client wraps the OpenAI-compatible API of the local generation host
// with a per-call timeout and the injected retry policy. The host is
// typically Ollama, which serves /v1/chat/completions and /v1/models.
type Client struct {
	api         openai.Client
	model       string
	timeout     time.Duration
	backoff     Backoff
	temperature float64
}

var _ Generator = (*Client)(nil)

// NewClient builds a client from configuration. SDK-internal retries
// are disabled; retrying is owned by the backoff policy.
func NewClient(cfg config.LLMConfig) *Client {
	backoff := DefaultBackoff()
	backoff.MaxAttempts = cfg.MaxRetries + 1
	if cfg.RetryDelay > 0 {
		backoff.BaseDelay = cfg.RetryDelay
	}

	// The SDK resolves endpoint paths against the base URL, so the
	// trailing slash is load-bearing.
	baseURL := cfg.BaseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	api := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	return &Client{
		api:         api,
		model:       cfg.Model,
		timeout:     cfg.Timeout,
		backoff:     backoff,
		temperature: cfg.Temperature,
	}
}

// Model returns the resolved model identifier.
func (c *Client) Model() string {
	return c.model
}

// Probe checks once, at startup, that the configured model is actually
// installed on the host. Hosts commonly list models with a ":latest"
// suffix, so the configured name is matched against exact, ":latest"
// and tagged variants; the resolved name is kept for later calls.
func (c *Client) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	page, err := c.api.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: listing models: %v", ErrModelUnavailable, err)
	}

	for _, m := range page.Data {
		switch {
		case m.ID == c.model,
			m.ID == c.model+":latest",
			strings.HasPrefix(m.ID, c.model+":"):
			c.model = m.ID
			log.Info().Str("model", c.model).Msg("model available")
			return nil
		}
	}

	return fmt.Errorf("%w: model %q not installed", ErrModelUnavailable, c.model)
}

// Generate issues one completion request. Transient failures (timeout,
// refused connection, 5xx) are retried with backoff; the prompt is
// side-effect free so repeating it is safe. Permanent failures are
// returned immediately.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if opts.Temperature == 0 {
		opts.Temperature = c.temperature
	}

	var lastErr error
	for attempt := 1; attempt <= c.backoff.MaxAttempts; attempt++ {
		text, err := c.generateOnce(ctx, prompt, opts)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !IsTransient(err) {
			return "", err
		}
		if attempt == c.backoff.MaxAttempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("generation failed, retrying")
		if err := c.backoff.Sleep(ctx, attempt); err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("generate after %d attempts: %w", c.backoff.MaxAttempts, lastErr)
}

func (c *Client) generateOnce(ctx context.Context, prompt string, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
