package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/anilsoylu/contentforge/internal/interfaces"
)

const (
	// DefaultBaseURL is the OpenRouter chat-completions endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 120 * time.Second

	// DefaultMaxRetries is the number of attempts per request.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the base backoff; attempt k+1 waits
	// DefaultRetryDelay * (k+1).
	DefaultRetryDelay = 2 * time.Second

	// DefaultSiteURL is the fallback HTTP-Referer value.
	DefaultSiteURL = "https://example.com"

	// clientTitle identifies this client in the X-Title header. Part
	// of the wire contract, do not change.
	clientTitle = "Content Generator"

	// Fixed sampling parameters carried on every request.
	requestTemperature = 0.7
	requestMaxTokens   = 4000
)

// chatMessage is one entry of the two-message exchange
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the completion request body. Field set and values
// must stay bit-exact for endpoint compatibility.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse carries the subset of the response we consume
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client is a retrying OpenRouter chat-completion client. It holds one
// reusable network session for the lifetime of a batch: Open before
// use, Close after, with Close guaranteed on all exit paths.
type Client struct {
	apiKey     string
	model      string
	siteURL    string
	baseURL    string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	logger     arbor.ILogger
	limiter    *rate.Limiter

	transport  *http.Transport
	httpClient *http.Client
}

// Compile-time assertion: Client implements CompletionService
var _ interfaces.CompletionService = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom completions URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithSiteURL sets the HTTP-Referer identifier.
func WithSiteURL(siteURL string) ClientOption {
	return func(c *Client) {
		if siteURL != "" {
			c.siteURL = siteURL
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryPolicy sets the attempt ceiling and base backoff delay.
func WithRetryPolicy(maxRetries int, retryDelay time.Duration) ClientOption {
	return func(c *Client) {
		if maxRetries > 0 {
			c.maxRetries = maxRetries
		}
		c.retryDelay = retryDelay
	}
}

// WithRateLimit bounds outbound requests per second. Zero keeps the
// original unlimited fan-out.
func WithRateLimit(requestsPerSecond float64) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
		}
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new OpenRouter client.
func NewClient(apiKey, model string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      model,
		siteURL:    DefaultSiteURL,
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Open acquires the network session. The transport is reused across
// every request of a batch.
func (c *Client) Open() error {
	if c.httpClient != nil {
		return fmt.Errorf("completion client already open")
	}

	c.transport = http.DefaultTransport.(*http.Transport).Clone()
	c.httpClient = &http.Client{
		Transport: c.transport,
		Timeout:   c.timeout,
	}

	return nil
}

// Close tears down the session, releasing idle connections. Call it
// exactly once, after all in-flight requests have settled.
func (c *Client) Close() error {
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	c.transport = nil
	c.httpClient = nil
	return nil
}

// Complete issues one retrying completion request. Retryable failure
// classes are transport errors and response-shape errors; anything
// else is retried too with the error preserved verbatim. Backoff
// before attempt k+1 is retryDelay*(k+1), applied only between
// attempts. After the ceiling the last failure is wrapped in a
// RetriesExhaustedError.
func (c *Client) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	if c.httpClient == nil {
		return "", fmt.Errorf("completion client must be opened before use")
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				lastErr = &ConnectionError{Err: err}
				break
			}
		}

		content, err := c.doRequest(ctx, prompt, systemPrompt)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if c.logger != nil {
			c.logger.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Int("max_retries", c.maxRetries).
				Msg("Completion request failed")
		}

		if attempt < c.maxRetries-1 {
			backoff := c.retryDelay * time.Duration(attempt+1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", &RetriesExhaustedError{Attempts: attempt + 1, Err: ctx.Err()}
			}
		}
	}

	return "", &RetriesExhaustedError{Attempts: c.maxRetries, Err: lastErr}
}

// doRequest performs a single attempt against the completions URL.
func (c *Client) doRequest(ctx context.Context, prompt, systemPrompt string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: requestTemperature,
		MaxTokens:   requestMaxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.siteURL)
	req.Header.Set("X-Title", clientTitle)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ConnectionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &ConnectionError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ResponseShapeError{Detail: fmt.Sprintf("invalid JSON payload: %v", err)}
	}
	if len(result.Choices) == 0 {
		return "", &ResponseShapeError{Detail: "response has no choices"}
	}

	return result.Choices[0].Message.Content, nil
}
