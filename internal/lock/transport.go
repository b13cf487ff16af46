package lock

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"keyless-sync/internal/pkg/config"
	"keyless-sync/internal/pkg/errs"
)

const defaultRetryAttempts = 3

// transport issues authenticated JSON requests against the lock service. It
// is stateless beyond the shared http.Client; business meaning of non-5xx
// statuses belongs to the entity clients.
type transport struct {
	baseURL  string
	apiKey   string
	accept   string
	attempts int
	backoff  time.Duration
	hc       *http.Client
	logger   *slog.Logger
}

func newTransport(cfg config.LockConfig, logger *slog.Logger) (*transport, error) {
	if cfg.BaseURL == "" {
		return nil, errs.Mark(errs.New("lock base URL is not set"), ErrConfiguration)
	}
	if cfg.APIKey == "" {
		return nil, errs.Mark(errs.New("lock api key is not set"), ErrConfiguration)
	}

	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}

	return &transport{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		accept:   "application/vnd." + cfg.ServiceName + ".v1+json",
		attempts: attempts,
		backoff:  250 * time.Millisecond,
		hc:       &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}, nil
}

type rawResponse struct {
	Status int
	Body   []byte
}

// request performs one logical call with the bounded retry policy applied.
// Network errors and 5xx responses are retried; any other response comes
// back as data for the caller to interpret.
func (t *transport) request(ctx context.Context, method, path string, payload any) (*rawResponse, error) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode lock request payload")
		}
	}

	resp, err := withRetry(t.attempts, t.backoff, func() (*rawResponse, error) {
		return t.do(ctx, method, path, body)
	}, retryOnServerError)
	if err != nil {
		return nil, errs.Wrapf(err, "lock service %s %s failed", method, path)
	}
	return resp, nil
}

func (t *transport) do(ctx context.Context, method, path string, body []byte) (*rawResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Api-Key", t.apiKey)
	req.Header.Set("Accept", t.accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := t.hc.Do(req)
	if err != nil {
		t.logger.Warn("lock service request failed", "method", method, "path", path, "error", err)
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 500 {
		t.logger.Warn("lock service server error", "method", method, "path", path, "status", res.StatusCode)
	}
	return &rawResponse{Status: res.StatusCode, Body: data}, nil
}

// withRetry makes the retry budget and the retry condition explicit,
// testable parameters. The last response or error wins once attempts run
// out; a response that is not retryable short-circuits immediately.
func withRetry(
	attempts int,
	backoff time.Duration,
	op func() (*rawResponse, error),
	retryable func(*rawResponse, error) bool,
) (*rawResponse, error) {
	var (
		resp *rawResponse
		err  error
	)
	for i := 0; i < attempts; i++ {
		if i > 0 && backoff > 0 {
			time.Sleep(backoff << (i - 1))
		}
		resp, err = op()
		if !retryable(resp, err) {
			return resp, err
		}
	}
	return resp, err
}

func retryOnServerError(resp *rawResponse, err error) bool {
	if err != nil {
		return true
	}
	return resp.Status >= 500
}
