package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// Notifier posts finished-game records to a webhook.
type Notifier struct {
	url  string
	http *fasthttp.Client

	timeout  time.Duration
	retryMax int
	backoff  time.Duration
}

type NotifierOption func(*Notifier)

func WithNotifyTimeout(d time.Duration) NotifierOption {
	return func(n *Notifier) { n.timeout = d }
}

func WithNotifyRetry(max int) NotifierOption {
	return func(n *Notifier) { n.retryMax = max }
}

// WithNotifyBackoff sets the delay before the first retry. Each later retry doubles it.
func WithNotifyBackoff(d time.Duration) NotifierOption {
	return func(n *Notifier) { n.backoff = d }
}

// WithHTTPClient replaces the underlying client, e.g. one dialing an in-memory listener.
func WithHTTPClient(c *fasthttp.Client) NotifierOption {
	return func(n *Notifier) { n.http = c }
}

func NewNotifier(webhookURL string, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		url:      strings.TrimSpace(webhookURL),
		http:     &fasthttp.Client{ReadTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second},
		timeout:  10 * time.Second,
		retryMax: 3,
		backoff:  100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify delivers r once. Transport failures and 5xx answers are retried.
func (n *Notifier) Notify(ctx context.Context, r *Record) error {
	if n == nil || n.url == "" {
		return nil
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()
	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetRequestURI(n.url)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	attempts := n.retryMax
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := n.http.DoDeadline(req, resp, n.deadline(ctx))
		if err == nil {
			status := resp.StatusCode()
			if status >= 200 && status < 300 {
				return nil
			}
			err = fmt.Errorf("webhook error: status=%d body=%s", status, truncate(string(resp.Body()), 256))
			if !shouldRetryStatus(status) {
				return err
			}
		} else {
			err = fmt.Errorf("webhook request failed: %w", err)
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		if sleepErr := sleepWithContext(ctx, n.backoff<<uint(attempt-1)); sleepErr != nil {
			return lastErr
		}
	}
	if lastErr == nil {
		lastErr = errors.New("unknown error")
	}
	return lastErr
}

func (n *Notifier) deadline(ctx context.Context) time.Time {
	own := time.Now().Add(n.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(own) {
		return dl
	}
	return own
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func shouldRetryStatus(code int) bool {
	switch code {
	case 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
