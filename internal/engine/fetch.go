package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Get fetches rawURL with the configured transport, returning the body
// (capped at maxBytes), the HTTP status code, and any transport error.
// Status classification is left to the caller.
func Get(ctx context.Context, rawURL string, headers map[string]string, maxBytes int64) ([]byte, int, error) {
	return do(ctx, http.MethodGet, rawURL, headers, nil, maxBytes)
}

// Post sends body to rawURL with the configured transport.
// Same return contract as Get.
func Post(ctx context.Context, rawURL string, headers map[string]string, body []byte, maxBytes int64) ([]byte, int, error) {
	return do(ctx, http.MethodPost, rawURL, headers, body, maxBytes)
}

func do(ctx context.Context, method, rawURL string, headers map[string]string, body []byte, maxBytes int64) ([]byte, int, error) {
	if err := throttle(ctx); err != nil {
		return nil, 0, err
	}

	if Cfg.BrowserClient != nil {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		data, status, err := Cfg.BrowserClient.Do(method, rawURL, headers, reader)
		if err != nil {
			IncrFetchErrors()
			return nil, status, err
		}
		if maxBytes > 0 && int64(len(data)) > maxBytes {
			data = data[:maxBytes]
		}
		return data, status, nil
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := Cfg.HTTPClient.Do(req)
	if err != nil {
		IncrFetchErrors()
		return nil, 0, err
	}
	defer resp.Body.Close()

	r := resp.Body
	if maxBytes > 0 {
		r = io.NopCloser(io.LimitReader(resp.Body, maxBytes))
	}
	data, err := io.ReadAll(r)
	if err != nil {
		IncrFetchErrors()
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	return data, resp.StatusCode, nil
}

// throttle paces outbound requests when a rate is configured. This is not a
// retry mechanism; it only spaces requests out so the captcha/429 path is
// harder to trip.
func throttle(ctx context.Context) error {
	if limiter == nil {
		return nil
	}
	return limiter.Wait(ctx)
}
