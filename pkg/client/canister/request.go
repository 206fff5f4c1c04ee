package canister

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"
)

const (
	maxResponseBytes = 32 << 20
	maxErrorMessage  = 512
)

var ErrResponseTooLarge = errors.New("response body too large")

// getJSON issues an authenticated GET and decodes a 200 body into out.
// Any other status is returned as *APIError when the body parses as one.
func (c *BasicClient) getJSON(ctx context.Context, op, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating new request for %s: %w", op, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("X-Api-Key", c.cfg.APIKey)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("error doing request for %s: %w", op, err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			c.logger.ErrorContext(ctx,
				"error closing response body for "+op,
				slog.Any("error", err),
			)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("error reading response body for %s: %w", op, err)
	}

	if res.StatusCode != http.StatusOK {
		var apiErr APIError
		if err = json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
			return &APIError{
				Code: http.StatusText(res.StatusCode),
				Message: fmt.Sprintf("unexpected status %d and cannot parse error body: %s",
					res.StatusCode, truncate(string(body), maxErrorMessage)),
				StatusCode: int64(res.StatusCode),
			}
		}

		apiErr.Message = truncate(apiErr.Message, maxErrorMessage)
		apiErr.StatusCode = int64(res.StatusCode)
		return &apiErr
	}

	if len(body) > maxResponseBytes {
		return fmt.Errorf("%s: %w: limit %d bytes", op, ErrResponseTooLarge, maxResponseBytes)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error unmarshalling response body for %s: %w", op, err)
	}

	return nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "..."
}
