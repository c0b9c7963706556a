// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// ConnectionError reports a network-level failure reaching the API
// (connection refused, timeout, DNS failure).
type ConnectionError struct {
	URL   string
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("practicum: request to %s failed: %v", e.URL, e.Cause)
}

func (e *ConnectionError) Unwrap() error { return e.Cause }

// ServerResponseError reports a non-success HTTP status. The raw body
// is kept for diagnostics.
type ServerResponseError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *ServerResponseError) Error() string {
	return fmt.Sprintf("practicum: unexpected server response: http code = %d; reason = %s; content = %s",
		e.StatusCode, e.Status, e.Body)
}

// Client issues homework-status requests against the Practicum API
// with a static OAuth bearer token.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		// Explicit timeout: the upstream gives no SLA and the poll loop
		// must not block past its cycle.
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// HomeworkStatuses fetches homework updates newer than fromDate and
// returns the response body verbatim. Structural validation of the
// payload is left to the caller.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("practicum: build request: %w", err)
	}
	query := req.URL.Query()
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	c.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{URL: c.endpoint, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{URL: c.endpoint, Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ServerResponseError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}
	return body, nil
}
