package llm

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxErrorBody = 64 * 1024

// APIError is returned when the endpoint answers with an error status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("AI API error: %d - %s", e.StatusCode, e.Body)
}

// endpointDoer sends every request to one fixed URL, so a configured endpoint
// is honoured verbatim instead of being rebuilt from a base URL.
type endpointDoer struct {
	endpoint *url.URL
	client   *http.Client
}

func (d *endpointDoer) Do(req *http.Request) (*http.Response, error) {
	target := *d.endpoint
	req.URL = &target
	req.Host = target.Host

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}
