package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/i474232898/ims-api/internal/weather"
)

// HTTPClientConfig bundles the HTTP client and request headers.
type HTTPClientConfig struct {
	Client    *http.Client
	UserAgent string
}

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errNoHTTPClient = errors.New("http client not configured")
)

// doRequest executes a single GET and returns the body of a 2xx response.
// There is no retry; the first failure is returned.
func doRequest(ctx context.Context, cfg HTTPClientConfig, url string) ([]byte, error) {
	if cfg.Client == nil {
		return nil, errNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := cfg.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s", errRateLimited, url)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %d from %s", errServerError, resp.StatusCode, url)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: %d from %s", errUnexpected, resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// member is one key/value pair of a JSON object, in document order.
type member struct {
	Key   string
	Value json.RawMessage
}

// orderedMembers splits a JSON object into its members, keeping the order
// they appear in the document. Go maps would lose it.
func orderedMembers(raw json.RawMessage) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var members []member
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode %q: %w", key, err)
		}
		members = append(members, member{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// decodeObject decodes a JSON object keeping numbers as json.Number.
func decodeObject(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("expected JSON object, got null")
	}
	return out, nil
}

// firstOf returns the first non-null value among keys. If the only keys
// present are null it returns weather.Null; if none is present, nil.
func firstOf(m map[string]any, keys ...string) weather.Value {
	var found weather.Value
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if v != nil {
			return v
		}
		found = weather.Null{}
	}
	return found
}
