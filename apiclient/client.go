package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hanksha/skillbridge-bff/model"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client talks to the SkillBridge REST API and to its auth service. Every
// call forwards the caller's cookies verbatim; the client itself holds no
// session state besides a short-lived response cache.
type Client struct {
	baseURL       string
	authURL       string
	client        *http.Client
	cache         *cache.Cache
	sessionCookie string
}

func NewClient(baseURL, authURL string) *Client {
	client := &http.Client{
		Timeout:   10 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return NewClientWithHTTP(baseURL, authURL, client)
}

func NewClientWithHTTP(baseURL, authURL string, client *http.Client) *Client {
	return &Client{
		baseURL: baseURL,
		authURL: authURL,
		client:  client,
		cache:   cache.New(30*time.Second, 5*time.Minute),
	}
}

// WithSessionCookie keys the per-session cache on the named cookie instead
// of the whole Cookie header.
func (c *Client) WithSessionCookie(name string) *Client {
	c.sessionCookie = name
	return c
}

func (c *Client) cacheKey(prefix, cookie string) string {
	return prefix + model.SessionKey(cookie, c.sessionCookie)
}

func (c *Client) do(ctx context.Context, method, reqURL string, creds model.Credentials, payload any) ([]byte, error) {
	var reader io.Reader = http.NoBody

	if payload != nil {
		encoded, err := json.Marshal(payload)

		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)

	if err != nil {
		return nil, fmt.Errorf("failed create new request: %w", err)
	}

	c.setHeaders(req, creds)

	res, err := c.client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("failed to send %s %s: %w", method, req.URL.Path, err)
	}

	defer res.Body.Close()

	bodyBytes, readErr := io.ReadAll(res.Body)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if readErr != nil {
			return nil, &Error{StatusCode: res.StatusCode, Message: fmt.Sprintf("also failed reading body: %v", readErr)}
		}
		return nil, newError(res.StatusCode, bodyBytes)
	}

	if readErr != nil {
		return nil, fmt.Errorf("failed to read body: %w", readErr)
	}

	return bodyBytes, nil
}

func (c *Client) setHeaders(req *http.Request, creds model.Credentials) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if !creds.Empty() {
		req.Header.Set("Cookie", creds.Cookie)
	}
}

func (c *Client) apiURL(elem ...string) (string, error) {
	return joinURL(c.baseURL, elem...)
}

func joinURL(base string, elem ...string) (string, error) {
	clientURL, err := url.JoinPath(base, elem...)
	if err != nil {
		return "", fmt.Errorf("failed to create URL: %w", err)
	}

	return clientURL, nil
}

func requireSession(creds model.Credentials) error {
	if creds.Empty() {
		return ErrNoSession
	}
	return nil
}
