// Package edgar retrieves "shares outstanding" disclosures from the SEC XBRL
// company-concept API, optionally through a pass-through relay, and reads the
// bundled default dataset.
package edgar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/sharesout/internal/cik"
)

const (
	// DefaultBaseURL is the filings API host.
	DefaultBaseURL = "https://data.sec.gov"

	// DefaultRelayURL forwards the request given in its url parameter.
	DefaultRelayURL = "https://api.allorigins.win/raw"

	// DefaultUserAgent identifies this client to the filings API.
	DefaultUserAgent = "sharesout/1.0 (shares outstanding viewer)"

	// ConceptPath addresses the shares outstanding concept.
	ConceptPath = "dei/EntityCommonStockSharesOutstanding"

	// maxBodyBytes caps a single response body.
	maxBodyBytes = 32 << 20
)

// Client fetches company-concept payloads. The zero value is not usable; use NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	relayURL   string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL overrides the filings API host.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithRelayURL sets the relay endpoint. An empty value requests the filings API directly.
func WithRelayURL(relay string) Option {
	return func(c *Client) { c.relayURL = relay }
}

// WithUserAgent sets the outbound User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero leaves the transport defaults in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Transport: c.httpClient.Transport, Timeout: d}
		}
	}
}

// NewClient returns a Client pointed at the public filings API through the default relay.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		relayURL:   DefaultRelayURL,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConceptURL returns the company-concept JSON URL for an already padded CIK.
func ConceptURL(base, paddedCIK string) string {
	return fmt.Sprintf("%s/api/xbrl/companyconcept/CIK%s/%s.json",
		strings.TrimRight(base, "/"), paddedCIK, ConceptPath)
}

// RelayURL wraps upstream as the percent-encoded url parameter of relay.
func RelayURL(relay, upstream string) string {
	sep := "?"
	if strings.Contains(relay, "?") {
		sep = "&"
	}
	return relay + sep + "url=" + url.QueryEscape(upstream)
}

// RequestURL returns the URL FetchConcept will GET for id.
func (c *Client) RequestURL(id string) string {
	upstream := ConceptURL(c.baseURL, cik.Pad(id))
	if c.relayURL == "" {
		return upstream
	}
	return RelayURL(c.relayURL, upstream)
}

// FetchConcept retrieves the raw shares outstanding payload for id (1 to 10 digits, unpadded).
// A non-2xx status yields *FetchError; a request that never completes wraps ErrTransport.
func (c *Client) FetchConcept(ctx context.Context, id string) ([]byte, error) {
	log := zerolog.Ctx(ctx).With().Str("component", "edgar").Str("cik", id).Logger()
	target := c.RequestURL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	log.Debug().Str("url", target).Msg("fetching company concept")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("company concept response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &FetchError{CIK: id, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}
	return body, nil
}
