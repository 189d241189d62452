// Package amadeus is a minimal client for the Amadeus flight offers
// API: OAuth2 client-credentials token exchange plus offer search.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	BaseURLTest       = "https://test.api.amadeus.com"
	BaseURLProduction = "https://api.amadeus.com"

	// tokenExpiryMargin is subtracted from the provider-reported token
	// lifetime so a token never expires mid-request.
	tokenExpiryMargin = 60 * time.Second

	authTimeout   = 10 * time.Second
	searchTimeout = 15 * time.Second
)

// ErrNotConfigured signals that provider credentials are absent. This
// is a valid state, not a failure; callers narrow to synthetic data.
var ErrNotConfigured = errors.New("amadeus credentials not configured")

// AuthToken is the OAuth2 token response plus the computed expiry.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Expiry      time.Time
}

// Client talks to the Amadeus API. The token slot is guarded by a
// mutex; the exchange itself is not serialized, so two callers racing
// on an expired token may both refresh and the last writer wins.
type Client struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	HTTPClient   *http.Client

	mu    sync.Mutex
	token *AuthToken

	// Now is swappable for tests.
	Now func() time.Time
}

// NewClient creates a client. Missing credentials are allowed; every
// call will then report ErrNotConfigured.
func NewClient(clientID, clientSecret, baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURLProduction
	}
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		BaseURL:      baseURL,
		HTTPClient:   &http.Client{Timeout: searchTimeout},
		Now:          time.Now,
	}
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

func (c *Client) cachedToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != nil && c.Now().Before(c.token.Expiry) {
		return c.token.AccessToken, true
	}
	return "", false
}

func (c *Client) storeToken(token *AuthToken) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns a valid bearer token, refreshing it when the cached
// one is absent or expired.
func (c *Client) Token(ctx context.Context) (string, error) {
	if tok, ok := c.cachedToken(); ok {
		return tok, nil
	}
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", c.ClientID)
	data.Set("client_secret", c.ClientSecret)

	authCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(authCtx, http.MethodPost,
		c.BaseURL+"/v1/security/oauth2/token", strings.NewReader(data.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token exchange failed: %s: %s", resp.Status, string(body))
	}

	var token AuthToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("token exchange: decode: %w", err)
	}
	token.Expiry = c.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)
	c.storeToken(&token)

	return token.AccessToken, nil
}

// SearchFlightOffers queries the flight offers endpoint for one-way
// offers on a single departure date.
func (c *Client) SearchFlightOffers(ctx context.Context, origin, destination, departureDate string, adults int) (*FlightSearchResponse, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", departureDate)
	params.Set("adults", strconv.Itoa(adults))
	params.Set("max", "10")
	params.Set("currencyCode", "USD")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/v2/shopping/flight-offers?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight offers search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("flight offers search failed: %s: %s", resp.Status, string(body))
	}

	var searchResp FlightSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("flight offers search: decode: %w", err)
	}

	return &searchResp, nil
}
