package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAmadeusServer mocks the token and flight offers endpoints,
// counting token exchanges.
func mockAmadeusServer(tokenCalls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/security/oauth2/token":
			if tokenCalls != nil {
				atomic.AddInt32(tokenCalls, 1)
			}
			json.NewEncoder(w).Encode(AuthToken{
				AccessToken: "test_token",
				ExpiresIn:   1800,
				TokenType:   "Bearer",
			})
		case "/v2/shopping/flight-offers":
			if r.Header.Get("Authorization") != "Bearer test_token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(FlightSearchResponse{
				Data: []FlightOffer{{ID: "1"}},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestToken(t *testing.T) {
	ts := mockAmadeusServer(nil)
	defer ts.Close()

	client := NewClient("id", "secret", ts.URL)

	tok, err := client.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test_token", tok)
}

func TestTokenExpiryMargin(t *testing.T) {
	ts := mockAmadeusServer(nil)
	defer ts.Close()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	client := NewClient("id", "secret", ts.URL)
	client.Now = func() time.Time { return now }

	_, err := client.Token(context.Background())
	require.NoError(t, err)

	// 1800s lifetime minus the 60s safety margin.
	assert.Equal(t, now.Add(1740*time.Second), client.token.Expiry)
}

func TestTokenCached(t *testing.T) {
	var calls int32
	ts := mockAmadeusServer(&calls)
	defer ts.Close()

	client := NewClient("id", "secret", ts.URL)

	_, err := client.Token(context.Background())
	require.NoError(t, err)
	_, err = client.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTokenRefreshAfterExpiry(t *testing.T) {
	var calls int32
	ts := mockAmadeusServer(&calls)
	defer ts.Close()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	client := NewClient("id", "secret", ts.URL)
	client.Now = func() time.Time { return now }

	_, err := client.Token(context.Background())
	require.NoError(t, err)

	// Advance past the adjusted expiry.
	now = now.Add(30 * time.Minute)
	_, err = client.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestTokenNotConfigured(t *testing.T) {
	client := NewClient("", "", "http://localhost:1")

	_, err := client.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, client.Configured())
}

func TestTokenExchangeFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewClient("id", "bad-secret", ts.URL)

	_, err := client.Token(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotConfigured)
}

func TestSearchFlightOffers(t *testing.T) {
	ts := mockAmadeusServer(nil)
	defer ts.Close()

	client := NewClient("id", "secret", ts.URL)

	resp, err := client.SearchFlightOffers(context.Background(), "JFK", "LHR", "2025-10-10", 1)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, "1", resp.Data[0].ID)
}

func TestSearchFlightOffersQueryParams(t *testing.T) {
	var gotQuery map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v1/security/oauth2/token" {
			json.NewEncoder(w).Encode(AuthToken{AccessToken: "t", ExpiresIn: 1800})
			return
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		json.NewEncoder(w).Encode(FlightSearchResponse{})
	}))
	defer ts.Close()

	client := NewClient("id", "secret", ts.URL)

	_, err := client.SearchFlightOffers(context.Background(), "LAX", "JFK", "2025-06-10", 2)
	require.NoError(t, err)

	assert.Equal(t, "LAX", gotQuery["originLocationCode"])
	assert.Equal(t, "JFK", gotQuery["destinationLocationCode"])
	assert.Equal(t, "2025-06-10", gotQuery["departureDate"])
	assert.Equal(t, "2", gotQuery["adults"])
	assert.Equal(t, "10", gotQuery["max"])
	assert.Equal(t, "USD", gotQuery["currencyCode"])
}
