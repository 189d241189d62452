// Package flights defines the internal flight-offer schema shared by
// the provider normalizer, the synthetic generator and the search
// orchestrator.
package flights

import (
	"fmt"
	"time"
)

// Source tags where a search result came from.
type Source string

const (
	SourceLive      Source = "live"
	SourceSynthetic Source = "synthetic"
	SourceNone      Source = "none"
)

// Airline is an IATA carrier code plus display name.
type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Endpoint is one end of an itinerary. Time is a local "HH:MM" clock
// string and may carry a "+1" suffix for next-day arrivals.
type Endpoint struct {
	Airport  string `json:"airport"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Terminal string `json:"terminal"`
}

// Price is the offer price breakdown. BaseFare plus Taxes tracks Total
// up to rounding; they are display values, not accounting ones.
type Price struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	BaseFare float64 `json:"base_fare"`
	Taxes    float64 `json:"taxes"`
}

// Offer is one priced, bookable itinerary option.
// Invariant: Stops == len(StopAirports), Price.Total >= 0.
type Offer struct {
	ID             string   `json:"id"`
	Airline        Airline  `json:"airline"`
	FlightNumber   string   `json:"flight_number"`
	Aircraft       string   `json:"aircraft"`
	Departure      Endpoint `json:"departure"`
	Arrival        Endpoint `json:"arrival"`
	Duration       string   `json:"duration"`
	Stops          int      `json:"stops"`
	StopAirports   []string `json:"stop_airports"`
	Price          Price    `json:"price"`
	CabinClass     string   `json:"cabin_class"`
	BookingClass   string   `json:"booking_class"`
	SeatsAvailable int      `json:"seats_available"`
}

// Query is a single-date search request. Airport codes are uppercased
// before a Query is built.
type Query struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
}

// Key is the cache fingerprint. Return date and cabin are deliberately
// not part of the key; see DESIGN.md.
func (q Query) Key() string {
	return fmt.Sprintf("%s-%s-%s-%d", q.Origin, q.Destination, q.DepartureDate, q.Passengers)
}

// Route is the direction-sensitive "ORIGIN-DESTINATION" pair used by
// the price ledger.
func (q Query) Route() string {
	return q.Origin + "-" + q.Destination
}

// Result is the outcome of one single-date search. Offers keep the
// producer's order; they are not price-sorted.
type Result struct {
	Query        Query     `json:"search_params"`
	Offers       []Offer   `json:"flights"`
	SearchedAt   time.Time `json:"search_timestamp"`
	TotalResults int       `json:"total_results"`
	Source       Source    `json:"data_source"`
	Err          string    `json:"error,omitempty"`
}

// Cheapest returns the minimum-total-price offer. Ties keep the
// earliest offer. The second return is false for an empty result.
func (r *Result) Cheapest() (Offer, bool) {
	if len(r.Offers) == 0 {
		return Offer{}, false
	}
	best := r.Offers[0]
	for _, o := range r.Offers[1:] {
		if o.Price.Total < best.Price.Total {
			best = o
		}
	}
	return best, true
}
