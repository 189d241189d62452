package flights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLongHaul(t *testing.T) {
	g := NewGenerator()
	query := Query{Origin: "IND", Destination: "LOS", DepartureDate: "2025-06-10", Passengers: 1}

	result := g.Generate(query)

	require.Len(t, result.Offers, 3)
	assert.Equal(t, SourceSynthetic, result.Source)
	assert.Equal(t, 3, result.TotalResults)

	first := result.Offers[0]
	assert.Equal(t, "Delta Air Lines", first.Airline.Name)
	assert.Equal(t, "DL156/AF578", first.FlightNumber)
	assert.Equal(t, "IND", first.Departure.Airport)
	assert.Equal(t, "LOS", first.Arrival.Airport)
	assert.Equal(t, "2025-06-10", first.Departure.Date)
	assert.Equal(t, "19:45+1", first.Arrival.Time)
	assert.Equal(t, []string{"ATL", "CDG"}, first.StopAirports)
}

func TestGenerateInternational(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(Query{Origin: "LHR", Destination: "CDG", DepartureDate: "2025-06-10", Passengers: 1})

	require.Len(t, result.Offers, 1)
	assert.Equal(t, "BA178", result.Offers[0].FlightNumber)
	assert.Equal(t, 0, result.Offers[0].Stops)
}

func TestGenerateDomestic(t *testing.T) {
	g := NewGenerator()
	result := g.Generate(Query{Origin: "LAX", Destination: "JFK", DepartureDate: "2025-06-10", Passengers: 2})

	require.Len(t, result.Offers, 2)
	assert.Equal(t, "DL1234", result.Offers[0].FlightNumber)
	assert.Equal(t, "UA5678", result.Offers[1].FlightNumber)
}

func TestGenerateOfferInvariants(t *testing.T) {
	g := NewGenerator()
	queries := []Query{
		{Origin: "IND", Destination: "LOS", DepartureDate: "2025-06-10", Passengers: 1},
		{Origin: "LHR", Destination: "CDG", DepartureDate: "2025-06-10", Passengers: 1},
		{Origin: "LAX", Destination: "JFK", DepartureDate: "2025-06-10", Passengers: 1},
	}
	for _, q := range queries {
		for _, offer := range g.Generate(q).Offers {
			assert.Len(t, offer.StopAirports, offer.Stops)
			assert.GreaterOrEqual(t, offer.Price.Total, 0.0)
			assert.GreaterOrEqual(t, offer.SeatsAvailable, 0)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewGenerator()
	query := Query{Origin: "IND", Destination: "LOS", DepartureDate: "2025-06-10", Passengers: 1}

	a := g.Generate(query)
	b := g.Generate(query)

	// Identical except for the computation timestamp.
	a.SearchedAt = time.Time{}
	b.SearchedAt = time.Time{}
	assert.Equal(t, a, b)
}

func TestGenerateDoesNotShareTemplateSlices(t *testing.T) {
	g := NewGenerator()
	query := Query{Origin: "IND", Destination: "LOS", DepartureDate: "2025-06-10", Passengers: 1}

	a := g.Generate(query)
	a.Offers[0].StopAirports[0] = "XXX"

	b := g.Generate(query)
	assert.Equal(t, "ATL", b.Offers[0].StopAirports[0])
}

func TestCheapestFirstMinWins(t *testing.T) {
	result := &Result{Offers: []Offer{
		{ID: "a", Price: Price{Total: 500}},
		{ID: "b", Price: Price{Total: 480}},
		{ID: "c", Price: Price{Total: 480}},
	}}

	cheapest, ok := result.Cheapest()
	require.True(t, ok)
	assert.Equal(t, "b", cheapest.ID)
}

func TestCheapestEmpty(t *testing.T) {
	result := &Result{}
	_, ok := result.Cheapest()
	assert.False(t, ok)
}

func TestQueryKeyOmitsReturnDate(t *testing.T) {
	oneWay := Query{Origin: "LAX", Destination: "JFK", DepartureDate: "2025-06-10", Passengers: 2}
	roundTrip := oneWay
	roundTrip.ReturnDate = "2025-06-20"

	assert.Equal(t, "LAX-JFK-2025-06-10-2", oneWay.Key())
	assert.Equal(t, oneWay.Key(), roundTrip.Key())
	assert.Equal(t, "LAX-JFK", oneWay.Route())
}
