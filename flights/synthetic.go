package flights

import (
	"time"

	"github.com/mpetrov/flightdesk/airports"
)

// Generator produces deterministic stand-in offers when no live data
// is available. Templates are fixed per route category; only airport
// codes and dates are substituted, so generation never fails and two
// identical queries yield identical offers.
type Generator struct{}

// NewGenerator returns the synthetic offer generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// longHaulTemplates model intercontinental connections, all with a
// next-day arrival marker.
var longHaulTemplates = []Offer{
	{
		ID:           "FLIGHT_001",
		Airline:      Airline{Code: "DL", Name: "Delta Air Lines"},
		FlightNumber: "DL156/AF578",
		Aircraft:     "Boeing 767-300",
		Departure:    Endpoint{Time: "17:30", Terminal: "A"},
		Arrival:      Endpoint{Time: "19:45+1", Terminal: "MM2"},
		Duration:     "18h 15m",
		Stops:        2,
		StopAirports: []string{"ATL", "CDG"},
		Price:        Price{Total: 1450.00, Currency: "USD", BaseFare: 1200.00, Taxes: 250.00},
		CabinClass:   "Economy", BookingClass: "L", SeatsAvailable: 5,
	},
	{
		ID:           "FLIGHT_002",
		Airline:      Airline{Code: "UA", Name: "United Airlines"},
		FlightNumber: "UA82/LH568",
		Aircraft:     "Boeing 777-200",
		Departure:    Endpoint{Time: "20:15", Terminal: "B"},
		Arrival:      Endpoint{Time: "21:30+1", Terminal: "MM2"},
		Duration:     "17h 15m",
		Stops:        2,
		StopAirports: []string{"ORD", "FRA"},
		Price:        Price{Total: 1620.00, Currency: "USD", BaseFare: 1350.00, Taxes: 270.00},
		CabinClass:   "Economy", BookingClass: "Q", SeatsAvailable: 8,
	},
	{
		ID:           "FLIGHT_003",
		Airline:      Airline{Code: "TK", Name: "Turkish Airlines"},
		FlightNumber: "TK1970/TK625",
		Aircraft:     "Airbus A330-300",
		Departure:    Endpoint{Time: "14:40", Terminal: "A"},
		Arrival:      Endpoint{Time: "18:15+1", Terminal: "MM2"},
		Duration:     "19h 35m",
		Stops:        1,
		StopAirports: []string{"IST"},
		Price:        Price{Total: 1285.00, Currency: "USD", BaseFare: 1050.00, Taxes: 235.00},
		CabinClass:   "Economy", BookingClass: "V", SeatsAvailable: 12,
	},
}

var internationalTemplates = []Offer{
	{
		ID:           "FLIGHT_001",
		Airline:      Airline{Code: "BA", Name: "British Airways"},
		FlightNumber: "BA178",
		Aircraft:     "Boeing 777-300",
		Departure:    Endpoint{Time: "21:30", Terminal: "5"},
		Arrival:      Endpoint{Time: "13:45+1", Terminal: "1"},
		Duration:     "11h 15m",
		Stops:        0,
		StopAirports: []string{},
		Price:        Price{Total: 850.00, Currency: "USD", BaseFare: 720.00, Taxes: 130.00},
		CabinClass:   "Economy", BookingClass: "M", SeatsAvailable: 9,
	},
}

var domesticTemplates = []Offer{
	{
		ID:           "FLIGHT_001",
		Airline:      Airline{Code: "DL", Name: "Delta Air Lines"},
		FlightNumber: "DL1234",
		Aircraft:     "Boeing 737-800",
		Departure:    Endpoint{Time: "08:30", Terminal: "2"},
		Arrival:      Endpoint{Time: "17:45", Terminal: "4"},
		Duration:     "9h 15m",
		Stops:        1,
		StopAirports: []string{"ATL"},
		Price:        Price{Total: 485.00, Currency: "USD", BaseFare: 420.00, Taxes: 65.00},
		CabinClass:   "Economy", BookingClass: "V", SeatsAvailable: 7,
	},
	{
		ID:           "FLIGHT_002",
		Airline:      Airline{Code: "UA", Name: "United Airlines"},
		FlightNumber: "UA5678",
		Aircraft:     "Airbus A320",
		Departure:    Endpoint{Time: "14:20", Terminal: "1"},
		Arrival:      Endpoint{Time: "23:10", Terminal: "4"},
		Duration:     "8h 50m",
		Stops:        0,
		StopAirports: []string{},
		Price:        Price{Total: 520.00, Currency: "USD", BaseFare: 455.00, Taxes: 65.00},
		CabinClass:   "Economy", BookingClass: "Q", SeatsAvailable: 12,
	},
}

func templatesFor(category airports.RouteCategory) []Offer {
	switch category {
	case airports.LongHaul:
		return longHaulTemplates
	case airports.International:
		return internationalTemplates
	default:
		return domesticTemplates
	}
}

// Generate builds a synthetic result for the query. The template set
// is chosen by route category in priority order
// long-haul > international > domestic.
func (g *Generator) Generate(query Query) *Result {
	category := airports.Classify(query.Origin, query.Destination)
	templates := templatesFor(category)

	offers := make([]Offer, len(templates))
	for i, tmpl := range templates {
		offer := tmpl
		offer.Departure.Airport = query.Origin
		offer.Departure.Date = query.DepartureDate
		offer.Arrival.Airport = query.Destination
		offer.Arrival.Date = query.DepartureDate
		// Copy so callers can't mutate template stop lists.
		offer.StopAirports = append([]string(nil), tmpl.StopAirports...)
		offers[i] = offer
	}

	return &Result{
		Query:        query,
		Offers:       offers,
		SearchedAt:   time.Now(),
		TotalResults: len(offers),
		Source:       SourceSynthetic,
	}
}
