package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrov/flightdesk/airports"
	"github.com/mpetrov/flightdesk/flights"
	"github.com/mpetrov/flightdesk/search"
)

// SearchFlightsTool runs a single-date flight search.
type SearchFlightsTool struct {
	Service *search.Service
}

func (t *SearchFlightsTool) Name() string {
	return "search_flights"
}

func (t *SearchFlightsTool) Description() string {
	return "Search for flights between airports. Arguments: origin (IATA code), destination (IATA code), departure_date (YYYY-MM-DD), return_date (optional), passengers (1-9, default 1)."
}

func (t *SearchFlightsTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	origin := codeArg(args, "origin")
	destination := codeArg(args, "destination")
	departureDate := stringArg(args, "departure_date")

	if origin == "" || destination == "" || departureDate == "" {
		return "", fmt.Errorf("origin, destination, and departure_date are required")
	}
	if !airports.Known(origin) || !airports.Known(destination) {
		return unknownAirportMessage(), nil
	}

	query := flights.Query{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departureDate,
		ReturnDate:    stringArg(args, "return_date"),
		Passengers:    clampPassengers(intArg(args, "passengers", 1)),
	}

	result := t.Service.Search(ctx, query)

	if result.Err != "" {
		return fmt.Sprintf("Error searching flights: %s", result.Err), nil
	}
	if len(result.Offers) == 0 {
		return fmt.Sprintf("No flights found for %s -> %s on %s", origin, destination, departureDate), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Flight Search Results (%s)\n", sourceLabel(result.Source))
	fmt.Fprintf(&b, "Route: %s -> %s\n", origin, destination)
	fmt.Fprintf(&b, "Date: %s\n", departureDate)
	fmt.Fprintf(&b, "Passengers: %d\n\n", query.Passengers)

	for i, offer := range result.Offers {
		fmt.Fprintf(&b, "Option %d: %s %s\n", i+1, offer.Airline.Name, offer.FlightNumber)
		fmt.Fprintf(&b, "  Aircraft: %s\n", offer.Aircraft)
		writeOfferDetail(&b, offer)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "Search completed at: %s\n", result.SearchedAt.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, "Total results: %d\n", result.TotalResults)

	if result.Source == flights.SourceLive {
		b.WriteString("\nThis data is from the live Amadeus API with real pricing.")
	} else {
		b.WriteString("\nUsing demo data - live API unavailable.")
	}

	return b.String(), nil
}
