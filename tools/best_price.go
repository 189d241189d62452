package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrov/flightdesk/airports"
	"github.com/mpetrov/flightdesk/search"
)

// BestPriceTool scans a date range for the cheapest flight.
type BestPriceTool struct {
	Service *search.Service
}

func (t *BestPriceTool) Name() string {
	return "find_best_price"
}

func (t *BestPriceTool) Description() string {
	return "Find the cheapest flight within a date range. Arguments: origin, destination, start_date (YYYY-MM-DD), end_date (YYYY-MM-DD), passengers (1-9, default 1)."
}

func (t *BestPriceTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	origin := codeArg(args, "origin")
	destination := codeArg(args, "destination")
	startDate := stringArg(args, "start_date")
	endDate := stringArg(args, "end_date")

	if origin == "" || destination == "" || startDate == "" || endDate == "" {
		return "", fmt.Errorf("origin, destination, start_date, and end_date are required")
	}
	if !airports.Known(origin) || !airports.Known(destination) {
		return unknownAirportMessage(), nil
	}

	passengers := clampPassengers(intArg(args, "passengers", 1))

	report, err := t.Service.BestPrice(ctx, origin, destination, startDate, endDate, passengers)
	if err != nil {
		// Range validation failures come back as tool text.
		return capitalize(err.Error()) + ".", nil
	}
	if report.Best == nil {
		return "No flights found in the specified date range.", nil
	}

	best := report.Best

	var b strings.Builder
	fmt.Fprintf(&b, "Best Price Found: %s -> %s\n", origin, destination)
	fmt.Fprintf(&b, "Date Range: %s to %s\n", startDate, endDate)
	fmt.Fprintf(&b, "Passengers: %d\n\n", passengers)

	b.WriteString("CHEAPEST OPTION:\n")
	fmt.Fprintf(&b, "Date: %s\n", best.Date)
	fmt.Fprintf(&b, "Flight: %s %s\n", best.Offer.Airline.Name, best.Offer.FlightNumber)
	fmt.Fprintf(&b, "Departure: %s from %s\n", best.Offer.Departure.Time, best.Offer.Departure.Airport)
	fmt.Fprintf(&b, "Arrival: %s at %s\n", best.Offer.Arrival.Time, best.Offer.Arrival.Airport)
	fmt.Fprintf(&b, "Duration: %s\n", best.Offer.Duration)
	writeStopsLine(&b, best.Offer, "")
	fmt.Fprintf(&b, "Price: $%.2f %s\n", best.Offer.Price.Total, best.Offer.Price.Currency)
	fmt.Fprintf(&b, "Seats available: %d\n", best.Offer.SeatsAvailable)

	writePriceTrend(&b, report)

	return b.String(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
