package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrov/flightdesk/airports"
	"github.com/mpetrov/flightdesk/search"
	"github.com/mpetrov/flightdesk/store"
)

// PriceHistoryTool reports recorded lowest-price observations and a
// trend signal for a route.
type PriceHistoryTool struct {
	Service *search.Service
}

func (t *PriceHistoryTool) Name() string {
	return "get_price_history"
}

func (t *PriceHistoryTool) Description() string {
	return "Show recorded lowest prices and trend for a route. Arguments: origin, destination, days_back (default 30)."
}

func (t *PriceHistoryTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	origin := codeArg(args, "origin")
	destination := codeArg(args, "destination")

	if origin == "" || destination == "" {
		return "", fmt.Errorf("origin and destination are required")
	}
	if !airports.Known(origin) || !airports.Known(destination) {
		return unknownAirportMessage(), nil
	}

	daysBack := intArg(args, "days_back", 30)
	if daysBack < 1 {
		daysBack = 30
	}

	route := origin + "-" + destination
	observations, err := t.Service.PriceHistory(route, daysBack)
	if err != nil {
		return "", fmt.Errorf("price history query: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Price History: %s\n", route)
	fmt.Fprintf(&b, "Window: last %d days\n\n", daysBack)

	if len(observations) == 0 {
		b.WriteString("No price observations recorded for this route yet.\n")
		b.WriteString("Run a flight search to start tracking prices.\n")
		return b.String(), nil
	}

	for _, obs := range observations {
		fmt.Fprintf(&b, "%s  $%.2f  %s %s (recorded %s)\n",
			obs.Date, obs.LowestPrice, obs.Airline, obs.FlightNumber,
			obs.RecordedAt.Format("2006-01-02 15:04"))
	}

	if stats, ok := store.Stats(observations); ok {
		fmt.Fprintf(&b, "\nObservations: %d\n", len(observations))
		fmt.Fprintf(&b, "Lowest: $%.2f\n", stats.Min)
		fmt.Fprintf(&b, "Highest: $%.2f\n", stats.Max)
		fmt.Fprintf(&b, "Average: $%.2f\n", stats.Mean)
	}

	if trend, ok := store.Trend(observations); ok {
		fmt.Fprintf(&b, "Trend: %s\n", trend)
	}

	return b.String(), nil
}
