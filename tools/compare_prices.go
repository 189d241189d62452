package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrov/flightdesk/airports"
	"github.com/mpetrov/flightdesk/search"
)

// ComparePricesTool lists per-date minimum prices over a range of
// consecutive days.
type ComparePricesTool struct {
	Service *search.Service
}

func (t *ComparePricesTool) Name() string {
	return "compare_flight_prices"
}

func (t *ComparePricesTool) Description() string {
	return "Compare flight prices across multiple dates. Arguments: origin, destination, start_date (YYYY-MM-DD), days_range (1-30, default 7)."
}

func (t *ComparePricesTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	origin := codeArg(args, "origin")
	destination := codeArg(args, "destination")
	startDate := stringArg(args, "start_date")

	if origin == "" || destination == "" || startDate == "" {
		return "", fmt.Errorf("origin, destination, and start_date are required")
	}
	if !airports.Known(origin) || !airports.Known(destination) {
		return unknownAirportMessage(), nil
	}

	daysRange := intArg(args, "days_range", 7)

	report, err := t.Service.ComparePrices(ctx, origin, destination, startDate, daysRange)
	if err != nil {
		return capitalize(err.Error()) + ".", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Price Comparison: %s -> %s\n", origin, destination)
	fmt.Fprintf(&b, "Starting from: %s\n\n", startDate)

	if len(report.Series) == 0 {
		b.WriteString("No flights found in the comparison window.\n")
		return b.String(), nil
	}

	for _, entry := range report.Series {
		fmt.Fprintf(&b, "%s %s (%s): $%.0f\n", dayIndicator(entry.Date), entry.Date, dayName(entry.Date), entry.Price)
	}

	if report.Best != nil {
		fmt.Fprintf(&b, "\nCheapest flight: $%.0f on %s\n", report.Best.Price, report.Best.Date)
	}

	b.WriteString("\nLegend:\n")
	b.WriteString("[low]  Weekday (typically cheaper)\n")
	b.WriteString("[mid]  Friday (moderate pricing)\n")
	b.WriteString("[high] Weekend (typically more expensive)\n")

	return b.String(), nil
}
