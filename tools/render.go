package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/mpetrov/flightdesk/flights"
	"github.com/mpetrov/flightdesk/search"
)

func sourceLabel(source flights.Source) string {
	switch source {
	case flights.SourceLive:
		return "Live Amadeus API"
	case flights.SourceSynthetic:
		return "Demo Data"
	default:
		return "No Data"
	}
}

func writeOfferDetail(b *strings.Builder, offer flights.Offer) {
	fmt.Fprintf(b, "  Departure: %s from %s Terminal %s\n", offer.Departure.Time, offer.Departure.Airport, offer.Departure.Terminal)
	fmt.Fprintf(b, "  Arrival: %s at %s Terminal %s\n", offer.Arrival.Time, offer.Arrival.Airport, offer.Arrival.Terminal)
	fmt.Fprintf(b, "  Duration: %s\n", offer.Duration)
	writeStopsLine(b, offer, "  ")
	fmt.Fprintf(b, "  Price: $%.2f %s\n", offer.Price.Total, offer.Price.Currency)
	fmt.Fprintf(b, "  Seats available: %d\n", offer.SeatsAvailable)
	fmt.Fprintf(b, "  Class: %s (%s)\n", offer.CabinClass, offer.BookingClass)
}

func writeStopsLine(b *strings.Builder, offer flights.Offer, indent string) {
	if offer.Stops == 0 {
		fmt.Fprintf(b, "%sDirect flight\n", indent)
		return
	}
	fmt.Fprintf(b, "%s%d stop(s): %s\n", indent, offer.Stops, strings.Join(offer.StopAirports, ", "))
}

func dayName(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

// dayIndicator marks how a weekday typically prices: weekends high,
// Fridays moderate, weekdays low.
func dayIndicator(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "?"
	}
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return "[high]"
	case time.Friday:
		return "[mid]"
	default:
		return "[low]"
	}
}

func writePriceTrend(b *strings.Builder, report *search.ScanReport) {
	b.WriteString("\nPRICE TRENDS:\n")
	shown := report.Series
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, entry := range shown {
		marker := "  "
		suffix := ""
		if report.Best != nil && entry.Date == report.Best.Date {
			marker = "* "
			suffix = "  <- BEST PRICE"
		}
		fmt.Fprintf(b, "%s%s (%s): $%.0f%s\n", marker, entry.Date, dayName(entry.Date), entry.Price, suffix)
	}
	if len(report.Series) > 5 {
		fmt.Fprintf(b, "  ... and %d more dates\n", len(report.Series)-5)
	}
}
