package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mpetrov/flightdesk/flights"
)

const (
	dateLayout = "2006-01-02"

	// maxScanDays caps how many provider calls a single scan may make.
	maxScanDays = 30
)

// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

// DatePrice is the per-date minimum of a multi-date scan.
type DatePrice struct {
	Date  string
	Price float64
	Offer flights.Offer
}

// ScanReport is the outcome of a multi-date scan. Best is nil when no
// date in the range produced any offer.
type ScanReport struct {
	Origin      string
	Destination string
	StartDate   string
	EndDate     string
	Passengers  int
	Best        *DatePrice
	Series      []DatePrice
}

// BestPrice scans every calendar day in [startDate, endDate]
// sequentially, one single-date search per day, and reports the
// per-date minima plus the global cheapest offer. Ties keep the
// earliest date. Validation failures are rejected before any search.
func (s *Service) BestPrice(ctx context.Context, origin, destination, startDate, endDate string, passengers int) (*ScanReport, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if start.After(end) {
		return nil, errors.New("start date must be before end date")
	}
	if end.Sub(start) > maxScanDays*24*time.Hour {
		return nil, fmt.Errorf("date range cannot exceed %d days", maxScanDays)
	}

	report := &ScanReport{
		Origin:      origin,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Passengers:  passengers,
	}

	// One date at a time; the limiter paces provider calls.
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := s.pace(ctx); err != nil {
			return nil, err
		}

		result := s.Search(ctx, flights.Query{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: day.Format(dateLayout),
			Passengers:    passengers,
		})

		cheapest, ok := result.Cheapest()
		if !ok {
			continue
		}

		entry := DatePrice{Date: day.Format(dateLayout), Price: cheapest.Price.Total, Offer: cheapest}
		report.Series = append(report.Series, entry)

		if report.Best == nil || entry.Price < report.Best.Price {
			best := entry
			report.Best = &best
		}
	}

	return report, nil
}

// ComparePrices reports the per-date minimum price for daysRange
// consecutive days starting at startDate. Dates with no offers are
// omitted from the series.
func (s *Service) ComparePrices(ctx context.Context, origin, destination, startDate string, daysRange int) (*ScanReport, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if daysRange < 1 || daysRange > maxScanDays {
		return nil, fmt.Errorf("days range must be between 1 and %d", maxScanDays)
	}

	end := start.AddDate(0, 0, daysRange-1)
	return s.BestPrice(ctx, origin, destination, startDate, end.Format(dateLayout), 1)
}

func (s *Service) pace(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	return s.limiter.Wait(ctx)
}
