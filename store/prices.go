package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/mpetrov/flightdesk/flights"
)

// PriceObservation is one append-only ledger row: the lowest price
// seen in a single non-empty search result. Rows are never updated or
// deleted here; retention is an external concern.
type PriceObservation struct {
	ID           uint `gorm:"primaryKey"`
	Route        string
	Date         string
	LowestPrice  float64
	Airline      string
	FlightNumber string
	RecordedAt   time.Time
}

// RecordPrice appends one observation for the cheapest offer of a
// search result.
func RecordPrice(db *gorm.DB, route, date string, offer flights.Offer, now time.Time) error {
	if db == nil {
		return nil
	}
	obs := PriceObservation{
		Route:        route,
		Date:         date,
		LowestPrice:  offer.Price.Total,
		Airline:      offer.Airline.Name,
		FlightNumber: offer.FlightNumber,
		RecordedAt:   now,
	}
	return db.Create(&obs).Error
}

// QueryPrices returns observations for an exact route recorded after
// since, most recent first. Routes are direction-sensitive: A-B and
// B-A are distinct.
func QueryPrices(db *gorm.DB, route string, since time.Time) ([]PriceObservation, error) {
	if db == nil {
		return nil, nil
	}
	var observations []PriceObservation
	err := db.Where("route = ? AND recorded_at > ?", route, since).
		Order("recorded_at DESC").
		Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

// PriceStats summarizes a set of observations.
type PriceStats struct {
	Min  float64
	Max  float64
	Mean float64
}

// Stats computes min, max and mean of LowestPrice across the set. The
// second return is false for an empty set.
func Stats(observations []PriceObservation) (PriceStats, bool) {
	if len(observations) == 0 {
		return PriceStats{}, false
	}

	stats := PriceStats{Min: observations[0].LowestPrice, Max: observations[0].LowestPrice}
	sum := 0.0
	for _, obs := range observations {
		if obs.LowestPrice < stats.Min {
			stats.Min = obs.LowestPrice
		}
		if obs.LowestPrice > stats.Max {
			stats.Max = obs.LowestPrice
		}
		sum += obs.LowestPrice
	}
	stats.Mean = sum / float64(len(observations))
	return stats, true
}

// Trend labels for price movement.
const (
	TrendDown   = "down"
	TrendUp     = "up"
	TrendStable = "stable"
)

// Trend compares the mean of the 3 most recent observations against
// the mean of the 3 oldest. The input must be ordered most recent
// first, as QueryPrices returns it. Below 3 observations the trend is
// undefined and the second return is false.
func Trend(observations []PriceObservation) (string, bool) {
	if len(observations) < 3 {
		return "", false
	}

	recent := meanPrice(observations[:3])
	older := meanPrice(observations[len(observations)-3:])

	switch {
	case recent < older*0.95:
		return TrendDown, true
	case recent > older*1.05:
		return TrendUp, true
	default:
		return TrendStable, true
	}
}

func meanPrice(observations []PriceObservation) float64 {
	sum := 0.0
	for _, obs := range observations {
		sum += obs.LowestPrice
	}
	return sum / float64(len(observations))
}
