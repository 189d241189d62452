package flights

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mpetrov/flightdesk/amadeus"
)

// maxNormalizedOffers caps how many provider offers one search keeps,
// regardless of how many the provider returns.
const maxNormalizedOffers = 5

// Defaults substituted for optional provider fields.
const (
	defaultAircraft     = "Unknown"
	defaultTerminal     = "TBD"
	defaultCabin        = "ECONOMY"
	defaultBookingClass = "Y"
	defaultSeats        = 9
)

var airlineNames = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"BA": "British Airways",
	"LH": "Lufthansa",
	"AF": "Air France",
	"KL": "KLM",
	"TK": "Turkish Airlines",
	"EK": "Emirates",
	"QR": "Qatar Airways",
}

// AirlineName resolves an IATA carrier code to a display name.
func AirlineName(code string) string {
	if name, ok := airlineNames[code]; ok {
		return name
	}
	return "Airline " + code
}

// Normalizer maps raw Amadeus offers into the internal schema.
type Normalizer struct {
	// BaseFareRatio estimates the base fare when the provider omits
	// it: base = ratio * total.
	BaseFareRatio float64
}

// NewNormalizer returns a normalizer with the default fare ratio.
func NewNormalizer() *Normalizer {
	return &Normalizer{BaseFareRatio: 0.85}
}

// Normalize is a pure transform of one provider response. Offers that
// cannot be parsed are skipped individually; a response yielding zero
// offers is a valid empty result, not a failure.
func (n *Normalizer) Normalize(resp *amadeus.FlightSearchResponse, query Query) *Result {
	result := &Result{
		Query:      query,
		Offers:     make([]Offer, 0, maxNormalizedOffers),
		SearchedAt: time.Now(),
		Source:     SourceLive,
	}
	if resp == nil {
		return result
	}

	for i, raw := range resp.Data {
		if i >= maxNormalizedOffers {
			break
		}
		offer, err := n.normalizeOffer(raw, query, i)
		if err != nil {
			continue
		}
		result.Offers = append(result.Offers, offer)
	}

	result.TotalResults = len(result.Offers)
	return result
}

func (n *Normalizer) normalizeOffer(raw amadeus.FlightOffer, query Query, index int) (Offer, error) {
	// Only the outbound leg is considered; return itineraries are
	// ignored, matching the cache key's one-way scope.
	if len(raw.Itineraries) == 0 {
		return Offer{}, fmt.Errorf("offer %d: no itineraries", index)
	}
	itinerary := raw.Itineraries[0]
	if len(itinerary.Segments) == 0 {
		return Offer{}, fmt.Errorf("offer %d: no segments", index)
	}
	first := itinerary.Segments[0]
	last := itinerary.Segments[len(itinerary.Segments)-1]

	total, err := strconv.ParseFloat(raw.Price.Total, 64)
	if err != nil {
		return Offer{}, fmt.Errorf("offer %d: price total %q: %w", index, raw.Price.Total, err)
	}
	if total < 0 {
		return Offer{}, fmt.Errorf("offer %d: negative price total %.2f", index, total)
	}

	base := total * n.BaseFareRatio
	if raw.Price.Base != "" {
		if parsed, err := strconv.ParseFloat(raw.Price.Base, 64); err == nil {
			base = parsed
		}
	}

	stopAirports := make([]string, 0, len(itinerary.Segments)-1)
	for _, seg := range itinerary.Segments[:len(itinerary.Segments)-1] {
		stopAirports = append(stopAirports, seg.Arrival.IataCode)
	}

	seats := defaultSeats
	if raw.NumberOfBookableSeats != nil && *raw.NumberOfBookableSeats >= 0 {
		seats = *raw.NumberOfBookableSeats
	}

	cabin, bookingClass := fareDetails(raw)

	return Offer{
		ID:           fmt.Sprintf("AMADEUS_%d", index+1),
		Airline:      Airline{Code: first.CarrierCode, Name: AirlineName(first.CarrierCode)},
		FlightNumber: first.CarrierCode + first.Number,
		Aircraft:     stringOr(first.Aircraft.Code, defaultAircraft),
		Departure: Endpoint{
			Airport:  first.Departure.IataCode,
			Time:     clockFromISO(first.Departure.At),
			Date:     query.DepartureDate,
			Terminal: stringOr(first.Departure.Terminal, defaultTerminal),
		},
		Arrival: Endpoint{
			Airport:  last.Arrival.IataCode,
			Time:     clockFromISO(last.Arrival.At),
			Date:     query.DepartureDate,
			Terminal: stringOr(last.Arrival.Terminal, defaultTerminal),
		},
		Duration:     ParseDuration(itinerary.Duration),
		Stops:        len(itinerary.Segments) - 1,
		StopAirports: stopAirports,
		Price: Price{
			Total:    total,
			Currency: stringOr(raw.Price.Currency, "USD"),
			BaseFare: base,
			Taxes:    total - base,
		},
		CabinClass:     cabin,
		BookingClass:   bookingClass,
		SeatsAvailable: seats,
	}, nil
}

func fareDetails(raw amadeus.FlightOffer) (cabin, bookingClass string) {
	cabin, bookingClass = defaultCabin, defaultBookingClass
	if len(raw.TravelerPricings) == 0 {
		return
	}
	details := raw.TravelerPricings[0].FareDetailsBySegment
	if len(details) == 0 {
		return
	}
	cabin = stringOr(details[0].Cabin, defaultCabin)
	bookingClass = stringOr(details[0].Class, defaultBookingClass)
	return
}

// ParseDuration converts a compact ISO-8601 duration ("PT18H15M") into
// "18h 15m". Unparsable input passes through untouched.
func ParseDuration(iso string) string {
	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok {
		return iso
	}

	hours, minutes := 0, 0
	if h, tail, found := strings.Cut(rest, "H"); found {
		n, err := strconv.Atoi(h)
		if err != nil {
			return iso
		}
		hours = n
		rest = tail
	}
	if m, ok := strings.CutSuffix(rest, "M"); ok {
		n, err := strconv.Atoi(m)
		if err != nil {
			return iso
		}
		minutes = n
	} else if rest != "" {
		return iso
	}

	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// clockFromISO extracts the local "HH:MM" clock from a provider
// timestamp like "2025-06-10T17:30:00".
func clockFromISO(at string) string {
	if t, err := time.Parse("2006-01-02T15:04:05", at); err == nil {
		return t.Format("15:04")
	}
	if len(at) >= 16 {
		return at[11:16]
	}
	return at
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
