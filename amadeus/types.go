package amadeus

// Wire types for the flight offers search response, trimmed to the
// fields this service consumes.

type FlightSearchResponse struct {
	Data []FlightOffer `json:"data"`
}

type FlightOffer struct {
	Type                  string            `json:"type"`
	ID                    string            `json:"id"`
	Source                string            `json:"source"`
	OneWay                bool              `json:"oneWay"`
	LastTicketingDate     string            `json:"lastTicketingDate"`
	NumberOfBookableSeats *int              `json:"numberOfBookableSeats,omitempty"`
	Itineraries           []Itinerary       `json:"itineraries"`
	Price                 Price             `json:"price"`
	TravelerPricings      []TravelerPricing `json:"travelerPricings"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightEndPoint `json:"departure"`
	Arrival     FlightEndPoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
	Duration      string `json:"duration"`
	ID            string `json:"id"`
	NumberOfStops int    `json:"numberOfStops"`
}

type FlightEndPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
	Base     string `json:"base,omitempty"`
}

type TravelerPricing struct {
	TravelerID           string       `json:"travelerId"`
	FareOption           string       `json:"fareOption"`
	TravelerType         string       `json:"travelerType"`
	Price                Price        `json:"price"`
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type FareDetail struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
	FareBasis string `json:"fareBasis"`
	Class     string `json:"class"`
}
