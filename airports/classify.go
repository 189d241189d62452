package airports

// RouteCategory selects which synthetic offer template set applies to
// a route.
type RouteCategory int

const (
	Domestic RouteCategory = iota
	International
	LongHaul
)

func (c RouteCategory) String() string {
	switch c {
	case LongHaul:
		return "long_haul"
	case International:
		return "international"
	default:
		return "domestic"
	}
}

// continentByCountry covers the countries in the reference table;
// anything else classifies as unknown and never produces long-haul.
var continentByCountry = map[string]string{
	"United States":        "North America",
	"United Kingdom":       "Europe",
	"France":               "Europe",
	"Germany":              "Europe",
	"Japan":                "Asia",
	"United Arab Emirates": "Asia",
	"Nigeria":              "Africa",
}

// IsInternational reports whether the two airports are in different
// countries. An unknown airport has an empty country and therefore
// differs from any named country.
func IsInternational(origin, destination string) bool {
	o, _ := Lookup(origin)
	d, _ := Lookup(destination)
	return o.Country != d.Country
}

// IsLongHaul reports whether the route crosses continents. Either side
// mapping to an unknown continent yields false.
func IsLongHaul(origin, destination string) bool {
	o, _ := Lookup(origin)
	d, _ := Lookup(destination)

	oc, ok := continentByCountry[o.Country]
	if !ok {
		return false
	}
	dc, ok := continentByCountry[d.Country]
	if !ok {
		return false
	}
	return oc != dc
}

// Classify picks the route category in priority order
// long-haul > international > domestic.
func Classify(origin, destination string) RouteCategory {
	if IsLongHaul(origin, destination) {
		return LongHaul
	}
	if IsInternational(origin, destination) {
		return International
	}
	return Domestic
}
