package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mpetrov/flightdesk/airports"
)

// AirportInfoTool looks up an airport in the reference table.
type AirportInfoTool struct{}

func (t *AirportInfoTool) Name() string {
	return "get_airport_info"
}

func (t *AirportInfoTool) Description() string {
	return "Get detailed information about an airport. Arguments: airport_code (3-letter IATA code)."
}

func (t *AirportInfoTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	code := codeArg(args, "airport_code")
	if code == "" {
		return "", fmt.Errorf("airport_code is required")
	}

	airport, ok := airports.Lookup(code)
	if !ok {
		return fmt.Sprintf("Airport '%s' not found. Available airports: %s",
			code, strings.Join(airports.Codes(), ", ")), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Airport Information: %s\n\n", code)
	fmt.Fprintf(&b, "Name: %s\n", airport.Name)
	fmt.Fprintf(&b, "City: %s\n", airport.City)
	if airport.State != "" {
		fmt.Fprintf(&b, "State: %s\n", airport.State)
	}
	fmt.Fprintf(&b, "Country: %s\n", airport.Country)
	fmt.Fprintf(&b, "Timezone: %s\n", airport.Timezone)
	fmt.Fprintf(&b, "IATA Code: %s\n", airport.IATA)
	fmt.Fprintf(&b, "ICAO Code: %s\n", airport.ICAO)

	return b.String(), nil
}
