// Package airports holds the static airport reference table and route
// classification helpers built on it.
package airports

import "sort"

// Airport describes one entry of the reference table, keyed by IATA code.
type Airport struct {
	Name     string
	City     string
	State    string // optional region, empty outside the US
	Country  string
	Timezone string
	IATA     string
	ICAO     string
}

// table is loaded once and never mutated.
var table = map[string]Airport{
	"LAX": {Name: "Los Angeles International Airport", City: "Los Angeles", State: "California", Country: "United States", Timezone: "America/Los_Angeles", IATA: "LAX", ICAO: "KLAX"},
	"JFK": {Name: "John F. Kennedy International Airport", City: "New York", State: "New York", Country: "United States", Timezone: "America/New_York", IATA: "JFK", ICAO: "KJFK"},
	"LHR": {Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", Timezone: "Europe/London", IATA: "LHR", ICAO: "EGLL"},
	"NRT": {Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo", IATA: "NRT", ICAO: "RJAA"},
	"DXB": {Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Timezone: "Asia/Dubai", IATA: "DXB", ICAO: "OMDB"},
	"SFO": {Name: "San Francisco International Airport", City: "San Francisco", State: "California", Country: "United States", Timezone: "America/Los_Angeles", IATA: "SFO", ICAO: "KSFO"},
	"IND": {Name: "Indianapolis International Airport", City: "Indianapolis", State: "Indiana", Country: "United States", Timezone: "America/Indiana/Indianapolis", IATA: "IND", ICAO: "KIND"},
	"LOS": {Name: "Murtala Muhammed International Airport", City: "Lagos", Country: "Nigeria", Timezone: "Africa/Lagos", IATA: "LOS", ICAO: "DNMM"},
	"ATL": {Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", State: "Georgia", Country: "United States", Timezone: "America/New_York", IATA: "ATL", ICAO: "KATL"},
	"ORD": {Name: "O'Hare International Airport", City: "Chicago", State: "Illinois", Country: "United States", Timezone: "America/Chicago", IATA: "ORD", ICAO: "KORD"},
	"DEN": {Name: "Denver International Airport", City: "Denver", State: "Colorado", Country: "United States", Timezone: "America/Denver", IATA: "DEN", ICAO: "KDEN"},
	"MIA": {Name: "Miami International Airport", City: "Miami", State: "Florida", Country: "United States", Timezone: "America/New_York", IATA: "MIA", ICAO: "KMIA"},
	"CDG": {Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Timezone: "Europe/Paris", IATA: "CDG", ICAO: "LFPG"},
	"FRA": {Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Timezone: "Europe/Berlin", IATA: "FRA", ICAO: "EDDF"},
}

// Lookup returns the airport for an IATA code. The code must already be
// uppercased by the caller.
func Lookup(code string) (Airport, bool) {
	a, ok := table[code]
	return a, ok
}

// Known reports whether the code is present in the reference table.
func Known(code string) bool {
	_, ok := table[code]
	return ok
}

// Codes returns all supported IATA codes, sorted for stable listings.
func Codes() []string {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
