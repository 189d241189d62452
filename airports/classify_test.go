package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInternational(t *testing.T) {
	assert.False(t, IsInternational("LAX", "JFK"))
	assert.True(t, IsInternational("JFK", "LHR"))

	// Unknown airports have an empty country, which differs from any
	// named country.
	assert.True(t, IsInternational("XXX", "JFK"))
	assert.False(t, IsInternational("XXX", "YYY"))
}

func TestIsLongHaul(t *testing.T) {
	assert.True(t, IsLongHaul("IND", "LOS"))
	assert.True(t, IsLongHaul("JFK", "LHR"))
	assert.False(t, IsLongHaul("LHR", "CDG"))
	assert.False(t, IsLongHaul("LAX", "JFK"))

	// Unknown continent on either side is never long haul.
	assert.False(t, IsLongHaul("XXX", "LOS"))
	assert.False(t, IsLongHaul("LOS", "XXX"))
}

func TestClassifySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"LAX", "JFK"},
		{"JFK", "LHR"},
		{"IND", "LOS"},
		{"LHR", "CDG"},
		{"XXX", "JFK"},
	}
	for _, p := range pairs {
		assert.Equal(t, IsInternational(p[0], p[1]), IsInternational(p[1], p[0]), "international symmetry for %v", p)
		assert.Equal(t, IsLongHaul(p[0], p[1]), IsLongHaul(p[1], p[0]), "long haul symmetry for %v", p)
	}
}

func TestClassifyPriority(t *testing.T) {
	assert.Equal(t, LongHaul, Classify("IND", "LOS"))
	assert.Equal(t, International, Classify("LHR", "CDG"))
	assert.Equal(t, Domestic, Classify("LAX", "JFK"))
}

func TestLookup(t *testing.T) {
	airport, ok := Lookup("LAX")
	assert.True(t, ok)
	assert.Equal(t, "Los Angeles International Airport", airport.Name)
	assert.Equal(t, "California", airport.State)
	assert.Equal(t, "KLAX", airport.ICAO)

	lhr, ok := Lookup("LHR")
	assert.True(t, ok)
	assert.Empty(t, lhr.State)

	_, ok = Lookup("XXX")
	assert.False(t, ok)
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	assert.Len(t, codes, 14)
	assert.True(t, sortedStrings(codes))
	assert.Contains(t, codes, "DEN")
	assert.Contains(t, codes, "MIA")
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
