// Package store persists search results and price observations in a
// local SQLite database through gorm. Every accessor tolerates a nil
// DB handle: the cache degrades to always-miss and writes become
// no-ops, so storage is never a correctness dependency.
package store

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mpetrov/flightdesk/flights"
)

// CacheFreshness is the fixed window after which a cached search is
// logically dead. Stale rows are ignored, not deleted; a later write
// for the same key replaces them.
const CacheFreshness = time.Hour

// SearchCache is one cached search result row, keyed by the search
// fingerprint.
type SearchCache struct {
	SearchKey     string `gorm:"primaryKey"`
	Origin        string
	Destination   string
	DepartureDate string
	Passengers    int
	Results       []byte
	CreatedAt     time.Time
}

// Migrate creates the store tables if absent.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&SearchCache{}, &PriceObservation{})
}

// GetSearch returns the cached result for key, or (nil, false) on a
// miss. Entries older than CacheFreshness are misses even when they
// are the only row for the key.
func GetSearch(db *gorm.DB, key string, now time.Time) (*flights.Result, bool) {
	if db == nil {
		return nil, false
	}

	var entry SearchCache
	err := db.Where("search_key = ? AND created_at > ?", key, now.Add(-CacheFreshness)).
		First(&entry).Error
	if err != nil {
		return nil, false
	}

	var result flights.Result
	if err := json.Unmarshal(entry.Results, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// PutSearch upserts the cached result for the query's key,
// last-write-wins.
func PutSearch(db *gorm.DB, result *flights.Result, now time.Time) error {
	if db == nil {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	entry := SearchCache{
		SearchKey:     result.Query.Key(),
		Origin:        result.Query.Origin,
		Destination:   result.Query.Destination,
		DepartureDate: result.Query.DepartureDate,
		Passengers:    result.Query.Passengers,
		Results:       payload,
		CreatedAt:     now,
	}
	return db.Save(&entry).Error
}

// HasSearchRow reports whether a row physically exists for the key,
// fresh or not.
func HasSearchRow(db *gorm.DB, key string) bool {
	if db == nil {
		return false
	}
	var entry SearchCache
	err := db.Where("search_key = ?", key).First(&entry).Error
	return !errors.Is(err, gorm.ErrRecordNotFound) && err == nil
}
