// Package search implements the search orchestration pipeline: cache
// lookup, provider attempt, synthetic fallback, persistence, and the
// multi-date best-price scan built on top of single-date searches.
package search

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/mpetrov/flightdesk/amadeus"
	"github.com/mpetrov/flightdesk/config"
	"github.com/mpetrov/flightdesk/flights"
	"github.com/mpetrov/flightdesk/log"
	"github.com/mpetrov/flightdesk/store"
)

// Service owns the per-search state machine. All collaborators are
// passed in explicitly; db and client may be nil, which degrades the
// cache to always-miss and the provider path to disabled.
type Service struct {
	db         *gorm.DB
	client     *amadeus.Client
	normalizer *flights.Normalizer
	generator  *flights.Generator

	useLive  bool
	fallback bool
	limiter  *rate.Limiter

	// now is swappable for tests.
	now func() time.Time
}

// NewService wires an orchestrator from configuration. The scan
// limiter only exists when the live provider is in play; synthetic
// scans have nothing to throttle.
func NewService(db *gorm.DB, client *amadeus.Client, cfg config.SearchConfig) *Service {
	normalizer := flights.NewNormalizer()
	if cfg.BaseFareRatio > 0 {
		normalizer.BaseFareRatio = cfg.BaseFareRatio
	}

	var limiter *rate.Limiter
	if cfg.UseLiveAPI && cfg.ScanRatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.ScanRatePerSecond), 1)
	}

	return &Service{
		db:         db,
		client:     client,
		normalizer: normalizer,
		generator:  flights.NewGenerator(),
		useLive:    cfg.UseLiveAPI,
		fallback:   cfg.FallbackToSynthetic,
		limiter:    limiter,
		now:        time.Now,
	}
}

// attemptStatus tags the outcome of one provider attempt.
type attemptStatus int

const (
	attemptSkipped attemptStatus = iota
	attemptOK
	attemptEmpty
	attemptFailed
)

type providerAttempt struct {
	status attemptStatus
	result *flights.Result
	reason string
}

// Search runs one single-date search: cache check, provider attempt,
// fallback decision, persistence. It never returns an error; total
// unavailability yields an explicit empty result instead.
func (s *Service) Search(ctx context.Context, query flights.Query) *flights.Result {
	key := query.Key()

	if cached, ok := store.GetSearch(s.db, key, s.now()); ok {
		log.Debugf(ctx, "cache hit for %s", key)
		return cached
	}

	attempt := s.attemptProvider(ctx, query)
	result := s.resolve(ctx, query, attempt)

	if result.Source != flights.SourceNone {
		s.persist(ctx, result)
	}
	return result
}

func (s *Service) attemptProvider(ctx context.Context, query flights.Query) providerAttempt {
	if !s.useLive || s.client == nil || !s.client.Configured() {
		return providerAttempt{status: attemptSkipped}
	}

	resp, err := s.client.SearchFlightOffers(ctx, query.Origin, query.Destination, query.DepartureDate, query.Passengers)
	if err != nil {
		return providerAttempt{status: attemptFailed, reason: err.Error()}
	}

	result := s.normalizer.Normalize(resp, query)
	if len(result.Offers) == 0 {
		return providerAttempt{status: attemptEmpty}
	}
	return providerAttempt{status: attemptOK, result: result}
}

// resolve turns a provider attempt into the final result: live data
// when the attempt succeeded, synthetic offers when fallback is
// enabled, an explicit empty result otherwise.
func (s *Service) resolve(ctx context.Context, query flights.Query, attempt providerAttempt) *flights.Result {
	switch attempt.status {
	case attemptOK:
		log.Infof(ctx, "provider returned %d offers for %s", len(attempt.result.Offers), query.Key())
		return attempt.result
	case attemptFailed:
		log.Warnf(ctx, "provider attempt failed for %s: %s", query.Key(), attempt.reason)
	case attemptEmpty:
		log.Infof(ctx, "provider returned no offers for %s", query.Key())
	}

	if s.fallback {
		log.Debugf(ctx, "generating synthetic offers for %s", query.Key())
		return s.generator.Generate(query)
	}

	return &flights.Result{
		Query:      query,
		Offers:     []flights.Offer{},
		SearchedAt: s.now(),
		Source:     flights.SourceNone,
		Err:        "No flight data available",
	}
}

// persist writes the cache row and, for non-empty results, one price
// observation for the cheapest offer. Storage failures are logged and
// swallowed.
func (s *Service) persist(ctx context.Context, result *flights.Result) {
	if err := store.PutSearch(s.db, result, s.now()); err != nil {
		log.Warnf(ctx, "cache write failed for %s: %v", result.Query.Key(), err)
	}

	cheapest, ok := result.Cheapest()
	if !ok {
		return
	}
	if err := store.RecordPrice(s.db, result.Query.Route(), result.Query.DepartureDate, cheapest, s.now()); err != nil {
		log.Warnf(ctx, "ledger write failed for %s: %v", result.Query.Route(), err)
	}
}

// PriceHistory returns ledger observations for route within the
// trailing daysBack days, most recent first.
func (s *Service) PriceHistory(route string, daysBack int) ([]store.PriceObservation, error) {
	since := s.now().AddDate(0, 0, -daysBack)
	return store.QueryPrices(s.db, route, since)
}
