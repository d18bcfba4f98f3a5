// Package country resolves the two-letter country code used to scope
// location search. Detection cascades across IP geolocation, the process
// locale, and the host timezone; GPS correction and manual override sit on
// top. Every stage fails soft; the only hard error is an invalid
// manually-supplied code.
package country

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"haulplan/internal/cache"
	"haulplan/internal/store"
	"haulplan/internal/types"
)

// ErrInvalidCountryCode is returned by SetManual for malformed input.
var ErrInvalidCountryCode = errors.New("country code must be exactly two letters")

// cacheKey is the single fixed key under which the current detection lives.
const cacheKey = "current"

// ZoneLookup resolves coordinates to an IANA timezone name. Satisfied by
// the timezone service; used as the GPS fallback when no bounding box
// matches.
type ZoneLookup interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// Service is the country resolution cascade.
type Service interface {
	// Resolve returns the current country, running the cascade when no
	// un-expired detection exists. ok is false when every stage failed;
	// the caller applies its own default.
	Resolve(ctx context.Context) (types.DetectionResult, bool)
	// Current returns the cached detection without triggering the cascade.
	Current() (types.DetectionResult, bool)
	// DetectFromCoordinates performs opportunistic GPS correction.
	DetectFromCoordinates(ctx context.Context, latitude, longitude float64) (types.DetectionResult, error)
	// SetManual overrides detection with a user-chosen code.
	SetManual(code string) (types.DetectionResult, error)
	// Refresh clears the cached detection and re-runs the full cascade.
	Refresh(ctx context.Context) (types.DetectionResult, bool)
	// Subscribe registers a callback invoked synchronously after each commit.
	// The returned handle unsubscribes.
	Subscribe(fn func(types.DetectionResult)) (unsubscribe func())
}

type service struct {
	strategies []Strategy
	cache      *cache.Cache[types.DetectionResult]
	ttl        time.Duration
	store      *store.Store // optional persistence, may be nil
	zones      ZoneLookup   // optional GPS fallback, may be nil
	logger     *slog.Logger
	now        func() time.Time

	mu          sync.Mutex
	subscribers map[int]func(types.DetectionResult)
	nextSubID   int
}

// NewService creates the cascade over the given strategies, in priority
// order. persistence and zones may be nil.
func NewService(
	strategies []Strategy,
	detectionTTL time.Duration,
	persistence *store.Store,
	zones ZoneLookup,
	logger *slog.Logger,
) Service {
	return &service{
		strategies:  strategies,
		cache:       cache.New[types.DetectionResult](1, detectionTTL),
		ttl:         detectionTTL,
		store:       persistence,
		zones:       zones,
		logger:      logger.With("component", "country-service"),
		now:         time.Now,
		subscribers: make(map[int]func(types.DetectionResult)),
	}
}

func (s *service) Resolve(ctx context.Context) (types.DetectionResult, bool) {
	if result, ok := s.cache.Get(cacheKey); ok {
		return result, true
	}
	if result, ok := s.warmFromStore(); ok {
		return result, true
	}
	return s.runCascade(ctx)
}

func (s *service) Current() (types.DetectionResult, bool) {
	return s.cache.Get(cacheKey)
}

func (s *service) Refresh(ctx context.Context) (types.DetectionResult, bool) {
	s.cache.Clear()
	if s.store != nil {
		if err := s.store.Clear(store.NamespaceCountryDetection); err != nil {
			s.logger.Warn("failed to clear persisted detection", "error", err)
		}
	}
	return s.runCascade(ctx)
}

func (s *service) SetManual(code string) (types.DetectionResult, error) {
	normalized := types.NormalizeCountryCode(code)
	if !types.ValidCountryCode(normalized) {
		// Previous cached value stays untouched.
		return types.DetectionResult{}, ErrInvalidCountryCode
	}
	result := types.DetectionResult{
		CountryCode: normalized,
		Method:      types.MethodManual,
		DetectedAt:  s.now(),
	}
	s.commit(result)
	return result, nil
}

func (s *service) DetectFromCoordinates(ctx context.Context, latitude, longitude float64) (types.DetectionResult, error) {
	if err := types.NewCoords(latitude, longitude).Validate(); err != nil {
		return types.DetectionResult{}, err
	}

	code, method, ok := s.detectFromCoordinates(latitude, longitude)
	if !ok {
		return types.DetectionResult{}, errors.New("coordinates match no supported country")
	}

	result := types.DetectionResult{
		CountryCode: code,
		Method:      method,
		DetectedAt:  s.now(),
	}

	// Correction only touches the cache when it actually changes the answer.
	if current, cached := s.cache.Get(cacheKey); cached && current.CountryCode == code {
		return current, nil
	}
	s.commit(result)
	return result, nil
}

func (s *service) detectFromCoordinates(latitude, longitude float64) (string, string, bool) {
	if code, ok := countryFromBounds(latitude, longitude); ok {
		return code, types.MethodGPS, true
	}
	if s.zones == nil {
		return "", "", false
	}
	zone, err := s.zones.GetTimezone(latitude, longitude)
	if err != nil {
		s.logger.Debug("gps timezone fallback failed", "error", err)
		return "", "", false
	}
	code, _, ok := countryFromZone(zone)
	if !ok {
		return "", "", false
	}
	return code, types.MethodTimezoneRegion, true
}

func (s *service) Subscribe(fn func(types.DetectionResult)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// runCascade tries each strategy in priority order and commits the first
// success. Failures are logged, never surfaced.
func (s *service) runCascade(ctx context.Context) (types.DetectionResult, bool) {
	for _, strategy := range s.strategies {
		code, method, err := strategy.Attempt(ctx)
		if err != nil {
			s.logger.Debug("detection strategy failed",
				"strategy", strategy.Name(),
				"error", err,
			)
			continue
		}
		result := types.DetectionResult{
			CountryCode: code,
			Method:      method,
			DetectedAt:  s.now(),
		}
		s.logger.Info("country detected",
			"country_code", code,
			"method", method,
		)
		s.commit(result)
		return result, true
	}
	s.logger.Warn("country detection exhausted all strategies")
	return types.DetectionResult{}, false
}

// commit writes the result to the cache and store, then notifies
// subscribers. Callbacks run synchronously after the value is committed.
func (s *service) commit(result types.DetectionResult) {
	s.cache.Set(cacheKey, result)
	if s.store != nil {
		if err := s.store.Put(store.NamespaceCountryDetection, cacheKey, result, result.Method); err != nil {
			s.logger.Warn("failed to persist detection", "error", err)
		}
	}

	s.mu.Lock()
	callbacks := make([]func(types.DetectionResult), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(result)
	}
}

// warmFromStore restores a persisted detection into the in-memory cache.
func (s *service) warmFromStore() (types.DetectionResult, bool) {
	if s.store == nil {
		return types.DetectionResult{}, false
	}
	entry, ok, err := s.store.Get(store.NamespaceCountryDetection, cacheKey, s.ttl)
	if err != nil {
		s.logger.Warn("failed to read persisted detection", "error", err)
		return types.DetectionResult{}, false
	}
	if !ok {
		return types.DetectionResult{}, false
	}

	var result types.DetectionResult
	if err := json.Unmarshal(entry.Value, &result); err != nil {
		s.logger.Warn("persisted detection is unreadable", "error", err)
		return types.DetectionResult{}, false
	}
	s.cache.Set(cacheKey, result)
	return result, true
}
