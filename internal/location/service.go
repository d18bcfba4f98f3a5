// Package location resolves free-text queries and coordinates into
// normalized LocationCandidate values via the gazetteer, with caching and
// supersession of stale in-flight searches.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"haulplan/internal/cache"
	"haulplan/internal/observability"
	"haulplan/internal/providers/nominatim"
	"haulplan/internal/store"
	"haulplan/internal/types"
)

// minQueryLength is the shortest autocomplete query worth a network call.
const minQueryLength = 2

// Gazetteer is the slice of the nominatim client the resolver needs.
type Gazetteer interface {
	Autocomplete(ctx context.Context, query, countryCode string, limit int) ([]nominatim.PlaceAPIResponse, error)
	Search(ctx context.Context, query string, limit int) ([]nominatim.PlaceAPIResponse, error)
	Reverse(ctx context.Context, latitude, longitude float64) (*nominatim.PlaceAPIResponse, error)
}

// AutocompleteOptions scope an autocomplete call.
type AutocompleteOptions struct {
	CountryCode   string
	Limit         int
	TruckFriendly bool
}

// Service is the location resolver. Debouncing is the caller's concern; the
// resolver only guarantees that a superseded call never delivers results.
type Service interface {
	Autocomplete(ctx context.Context, query string, opts AutocompleteOptions) ([]types.LocationCandidate, error)
	Geocode(ctx context.Context, address string) (*types.LocationCandidate, error)
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*types.LocationCandidate, error)
}

type service struct {
	gazetteer Gazetteer
	cache     *cache.Cache[[]types.LocationCandidate]
	store     *store.Store // optional persistence, may be nil
	metrics   *observability.Metrics
	logger    *slog.Logger

	mu             sync.Mutex
	cancelInflight context.CancelFunc
	generation     uint64
}

// NewService creates a resolver over the given gazetteer. persistence and
// metrics may be nil.
func NewService(
	gazetteer Gazetteer,
	searchCache *cache.Cache[[]types.LocationCandidate],
	persistence *store.Store,
	metrics *observability.Metrics,
	logger *slog.Logger,
) Service {
	return &service{
		gazetteer: gazetteer,
		cache:     searchCache,
		store:     persistence,
		metrics:   metrics,
		logger:    logger.With("component", "location-service"),
	}
}

func (s *service) Autocomplete(ctx context.Context, query string, opts AutocompleteOptions) ([]types.LocationCandidate, error) {
	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		// Too short to be worth an upstream call.
		return []types.LocationCandidate{}, nil
	}

	key := autocompleteKey(query, opts)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.RecordCache(store.NamespaceLocationSearch, true)
		return cached, nil
	}
	s.metrics.RecordCache(store.NamespaceLocationSearch, false)

	// A newer call for the same input stream supersedes the in-flight one.
	callCtx, generation := s.beginCall(ctx)
	defer s.endCall(generation)

	places, err := s.gazetteer.Autocomplete(callCtx, query, opts.CountryCode, opts.Limit)
	s.metrics.RecordUpstream("gazetteer", "autocomplete", err)
	if err != nil {
		if s.superseded(generation) && errors.Is(err, context.Canceled) {
			return nil, ErrSuperseded
		}
		return nil, s.translate(err)
	}
	if s.superseded(generation) {
		// The response arrived, but a newer call owns the result slot now.
		return nil, ErrSuperseded
	}

	candidates := make([]types.LocationCandidate, 0, len(places))
	for _, place := range places {
		candidate, err := candidateFromPlace(place)
		if err != nil {
			s.logger.Debug("skipping unusable place record",
				"place_id", place.PlaceID,
				"error", err,
			)
			continue
		}
		candidates = append(candidates, candidate)
	}

	if opts.TruckFriendly {
		// Best-effort ranking: truck-accessible results first, original
		// upstream order preserved within each group.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].TruckAccessible && !candidates[j].TruckAccessible
		})
	}

	s.cache.Set(key, candidates)
	if s.store != nil {
		if err := s.store.Put(store.NamespaceLocationSearch, key, candidates, ""); err != nil {
			s.logger.Warn("failed to persist search results", "error", err)
		}
	}
	return candidates, nil
}

func (s *service) Geocode(ctx context.Context, address string) (*types.LocationCandidate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidQuery)
	}

	places, err := s.gazetteer.Search(ctx, address, 1)
	s.metrics.RecordUpstream("gazetteer", "geocode", err)
	if err != nil {
		return nil, s.translate(err)
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, address)
	}

	candidate, err := candidateFromPlace(places[0])
	if err != nil {
		return nil, fmt.Errorf("failed to map geocode result: %w", err)
	}
	return &candidate, nil
}

func (s *service) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*types.LocationCandidate, error) {
	if err := types.NewCoords(latitude, longitude).Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	place, err := s.gazetteer.Reverse(ctx, latitude, longitude)
	s.metrics.RecordUpstream("gazetteer", "reverse", err)
	if err != nil {
		return nil, s.translate(err)
	}

	candidate, err := candidateFromPlace(*place)
	if err != nil {
		return nil, fmt.Errorf("failed to map reverse geocode result: %w", err)
	}
	return &candidate, nil
}

// beginCall cancels any in-flight autocomplete and claims the result slot.
func (s *service) beginCall(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelInflight != nil {
		s.cancelInflight()
	}
	callCtx, cancel := context.WithCancel(ctx)
	s.cancelInflight = cancel
	s.generation++
	return callCtx, s.generation
}

// endCall releases the cancel slot if this call still owns it.
func (s *service) endCall(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation == generation && s.cancelInflight != nil {
		s.cancelInflight()
		s.cancelInflight = nil
	}
}

func (s *service) superseded(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation != generation
}

// translate folds upstream failures into the resolver's error taxonomy.
func (s *service) translate(err error) error {
	switch {
	case errors.Is(err, nominatim.ErrAuth):
		return fmt.Errorf("%w: %v", ErrAuth, err)
	case errors.Is(err, nominatim.ErrRateLimited):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	default:
		s.logger.Warn("gazetteer request failed", "error", err)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
}

// autocompleteKey builds the composite cache key for a query plus options.
func autocompleteKey(query string, opts AutocompleteOptions) string {
	return fmt.Sprintf("%s|%s|%d|%t", strings.ToLower(query), opts.CountryCode, opts.Limit, opts.TruckFriendly)
}

// candidateFromPlace maps one raw gazetteer record into an immutable
// LocationCandidate. Records without parseable coordinates are unusable.
func candidateFromPlace(place nominatim.PlaceAPIResponse) (types.LocationCandidate, error) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return types.LocationCandidate{}, fmt.Errorf("unparseable latitude %q: %w", place.Lat, err)
	}
	lon, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return types.LocationCandidate{}, fmt.Errorf("unparseable longitude %q: %w", place.Lon, err)
	}

	city := place.Address.City
	if city == "" {
		city = place.Address.Town
	}
	if city == "" {
		city = place.Address.Village
	}

	street := strings.TrimSpace(place.Address.HouseNumber + " " + place.Address.Road)

	candidate := types.LocationCandidate{
		ID:          strconv.FormatInt(place.PlaceID, 10),
		DisplayName: place.DisplayName,
		Address: types.Address{
			Street:      street,
			City:        city,
			State:       place.Address.State,
			PostalCode:  place.Address.Postcode,
			Country:     place.Address.Country,
			CountryCode: types.NormalizeCountryCode(place.Address.CountryCode),
		},
		Coordinates:     types.NewCoords(lat, lon),
		SourceType:      place.Type,
		TruckAccessible: truckAccessible(place.Class, place.Type),
	}

	if box, ok := boundingBoxFromStrings(place.Boundingbox); ok {
		candidate.BoundingBox = &box
	}
	return candidate, nil
}

// boundingBoxFromStrings parses the wire-order [minlat, maxlat, minlon,
// maxlon] string quadruple.
func boundingBoxFromStrings(raw []string) (types.BoundingBox, bool) {
	if len(raw) != 4 {
		return types.BoundingBox{}, false
	}
	values := make([]float64, 4)
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return types.BoundingBox{}, false
		}
		values[i] = v
	}
	return types.BoundingBox{
		MinLat: values[0],
		MaxLat: values[1],
		MinLon: values[2],
		MaxLon: values[3],
	}, true
}
