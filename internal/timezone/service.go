package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf. The finder loads its polygon
// dataset into memory (~50MB), so initialization is deferred until the first
// lookup and done once per instance.
type service struct {
	once    sync.Once
	finder  tzf.F
	initErr error
}

// NewService creates a timezone service. The host application owns the
// instance lifecycle; construct it once and share it.
func NewService() Service {
	return &service{}
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/Denver", "Europe/London", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			s.initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		s.finder = finder
	})
	if s.initErr != nil {
		return "", s.initErr
	}

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}
