package country

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"haulplan/internal/types"
)

// Strategy is one detection source in the cascade. Attempt either returns a
// valid two-letter code plus the method that produced it, or an error that
// moves the cascade on to the next strategy.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context) (code string, method string, err error)
}

// IPDetector is the slice of the ipgeo client the cascade needs.
type IPDetector interface {
	Detect(ctx context.Context) (code string, provider string, err error)
}

// ipStrategy wraps the sequential IP provider client as the first cascade
// stage.
type ipStrategy struct {
	detector IPDetector
}

func NewIPStrategy(detector IPDetector) Strategy {
	return &ipStrategy{detector: detector}
}

func (s *ipStrategy) Name() string { return "ip" }

func (s *ipStrategy) Attempt(ctx context.Context) (string, string, error) {
	code, provider, err := s.detector.Detect(ctx)
	if err != nil {
		return "", "", err
	}
	return code, types.MethodIP(provider), nil
}

// localeStrategy extracts the REGION part of a language-REGION locale string
// taken from the process environment (LC_ALL, then LANG).
type localeStrategy struct {
	locale func() string
}

func NewLocaleStrategy() Strategy {
	return &localeStrategy{locale: localeFromEnv}
}

func localeFromEnv() string {
	if v := os.Getenv("LC_ALL"); v != "" {
		return v
	}
	return os.Getenv("LANG")
}

func (s *localeStrategy) Name() string { return "locale" }

func (s *localeStrategy) Attempt(_ context.Context) (string, string, error) {
	raw := s.locale()
	if raw == "" {
		return "", "", errors.New("no locale configured")
	}

	// Locale strings look like "en-US", "en_US.UTF-8", "pt_BR". Strip the
	// encoding suffix, then take whatever follows the language tag.
	raw = strings.SplitN(raw, ".", 2)[0]
	normalized := strings.ReplaceAll(raw, "_", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("locale %q carries no region", raw)
	}

	code := types.NormalizeCountryCode(parts[1])
	if !types.ValidCountryCode(code) {
		return "", "", fmt.Errorf("locale region %q is not a country code", parts[1])
	}
	return code, types.MethodLocale, nil
}

// zoneStrategy maps the host's IANA timezone name to a country, exact match
// first, broad region default second.
type zoneStrategy struct {
	zoneName func() string
}

func NewZoneStrategy() Strategy {
	return &zoneStrategy{zoneName: hostZoneName}
}

func hostZoneName() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	// time.Local.String() reports the IANA name when the zone was loaded
	// from the system database, or "Local" when it was not.
	name := time.Local.String()
	if name == "Local" {
		return ""
	}
	return name
}

func (s *zoneStrategy) Name() string { return "timezone" }

func (s *zoneStrategy) Attempt(_ context.Context) (string, string, error) {
	zone := s.zoneName()
	if zone == "" {
		return "", "", errors.New("host timezone unknown")
	}
	code, method, ok := countryFromZone(zone)
	if !ok {
		return "", "", fmt.Errorf("no country mapping for timezone %q", zone)
	}
	return code, method, nil
}
