package country

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"haulplan/internal/types"
)

// stubStrategy counts attempts so tests can assert on short-circuiting.
type stubStrategy struct {
	name     string
	code     string
	method   string
	err      error
	attempts int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Attempt(_ context.Context) (string, string, error) {
	s.attempts++
	if s.err != nil {
		return "", "", s.err
	}
	return s.code, s.method, nil
}

func newTestService(strategies ...Strategy) Service {
	return NewService(strategies, 24*time.Hour, nil, nil, slog.Default())
}

func TestService_Resolve_CascadeOrder(t *testing.T) {
	failing := &stubStrategy{name: "ip", err: errors.New("network down")}
	succeeding := &stubStrategy{name: "locale", code: "us", method: types.MethodLocale}
	unreached := &stubStrategy{name: "timezone", code: "gb", method: types.MethodTimezone}

	svc := newTestService(failing, succeeding, unreached)

	result, ok := svc.Resolve(context.Background())
	if !ok {
		t.Fatal("Resolve() ok = false")
	}
	if result.CountryCode != "us" || result.Method != types.MethodLocale {
		t.Errorf("Resolve() = %s/%s, want us/locale", result.CountryCode, result.Method)
	}
	if failing.attempts != 1 {
		t.Errorf("first strategy attempted %d times, want 1", failing.attempts)
	}
	if unreached.attempts != 0 {
		t.Error("strategy after a success was attempted")
	}
}

func TestService_Resolve_CachedResultShortCircuits(t *testing.T) {
	strategy := &stubStrategy{name: "ip", code: "ca", method: types.MethodIP("ipapi.co")}
	svc := newTestService(strategy)

	if _, ok := svc.Resolve(context.Background()); !ok {
		t.Fatal("first Resolve() failed")
	}
	if _, ok := svc.Resolve(context.Background()); !ok {
		t.Fatal("second Resolve() failed")
	}
	if strategy.attempts != 1 {
		t.Errorf("strategy attempted %d times across two resolves, want 1", strategy.attempts)
	}
}

func TestService_Resolve_AllStrategiesFail(t *testing.T) {
	svc := newTestService(
		&stubStrategy{name: "ip", err: errors.New("down")},
		&stubStrategy{name: "locale", err: errors.New("unset")},
	)

	if _, ok := svc.Resolve(context.Background()); ok {
		t.Error("Resolve() ok = true with every strategy failing")
	}
}

func TestService_SetManual(t *testing.T) {
	strategy := &stubStrategy{name: "ip", code: "ca", method: types.MethodIP("ipapi.co")}
	svc := newTestService(strategy)

	result, err := svc.SetManual("US")
	if err != nil {
		t.Fatalf("SetManual() error = %v", err)
	}
	if result.CountryCode != "us" || result.Method != types.MethodManual {
		t.Errorf("SetManual() = %s/%s, want us/manual", result.CountryCode, result.Method)
	}

	// Resolve must serve the manual value without touching any strategy.
	got, ok := svc.Resolve(context.Background())
	if !ok || got.CountryCode != "us" {
		t.Errorf("Resolve() after SetManual = %v/%v", got.CountryCode, ok)
	}
	if strategy.attempts != 0 {
		t.Errorf("strategy attempted %d times after manual override, want 0", strategy.attempts)
	}
}

func TestService_SetManual_InvalidCodes(t *testing.T) {
	svc := newTestService()
	if _, err := svc.SetManual("de"); err != nil {
		t.Fatalf("seeding SetManual error = %v", err)
	}

	tests := []string{"", "d", "deu", "d1", "42", "u-"}
	for _, code := range tests {
		t.Run("code "+code, func(t *testing.T) {
			if _, err := svc.SetManual(code); !errors.Is(err, ErrInvalidCountryCode) {
				t.Errorf("SetManual(%q) error = %v, want ErrInvalidCountryCode", code, err)
			}
			// The previous value must be left unchanged.
			current, ok := svc.Current()
			if !ok || current.CountryCode != "de" {
				t.Errorf("Current() after invalid SetManual = %v/%v, want de/true", current.CountryCode, ok)
			}
		})
	}
}

func TestService_Refresh_BypassesCache(t *testing.T) {
	strategy := &stubStrategy{name: "ip", code: "ca", method: types.MethodIP("ipwho.is")}
	svc := newTestService(strategy)

	svc.Resolve(context.Background())
	svc.Refresh(context.Background())

	if strategy.attempts != 2 {
		t.Errorf("strategy attempted %d times, want 2 (refresh re-runs cascade)", strategy.attempts)
	}
}

func TestService_Subscribe(t *testing.T) {
	svc := newTestService()

	var notified []string
	unsubscribe := svc.Subscribe(func(r types.DetectionResult) {
		notified = append(notified, r.CountryCode)
	})

	if _, err := svc.SetManual("us"); err != nil {
		t.Fatal(err)
	}
	// Committed value must be readable from inside a callback's turn.
	if len(notified) != 1 || notified[0] != "us" {
		t.Fatalf("notifications = %v, want [us]", notified)
	}

	unsubscribe()
	if _, err := svc.SetManual("ca"); err != nil {
		t.Fatal(err)
	}
	if len(notified) != 1 {
		t.Errorf("unsubscribed callback still invoked, notifications = %v", notified)
	}
}

func TestService_DetectFromCoordinates(t *testing.T) {
	svc := newTestService()

	result, err := svc.DetectFromCoordinates(context.Background(), 39.29, -76.61)
	if err != nil {
		t.Fatalf("DetectFromCoordinates() error = %v", err)
	}
	if result.CountryCode != "us" || result.Method != types.MethodGPS {
		t.Errorf("DetectFromCoordinates() = %s/%s, want us/gps", result.CountryCode, result.Method)
	}
}

func TestService_DetectFromCoordinates_NoOverwriteWhenUnchanged(t *testing.T) {
	svc := newTestService()

	var notifications int
	svc.Subscribe(func(types.DetectionResult) { notifications++ })

	if _, err := svc.SetManual("us"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.DetectFromCoordinates(context.Background(), 39.29, -76.61); err != nil {
		t.Fatal(err)
	}

	// Same country: the cached manual detection must survive untouched.
	current, _ := svc.Current()
	if current.Method != types.MethodManual {
		t.Errorf("Current().Method = %q after same-country GPS fix, want manual", current.Method)
	}
	if notifications != 1 {
		t.Errorf("notifications = %d, want 1 (no commit for an unchanged value)", notifications)
	}
}

func TestService_DetectFromCoordinates_InvalidInput(t *testing.T) {
	svc := newTestService()

	if _, err := svc.DetectFromCoordinates(context.Background(), 91.0, 0.0); err == nil {
		t.Error("DetectFromCoordinates(91, 0) error = nil, want range error")
	}
	if _, err := svc.DetectFromCoordinates(context.Background(), 39.0, -181.0); err == nil {
		t.Error("DetectFromCoordinates(39, -181) error = nil, want range error")
	}
}
