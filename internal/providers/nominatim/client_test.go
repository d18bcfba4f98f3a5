package nominatim

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, "test-key", time.Second, slog.Default())
	return client, server
}

func TestClient_Autocomplete(t *testing.T) {
	var gotQuery map[string]string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":            r.URL.Query().Get("q"),
			"countrycodes": r.URL.Query().Get("countrycodes"),
			"limit":        r.URL.Query().Get("limit"),
			"key":          r.URL.Query().Get("key"),
		}
		_, _ = w.Write([]byte(`[{"place_id":1,"lat":"39.29","lon":"-76.61","display_name":"Baltimore, MD","type":"city","class":"place"}]`))
	})
	defer server.Close()

	places, err := client.Autocomplete(context.Background(), "balti", "us", 5)
	if err != nil {
		t.Fatalf("Autocomplete() error = %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("Autocomplete() returned %d places, want 1", len(places))
	}
	if places[0].DisplayName != "Baltimore, MD" {
		t.Errorf("DisplayName = %q", places[0].DisplayName)
	}

	if gotQuery["q"] != "balti" || gotQuery["countrycodes"] != "us" || gotQuery["limit"] != "5" {
		t.Errorf("request params = %v", gotQuery)
	}
	if gotQuery["key"] != "test-key" {
		t.Error("API key missing from request")
	}
}

func TestClient_Reverse(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"place_id":7,"lat":"39.29","lon":"-76.61","display_name":"Inner Harbor","address":{"city":"Baltimore","state":"Maryland","country_code":"us"}}`))
	})
	defer server.Close()

	place, err := client.Reverse(context.Background(), 39.29, -76.61)
	if err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}
	if place.Address.City != "Baltimore" {
		t.Errorf("Address.City = %q, want Baltimore", place.Address.City)
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{
			name:    "unauthorized maps to ErrAuth",
			status:  http.StatusUnauthorized,
			wantErr: ErrAuth,
		},
		{
			name:    "throttled maps to ErrRateLimited",
			status:  http.StatusTooManyRequests,
			wantErr: ErrRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			defer server.Close()

			_, err := client.Search(context.Background(), "anywhere", 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Search() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_GenericUpstreamError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.Search(context.Background(), "anywhere", 1)
	if err == nil {
		t.Fatal("Search() error = nil, want wrapped status error")
	}
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrRateLimited) {
		t.Errorf("generic upstream failure mapped to a typed error: %v", err)
	}
}
