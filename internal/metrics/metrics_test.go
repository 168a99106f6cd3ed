package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/genricoloni/radiod/internal/catalog"
	"github.com/genricoloni/radiod/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/multierr"
)

func TestObserveLoad(t *testing.T) {
	tests := []struct {
		name             string
		result           catalog.Result
		expectedLabel    string
		expectedStations float64
		expectedArtwork  float64
	}{
		{
			name: "Loaded",
			result: catalog.Result{
				Items:      make([]domain.MediaItem, 3),
				ArtworkErr: multierr.Combine(errors.New("a"), errors.New("b")),
				Elapsed:    time.Second,
			},
			expectedLabel:    ResultOK,
			expectedStations: 3,
			expectedArtwork:  2,
		},
		{
			name:          "Empty Upstream",
			result:        catalog.Result{Items: []domain.MediaItem{}},
			expectedLabel: ResultEmpty,
		},
		{
			name:          "Fetch Failed",
			result:        catalog.Result{Items: []domain.MediaItem{}, Err: catalog.ErrFetch},
			expectedLabel: ResultError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.ObserveLoad(tt.result)

			if got := testutil.ToFloat64(m.catalogLoads.WithLabelValues(tt.expectedLabel)); got != 1 {
				t.Errorf("expected one %s load, got %v", tt.expectedLabel, got)
			}
			if got := testutil.ToFloat64(m.stations); got != tt.expectedStations {
				t.Errorf("stations: expected %v, got %v", tt.expectedStations, got)
			}
			if got := testutil.ToFloat64(m.artworkFailures); got != tt.expectedArtwork {
				t.Errorf("artwork failures: expected %v, got %v", tt.expectedArtwork, got)
			}
		})
	}
}

func TestFailedLoadKeepsStationGauge(t *testing.T) {
	m := New()
	m.ObserveLoad(catalog.Result{Items: make([]domain.MediaItem, 5)})
	m.ObserveLoad(catalog.Result{Items: []domain.MediaItem{}, Err: catalog.ErrDecode})

	if got := testutil.ToFloat64(m.stations); got != 5 {
		t.Errorf("a failed refresh keeps the previous catalog, gauge should stay 5, got %v", got)
	}
}

func TestObserveNotification(t *testing.T) {
	m := New()
	m.ObserveNotification(nil)
	m.ObserveNotification(nil)
	m.ObserveNotification(errors.New("no server"))

	if got := testutil.ToFloat64(m.notificationsOut.WithLabelValues(ResultOK)); got != 2 {
		t.Errorf("expected 2 posted, got %v", got)
	}
	if got := testutil.ToFloat64(m.notificationsOut.WithLabelValues(ResultError)); got != 1 {
		t.Errorf("expected 1 failed, got %v", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveNotification(nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `radiod_notifications_total{result="ok"} 1`) {
		t.Errorf("exposition is missing the notification counter:\n%s", rec.Body.String())
	}
}
