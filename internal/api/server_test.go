package api

import (
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/radiod/internal/browse"
	"github.com/genricoloni/radiod/internal/catalog"
	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/zap"
)

type fakeView struct {
	state  domain.SourceState
	result catalog.Result
}

func (v fakeView) State() domain.SourceState { return v.state }
func (v fakeView) Result() catalog.Result    { return v.result }
func (v fakeView) Tree() *browse.Tree        { return browse.NewTree(slices.Values(v.result.Items)) }

func station(id string) domain.MediaItem {
	return domain.MediaItem{
		MediaID:      id,
		Title:        "Station " + id,
		DisplayTitle: "Station " + id,
		MediaURI:     "https://stream.example.com/" + id,
		AlbumArtURI:  "https://example.com/" + id + ".png",
		Flags:        domain.FlagPlayable,
		AlbumArt:     imaging.New(144, 144, image.Black.C),
		Extras:       map[string]string{domain.ExtraDownloadStatus: "0", domain.ExtraSite: "https://example.com"},
	}
}

func newTestServer(view CatalogView) http.Handler {
	return NewServer(zap.NewNop(), view, http.NotFoundHandler(), "127.0.0.1:0").Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestBrowse(t *testing.T) {
	view := fakeView{
		state:  domain.StateInitialized,
		result: catalog.Result{Items: []domain.MediaItem{station("b"), station("a"), station("c")}},
	}
	h := newTestServer(view)

	tests := []struct {
		name             string
		path             string
		expectedStatus   int
		expectedLeaf     bool
		expectedChildren []string
	}{
		{
			name:             "Root Lists Stations In Order",
			path:             "/api/v1/browse/" + browse.RootID,
			expectedStatus:   http.StatusOK,
			expectedChildren: []string{"b", "a", "c"},
		},
		{
			name:             "Leaf Has No Children",
			path:             "/api/v1/browse/a",
			expectedStatus:   http.StatusOK,
			expectedLeaf:     true,
			expectedChildren: []string{},
		},
		{
			name:           "Unknown Id",
			path:           "/api/v1/browse/nope",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.path)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp browseResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Leaf != tt.expectedLeaf {
				t.Errorf("leaf: expected %v, got %v", tt.expectedLeaf, resp.Leaf)
			}
			if resp.Children == nil {
				t.Fatal("children must be a list, not null")
			}
			ids := make([]string, 0, len(resp.Children))
			for _, c := range resp.Children {
				ids = append(ids, c.ID)
			}
			if !slices.Equal(ids, tt.expectedChildren) {
				t.Errorf("children: expected %v, got %v", tt.expectedChildren, ids)
			}
			if tt.expectedLeaf && (resp.Item == nil || !resp.Item.Playable) {
				t.Errorf("leaf should describe a playable item, got %+v", resp.Item)
			}
		})
	}
}

func TestBrowse_EmptyCatalog(t *testing.T) {
	h := newTestServer(fakeView{state: domain.StateError, result: catalog.Result{Items: []domain.MediaItem{}, Err: catalog.ErrFetch}})

	rec := get(t, h, "/api/v1/browse/"+browse.RootID)
	if rec.Code != http.StatusOK {
		t.Fatalf("root must exist for an empty catalog, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"media_id":"__ROOT__","leaf":false,"children":[]}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestStatus(t *testing.T) {
	h := newTestServer(fakeView{
		state:  domain.StateError,
		result: catalog.Result{Source: "https://unreachable.invalid/radio.json", Items: []domain.MediaItem{}, Err: catalog.ErrFetch},
	})

	rec := get(t, h, "/api/v1/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["state"] != "error" || body["stations"] != float64(0) {
		t.Errorf("unexpected status %v", body)
	}
	if body["error"] != catalog.ErrFetch.Error() {
		t.Errorf("expected load error to be reported, got %v", body["error"])
	}
}

func TestArtwork(t *testing.T) {
	h := newTestServer(fakeView{result: catalog.Result{Items: []domain.MediaItem{station("a")}}})

	rec := get(t, h, "/api/v1/artwork/a")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %s", ct)
	}
	img, err := imaging.Decode(rec.Body)
	if err != nil {
		t.Fatalf("response is not an image: %v", err)
	}
	if img.Bounds().Dx() != 144 {
		t.Errorf("expected 144px icon, got %d", img.Bounds().Dx())
	}

	if rec := get(t, h, "/api/v1/artwork/missing"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("radiod_up 1\n"))
	})
	h := NewServer(zap.NewNop(), fakeView{}, metrics, "127.0.0.1:0").Handler()

	if rec := get(t, h, "/health"); rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}
	if rec := get(t, h, "/metrics"); rec.Body.String() != "radiod_up 1\n" {
		t.Errorf("metrics handler not mounted, got %q", rec.Body.String())
	}
}

func TestStartStop(t *testing.T) {
	srv := NewServer(zap.NewNop(), fakeView{}, nil, "127.0.0.1:0")
	if err := srv.Start(t.Context()); err != nil {
		t.Fatalf("start: %v", err)
	}

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	if err := srv.Stop(t.Context()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
