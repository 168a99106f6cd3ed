package source

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/genricoloni/radiod/internal/browse"
	"github.com/genricoloni/radiod/internal/catalog"
	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/zap"
)

func stations(n int) []domain.MediaItem {
	items := make([]domain.MediaItem, n)
	for i := range items {
		items[i] = domain.MediaItem{
			MediaID:  fmt.Sprintf("radio_%02d", i+1),
			MediaURI: fmt.Sprintf("https://stream.example.com/%d.mp3", i+1),
			Flags:    domain.FlagPlayable,
		}
	}
	return items
}

func TestJSONRadioSource_Lifecycle(t *testing.T) {
	release := make(chan struct{})
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		<-release
		return catalog.Result{Source: uri, Items: stations(3)}
	})

	src := NewJSONRadioSource(zap.NewNop(), loader, "https://example.com/radio.json", 0)
	if src.State() != domain.StateCreated {
		t.Fatalf("expected created, got %s", src.State())
	}

	if err := src.Start(t.Context()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer src.Stop(context.Background())

	if src.State() != domain.StateInitializing {
		t.Fatalf("expected initializing, got %s", src.State())
	}
	// Nothing is visible while the load runs
	if len(src.Items()) != 0 {
		t.Fatalf("expected empty catalog during load, got %d items", len(src.Items()))
	}
	if children, _ := src.Tree().Children(browse.RootID); len(children) != 0 {
		t.Fatalf("expected empty root during load, got %d", len(children))
	}

	close(release)

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	ok, err := src.WhenReady(ctx)
	if err != nil || !ok {
		t.Fatalf("expected ready and initialized, got %v, %v", ok, err)
	}

	if src.State() != domain.StateInitialized {
		t.Errorf("expected initialized, got %s", src.State())
	}
	if len(src.Items()) != 3 {
		t.Errorf("expected 3 items, got %d", len(src.Items()))
	}
	children, ok := src.Tree().Children(browse.RootID)
	if !ok || len(children) != 3 {
		t.Errorf("expected 3 root children, got %d", len(children))
	}

	n := 0
	for range src.All() {
		n++
	}
	if n != 3 {
		t.Errorf("All yielded %d items", n)
	}
}

func TestJSONRadioSource_FailedLoad(t *testing.T) {
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		return catalog.Result{Source: uri, Items: []domain.MediaItem{}, Err: catalog.ErrFetch}
	})

	src := NewJSONRadioSource(zap.NewNop(), loader, "https://unreachable.invalid/radio.json", 0)
	if err := src.Start(t.Context()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer src.Stop(context.Background())

	ok, err := src.WhenReady(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("a failed load must not report success")
	}
	if src.State() != domain.StateError {
		t.Errorf("expected error state, got %s", src.State())
	}
	if len(src.Items()) != 0 {
		t.Errorf("expected empty catalog, got %d", len(src.Items()))
	}
	if !errors.Is(src.Result().Err, catalog.ErrFetch) {
		t.Errorf("expected fetch error to be kept, got %v", src.Result().Err)
	}
}

func TestJSONRadioSource_RefreshReplacesAtomically(t *testing.T) {
	var calls atomic.Int32
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		switch calls.Add(1) {
		case 1:
			return catalog.Result{Items: stations(2)}
		case 2:
			return catalog.Result{Items: []domain.MediaItem{}, Err: catalog.ErrDecode}
		default:
			return catalog.Result{Items: stations(5)}
		}
	})

	src := NewJSONRadioSource(zap.NewNop(), loader, "https://example.com/radio.json", 0)

	src.Refresh(t.Context())
	before := src.Tree()
	if before.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", before.Len())
	}

	res := src.Refresh(t.Context())
	if !res.Failed() {
		t.Fatal("second load should fail")
	}
	if len(src.Items()) != 2 || src.State() != domain.StateInitialized {
		t.Errorf("failed refresh must keep the previous catalog, got %d items in state %s", len(src.Items()), src.State())
	}

	src.Refresh(t.Context())
	if len(src.Items()) != 5 || src.Tree().Len() != 5 {
		t.Errorf("expected 5 items after refresh, got %d", len(src.Items()))
	}
	// The old tree is a snapshot and is never mutated
	if before.Len() != 2 {
		t.Errorf("previous snapshot changed to %d items", before.Len())
	}
}

func TestJSONRadioSource_PeriodicRefresh(t *testing.T) {
	var calls atomic.Int32
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		calls.Add(1)
		return catalog.Result{Items: stations(1)}
	})

	src := NewJSONRadioSource(zap.NewNop(), loader, "https://example.com/radio.json", 10*time.Millisecond)
	if err := src.Start(t.Context()); err != nil {
		t.Fatalf("start: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected periodic refreshes, got %d loads", calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := src.Stop(t.Context()); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestJSONRadioSource_WhenReadyTimeout(t *testing.T) {
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		<-ctx.Done()
		return catalog.Result{Items: []domain.MediaItem{}, Err: ctx.Err()}
	})

	src := NewJSONRadioSource(zap.NewNop(), loader, "https://example.com/radio.json", 0)
	if err := src.Start(t.Context()); err != nil {
		t.Fatalf("start: %v", err)
	}

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()
	if _, err := src.WhenReady(ctx); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}

	// Stop cancels the blocked load, which then publishes an error state
	if err := src.Stop(t.Context()); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if src.State() != domain.StateError {
		t.Errorf("expected error state after cancelled load, got %s", src.State())
	}
}

func TestJSONRadioSource_FindByStream(t *testing.T) {
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		return catalog.Result{Items: stations(3)}
	})
	src := NewJSONRadioSource(zap.NewNop(), loader, "https://example.com/radio.json", 0)
	src.Refresh(t.Context())

	item, ok := src.FindByStream("https://stream.example.com/2.mp3")
	if !ok || item.MediaID != "radio_02" {
		t.Errorf("expected radio_02, got %+v, %v", item, ok)
	}
	if _, ok := src.FindByStream(""); ok {
		t.Error("empty uri must not match")
	}
	if _, ok := src.FindByStream("https://other/stream"); ok {
		t.Error("unknown uri must not match")
	}
}

func TestJSONRadioSource_FailedRefreshKeepsEmptyCatalog(t *testing.T) {
	var calls atomic.Int32
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		if calls.Add(1) == 1 {
			return catalog.Result{Items: []domain.MediaItem{}}
		}
		return catalog.Result{Items: []domain.MediaItem{}, Err: catalog.ErrFetch}
	})

	src := NewJSONRadioSource(zap.NewNop(), loader, "https://example.com/radio.json", 0)

	src.Refresh(t.Context())
	if src.State() != domain.StateInitialized {
		t.Fatalf("an empty upstream catalog is a successful load, got %s", src.State())
	}

	if res := src.Refresh(t.Context()); !res.Failed() {
		t.Fatal("second load should fail")
	}
	if src.State() != domain.StateInitialized {
		t.Errorf("failed refresh must keep the previous state, got %s", src.State())
	}
	if src.Result().Err != nil {
		t.Errorf("published result should still be the successful load, got %v", src.Result().Err)
	}
}

func TestJSONRadioSource_RefreshesDoNotOverlap(t *testing.T) {
	var inflight, maxInflight, calls atomic.Int32
	loader := LoaderFunc(func(ctx context.Context, uri string) catalog.Result {
		n := inflight.Add(1)
		defer inflight.Add(-1)
		for {
			m := maxInflight.Load()
			if n <= m || maxInflight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return catalog.Result{Items: stations(int(calls.Add(1)))}
	})

	src := NewJSONRadioSource(zap.NewNop(), loader, "https://example.com/radio.json", 0)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src.Refresh(t.Context())
		}()
	}
	wg.Wait()

	if got := maxInflight.Load(); got != 1 {
		t.Errorf("expected loads to run one at a time, saw %d at once", got)
	}
	// The last load to finish is the one published
	if got := len(src.Items()); got != 8 {
		t.Errorf("expected the newest catalog of 8 stations, got %d", got)
	}
}
