package source

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/genricoloni/radiod/internal/browse"
	"github.com/genricoloni/radiod/internal/catalog"
	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/zap"
)

// ErrNotReady is returned by WhenReady when the wait ends before the first load
var ErrNotReady = errors.New("music source not ready")

// CatalogLoader runs one catalog load
type CatalogLoader interface {
	Load(ctx context.Context, source string) catalog.Result
}

// LoaderFunc adapts a function to CatalogLoader
type LoaderFunc func(ctx context.Context, source string) catalog.Result

// Load calls f
func (f LoaderFunc) Load(ctx context.Context, source string) catalog.Result {
	return f(ctx, source)
}

// snapshot is everything readers see, published in a single store
type snapshot struct {
	state  domain.SourceState
	result catalog.Result
	tree   *browse.Tree
}

// JSONRadioSource is a music source backed by a remote JSON station catalog.
// The catalog is loaded in the background; readers see either an empty
// catalog or a complete one, never a partially built list.
type JSONRadioSource struct {
	logger          *zap.Logger
	loader          CatalogLoader
	source          string
	refreshInterval time.Duration

	snap      atomic.Pointer[snapshot]
	ready     chan struct{}
	readyOnce sync.Once

	refreshMu sync.Mutex // one load and publish at a time

	mu      sync.Mutex // guards cancel and started
	cancel  context.CancelFunc
	started bool
	wg      sync.WaitGroup
}

// NewJSONRadioSource creates a source for the catalog at uri.
// A positive refreshInterval reloads the catalog periodically after the first load.
func NewJSONRadioSource(logger *zap.Logger, loader CatalogLoader, uri string, refreshInterval time.Duration) *JSONRadioSource {
	s := &JSONRadioSource{
		logger:          logger,
		loader:          loader,
		source:          uri,
		refreshInterval: refreshInterval,
		ready:           make(chan struct{}),
	}
	s.snap.Store(&snapshot{
		state:  domain.StateCreated,
		result: catalog.Result{Source: uri, Items: []domain.MediaItem{}},
		tree:   browse.NewTree(slices.Values([]domain.MediaItem(nil))),
	})
	return s
}

// Start launches the background load and returns immediately
func (s *JSONRadioSource) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	s.started = true

	// Detached from the start context, which only covers startup
	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	cur := s.snap.Load()
	s.snap.Store(&snapshot{state: domain.StateInitializing, result: cur.result, tree: cur.tree})

	s.logger.Info("Loading station catalog", zap.String("source", s.source))

	s.wg.Add(1)
	go s.run(loadCtx)
	return nil
}

// Stop cancels in-flight work and waits for the background goroutine
func (s *JSONRadioSource) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Music source stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *JSONRadioSource) run(ctx context.Context) {
	defer s.wg.Done()

	s.Refresh(ctx)

	if s.refreshInterval <= 0 {
		return
	}

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Refresh(ctx)
		}
	}
}

// Refresh loads the catalog synchronously and publishes the outcome.
// Concurrent calls run one after the other. A failed reload keeps the
// catalog of a previous successful load, even an empty one.
func (s *JSONRadioSource) Refresh(ctx context.Context) catalog.Result {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	res := s.loader.Load(ctx, s.source)

	cur := s.snap.Load()
	if res.Failed() && cur.state == domain.StateInitialized {
		s.logger.Warn("Catalog refresh failed, keeping previous catalog",
			zap.Int("stations", len(cur.result.Items)),
			zap.Error(res.Err))
		s.markReady()
		return res
	}

	state := domain.StateInitialized
	if res.Failed() {
		state = domain.StateError
	}

	s.snap.Store(&snapshot{
		state:  state,
		result: res,
		tree:   browse.NewTree(slices.Values(res.Items)),
	})
	s.markReady()

	s.logger.Info("Station catalog published",
		zap.String("state", state.String()),
		zap.Int("stations", len(res.Items)),
		zap.Duration("elapsed", res.Elapsed))

	return res
}

func (s *JSONRadioSource) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// WhenReady blocks until the first load is published or ctx ends.
// It reports whether the source initialized successfully.
func (s *JSONRadioSource) WhenReady(ctx context.Context) (bool, error) {
	select {
	case <-s.ready:
		return s.State() == domain.StateInitialized, nil
	case <-ctx.Done():
		return false, errors.Join(ErrNotReady, ctx.Err())
	}
}

// State returns the lifecycle state
func (s *JSONRadioSource) State() domain.SourceState {
	return s.snap.Load().state
}

// Result returns the outcome of the load backing the current catalog
func (s *JSONRadioSource) Result() catalog.Result {
	return s.snap.Load().result
}

// Items returns the current catalog. Callers must not modify the slice.
func (s *JSONRadioSource) Items() []domain.MediaItem {
	return s.snap.Load().result.Items
}

// All iterates over the current catalog snapshot
func (s *JSONRadioSource) All() iter.Seq[domain.MediaItem] {
	return slices.Values(s.Items())
}

// Tree returns the browse tree of the current catalog
func (s *JSONRadioSource) Tree() *browse.Tree {
	return s.snap.Load().tree
}

// FindByStream returns the station whose stream address is uri
func (s *JSONRadioSource) FindByStream(uri string) (domain.MediaItem, bool) {
	if uri == "" {
		return domain.MediaItem{}, false
	}
	for _, item := range s.Items() {
		if item.MediaURI == uri {
			return item, true
		}
	}
	return domain.MediaItem{}, false
}
