package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	_maxCatalogSize = 2 * 1024 * 1024 // 2 MB
	_defaultWorkers = 4
)

var (
	// ErrFetch marks a catalog that could not be downloaded
	ErrFetch = errors.New("catalog fetch failed")
	// ErrDecode marks a catalog that was downloaded but is not valid JSON
	ErrDecode = errors.New("catalog decode failed")
)

// Result is the outcome of one catalog load.
//
// Items is never nil. When Err is set, Items is empty; an empty Items with a
// nil Err means the upstream catalog itself had no stations.
type Result struct {
	Source string
	Items  []domain.MediaItem
	// Err is set when the catalog could not be fetched, decoded, or the load was cancelled
	Err error
	// ArtworkErr combines per-station artwork failures; those stations use the default artwork
	ArtworkErr error
	Elapsed    time.Duration
}

// Failed reports whether the catalog itself could not be loaded
func (r Result) Failed() bool {
	return r.Err != nil
}

// Recorder observes finished loads
type Recorder interface {
	ObserveLoad(res Result)
}

// LoaderConfig holds configuration for the catalog pipeline
type LoaderConfig struct {
	// Workers bounds concurrent artwork fetches
	Workers int
}

// Loader runs the fetch, parse, resolve and assemble pipeline
type Loader struct {
	logger   *zap.Logger
	fetcher  domain.Fetcher
	artwork  domain.ArtworkLoader
	recorder Recorder
	workers  int
}

// NewLoader creates a catalog loader. recorder may be nil.
func NewLoader(
	logger *zap.Logger,
	fetcher domain.Fetcher,
	artwork domain.ArtworkLoader,
	recorder Recorder,
	cfg LoaderConfig,
) *Loader {
	workers := cfg.Workers
	if workers <= 0 {
		workers = _defaultWorkers
	}
	return &Loader{
		logger:   logger,
		fetcher:  fetcher,
		artwork:  artwork,
		recorder: recorder,
		workers:  workers,
	}
}

// Load downloads the catalog at source and builds one media item per station,
// in source order. It never returns a partially built list.
func (l *Loader) Load(ctx context.Context, source string) Result {
	start := time.Now()
	res := l.load(ctx, source)
	res.Elapsed = time.Since(start)

	if l.recorder != nil {
		l.recorder.ObserveLoad(res)
	}
	return res
}

func (l *Loader) load(ctx context.Context, source string) Result {
	res := Result{Source: source, Items: []domain.MediaItem{}}

	doc, err := l.fetch(ctx, source)
	if err != nil {
		l.logger.Warn("Catalog unavailable, using empty catalog",
			zap.String("source", source),
			zap.Error(err))
		res.Err = err
		return res
	}

	base := BaseURI(source)
	items := make([]domain.MediaItem, len(doc.Radio))
	artErrs := make([]error, len(doc.Radio))

	var g errgroup.Group
	g.SetLimit(l.workers)

	for i, st := range doc.Radio {
		g.Go(func() error {
			st.Image = resolveAgainst(base, st.Image)

			art, err := l.artwork.Load(ctx, st.Image)
			if err != nil {
				artErrs[i] = fmt.Errorf("station %s: %w", st.ID, err)
			}

			items[i] = Assemble(st, art)
			return nil
		})
	}
	_ = g.Wait() // workers never fail the group

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("catalog load cancelled: %w", err)
		return res
	}

	res.Items = items
	res.ArtworkErr = multierr.Combine(artErrs...)

	if res.ArtworkErr != nil {
		l.logger.Warn("Some station artwork could not be resolved",
			zap.Int("failed", len(multierr.Errors(res.ArtworkErr))),
			zap.Int("stations", len(items)),
			zap.Error(res.ArtworkErr))
	}

	l.logger.Info("Catalog loaded",
		zap.String("source", source),
		zap.Int("stations", len(items)))

	return res
}

func (l *Loader) fetch(ctx context.Context, source string) (Document, error) {
	data, err := l.fetcher.FetchDocument(ctx, source, _maxCatalogSize)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return doc, nil
}
