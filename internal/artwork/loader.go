package artwork

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF format support
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"net/url"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // BMP format support
	_ "golang.org/x/image/webp" // WebP format support, common for station logos
)

// DefaultSize is the edge length of a notification large icon
const DefaultSize = 144

// ErrUndecodable is returned when fetched bytes are not a supported image
var ErrUndecodable = errors.New("artwork is not a decodable image")

var defaultArtColor = color.NRGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff}

// LoaderConfig holds configuration for artwork resolution
type LoaderConfig struct {
	// Size is the bounding box artwork is fitted into
	Size int
	// CacheDir enables the disk cache when non-empty
	CacheDir string
}

// Loader fetches, decodes and fits artwork, falling back to a default image
type Loader struct {
	logger   *zap.Logger
	fetcher  domain.Fetcher
	cache    *DiskCache
	size     int
	fallback image.Image
}

// NewLoader creates an artwork loader
func NewLoader(logger *zap.Logger, fetcher domain.Fetcher, cfg LoaderConfig) *Loader {
	size := cfg.Size
	if size <= 0 {
		size = DefaultSize
	}

	var cache *DiskCache
	if cfg.CacheDir != "" {
		cache = NewDiskCache(cfg.CacheDir)
	}

	return &Loader{
		logger:   logger,
		fetcher:  fetcher,
		cache:    cache,
		size:     size,
		fallback: DefaultArtwork(size),
	}
}

// DefaultArtwork returns the static image used when no artwork can be resolved
func DefaultArtwork(size int) image.Image {
	return imaging.New(size, size, defaultArtColor)
}

// Fallback returns the loader's default image
func (l *Loader) Fallback() image.Image {
	return l.fallback
}

// Load resolves uri into a bitmap no larger than Size x Size.
// The returned image is never nil: on failure it is the default artwork and
// err describes what went wrong.
func (l *Loader) Load(ctx context.Context, uri string) (image.Image, error) {
	if uri == "" {
		return l.fallback, nil
	}

	// Local covers are read directly and never cached
	if path, ok := localPath(uri); ok {
		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return l.fallback, fmt.Errorf("open local artwork %s: %w", path, err)
		}
		fitted, err := l.fit(img)
		if err != nil {
			return l.fallback, fmt.Errorf("artwork %s: %w", uri, err)
		}
		return fitted, nil
	}

	if l.cache != nil {
		if img, ok := l.cache.Get(uri, l.size); ok {
			l.logger.Debug("Artwork cache hit", zap.String("uri", uri))
			return img, nil
		}
	}

	data, err := l.fetcher.FetchImage(ctx, uri)
	if err != nil {
		return l.fallback, fmt.Errorf("fetch artwork %s: %w", uri, err)
	}

	img, err := l.transform(data)
	if err != nil {
		return l.fallback, fmt.Errorf("artwork %s: %w", uri, err)
	}

	if l.cache != nil {
		if err := l.cache.Put(uri, l.size, img); err != nil {
			l.logger.Warn("Failed to cache artwork", zap.String("uri", uri), zap.Error(err))
		}
	}

	return img, nil
}

// transform decodes raw bytes and fits the result into the icon box
func (l *Loader) transform(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return l.fit(img)
}

func (l *Loader) fit(img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrUndecodable, bounds.Dx(), bounds.Dy())
	}

	// Fit keeps the aspect ratio and never upscales
	return imaging.Fit(img, l.size, l.size, imaging.Lanczos), nil
}

// localPath returns the filesystem path of a file:// URI
func localPath(uri string) (string, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}
	return u.Path, true
}
