package artwork

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
)

// DiskCache stores transformed artwork as PNG files, one per source URI and size.
// There is no eviction.
type DiskCache struct {
	dir string
}

// NewDiskCache returns a cache rooted at dir. The directory is created lazily.
func NewDiskCache(dir string) *DiskCache {
	return &DiskCache{dir: dir}
}

// Get returns the cached image for uri at the given size, if present and readable
func (c *DiskCache) Get(uri string, size int) (image.Image, bool) {
	img, err := imaging.Open(c.path(uri, size))
	if err != nil {
		return nil, false
	}
	return img, true
}

// Put writes img atomically so readers never see a partial file
func (c *DiskCache) Put(uri string, size int, img image.Image) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	dest := c.path(uri, size)
	tmp, err := os.CreateTemp(c.dir, ".artwork-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := imaging.Encode(tmp, img, imaging.PNG); err != nil {
		tmp.Close()
		return fmt.Errorf("encode artwork: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (c *DiskCache) path(uri string, size int) string {
	sum := sha256.Sum256([]byte(uri))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+"_"+strconv.Itoa(size)+".png")
}
