package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultCatalogURL     = "https://storage.googleapis.com/uamp/radio/catalog.json"
	defaultCacheDir       = "~/.cache/radiod"
	defaultListenAddr     = "127.0.0.1:8765"
	defaultArtworkWorkers = 4
	defaultArtworkSize    = 144 // px, notification large icon
	defaultHTTPTimeout    = 10 * time.Second
)

// Environment variables read by NewAppConfig.
const (
	EnvConfigFile      = "RADIOD_CONFIG"
	EnvCatalogURL      = "RADIOD_CATALOG_URL"
	EnvCacheDir        = "RADIOD_CACHE_DIR"
	EnvListenAddr      = "RADIOD_LISTEN"
	EnvArtworkWorkers  = "RADIOD_ARTWORK_WORKERS"
	EnvArtworkSize     = "RADIOD_ARTWORK_SIZE"
	EnvRefreshInterval = "RADIOD_REFRESH_INTERVAL"
	EnvHTTPTimeout     = "RADIOD_HTTP_TIMEOUT"

	// EnvLogLevel is read before the configuration, by the logger constructor
	EnvLogLevel = "RADIOD_LOG_LEVEL"
)

// fileConfig is the optional YAML representation
type fileConfig struct {
	CatalogURL string `yaml:"catalog_url"`
	CacheDir   string `yaml:"cache_dir"`
	Listen     string `yaml:"listen"`
	Artwork    struct {
		Workers int `yaml:"workers"`
		Size    int `yaml:"size"`
	} `yaml:"artwork"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	HTTPTimeout     time.Duration `yaml:"http_timeout"`
}

// AppConfig holds application configuration
type AppConfig struct {
	logger          *zap.Logger
	catalogURL      string
	cacheDir        string
	listenAddr      string
	artworkWorkers  int
	artworkSize     int
	refreshInterval time.Duration
	httpTimeout     time.Duration
}

// NewAppConfig creates a new application configuration instance.
// Precedence: environment (including .env) over the YAML file over defaults.
func NewAppConfig(logger *zap.Logger) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	cfg := &AppConfig{
		logger:         logger,
		catalogURL:     defaultCatalogURL,
		cacheDir:       defaultCacheDir,
		listenAddr:     defaultListenAddr,
		artworkWorkers: defaultArtworkWorkers,
		artworkSize:    defaultArtworkSize,
		httpTimeout:    defaultHTTPTimeout,
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg.merge(fc)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.cacheDir = expandPath(cfg.cacheDir)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Info("Configuration loaded",
		zap.String("catalogURL", cfg.catalogURL),
		zap.String("cacheDir", cfg.cacheDir),
		zap.String("listen", cfg.listenAddr),
		zap.Int("artworkWorkers", cfg.artworkWorkers),
		zap.Int("artworkSize", cfg.artworkSize),
		zap.Duration("refreshInterval", cfg.refreshInterval))

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse yaml: %w", err)
	}
	return fc, nil
}

func (c *AppConfig) merge(fc fileConfig) {
	if fc.CatalogURL != "" {
		c.catalogURL = fc.CatalogURL
	}
	if fc.CacheDir != "" {
		c.cacheDir = fc.CacheDir
	}
	if fc.Listen != "" {
		c.listenAddr = fc.Listen
	}
	if fc.Artwork.Workers > 0 {
		c.artworkWorkers = fc.Artwork.Workers
	}
	if fc.Artwork.Size > 0 {
		c.artworkSize = fc.Artwork.Size
	}
	if fc.RefreshInterval > 0 {
		c.refreshInterval = fc.RefreshInterval
	}
	if fc.HTTPTimeout > 0 {
		c.httpTimeout = fc.HTTPTimeout
	}
}

func (c *AppConfig) applyEnv() error {
	if v := os.Getenv(EnvCatalogURL); v != "" {
		c.catalogURL = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.cacheDir = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.listenAddr = v
	}
	if v := os.Getenv(EnvArtworkWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvArtworkWorkers, err)
		}
		c.artworkWorkers = n
	}
	if v := os.Getenv(EnvArtworkSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvArtworkSize, err)
		}
		c.artworkSize = n
	}
	if v := os.Getenv(EnvRefreshInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRefreshInterval, err)
		}
		c.refreshInterval = d
	}
	if v := os.Getenv(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvHTTPTimeout, err)
		}
		c.httpTimeout = d
	}
	return nil
}

func (c *AppConfig) validate() error {
	u, err := url.Parse(c.catalogURL)
	if err != nil {
		return fmt.Errorf("invalid catalog url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid catalog url %q: scheme must be http or https", c.catalogURL)
	}
	if c.artworkWorkers < 1 {
		return fmt.Errorf("artwork workers must be positive, got %d", c.artworkWorkers)
	}
	if c.artworkSize < 1 {
		return fmt.Errorf("artwork size must be positive, got %d", c.artworkSize)
	}
	if c.refreshInterval < 0 {
		return fmt.Errorf("refresh interval must not be negative, got %s", c.refreshInterval)
	}
	return nil
}

// expandPath resolves environment variables and a leading ~
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetCatalogURL returns the address of the JSON station catalog
func (c *AppConfig) GetCatalogURL() string {
	return c.catalogURL
}

// GetCacheDir returns the directory for cached artwork
func (c *AppConfig) GetCacheDir() string {
	return c.cacheDir
}

// GetListenAddr returns the address of the browse API
func (c *AppConfig) GetListenAddr() string {
	return c.listenAddr
}

// GetArtworkWorkers returns how many artwork fetches may run at once
func (c *AppConfig) GetArtworkWorkers() int {
	return c.artworkWorkers
}

// GetArtworkSize returns the edge length of resolved artwork in pixels
func (c *AppConfig) GetArtworkSize() int {
	return c.artworkSize
}

// GetRefreshInterval returns the catalog refresh period, zero disables refresh
func (c *AppConfig) GetRefreshInterval() time.Duration {
	return c.refreshInterval
}

// GetHTTPTimeout returns the timeout applied to every outgoing request
func (c *AppConfig) GetHTTPTimeout() time.Duration {
	return c.httpTimeout
}
