package domain

import (
	"context"
	"image"
)

//go:generate mockgen -destination=mocks/interfaces_mock.go -package=mocks github.com/genricoloni/radiod/internal/domain Monitor,Fetcher,ArtworkLoader,MediaSession,NotificationManager,Presenter,PlayerController

// Monitor defines the interface for monitoring media playback events
// Implementations should handle D-Bus/MPRIS communication
type Monitor interface {
	// Start begins monitoring for media events
	// It should block until context is cancelled or an error occurs
	Start(ctx context.Context) error

	// Stop gracefully stops the monitor
	Stop(ctx context.Context) error

	// Events returns a read-only channel that emits MediaMetadata
	// when media playback state changes
	Events() <-chan MediaMetadata
}

// Fetcher defines the interface for retrieving remote resources
type Fetcher interface {
	// FetchImage downloads image data and rejects non-image responses
	FetchImage(ctx context.Context, url string) ([]byte, error)

	// FetchDocument downloads an arbitrary document capped at maxBytes
	FetchDocument(ctx context.Context, url string, maxBytes int64) ([]byte, error)
}

// ArtworkLoader resolves an artwork address into a bitmap.
// On failure it still returns a usable default image together with the error.
type ArtworkLoader interface {
	Load(ctx context.Context, uri string) (image.Image, error)
}

// MediaSession is a read-only view over the current state of a media session.
type MediaSession interface {
	Token() string
	Description() MediaDescription
	PlaybackState() PlaybackState
	// SessionActivity is what opening the notification should bring up
	SessionActivity() string
}

// NotificationManager owns notification channels.
type NotificationManager interface {
	ChannelExists(ctx context.Context, id string) (bool, error)
	CreateChannel(ctx context.Context, ch NotificationChannel) error
}

// Presenter shows rendered notifications on the platform.
type Presenter interface {
	NotificationManager

	// Post shows or updates the notification and returns its platform id
	Post(ctx context.Context, n Notification) (uint32, error)

	// Cancel removes a posted notification
	Cancel(ctx context.Context, id uint32) error

	// Invoked emits the actions the user pressed on posted notifications
	Invoked() <-chan ActionInvocation
}

// PlayerController sends transport commands to an observed player.
type PlayerController interface {
	Control(ctx context.Context, player string, cmd TransportAction) error
}

// Config defines the interface for application configuration
type Config interface {
	// GetCatalogURL returns the address of the JSON station catalog
	GetCatalogURL() string

	// GetCacheDir returns the directory for cached artwork
	GetCacheDir() string
}
