package domain

import "image"

// PlayerStatus represents the current state of an observed media player
type PlayerStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlayerStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlayerStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlayerStatus = "Stopped"
)

// MediaMetadata contains information about what an observed player is playing
type MediaMetadata struct {
	// Player is the well-known bus name of the emitting player
	Player string
	// Title of the currently playing track or stream
	Title string
	// Artist name
	Artist string
	// Album name
	Album string
	// URL of the media being played (xesam:url), usually the station stream
	URL string
	// ArtUrl is the URL or local path to the artwork
	ArtUrl string
	// Status is the current playback status
	Status PlayerStatus
}

// MediaFlags describes how a media item may be used by a browser.
type MediaFlags int

const (
	// FlagBrowsable marks items that have children.
	FlagBrowsable MediaFlags = 1 << iota
	// FlagPlayable marks items that can be played directly.
	FlagPlayable
)

// DownloadStatus mirrors the offline availability of an item.
type DownloadStatus int

const (
	StatusNotDownloaded DownloadStatus = iota
	StatusDownloading
	StatusDownloaded
)

// Keys always present in MediaItem.Extras.
const (
	ExtraDownloadStatus = "download_status"
	ExtraSite           = "site"
)

// MediaItem is the metadata record for one playable station.
// It is immutable once built.
type MediaItem struct {
	// MediaID identifies the item inside the browse tree
	MediaID string
	Title   string
	Genre   string
	// MediaURI is the address of the audio stream
	MediaURI string
	// AlbumArtURI is the absolute address the artwork was loaded from
	AlbumArtURI string
	Flags       MediaFlags

	DisplayTitle   string
	DisplayIconURI string
	// AlbumArt is the resolved artwork, never nil for built items
	AlbumArt image.Image

	DownloadStatus DownloadStatus
	// Extras is always allocated
	Extras map[string]string
}

// Playable reports whether the item carries the playable flag.
func (m MediaItem) Playable() bool {
	return m.Flags&FlagPlayable != 0
}

// SourceState is the lifecycle state of a music source.
type SourceState int

const (
	StateCreated SourceState = iota
	StateInitializing
	StateInitialized
	StateError
)

func (s SourceState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInitializing:
		return "initializing"
	case StateInitialized:
		return "initialized"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// PlaybackStateCode is the coarse state of a media session.
type PlaybackStateCode int

const (
	PlaybackNone PlaybackStateCode = iota
	PlaybackStopped
	PlaybackPaused
	PlaybackPlaying
	PlaybackBuffering
	PlaybackError
)

// TransportAction is a bitmask of transport controls a session supports.
type TransportAction int64

const (
	ActionStop TransportAction = 1 << iota
	ActionPause
	ActionPlay
	ActionPlayPause
)

// PlaybackState is the playback half of a media session snapshot.
type PlaybackState struct {
	State   PlaybackStateCode
	Actions TransportAction
}

// IsPlaying reports whether the session is playing or about to.
func (p PlaybackState) IsPlaying() bool {
	return p.State == PlaybackPlaying || p.State == PlaybackBuffering
}

// IsPlayEnabled reports whether a play command would be honoured.
func (p PlaybackState) IsPlayEnabled() bool {
	if p.Actions&ActionPlay != 0 {
		return true
	}
	return p.Actions&ActionPlayPause != 0 &&
		(p.State == PlaybackPaused || p.State == PlaybackStopped)
}

// MediaDescription is the display half of a media session snapshot.
type MediaDescription struct {
	MediaID    string
	Title      string
	Subtitle   string
	IconBitmap image.Image
}

// Importance of a notification channel.
type Importance int

const (
	ImportanceMin Importance = iota + 1
	ImportanceLow
	ImportanceDefault
	ImportanceHigh
)

// NotificationChannel groups notifications that share user settings.
type NotificationChannel struct {
	ID          string
	Name        string
	Description string
	Importance  Importance
}

// Visibility controls how a notification is shown on a locked screen.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
	VisibilitySecret
)

// NotificationAction is a single button attached to a notification.
type NotificationAction struct {
	// Key is the identifier sent back when the action is invoked
	Key     string
	Icon    string
	Title   string
	Command TransportAction
}

// KeyDismissed is the invocation key reported when the user closes a notification.
const KeyDismissed = "dismissed"

// ActionInvocation reports that the user pressed Key on notification ID.
type ActionInvocation struct {
	ID  uint32
	Key string
}

// Notification is a fully rendered now-playing notification.
type Notification struct {
	ChannelID string
	Title     string
	Text      string
	LargeIcon image.Image
	SmallIcon string

	Actions []NotificationAction
	// CompactActions lists indexes into Actions shown in the collapsed view
	CompactActions []int

	ShowCancelButton bool
	CancelCommand    TransportAction
	DeleteCommand    TransportAction

	ContentIntent string
	OnlyAlertOnce bool
	Visibility    Visibility
	SessionToken  string
}
