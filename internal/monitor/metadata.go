package monitor

import (
	"github.com/genricoloni/radiod/internal/domain"
	"github.com/godbus/dbus/v5"
)

// MPRIS metadata keys read by the monitor
const (
	keyTitle  = "xesam:title"
	keyArtist = "xesam:artist"
	keyAlbum  = "xesam:album"
	keyURL    = "xesam:url"
	keyArtURL = "mpris:artUrl"
)

// decodeMetadata turns a Metadata dictionary and a PlaybackStatus string into
// a player event. A nil dictionary only carries the status.
func decodeMetadata(md map[string]dbus.Variant, status string) domain.MediaMetadata {
	meta := domain.MediaMetadata{Status: decodeStatus(status)}
	if md == nil {
		return meta
	}

	meta.Title = stringValue(md, keyTitle)
	meta.Artist = artistValue(md)
	meta.Album = stringValue(md, keyAlbum)
	meta.URL = stringValue(md, keyURL)
	meta.ArtUrl = stringValue(md, keyArtURL)
	return meta
}

// decodeStatus treats anything unexpected as stopped
func decodeStatus(status string) domain.PlayerStatus {
	switch status {
	case "Playing":
		return domain.StatusPlaying
	case "Paused":
		return domain.StatusPaused
	default:
		return domain.StatusStopped
	}
}

func stringValue(md map[string]dbus.Variant, key string) string {
	v, ok := md[key]
	if !ok {
		return ""
	}
	s, _ := v.Value().(string)
	return s
}

// artistValue reads xesam:artist, a list by the book but a plain string for
// some stream players
func artistValue(md map[string]dbus.Variant) string {
	v, ok := md[keyArtist]
	if !ok {
		return ""
	}
	switch artists := v.Value().(type) {
	case []string:
		if len(artists) > 0 {
			return artists[0]
		}
	case string:
		return artists
	}
	return ""
}
