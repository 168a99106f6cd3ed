// Package presenter shows now-playing notifications on the desktop.
package presenter

import (
	"errors"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/radiod/internal/domain"
)

// ErrNotConnected is returned when posting before Start
var ErrNotConnected = errors.New("notification presenter is not connected")

// ErrUnknownChannel is returned when posting to a channel that was never created
var ErrUnknownChannel = errors.New("unknown notification channel")

// Urgency levels understood by freedesktop notification servers
const (
	UrgencyLow      byte = 0
	UrgencyNormal   byte = 1
	UrgencyCritical byte = 2
)

// urgencyFor maps channel importance onto notification urgency
func urgencyFor(importance domain.Importance) byte {
	switch {
	case importance >= domain.ImportanceHigh:
		return UrgencyCritical
	case importance == domain.ImportanceDefault:
		return UrgencyNormal
	default:
		return UrgencyLow
	}
}

// channelRegistry keeps the channels created during this run
type channelRegistry struct {
	mu       sync.RWMutex
	channels map[string]domain.NotificationChannel
}

func newChannelRegistry() *channelRegistry {
	return &channelRegistry{channels: make(map[string]domain.NotificationChannel)}
}

func (r *channelRegistry) exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.channels[id]
	return ok
}

func (r *channelRegistry) get(id string) (domain.NotificationChannel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.channels[id]
	return ch, ok
}

// put registers ch unless a channel with the same id exists
func (r *channelRegistry) put(ch domain.NotificationChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.channels[ch.ID]; !ok {
		r.channels[ch.ID] = ch
	}
}

// imageData is the (iiibiiay) layout of the image-data hint
type imageData struct {
	Width         int32
	Height        int32
	RowStride     int32
	HasAlpha      bool
	BitsPerSample int32
	Channels      int32
	Data          []byte
}

// newImageData converts img to non-premultiplied RGBA rows
func newImageData(img image.Image) imageData {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	return imageData{
		Width:         int32(b.Dx()),
		Height:        int32(b.Dy()),
		RowStride:     int32(nrgba.Stride),
		HasAlpha:      true,
		BitsPerSample: 8,
		Channels:      4,
		Data:          nrgba.Pix,
	}
}
