package notification

import (
	"context"
	"fmt"

	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/zap"
)

const (
	// NowPlayingChannel is the channel every now-playing notification is posted to
	NowPlayingChannel = "com.example.radiod.media.NOW_PLAYING"

	// Action keys reported back by the platform when a button is pressed
	ActionKeyPlay = "play"
	ActionKeyStop = "stop"

	_smallIcon = "audio-x-generic"
)

// Labels holds user visible strings
type Labels struct {
	Play               string
	Stop               string
	ChannelName        string
	ChannelDescription string
}

// DefaultLabels returns the English labels
func DefaultLabels() Labels {
	return Labels{
		Play:               "Play",
		Stop:               "Stop",
		ChannelName:        "Now playing",
		ChannelDescription: "Shows the station that is currently playing",
	}
}

// Builder renders media session state into now-playing notifications
type Builder struct {
	logger     *zap.Logger
	manager    domain.NotificationManager
	labels     Labels
	playAction domain.NotificationAction
	stopAction domain.NotificationAction
}

// NewBuilder creates a notification builder
func NewBuilder(logger *zap.Logger, manager domain.NotificationManager, labels Labels) *Builder {
	return &Builder{
		logger:  logger,
		manager: manager,
		labels:  labels,
		playAction: domain.NotificationAction{
			Key:     ActionKeyPlay,
			Icon:    "media-playback-start",
			Title:   labels.Play,
			Command: domain.ActionPlay,
		},
		stopAction: domain.NotificationAction{
			Key:     ActionKeyStop,
			Icon:    "media-playback-stop",
			Title:   labels.Stop,
			Command: domain.ActionStop,
		},
	}
}

// Build renders the current state of session. It makes sure the now-playing
// channel exists first, checking on every call.
func (b *Builder) Build(ctx context.Context, session domain.MediaSession) (domain.Notification, error) {
	if err := b.ensureChannel(ctx); err != nil {
		return domain.Notification{}, err
	}

	description := session.Description()
	state := session.PlaybackState()

	n := domain.Notification{
		ChannelID:        NowPlayingChannel,
		Title:            description.Title,
		Text:             description.Subtitle,
		LargeIcon:        description.IconBitmap,
		SmallIcon:        _smallIcon,
		Actions:          b.actionsFor(state),
		ShowCancelButton: true,
		CancelCommand:    domain.ActionStop,
		DeleteCommand:    domain.ActionStop,
		ContentIntent:    session.SessionActivity(),
		OnlyAlertOnce:    true,
		Visibility:       domain.VisibilityPublic,
		SessionToken:     session.Token(),
	}

	// The single transport action is the one shown when collapsed
	if len(n.Actions) > 0 {
		n.CompactActions = []int{0}
	}

	b.logger.Debug("Notification built",
		zap.String("title", n.Title),
		zap.Int("actions", len(n.Actions)))

	return n, nil
}

// actionsFor returns stop while playing, otherwise play when it is enabled
func (b *Builder) actionsFor(state domain.PlaybackState) []domain.NotificationAction {
	switch {
	case state.IsPlaying():
		return []domain.NotificationAction{b.stopAction}
	case state.IsPlayEnabled():
		return []domain.NotificationAction{b.playAction}
	default:
		return nil
	}
}

func (b *Builder) ensureChannel(ctx context.Context) error {
	exists, err := b.manager.ChannelExists(ctx, NowPlayingChannel)
	if err != nil {
		return fmt.Errorf("check notification channel: %w", err)
	}
	if exists {
		return nil
	}

	ch := domain.NotificationChannel{
		ID:          NowPlayingChannel,
		Name:        b.labels.ChannelName,
		Description: b.labels.ChannelDescription,
		Importance:  domain.ImportanceLow,
	}
	if err := b.manager.CreateChannel(ctx, ch); err != nil {
		return fmt.Errorf("create notification channel: %w", err)
	}

	b.logger.Info("Notification channel created", zap.String("channel", NowPlayingChannel))
	return nil
}
