package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/genricoloni/radiod/internal/domain"
	"github.com/genricoloni/radiod/internal/notification"
	"go.uber.org/zap"
)

const _defaultDebounce = 500 * time.Millisecond

// Every observed player is assumed to honour the basic transport controls
const _playerActions = domain.ActionPlay | domain.ActionStop | domain.ActionPause | domain.ActionPlayPause

// StationLookup finds the catalog station a player is streaming
type StationLookup interface {
	FindByStream(uri string) (domain.MediaItem, bool)
}

// NotificationBuilder renders a media session into a notification
type NotificationBuilder interface {
	Build(ctx context.Context, session domain.MediaSession) (domain.Notification, error)
}

// Recorder observes posted notifications
type Recorder interface {
	ObserveNotification(err error)
}

// posted is the notification currently on screen
type posted struct {
	id           uint32
	player       string
	notification domain.Notification
}

// Engine keeps the now-playing notification in sync with the desktop players.
// It listens to player events, builds a notification for the latest state and
// forwards notification button presses back to the player.
type Engine struct {
	logger     *zap.Logger
	monitor    domain.Monitor
	controller domain.PlayerController
	stations   StationLookup
	artwork    domain.ArtworkLoader
	builder    NotificationBuilder
	presenter  domain.Presenter
	recorder   Recorder
	debounce   time.Duration

	mu      sync.Mutex
	current *posted
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	mon domain.Monitor,
	controller domain.PlayerController,
	stations StationLookup,
	artwork domain.ArtworkLoader,
	builder NotificationBuilder,
	presenter domain.Presenter,
	recorder Recorder,
) *Engine {
	return &Engine{
		logger:     logger,
		monitor:    mon,
		controller: controller,
		stations:   stations,
		artwork:    artwork,
		builder:    builder,
		presenter:  presenter,
		recorder:   recorder,
		debounce:   _defaultDebounce,
	}
}

// Start launches the monitor and the event loop and returns immediately
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting...")

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()

	e.wg.Add(2)
	go func() {
		defer e.wg.Done()
		if err := e.monitor.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			e.logger.Error("Player monitor exited", zap.Error(err))
		}
	}()
	go func() {
		defer e.wg.Done()
		e.runLoop(runCtx)
	}()
	return nil
}

// runLoop debounces player events so rapid station switching posts once
func (e *Engine) runLoop(ctx context.Context) {
	events := e.monitor.Events()
	invoked := e.presenter.Invoked()

	timer := time.NewTimer(e.debounce)
	timer.Stop()
	defer timer.Stop()

	var pendingMeta *domain.MediaMetadata

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Engine loop stopped")
			return

		case meta, ok := <-events:
			if !ok {
				e.logger.Info("Monitor events channel closed")
				return
			}
			e.logger.Debug("Event received, debouncing...",
				zap.String("player", meta.Player),
				zap.String("title", meta.Title))

			pendingMeta = &meta
			timer.Reset(e.debounce)

		case <-timer.C:
			if pendingMeta != nil {
				e.processMetadata(ctx, *pendingMeta)
				pendingMeta = nil
			}

		case inv := <-invoked:
			e.handleInvocation(ctx, inv)
		}
	}
}

// processMetadata posts or clears the notification for one player state
func (e *Engine) processMetadata(ctx context.Context, meta domain.MediaMetadata) {
	if meta.Title == "" && meta.URL == "" {
		e.clear(ctx, meta.Player)
		return
	}

	session := e.sessionFor(ctx, meta)

	n, err := e.builder.Build(ctx, session)
	if err != nil {
		e.logger.Error("Failed to build notification", zap.Error(err))
		e.recorder.ObserveNotification(err)
		return
	}

	id, err := e.presenter.Post(ctx, n)
	e.recorder.ObserveNotification(err)
	if err != nil {
		e.logger.Error("Failed to post notification", zap.Error(err))
		return
	}

	e.mu.Lock()
	e.current = &posted{id: id, player: meta.Player, notification: n}
	e.mu.Unlock()

	e.logger.Info("Now playing notification updated",
		zap.String("player", meta.Player),
		zap.String("title", n.Title),
		zap.String("status", string(meta.Status)))
}

// sessionFor snapshots a player state, preferring catalog data when the
// player streams a known station
func (e *Engine) sessionFor(ctx context.Context, meta domain.MediaMetadata) notification.SessionSnapshot {
	session := notification.SessionSnapshot{
		SessionToken: meta.Player,
		Activity:     meta.Player,
		State: domain.PlaybackState{
			State:   playbackCode(meta.Status),
			Actions: _playerActions,
		},
	}

	if station, ok := e.stations.FindByStream(meta.URL); ok {
		subtitle := station.Genre
		// Stream titles usually carry the current track
		if meta.Title != "" && meta.Title != station.Title {
			subtitle = meta.Title
		}
		session.Metadata = domain.MediaDescription{
			MediaID:    station.MediaID,
			Title:      station.DisplayTitle,
			Subtitle:   subtitle,
			IconBitmap: station.AlbumArt,
		}
		return session
	}

	icon, err := e.artwork.Load(ctx, meta.ArtUrl)
	if err != nil {
		e.logger.Warn("Using default artwork", zap.String("url", meta.ArtUrl), zap.Error(err))
	}
	session.Metadata = domain.MediaDescription{
		MediaID:    meta.URL,
		Title:      meta.Title,
		Subtitle:   meta.Artist,
		IconBitmap: icon,
	}
	return session
}

func playbackCode(status domain.PlayerStatus) domain.PlaybackStateCode {
	switch status {
	case domain.StatusPlaying:
		return domain.PlaybackPlaying
	case domain.StatusPaused:
		return domain.PlaybackPaused
	case domain.StatusStopped:
		return domain.PlaybackStopped
	default:
		return domain.PlaybackNone
	}
}

// clear removes the notification if it belongs to player
func (e *Engine) clear(ctx context.Context, player string) {
	e.mu.Lock()
	cur := e.current
	if cur == nil || cur.player != player {
		e.mu.Unlock()
		return
	}
	e.current = nil
	e.mu.Unlock()

	if err := e.presenter.Cancel(ctx, cur.id); err != nil {
		e.logger.Warn("Failed to cancel notification", zap.Uint32("id", cur.id), zap.Error(err))
		return
	}
	e.logger.Info("Now playing notification removed", zap.String("player", player))
}

// handleInvocation sends the command behind a pressed button to the player
func (e *Engine) handleInvocation(ctx context.Context, inv domain.ActionInvocation) {
	e.mu.Lock()
	cur := e.current
	e.mu.Unlock()

	if cur == nil || cur.id != inv.ID {
		return
	}

	var cmd domain.TransportAction
	if inv.Key == domain.KeyDismissed {
		cmd = cur.notification.DeleteCommand
	} else {
		for _, a := range cur.notification.Actions {
			if a.Key == inv.Key {
				cmd = a.Command
				break
			}
		}
	}
	if cmd == 0 {
		e.logger.Debug("Ignoring notification action", zap.String("key", inv.Key))
		return
	}

	if err := e.controller.Control(ctx, cur.player, cmd); err != nil {
		e.logger.Error("Failed to control player",
			zap.String("player", cur.player),
			zap.Error(err))
	}
}

// Stop halts the loop, stops the monitor and removes the notification
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")

	e.mu.Lock()
	cancel := e.cancel
	cur := e.current
	e.current = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	monErr := e.monitor.Stop(ctx)
	e.wg.Wait()

	if cur != nil {
		if err := e.presenter.Cancel(ctx, cur.id); err != nil {
			e.logger.Warn("Failed to cancel notification on shutdown", zap.Error(err))
		}
	}
	return monErr
}
