//go:build linux
// +build linux

package presenter

import (
	"context"
	"fmt"
	"sync"

	"github.com/genricoloni/radiod/internal/bus"
	"github.com/genricoloni/radiod/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	_notifyDest  = "org.freedesktop.Notifications"
	_notifyPath  = "/org/freedesktop/Notifications"
	_notifyIface = "org.freedesktop.Notifications"

	// NotificationClosed reason for a user dismissal
	_closedByUser uint32 = 2
)

// LinuxPresenter posts notifications through org.freedesktop.Notifications
type LinuxPresenter struct {
	logger  *zap.Logger
	dial    bus.Dialer
	appName string
	reg     *channelRegistry
	invoked chan domain.ActionInvocation

	mu     sync.Mutex
	conn   bus.DBusClient
	cancel context.CancelFunc
	posted map[string]uint32 // channel id -> id of the notification shown on it
	wg     sync.WaitGroup
}

var _ domain.Presenter = (*LinuxPresenter)(nil)

// NewPresenter creates the platform presenter (Linux implementation)
func NewPresenter(logger *zap.Logger, dial bus.Dialer) *LinuxPresenter {
	return &LinuxPresenter{
		logger:  logger,
		dial:    dial,
		appName: "radiod",
		reg:     newChannelRegistry(),
		invoked: make(chan domain.ActionInvocation, 8),
		posted:  make(map[string]uint32),
	}
}

// Start connects to the notification server and listens for user actions
func (p *LinuxPresenter) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil {
		return nil
	}

	conn, err := p.dial()
	if err != nil {
		return fmt.Errorf("connect notification server: %w", err)
	}

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(_notifyPath),
		dbus.WithMatchInterface(_notifyIface),
	); err != nil {
		_ = conn.Close()
		return fmt.Errorf("subscribe to notification signals: %w", err)
	}

	signals := make(chan *dbus.Signal, 10)
	conn.Signal(signals)

	listenCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.conn = conn
	p.cancel = cancel

	p.wg.Add(1)
	go p.listen(listenCtx, signals)

	p.logger.Info("Notification presenter connected")
	return nil
}

// Stop closes every posted notification and the bus connection
func (p *LinuxPresenter) Stop(ctx context.Context) error {
	p.mu.Lock()
	conn := p.conn
	cancel := p.cancel
	ids := make([]uint32, 0, len(p.posted))
	for _, id := range p.posted {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	if conn == nil {
		return nil
	}

	for _, id := range ids {
		if err := p.Cancel(ctx, id); err != nil {
			p.logger.Warn("Failed to close notification", zap.Uint32("id", id), zap.Error(err))
		}
	}

	cancel()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.conn = nil
	if err := conn.Close(); err != nil {
		return fmt.Errorf("close notification connection: %w", err)
	}
	return nil
}

// ChannelExists reports whether the channel was created
func (p *LinuxPresenter) ChannelExists(ctx context.Context, id string) (bool, error) {
	return p.reg.exists(id), nil
}

// CreateChannel registers a channel; creating an existing channel is a no-op
func (p *LinuxPresenter) CreateChannel(ctx context.Context, ch domain.NotificationChannel) error {
	if ch.ID == "" {
		return fmt.Errorf("notification channel id is empty")
	}
	p.reg.put(ch)
	return nil
}

// Post shows n, replacing the notification previously shown on its channel
func (p *LinuxPresenter) Post(ctx context.Context, n domain.Notification) (uint32, error) {
	ch, ok := p.reg.get(n.ChannelID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownChannel, n.ChannelID)
	}

	p.mu.Lock()
	conn := p.conn
	replaces := p.posted[n.ChannelID]
	p.mu.Unlock()
	if conn == nil {
		return 0, ErrNotConnected
	}

	actions := make([]string, 0, 2*len(n.Actions))
	for _, a := range n.Actions {
		actions = append(actions, a.Key, a.Title)
	}

	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(urgencyFor(ch.Importance)),
		"desktop-entry": dbus.MakeVariant(p.appName),
		"category":      dbus.MakeVariant("x-radiod.now-playing"),
		"resident":      dbus.MakeVariant(true),
	}
	if n.LargeIcon != nil {
		hints["image-data"] = dbus.MakeVariant(newImageData(n.LargeIcon))
	}
	if n.OnlyAlertOnce && replaces != 0 {
		hints["suppress-sound"] = dbus.MakeVariant(true)
	}

	var id uint32
	call := conn.Call(ctx, _notifyDest, _notifyPath, _notifyIface+".Notify",
		p.appName, replaces, n.SmallIcon, n.Title, n.Text, actions, hints, int32(0))
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("post notification: %w", err)
	}

	p.mu.Lock()
	p.posted[n.ChannelID] = id
	p.mu.Unlock()

	p.logger.Debug("Notification posted",
		zap.Uint32("id", id),
		zap.Uint32("replaces", replaces),
		zap.String("title", n.Title))
	return id, nil
}

// Cancel closes a posted notification
func (p *LinuxPresenter) Cancel(ctx context.Context, id uint32) error {
	p.mu.Lock()
	conn := p.conn
	p.forget(id)
	p.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	if err := conn.Call(ctx, _notifyDest, _notifyPath, _notifyIface+".CloseNotification", id).Err; err != nil {
		return fmt.Errorf("close notification %d: %w", id, err)
	}
	return nil
}

// Invoked emits actions pressed on notifications posted by this presenter
func (p *LinuxPresenter) Invoked() <-chan domain.ActionInvocation {
	return p.invoked
}

// forget drops id from the posted set; p.mu must be held
func (p *LinuxPresenter) forget(id uint32) bool {
	for ch, posted := range p.posted {
		if posted == id {
			delete(p.posted, ch)
			return true
		}
	}
	return false
}

func (p *LinuxPresenter) owns(id uint32) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, posted := range p.posted {
		if posted == id {
			return true
		}
	}
	return false
}

func (p *LinuxPresenter) listen(ctx context.Context, signals <-chan *dbus.Signal) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				// godbus closes signal channels when the connection goes away
				p.logger.Warn("Notification server connection lost, no longer listening for actions")
				return
			}
			if sig == nil {
				continue
			}
			p.handleSignal(sig)
		}
	}
}

// handleSignal turns ActionInvoked and user dismissals into invocations
func (p *LinuxPresenter) handleSignal(sig *dbus.Signal) {
	if len(sig.Body) < 2 {
		return
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return
	}

	var inv domain.ActionInvocation
	switch sig.Name {
	case _notifyIface + ".ActionInvoked":
		key, ok := sig.Body[1].(string)
		if !ok || !p.owns(id) {
			return
		}
		inv = domain.ActionInvocation{ID: id, Key: key}

	case _notifyIface + ".NotificationClosed":
		reason, _ := sig.Body[1].(uint32)
		p.mu.Lock()
		ours := p.forget(id)
		p.mu.Unlock()
		if !ours || reason != _closedByUser {
			return
		}
		inv = domain.ActionInvocation{ID: id, Key: domain.KeyDismissed}

	default:
		return
	}

	select {
	case p.invoked <- inv:
	default:
		p.logger.Warn("Dropping notification action, consumer is slow", zap.String("key", inv.Key))
	}
}
