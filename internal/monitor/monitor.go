// Package monitor follows desktop media players over MPRIS and forwards
// transport commands to them.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/genricoloni/radiod/internal/bus"
	"github.com/genricoloni/radiod/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	_mprisPrefix     = "org.mpris.MediaPlayer2."
	_mprisPath       = "/org/mpris/MediaPlayer2"
	_playerInterface = "org.mpris.MediaPlayer2.Player"
	_metadataProp    = _playerInterface + ".Metadata"
	_statusProp      = _playerInterface + ".PlaybackStatus"

	_propertiesChanged = "org.freedesktop.DBus.Properties.PropertiesChanged"
	_nameOwnerChanged  = "org.freedesktop.DBus.NameOwnerChanged"

	_eventBuffer   = 10
	_dropWarnEvery = 5 * time.Second
)

// MprisMonitor watches desktop media players over the MPRIS D-Bus interface
type MprisMonitor struct {
	logger  *zap.Logger
	dial    bus.Dialer
	events  chan domain.MediaMetadata
	players *playerDirectory

	mu      sync.RWMutex
	running bool
	cancel  context.CancelFunc
	conn    bus.DBusClient
	wg      sync.WaitGroup // the dispatch goroutine, the only producer

	dropMu   sync.Mutex
	dropped  int
	lastDrop time.Time
}

var (
	_ domain.Monitor          = (*MprisMonitor)(nil)
	_ domain.PlayerController = (*MprisMonitor)(nil)
)

// NewMprisMonitor creates a monitor that connects through dial on Start
func NewMprisMonitor(logger *zap.Logger, dial bus.Dialer) *MprisMonitor {
	return &MprisMonitor{
		logger:  logger,
		dial:    dial,
		events:  make(chan domain.MediaMetadata, _eventBuffer),
		players: newPlayerDirectory(),
	}
}

// Start connects to the session bus and blocks until ctx is cancelled or
// Stop is called
func (m *MprisMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.running = true
	m.cancel = cancel
	m.mu.Unlock()

	conn, err := m.dial()
	if err != nil {
		m.abort(cancel)
		m.logger.Error("Failed to connect to session bus", zap.Error(err))
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	signals := make(chan *dbus.Signal, _eventBuffer)
	if err := subscribe(conn, signals); err != nil {
		m.abort(cancel)
		_ = conn.Close()
		return err
	}

	m.mu.Lock()
	if runCtx.Err() != nil {
		// Stopped while dialing
		m.mu.Unlock()
		_ = conn.Close()
		return runCtx.Err()
	}
	m.conn = conn
	m.wg.Add(1)
	m.mu.Unlock()

	m.logger.Info("Player monitor connected")
	go m.dispatch(runCtx, signals)

	<-runCtx.Done()
	m.logger.Info("Player monitor stopped")
	return runCtx.Err()
}

func (m *MprisMonitor) abort(cancel context.CancelFunc) {
	m.mu.Lock()
	m.running = false
	m.cancel = nil
	m.mu.Unlock()
	cancel()
}

// Stop cancels monitoring, closes the events channel and the bus connection
func (m *MprisMonitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = false
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()

	m.wg.Wait()
	close(m.events)

	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()

	if conn != nil {
		if err := conn.Close(); err != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
	}

	m.logger.Info("Player monitor shutdown complete")
	return nil
}

// Events returns a read-only channel of player state changes
func (m *MprisMonitor) Events() <-chan domain.MediaMetadata {
	return m.events
}

func (m *MprisMonitor) connection() bus.DBusClient {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conn
}

// subscribe routes player property changes and bus name changes to signals.
// Players started after the monitor are only seen through NameOwnerChanged.
func subscribe(conn bus.DBusClient, signals chan<- *dbus.Signal) error {
	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(_mprisPath),
		dbus.WithMatchInterface("org.freedesktop.DBus.Properties"),
		dbus.WithMatchMember("PropertiesChanged"),
	); err != nil {
		return fmt.Errorf("subscribe to player properties: %w", err)
	}
	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus"),
		dbus.WithMatchMember("NameOwnerChanged"),
	); err != nil {
		return fmt.Errorf("subscribe to bus names: %w", err)
	}
	conn.Signal(signals)
	return nil
}

// dispatch reports the players already running, then follows signals
func (m *MprisMonitor) dispatch(ctx context.Context, signals <-chan *dbus.Signal) {
	defer m.wg.Done()

	if err := m.scanPlayers(); err != nil {
		m.logger.Warn("Failed to detect existing players", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				m.logger.Debug("Signal channel closed")
				return
			}
			m.route(sig)
		}
	}
}

func (m *MprisMonitor) route(sig *dbus.Signal) {
	if sig == nil {
		return
	}
	switch sig.Name {
	case _nameOwnerChanged:
		m.onOwnerChanged(sig)
	case _propertiesChanged:
		m.onPropertiesChanged(sig)
	}
}

func isPlayer(name string) bool {
	return strings.HasPrefix(name, _mprisPrefix)
}

// scanPlayers registers players that were running before the monitor and
// emits their current state
func (m *MprisMonitor) scanPlayers() error {
	conn := m.connection()
	names, err := conn.ListNames()
	if err != nil {
		return fmt.Errorf("failed to list bus names: %w", err)
	}

	found := 0
	for _, name := range names {
		if !isPlayer(name) {
			continue
		}
		found++
		m.logger.Info("Detected MPRIS player", zap.String("name", name))

		if unique, err := conn.GetNameOwner(name); err == nil {
			m.players.bind(unique, name)
		}
		if err := m.readPlayer(name); err != nil {
			m.logger.Warn("Failed to read player state",
				zap.String("player", name),
				zap.Error(err))
		}
	}

	m.logger.Info("Player detection complete", zap.Int("count", found))
	return nil
}

// readPlayer polls the metadata and status of player and emits them
func (m *MprisMonitor) readPlayer(player string) error {
	conn := m.connection()

	mdVariant, err := conn.GetProperty(player, _mprisPath, _metadataProp)
	if err != nil {
		return fmt.Errorf("failed to get metadata: %w", err)
	}
	// Idle players may report something other than a dictionary
	md, ok := mdVariant.Value().(map[string]dbus.Variant)
	if !ok {
		m.logger.Debug("Player has no metadata yet", zap.String("player", player))
		return nil
	}

	statusVariant, err := conn.GetProperty(player, _mprisPath, _statusProp)
	if err != nil {
		return fmt.Errorf("failed to get playback status: %w", err)
	}
	status, ok := statusVariant.Value().(string)
	if !ok {
		return fmt.Errorf("playback status of %s is %T", player, statusVariant.Value())
	}

	meta := decodeMetadata(md, status)
	meta.Player = player
	m.emit(meta)
	return nil
}

// onOwnerChanged tracks players joining, leaving or changing owner.
// Body: well-known name, old owner, new owner.
func (m *MprisMonitor) onOwnerChanged(sig *dbus.Signal) {
	var name, oldOwner, newOwner string
	if err := dbus.Store(sig.Body, &name, &oldOwner, &newOwner); err != nil || !isPlayer(name) {
		return
	}

	if oldOwner != "" {
		m.players.unbind(oldOwner)
	}
	if newOwner != "" {
		m.players.bind(newOwner, name)
	}

	switch {
	case oldOwner == "" && newOwner != "":
		m.logger.Info("New MPRIS player detected",
			zap.String("player", name),
			zap.String("unique", newOwner))
		if err := m.readPlayer(name); err != nil {
			m.logger.Warn("Failed to read new player state",
				zap.String("player", name),
				zap.Error(err))
		}

	case oldOwner != "" && newOwner == "":
		m.logger.Info("MPRIS player removed",
			zap.String("player", name),
			zap.String("unique", oldOwner))
		m.emit(domain.MediaMetadata{Player: name, Status: domain.StatusStopped})
	}
}

// onPropertiesChanged handles a player's PropertiesChanged signal. The half
// of the state the signal does not carry is polled so events are complete.
// Body: interface name, changed properties, invalidated properties.
func (m *MprisMonitor) onPropertiesChanged(sig *dbus.Signal) {
	if len(sig.Body) < 2 {
		return
	}
	iface, _ := sig.Body[0].(string)
	changed, ok := sig.Body[1].(map[string]dbus.Variant)
	if iface != _playerInterface || !ok {
		return
	}

	mdVariant, hasMetadata := changed["Metadata"]
	statusVariant, hasStatus := changed["PlaybackStatus"]
	if !hasMetadata && !hasStatus {
		return
	}

	var md map[string]dbus.Variant
	if hasMetadata {
		if md, ok = mdVariant.Value().(map[string]dbus.Variant); !ok {
			m.logger.Warn("Invalid metadata format in signal, ignoring")
			return
		}
	} else {
		md = m.pollMetadata(sig.Sender)
	}

	var status string
	if hasStatus {
		if status, ok = statusVariant.Value().(string); !ok {
			m.logger.Warn("Invalid playback status format in signal, ignoring")
			return
		}
	} else {
		status = m.pollStatus(sig.Sender)
	}

	meta := decodeMetadata(md, status)
	meta.Player = m.players.resolve(sig.Sender)
	m.emit(meta)
}

func (m *MprisMonitor) pollMetadata(sender string) map[string]dbus.Variant {
	v, err := m.connection().GetProperty(sender, _mprisPath, _metadataProp)
	if err != nil {
		return nil
	}
	md, _ := v.Value().(map[string]dbus.Variant)
	return md
}

func (m *MprisMonitor) pollStatus(sender string) string {
	v, err := m.connection().GetProperty(sender, _mprisPath, _statusProp)
	if err != nil {
		return ""
	}
	s, _ := v.Value().(string)
	return s
}

// emit never blocks; the consumer debounces and only needs the latest state
func (m *MprisMonitor) emit(meta domain.MediaMetadata) {
	select {
	case m.events <- meta:
		m.logger.Debug("Player change detected",
			zap.String("player", meta.Player),
			zap.String("title", meta.Title),
			zap.String("url", meta.URL),
			zap.String("status", string(meta.Status)))
	default:
		m.noteDropped()
	}
}

// noteDropped warns at most once every five seconds with the number of
// updates lost since the last warning
func (m *MprisMonitor) noteDropped() {
	m.dropMu.Lock()
	defer m.dropMu.Unlock()

	m.dropped++
	if time.Since(m.lastDrop) < _dropWarnEvery {
		return
	}
	m.logger.Warn("Events channel full, dropping player updates", zap.Int("dropped", m.dropped))
	m.dropped = 0
	m.lastDrop = time.Now()
}
