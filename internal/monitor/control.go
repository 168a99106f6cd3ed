package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/zap"
)

// ErrNotConnected is returned by Control before the bus connection is up
var ErrNotConnected = errors.New("player monitor is not connected")

var transportMethods = map[domain.TransportAction]string{
	domain.ActionPlay:      "Play",
	domain.ActionStop:      "Stop",
	domain.ActionPause:     "Pause",
	domain.ActionPlayPause: "PlayPause",
}

// Control forwards a transport command to player, addressed by its
// well-known bus name
func (m *MprisMonitor) Control(ctx context.Context, player string, cmd domain.TransportAction) error {
	method, ok := transportMethods[cmd]
	if !ok {
		return fmt.Errorf("unsupported transport action %d", cmd)
	}

	conn := m.connection()
	if conn == nil {
		return ErrNotConnected
	}

	if err := conn.Call(ctx, player, _mprisPath, _playerInterface+"."+method).Err; err != nil {
		return fmt.Errorf("%s on %s: %w", method, player, err)
	}

	m.logger.Info("Transport command sent",
		zap.String("player", player),
		zap.String("command", method))
	return nil
}
