//go:build !linux
// +build !linux

package presenter

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/genricoloni/radiod/internal/bus"
	"github.com/genricoloni/radiod/internal/domain"
	"go.uber.org/zap"
)

// StubPresenter logs notifications on platforms without a notification server binding
type StubPresenter struct {
	logger  *zap.Logger
	reg     *channelRegistry
	nextID  atomic.Uint32
	invoked chan domain.ActionInvocation
}

// NewPresenter creates a stub presenter for unsupported platforms
func NewPresenter(logger *zap.Logger, _ bus.Dialer) *StubPresenter {
	return &StubPresenter{
		logger:  logger,
		reg:     newChannelRegistry(),
		invoked: make(chan domain.ActionInvocation),
	}
}

// Start only warns that notifications are logged
func (p *StubPresenter) Start(ctx context.Context) error {
	p.logger.Warn("Desktop notifications are not implemented for this platform, logging instead")
	return nil
}

// Stop is a no-op
func (p *StubPresenter) Stop(ctx context.Context) error {
	return nil
}

// ChannelExists reports whether the channel was created
func (p *StubPresenter) ChannelExists(ctx context.Context, id string) (bool, error) {
	return p.reg.exists(id), nil
}

// CreateChannel registers a channel
func (p *StubPresenter) CreateChannel(ctx context.Context, ch domain.NotificationChannel) error {
	p.reg.put(ch)
	return nil
}

// Post logs n
func (p *StubPresenter) Post(ctx context.Context, n domain.Notification) (uint32, error) {
	if !p.reg.exists(n.ChannelID) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownChannel, n.ChannelID)
	}
	id := p.nextID.Add(1)
	p.logger.Info("Now playing",
		zap.Uint32("id", id),
		zap.String("title", n.Title),
		zap.String("text", n.Text),
		zap.Int("actions", len(n.Actions)))
	return id, nil
}

// Cancel is a no-op
func (p *StubPresenter) Cancel(ctx context.Context, id uint32) error {
	return nil
}

// Invoked never fires
func (p *StubPresenter) Invoked() <-chan domain.ActionInvocation {
	return p.invoked
}
