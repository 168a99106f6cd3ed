package notification

import "github.com/genricoloni/radiod/internal/domain"

// SessionSnapshot is a fixed MediaSession value
type SessionSnapshot struct {
	SessionToken string
	Metadata     domain.MediaDescription
	State        domain.PlaybackState
	Activity     string
}

var _ domain.MediaSession = SessionSnapshot{}

func (s SessionSnapshot) Token() string                        { return s.SessionToken }
func (s SessionSnapshot) Description() domain.MediaDescription { return s.Metadata }
func (s SessionSnapshot) PlaybackState() domain.PlaybackState  { return s.State }
func (s SessionSnapshot) SessionActivity() string              { return s.Activity }
