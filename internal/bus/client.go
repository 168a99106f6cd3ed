// Package bus wraps the session bus connection shared by the player monitor
// and the notification presenter.
package bus

import (
	"context"

	"github.com/godbus/dbus/v5"
)

const _busInterface = "org.freedesktop.DBus"

// DBusClient is the slice of a session bus connection radiod uses: signal
// subscription and name lookups for the monitor, property reads and method
// calls for both the monitor and the presenter.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/radiod/internal/bus DBusClient
type DBusClient interface {
	Close() error

	// AddMatchSignal asks the bus to route matching signals to this connection
	AddMatchSignal(options ...dbus.MatchOption) error

	// Signal registers ch to receive routed signals
	Signal(ch chan<- *dbus.Signal)

	ListNames() ([]string, error)

	// GetNameOwner resolves a well-known name ("org.mpris.MediaPlayer2.mpv")
	// to the unique name (":1.42") that currently owns it
	GetNameOwner(name string) (string, error)

	// GetProperty reads prop ("org.mpris.MediaPlayer2.Player.Metadata") from
	// the object at path on dest
	GetProperty(dest, path, prop string) (dbus.Variant, error)

	// Call invokes method ("org.freedesktop.Notifications.Notify") on the
	// object at path on dest and waits for the reply or ctx
	Call(ctx context.Context, dest, path, method string, args ...any) *dbus.Call
}

// Dialer opens a new client
type Dialer func() (DBusClient, error)

// SessionClient is a DBusClient over a private session bus connection.
// Each component dials its own, so closing one never affects the others.
type SessionClient struct {
	conn *dbus.Conn
}

var _ DBusClient = (*SessionClient)(nil)

// NewSessionClient connects to the session bus
func NewSessionClient() (*SessionClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &SessionClient{conn: conn}, nil
}

// SessionDialer is the Dialer used outside tests
func SessionDialer() (DBusClient, error) {
	c, err := NewSessionClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SessionClient) Close() error {
	return c.conn.Close()
}

func (c *SessionClient) AddMatchSignal(options ...dbus.MatchOption) error {
	return c.conn.AddMatchSignal(options...)
}

func (c *SessionClient) Signal(ch chan<- *dbus.Signal) {
	c.conn.Signal(ch)
}

func (c *SessionClient) ListNames() (names []string, err error) {
	err = c.daemon("ListNames").Store(&names)
	return names, err
}

func (c *SessionClient) GetNameOwner(name string) (owner string, err error) {
	err = c.daemon("GetNameOwner", name).Store(&owner)
	return owner, err
}

func (c *SessionClient) GetProperty(dest, path, prop string) (dbus.Variant, error) {
	return c.conn.Object(dest, dbus.ObjectPath(path)).GetProperty(prop)
}

func (c *SessionClient) Call(ctx context.Context, dest, path, method string, args ...any) *dbus.Call {
	return c.conn.Object(dest, dbus.ObjectPath(path)).CallWithContext(ctx, method, 0, args...)
}

// daemon calls a method of the bus daemon itself
func (c *SessionClient) daemon(method string, args ...any) *dbus.Call {
	return c.conn.BusObject().Call(_busInterface+"."+method, 0, args...)
}
