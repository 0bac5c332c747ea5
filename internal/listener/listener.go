// Package listener implements a blocking rendezvous point for exactly one
// inbound TCP client, followed by a raw byte stream towards that client.
//
// A Listener is not safe for concurrent use.
package listener

import (
	"net"
	"time"

	"github.com/rs/zerolog"

	"tcpfile/internal/shared/logger"
	"tcpfile/internal/shared/netutil"
)

const backlog = 1

const (
	opNew   = "new"
	opWait  = "wait for connection"
	opWrite = "write"
	opClose = "close"
)

// Config is the immutable configuration of a Listener.
type Config struct {
	Port netutil.Port
	// AcceptTimeout bounds WaitForConnection. Zero waits forever.
	AcceptTimeout time.Duration
}

// Option customizes a Config.
type Option func(*Config)

// WithAcceptTimeout makes WaitForConnection fail with KindAcceptFailure once d elapses.
func WithAcceptTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.AcceptTimeout = d
	}
}

// Listener accepts a single TCP connection and writes bytes to it.
type Listener struct {
	cfg   Config
	state State
	lis   *ListenerHandle
	conn  *ConnectionHandle
	log   zerolog.Logger
}

// New validates port and returns a Listener in StateCreated. No socket is opened.
func New(port int, opts ...Option) (*Listener, error) {
	p, err := netutil.PortFromInt(port)
	if err != nil {
		return nil, newError(KindInvalidConfiguration, opNew, err)
	}

	cfg := Config{Port: p}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.AcceptTimeout < 0 {
		return nil, newError(KindInvalidConfiguration, opNew, errNegativeTimeout)
	}

	return &Listener{
		cfg:   cfg,
		state: StateCreated,
		log:   logger.WithComponent("listener").With().Uint16("port", p.Value()).Logger(),
	}, nil
}

// Config returns the configuration the Listener was built with.
func (l *Listener) Config() Config {
	return l.cfg
}

// State returns the current lifecycle state.
func (l *Listener) State() State {
	return l.state
}

// WaitForConnection binds 0.0.0.0 on the configured port with a backlog of one
// and blocks until a client connects.
//
// On a bind or accept failure the listening socket is released and the
// Listener stays in StateCreated, so the call may be repeated.
func (l *Listener) WaitForConnection() error {
	switch l.state {
	case StateConnected:
		return newError(KindAlreadyConnected, opWait, nil)
	case StateClosed:
		return newError(KindAlreadyClosed, opWait, nil)
	}

	ln, err := listenTCP(l.cfg.Port)
	if err != nil {
		l.log.Warn().Err(err).Msg("Bind failed")
		return newError(KindBindFailure, opWait, err)
	}
	l.lis = &ListenerHandle{ln: ln}
	l.state = StateListening
	l.log.Debug().Str("addr", ln.Addr().String()).Msg("Waiting for connection")

	conn, err := l.lis.accept(l.cfg.AcceptTimeout)
	if err != nil {
		_ = l.lis.Close()
		l.lis = nil
		l.state = StateCreated
		l.log.Warn().Err(err).Msg("Accept failed")
		return newError(KindAcceptFailure, opWait, err)
	}

	l.conn = newConnectionHandle(conn)
	l.state = StateConnected
	l.log.Info().
		Str("conn_id", l.conn.ID()).
		Str("peer", l.conn.PeerAddr().String()).
		Msg("Client connected")
	return nil
}

// Write sends p to the connected peer, looping until every byte has been
// accepted by the transport. It returns the number of bytes written.
func (l *Listener) Write(p []byte) (int, error) {
	if l.state != StateConnected {
		return 0, newError(KindNotConnected, opWrite, nil)
	}

	n, err := l.conn.writeAll(p)
	if err != nil {
		l.log.Debug().Err(err).Str("conn_id", l.conn.ID()).Int("written", n).Msg("Write failed")
		return n, newError(KindTransportError, opWrite, err)
	}
	return n, nil
}

// Close releases the listening socket and then the accepted connection.
// It fails with KindNotListening before WaitForConnection has succeeded and
// with KindAlreadyClosed on every call after the first.
func (l *Listener) Close() error {
	switch l.state {
	case StateCreated, StateListening:
		return newError(KindNotListening, opClose, nil)
	case StateClosed:
		return newError(KindAlreadyClosed, opClose, nil)
	}
	l.state = StateClosed

	lisErr := l.lis.Close()
	connErr := l.conn.Close()

	l.log.Info().
		Str("conn_id", l.conn.ID()).
		Uint64("bytes_sent", l.conn.BytesSent()).
		Msg("Listener closed")

	if lisErr != nil {
		return newError(KindTransportError, opClose, lisErr)
	}
	if connErr != nil {
		return newError(KindTransportError, opClose, connErr)
	}
	return nil
}

// Addr returns the bound address, or nil before the socket has been bound.
func (l *Listener) Addr() net.Addr {
	if l.lis == nil {
		return nil
	}
	return l.lis.Addr()
}

// PeerAddr returns the peer address captured at accept time, or nil.
func (l *Listener) PeerAddr() net.Addr {
	if l.conn == nil {
		return nil
	}
	return l.conn.PeerAddr()
}

// ConnID returns the id of the accepted connection, or "".
func (l *Listener) ConnID() string {
	if l.conn == nil {
		return ""
	}
	return l.conn.ID()
}

// BytesSent returns the bytes written to the peer. It keeps its value after Close.
func (l *Listener) BytesSent() uint64 {
	if l.conn == nil {
		return 0
	}
	return l.conn.BytesSent()
}
