package listener

import (
	"io"
	"net"
	"time"

	"github.com/google/uuid"

	"tcpfile/internal/shared"
)

// ListenerHandle owns the bound listening socket.
type ListenerHandle struct {
	ln     *net.TCPListener
	closed bool
}

// Addr returns the bound address.
func (h *ListenerHandle) Addr() net.Addr {
	return h.ln.Addr()
}

// accept blocks for one connection. A zero timeout waits forever.
func (h *ListenerHandle) accept(timeout time.Duration) (*net.TCPConn, error) {
	if timeout > 0 {
		if err := h.ln.SetDeadline(time.Now().Add(timeout)); err != nil {
			return nil, err
		}
	}
	return h.ln.AcceptTCP()
}

// Close releases the listening socket. It does not touch accepted connections.
// Closing an already closed handle is a no-op.
func (h *ListenerHandle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.ln.Close()
}

// ConnectionHandle owns the accepted peer connection.
type ConnectionHandle struct {
	id     string
	conn   *shared.CountedConn
	peer   net.Addr
	closed bool
}

func newConnectionHandle(conn net.Conn) *ConnectionHandle {
	return &ConnectionHandle{
		id:   uuid.NewString(),
		conn: shared.NewCountedConn(conn),
		peer: conn.RemoteAddr(),
	}
}

// ID identifies the connection in logs.
func (h *ConnectionHandle) ID() string {
	return h.id
}

// PeerAddr is the remote address observed at accept time.
func (h *ConnectionHandle) PeerAddr() net.Addr {
	return h.peer
}

// BytesSent returns the bytes the transport accepted so far.
func (h *ConnectionHandle) BytesSent() uint64 {
	return h.conn.Sent()
}

// writeAll loops until p is fully handed to the transport or a write fails.
func (h *ConnectionHandle) writeAll(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := h.conn.Write(p[written:])
		written += n
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}

// Close releases the connection. It does not touch the listening socket.
// Closing an already closed handle is a no-op.
func (h *ConnectionHandle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.conn.Close()
}
