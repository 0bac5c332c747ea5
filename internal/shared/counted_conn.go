package shared

import (
	"net"
	"sync/atomic"
)

// CountedConn wraps a net.Conn and counts the bytes written to it.
type CountedConn struct {
	net.Conn
	sent atomic.Uint64
}

// NewCountedConn creates a new CountedConn around conn.
func NewCountedConn(conn net.Conn) *CountedConn {
	return &CountedConn{Conn: conn}
}

// Write writes to the underlying connection and adds the accepted bytes to the counter.
func (c *CountedConn) Write(b []byte) (int, error) {
	n, err := c.Conn.Write(b)
	if n > 0 {
		c.sent.Add(uint64(n))
	}
	return n, err
}

// Sent returns the number of bytes written so far.
func (c *CountedConn) Sent() uint64 {
	return c.sent.Load()
}
