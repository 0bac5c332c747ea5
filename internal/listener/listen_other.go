//go:build !linux

package listener

import (
	"fmt"
	"net"

	"tcpfile/internal/shared/netutil"
)

// listenTCP binds the wildcard address on port. The backlog is left to the
// platform since the standard listener offers no way to set it.
func listenTCP(port netutil.Port) (*net.TCPListener, error) {
	addr := &net.TCPAddr{Port: int(port)}
	ln, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}
