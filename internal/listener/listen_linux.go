//go:build linux

package listener

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"

	"tcpfile/internal/shared/netutil"
)

// listenTCP binds 0.0.0.0:port with a backlog of exactly one pending connection.
// net.Listen always uses the system maximum, so the socket is built by hand.
func listenTCP(port netutil.Port) (*net.TCPListener, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return nil, fmt.Errorf("socket: %w", err)
	}

	if err := setupListenSocket(fd, port); err != nil {
		unix.Close(fd)
		return nil, err
	}

	file := os.NewFile(uintptr(fd), fmt.Sprintf("tcp:0.0.0.0:%s", port))
	// FileListener dups the descriptor, the original is always ours to close.
	defer file.Close()

	ln, err := net.FileListener(file)
	if err != nil {
		return nil, fmt.Errorf("file listener: %w", err)
	}
	tcpLn, ok := ln.(*net.TCPListener)
	if !ok {
		ln.Close()
		return nil, fmt.Errorf("unexpected listener type %T", ln)
	}
	return tcpLn, nil
}

func setupListenSocket(fd int, port netutil.Port) error {
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		return fmt.Errorf("failed to set SO_REUSEADDR: %w", err)
	}
	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: int(port)}); err != nil {
		return fmt.Errorf("bind 0.0.0.0:%s: %w", port, err)
	}
	if err := unix.Listen(fd, backlog); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
