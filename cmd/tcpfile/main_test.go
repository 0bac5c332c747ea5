package main

import (
	"fmt"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"tcpfile/internal/listener"
	"tcpfile/internal/shared/config"
)

func TestRunStreamsInput(t *testing.T) {
	probe, err := net.Listen("tcp4", "0.0.0.0:0")
	require.NoError(t, err)
	port := probe.Addr().(*net.TCPAddr).Port
	require.NoError(t, probe.Close())

	cfg := config.Default()
	cfg.ListenerConf.Port = port
	cfg.ListenerConf.AcceptTimeout = 10

	var received []byte
	var g errgroup.Group
	g.Go(func() error {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		for start := time.Now(); ; time.Sleep(10 * time.Millisecond) {
			conn, err := net.Dial("tcp", addr)
			if err != nil {
				if time.Since(start) > 5*time.Second {
					return err
				}
				continue
			}
			defer conn.Close()
			received, err = io.ReadAll(conn)
			return err
		}
	})

	input := strings.Repeat("sensor sample\n", 1000)
	require.NoError(t, run(cfg, strings.NewReader(input)))
	require.NoError(t, g.Wait())
	assert.Equal(t, input, string(received))
}

func TestRunInvalidPort(t *testing.T) {
	cfg := config.Default()
	cfg.ListenerConf.Port = 70000

	err := run(cfg, strings.NewReader(""))
	assert.ErrorIs(t, err, listener.ErrInvalidConfiguration)
}

func TestRunAcceptTimeout(t *testing.T) {
	probe, err := net.Listen("tcp4", "0.0.0.0:0")
	require.NoError(t, err)
	port := probe.Addr().(*net.TCPAddr).Port
	require.NoError(t, probe.Close())

	cfg := config.Default()
	cfg.ListenerConf.Port = port
	cfg.ListenerConf.AcceptTimeout = 1

	err = run(cfg, strings.NewReader("never sent"))
	assert.ErrorIs(t, err, listener.ErrAcceptFailure)
}
