package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"tcpfile/internal/listener"
	"tcpfile/internal/shared/config"
	"tcpfile/internal/shared/logger"
	"tcpfile/internal/shared/types"
)

func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	port := flag.Int("port", config.DefaultPort, "Port to listen on, overrides the config file")
	input := flag.String("input", "", "File streamed to the client (default stdin)")
	flag.Parse()

	iniPath := filepath.Join(*configDir, "tcpfile.ini")

	cfg := config.Default()
	if err := config.LoadIni(cfg, iniPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "port" {
			cfg.ListenerConf.Port = *port
		}
	})

	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	src := io.Reader(os.Stdin)
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			logger.Fatal().Err(err).Msgf("Failed to open input '%s'", *input)
		}
		defer f.Close()
		src = f
	}

	if err := run(cfg, src); err != nil {
		logger.Error().Err(err).Msg("tcpfile failed")
		os.Exit(1)
	}
}

// run waits for one client and copies src to it.
func run(cfg *types.Config, src io.Reader) error {
	l, err := listener.New(cfg.ListenerConf.Port,
		listener.WithAcceptTimeout(time.Duration(cfg.ListenerConf.AcceptTimeout)*time.Second))
	if err != nil {
		return err
	}

	logger.Info().Int("port", cfg.ListenerConf.Port).Msg("Waiting for a client")
	if err := l.WaitForConnection(); err != nil {
		return err
	}

	n, copyErr := io.Copy(l, src)
	closeErr := l.Close()
	if copyErr != nil {
		return fmt.Errorf("stream to %s: %w", l.PeerAddr(), copyErr)
	}
	if closeErr != nil {
		return closeErr
	}

	logger.Info().Str("conn_id", l.ConnID()).Int64("bytes", n).Msg("Stream complete")
	return nil
}
