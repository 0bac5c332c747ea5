package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcpfile/internal/shared/types"
)

func TestInitLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(types.LogConf{Level: "WARN"}, &buf))
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())

	Info().Msg("filtered")
	assert.Zero(t, buf.Len())

	Warn().Str("addr", "0.0.0.0:50555").Int("port", 50555).Msg("shown")
	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "addr=0.0.0.0:50555")
}

func TestInitUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(types.LogConf{Level: "chatty"}, &buf))
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())

	require.NoError(t, InitWithWriter(types.LogConf{}, &buf))
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(types.LogConf{Level: "debug"}, &buf))
	buf.Reset()

	l := WithComponent("listener")
	l.Info().Msg("bound")
	assert.Contains(t, buf.String(), "component=listener")
}
