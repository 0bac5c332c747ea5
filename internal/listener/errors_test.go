package listener

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := newError(KindTransportError, opWrite, io.ErrClosedPipe)
	assert.Equal(t, "[transport error] write > io: read/write on closed pipe", err.Error())

	assert.Equal(t, "[not connected] write", newError(KindNotConnected, opWrite, nil).Error())
	assert.Equal(t, "[already closed]", ErrAlreadyClosed.Error())
}

func TestErrorIsMatchesKindOnly(t *testing.T) {
	err := fmt.Errorf("stream: %w", newError(KindBindFailure, opWait, io.EOF))

	assert.True(t, errors.Is(err, ErrBindFailure))
	assert.True(t, errors.Is(err, io.EOF))
	assert.False(t, errors.Is(err, ErrAcceptFailure))
	assert.False(t, errors.Is(err, newError(KindBindFailure, opWait, nil)))
	assert.Equal(t, KindBindFailure, KindOf(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(io.EOF))
	assert.Equal(t, KindAlreadyConnected, KindOf(ErrAlreadyConnected))
}

func TestKindAndStateNames(t *testing.T) {
	assert.Equal(t, "invalid configuration", KindInvalidConfiguration.String())
	assert.Equal(t, "unknown", Kind(200).String())

	assert.Equal(t, "created", StateCreated.String())
	assert.Equal(t, "listening", StateListening.String())
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "unknown", State(9).String())
}
