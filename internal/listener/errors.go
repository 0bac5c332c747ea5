package listener

import (
	"errors"
	"strings"
)

// Kind classifies the failures of a Listener.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInvalidConfiguration
	KindBindFailure
	KindAcceptFailure
	KindNotConnected
	KindTransportError
	KindNotListening
	KindAlreadyClosed
	KindAlreadyConnected
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindInvalidConfiguration: "invalid configuration",
	KindBindFailure:          "bind failure",
	KindAcceptFailure:        "accept failure",
	KindNotConnected:         "not connected",
	KindTransportError:       "transport error",
	KindNotListening:         "not listening",
	KindAlreadyClosed:        "already closed",
	KindAlreadyConnected:     "already connected",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrInvalidConfiguration = &Error{Kind: KindInvalidConfiguration}
	ErrBindFailure          = &Error{Kind: KindBindFailure}
	ErrAcceptFailure        = &Error{Kind: KindAcceptFailure}
	ErrNotConnected         = &Error{Kind: KindNotConnected}
	ErrTransportError       = &Error{Kind: KindTransportError}
	ErrNotListening         = &Error{Kind: KindNotListening}
	ErrAlreadyClosed        = &Error{Kind: KindAlreadyClosed}
	ErrAlreadyConnected     = &Error{Kind: KindAlreadyConnected}
)

// Error is a listener failure with an optional underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error renders as "[kind] op > cause".
func (e *Error) Error() string {
	builder := strings.Builder{}
	builder.WriteByte('[')
	builder.WriteString(e.Kind.String())
	builder.WriteByte(']')

	if e.Op != "" {
		builder.WriteByte(' ')
		builder.WriteString(e.Op)
	}

	if e.Err != nil {
		builder.WriteString(" > ")
		builder.WriteString(e.Err.Error())
	}

	return builder.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

var errNegativeTimeout = errors.New("negative accept timeout")

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
