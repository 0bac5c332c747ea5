package listener

// State is the lifecycle position of a Listener.
type State uint8

const (
	StateCreated State = iota
	// StateListening is held while the socket is bound and accept is blocked.
	StateListening
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateListening:
		return "listening"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
