package types

// ListenerConf configures the single-connection listener.
type ListenerConf struct {
	Port int `ini:"port"`
	// AcceptTimeout in seconds, 0 waits forever.
	AcceptTimeout int `ini:"accept_timeout"`
}

// LogConf contains logging specific configuration
type LogConf struct {
	Level string `ini:"level"`
}

// Config is the unified configuration of the tcpfile command.
type Config struct {
	ListenerConf `ini:"listener"`
	LogConf      `ini:"log"`
}
