package config

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"tcpfile/internal/shared/netutil"
	"tcpfile/internal/shared/types"
)

const (
	DefaultPort = 50555

	EnvPort     = "TCPFILE_PORT"
	EnvLogLevel = "TCPFILE_LOG_LEVEL"
)

// Default returns the configuration used when no file is present.
func Default() *types.Config {
	return &types.Config{
		ListenerConf: types.ListenerConf{Port: DefaultPort},
		LogConf:      types.LogConf{Level: "info"},
	}
}

// LoadIni maps fileName onto cfg and applies environment overrides.
// A missing file leaves cfg untouched apart from the overrides.
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	switch {
	case err == nil:
		if err := iniFile.MapTo(cfg); err != nil {
			return fmt.Errorf("failed to map %s: %w", fileName, err)
		}
	case fileMissing(fileName):
	default:
		return fmt.Errorf("failed to load %s: %w", fileName, err)
	}

	overrideFromEnvPort(&cfg.ListenerConf.Port, EnvPort)
	overrideFromEnvString(&cfg.LogConf.Level, EnvLogLevel)
	return nil
}

func fileMissing(fileName string) bool {
	_, err := os.Stat(fileName)
	return os.IsNotExist(err)
}

// Invalid values are ignored and the configured port is kept.
func overrideFromEnvPort(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue == "" {
		return
	}
	if port, err := netutil.PortFromString(envValue); err == nil {
		*target = int(port)
	}
}

func overrideFromEnvString(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}
