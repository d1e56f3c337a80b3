package config

const (
	// Well-known socket location. Every client and the daemon must agree
	// on it.
	defaultSocketPath  = "/tmp/fm.sock"
	defaultDialTimeout = 2

	defaultRuntimeDir = "~/.local/share/fmclip"
	defaultLogDir     = "~/.local/share/fmclip/logs"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Socket: Socket{
			Path:               defaultSocketPath,
			DialTimeoutSeconds: defaultDialTimeout,
		},
		Paths: Paths{
			RuntimeDir: defaultRuntimeDir,
			LogDir:     defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
