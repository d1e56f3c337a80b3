package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSocket(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSocket() error {
	if c.Socket.Path == "" {
		return errors.New("socket.path must be set")
	}
	if c.Socket.DialTimeoutSeconds <= 0 {
		return errors.New("socket.dial_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.RuntimeDir == "" {
		return errors.New("paths.runtime_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
