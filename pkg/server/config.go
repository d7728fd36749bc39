package server

import (
	"time"

	"github.com/loom-ui/loom/internal/config"
)

// Config holds session and transport tuning for the server.
type Config struct {
	// Addr is the listen address.
	Addr string

	// ReadTimeout bounds how long a connection may stay silent before
	// the read loop gives up. Must exceed PingInterval.
	ReadTimeout time.Duration

	// WriteTimeout bounds each frame write.
	WriteTimeout time.Duration

	// PingInterval is the heartbeat period.
	PingInterval time.Duration

	// EventQueueSize is the per-session buffered event capacity.
	// Events beyond it are dropped and counted.
	EventQueueSize int
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:           ":3000",
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   10 * time.Second,
		PingInterval:   30 * time.Second,
		EventQueueSize: 64,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.PingInterval == 0 {
		c.PingInterval = d.PingInterval
	}
	if c.EventQueueSize == 0 {
		c.EventQueueSize = d.EventQueueSize
	}
	return c
}

// ConfigFromDir loads loom.json from dir and maps it onto a server
// Config. A missing file yields the defaults.
func ConfigFromDir(dir string) (Config, error) {
	fc, err := config.Load(dir)
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Addr:           fc.Addr,
		ReadTimeout:    time.Duration(fc.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(fc.WriteTimeout) * time.Second,
		PingInterval:   time.Duration(fc.PingInterval) * time.Second,
		EventQueueSize: fc.EventQueueSize,
	}
	return c.withDefaults(), nil
}
