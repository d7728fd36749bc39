package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "loom.json"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":3000"

	// DefaultReadTimeout is the default read timeout in seconds.
	DefaultReadTimeout = 60

	// DefaultWriteTimeout is the default write timeout in seconds.
	DefaultWriteTimeout = 10

	// DefaultPingInterval is the default heartbeat period in seconds.
	DefaultPingInterval = 30

	// DefaultEventQueueSize is the default per-session event queue
	// capacity.
	DefaultEventQueueSize = 64
)

// Config represents the loom.json configuration. Timeouts are in
// seconds.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Addr is the server listen address.
	Addr string `json:"addr,omitempty"`

	// ReadTimeout bounds connection silence before disconnect.
	ReadTimeout int `json:"read_timeout,omitempty"`

	// WriteTimeout bounds each frame write.
	WriteTimeout int `json:"write_timeout,omitempty"`

	// PingInterval is the heartbeat period.
	PingInterval int `json:"ping_interval,omitempty"`

	// EventQueueSize is the per-session event queue capacity.
	EventQueueSize int `json:"event_queue_size,omitempty"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		Addr:           DefaultAddr,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		PingInterval:   DefaultPingInterval,
		EventQueueSize: DefaultEventQueueSize,
	}
}

// Load reads loom.json from dir. A missing file returns the defaults;
// a malformed file is an error. Set fields override defaults, unset
// fields keep them.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", ConfigFileName, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

// Save writes the configuration to loom.json in dir.
func (c Config) Save(dir string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", ConfigFileName, err)
	}
	return nil
}
