package serialio

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Default line settings, matching the debug UART of the reference kit.
const (
	DEFAULT_BAUD         = 115200
	DEFAULT_READ_TIMEOUT = 0 // block forever
)

// Config describes the serial line the console is served on.
type Config struct {
	Port          string `yaml:"port"`
	Baud          int    `yaml:"baud"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// LoadConfig reads a YAML serial configuration, filling in defaults for
// absent fields.
func LoadConfig(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg = &Config{}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = nil
		return
	}

	cfg.setDefaults()
	return
}

func (cfg *Config) setDefaults() {
	if cfg.Baud == 0 {
		cfg.Baud = DEFAULT_BAUD
	}
	if cfg.ReadTimeoutMs == 0 {
		cfg.ReadTimeoutMs = DEFAULT_READ_TIMEOUT
	}
}
