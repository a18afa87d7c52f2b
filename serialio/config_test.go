package serialio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "serial.yml")
	err := os.WriteFile(path, []byte("port: /dev/ttyACM0\nbaud: 9600\nread_timeout_ms: 250\n"), 0o644)
	assert.NoError(err)

	cfg, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal("/dev/ttyACM0", cfg.Port)
	assert.Equal(9600, cfg.Baud)
	assert.Equal(250, cfg.ReadTimeoutMs)
}

func TestLoadConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "serial.yml")
	err := os.WriteFile(path, []byte("port: /dev/ttyUSB1\n"), 0o644)
	assert.NoError(err)

	cfg, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal("/dev/ttyUSB1", cfg.Port)
	assert.Equal(DEFAULT_BAUD, cfg.Baud)
	assert.Equal(DEFAULT_READ_TIMEOUT, cfg.ReadTimeoutMs)
}

func TestLoadConfigMissing(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(err)
	assert.Nil(cfg)
}

func TestLoadConfigMalformed(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "serial.yml")
	err := os.WriteFile(path, []byte("port: [broken\n"), 0o644)
	assert.NoError(err)

	cfg, err := LoadConfig(path)
	assert.Error(err)
	assert.Nil(cfg)
}

func TestOpenNoPort(t *testing.T) {
	assert := assert.New(t)

	_, err := Open(nil)
	assert.ErrorIs(err, ErrNoPort)

	_, err = Open(&Config{})
	assert.ErrorIs(err, ErrNoPort)
}
