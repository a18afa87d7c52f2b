package serialio

import (
	"io"
	"time"

	"github.com/tarm/serial"
)

// Open opens the configured serial port as a console stream.
func Open(cfg *Config) (port io.ReadWriteCloser, err error) {
	if cfg == nil || cfg.Port == "" {
		err = ErrNoPort
		return
	}

	port, err = serial.OpenPort(&serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeoutMs) * time.Millisecond,
	})

	return
}
