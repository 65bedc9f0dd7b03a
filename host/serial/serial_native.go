//go:build !wasm

package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort is a Port backed by a real serial device through
// tarm/serial, normally the DK's J-Link UART bridge.
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens the serial device described by cfg. Config values come
// straight from command-line input, so they are validated before the
// device is touched.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, fmt.Errorf("no device path configured")
	}
	if cfg.Baud <= 0 {
		return nil, fmt.Errorf("invalid baud rate %d", cfg.Baud)
	}
	if cfg.ReadTimeout < 0 {
		return nil, fmt.Errorf("invalid read timeout %dms", cfg.ReadTimeout)
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{port: port, cfg: cfg}, nil
}

// Read reads from the device. With the default config reads block until
// the firmware sends something, which is what the line-oriented monitor
// wants.
func (p *NativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes to the device.
func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the device.
func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush flushes the serial port buffers.
func (p *NativePort) Flush() error {
	// tarm/serial doesn't expose flush; writes are unbuffered anyway
	return nil
}
