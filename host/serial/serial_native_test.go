//go:build !wasm

package serial

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	if cfg.Device != "/dev/ttyACM0" {
		t.Errorf("Expected device /dev/ttyACM0, got %s", cfg.Device)
	}
	if cfg.Baud != 115200 {
		t.Errorf("Expected 115200 baud, got %d", cfg.Baud)
	}
	// The monitor scans the port line by line and needs blocking reads.
	if cfg.ReadTimeout != 0 {
		t.Errorf("Expected blocking reads by default, got %dms timeout", cfg.ReadTimeout)
	}
}

func TestOpenValidation(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("Expected error for nil config")
	}
	if _, err := Open(&Config{Baud: 115200}); err == nil {
		t.Error("Expected error for empty device path")
	}
	if _, err := Open(&Config{Device: "/dev/ttyACM0"}); err == nil {
		t.Error("Expected error for zero baud rate")
	}
	if _, err := Open(&Config{Device: "/dev/ttyACM0", Baud: -9600}); err == nil {
		t.Error("Expected error for negative baud rate")
	}
	if _, err := Open(&Config{Device: "/dev/ttyACM0", Baud: 115200, ReadTimeout: -1}); err == nil {
		t.Error("Expected error for negative read timeout")
	}
}
