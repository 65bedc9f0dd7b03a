//go:build nrf52810

package main

import (
	"errors"
	"machine"

	"github.com/sudhamtd/nRF52810-example/core"
)

var errPinNotConfigured = errors.New("pin not configured")

// NRFGPIODriver implements the GPIODriver interface for the nRF52810.
type NRFGPIODriver struct {
	// Track configured pins so writes to unconfigured pins fail fast
	configuredPins map[core.GPIOPin]machine.Pin

	// Driven level per pin. Configuring a pin as output disconnects
	// its input buffer, so IN reads zero regardless of OUT and the
	// level cannot be read back through the pin.
	level map[core.GPIOPin]bool
}

// NewNRFGPIODriver creates a new nRF52810 GPIO driver
func NewNRFGPIODriver() *NRFGPIODriver {
	return &NRFGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
		level:          make(map[core.GPIOPin]bool),
	}
}

// ConfigureOutput configures a pin as a digital output, driven low
func (d *NRFGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		// Already configured, this is OK
		return nil
	}

	machinePin := machine.Pin(pin)
	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machinePin.Set(false)

	d.configuredPins[pin] = machinePin
	d.level[pin] = false
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *NRFGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return errPinNotConfigured
	}
	machinePin.Set(value)
	d.level[pin] = value
	return nil
}

// TogglePin inverts the pin's current output state
func (d *NRFGPIODriver) TogglePin(pin core.GPIOPin) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return errPinNotConfigured
	}
	next := !d.level[pin]
	machinePin.Set(next)
	d.level[pin] = next
	return nil
}
