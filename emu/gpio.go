package emu

import (
	"fmt"

	"github.com/sudhamtd/nRF52810-example/core"
)

// GPIO is a software model of the GPIO port implementing
// core.GPIODriver. It records driven levels and toggle counts so tests
// and demos can observe what a tick handler did to a pin.
type GPIO struct {
	output  map[core.GPIOPin]bool
	level   map[core.GPIOPin]bool
	toggles map[core.GPIOPin]int
}

// NewGPIO returns a model with every pin unconfigured.
func NewGPIO() *GPIO {
	return &GPIO{
		output:  make(map[core.GPIOPin]bool),
		level:   make(map[core.GPIOPin]bool),
		toggles: make(map[core.GPIOPin]int),
	}
}

// ConfigureOutput configures a pin as a digital output, driven low.
func (g *GPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.output[pin] = true
	g.level[pin] = false
	return nil
}

// SetPin drives the pin high or low.
func (g *GPIO) SetPin(pin core.GPIOPin, value bool) error {
	if !g.output[pin] {
		return fmt.Errorf("pin %d not configured as output", pin)
	}
	g.level[pin] = value
	return nil
}

// TogglePin inverts the pin's driven level.
func (g *GPIO) TogglePin(pin core.GPIOPin) error {
	if !g.output[pin] {
		return fmt.Errorf("pin %d not configured as output", pin)
	}
	g.level[pin] = !g.level[pin]
	g.toggles[pin]++
	return nil
}

// Level returns the level the pin is currently driven to.
func (g *GPIO) Level(pin core.GPIOPin) bool {
	return g.level[pin]
}

// Toggles returns how many times the pin has been toggled.
func (g *GPIO) Toggles(pin core.GPIOPin) int {
	return g.toggles[pin]
}
