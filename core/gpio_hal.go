package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that demo code uses to blink
// an LED from the tick handler. The timer core never touches pins
// itself: pin side effects belong to the application.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	// Returns error if pin is invalid
	ConfigureOutput(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// TogglePin inverts the pin's current output state
	TogglePin(pin GPIOPin) error
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
