//go:build nrf52810

package main

import (
	"device/arm"
	"time"

	"github.com/sudhamtd/nRF52810-example/core"
)

const (
	// LED1 on the nRF52810 DK, P0.17.
	ledPin = core.GPIOPin(17)

	// Period between compare matches.
	tickEvery = 509 * time.Microsecond
)

func main() {
	core.SetTimerDriver(NewTimer0(), NewTimer0IRQ())
	core.SetGPIODriver(NewNRFGPIODriver())

	gpio := core.MustGPIO()
	if err := gpio.ConfigureOutput(ledPin); err != nil {
		println("gpio:", err.Error())
		return
	}

	tm, err := core.Claim()
	if err != nil {
		println("timer:", err.Error())
		return
	}

	// Each compare match toggles the LED and reports the tick number
	// over the UART for the host-side monitor.
	var ticks core.TickCounter
	err = tm.Arm(tickEvery, func() {
		gpio.TogglePin(ledPin)
		println("tick", ticks.Add())
	})
	if err != nil {
		println("timer:", err.Error())
		return
	}

	// Sleep between interrupts. The SEV/WFE pair drains the event
	// register so the next wait really suspends the core.
	for {
		arm.Asm("wfe")
		arm.Asm("sev")
		arm.Asm("wfe")
	}
}
