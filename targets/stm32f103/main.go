//go:build stm32f103

// breeze firmware image for STM32F103 flight-controller boards
// (Naze32-style wiring: status LED on PB3, fault LED on PB4, console on
// the first UART).
package main

import (
	"machine"

	"breeze/core"
	"breeze/monitor"
)

// Board LEDs are wired active-low.
var (
	ledStatus = machine.PB3
	ledFault  = machine.PB4
)

// boardLEDs adapts the LED pins to the core indicator interface.
type boardLEDs struct{}

func (boardLEDs) SetStatus(on bool) { ledStatus.Set(!on) }
func (boardLEDs) SetFault(on bool)  { ledFault.Set(!on) }

// systemFacade exposes the core system operations to the console.
type systemFacade struct{}

func (systemFacade) Micros() uint64           { return core.Micros() }
func (systemFacade) Millis() uint32           { return core.Millis() }
func (systemFacade) ResetReason() uint32      { return core.ReadResetReason() }
func (systemFacade) ClearResetReason()        { core.WriteResetReason(0) }
func (systemFacade) Reboot(toBootloader bool) { core.SystemReset(toBootloader) }

// SystemInit performs the one-time hardware bring-up: pin directions,
// HAL registration, clock calibration and tick start.
func SystemInit() {
	ledStatus.Configure(machine.PinConfig{Mode: machine.PinOutput})
	ledFault.Configure(machine.PinConfig{Mode: machine.PinOutput})
	ledStatus.High() // off
	ledFault.High()  // off

	core.SetCycleTimer(sysTickTimer{})
	core.SetBackupStore(backupDomain{})
	core.SetResetter(armResetter{})
	core.SetIndicator(boardLEDs{})

	core.InitClock(machine.CPUFrequency())
}

func main() {
	SystemInit()

	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})

	// Boot indication: two short status blinks.
	for i := 0; i < 2; i++ {
		ledStatus.Low()
		core.Delay(100)
		ledStatus.High()
		core.Delay(100)
	}

	console := monitor.NewConsole(systemFacade{})

	var line [64]byte
	n := 0
	lastBlink := core.Millis()

	for {
		// Status heartbeat at 1Hz, driven off the millisecond clock.
		if core.Millis()-lastBlink >= 500 {
			lastBlink += 500
			ledStatus.Set(!ledStatus.Get())
		}

		b, err := machine.Serial.ReadByte()
		if err != nil {
			continue
		}

		if b != '\n' && b != '\r' {
			if n < len(line) {
				line[n] = b
				n++
			}
			continue
		}
		if n == 0 {
			continue
		}

		resp, _ := console.Handle(string(line[:n]))
		n = 0
		if resp != "" {
			writeLine(resp)
		}
		// Reboots run only after the acknowledgement left the UART.
		console.CheckPendingReboot()
	}
}

func writeLine(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\n')
}
