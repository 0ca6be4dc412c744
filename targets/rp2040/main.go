//go:build rp2040

// breeze firmware image for RP2040 boards (Pico-style wiring: onboard
// LED as the status indicator, console on USB CDC).
package main

import (
	"machine"

	"breeze/core"
	"breeze/monitor"
)

var (
	ledStatus = machine.LED
	ledFault  = machine.GPIO16
)

type boardLEDs struct{}

func (boardLEDs) SetStatus(on bool) { ledStatus.Set(on) }
func (boardLEDs) SetFault(on bool)  { ledFault.Set(on) }

type systemFacade struct{}

func (systemFacade) Micros() uint64           { return core.Micros() }
func (systemFacade) Millis() uint32           { return core.Millis() }
func (systemFacade) ResetReason() uint32      { return core.ReadResetReason() }
func (systemFacade) ClearResetReason()        { core.WriteResetReason(0) }
func (systemFacade) Reboot(toBootloader bool) { core.SystemReset(toBootloader) }

// SystemInit performs the one-time hardware bring-up.
func SystemInit() {
	// Clear any watchdog state left over from a previous reset before
	// anything else runs.
	_ = machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})

	ledStatus.Configure(machine.PinConfig{Mode: machine.PinOutput})
	ledFault.Configure(machine.PinConfig{Mode: machine.PinOutput})
	ledStatus.Low()
	ledFault.Low()

	core.SetCycleTimer(sysTickTimer{})
	core.SetBackupStore(scratchStore{})
	core.SetResetter(watchdogResetter{})
	core.SetIndicator(boardLEDs{})

	core.InitClock(machine.CPUFrequency())
}

func main() {
	SystemInit()

	console := monitor.NewConsole(systemFacade{})

	var line [64]byte
	n := 0
	lastBlink := core.Millis()

	for {
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
		console.CheckPendingReboot()
	}
}

func writeLine(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\n')
}
