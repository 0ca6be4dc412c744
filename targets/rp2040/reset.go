//go:build rp2040

package main

import (
	"runtime/volatile"
	"time"
	"unsafe"

	"machine"
)

// RP2040 watchdog memory map. The scratch registers survive a watchdog
// or software reset (not a power cycle), standing in for the STM32's
// battery-backed domain on this chip.
const (
	watchdogBase = 0x40058000
	scratch4     = watchdogBase + 0x1C // low half of the reset reason
	scratch5     = watchdogBase + 0x20 // high half of the reset reason
	scratch6     = watchdogBase + 0x24 // bootloader entry marker
)

var (
	bootMarker = (*volatile.Register32)(unsafe.Pointer(uintptr(scratch6)))

	reasonWords = [2]*volatile.Register32{
		(*volatile.Register32)(unsafe.Pointer(uintptr(scratch4))),
		(*volatile.Register32)(unsafe.Pointer(uintptr(scratch5))),
	}
)

// scratchStore keeps the reset reason in watchdog scratch registers.
type scratchStore struct{}

// EnableWriteAccess is a no-op: the scratch registers carry no write
// protection. Kept so the write sequence is identical on every chip.
func (scratchStore) EnableWriteAccess() {
}

func (scratchStore) WriteWord(index int, value uint16) {
	reasonWords[index].Set(uint32(value))
}

func (scratchStore) ReadWord(index int) uint16 {
	return uint16(reasonWords[index].Get())
}

// watchdogResetter restarts the chip by arming the hardware watchdog
// with a minimal timeout, which re-enumerates USB more reliably than
// SYSRESETREQ on this chip.
type watchdogResetter struct{}

func (watchdogResetter) ArmBootloader(sentinel uint32) {
	bootMarker.Set(sentinel)
}

func (watchdogResetter) SystemReset() {
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 1}); err != nil {
		return
	}
	if err := machine.Watchdog.Start(); err != nil {
		return
	}
	// Wait for the watchdog to bite (about 1ms).
	for {
		time.Sleep(time.Millisecond)
	}
}
