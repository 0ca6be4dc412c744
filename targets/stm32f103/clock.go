//go:build stm32f103

package main

import (
	"runtime/volatile"
	"unsafe"

	"breeze/core"
)

// Cortex-M3 SysTick memory map
const (
	systickBase = 0xE000E010
	systickCSR  = systickBase + 0x00 // control and status
	systickRVR  = systickBase + 0x04 // reload value
	systickCVR  = systickBase + 0x08 // current value
)

// CSR bits
const (
	csrEnable    = 1 << 0 // counter enable
	csrTickInt   = 1 << 1 // exception on count-to-zero
	csrClkSource = 1 << 2 // processor clock, not the external reference
)

var (
	stkCSR = (*volatile.Register32)(unsafe.Pointer(uintptr(systickCSR)))
	stkRVR = (*volatile.Register32)(unsafe.Pointer(uintptr(systickRVR)))
	stkCVR = (*volatile.Register32)(unsafe.Pointer(uintptr(systickCVR)))
)

// sysTickTimer drives the uptime clock from SysTick: a 24-bit
// down-counter that reloads automatically every millisecond.
type sysTickTimer struct{}

func (sysTickTimer) ReadCycles() uint32 {
	return stkCVR.Get()
}

func (sysTickTimer) CountsDown() bool {
	return true
}

func (sysTickTimer) StartTick(reloadCycles uint32) {
	// The counter runs reload -> 0, so the period is RVR+1 cycles.
	stkRVR.Set((reloadCycles - 1) & 0xFFFFFF)
	stkCVR.Set(0) // any write clears the current count
	stkCSR.Set(csrClkSource | csrTickInt | csrEnable)
}

//go:export SysTick_Handler
func handleSysTick() {
	core.Tick()
}
