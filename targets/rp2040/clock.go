//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"breeze/core"
)

// The RP2040's Cortex-M0+ SysTick block. The chip also has a 1MHz
// 64-bit timer peripheral, but SysTick gives the same cycle-granular
// tick source on both supported chips.
const (
	systickBase = 0xE000E010
	systickCSR  = systickBase + 0x00
	systickRVR  = systickBase + 0x04
	systickCVR  = systickBase + 0x08

	csrEnable    = 1 << 0
	csrTickInt   = 1 << 1
	csrClkSource = 1 << 2
)

var (
	stkCSR = (*volatile.Register32)(unsafe.Pointer(uintptr(systickCSR)))
	stkRVR = (*volatile.Register32)(unsafe.Pointer(uintptr(systickRVR)))
	stkCVR = (*volatile.Register32)(unsafe.Pointer(uintptr(systickCVR)))
)

type sysTickTimer struct{}

func (sysTickTimer) ReadCycles() uint32 {
	return stkCVR.Get()
}

func (sysTickTimer) CountsDown() bool {
	return true
}

func (sysTickTimer) StartTick(reloadCycles uint32) {
	stkRVR.Set((reloadCycles - 1) & 0xFFFFFF)
	stkCVR.Set(0)
	stkCSR.Set(csrClkSource | csrTickInt | csrEnable)
}

//go:export SysTick_Handler
func handleSysTick() {
	core.Tick()
}
