//go:build stm32f103

package main

import (
	"runtime/volatile"
	"unsafe"
)

// STM32F103 backup domain, power control and reset registers.
const (
	bkpBase = 0x40006C00
	bkpDR2  = bkpBase + 0x08 // low half of the reset reason
	bkpDR4  = bkpBase + 0x10 // high half of the reset reason

	pwrCR    = 0x40007000
	pwrCRDBP = 1 << 8 // backup-domain write-protection override

	rccAPB1ENR = 0x40021000 + 0x1C
	rccPWREN   = 1 << 28
	rccBKPEN   = 1 << 27

	scbAIRCR         = 0xE000ED0C
	aircrVectKey     = 0x05FA0000 // write authorization key
	aircrSysResetReq = 1 << 2

	// Last word of the 20KB SRAM; the first-stage bootloader checks it
	// before the application's vector table is installed.
	bootMarkerAddr = 0x20004FF0
)

var (
	apb1Enable = (*volatile.Register32)(unsafe.Pointer(uintptr(rccAPB1ENR)))
	powerCtrl  = (*volatile.Register32)(unsafe.Pointer(uintptr(pwrCR)))
	aircr      = (*volatile.Register32)(unsafe.Pointer(uintptr(scbAIRCR)))
	bootMarker = (*volatile.Register32)(unsafe.Pointer(uintptr(bootMarkerAddr)))

	reasonWords = [2]*volatile.Register16{
		(*volatile.Register16)(unsafe.Pointer(uintptr(bkpDR2))),
		(*volatile.Register16)(unsafe.Pointer(uintptr(bkpDR4))),
	}
)

// backupDomain stores the reset reason in the battery-backed BKP
// registers, which survive a reset but not a power loss.
type backupDomain struct{}

// EnableWriteAccess clocks the PWR and BKP peripherals and lifts the
// backup-domain write protection. Called before every write; the DBP
// bit is not assumed to stay set.
func (backupDomain) EnableWriteAccess() {
	apb1Enable.SetBits(rccPWREN | rccBKPEN)
	powerCtrl.SetBits(pwrCRDBP)
}

func (backupDomain) WriteWord(index int, value uint16) {
	reasonWords[index].Set(value)
}

func (backupDomain) ReadWord(index int) uint16 {
	return reasonWords[index].Get()
}

// armResetter resets the chip through the Cortex-M SYSRESETREQ line.
type armResetter struct{}

func (armResetter) ArmBootloader(sentinel uint32) {
	bootMarker.Set(sentinel)
}

func (armResetter) SystemReset() {
	aircr.Set(aircrVectKey | aircrSysResetReq)
	// The reset request takes a few cycles to assert.
	for {
	}
}
