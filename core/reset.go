package core

const (
	// SoftResetTag is written to the backup store before a deliberate
	// reset so post-boot code can tell a soft reset from a power-on or
	// watchdog restart.
	SoftResetTag = 0x50F7B007

	// BootloaderSentinel is the marker value the first-stage bootloader
	// checks to decide whether to stay in firmware-update mode. Must
	// match the paired bootloader build.
	BootloaderSentinel = 0xDEADBEEF
)

// SystemReset restarts the system. With toBootloader set, the bootloader
// entry marker is armed first so the next boot stays in the bootloader.
// The soft-reset tag is always recorded in the backup store. The marker
// write, the tag write, and the reset instruction form a strict sequence
// that must not be preempted, so interrupts are masked for its duration.
// Does not return on hardware.
func SystemReset(toBootloader bool) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if toBootloader {
		resetter.ArmBootloader(BootloaderSentinel)
	}

	WriteResetReason(SoftResetTag)

	resetter.SystemReset()
}

// FailureMode signals an unrecoverable fault on the board LEDs and
// resets into the normal application. Does not return on hardware.
func FailureMode() {
	indicator.SetStatus(false)
	indicator.SetFault(true)
	SystemReset(false)
}

// WriteResetReason stores value in the backup domain, split across two
// 16-bit words. Write access is re-enabled on every call; the permission
// bit is not assumed to survive from an earlier write.
func WriteResetReason(value uint32) {
	backupStore.EnableWriteAccess()
	backupStore.WriteWord(0, uint16(value))
	backupStore.WriteWord(1, uint16(value>>16))
}

// ReadResetReason reconstructs the value last stored in the backup
// domain. Plain read, no side effects. Returns whatever the domain
// holds; callers that want one-shot detection clear it by writing zero.
func ReadResetReason() uint32 {
	return uint32(backupStore.ReadWord(0)) | uint32(backupStore.ReadWord(1))<<16
}
