package core

// CycleTimer is the one genuinely hardware-specific dependency of the
// uptime clock: a free-running counter that is reloaded automatically
// every tick period, plus the ability to start the 1kHz tick interrupt.
type CycleTimer interface {
	// ReadCycles returns the instantaneous value of the cycle register.
	ReadCycles() uint32

	// CountsDown reports whether the cycle register counts down from the
	// reload value (SysTick style) or up from zero.
	CountsDown() bool

	// StartTick configures the timer to fire the tick interrupt once per
	// millisecond, reloading the cycle register with reloadCycles. The
	// interrupt handler must call Tick exactly once per firing.
	StartTick(reloadCycles uint32)
}

// BackupStore is battery-backed storage that survives a system reset but
// not a power loss. Writes require EnableWriteAccess first; the write
// permission must not be assumed to persist from an earlier enable.
type BackupStore interface {
	EnableWriteAccess()
	WriteWord(index int, value uint16)
	ReadWord(index int) uint16
}

// Resetter performs the terminal reset sequence. On real hardware
// SystemReset does not return.
type Resetter interface {
	// ArmBootloader writes the sentinel to the fixed marker address that
	// the first-stage bootloader checks after reset.
	ArmBootloader(sentinel uint32)

	// SystemReset issues the hardware reset instruction.
	SystemReset()
}

// Indicator drives the board status LEDs.
type Indicator interface {
	SetStatus(on bool)
	SetFault(on bool)
}

var (
	cycleTimer  CycleTimer
	backupStore BackupStore
	resetter    Resetter
	indicator   Indicator
)

// SetCycleTimer registers the platform timer implementation.
func SetCycleTimer(t CycleTimer) {
	cycleTimer = t
}

// SetBackupStore registers the platform persistent storage implementation.
func SetBackupStore(s BackupStore) {
	backupStore = s
}

// SetResetter registers the platform reset implementation.
func SetResetter(r Resetter) {
	resetter = r
}

// SetIndicator registers the platform LED implementation.
func SetIndicator(i Indicator) {
	indicator = i
}
