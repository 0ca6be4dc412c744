// Package core implements the portable system layer of the firmware:
// the microsecond uptime clock, busy-wait delays, and the reset /
// boot-mode controller. Hardware access goes through the narrow
// interfaces in hal.go so the logic runs unchanged on every target and
// under test.
package core

var (
	// cycles per microsecond, fixed at InitClock
	usCycles uint32
	// cycle register reload value, one millisecond worth of cycles
	tickCycles uint32
)

// InitClock derives the clock calibration from the system clock frequency
// and starts the millisecond tick. Must be called exactly once, after the
// system clock is configured and before any uptime query or delay.
func InitClock(sysclockHz uint32) {
	usCycles = sysclockHz / 1000000
	tickCycles = sysclockHz / 1000
	cycleTimer.StartTick(tickCycles)
}

// Tick is called from the millisecond tick interrupt handler and advances
// the uptime counter by one. It is the single point of truth for how many
// whole milliseconds have elapsed since boot.
func Tick() {
	setTickCount(tickCount() + 1)
}

// Millis returns milliseconds since boot. Wraps silently at 2^32
// (about 49.7 days); compute elapsed time with unsigned subtraction,
// never by comparing absolute values.
func Millis() uint32 {
	return tickCount()
}

// Micros returns microseconds since boot, combining the millisecond
// counter with the live cycle register. The tick interrupt can fire at
// any point during the read, reloading the cycle register, so a query
// takes a consistent (millisecond, cycle) pair: read ms, read cycles,
// re-read ms, and retry from the top on mismatch. Retries are rare but
// required for correctness, not an optimization.
//
// The value inherits the 32-bit millisecond wraparound: treat it as a
// wrapping clock, not an absolute timestamp.
func Micros() uint64 {
	var ms, cycles uint32
	for {
		ms = tickCount()
		cycles = cycleTimer.ReadCycles()
		if tickCount() == ms {
			break
		}
	}
	return uint64(ms)*1000 + uint64(subTickMicros(cycles))
}

// subTickMicros converts a cycle register snapshot into the elapsed
// microseconds within the current tick period, honoring the counting
// direction of the platform timer.
func subTickMicros(cycles uint32) uint32 {
	if cycleTimer.CountsDown() {
		return (tickCycles - cycles) / usCycles
	}
	return cycles / usCycles
}
