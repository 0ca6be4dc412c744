package core

// DelayMicroseconds blocks the calling thread of execution for at least
// us microseconds by spinning on Micros. Interrupts still fire during
// the spin. Elapsed time uses unsigned subtraction so the wait is
// correct across a clock wraparound. The wait can end late (a
// higher-priority interrupt can stretch it) but never early.
func DelayMicroseconds(us uint32) {
	start := Micros()
	for Micros()-start < uint64(us) {
	}
}

// Delay blocks for at least ms milliseconds, as ms back-to-back one
// millisecond waits. Each wait rounds up, so the total only ever drifts
// long, proportionally to ms.
func Delay(ms uint32) {
	for ; ms > 0; ms-- {
		DelayMicroseconds(1000)
	}
}
