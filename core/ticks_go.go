//go:build !tinygo

package core

var tickCountValue uint32

// tickCount returns the millisecond counter (host implementation; tests
// drive the tick from the same goroutine, so a plain read is enough).
func tickCount() uint32 {
	return tickCountValue
}

// setTickCount stores the millisecond counter (host implementation).
func setTickCount(ticks uint32) {
	tickCountValue = ticks
}
