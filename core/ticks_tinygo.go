//go:build tinygo

package core

import "sync/atomic"

var tickCountValue uint32

// tickCount returns the millisecond counter. The tick interrupt can
// preempt a reader at any instant, so reads and the handler's store go
// through word-aligned atomics.
func tickCount() uint32 {
	return atomic.LoadUint32(&tickCountValue)
}

// setTickCount stores the millisecond counter.
func setTickCount(ticks uint32) {
	atomic.StoreUint32(&tickCountValue, ticks)
}
