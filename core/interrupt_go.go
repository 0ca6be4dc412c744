//go:build !tinygo

package core

// State is a placeholder for the saved interrupt mask on the host.
type State uintptr

// disableInterrupts is a no-op on the host (tests have no interrupts).
func disableInterrupts() State {
	return 0
}

// restoreInterrupts is a no-op on the host.
func restoreInterrupts(state State) {
}
