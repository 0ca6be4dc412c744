package fc

import (
	"bytes"
	"strings"
	"testing"

	"breeze/monitor"
)

// consolePort loops every written request line straight into a
// monitor.Console, simulating a connected board.
type consolePort struct {
	console *monitor.Console
	rbuf    bytes.Buffer
}

func (p *consolePort) Write(b []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		resp, _ := p.console.Handle(line)
		p.rbuf.WriteString(resp + "\n")
		p.console.CheckPendingReboot()
	}
	return len(b), nil
}

func (p *consolePort) Read(b []byte) (int, error) { return p.rbuf.Read(b) }
func (p *consolePort) Close() error               { return nil }
func (p *consolePort) Flush() error               { return nil }

type simSystem struct {
	us           uint64
	ms           uint32
	reason       uint32
	rebooted     bool
	toBootloader bool
}

func (s *simSystem) Micros() uint64      { return s.us }
func (s *simSystem) Millis() uint32      { return s.ms }
func (s *simSystem) ResetReason() uint32 { return s.reason }
func (s *simSystem) ClearResetReason()   { s.reason = 0 }
func (s *simSystem) Reboot(toBootloader bool) {
	s.rebooted = true
	s.toBootloader = toBootloader
}

func newSimFC(sys *simSystem) *FC {
	return New(&consolePort{console: monitor.NewConsole(sys)})
}

func TestUptime(t *testing.T) {
	sys := &simSystem{us: 98765432, ms: 98765}
	f := newSimFC(sys)

	us, ms, err := f.Uptime()
	if err != nil {
		t.Fatalf("Uptime: %v", err)
	}
	if us != 98765432 || ms != 98765 {
		t.Errorf("Uptime = %d, %d", us, ms)
	}
}

func TestResetReasonAndClear(t *testing.T) {
	sys := &simSystem{reason: 0x50F7B007}
	f := newSimFC(sys)

	reason, err := f.ResetReason()
	if err != nil {
		t.Fatalf("ResetReason: %v", err)
	}
	if reason != 0x50F7B007 {
		t.Errorf("ResetReason = %#x", reason)
	}

	if err := f.ClearResetReason(); err != nil {
		t.Fatalf("ClearResetReason: %v", err)
	}
	reason, err = f.ResetReason()
	if err != nil {
		t.Fatalf("ResetReason after clear: %v", err)
	}
	if reason != 0 {
		t.Errorf("ResetReason after clear = %#x, want 0", reason)
	}
}

func TestRebootIntoBootloader(t *testing.T) {
	sys := &simSystem{}
	f := newSimFC(sys)

	if err := f.Reboot(true); err != nil {
		t.Fatalf("Reboot: %v", err)
	}
	if !sys.rebooted || !sys.toBootloader {
		t.Errorf("board state: rebooted=%v toBootloader=%v", sys.rebooted, sys.toBootloader)
	}
}

func TestRebootAcknowledgedBeforeReset(t *testing.T) {
	sys := &simSystem{}
	f := newSimFC(sys)

	// The acknowledgement must be readable even though the board resets
	// right after sending it.
	if err := f.Reboot(false); err != nil {
		t.Fatalf("Reboot not acknowledged: %v", err)
	}
	if sys.toBootloader {
		t.Error("plain reboot armed the bootloader")
	}
}

func TestBoardErrorSurfaced(t *testing.T) {
	f := New(&consolePort{console: monitor.NewConsole(&simSystem{})})

	_, err := f.roundTrip("warp")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v, want board error", err)
	}
}
